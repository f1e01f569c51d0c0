package audit

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/infrastructure/cssparser"
	"contrast-audit/internal/infrastructure/logger"
	"contrast-audit/internal/infrastructure/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStyles struct {
	pages map[string][]entity.ElementStyleRecord
	calls []string
}

func (f *fakeStyles) ElementStyles(_ context.Context, url string) ([]entity.ElementStyleRecord, error) {
	f.calls = append(f.calls, url)
	records, ok := f.pages[url]
	if !ok {
		return nil, errors.New("navigation failed")
	}
	return records, nil
}

func (f *fakeStyles) Close() {}

type fakeDocuments map[string]*entity.Document

func (f fakeDocuments) Load(_ context.Context, path string) (*entity.Document, error) {
	doc, ok := f[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return doc, nil
}

func styled(text, fg, bg string) entity.ElementStyleRecord {
	return entity.ElementStyleRecord{
		Text:    text,
		Markup:  "<p>" + text + "</p>",
		TagName: "p",
		Computed: entity.ComputedStyle{
			TextColor:       fg,
			BackgroundColor: bg,
			FontSize:        "16px",
			FontWeight:      "400",
		},
	}
}

func newSink(buf *bytes.Buffer) *report.Sink {
	return report.NewSink(buf, report.JSONWriter{}, logger.NewNop())
}

func TestAuditPages(t *testing.T) {
	styles := &fakeStyles{pages: map[string][]entity.ElementStyleRecord{
		"http://a.test/": {
			styled("ok", "#000000", "#ffffff"),
			styled("gray", "#aaaaaa", "#ffffff"),
		},
		"http://c.test/": {
			styled("fine", "#ffffff", "#000000"),
		},
	}}
	var buf bytes.Buffer

	uc := New(styles, nil, nil, newSink(&buf), logger.NewNop(), entity.LevelAA)
	summary, err := uc.AuditPages(context.Background(), []string{"http://a.test/", "http://b.test/", "http://c.test/"})
	require.NoError(t, err)

	assert.Equal(t, []string{"http://a.test/", "http://b.test/", "http://c.test/"}, styles.calls)
	assert.Equal(t, entity.ModeDynamic, summary.Mode)
	assert.Equal(t, entity.LevelAA, summary.Level)
	require.Len(t, summary.Documents, 3)
	assert.Equal(t, 3, summary.TotalChecked)
	assert.Equal(t, 1, summary.TotalFailed)

	assert.Equal(t, "http://b.test/", summary.Documents[1].PageIdentifier)
	assert.Contains(t, summary.Documents[1].LoadError, "navigation failed")
	assert.Zero(t, summary.Documents[1].TotalChecked)

	require.Len(t, summary.Documents[0].Entries, 1)
	assert.Equal(t, "<p>gray</p>", summary.Documents[0].Entries[0].Markup)
	assert.Contains(t, buf.String(), `"total_failed": 1`)
}

func TestAuditPages_InvalidLevelAbortsBeforeIO(t *testing.T) {
	styles := &fakeStyles{}
	var buf bytes.Buffer

	uc := New(styles, nil, nil, newSink(&buf), logger.NewNop(), entity.Level("AAAA"))
	summary, err := uc.AuditPages(context.Background(), []string{"http://a.test/"})

	require.ErrorIs(t, err, entity.ErrInvalidConfiguration)
	assert.Nil(t, summary)
	assert.Empty(t, styles.calls)
	assert.Zero(t, buf.Len())
}

func TestAuditPages_RequiresStyleSource(t *testing.T) {
	var buf bytes.Buffer
	uc := New(nil, nil, nil, newSink(&buf), logger.NewNop(), entity.LevelAA)

	_, err := uc.AuditPages(context.Background(), []string{"http://a.test/"})
	assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)
}

func TestAuditPages_CanceledContext(t *testing.T) {
	styles := &fakeStyles{}
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := New(styles, nil, nil, newSink(&buf), logger.NewNop(), entity.LevelAA)
	_, err := uc.AuditPages(ctx, []string{"http://a.test/"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, styles.calls)
}

func TestAuditFiles(t *testing.T) {
	docs := fakeDocuments{
		"theme.html": {
			Identifier: "theme.html",
			Stylesheets: []entity.StylesheetFile{
				{Source: "theme.css", Content: `
					.panel { background-color: #000000; }
					.muted { color: #333333; }
					.bright { color: #ffffff; }
					@media print { .muted { color: #000000; } }
				`},
				{Source: "broken.css", Content: `.unused { color: red;`},
			},
			Elements: []entity.StaticElement{
				{TagName: "div", ClassList: []string{"panel"}, Parent: -1},
				{TagName: "p", Text: "dim", Markup: "<p>dim</p>", ClassList: []string{"muted"}, Parent: 0},
				{TagName: "p", Text: "light", Markup: "<p>light</p>", ClassList: []string{"bright"}, Parent: 0},
				{TagName: "p", Text: "plain", Markup: "<p>plain</p>", Parent: -1},
			},
		},
	}
	var buf bytes.Buffer

	uc := New(nil, docs, cssparser.New(), newSink(&buf), logger.NewNop(), entity.LevelAA)
	summary, err := uc.AuditFiles(context.Background(), []string{"theme.html", "missing.html"})
	require.NoError(t, err)

	assert.Equal(t, entity.ModeStatic, summary.Mode)
	require.Len(t, summary.Documents, 2)

	first := summary.Documents[0]
	assert.Equal(t, "theme.html", first.PageIdentifier)
	assert.Equal(t, 2, first.TotalChecked)
	assert.Equal(t, 1, first.TotalFailed)
	require.Len(t, first.Entries, 1)
	assert.Equal(t, "<p>dim</p>", first.Entries[0].Markup)

	assert.Equal(t, "missing.html", summary.Documents[1].PageIdentifier)
	assert.NotEmpty(t, summary.Documents[1].LoadError)
}

func TestAuditFiles_LevelChangesVerdict(t *testing.T) {
	doc := &entity.Document{
		Identifier:  "page.html",
		Stylesheets: []entity.StylesheetFile{{Source: "s.css", Content: `.body { color: #767676; }`}},
		Elements: []entity.StaticElement{
			{TagName: "p", Text: "text", Markup: "<p>text</p>", ClassList: []string{"body"}, Parent: -1},
		},
	}

	for _, tc := range []struct {
		level  entity.Level
		failed int
	}{
		{entity.LevelAA, 0},
		{entity.LevelAAA, 1},
	} {
		t.Run(tc.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			uc := New(nil, fakeDocuments{"page.html": doc}, cssparser.New(), newSink(&buf), logger.NewNop(), tc.level)

			summary, err := uc.AuditFiles(context.Background(), []string{"page.html"})
			require.NoError(t, err)
			assert.Equal(t, 1, summary.TotalChecked)
			assert.Equal(t, tc.failed, summary.TotalFailed)
		})
	}
}

package pipeline

import (
	"testing"

	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(text, fg, bg string) entity.ElementStyleRecord {
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

func TestRun_SkipsEmptyText(t *testing.T) {
	records := []entity.ElementStyleRecord{
		record("one", "#000000", "#FFFFFF"),
		record("two", "#AAAAAA", "#FFFFFF"),
		record("", "#AAAAAA", "#FFFFFF"),
		record("four", "#AAAAAA", "#FFFFFF"),
		record("five", "#000000", "#FFFFFF"),
	}

	report, err := New(logger.NewNop()).Run(records, entity.LevelAA, "index.html")
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalChecked)
	assert.Equal(t, 2, report.TotalFailed)
	require.Len(t, report.Entries, 2)
	assert.Equal(t, "<p>two</p>", report.Entries[0].Markup)
	assert.Equal(t, "<p>four</p>", report.Entries[1].Markup)
	assert.Equal(t, "index.html", report.Entries[0].PageIdentifier)
	assert.Contains(t, report.Entries[0].Reason, "below the required 4.5:1")
}

func TestRun_ExclusionsAreNotCounted(t *testing.T) {
	records := []entity.ElementStyleRecord{
		record("transparent", "#AAAAAA", "rgba(0, 0, 0, 0)"),
		record("keyword", "#AAAAAA", "transparent"),
		record("bad text color", "inherit", "#FFFFFF"),
		record("bad background", "#000000", "linear-gradient(red, blue)"),
		record("rgb", "rgb(170, 170, 170)", "rgb(255, 255, 255)"),
	}

	report, err := New(logger.NewNop()).Run(records, entity.LevelAA, "page")
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalChecked)
	assert.Equal(t, 1, report.TotalFailed)
	require.Len(t, report.Entries, 1)
	assert.Contains(t, report.Entries[0].Reason, "Text color: rgb(170, 170, 170), background: rgb(255, 255, 255)")
}

func TestRun_LargeTextUsesLowerThreshold(t *testing.T) {
	gray := record("heading", "#767676", "#ffffff")
	gray.Computed.FontSize = "24px"

	report, err := New(logger.NewNop()).Run([]entity.ElementStyleRecord{gray}, entity.LevelAAA, "page")
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalChecked)
	assert.Equal(t, 0, report.TotalFailed)
}

func TestRun_InvalidLevelIsFatal(t *testing.T) {
	_, err := New(logger.NewNop()).Run([]entity.ElementStyleRecord{record("x", "#000", "#fff")}, "AAAA", "page")
	assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)
}

func TestRun_EmptyInput(t *testing.T) {
	report, err := New(logger.NewNop()).Run(nil, entity.LevelAA, "page")
	require.NoError(t, err)

	assert.Zero(t, report.TotalChecked)
	assert.Zero(t, report.TotalFailed)
	assert.NotNil(t, report.Entries)
	assert.Empty(t, report.Entries)
}

func TestRun_Idempotent(t *testing.T) {
	records := []entity.ElementStyleRecord{
		record("a", "#AAAAAA", "#FFFFFF"),
		record("b", "#000000", "#FFFFFF"),
		record("", "#000000", "#FFFFFF"),
		record("c", "#CCCCCC", "#EEEEEE"),
	}
	p := New(logger.NewNop())

	first, err := p.Run(records, entity.LevelAA, "page")
	require.NoError(t, err)
	second, err := p.Run(records, entity.LevelAA, "page")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.LessOrEqual(t, first.TotalFailed, first.TotalChecked)
}

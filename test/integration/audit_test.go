//go:build integration

package integration

import (
	"bytes"
	"context"
	"testing"

	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/infrastructure/logger"
	"contrast-audit/internal/infrastructure/report"
	"contrast-audit/internal/usecase/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditPages_DynamicMode(t *testing.T) {
	server := serve(t, contrastPage)
	adapter := newAdapter(t)

	var out bytes.Buffer
	sink := report.NewSink(&out, report.JSONWriter{}, logger.NewNop())
	uc := audit.New(adapter, nil, nil, sink, logger.NewNop(), entity.LevelAA)

	summary, err := uc.AuditPages(context.Background(), []string{server.URL})
	require.NoError(t, err)
	require.Len(t, summary.Documents, 1)

	doc := summary.Documents[0]
	assert.Empty(t, doc.LoadError)
	assert.Equal(t, 5, doc.TotalChecked)

	var failing []string
	for _, e := range doc.Entries {
		failing = append(failing, e.Markup)
	}
	require.Len(t, failing, 2)
	assert.Contains(t, failing[0], `id="gray"`)
	assert.Contains(t, failing[1], `id="inner-dim"`)
	assert.Contains(t, doc.Entries[0].Reason, "<p> contrast ratio 2.32:1")
}

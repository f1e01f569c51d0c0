package output

import (
	"context"

	"contrast-audit/internal/domain/entity"
)

// ReportSink aggregates per-document reports and persists the combined result on Flush.
type ReportSink interface {
	Add(ctx context.Context, report entity.DocumentReport) error
	Flush(ctx context.Context, mode entity.Mode, level entity.Level) (*entity.AuditSummary, error)
}

package input

import (
	"context"

	"contrast-audit/internal/domain/entity"
)

type Auditor interface {
	AuditPages(ctx context.Context, urls []string) (*entity.AuditSummary, error)
	AuditFiles(ctx context.Context, paths []string) (*entity.AuditSummary, error)
}

package output

import (
	"context"

	"contrast-audit/internal/domain/entity"
)

// StyleSource returns rendered element styles for a live page. Background colors are
// already resolved to the nearest opaque ancestor.
type StyleSource interface {
	ElementStyles(ctx context.Context, url string) ([]entity.ElementStyleRecord, error)
	Close()
}

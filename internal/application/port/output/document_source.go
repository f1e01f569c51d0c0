package output

import (
	"context"

	"contrast-audit/internal/domain/entity"
)

type DocumentSource interface {
	Load(ctx context.Context, path string) (*entity.Document, error)
}

type StylesheetParser interface {
	Parse(file entity.StylesheetFile) (*entity.Stylesheet, error)
}

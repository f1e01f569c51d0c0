// Package resolver produces the four effective style values of an element, either from
// rendered values (dynamic mode) or from the class-keyed stylesheet bag (static mode).
package resolver

import (
	"fmt"

	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/usecase/background"
	"contrast-audit/internal/usecase/colormodel"
	"contrast-audit/internal/usecase/textsize"
)

// Static mode fallbacks, applied when no class sets the property.
const (
	DefaultBackground = background.Default
	DefaultFontSize   = "16px"
	DefaultFontWeight = "400"
)

// Resolved holds canonical hex colors and the size class of one element.
type Resolved struct {
	TextColor       string
	BackgroundColor string
	Large           bool
}

// Normalize canonicalizes both colors and classifies the text size.
// An unparseable color returns an error wrapping entity.ErrInvalidColor.
func Normalize(style entity.ComputedStyle) (Resolved, error) {
	text, err := colormodel.Canonical(style.TextColor)
	if err != nil {
		return Resolved{}, fmt.Errorf("text color: %w", err)
	}
	bg, err := colormodel.Canonical(style.BackgroundColor)
	if err != nil {
		return Resolved{}, fmt.Errorf("background color: %w", err)
	}
	return Resolved{
		TextColor:       text,
		BackgroundColor: bg,
		Large:           textsize.IsLarge(style.FontSize, style.FontWeight),
	}, nil
}

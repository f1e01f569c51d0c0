package resolver

import (
	"strings"

	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/usecase/background"
	"contrast-audit/internal/usecase/stylesheet"
)

// ExclusionReason says why an element produced no style record.
type ExclusionReason string

const (
	ExcludedNoTextColor ExclusionReason = "no text color"
	ExcludedBackground  ExclusionReason = "background unresolvable"
)

// Exclusion identifies an element of the document by index and why it was left out.
type Exclusion struct {
	Index  int
	Reason ExclusionReason
	Err    error
}

// StaticResult carries the records that can be evaluated and the elements that could not be.
type StaticResult struct {
	Records    []entity.ElementStyleRecord
	Exclusions []Exclusion
}

// FromStylesheet builds style records for a document read from disk.
//
// Classes are looked up in bag, then the element's inline style declarations are applied on
// top. Background falls back to the nearest ancestor background (walking the same class and
// inline lookups) and then to white. Font size and weight fall back to DefaultFontSize and
// DefaultFontWeight. Elements without any text color are excluded.
func FromStylesheet(doc entity.Document, bag entity.StylePropertyBag) StaticResult {
	own := make([]entity.StyleOverrides, len(doc.Elements))
	for i, el := range doc.Elements {
		own[i] = ownOverrides(el, bag)
	}

	bgResolver := background.Indexed(
		func(i int) int { return doc.Elements[i].Parent },
		func(i int) (string, bool) {
			if own[i].BackgroundColor == nil {
				return "", false
			}
			return *own[i].BackgroundColor, true
		},
	)

	var result StaticResult
	for i, el := range doc.Elements {
		ov := own[i]
		if ov.TextColor == nil {
			result.Exclusions = append(result.Exclusions, Exclusion{Index: i, Reason: ExcludedNoTextColor})
			continue
		}

		bg, err := bgResolver.Resolve(i)
		if err != nil {
			result.Exclusions = append(result.Exclusions, Exclusion{Index: i, Reason: ExcludedBackground, Err: err})
			continue
		}

		result.Records = append(result.Records, entity.ElementStyleRecord{
			Text:      el.Text,
			Markup:    el.Markup,
			TagName:   el.TagName,
			ID:        el.ID,
			ClassList: el.ClassList,
			Computed: entity.ComputedStyle{
				TextColor:       *ov.TextColor,
				BackgroundColor: orDefault(bg, DefaultBackground),
				FontSize:        valueOr(ov.FontSize, DefaultFontSize),
				FontWeight:      valueOr(ov.FontWeight, DefaultFontWeight),
			},
		})
	}
	return result
}

func ownOverrides(el entity.StaticElement, bag entity.StylePropertyBag) entity.StyleOverrides {
	ov := stylesheet.Lookup(el.ClassList, bag)
	if len(el.InlineStyle) > 0 {
		stylesheet.Apply(&ov, el.InlineStyle)
	}
	return ov
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return orDefault(*v, fallback)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

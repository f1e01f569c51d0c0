// Package stylesheet flattens parsed stylesheets into a per-class property bag.
//
// Only simple class selectors contribute. Declarations are merged in file then rule order
// and the last assignment of a property wins.
// Specificity, combinators, pseudo-classes and at-rules are not modelled.
package stylesheet

import (
	"regexp"
	"strings"

	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/usecase/colormodel"
)

const (
	PropColor           = "color"
	PropBackgroundColor = "background-color"
	PropBackground      = "background"
	PropFontSize        = "font-size"
	PropFontWeight      = "font-weight"
)

var (
	simpleClassRe     = regexp.MustCompile(`^\.(-?[_a-zA-Z][_a-zA-Z0-9-]*)$`)
	functionalColorRe = regexp.MustCompile(`(?i)rgba?\([^)]*\)`)
)

// Build returns a fresh bag for the given stylesheets. Later rules overwrite earlier ones
// property by property.
func Build(sheets []entity.Stylesheet) entity.StylePropertyBag {
	bag := make(entity.StylePropertyBag)
	for _, sheet := range sheets {
		for _, rule := range sheet.Rules {
			mergeRule(bag, rule)
		}
	}
	return bag
}

func mergeRule(bag entity.StylePropertyBag, rule entity.StyleRule) {
	if rule.Kind != entity.RuleKindSelector {
		return
	}
	for _, selector := range rule.Selectors {
		class, ok := ClassName(selector)
		if !ok {
			continue
		}
		props, exists := bag[class]
		if !exists {
			props = make(map[string]string, len(rule.Declarations))
			bag[class] = props
		}
		for _, decl := range rule.Declarations {
			props[strings.ToLower(strings.TrimSpace(decl.Property))] = strings.TrimSpace(decl.Value)
		}
	}
}

// ClassName returns the class of a simple class selector such as ".btn".
// Anything else (tags, ids, compound or combined selectors, pseudo-classes) is rejected.
func ClassName(selector string) (string, bool) {
	m := simpleClassRe.FindStringSubmatch(strings.TrimSpace(selector))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Lookup folds the class list in order; the last class defining a property wins.
func Lookup(classList []string, bag entity.StylePropertyBag) entity.StyleOverrides {
	var out entity.StyleOverrides
	for _, class := range classList {
		props, ok := bag[class]
		if !ok {
			continue
		}
		Apply(&out, props)
	}
	return out
}

// Apply overwrites the recognized properties present in props. A background shorthand sets
// the background color when the same props carry no background-color.
func Apply(out *entity.StyleOverrides, props map[string]string) {
	if v, ok := props[PropColor]; ok {
		out.TextColor = &v
	}
	if v, ok := props[PropBackgroundColor]; ok {
		out.BackgroundColor = &v
	} else if v, ok := props[PropBackground]; ok {
		c := ShorthandColor(v)
		out.BackgroundColor = &c
	}
	if v, ok := props[PropFontSize]; ok {
		out.FontSize = &v
	}
	if v, ok := props[PropFontWeight]; ok {
		out.FontWeight = &v
	}
}

// ShorthandColor returns the color component of a background shorthand value. A shorthand
// without a color resets the background color, so "transparent" is returned.
func ShorthandColor(value string) string {
	if m := functionalColorRe.FindString(value); m != "" {
		return m
	}
	for _, field := range strings.Fields(value) {
		if colormodel.IsTransparent(field) {
			return field
		}
		if _, err := colormodel.Normalize(field); err == nil {
			return field
		}
	}
	return "transparent"
}

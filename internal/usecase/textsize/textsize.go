// Package textsize implements the WCAG large text rule.
package textsize

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	LargeSize     = 18.0
	LargeBoldSize = 14.0
	BoldWeight    = 700
)

var (
	leadingNumberRe = regexp.MustCompile(`^[+]?(\d*\.?\d+)`)
	leadingIntRe    = regexp.MustCompile(`^[+]?(\d+)`)
)

var weightKeywords = map[string]int{
	"normal":  400,
	"lighter": 400,
	"bold":    700,
	"bolder":  700,
}

// IsLarge reports whether text is "large" under WCAG: at least 18px, or at least 14px and bold.
// The size unit is ignored and assumed to be px. Unparseable input counts as 0 and non-bold,
// which keeps the stricter normal-text threshold.
func IsLarge(fontSize, fontWeight string) bool {
	size := ParseSize(fontSize)
	weight := ParseWeight(fontWeight)
	return size >= LargeSize || (size >= LargeBoldSize && weight >= BoldWeight)
}

// ParseSize returns the leading number of a font-size value, or 0.
func ParseSize(fontSize string) float64 {
	m := leadingNumberRe.FindStringSubmatch(strings.TrimSpace(fontSize))
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseWeight maps a font-weight keyword or leading integer to a numeric weight, or 0.
func ParseWeight(fontWeight string) int {
	s := strings.ToLower(strings.TrimSpace(fontWeight))
	if w, ok := weightKeywords[s]; ok {
		return w
	}
	m := leadingIntRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return v
}

// Class returns the label used in report reasons.
func Class(large bool) string {
	if large {
		return "large"
	}
	return "normal"
}

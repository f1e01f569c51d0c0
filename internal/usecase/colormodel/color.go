// Package colormodel parses CSS color values and implements the WCAG 2.x
// relative luminance and contrast ratio formulas.
package colormodel

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"contrast-audit/internal/domain/entity"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB8 is an sRGB color with 8-bit channels.
type RGB8 struct {
	R, G, B uint8
}

var (
	hexRe     = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	numericRe = regexp.MustCompile(`(-?\d*\.?\d+)(%?)`)
)

// Normalize converts hex, rgb()/rgba() or a named color into an RGB8 triple.
// For functional notation only the first three numeric tokens are used.
func Normalize(color string) (RGB8, error) {
	s := strings.ToLower(strings.TrimSpace(color))
	if s == "" {
		return RGB8{}, fmt.Errorf("%w: empty value", entity.ErrInvalidColor)
	}

	if IsHex(s) {
		c, err := colorful.Hex(s)
		if err != nil {
			return RGB8{}, fmt.Errorf("%w: %q: %v", entity.ErrInvalidColor, color, err)
		}
		r, g, b := c.RGB255()
		return RGB8{R: r, G: g, B: b}, nil
	}

	if strings.HasPrefix(s, "rgb") {
		channels, err := functionalChannels(s)
		if err != nil {
			return RGB8{}, fmt.Errorf("%w: %q", err, color)
		}
		return RGB8{R: channels[0], G: channels[1], B: channels[2]}, nil
	}

	if named, ok := namedColors[s]; ok {
		return named, nil
	}

	return RGB8{}, fmt.Errorf("%w: %q", entity.ErrInvalidColor, color)
}

func functionalChannels(s string) ([3]uint8, error) {
	var out [3]uint8
	tokens := numericRe.FindAllStringSubmatch(s, 3)
	if len(tokens) < 3 {
		return out, entity.ErrInvalidColor
	}
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok[1], 64)
		if err != nil {
			return out, entity.ErrInvalidColor
		}
		if tok[2] == "%" {
			v *= 2.55
		}
		out[i] = clampChannel(v)
	}
	return out, nil
}

func clampChannel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// IsHex reports whether s is already a #rgb or #rrggbb value.
func IsHex(s string) bool {
	return hexRe.MatchString(strings.TrimSpace(s))
}

// ToHex formats c as lowercase #rrggbb.
func ToHex(c RGB8) string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// Canonical returns hex values unchanged and converts anything else through Normalize.
func Canonical(color string) (string, error) {
	if IsHex(color) {
		return strings.TrimSpace(color), nil
	}
	c, err := Normalize(color)
	if err != nil {
		return "", err
	}
	return ToHex(c), nil
}

// IsTransparent matches the keyword and any functional color whose alpha token is zero,
// which covers the rgba(0, 0, 0, 0) value browsers report for an unset background.
func IsTransparent(color string) bool {
	s := strings.ToLower(strings.TrimSpace(color))
	if s == "transparent" {
		return true
	}
	if !strings.HasPrefix(s, "rgb") {
		return false
	}
	tokens := numericRe.FindAllStringSubmatch(s, 4)
	if len(tokens) < 4 {
		return false
	}
	alpha, err := strconv.ParseFloat(tokens[3][1], 64)
	return err == nil && alpha == 0
}

// RelativeLuminance follows WCAG 2.x, including its 0.03928 linearization threshold.
func RelativeLuminance(c RGB8) float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio is symmetric in its arguments and lies in [1, 21].
func ContrastRatio(l1, l2 float64) float64 {
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// ColorContrast is a convenience for ContrastRatio over two parsed colors.
func ColorContrast(a, b RGB8) float64 {
	return ContrastRatio(RelativeLuminance(a), RelativeLuminance(b))
}

// Package compliance decides WCAG AA/AAA conformance for one text element.
package compliance

import (
	"fmt"

	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/usecase/colormodel"
	"contrast-audit/internal/usecase/textsize"
)

const noID = "No ID"

type thresholds struct {
	large  float64
	normal float64
}

var requiredRatios = map[entity.Level]thresholds{
	entity.LevelAA:  {large: 3.0, normal: 4.5},
	entity.LevelAAA: {large: 4.5, normal: 7.0},
}

// Input is one element ready for a verdict. The hex colors are what gets measured,
// the original colors only appear in the failure reason.
type Input struct {
	TextColorHex       string
	BackgroundHex      string
	Large              bool
	TagName            string
	ID                 string
	OriginalText       string
	OriginalBackground string
}

// RequiredRatio returns the minimum contrast for the level and text size.
func RequiredRatio(level entity.Level, large bool) (float64, error) {
	t, ok := requiredRatios[level]
	if !ok {
		return 0, fmt.Errorf("%w: unsupported conformance level %q", entity.ErrInvalidConfiguration, level)
	}
	if large {
		return t.large, nil
	}
	return t.normal, nil
}

// Evaluate compares the contrast of the two colors against the level's threshold.
// A failing element is reported through the outcome; the error channel is reserved for
// an unsupported level and unparseable colors.
func Evaluate(in Input, level entity.Level) (entity.ComplianceOutcome, error) {
	required, err := RequiredRatio(level, in.Large)
	if err != nil {
		return entity.ComplianceOutcome{}, err
	}

	fg, err := colormodel.Normalize(in.TextColorHex)
	if err != nil {
		return entity.ComplianceOutcome{}, fmt.Errorf("text color: %w", err)
	}
	bg, err := colormodel.Normalize(in.BackgroundHex)
	if err != nil {
		return entity.ComplianceOutcome{}, fmt.Errorf("background color: %w", err)
	}

	ratio := colormodel.ColorContrast(fg, bg)
	outcome := entity.ComplianceOutcome{
		Passed:        ratio >= required,
		ContrastRatio: ratio,
		RequiredRatio: required,
	}
	if !outcome.Passed {
		outcome.Reason = failureReason(in, ratio, required, level)
	}
	return outcome, nil
}

func failureReason(in Input, ratio, required float64, level entity.Level) string {
	id := in.ID
	if id == "" {
		id = noID
	}
	origText := in.OriginalText
	if origText == "" {
		origText = in.TextColorHex
	}
	origBackground := in.OriginalBackground
	if origBackground == "" {
		origBackground = in.BackgroundHex
	}

	return fmt.Sprintf(
		"<%s> contrast ratio %.2f:1 is below the required %.1f:1 for %s text (WCAG %s). ID: %s. Text color: %s, background: %s",
		in.TagName, ratio, required, textsize.Class(in.Large), level, id, origText, origBackground,
	)
}

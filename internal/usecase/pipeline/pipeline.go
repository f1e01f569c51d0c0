package pipeline

import (
	"errors"
	"fmt"

	"contrast-audit/internal/application/port/output"
	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/usecase/colormodel"
	"contrast-audit/internal/usecase/compliance"
	"contrast-audit/internal/usecase/resolver"
)

// Pipeline folds element records into a document report. It keeps no state between runs.
type Pipeline struct {
	logger output.LoggerPort
}

func New(logger output.LoggerPort) *Pipeline {
	return &Pipeline{logger: logger}
}

// Run evaluates records in order. Elements without text are skipped, elements whose
// background is still transparent or whose colors cannot be parsed are excluded. Neither
// counts as checked. Entries keep input order.
func (p *Pipeline) Run(records []entity.ElementStyleRecord, level entity.Level, pageID string) (entity.DocumentReport, error) {
	if !level.Valid() {
		return entity.DocumentReport{}, fmt.Errorf("%w: unsupported conformance level %q", entity.ErrInvalidConfiguration, level)
	}

	report := entity.DocumentReport{
		PageIdentifier: pageID,
		Entries:        []entity.ReportEntry{},
	}
	log := p.logger.WithField("page", pageID)

	for i, rec := range records {
		if rec.Text == "" {
			continue
		}
		if colormodel.IsTransparent(rec.Computed.BackgroundColor) {
			log.Debug("Background unresolved, no verdict", "index", i, "tag", rec.TagName)
			continue
		}

		resolved, err := resolver.Normalize(rec.Computed)
		if err != nil {
			if errors.Is(err, entity.ErrInvalidColor) {
				log.Debug("Indeterminate color, excluded", "index", i, "tag", rec.TagName, "error", err)
				continue
			}
			return entity.DocumentReport{}, err
		}

		outcome, err := compliance.Evaluate(compliance.Input{
			TextColorHex:       resolved.TextColor,
			BackgroundHex:      resolved.BackgroundColor,
			Large:              resolved.Large,
			TagName:            rec.TagName,
			ID:                 rec.ID,
			OriginalText:       rec.Computed.TextColor,
			OriginalBackground: rec.Computed.BackgroundColor,
		}, level)
		if err != nil {
			return entity.DocumentReport{}, err
		}

		report.TotalChecked++
		if outcome.Passed {
			continue
		}
		report.TotalFailed++
		report.Entries = append(report.Entries, entity.ReportEntry{
			Markup:         rec.Markup,
			PageIdentifier: pageID,
			Reason:         outcome.Reason,
		})
	}

	log.Debug("Document evaluated", "checked", report.TotalChecked, "failed", report.TotalFailed)
	return report, nil
}

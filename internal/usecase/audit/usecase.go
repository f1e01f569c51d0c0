package audit

import (
	"context"
	"fmt"

	"contrast-audit/internal/application/port/input"
	"contrast-audit/internal/application/port/output"
	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/usecase/pipeline"
	"contrast-audit/internal/usecase/resolver"
	"contrast-audit/internal/usecase/stylesheet"
)

var _ input.Auditor = (*UseCase)(nil)

type UseCase struct {
	styles    output.StyleSource
	documents output.DocumentSource
	parser    output.StylesheetParser
	sink      output.ReportSink
	pipeline  *pipeline.Pipeline
	logger    output.LoggerPort
	level     entity.Level
}

// New wires an auditor. styles may be nil when only files are audited; documents and parser
// may be nil when only pages are audited.
func New(
	styles output.StyleSource,
	documents output.DocumentSource,
	parser output.StylesheetParser,
	sink output.ReportSink,
	logger output.LoggerPort,
	level entity.Level,
) *UseCase {
	return &UseCase{
		styles:    styles,
		documents: documents,
		parser:    parser,
		sink:      sink,
		pipeline:  pipeline.New(logger),
		logger:    logger,
		level:     level,
	}
}

func (uc *UseCase) AuditPages(ctx context.Context, urls []string) (*entity.AuditSummary, error) {
	if err := uc.validate(); err != nil {
		return nil, err
	}
	if uc.styles == nil {
		return nil, fmt.Errorf("%w: no style source configured for page audits", entity.ErrInvalidConfiguration)
	}

	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		log := uc.logger.WithField("page", url)
		log.Info("Auditing page")

		records, err := uc.styles.ElementStyles(ctx, url)
		if err != nil {
			log.Error("Failed to collect element styles", "error", err)
			if err := uc.sink.Add(ctx, failedReport(url, err)); err != nil {
				return nil, err
			}
			continue
		}

		if err := uc.evaluate(ctx, records, url); err != nil {
			return nil, err
		}
	}

	return uc.sink.Flush(ctx, entity.ModeDynamic, uc.level)
}

func (uc *UseCase) AuditFiles(ctx context.Context, paths []string) (*entity.AuditSummary, error) {
	if err := uc.validate(); err != nil {
		return nil, err
	}
	if uc.documents == nil || uc.parser == nil {
		return nil, fmt.Errorf("%w: no document source configured for file audits", entity.ErrInvalidConfiguration)
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		log := uc.logger.WithField("page", path)
		log.Info("Auditing document")

		doc, err := uc.documents.Load(ctx, path)
		if err != nil {
			log.Error("Failed to load document", "error", err)
			if err := uc.sink.Add(ctx, failedReport(path, err)); err != nil {
				return nil, err
			}
			continue
		}

		sheets := stylesheet.ParseAll(uc.parser, doc.Stylesheets, log)
		bag := stylesheet.Build(sheets)
		log.Debug("Stylesheets indexed", "files", len(doc.Stylesheets), "parsed", len(sheets), "classes", len(bag))

		result := resolver.FromStylesheet(*doc, bag)
		for _, ex := range result.Exclusions {
			log.Debug("Element excluded",
				"index", ex.Index,
				"tag", doc.Elements[ex.Index].TagName,
				"reason", string(ex.Reason),
				"error", ex.Err,
			)
		}

		if err := uc.evaluate(ctx, result.Records, doc.Identifier); err != nil {
			return nil, err
		}
	}

	return uc.sink.Flush(ctx, entity.ModeStatic, uc.level)
}

func (uc *UseCase) validate() error {
	if !uc.level.Valid() {
		return fmt.Errorf("%w: unsupported conformance level %q (use AA or AAA)", entity.ErrInvalidConfiguration, uc.level)
	}
	return nil
}

func (uc *UseCase) evaluate(ctx context.Context, records []entity.ElementStyleRecord, pageID string) error {
	report, err := uc.pipeline.Run(records, uc.level, pageID)
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", pageID, err)
	}
	return uc.sink.Add(ctx, report)
}

func failedReport(pageID string, err error) entity.DocumentReport {
	return entity.DocumentReport{
		PageIdentifier: pageID,
		Entries:        []entity.ReportEntry{},
		LoadError:      err.Error(),
	}
}

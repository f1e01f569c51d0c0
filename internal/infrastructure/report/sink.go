package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"contrast-audit/internal/application/port/output"
	"contrast-audit/internal/domain/entity"
)

var _ output.ReportSink = (*Sink)(nil)

type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatConsole, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatConsole, nil
	default:
		return "", fmt.Errorf("%w: unsupported report format %q (use console, json or yaml)", entity.ErrInvalidConfiguration, s)
	}
}

// Writer renders a finished summary.
type Writer interface {
	Write(w io.Writer, summary *entity.AuditSummary) error
}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatConsole:
		return NewConsoleWriter(), nil
	case FormatJSON:
		return JSONWriter{}, nil
	case FormatYAML:
		return YAMLWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported report format %q", entity.ErrInvalidConfiguration, format)
	}
}

// Sink collects document reports in arrival order and writes them once on Flush.
type Sink struct {
	out     io.Writer
	writer  Writer
	logger  output.LoggerPort
	reports []entity.DocumentReport
}

func NewSink(out io.Writer, writer Writer, logger output.LoggerPort) *Sink {
	return &Sink{out: out, writer: writer, logger: logger}
}

func (s *Sink) Add(ctx context.Context, report entity.DocumentReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if report.TotalFailed > report.TotalChecked {
		return fmt.Errorf("report for %s: failed count %d exceeds checked count %d",
			report.PageIdentifier, report.TotalFailed, report.TotalChecked)
	}
	s.reports = append(s.reports, report)
	s.logger.Info("Document report added",
		"page", report.PageIdentifier,
		"checked", report.TotalChecked,
		"failed", report.TotalFailed,
	)
	return nil
}

func (s *Sink) Flush(ctx context.Context, mode entity.Mode, level entity.Level) (*entity.AuditSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &entity.AuditSummary{
		Mode:      mode,
		Level:     level,
		Documents: make([]entity.DocumentReport, 0, len(s.reports)),
	}
	for _, r := range s.reports {
		summary.Add(r)
	}
	s.reports = nil

	if err := s.writer.Write(s.out, summary); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return summary, nil
}

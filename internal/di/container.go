package di

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"contrast-audit/internal/application/port/input"
	"contrast-audit/internal/application/port/output"
	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/infrastructure/browser/rod"
	"contrast-audit/internal/infrastructure/cssparser"
	"contrast-audit/internal/infrastructure/document"
	"contrast-audit/internal/infrastructure/logger"
	"contrast-audit/internal/infrastructure/report"
	"contrast-audit/internal/usecase/audit"
)

type Container struct {
	Browser output.StyleSource
	Logger  output.LoggerPort
	Sink    output.ReportSink
	Auditor input.Auditor

	reportFile *os.File
}

type Config struct {
	Level entity.Level
	Mode  entity.Mode

	BrowserHeadless  bool
	BrowserNoSandbox bool
	BrowserTimeout   time.Duration

	ReportFormat string
	ReportPath   string

	// ReportOut is used when ReportPath is empty. Defaults to stdout.
	ReportOut io.Writer

	LogLevel string
	LogFile  string
}

// NewContainer validates cfg and builds the auditor. A browser is only launched for dynamic mode.
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	if !cfg.Level.Valid() {
		return nil, fmt.Errorf("%w: unsupported conformance level %q (use AA or AAA)", entity.ErrInvalidConfiguration, cfg.Level)
	}
	format, err := report.ParseFormat(cfg.ReportFormat)
	if err != nil {
		return nil, err
	}
	writer, err := report.NewWriter(format)
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLoggerAdapter(logger.Config{Level: cfg.LogLevel, FilePath: cfg.LogFile})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	c := &Container{Logger: log}

	out := cfg.ReportOut
	if out == nil {
		out = os.Stdout
	}
	if cfg.ReportPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.ReportPath), 0755); err != nil {
			c.Close()
			return nil, fmt.Errorf("create report dir: %w", err)
		}
		f, err := os.Create(cfg.ReportPath)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("create report file: %w", err)
		}
		c.reportFile = f
		out = f
	}
	c.Sink = report.NewSink(out, writer, log)

	var (
		styles    output.StyleSource
		documents output.DocumentSource
		parser    output.StylesheetParser
	)
	switch cfg.Mode {
	case entity.ModeDynamic:
		browserCfg := rod.DefaultConfig()
		browserCfg.Headless = cfg.BrowserHeadless
		browserCfg.NoSandbox = cfg.BrowserNoSandbox
		browserCfg.DisableSecurityFeatures = true
		if cfg.BrowserTimeout > 0 {
			browserCfg.Timeout = cfg.BrowserTimeout
		}
		browser, err := rod.NewBrowserAdapter(ctx, browserCfg, log)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to create browser: %w", err)
		}
		c.Browser = browser
		styles = browser
	case entity.ModeStatic:
		documents = document.NewLoader(document.DefaultConfig(), log)
		parser = cssparser.New()
	default:
		c.Close()
		return nil, fmt.Errorf("%w: unknown mode %q", entity.ErrInvalidConfiguration, cfg.Mode)
	}

	c.Auditor = audit.New(styles, documents, parser, c.Sink, log, cfg.Level)
	return c, nil
}

func (c *Container) Close() {
	if c.Browser != nil {
		c.Browser.Close()
	}
	if c.reportFile != nil {
		if err := c.reportFile.Close(); err != nil && c.Logger != nil {
			c.Logger.Error("Failed to close report file", "error", err)
		}
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}

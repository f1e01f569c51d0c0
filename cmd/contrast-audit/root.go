package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"contrast-audit/internal/di"
	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/infrastructure/env"

	"github.com/spf13/cobra"
)

// errAuditFailed signals a completed audit with failures. The report already says why.
var errAuditFailed = errors.New("audit found contrast failures")

var (
	settings   *env.EnvService
	baseConfig di.Config
)

var rootCmd = &cobra.Command{
	Use:   "contrast-audit",
	Short: "Check text color contrast against WCAG 2.x",
	Long: "Audits text elements of web pages (rendered in a headless browser) or of local HTML files " +
		"(styled from their class stylesheets) and reports every element whose contrast ratio is below " +
		"the WCAG AA or AAA threshold.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, errAuditFailed) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	stop()
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringP("level", "l", "", "WCAG conformance level: AA or AAA (env CONTRAST_LEVEL, default AA)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Report format: console, json or yaml (env REPORT_FORMAT, default console)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Write the report to this file instead of stdout (env REPORT_PATH)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (env LOG_LEVEL, default info)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = env.NewEnvService()
		if err != nil {
			return err
		}

		baseConfig = di.Config{
			Level:        parseLevel(stringSetting(cmd, "level", env.KeyContrastLevel, string(entity.LevelAA))),
			ReportFormat: stringSetting(cmd, "format", env.KeyReportFormat, "console"),
			ReportPath:   stringSetting(cmd, "output", env.KeyReportPath, ""),
			LogLevel:     stringSetting(cmd, "log-level", env.KeyLogLevel, "info"),
			LogFile:      settings.Get(env.KeyLogFile),
		}
		return nil
	}
}

// stringSetting prefers an explicitly set flag, then the environment, then def.
func stringSetting(cmd *cobra.Command, flag, key, def string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	return settings.GetWithDefault(key, def)
}

func parseLevel(s string) entity.Level {
	return entity.Level(strings.ToUpper(strings.TrimSpace(s)))
}

// runAudit builds the container for mode, runs audit and maps the summary to the exit status.
func runAudit(
	ctx context.Context,
	cfg di.Config,
	audit func(ctx context.Context, c *di.Container) (*entity.AuditSummary, error),
) error {
	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	container.Logger.Info("Audit started", "mode", string(cfg.Mode), "wcag", cfg.Level.String())

	summary, err := audit(ctx, container)
	if err != nil {
		container.Logger.Error("Audit failed", "error", err)
		return err
	}

	container.Logger.Info("Audit completed",
		"documents", len(summary.Documents),
		"checked", summary.TotalChecked,
		"failed", summary.TotalFailed,
	)
	return exitStatus(summary)
}

func exitStatus(summary *entity.AuditSummary) error {
	if summary.TotalFailed > 0 {
		return errAuditFailed
	}
	for _, doc := range summary.Documents {
		if doc.LoadError != "" {
			return errAuditFailed
		}
	}
	return nil
}

package main

import (
	"context"

	"contrast-audit/internal/di"
	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/infrastructure/env"

	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages URL [URL...]",
	Short: "Audit live pages rendered in a headless browser",
	Long: "Opens each URL (http, https or file) in Chromium, reads the computed style of every text " +
		"element and resolves its background through the ancestor chain.",
	Args: cobra.MinimumNArgs(1),
	RunE: runPages,
}

func init() {
	rootCmd.AddCommand(pagesCmd)
	pagesCmd.Flags().Bool("headless", true, "Run the browser without a window (env BROWSER_HEADLESS)")
	pagesCmd.Flags().Bool("no-sandbox", false, "Disable the Chromium sandbox, needed in some containers (env BROWSER_NO_SANDBOX)")
	pagesCmd.Flags().Duration("timeout", 0, "Per-page load timeout (env BROWSER_TIMEOUT, default 10s)")
}

func runPages(cmd *cobra.Command, args []string) error {
	cfg := baseConfig
	cfg.Mode = entity.ModeDynamic
	cfg.BrowserHeadless = settings.GetBool(env.KeyBrowserHeadless, true)
	cfg.BrowserNoSandbox = settings.GetBool(env.KeyBrowserNoSandbox, false)
	cfg.BrowserTimeout = settings.GetDuration(env.KeyBrowserTimeout, 0)

	if cmd.Flags().Changed("headless") {
		cfg.BrowserHeadless, _ = cmd.Flags().GetBool("headless")
	}
	if cmd.Flags().Changed("no-sandbox") {
		cfg.BrowserNoSandbox, _ = cmd.Flags().GetBool("no-sandbox")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.BrowserTimeout, _ = cmd.Flags().GetDuration("timeout")
	}

	return runAudit(cmd.Context(), cfg, func(ctx context.Context, c *di.Container) (*entity.AuditSummary, error) {
		return c.Auditor.AuditPages(ctx, args)
	})
}

package main

import (
	"context"
	"fmt"

	"contrast-audit/internal/di"
	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/infrastructure/document"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files PATH [PATH...]",
	Short: "Audit local HTML files without a browser",
	Long: "Reads each HTML file (directories are searched for .html and .htm files), indexes the " +
		"class rules of its local stylesheets and evaluates text elements from those rules and " +
		"inline styles.",
	Args: cobra.MinimumNArgs(1),
	RunE: runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	paths, err := document.Discover(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no HTML files found in %v", args)
	}

	cfg := baseConfig
	cfg.Mode = entity.ModeStatic

	return runAudit(cmd.Context(), cfg, func(ctx context.Context, c *di.Container) (*entity.AuditSummary, error) {
		return c.Auditor.AuditFiles(ctx, paths)
	})
}

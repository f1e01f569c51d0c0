package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"contrast-audit/internal/domain/entity"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

type JSONWriter struct{}

func (JSONWriter) Write(w io.Writer, summary *entity.AuditSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(summary)
}

type YAMLWriter struct{}

func (YAMLWriter) Write(w io.Writer, summary *entity.AuditSummary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return err
	}
	return enc.Close()
}

// ConsoleWriter prints a human summary with one block per document.
type ConsoleWriter struct {
	title  lipgloss.Style
	pass   lipgloss.Style
	fail   lipgloss.Style
	dim    lipgloss.Style
	reason lipgloss.Style
}

func NewConsoleWriter() ConsoleWriter {
	return ConsoleWriter{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		pass:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		fail:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		dim:    lipgloss.NewStyle().Faint(true),
		reason: lipgloss.NewStyle().PaddingLeft(4),
	}
}

func (c ConsoleWriter) Write(w io.Writer, summary *entity.AuditSummary) error {
	var sb strings.Builder

	sb.WriteString(c.title.Render(fmt.Sprintf("WCAG %s contrast audit (%s mode)", summary.Level, summary.Mode)))
	sb.WriteString("\n\n")

	for _, doc := range summary.Documents {
		switch {
		case doc.LoadError != "":
			sb.WriteString(c.fail.Render("✗ " + doc.PageIdentifier))
			sb.WriteString(c.dim.Render("  not audited: " + doc.LoadError))
		case doc.TotalFailed == 0:
			sb.WriteString(c.pass.Render("✓ " + doc.PageIdentifier))
			sb.WriteString(c.dim.Render(fmt.Sprintf("  %d checked", doc.TotalChecked)))
		default:
			sb.WriteString(c.fail.Render("✗ " + doc.PageIdentifier))
			sb.WriteString(c.dim.Render(fmt.Sprintf("  %d checked, %d failed", doc.TotalChecked, doc.TotalFailed)))
		}
		sb.WriteString("\n")

		for _, e := range doc.Entries {
			sb.WriteString(c.reason.Render(e.Reason))
			sb.WriteString("\n")
			sb.WriteString(c.reason.Render(c.dim.Render(oneLine(e.Markup))))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	totals := fmt.Sprintf("%d documents, %d elements checked, %d failed",
		len(summary.Documents), summary.TotalChecked, summary.TotalFailed)
	if summary.TotalFailed > 0 {
		sb.WriteString(c.fail.Render(totals))
	} else {
		sb.WriteString(c.pass.Render(totals))
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

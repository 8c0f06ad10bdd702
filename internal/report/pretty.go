// Package report implements the Output Formatter external collaborator
// spec.md §6 names, rendering a Report as pretty (colored terminal),
// JSON, or SARIF 2.1.0.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hollowcheck/hollowcheck/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	passStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyleTop = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	fileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	severityStyles = map[domain.Severity]lipgloss.Style{
		domain.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		domain.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		domain.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		domain.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		domain.SeverityInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
)

// PrettyFormatter renders a Report as colored terminal output, honoring
// NO_COLOR the way lipgloss's renderer does when writing to a non-tty.
type PrettyFormatter struct{}

func NewPrettyFormatter() *PrettyFormatter { return &PrettyFormatter{} }

func (f *PrettyFormatter) Format(r *domain.Report) ([]byte, error) {
	if os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(0)
	}

	var b strings.Builder

	verdict := passStyle.Render(fmt.Sprintf("PASS  score %d/100  grade %s", r.Score, r.Grade))
	if !r.Passed {
		verdict = failStyleTop.Render(fmt.Sprintf("FAIL  score %d/100  grade %s", r.Score, r.Grade))
	}
	b.WriteString(titleStyle.Render("hollowcheck") + "  " + verdict + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("threshold %d  files scanned %d  violations %d",
		r.Threshold, r.Summary.FilesScanned, r.Summary.ViolationsTotal)) + "\n\n")

	for _, v := range r.Violations {
		style := severityStyles[v.Severity]
		location := fileStyle.Render(v.File)
		if v.Line > 0 {
			location += fmt.Sprintf(":%d", v.Line)
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", style.Render(string(v.Rule)), location, v.Message))
	}

	if len(r.Suppressed) > 0 {
		b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("%d suppressed finding(s) hidden", len(r.Suppressed))) + "\n")
	}

	if len(r.Breakdown) > 0 {
		b.WriteString("\n" + titleStyle.Render("breakdown") + "\n")
		for _, entry := range r.Breakdown {
			b.WriteString(fmt.Sprintf("  %-26s %3d pts  x%d\n", entry.Rule, entry.Points, entry.Violations))
		}
	}

	return []byte(b.String()), nil
}

var _ domain.ReportFormatter = (*PrettyFormatter)(nil)

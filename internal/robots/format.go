package robots

import (
	"fmt"
	"strings"

	"github.com/eykd/robotslint-go/internal/domain"
)

// FormatReport renders a report as human-readable text: a single-line
// success message for a clean report, otherwise an "Errors:" section
// and a "Warnings:" section, each listing findings as "Line <n>:
// <message>" in report order. A section is omitted when empty; both
// present are separated by a blank line.
func FormatReport(r *domain.Report) string {
	if r.Valid && len(r.Warnings) == 0 {
		return "robots.txt is valid"
	}

	var sections []string
	if len(r.Errors) > 0 {
		sections = append(sections, formatSection("Errors:", r.Errors))
	}
	if len(r.Warnings) > 0 {
		sections = append(sections, formatSection("Warnings:", r.Warnings))
	}
	return strings.Join(sections, "\n\n")
}

// formatSection renders one header plus its findings, one per line.
func formatSection(header string, findings []domain.Finding) string {
	lines := make([]string, 0, len(findings)+1)
	lines = append(lines, header)
	for _, f := range findings {
		lines = append(lines, fmt.Sprintf("Line %d: %s", f.Line, f.Message))
	}
	return strings.Join(lines, "\n")
}

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hueforge/huebuild/internal/models"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// renderReport is the terminal rendition of the validation report: same
// content and ordering as validate.Report, with colored markers.
func renderReport(results map[string]models.ValidationResult) string {
	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	for _, id := range ids {
		result := results[id]

		marker := passStyle.Render("PASS")
		if !result.Valid {
			marker = failStyle.Render("FAIL")
		}
		fmt.Fprintf(&sb, "theme %s: %s\n", id, marker)

		for _, e := range result.Errors {
			fmt.Fprintf(&sb, "  - %s %s\n", errStyle.Render("error:"), e)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(&sb, "  - %s %s\n", warnStyle.Render("warning:"), w)
		}
	}
	return sb.String()
}

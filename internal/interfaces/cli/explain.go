package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/strataconf/strata/internal/core/domain"
)

var (
	explainTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))

	explainHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("246"))

	primaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	overlayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// renderProvenance renders the contributing-source table for a resolved
// snapshot.
func renderProvenance(res *domain.ConfigResult) string {
	var b strings.Builder

	b.WriteString(explainTitleStyle.Render("Provenance"))
	b.WriteString("\n")
	b.WriteString(explainHeaderStyle.Render(fmt.Sprintf("%-12s %-10s %s", "SOURCE", "PRIORITY", "PATH")))
	b.WriteString("\n")

	if len(res.ContributingSources) == 0 {
		b.WriteString("(no source contributed; resolved from an empty object)\n")
	}
	for _, src := range res.ContributingSources {
		line := fmt.Sprintf("%-12s %-10d %s", src.Kind, src.Priority, src.Path)
		switch {
		case src.Kind == res.PrimarySource:
			line = primaryStyle.Render(line + "  (primary)")
		case src.Kind == domain.SourceEnvVars:
			line = overlayStyle.Render(line + "  (overlay)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Resolved at %s", res.LoadedAt.Format(time.RFC3339)))
	return b.String()
}

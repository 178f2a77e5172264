package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/siteaudit/internal/domain"
	"github.com/abdidvp/siteaudit/internal/domain/scoring"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	penaltyStyle       = lipgloss.NewStyle().Foreground(warning)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderChecks lists the check catalog grouped by dimension.
func RenderChecks(checks []scoring.CheckInfo) string {
	byDimension := map[domain.Dimension][]scoring.CheckInfo{}
	for _, c := range checks {
		byDimension[c.Dimension] = append(byDimension[c.Dimension], c)
	}

	var b strings.Builder
	for _, d := range domain.Dimensions {
		items := byDimension[d]
		if len(items) == 0 {
			continue
		}

		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n",
			sectionHeaderStyle.Render(DimensionTitle(d)),
			dimStyle.Render(fmt.Sprintf("(%d)", len(items))),
		)
		for _, c := range items {
			fmt.Fprintf(&b, "    %s %s %s\n",
				penaltyStyle.Render("●"),
				padRight(c.Label, 28),
				dimStyle.Render(c.Penalty),
			)
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + hintStyle.Render("Every dimension starts at 100; failed checks subtract their penalty."))
	b.WriteString("\n")
	return b.String()
}

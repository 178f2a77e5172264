package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/siteaudit/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	lime    = lipgloss.Color("#A3E635")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lime,
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

var dimensionTitles = map[domain.Dimension]string{
	domain.DimensionPerformance:   "Performance",
	domain.DimensionSEO:           "SEO",
	domain.DimensionUI:            "UI/UX",
	domain.DimensionAccessibility: "Accessibility",
	domain.DimensionCopy:          "Copy",
}

// RenderReport formats an audit report for terminal output.
func RenderReport(report domain.AuditReport) string {
	var b strings.Builder

	grade := report.Grade()
	title := headerStyle.Render("siteaudit")
	subtitle := dimStyle.Render(report.URL)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100", report.OverallScore))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	for _, d := range domain.Dimensions {
		renderDimensionSummary(&b, d, report.ScoreFor(d).Score)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")

	issues := 0
	for _, d := range domain.Dimensions {
		s := report.ScoreFor(d)
		if len(s.Issues) == 0 {
			continue
		}
		issues += len(s.Issues)
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(DimensionTitle(d)), dimStyle.Render(fmt.Sprintf("(%d)", len(s.Issues))))
		for i, issue := range s.Issues {
			fmt.Fprintf(&b, "    %s %s\n", failStyle.Render("●"), issue)
			if i < len(s.Recommendations) {
				fmt.Fprintf(&b, "      %s\n", faintStyle.Render("→ "+s.Recommendations[i]))
			}
		}
	}
	if issues == 0 {
		b.WriteString("\n  " + passStyle.Render("No issues found.") + "\n")
	}

	b.WriteString("\n")
	footer := "audited " + report.Timestamp.Format(time.RFC3339)
	if report.CommitHash != "" {
		footer += "  commit " + shortHash(report.CommitHash)
	}
	b.WriteString("  " + dimStyle.Render(footer) + "\n")
	return b.String()
}

// DimensionTitle returns the display name of d.
func DimensionTitle(d domain.Dimension) string {
	if t, ok := dimensionTitles[d]; ok {
		return t
	}
	return string(d)
}

func renderDimensionSummary(b *strings.Builder, d domain.Dimension, score int) {
	color := scoreColor(score)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%3d", score))
	name := dimNameStyle.Render(padRight(DimensionTitle(d), 16))
	fmt.Fprintf(b, "  %s %s  %s\n", name, coloredBar(score, 30), scoreText)
}

// RenderHistory formats recorded audits, newest first, for terminal output.
// Each line shows the change against the next older audit of the same URL.
func RenderHistory(events []domain.Event) string {
	if len(events) == 0 {
		return "  " + dimStyle.Render("No audit history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Audit History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 64)) + "\n\n")

	for i, e := range events {
		overall := int(e.Value)
		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(overall)).
			Render(fmt.Sprintf("%3d/100", overall))

		line := fmt.Sprintf("  %s  %s  %-2s  %s",
			dimStyle.Render(e.CreatedAt.Format("2006-01-02 15:04")),
			scoreStyled,
			domain.GradeFor(overall),
			e.Label,
		)

		if prev, ok := previousAudit(events[i+1:], e.Label); ok {
			diff := overall - int(prev.Value)
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func previousAudit(older []domain.Event, label string) (domain.Event, bool) {
	for _, e := range older {
		if e.Label == label {
			return e, true
		}
	}
	return domain.Event{}, false
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}

package render

import "github.com/charmbracelet/lipgloss"

// Severity bands for Children%/Self% cells, modeled on the teacher's
// prompt/error/tool/hint style quartet but keyed to percentage rather than
// message role.
var (
	severityHot  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // >= 50%
	severityWarm = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // >= 20%
	severityCool = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))            // >= 5%
	severityCold = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))           // < 5%

	headerStyle     = lipgloss.NewStyle().Bold(true)
	annotationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	standaloneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

func severityStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 50:
		return severityHot
	case pct >= 20:
		return severityWarm
	case pct >= 5:
		return severityCool
	default:
		return severityCold
	}
}

// stylePercent renders a percentage cell, applying severity coloring only
// when mode is enabled; disabled mode produces byte-identical plain text.
func stylePercent(pct float64, mode ColorMode) string {
	text := formatPercent(pct)
	if !mode.Enabled {
		return text
	}
	return severityStyle(pct).Render(text)
}

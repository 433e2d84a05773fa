package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// BuildTable renders rows into the three-column Children%/Self%/Function
// table described in SPEC_FULL.md §6. Percentage coloring is already baked
// into each cell by the Row builders; this function only owns borders and
// header emphasis. Both modes draw lipgloss's normal border; the header is
// bolded only when mode is enabled.
func BuildTable(rows []Row, mode ColorMode) string {
	t := table.New().
		Headers("Children%", "Self%", "Function").
		Rows(toCells(rows)...)

	if mode.Enabled {
		t = t.Border(lipgloss.NormalBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle.Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})
	} else {
		t = t.Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle()).
			StyleFunc(func(row, col int) lipgloss.Style {
				return lipgloss.NewStyle().Padding(0, 1)
			})
	}

	return t.Render()
}

func toCells(rows []Row) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.ChildrenPct, r.SelfPct, r.Function})
	}
	return cells
}

package render

import (
	"sort"

	"github.com/scarpart/pperf/internal/hierarchy"
	"github.com/scarpart/pperf/internal/report"
)

// Row is one renderable line of the output table.
type Row struct {
	ChildrenPct string
	SelfPct     string
	Function    string
}

// SortKey selects which percentage column drives ordering in flat mode.
type SortKey int

const (
	SortByChildren SortKey = iota
	SortBySelf
)

// FlatRows builds the non-hierarchy table: every averaged entry, sorted by
// sortKey descending, truncated to limit (limit <= 0 means unlimited).
func FlatRows(entries []report.AveragedEntry, sortKey SortKey, limit int, mode ColorMode) []Row {
	sorted := append([]report.AveragedEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sortKey == SortBySelf {
			return sorted[i].SelfPct > sorted[j].SelfPct
		}
		return sorted[i].ChildrenPct > sorted[j].ChildrenPct
	})
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	rows := make([]Row, 0, len(sorted))
	for _, e := range sorted {
		rows = append(rows, Row{
			ChildrenPct: stylePercent(e.ChildrenPct, mode),
			SelfPct:     stylePercent(e.SelfPct, mode),
			Function:    simplifyName(e.Symbol),
		})
	}
	return rows
}

// HierarchyRows flattens an assembled hierarchy into display rows, Pass-1
// entries (and their nested callees) first, Pass-2 standalone entries
// after — Assemble already orders the slice that way.
func HierarchyRows(entries []hierarchy.HierarchyEntry, debug bool, mode ColorMode, useSelfSort bool) []Row {
	var rows []Row
	for _, e := range entries {
		rows = append(rows, entryRow(e, 0, mode))
		if debug {
			rows = append(rows, debugRows(e, useSelfSort)...)
		}
		rows = append(rows, calleeRows(e.Callees, 1, debug, mode)...)
	}
	return rows
}

func entryRow(e hierarchy.HierarchyEntry, depth int, mode ColorMode) Row {
	name := indentFunction(simplifyName(e.Symbol), depth)
	if e.IsStandalone && mode.Enabled {
		name = standaloneStyle.Render(name)
	}
	return Row{
		ChildrenPct: stylePercent(e.AdjustedChildrenPct, mode),
		SelfPct:     stylePercent(e.OriginalSelfPct, mode),
		Function:    name,
	}
}

func debugRows(e hierarchy.HierarchyEntry, useSelf bool) []Row {
	var lines []string
	if e.IsStandalone {
		lines = append(lines, annotateStandalone(e))
	}
	if len(e.PerReportValues) > 1 {
		lines = append(lines, annotateValues(e.PerReportValues, useSelf))
	}
	if len(lines) == 0 {
		return nil
	}
	rows := make([]Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, Row{Function: annotationStyle.Render(l)})
	}
	return rows
}

func calleeRows(callees []hierarchy.DisplayCallee, depth int, debug bool, mode ColorMode) []Row {
	var rows []Row
	for _, c := range callees {
		name := indentFunction(simplifyName(c.Relation.Callee), depth)
		rows = append(rows, Row{
			ChildrenPct: stylePercent(c.Relation.RelativePct, mode),
			SelfPct:     stylePercent(0, mode),
			Function:    name,
		})
		if debug {
			rows = append(rows, Row{Function: annotationStyle.Render(annotateRelation(c.Relation))})
		}
		rows = append(rows, calleeRows(c.Children, depth+1, debug, mode)...)
	}
	return rows
}

package render

import (
	"fmt"
	"strings"

	"github.com/scarpart/pperf/internal/hierarchy"
	"github.com/scarpart/pperf/internal/report"
)

func formatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

func indentFunction(name string, depth int) string {
	return strings.Repeat(" ", depth*4) + name
}

// annotateRelation implements the "(direct: ...)" / "(via ... = R.RR%)"
// debug line for one CallRelation, per SPEC_FULL.md §6.
func annotateRelation(rel hierarchy.CallRelation) string {
	if len(rel.IntermediaryPath) == 0 {
		return fmt.Sprintf("(direct: %.2f%%)", rel.RelativePct)
	}
	var b strings.Builder
	b.WriteString("(via ")
	for _, step := range rel.IntermediaryPath {
		fmt.Fprintf(&b, "%s %.2f%% × ", step.SimplifiedName, step.StepPercent)
	}
	fmt.Fprintf(&b, "%.2f%% = %.2f%%)", rel.CalleeStepPct, rel.RelativePct)
	return b.String()
}

// annotateStandalone implements the "(standalone: O.OO% - ... = A.AA%)"
// debug line for a Pass-2 HierarchyEntry.
func annotateStandalone(e hierarchy.HierarchyEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(standalone: %.2f%%", e.OriginalChildrenPct)
	for _, c := range e.Contributions {
		fmt.Fprintf(&b, " - %.2f%% (%s)", c.AbsolutePct, simplifyName(c.Caller))
	}
	fmt.Fprintf(&b, " = %.2f%%)", e.AdjustedChildrenPct)
	return b.String()
}

// annotateValues implements the "(values: v1%, v2%, ...)" debug line shown
// for multi-report runs, with "-" standing in for an absent report.
func annotateValues(slots []report.Slot, useSelf bool) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		if !s.Present {
			parts = append(parts, "-")
			continue
		}
		v := s.ChildrenPct
		if useSelf {
			v = s.SelfPct
		}
		parts = append(parts, fmt.Sprintf("%.2f%%", v))
	}
	return "(values: " + strings.Join(parts, ", ") + ")"
}

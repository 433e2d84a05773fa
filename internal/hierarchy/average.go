package hierarchy

import (
	"fmt"
	"strings"
)

// AverageRelations merges the per-report relation multisets produced by
// FindRelations (one call per report) into a single list, averaging
// RelativePct and AbsolutePct over the reports in which each
// (caller, callee, context_root, intermediary_path) group appears —
// missing reports are excluded from the mean, consistent with C3.
func AverageRelations(perReport [][]CallRelation) []CallRelation {
	type acc struct {
		template CallRelation
		relSum   float64
		absSum   float64
		stepSum  float64
		count    int
	}

	var order []string
	accs := make(map[string]*acc)

	for _, relations := range perReport {
		for _, r := range relations {
			key := relationKey(r)
			a, ok := accs[key]
			if !ok {
				a = &acc{template: r}
				accs[key] = a
				order = append(order, key)
			}
			a.relSum += r.RelativePct
			a.absSum += r.AbsolutePct
			a.stepSum += r.CalleeStepPct
			a.count++
		}
	}

	result := make([]CallRelation, 0, len(order))
	for _, key := range order {
		a := accs[key]
		rel := a.template
		rel.RelativePct = a.relSum / float64(a.count)
		rel.AbsolutePct = a.absSum / float64(a.count)
		rel.CalleeStepPct = a.stepSum / float64(a.count)
		result = append(result, rel)
	}
	return result
}

func relationKey(r CallRelation) string {
	var b strings.Builder
	b.WriteString(r.Caller)
	b.WriteByte('\x00')
	b.WriteString(r.Callee)
	b.WriteByte('\x00')
	b.WriteString(r.ContextRoot)
	b.WriteByte('\x00')
	for _, s := range r.IntermediaryPath {
		fmt.Fprintf(&b, "%s@%.4f|", s.RawName, s.StepPercent)
	}
	return b.String()
}

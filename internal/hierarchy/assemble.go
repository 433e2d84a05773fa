package hierarchy

import (
	"fmt"
	"sort"

	"github.com/scarpart/pperf/internal/apperr"
	"github.com/scarpart/pperf/internal/perfreport"
	"github.com/scarpart/pperf/internal/report"
	"github.com/scarpart/pperf/internal/symbolize"
)

// DisplayCallee is one row nested beneath a HierarchyEntry: the relation
// that produced it, plus its own callees-of-callees in the same context.
type DisplayCallee struct {
	Relation CallRelation
	Children []DisplayCallee
}

// HierarchyEntry is a displayable row bundle for one target.
type HierarchyEntry struct {
	Symbol               string
	OriginalChildrenPct  float64
	OriginalSelfPct      float64
	AdjustedChildrenPct  float64
	Callees              []DisplayCallee
	Contributions        []Contribution
	PerReportValues      []report.Slot
	IsStandalone         bool // true for a Pass-2 row
}

// SortKey selects the primary ordering field.
type SortKey int

const (
	SortByChildren SortKey = iota
	SortBySelf
)

// Assemble runs the C7 two-pass model: Pass 1 emits every target that is
// never anyone's callee as a root row with its nested target callees
// attached; Pass 2 emits a standalone remainder row for every target that
// IS somebody's callee, adjusted by subtracting its contributions.
func Assemble(targetOrder []string, averaged map[string]report.AveragedEntry, red Reduction, sortKey SortKey) ([]HierarchyEntry, error) {
	if len(targetOrder) == 0 {
		return nil, fmt.Errorf("hierarchy requires a non-empty target set: %w", apperr.ErrInvalidArguments)
	}
	for _, t := range targetOrder {
		if _, ok := averaged[t]; !ok {
			return nil, fmt.Errorf("no averaged entry for target %q: %w", t, apperr.ErrInternalInvariant)
		}
	}

	consumed := make(map[string]float64)
	var pass1 []HierarchyEntry

	for _, t := range targetOrder {
		if len(red.Contrib[t]) > 0 {
			continue // t is somebody's callee; it gets a Pass-2 row instead
		}
		ae := averaged[t]
		entry := HierarchyEntry{
			Symbol:              t,
			OriginalChildrenPct: ae.ChildrenPct,
			OriginalSelfPct:     ae.SelfPct,
			AdjustedChildrenPct: ae.ChildrenPct,
			PerReportValues:     ae.PerReportValues,
		}
		entry.Callees = buildNestedCallees(t, t, red, consumed)
		pass1 = append(pass1, entry)
	}
	sortEntries(pass1, sortKey)

	var pass2 []HierarchyEntry
	for _, t := range targetOrder {
		contribs := red.Contrib[t]
		if len(contribs) == 0 {
			continue
		}
		ae := averaged[t]
		var sum float64
		for _, c := range contribs {
			sum += c.AbsolutePct
		}
		adjusted := ae.ChildrenPct - sum
		if adjusted < 0 {
			adjusted = 0
		}
		if adjusted < perfreport.Epsilon && ae.SelfPct <= 0 {
			continue // floored to zero and no self time of its own: omit
		}

		entry := HierarchyEntry{
			Symbol:              t,
			OriginalChildrenPct: ae.ChildrenPct,
			OriginalSelfPct:     ae.SelfPct,
			AdjustedChildrenPct: adjusted,
			Contributions:       contribs,
			PerReportValues:     ae.PerReportValues,
			IsStandalone:        true,
		}
		entry.Callees = buildStandaloneCallees(t, red, consumed, map[string]bool{})
		pass2 = append(pass2, entry)
	}
	sortEntries(pass2, sortKey)

	return dedupeBySimplifiedSymbol(append(pass1, pass2...)), nil
}

// buildNestedCallees recursively attaches root's target callees, in the
// same root context, marking each as consumed so Pass 2 knows how much of
// a callee's time was already shown.
func buildNestedCallees(root, caller string, red Reduction, consumed map[string]float64) []DisplayCallee {
	list := red.Nested[RootCallerKey{Root: root, Caller: caller}]
	out := make([]DisplayCallee, 0, len(list))
	for _, rel := range list {
		consumed[rel.Callee] += rel.AbsolutePct
		out = append(out, DisplayCallee{
			Relation: rel,
			Children: buildNestedCallees(root, rel.Callee, red, consumed),
		})
	}
	return out
}

// buildStandaloneCallees gathers t's callees across every root context it
// was observed in (the source data cannot say which root "owns" the
// remainder), picking the strongest relation per distinct callee and
// skipping ones already fully accounted for in Pass 1.
func buildStandaloneCallees(t string, red Reduction, consumed map[string]float64, visiting map[string]bool) []DisplayCallee {
	if visiting[t] {
		return nil
	}
	visiting[t] = true
	defer delete(visiting, t)

	best := make(map[string]CallRelation)
	var order []string
	for k, list := range red.Nested {
		if k.Caller != t {
			continue
		}
		for _, rel := range list {
			b, ok := best[rel.Callee]
			if !ok {
				order = append(order, rel.Callee)
				best[rel.Callee] = rel
				continue
			}
			if rel.AbsolutePct > b.AbsolutePct {
				best[rel.Callee] = rel
			}
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return best[order[i]].AbsolutePct > best[order[j]].AbsolutePct
	})

	var out []DisplayCallee
	for _, callee := range order {
		rel := best[callee]
		if consumed[callee] >= rel.AbsolutePct-perfreport.Epsilon {
			continue
		}
		out = append(out, DisplayCallee{
			Relation: rel,
			Children: buildStandaloneCallees(callee, red, consumed, visiting),
		})
	}
	return out
}

func sortEntries(entries []HierarchyEntry, key SortKey) {
	sort.SliceStable(entries, func(i, j int) bool {
		if key == SortBySelf {
			return entries[i].OriginalSelfPct > entries[j].OriginalSelfPct
		}
		return entries[i].OriginalChildrenPct > entries[j].OriginalChildrenPct
	})
}

// dedupeBySimplifiedSymbol collapses entries whose simplified display name
// collides, keeping the one with the highest OriginalChildrenPct. This is a
// rendering-only step; raw symbols remain the attribution key everywhere
// else.
func dedupeBySimplifiedSymbol(entries []HierarchyEntry) []HierarchyEntry {
	bestIdx := make(map[string]int)
	var order []string
	for i, e := range entries {
		key := symbolize.Simplify(e.Symbol)
		j, ok := bestIdx[key]
		if !ok {
			bestIdx[key] = i
			order = append(order, key)
			continue
		}
		if entries[i].OriginalChildrenPct > entries[j].OriginalChildrenPct {
			bestIdx[key] = i
		}
	}
	result := make([]HierarchyEntry, 0, len(order))
	for _, key := range order {
		result = append(result, entries[bestIdx[key]])
	}
	return result
}

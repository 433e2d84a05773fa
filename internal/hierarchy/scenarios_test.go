package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scarpart/pperf/internal/perfreport"
	"github.com/scarpart/pperf/internal/report"
)

func childrenPctIndex(avg map[string]report.AveragedEntry) func(string) float64 {
	return func(s string) float64 { return avg[s].ChildrenPct }
}

// TestScenarioS1 reproduces spec.md S1: A(30.00,0.00) -> B(50%) -> C(40%),
// targets = {A, C}, C also a top-level entry at (20.00, 5.00).
func TestScenarioS1(t *testing.T) {
	tree := &perfreport.CallTreeNode{
		Symbol:      "A",
		RelativePct: 100,
		Children: []*perfreport.CallTreeNode{{
			Symbol:      "B",
			RelativePct: 50,
			Children: []*perfreport.CallTreeNode{{
				Symbol:      "C",
				RelativePct: 40,
			}},
		}},
	}
	parsed := &perfreport.ParsedReport{
		Entries: []perfreport.PerfEntry{
			{Symbol: "A", ChildrenPct: 30.00, SelfPct: 0.00},
			{Symbol: "C", ChildrenPct: 20.00, SelfPct: 5.00},
		},
		Trees: []*perfreport.CallTreeNode{tree, nil},
	}

	avg := map[string]report.AveragedEntry{
		"A": {Symbol: "A", ChildrenPct: 30.00, SelfPct: 0.00},
		"C": {Symbol: "C", ChildrenPct: 20.00, SelfPct: 5.00},
	}
	targets := map[string]bool{"A": true, "C": true}

	relations := FindRelations(parsed, targets, childrenPctIndex(avg))
	require.Len(t, relations, 1)
	rel := relations[0]
	require.Equal(t, "A", rel.Caller)
	require.Equal(t, "C", rel.Callee)
	require.InDelta(t, 20.00, rel.RelativePct, 0.01)
	require.InDelta(t, 6.00, rel.AbsolutePct, 0.01)

	red := Reduce(relations)
	entries, err := Assemble([]string{"A", "C"}, avg, red, SortByChildren)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	root := entries[0]
	require.Equal(t, "A", root.Symbol)
	require.InDelta(t, 30.00, root.AdjustedChildrenPct, 0.01)
	require.Len(t, root.Callees, 1)
	require.Equal(t, "C", root.Callees[0].Relation.Callee)
	require.InDelta(t, 20.00, root.Callees[0].Relation.RelativePct, 0.01)

	standalone := entries[1]
	require.Equal(t, "C", standalone.Symbol)
	require.True(t, standalone.IsStandalone)
	// adjusted = max(0, 20.00 - 6.00) = 14.00
	require.InDelta(t, 14.00, standalone.AdjustedChildrenPct, 0.01)
}

// TestScenarioS2 reproduces spec.md S2: A -> A -> A, target = {A}. The
// recursion guard suppresses the inner occurrences entirely.
func TestScenarioS2(t *testing.T) {
	tree := &perfreport.CallTreeNode{
		Symbol:      "A",
		RelativePct: 100,
		Children: []*perfreport.CallTreeNode{{
			Symbol:      "A",
			RelativePct: 100,
			Children: []*perfreport.CallTreeNode{{
				Symbol:      "A",
				RelativePct: 100,
			}},
		}},
	}
	parsed := &perfreport.ParsedReport{
		Entries: []perfreport.PerfEntry{{Symbol: "A", ChildrenPct: 40.00, SelfPct: 40.00}},
		Trees:   []*perfreport.CallTreeNode{tree},
	}
	avg := map[string]report.AveragedEntry{"A": {Symbol: "A", ChildrenPct: 40.00, SelfPct: 40.00}}
	targets := map[string]bool{"A": true}

	relations := FindRelations(parsed, targets, childrenPctIndex(avg))
	require.Empty(t, relations, "recursion guard must suppress every self-occurrence relation")

	red := Reduce(relations)
	entries, err := Assemble([]string{"A"}, avg, red, SortByChildren)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "A", entries[0].Symbol)
	require.False(t, entries[0].IsStandalone)
	require.Empty(t, entries[0].Callees)
}

// TestScenarioS3 reproduces spec.md S3: shared callee C under two callers
// A and B; C's standalone remainder floors to zero and is omitted.
func TestScenarioS3(t *testing.T) {
	treeA := &perfreport.CallTreeNode{
		Symbol:      "A",
		RelativePct: 100,
		Children: []*perfreport.CallTreeNode{{
			Symbol:      "C",
			RelativePct: 25,
		}},
	}
	treeB := &perfreport.CallTreeNode{
		Symbol:      "B",
		RelativePct: 100,
		Children: []*perfreport.CallTreeNode{{
			Symbol:      "C",
			RelativePct: 10,
		}},
	}
	parsed := &perfreport.ParsedReport{
		Entries: []perfreport.PerfEntry{
			{Symbol: "A", ChildrenPct: 80.00},
			{Symbol: "B", ChildrenPct: 30.00},
			{Symbol: "C", ChildrenPct: 20.00},
		},
		Trees: []*perfreport.CallTreeNode{treeA, treeB, nil},
	}
	avg := map[string]report.AveragedEntry{
		"A": {Symbol: "A", ChildrenPct: 80.00},
		"B": {Symbol: "B", ChildrenPct: 30.00},
		"C": {Symbol: "C", ChildrenPct: 20.00},
	}
	targets := map[string]bool{"A": true, "B": true, "C": true}

	relations := FindRelations(parsed, targets, childrenPctIndex(avg))
	require.Len(t, relations, 2)

	red := Reduce(relations)
	entries, err := Assemble([]string{"A", "B", "C"}, avg, red, SortByChildren)
	require.NoError(t, err)

	// A and B are root callers (Pass 1); C's standalone remainder floors to
	// 0.00 with self_pct == 0, so it is omitted entirely.
	require.Len(t, entries, 2)
	bySymbol := map[string]HierarchyEntry{}
	for _, e := range entries {
		bySymbol[e.Symbol] = e
	}
	require.Contains(t, bySymbol, "A")
	require.Contains(t, bySymbol, "B")
	require.NotContains(t, bySymbol, "C")

	require.InDelta(t, 25.00, bySymbol["A"].Callees[0].Relation.RelativePct, 0.01)
	require.InDelta(t, 20.00, bySymbol["A"].Callees[0].Relation.AbsolutePct, 0.01)
	require.InDelta(t, 10.00, bySymbol["B"].Callees[0].Relation.RelativePct, 0.01)
	require.InDelta(t, 3.00, bySymbol["B"].Callees[0].Relation.AbsolutePct, 0.01)
}

// TestScenarioS6 reproduces spec.md S6: a leaf caller-chain entry never
// emits an outbound CallRelation and surfaces only as its own Pass-1 row
// with no nested callees.
func TestScenarioS6(t *testing.T) {
	callerChainTree := &perfreport.CallTreeNode{
		Symbol:      "L",
		RelativePct: 100,
		NonCallee:   true,
		Children: []*perfreport.CallTreeNode{{
			Symbol:      "X",
			RelativePct: 100,
			NonCallee:   true,
			Children: []*perfreport.CallTreeNode{{
				Symbol:      "Y",
				RelativePct: 100,
				NonCallee:   true,
			}},
		}},
	}
	parsed := &perfreport.ParsedReport{
		Entries: []perfreport.PerfEntry{{Symbol: "L", ChildrenPct: 7.47, SelfPct: 7.47}},
		Trees:   []*perfreport.CallTreeNode{callerChainTree},
	}
	avg := map[string]report.AveragedEntry{"L": {Symbol: "L", ChildrenPct: 7.47, SelfPct: 7.47}}
	targets := map[string]bool{"L": true}

	relations := FindRelations(parsed, targets, childrenPctIndex(avg))
	require.Empty(t, relations)

	red := Reduce(relations)
	entries, err := Assemble([]string{"L"}, avg, red, SortByChildren)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "L", entries[0].Symbol)
	require.False(t, entries[0].IsStandalone)
}

// Package hierarchy implements the relation finder (C5), contribution
// reducer (C6) and hierarchy assembler (C7): the part of pperf that
// discovers caller/callee relationships between target functions and turns
// them into a renderable, percentage-accounted hierarchy.
package hierarchy

import (
	"github.com/scarpart/pperf/internal/perfreport"
	"github.com/scarpart/pperf/internal/symbolize"
)

// Step is one non-target node crossed between a caller and a callee.
type Step struct {
	RawName        string
	SimplifiedName string
	StepPercent    float64
}

// CallRelation is a discovered caller -> callee relationship within one
// traversal of one report's call tree.
type CallRelation struct {
	Caller           string
	Callee           string
	RelativePct      float64
	AbsolutePct      float64
	ContextRoot      string
	IntermediaryPath []Step

	// CalleeStepPct is the callee's own relative percentage against its
	// immediate parent node, i.e. the last factor in the relative_pct
	// product — kept separately for debug-annotation rendering.
	CalleeStepPct float64
}

// frame is the explicit-stack traversal state for one call-tree node
// still being visited. Using an explicit stack (rather than native
// recursion) bounds stack depth regardless of how deep an adversarial
// report's call tree goes.
type frame struct {
	node               *perfreport.CallTreeNode
	childIdx           int
	multSinceParent    float64 // cumulative relative% since the nearest enclosing target
	pushedTarget       bool    // this node is a target; undo target_stack/visited on pop
	pushedIntermediary bool    // this node is a non-target; undo intermediary_path on pop
}

// FindRelations runs the C5 traversal over every top-level entry in report
// whose symbol is a target, and returns every CallRelation discovered.
// childrenPctOf resolves a target's averaged Children% for absolute-percent
// computation.
func FindRelations(report *perfreport.ParsedReport, targets map[string]bool, childrenPctOf func(string) float64) []CallRelation {
	var relations []CallRelation
	for i, entry := range report.Entries {
		if !targets[entry.Symbol] {
			continue
		}
		tree := report.Trees[i]
		if tree == nil || tree.NonCallee {
			continue // no tree, or a leaf-caller-chain entry: no outbound callees
		}
		relations = append(relations, traverseFromRoot(entry.Symbol, tree, targets, childrenPctOf)...)
	}
	return relations
}

// traverseFromRoot implements the algorithm in SPEC_FULL.md §4.5 with an
// explicit stack instead of native recursion.
func traverseFromRoot(rootSymbol string, root *perfreport.CallTreeNode, targets map[string]bool, childrenPctOf func(string) float64) []CallRelation {
	var relations []CallRelation

	targetStack := []string{rootSymbol}
	visited := map[string]bool{rootSymbol: true}
	var intermediary []Step

	stack := []*frame{{node: root, childIdx: 0, multSinceParent: 100.0}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.childIdx >= len(top.node.Children) {
			if top.pushedTarget {
				targetStack = targetStack[:len(targetStack)-1]
				delete(visited, top.node.Symbol)
			}
			if top.pushedIntermediary {
				intermediary = intermediary[:len(intermediary)-1]
			}
			stack = stack[:len(stack)-1]
			continue
		}

		child := top.node.Children[top.childIdx]
		top.childIdx++

		multThroughChild := top.multSinceParent * (child.RelativePct / 100.0)

		childFrame := &frame{node: child, childIdx: 0}

		switch {
		case targets[child.Symbol] && !visited[child.Symbol]:
			parentTarget := targetStack[len(targetStack)-1]
			relations = append(relations, CallRelation{
				Caller:           parentTarget,
				Callee:           child.Symbol,
				RelativePct:      multThroughChild,
				AbsolutePct:      childrenPctOf(parentTarget) * multThroughChild / 100.0,
				ContextRoot:      rootSymbol,
				IntermediaryPath: append([]Step(nil), intermediary...),
				CalleeStepPct:    child.RelativePct,
			})

			targetStack = append(targetStack, child.Symbol)
			visited[child.Symbol] = true
			childFrame.pushedTarget = true
			childFrame.multSinceParent = 100.0 // reset: child is now the nearest enclosing target

		case targets[child.Symbol]:
			// Recursion guard: already on the path. No relation, no
			// intermediary step (it is a target, not an intermediary) —
			// the accumulated percentage simply passes through to
			// whatever is discovered deeper under the same parent target.
			childFrame.multSinceParent = multThroughChild

		default:
			intermediary = append(intermediary, Step{
				RawName:        child.Symbol,
				SimplifiedName: symbolize.Simplify(child.Symbol),
				StepPercent:    child.RelativePct,
			})
			childFrame.pushedIntermediary = true
			childFrame.multSinceParent = multThroughChild
		}

		stack = append(stack, childFrame)
	}

	return relations
}

package hierarchy

import "sort"

// Contribution is the canonical absolute-percent attribution of one caller
// to one callee, after collapsing duplicate (caller, callee) relations.
type Contribution struct {
	Caller      string
	AbsolutePct float64
}

// RootCallerKey identifies a (root, caller) traversal context for nested
// display.
type RootCallerKey struct {
	Root   string
	Caller string
}

// Reduction is the C6 output: the subtraction table and the nested display
// tree grouped by traversal context.
type Reduction struct {
	// Contrib[callee] lists one Contribution per distinct caller, using
	// the maximum AbsolutePct observed across every (caller, callee)
	// relation — the strongest attribution, so the subtraction never
	// double-counts two paths describing the same work.
	Contrib map[string][]Contribution

	// Nested[(root, caller)] lists one representative CallRelation per
	// distinct callee observed under that context, sorted by descending
	// AbsolutePct, again picking the max when duplicates occur.
	Nested map[RootCallerKey][]CallRelation
}

// Reduce groups an averaged relation multiset into the C6 contribution
// table and nested display tree.
func Reduce(relations []CallRelation) Reduction {
	type ccKey struct{ caller, callee string }
	ccBest := make(map[ccKey]CallRelation)
	var ccOrder []ccKey
	for _, r := range relations {
		k := ccKey{r.Caller, r.Callee}
		best, ok := ccBest[k]
		if !ok {
			ccOrder = append(ccOrder, k)
			ccBest[k] = r
			continue
		}
		if r.AbsolutePct > best.AbsolutePct {
			ccBest[k] = r
		}
	}

	contrib := make(map[string][]Contribution)
	for _, k := range ccOrder {
		best := ccBest[k]
		contrib[k.callee] = append(contrib[k.callee], Contribution{
			Caller:      k.caller,
			AbsolutePct: best.AbsolutePct,
		})
	}

	type rccKey struct{ root, caller, callee string }
	rccBest := make(map[rccKey]CallRelation)
	var rccOrder []rccKey
	for _, r := range relations {
		k := rccKey{r.ContextRoot, r.Caller, r.Callee}
		best, ok := rccBest[k]
		if !ok {
			rccOrder = append(rccOrder, k)
			rccBest[k] = r
			continue
		}
		if r.AbsolutePct > best.AbsolutePct {
			rccBest[k] = r
		}
	}

	nested := make(map[RootCallerKey][]CallRelation)
	for _, k := range rccOrder {
		rk := RootCallerKey{Root: k.root, Caller: k.caller}
		nested[rk] = append(nested[rk], rccBest[k])
	}
	for k, list := range nested {
		sorted := append([]CallRelation(nil), list...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].AbsolutePct > sorted[j].AbsolutePct
		})
		nested[k] = sorted
	}

	return Reduction{Contrib: contrib, Nested: nested}
}

// Package report aggregates parsed perf reports (internal/perfreport) across
// multiple files into arithmetic-mean AveragedEntry values.
package report

import "github.com/scarpart/pperf/internal/perfreport"

// Slot holds one report's contribution to an AveragedEntry, or records
// that the symbol was absent from that report.
type Slot struct {
	ChildrenPct float64
	SelfPct     float64
	Present     bool
}

// AveragedEntry is a function's statistics aggregated across reports.
type AveragedEntry struct {
	Symbol          string
	ChildrenPct     float64
	SelfPct         float64
	ReportCount     int
	PerReportValues []Slot
}

// Aggregate groups parsed reports by raw symbol and computes arithmetic
// means over the reports in which each symbol is present. Order is
// first-seen across reports, taken in the order the reports slice was
// given (the authoritative file-index order, even if reports were parsed
// concurrently by the caller).
func Aggregate(reports []*perfreport.ParsedReport) []AveragedEntry {
	n := len(reports)

	type accum struct {
		childrenSum float64
		selfSum     float64
		count       int
		slots       []Slot
	}

	order := make([]string, 0)
	accums := make(map[string]*accum)

	for i, rep := range reports {
		if rep == nil {
			continue
		}
		for _, e := range rep.Entries {
			a, ok := accums[e.Symbol]
			if !ok {
				a = &accum{slots: make([]Slot, n)}
				accums[e.Symbol] = a
				order = append(order, e.Symbol)
			}
			a.childrenSum += e.ChildrenPct
			a.selfSum += e.SelfPct
			a.count++
			a.slots[i] = Slot{ChildrenPct: e.ChildrenPct, SelfPct: e.SelfPct, Present: true}
		}
	}

	result := make([]AveragedEntry, 0, len(order))
	for _, sym := range order {
		a := accums[sym]
		result = append(result, AveragedEntry{
			Symbol:          sym,
			ChildrenPct:     a.childrenSum / float64(a.count),
			SelfPct:         a.selfSum / float64(a.count),
			ReportCount:     a.count,
			PerReportValues: a.slots,
		})
	}
	return result
}

// ChildrenPctIndex builds a symbol -> ChildrenPct lookup, used by the
// relation finder (C5) to compute absolute percentages without threading
// the full averaged-entry slice through every call.
func ChildrenPctIndex(entries []AveragedEntry) map[string]float64 {
	idx := make(map[string]float64, len(entries))
	for _, e := range entries {
		idx[e.Symbol] = e.ChildrenPct
	}
	return idx
}

// ByIndex builds a symbol -> AveragedEntry lookup.
func ByIndex(entries []AveragedEntry) map[string]AveragedEntry {
	idx := make(map[string]AveragedEntry, len(entries))
	for _, e := range entries {
		idx[e.Symbol] = e
	}
	return idx
}

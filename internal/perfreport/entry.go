// Package perfreport parses the textual output of "perf report": top-level
// Children%/Self% entries and their indented, pipe-delimited call trees.
package perfreport

import "math"

// Epsilon is the tolerance used throughout pperf for perf's rounding noise
// in percentage fields.
const Epsilon = 0.01

// PerfEntry is one function as observed in a single report.
type PerfEntry struct {
	Symbol      string
	ChildrenPct float64
	SelfPct     float64
}

// IsLeafCallerChain reports whether this entry's indented block describes
// callers (stack walking upward) rather than callees. perf emits this shape
// when a function accounts for essentially all of its own running time.
func (e PerfEntry) IsLeafCallerChain() bool {
	return math.Abs(e.SelfPct-e.ChildrenPct) < Epsilon
}

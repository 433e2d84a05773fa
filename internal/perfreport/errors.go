package perfreport

import (
	"fmt"

	"github.com/scarpart/pperf/internal/apperr"
)

// ErrNoTopLevelEntries is returned when a report contains zero recognizable
// top-level Children%/Self% lines.
var ErrNoTopLevelEntries = fmt.Errorf("no top-level entries found: %w", apperr.ErrMalformedReport)

// ErrInconsistentIndent is returned by the call-tree builder when a node's
// depth has no ancestor on the stack (should not happen on well-formed
// perf output; surfaces as a skip-with-warning, never aborts the run).
var ErrInconsistentIndent = fmt.Errorf("inconsistent call-tree indentation: %w", apperr.ErrMalformedReport)

package render

import "github.com/scarpart/pperf/internal/symbolize"

func simplifyName(raw string) string {
	return symbolize.Simplify(raw)
}

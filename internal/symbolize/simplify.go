// Package symbolize pretty-prints raw profiler symbols for display. It
// never feeds back into attribution math: the core stores and compares raw
// symbols throughout, and only asks this package for a display string at
// render time.
package symbolize

import "strings"

// Simplify strips compiler clone suffixes, trailing argument lists, and
// template-argument blocks from a raw symbol, leaving the bare qualified
// name used for display and for hierarchy-entry deduplication.
func Simplify(raw string) string {
	s := stripCloneSuffix(raw)
	s = stripTrailingArgs(s)
	s = stripTemplateArgs(s)
	return strings.TrimSpace(s)
}

func stripCloneSuffix(s string) string {
	if idx := strings.Index(s, " [clone "); idx >= 0 {
		return s[:idx]
	}
	return s
}

// stripTrailingArgs removes a single balanced parenthesized argument list
// at the end of the string, if present.
func stripTrailingArgs(s string) string {
	s = strings.TrimRight(s, " ")
	if !strings.HasSuffix(s, ")") {
		return s
	}
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return s[:i]
			}
		}
	}
	return s // unbalanced; leave untouched rather than guess
}

// stripTemplateArgs removes every balanced <...> block, at any nesting
// depth, from the string.
func stripTemplateArgs(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

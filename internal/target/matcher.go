// Package target resolves user-supplied target selectors (substring list or
// exact-signature file) against averaged report entries, producing the
// ordered raw-symbol set the rest of the pipeline treats as "targets".
package target

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/scarpart/pperf/internal/apperr"
	"github.com/scarpart/pperf/internal/report"
)

// Set is the resolved, ordered target set.
type Set struct {
	Symbols []string
}

// ResolveSubstring matches entries whose raw symbol contains any of the
// given selectors. Order is match order: the order selectors are given,
// then first-seen order of matching entries within each selector, with
// cross-selector duplicates dropped.
func ResolveSubstring(entries []report.AveragedEntry, selectors []string) (*Set, error) {
	seen := make(map[string]bool)
	var result []string

	for _, sel := range selectors {
		for _, e := range entries {
			if !strings.Contains(e.Symbol, sel) || seen[e.Symbol] {
				continue
			}
			seen[e.Symbol] = true
			result = append(result, e.Symbol)
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("no entry matched any of %v: %w", selectors, apperr.ErrNoTargetMatches)
	}
	return &Set{Symbols: result}, nil
}

// ResolveExact matches entries whose raw symbol contains each signature as
// a substring (tolerating profiler-added prefixes/suffixes), enforcing that
// each signature resolves to exactly one distinct raw symbol.
func ResolveExact(entries []report.AveragedEntry, signatures []string) (*Set, error) {
	var result []string

	for _, sig := range signatures {
		matchSet := make(map[string]bool)
		var matches []string
		for _, e := range entries {
			if strings.Contains(e.Symbol, sig) && !matchSet[e.Symbol] {
				matchSet[e.Symbol] = true
				matches = append(matches, e.Symbol)
			}
		}

		switch len(matches) {
		case 0:
			return nil, fmt.Errorf("signature %q matched no entries: %w", sig, apperr.ErrUnmatchedTarget)
		case 1:
			result = append(result, matches[0])
		default:
			sort.Strings(matches)
			return nil, fmt.Errorf("signature %q is ambiguous, matches %s: %w",
				sig, strings.Join(matches, ", "), apperr.ErrAmbiguousTarget)
		}
	}

	return &Set{Symbols: result}, nil
}

// ParseSignatureFile reads an exact-signature target file: one signature
// per line, "#" comments and blank lines ignored, whitespace trimmed.
func ParseSignatureFile(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var sigs []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sigs = append(sigs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(sigs) == 0 {
		return nil, fmt.Errorf("target file contains no signatures: %w", apperr.ErrUnmatchedTarget)
	}
	return sigs, nil
}

package perfreport

import (
	"bufio"
	"io"

	"github.com/rs/zerolog"
)

// ParsedReport is the result of parsing one report file: the top-level
// entries in source order, and each one's call tree (nil when the entry
// had no indented block, which happens for reports captured without -g).
type ParsedReport struct {
	Entries []PerfEntry
	Trees   []*CallTreeNode
}

// ParseReport reads one "perf report" text stream and builds a ParsedReport.
// Malformed individual call-tree blocks are logged and skipped (nil tree);
// a report with zero top-level entries is a hard error (ErrNoTopLevelEntries).
func ParseReport(r io.Reader, logger zerolog.Logger) (*ParsedReport, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var result ParsedReport
	var curEntry *PerfEntry
	var curLines []string

	flush := func() {
		if curEntry == nil {
			return
		}
		nonCallee := curEntry.IsLeafCallerChain()
		tree, err := BuildCallTree(curEntry.Symbol, curLines, nonCallee)
		if err != nil {
			logger.Warn().Err(err).Str("symbol", curEntry.Symbol).Msg("skipping malformed call tree")
			tree = nil
		}
		result.Entries = append(result.Entries, *curEntry)
		result.Trees = append(result.Trees, tree)
		curEntry = nil
		curLines = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		c := Classify(line)
		switch c.Kind {
		case KindBlank, KindComment:
			continue
		case KindTopLevel:
			flush()
			entry := PerfEntry{
				Symbol:      c.TopLevel.Symbol,
				ChildrenPct: c.TopLevel.ChildrenPct,
				SelfPct:     c.TopLevel.SelfPct,
			}
			curEntry = &entry
		case KindCallTree:
			if curEntry != nil {
				curLines = append(curLines, line)
			}
		case KindOther:
			if curEntry != nil {
				logger.Debug().Str("line", line).Msg("ignoring unrecognized line within entry block")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	if len(result.Entries) == 0 {
		return nil, ErrNoTopLevelEntries
	}
	return &result, nil
}

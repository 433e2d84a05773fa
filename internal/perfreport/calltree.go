package perfreport

import (
	"math"
	"strconv"
	"strings"
)

// indentWidth is perf's standard call-tree indent: each depth level starts
// 11 columns further right than its parent.
const indentWidth = 11

// CallTreeNode is one node of a parsed call tree.
type CallTreeNode struct {
	Symbol      string
	RelativePct float64
	Children    []*CallTreeNode

	// NonCallee marks a tree rooted at a leaf-caller-chain entry (see
	// PerfEntry.IsLeafCallerChain): its contents describe callers, not
	// callees, and the relation finder must never traverse into it.
	NonCallee bool
}

type treeFrame struct {
	node  *CallTreeNode
	depth int
}

// BuildCallTree parses the indented CallTree lines belonging to one
// TopLevel entry into a rooted tree. rootSymbol is the entry's own symbol;
// nonCallee propagates the leaf-caller-chain marker to every node built.
func BuildCallTree(rootSymbol string, lines []string, nonCallee bool) (*CallTreeNode, error) {
	root := &CallTreeNode{Symbol: rootSymbol, RelativePct: 100, NonCallee: nonCallee}
	stack := []treeFrame{{node: root, depth: 0}}
	lastNode := root

	for _, line := range lines {
		col, pct, symbol, ok := parseCallTreeLine(line)
		if !ok {
			continue // decorative guide line (bare pipes/spaces)
		}

		if pct < 0 {
			// Continuation line: augments the current node's symbol, never
			// creates an edge.
			if lastNode != root && symbol != "" {
				lastNode.Symbol = mergeContinuation(lastNode.Symbol, symbol)
			}
			continue
		}

		depth := depthFromColumn(col)
		if depth < 1 {
			depth = 1 // any percentage-bearing node is at least one level below the root
		}

		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			return nil, ErrInconsistentIndent
		}
		parent := stack[len(stack)-1].node

		node := &CallTreeNode{Symbol: symbol, RelativePct: pct, NonCallee: nonCallee}
		parent.Children = append(parent.Children, node)
		stack = append(stack, treeFrame{node: node, depth: depth})
		lastNode = node
	}

	return root, nil
}

func depthFromColumn(col int) int {
	return int(math.Round(float64(col) / indentWidth))
}

func mergeContinuation(existing, addition string) string {
	existing = strings.TrimSpace(existing)
	addition = strings.TrimSpace(addition)
	if existing == "" {
		return addition
	}
	if addition == "" || addition == existing {
		return existing
	}
	return existing + " " + addition
}

// parseCallTreeLine extracts the depth column, step percentage (or -1 for a
// continuation line), and symbol text from one CallTree line. ok is false
// for purely decorative lines (bare pipes/spaces) that carry no content.
func parseCallTreeLine(line string) (col int, pct float64, symbol string, ok bool) {
	if loc := percentMarkerPattern.FindStringSubmatchIndex(line); loc != nil {
		dashCol := loc[0]
		pctVal, err := strconv.ParseFloat(line[loc[2]:loc[3]], 64)
		if err != nil {
			return 0, 0, "", false
		}
		sym := strings.TrimSpace(line[loc[1]:])
		if sym == "" {
			return 0, 0, "", false
		}
		return dashCol, pctVal, sym, true
	}

	left := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(left, "---") {
		sym := strings.TrimSpace(strings.TrimPrefix(left, "---"))
		col := strings.Index(line, "---")
		if sym == "" {
			return 0, 0, "", false
		}
		return col, -1, sym, true
	}

	// Either a decorative guide line (only pipes/spaces) or a wrapped
	// continuation of the previous node's symbol text.
	content := strings.Map(func(r rune) rune {
		if r == '|' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, line)
	if content == "" {
		return 0, 0, "", false
	}

	sym := strings.TrimSpace(strings.Trim(line, " \t|"))
	if sym == "" {
		return 0, 0, "", false
	}
	return strings.Index(line, sym), -1, sym, true
}

package perfreport

import (
	"regexp"
	"strconv"
	"strings"
)

// LineKind is the classification C1 assigns to one line of report text.
type LineKind int

const (
	KindBlank LineKind = iota
	KindComment
	KindTopLevel
	KindCallTree
	KindOther
)

// TopLevelFields holds the fields extracted from a TopLevel line.
type TopLevelFields struct {
	ChildrenPct  float64
	SelfPct      float64
	Command      string
	SharedObject string
	MarkerType   byte // '.' (user) or 'k' (kernel)
	Symbol       string
}

// Classified is the result of classifying one line.
type Classified struct {
	Kind     LineKind
	TopLevel TopLevelFields // valid only when Kind == KindTopLevel
}

// topLevelPattern matches: ws NN.NN% ws NN.NN% ws command ws shared-object ws [.|k] symbol-to-eol
var topLevelPattern = regexp.MustCompile(`^\s*(\d+\.\d+)%\s+(\d+\.\d+)%\s+(\S+)\s+(\S+)\s+\[([.k])\]\s+(.+?)\s*$`)

// percentMarkerPattern matches the "--NN.NN%--" fragment that introduces a
// callee node in a call tree, capturing the percentage and the rest of the
// line as the node's symbol.
var percentMarkerPattern = regexp.MustCompile(`--(\d+\.\d+)%--`)

// Classify inspects a single line (without its trailing newline) and
// reports what kind of report content it is.
func Classify(line string) Classified {
	trimmed := strings.TrimRight(line, "\r\n")
	stripped := strings.TrimSpace(trimmed)

	switch {
	case stripped == "":
		return Classified{Kind: KindBlank}
	case strings.HasPrefix(stripped, "#"):
		return Classified{Kind: KindComment}
	}

	if m := topLevelPattern.FindStringSubmatch(trimmed); m != nil {
		children, errC := strconv.ParseFloat(m[1], 64)
		self, errS := strconv.ParseFloat(m[2], 64)
		if errC == nil && errS == nil {
			return Classified{
				Kind: KindTopLevel,
				TopLevel: TopLevelFields{
					ChildrenPct:  children,
					SelfPct:      self,
					Command:      m[3],
					SharedObject: m[4],
					MarkerType:   m[5][0],
					Symbol:       m[6],
				},
			}
		}
	}

	if looksLikeCallTree(trimmed) {
		return Classified{Kind: KindCallTree}
	}

	return Classified{Kind: KindOther}
}

func looksLikeCallTree(line string) bool {
	if strings.Contains(line, "|") {
		return true
	}
	if strings.HasPrefix(strings.TrimLeft(line, " \t"), "---") {
		return true
	}
	return percentMarkerPattern.MatchString(line)
}

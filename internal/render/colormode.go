package render

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorMode resolves whether ANSI output should be produced, combining the
// explicit --no-color flag, the NO_COLOR convention, the config file's
// default_color_mode, and TTY detection, in that order of precedence.
type ColorMode struct {
	Enabled bool
}

// ResolveColorMode implements SPEC_FULL.md §6 and §2A A3: --no-color always
// wins, then NO_COLOR (any value), then the config-supplied default color
// mode ("always"/"never" decide outright, "auto" or empty falls through),
// then TTY detection on out. Flags and the env var always outrank config.
func ResolveColorMode(noColorFlag bool, configDefault string, out io.Writer) ColorMode {
	if noColorFlag {
		return ColorMode{Enabled: false}
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return ColorMode{Enabled: false}
	}
	switch configDefault {
	case "always":
		return ColorMode{Enabled: true}
	case "never":
		return ColorMode{Enabled: false}
	}
	if f, ok := out.(*os.File); ok {
		return ColorMode{Enabled: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
	}
	return ColorMode{Enabled: false}
}

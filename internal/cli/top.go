package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scarpart/pperf/internal/apperr"
	"github.com/scarpart/pperf/internal/config"
	"github.com/scarpart/pperf/internal/hierarchy"
	"github.com/scarpart/pperf/internal/logging"
	"github.com/scarpart/pperf/internal/perfreport"
	"github.com/scarpart/pperf/internal/render"
	"github.com/scarpart/pperf/internal/report"
	"github.com/scarpart/pperf/internal/target"
)

type topOptions struct {
	self       bool
	number     int
	targets    []string
	targetFile string
	hierarchy  bool
	debug      bool
	noColor    bool
	configPath string
	logLevel   string
}

func newTopCmd() *cobra.Command {
	opts := &topOptions{}

	cmd := &cobra.Command{
		Use:   "top <report-file>...",
		Short: "Show the dominant functions and their call hierarchy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTop(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.self, "self", "s", false, "sort by self percentage instead of children percentage")
	flags.IntVarP(&opts.number, "number", "n", 20, "limit output to N entries (non-hierarchy mode only)")
	flags.StringArrayVarP(&opts.targets, "targets", "t", nil, "substring target selector (repeatable)")
	flags.StringVar(&opts.targetFile, "target-file", "", "exact-signature target file, one per line")
	flags.BoolVarP(&opts.hierarchy, "hierarchy", "H", false, "enable the call-hierarchy assembler (requires targets)")
	flags.BoolVarP(&opts.debug, "debug", "D", false, "emit per-relation debug annotations")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable ANSI color output")
	flags.StringVar(&opts.configPath, "config", "", "explicit path to a layered config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "zerolog level for diagnostics (debug, info, warn, error)")

	return cmd
}

func runTop(cmd *cobra.Command, paths []string, opts *topOptions) error {
	if len(opts.targets) > 0 && opts.targetFile != "" {
		return classify(fmt.Errorf("--targets and --target-file are mutually exclusive: %w", apperr.ErrInvalidArguments))
	}
	if opts.number < 1 {
		return classify(fmt.Errorf("--number must be >= 1: %w", apperr.ErrInvalidArguments))
	}

	cfg, err := config.NewLoader().Load(opts.configPath)
	if err != nil {
		return classify(err)
	}

	logLevel := opts.logLevel
	if logLevel == "" {
		logLevel = logging.DefaultConfig().Level
	}
	logger := logging.New(logging.Config{
		Level:  logLevel,
		Pretty: true,
		Output: os.Stderr,
	})

	colorMode := render.ResolveColorMode(opts.noColor, cfg.DefaultColorMode, os.Stdout)

	sortKey := resolveSortKey(opts.self, cfg.DefaultSortKey)

	parsedReports, err := report.LoadReports(paths, logger)
	if err != nil {
		return classify(err)
	}

	averaged := report.Aggregate(parsedReports)
	if opts.hierarchy && len(averaged) == 0 {
		return classify(fmt.Errorf("no entries found across inputs: %w", apperr.ErrInvalidArguments))
	}

	selectors := opts.targets
	if len(selectors) == 0 && opts.targetFile == "" {
		selectors = cfg.DefaultTargets
	}

	var targetSet *target.Set
	if opts.targetFile != "" {
		f, ferr := os.Open(opts.targetFile)
		if ferr != nil {
			return classify(fmt.Errorf("%s: %w", opts.targetFile, apperr.ErrFileUnavailable))
		}
		defer f.Close()
		sigs, perr := target.ParseSignatureFile(f)
		if perr != nil {
			return classify(perr)
		}
		targetSet, err = target.ResolveExact(averaged, sigs)
	} else if len(selectors) > 0 {
		targetSet, err = target.ResolveSubstring(averaged, selectors)
	}
	if err != nil {
		return classify(err)
	}

	if opts.hierarchy {
		if targetSet == nil || len(targetSet.Symbols) == 0 {
			return classify(fmt.Errorf("hierarchy mode requires a non-empty target set: %w", apperr.ErrInvalidArguments))
		}
		return renderHierarchy(cmd, parsedReports, averaged, targetSet, sortKey, opts, colorMode)
	}

	return renderFlat(cmd, averaged, targetSet, sortKey, opts, colorMode)
}

func resolveSortKey(selfFlag bool, defaultKey string) render.SortKey {
	if selfFlag {
		return render.SortBySelf
	}
	if defaultKey == "self" {
		return render.SortBySelf
	}
	return render.SortByChildren
}

func renderFlat(cmd *cobra.Command, averaged []report.AveragedEntry, targetSet *target.Set, sortKey render.SortKey, opts *topOptions, colorMode render.ColorMode) error {
	entries := averaged
	if targetSet != nil {
		set := make(map[string]bool, len(targetSet.Symbols))
		for _, s := range targetSet.Symbols {
			set[s] = true
		}
		filtered := make([]report.AveragedEntry, 0, len(targetSet.Symbols))
		for _, e := range averaged {
			if set[e.Symbol] {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	rows := render.FlatRows(entries, sortKey, opts.number, colorMode)
	cmd.Println(render.BuildTable(rows, colorMode))
	return nil
}

func renderHierarchy(cmd *cobra.Command, parsedReports []*perfreport.ParsedReport, averaged []report.AveragedEntry, targetSet *target.Set, sortKey render.SortKey, opts *topOptions, colorMode render.ColorMode) error {
	averagedIdx := report.ByIndex(averaged)
	childrenPctIdx := report.ChildrenPctIndex(averaged)
	childrenPctOf := func(symbol string) float64 { return childrenPctIdx[symbol] }

	targets := make(map[string]bool, len(targetSet.Symbols))
	for _, s := range targetSet.Symbols {
		targets[s] = true
	}

	perReport := make([][]hierarchy.CallRelation, 0, len(parsedReports))
	for _, rep := range parsedReports {
		if rep == nil {
			continue
		}
		perReport = append(perReport, hierarchy.FindRelations(rep, targets, childrenPctOf))
	}
	relations := hierarchy.AverageRelations(perReport)
	reduction := hierarchy.Reduce(relations)

	hierSortKey := hierarchy.SortByChildren
	if sortKey == render.SortBySelf {
		hierSortKey = hierarchy.SortBySelf
	}

	entries, err := hierarchy.Assemble(targetSet.Symbols, averagedIdx, reduction, hierSortKey)
	if err != nil {
		return classify(err)
	}

	rows := render.HierarchyRows(entries, opts.debug, colorMode, sortKey == render.SortBySelf)
	cmd.Println(render.BuildTable(rows, colorMode))
	return nil
}

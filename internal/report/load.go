package report

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"github.com/scarpart/pperf/internal/apperr"
	"github.com/scarpart/pperf/internal/perfreport"
)

// LoadReports opens and parses each path independently, in parallel
// (bounded by GOMAXPROCS), then returns the results in the original
// file-index order regardless of completion order. A failure on any file
// aborts the whole run: partial averaging across a subset of reports would
// mislead.
func LoadReports(paths []string, logger zerolog.Logger) ([]*perfreport.ParsedReport, error) {
	n := len(paths)
	reports := make([]*perfreport.ParsedReport, n)
	errs := make([]error, n)

	sem := make(chan struct{}, max(1, runtime.GOMAXPROCS(0)))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			f, err := os.Open(path)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, apperr.ErrFileUnavailable)
				return
			}
			defer f.Close()

			rep, err := perfreport.ParseReport(f, logger.With().Str("file", path).Logger())
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
				return
			}
			reports[i] = rep
		}(i, path)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return reports, nil
}

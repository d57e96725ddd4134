// Package etl orchestrates the extract -> clean -> load run over one or
// more recruitment workbooks.
package etl

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"goexchange/adapters/excel"
	"goexchange/domain/university"
	"goexchange/internal/cleaner"
	"goexchange/internal/loader"
)

// Options configures one pipeline run.
type Options struct {
	// Input is a directory of workbooks or a single file path.
	Input string
	// LatestOnly keeps only the last file in filename order.
	LatestOnly bool
	// DryRun extracts and cleans but skips the database load.
	DryRun bool
	// Workers bounds concurrent file processing. Rows share only the
	// parser's read-only tables, so files are independent.
	Workers int
}

// Pipeline runs the ETL over workbooks.
type Pipeline struct {
	cleaner *cleaner.Cleaner
	loader  *loader.Loader
	log     *zap.SugaredLogger
}

// New wires a pipeline.
func New(c *cleaner.Cleaner, l *loader.Loader, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{cleaner: c, loader: l, log: log}
}

// Run processes every workbook under opts.Input. A file that fails is
// logged and skipped; the rest of the run continues.
func (p *Pipeline) Run(ctx context.Context, opts Options) (university.LoadStats, error) {
	runID := uuid.New().String()[:8]
	log := p.log.With("run", runID)

	files, err := Discover(opts.Input, opts.LatestOnly)
	if err != nil {
		return university.LoadStats{}, err
	}
	if len(files) == 0 {
		log.Warn("no workbooks found to process")
		return university.LoadStats{}, nil
	}
	log.Infow("starting run", "files", len(files), "dry_run", opts.DryRun)

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	var (
		mu    sync.Mutex
		total university.LoadStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, file := range files {
		file := file
		g.Go(func() error {
			stats, err := p.processFile(gctx, file, opts.DryRun, log)
			if err != nil {
				// Per-file isolation: a bad workbook never sinks the run.
				log.Errorw("file failed", "file", filepath.Base(file), "error", err)
				return nil
			}
			mu.Lock()
			total.Add(stats)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return total, err
	}

	log.Infow("run complete",
		"inserted", total.Inserted, "updated", total.Updated,
		"skipped", total.Skipped, "language_reqs", total.LanguageReqs)
	return total, nil
}

func (p *Pipeline) processFile(ctx context.Context, file string, dryRun bool, log *zap.SugaredLogger) (university.LoadStats, error) {
	log = log.With("file", filepath.Base(file))

	reader := excel.NewReader(file)
	sheet, err := reader.Read()
	if err != nil {
		return university.LoadStats{}, err
	}
	log.Infow("extracted", "rows", len(sheet.Rows), "semester", sheet.Metadata.Semester, "round", sheet.Metadata.RecruitmentRound)

	rows := p.cleaner.Clean(sheet)
	log.Infow("cleaned", "rows", len(rows))

	if dryRun {
		log.Info("dry run, skipping database load")
		return university.LoadStats{Skipped: len(rows)}, nil
	}

	stats, err := p.loader.LoadSheet(ctx, rows, sheet.Metadata)
	if err != nil {
		return stats, err
	}
	log.Infow("loaded", "inserted", stats.Inserted, "updated", stats.Updated, "skipped", stats.Skipped, "language_reqs", stats.LanguageReqs)
	return stats, nil
}

// Discover lists the workbooks under input, skipping Excel lock files
// ("~$" prefixed). A plain file path passes through unchanged.
func Discover(input string, latestOnly bool) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(input, "*.xlsx"))
	if err != nil {
		return nil, err
	}
	more, err := filepath.Glob(filepath.Join(input, "*.xls"))
	if err != nil {
		return nil, err
	}
	matches = append(matches, more...)

	if len(matches) == 0 {
		// Treat input as a single-file path.
		if strings.HasSuffix(input, ".xlsx") || strings.HasSuffix(input, ".xls") {
			return []string{input}, nil
		}
		return nil, nil
	}

	var files []string
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), "~$") {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)

	if latestOnly && len(files) > 1 {
		files = files[len(files)-1:]
	}
	return files, nil
}

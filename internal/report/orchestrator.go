package report

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/addrqa/report-compare/internal/config"
	"github.com/addrqa/report-compare/internal/table"
)

// sourcePath returns the configured report path for one metric family.
func sourcePath(cfg *config.Config, m Metric) (string, error) {
	switch m {
	case ASF, APA:
		return cfg.SourcePath(cfg.Metrics.ASFAPANew.Path), nil
	case PSF:
		return cfg.SourcePath(cfg.Metrics.PSFNew.Path), nil
	case SSF:
		return cfg.SourcePath(cfg.Metrics.SSFNew.Path), nil
	default:
		return "", &UnsupportedMetricError{Input: string(m)}
	}
}

// ValidateSources checks, before any processing, that the baseline report
// and every new-metric report the chosen selector needs exist on disk.
func ValidateSources(cfg *config.Config, metric Metric) error {
	paths := []string{cfg.SourcePath(cfg.Metrics.ExistingSample.Path)}

	wanted := []Metric{metric}
	if metric == All {
		wanted = Metrics()
	}
	seen := map[string]bool{}
	for _, m := range wanted {
		p, err := sourcePath(cfg, m)
		if err != nil {
			return err
		}
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, p := range paths {
		if !fileExists(p) {
			return &MissingFileError{Path: p}
		}
	}
	return nil
}

// CompareAll loads the reports the selector needs and produces one
// comparison table per metric family.
//
// For All, the baseline and the shared ASF/APA report are each loaded once,
// PSF and SSF from their own files, and the four comparisons run
// concurrently; each is a pure function of the loaded tables. The batch is
// all-or-nothing: any load or schema failure aborts the whole call with no
// results.
func CompareAll(ctx context.Context, cfg *config.Config, metric Metric) (map[Metric]*table.Table, error) {
	if _, err := ParseMetric(string(metric)); err != nil {
		return nil, err
	}

	baseline, err := LoadReport(cfg.SourcePath(cfg.Metrics.ExistingSample.Path))
	if err != nil {
		return nil, err
	}
	zap.L().Debug("baseline loaded", zap.Int("rows", baseline.Len()))

	if metric != All {
		path, err := sourcePath(cfg, metric)
		if err != nil {
			return nil, err
		}
		fresh, err := LoadReport(path)
		if err != nil {
			return nil, err
		}
		cmp, err := Compare(baseline, fresh, metric)
		if err != nil {
			return nil, err
		}
		return map[Metric]*table.Table{metric: cmp}, nil
	}

	// ASF and APA draw from the same physical report.
	sources := make(map[Metric]*table.Table, 4)
	loaded := make(map[string]*table.Table, 3)
	for _, m := range Metrics() {
		path, err := sourcePath(cfg, m)
		if err != nil {
			return nil, err
		}
		t, ok := loaded[path]
		if !ok {
			t, err = LoadReport(path)
			if err != nil {
				return nil, err
			}
			loaded[path] = t
		}
		sources[m] = t
	}

	results := make([]*table.Table, len(Metrics()))
	g, _ := errgroup.WithContext(ctx)
	for i, m := range Metrics() {
		i, m := i, m
		g.Go(func() error {
			cmp, err := Compare(baseline, sources[m], m)
			if err != nil {
				return err
			}
			results[i] = cmp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comparisons := make(map[Metric]*table.Table, len(results))
	for i, m := range Metrics() {
		comparisons[m] = results[i]
		zap.L().Debug("comparison built", zap.String("metric", string(m)), zap.Int("rows", results[i].Len()))
	}
	return comparisons, nil
}

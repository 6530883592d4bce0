package report

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/addrqa/report-compare/internal/table"
)

// WriteComparisons writes one <metric>_comparison.csv per comparison into
// outputDir, in asf, apa, psf, ssf order, and returns the written paths.
// A nonexistent output directory is a MissingFileError.
func WriteComparisons(comparisons map[Metric]*table.Table, outputDir string) ([]string, error) {
	info, err := os.Stat(outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: outputDir}
		}
		return nil, eris.Wrapf(err, "report: stat output directory %s", outputDir)
	}
	if !info.IsDir() {
		return nil, &MissingFileError{Path: outputDir}
	}

	var written []string
	for _, m := range Metrics() {
		cmp, ok := comparisons[m]
		if !ok {
			continue
		}
		path := filepath.Join(outputDir, string(m)+"_comparison.csv")
		if err := table.WriteCSV(cmp, path); err != nil {
			return written, eris.Wrapf(err, "report: write %s comparison", m)
		}
		written = append(written, path)
	}
	return written, nil
}

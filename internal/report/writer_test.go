package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addrqa/report-compare/internal/table"
)

func comparisonFixture() *table.Table {
	t := table.New(
		"metric_existing", "country", "provider", "product", "sample_size",
		"metric_existing", "metric_new", "matching_run_id", "comparison_metric_value",
	)
	t.Append([]table.Value{
		table.Str("asf"), table.Str("US"), table.Str("acme"), table.Str("geocoder"),
		table.Str("1000"), table.Num(91.23), table.Num(93.5), table.Str("match-7"),
		table.Str("93.50 (2)"),
	})
	return t
}

func TestWriteComparisons(t *testing.T) {
	outDir := t.TempDir()
	comparisons := map[Metric]*table.Table{
		ASF: comparisonFixture(),
		PSF: comparisonFixture(),
	}

	written, err := WriteComparisons(comparisons, outDir)
	require.NoError(t, err)

	// asf before psf, per the fixed metric order.
	require.Equal(t, []string{
		filepath.Join(outDir, "asf_comparison.csv"),
		filepath.Join(outDir, "psf_comparison.csv"),
	}, written)

	raw, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Equal(t,
		"metric_existing,country,provider,product,sample_size,metric_existing,metric_new,matching_run_id,comparison_metric_value\n"+
			"asf,US,acme,geocoder,1000,91.23,93.5,match-7,93.50 (2)\n",
		string(raw))
}

func TestWriteComparisonsMissingOutputDir(t *testing.T) {
	comparisons := map[Metric]*table.Table{ASF: comparisonFixture()}

	_, err := WriteComparisons(comparisons, filepath.Join(t.TempDir(), "nope"))
	var missErr *MissingFileError
	require.ErrorAs(t, err, &missErr)
}

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addrqa/report-compare/internal/table"
)

// outputColumns is the comparison record schema, with metric_existing
// appearing twice: the label and the rounded baseline value.
var outputColumns = []string{
	"metric_existing",
	"country",
	"provider",
	"product",
	"sample_size",
	"metric_existing",
	"metric_new",
	"matching_run_id",
	"comparison_metric_value",
}

func baselineFixture(rows ...[]string) *table.Table {
	t := table.New(baselineColumns...)
	for _, r := range rows {
		t.Append(cells(r))
	}
	return t
}

func newFixture(rows ...[]string) *table.Table {
	t := table.New(newColumns...)
	for _, r := range rows {
		t.Append(cells(r))
	}
	return t
}

func cells(fields []string) []table.Value {
	row := make([]table.Value, len(fields))
	for i, f := range fields {
		if f == "" {
			row[i] = table.Null()
			continue
		}
		row[i] = table.Str(f)
	}
	return row
}

// baseline row: run_id, metric, country, provider, product, sampling_run_id,
// metric_value, metric_value_lower, metric_value_upper
func usBaselineRow(metric, country, value string) []string {
	return []string{"run-1", metric, country, "acme", "geocoder", "samp-1", value, "90.0", "92.0"}
}

// new row: provider_release_version, metric, sample_size, match, lower,
// upper, matching_run_id, provider_id, country, sampling_run_id
func usNewRow(metric, country, match string) []string {
	return []string{"2024.1", metric, "1000", match, "0.92", "0.95", "match-7", "p-acme", country, "samp-2"}
}

func TestCompareScenario(t *testing.T) {
	baseline := baselineFixture(usBaselineRow("ASF", "us", "91.23"))
	fresh := newFixture(usNewRow("asf", "US", "0.9350"))

	got, err := Compare(baseline, fresh, ASF)
	require.NoError(t, err)

	assert.Equal(t, outputColumns, got.Columns())
	require.Equal(t, 1, got.Len())

	row := got.Row(0)
	assert.Equal(t, "asf", row[0].Render(), "label lowercased")
	assert.Equal(t, "US", row[1].Render(), "baseline country uppercased")
	assert.Equal(t, "acme", row[2].Render())
	assert.Equal(t, "geocoder", row[3].Render())
	assert.Equal(t, "1000", row[4].Render())
	assert.Equal(t, "91.23", row[5].Render(), "metric_existing value")
	assert.Equal(t, "93.5", row[6].Render(), "metric_new scaled to percentage")
	assert.Equal(t, "match-7", row[7].Render())
	assert.Equal(t, "93.50 (2)", row[8].Render())
}

func TestCompareFilterIsCaseInsensitive(t *testing.T) {
	baseline := baselineFixture(usBaselineRow("ASF", "us", "91.23"))
	fresh := newFixture(usNewRow("asf", "US", "0.9350"))

	lower, err := Compare(baseline, fresh, ASF)
	require.NoError(t, err)
	upper, err := Compare(baseline, fresh, Metric("ASF"))
	require.NoError(t, err)

	require.Equal(t, lower.Len(), upper.Len())
	for i := 0; i < lower.Len(); i++ {
		assert.Equal(t, lower.Row(i), upper.Row(i))
	}
}

func TestCompareFiltersOtherMetrics(t *testing.T) {
	baseline := baselineFixture(
		usBaselineRow("asf", "us", "91.23"),
		usBaselineRow("psf", "us", "70.00"),
	)
	fresh := newFixture(
		usNewRow("asf", "US", "0.9350"),
		usNewRow("apa", "US", "0.5000"),
	)

	got, err := Compare(baseline, fresh, ASF)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "asf", got.Row(0)[0].Render())
}

func TestCompareUnmatchedCountries(t *testing.T) {
	baseline := baselineFixture(usBaselineRow("asf", "de", "88.10"))
	fresh := newFixture(usNewRow("asf", "FR", "0.8000"))

	got, err := Compare(baseline, fresh, ASF)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	// DE: baseline only, no new measurement, no comparison value.
	de := got.Row(0)
	assert.Equal(t, "DE", de[1].Render())
	assert.Equal(t, "88.1", de[5].Render())
	assert.True(t, de[6].IsNull())
	assert.True(t, de[8].IsNull())

	// FR: new only, appended after baseline rows.
	fr := got.Row(1)
	assert.Equal(t, "FR", fr[1].Render())
	assert.True(t, fr[5].IsNull())
	assert.Equal(t, "80", fr[6].Render())
	assert.True(t, fr[8].IsNull())
}

func TestCompareEmptyInputs(t *testing.T) {
	fresh := newFixture(usNewRow("asf", "US", "0.9350"))

	got, err := Compare(baselineFixture(), fresh, ASF)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.True(t, got.Row(0)[5].IsNull())
	assert.Equal(t, "93.5", got.Row(0)[6].Render())

	got, err = Compare(baselineFixture(), newFixture(), ASF)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.Equal(t, outputColumns, got.Columns())
}

func TestCompareNonNumericDegradesToNull(t *testing.T) {
	baseline := baselineFixture(usBaselineRow("asf", "us", "not-a-number"))
	fresh := newFixture(usNewRow("asf", "US", "0.9350"))

	got, err := Compare(baseline, fresh, ASF)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())

	row := got.Row(0)
	assert.True(t, row[5].IsNull(), "unparsable metric_value becomes null")
	assert.Equal(t, "93.5", row[6].Render())
	assert.True(t, row[8].IsNull(), "comparison needs both sides numeric")
}

func TestCompareDuplicateCountriesFanOut(t *testing.T) {
	baseline := baselineFixture(
		usBaselineRow("asf", "us", "91.23"),
		usBaselineRow("asf", "US", "90.00"),
	)
	fresh := newFixture(usNewRow("asf", "US", "0.9350"))

	got, err := Compare(baseline, fresh, ASF)
	require.NoError(t, err)
	// Both baseline US rows pair with the single new US row.
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "93.50 (2)", got.Row(0)[8].Render())
	assert.Equal(t, "93.50 (4)", got.Row(1)[8].Render())
}

func TestCompareMissingColumnIsSchemaError(t *testing.T) {
	broken := table.New("metric", "country")
	broken.Append(cells([]string{"asf", "us"}))

	_, err := Compare(broken, newFixture(), ASF)
	var schemaErr *table.SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestDeltaFormat(t *testing.T) {
	assert.Equal(t, "93.50 (2)", Delta{NewPercent: 93.5, Points: 2}.Format())
	assert.Equal(t, "80.00 (-8)", Delta{NewPercent: 80, Points: -8}.Format())
}

func TestComparisonDelta(t *testing.T) {
	d, ok := comparisonDelta(table.Str("0.9350"), table.Str("91.23"))
	require.True(t, ok)
	assert.InDelta(t, 93.5, d.NewPercent, 1e-9)
	assert.Equal(t, 2, d.Points)

	d, ok = comparisonDelta(table.Str("0.8000"), table.Str("88.10"))
	require.True(t, ok)
	assert.Equal(t, -8, d.Points)

	_, ok = comparisonDelta(table.Null(), table.Str("91.23"))
	assert.False(t, ok)
	_, ok = comparisonDelta(table.Str("0.9"), table.Null())
	assert.False(t, ok)
	_, ok = comparisonDelta(table.Str("abc"), table.Str("91.23"))
	assert.False(t, ok)
}

package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/addrqa/report-compare/internal/table"
)

// baselineColumns is the projection of the existing-sample report.
var baselineColumns = []string{
	"run_id",
	"metric",
	"country",
	"provider",
	"product",
	"sampling_run_id",
	"metric_value",
	"metric_value_lower",
	"metric_value_upper",
}

// newColumns is the projection of a new-metric report.
var newColumns = []string{
	"provider_release_version",
	"metric",
	"sample_size",
	"match",
	"lower",
	"upper",
	"matching_run_id",
	"provider_id",
	"country",
	"sampling_run_id",
}

// Compare merges one metric family out of the baseline and new-metric
// reports into a comparison table.
//
// Both inputs are filtered to rows whose metric label equals the requested
// metric case-insensitively, projected to their comparable column subsets
// (country is uppercased on the baseline side only; the new-metric side's
// casing must already match for the join to pair rows), then full-outer-
// joined on country. metric_value and match are coerced to numbers, with
// unparsable values degrading to null rather than failing. The output
// follows the comparison record schema, which carries two columns named
// metric_existing: the lowercased metric label first, then the rounded
// baseline value. Rows appear in baseline order with countries seen only in
// the new report appended. Compare does not mutate its inputs.
func Compare(baseline, newTable *table.Table, metric Metric) (*table.Table, error) {
	if metric == All {
		return nil, &UnsupportedMetricError{Input: string(metric)}
	}

	existing, err := projectMetric(baseline, metric, baselineColumns)
	if err != nil {
		return nil, eris.Wrap(err, "compare: baseline")
	}
	if err := existing.MapColumn("country", upperCell); err != nil {
		return nil, eris.Wrap(err, "compare: baseline")
	}
	if err := existing.MapColumn("metric", lowerCell); err != nil {
		return nil, eris.Wrap(err, "compare: baseline")
	}

	fresh, err := projectMetric(newTable, metric, newColumns)
	if err != nil {
		return nil, eris.Wrap(err, "compare: new metric report")
	}

	joined, err := table.OuterJoin(existing, fresh, "country", "_existing", "_metric")
	if err != nil {
		return nil, eris.Wrap(err, "compare: join")
	}

	matchIdx, _ := joined.Index("match")
	valueIdx, _ := joined.Index("metric_value")
	joined.AppendColumn("comparison_metric_value", func(i int) table.Value {
		row := joined.Row(i)
		d, ok := comparisonDelta(row[matchIdx], row[valueIdx])
		if !ok {
			return table.Null()
		}
		return table.Str(d.Format())
	})

	out, err := joined.Select(
		"metric_existing",
		"country",
		"provider",
		"product",
		"sample_size",
		"metric_value",
		"match",
		"matching_run_id",
		"comparison_metric_value",
	)
	if err != nil {
		return nil, eris.Wrap(err, "compare: select output columns")
	}

	if err := out.MapColumn("match", percentCell); err != nil {
		return nil, eris.Wrap(err, "compare: scale match")
	}
	if err := out.MapColumn("metric_value", roundCell); err != nil {
		return nil, eris.Wrap(err, "compare: round metric_value")
	}
	if err := out.Rename("match", "metric_new"); err != nil {
		return nil, err
	}
	// Second metric_existing column, holding the rounded baseline value.
	if err := out.Rename("metric_value", "metric_existing"); err != nil {
		return nil, err
	}

	return out, nil
}

// projectMetric filters a report to one metric label case-insensitively and
// projects it onto cols.
func projectMetric(t *table.Table, metric Metric, cols []string) (*table.Table, error) {
	filtered, err := t.FilterEqFold("metric", string(metric))
	if err != nil {
		return nil, err
	}
	return filtered.Select(cols...)
}

// Delta is the numeric comparison of a new measurement against baseline:
// the new value scaled to percentage and the signed whole-point difference.
type Delta struct {
	NewPercent float64
	Points     int
}

// Format renders the delta for the comparison_metric_value column,
// e.g. "93.50 (2)".
func (d Delta) Format() string {
	return fmt.Sprintf("%.2f (%d)", d.NewPercent, d.Points)
}

// comparisonDelta computes the delta for one joined row. It is defined only
// when both the new match ratio and the baseline percentage coerce to
// numbers.
func comparisonDelta(match, metricValue table.Value) (Delta, bool) {
	m, ok := match.Float()
	if !ok {
		return Delta{}, false
	}
	v, ok := metricValue.Float()
	if !ok {
		return Delta{}, false
	}
	pct := m * 100
	return Delta{
		NewPercent: pct,
		Points:     int(math.Round(pct - v)),
	}, true
}

func upperCell(v table.Value) table.Value {
	if s, ok := v.Text(); ok {
		return table.Str(strings.ToUpper(s))
	}
	return v
}

func lowerCell(v table.Value) table.Value {
	if s, ok := v.Text(); ok {
		return table.Str(strings.ToLower(s))
	}
	return v
}

// percentCell coerces a ratio cell to a percentage rounded to 2 decimals;
// non-numeric cells become null.
func percentCell(v table.Value) table.Value {
	f, ok := v.Float()
	if !ok {
		return table.Null()
	}
	return table.Num(round2(f * 100))
}

// roundCell coerces a cell to a number rounded to 2 decimals; non-numeric
// cells become null.
func roundCell(v table.Value) table.Value {
	f, ok := v.Float()
	if !ok {
		return table.Null()
	}
	return table.Num(round2(f))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

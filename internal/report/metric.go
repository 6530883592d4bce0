// Package report implements the address-quality report comparison pipeline:
// loading baseline and new-metric reports, merging them per metric type, and
// writing the comparison tables.
package report

import (
	"fmt"
	"strings"
)

// Metric identifies one address-quality metric family.
type Metric string

const (
	// ASF is the Address Successfully Found match-rate metric.
	ASF Metric = "asf"
	// APA is the Address Positional Accuracy metric. It is sourced from
	// the same report file as ASF.
	APA Metric = "apa"
	// PSF is the PostCode Successfully Found metric.
	PSF Metric = "psf"
	// SSF is the Street Successfully Found metric.
	SSF Metric = "ssf"
	// All selects every metric family in one batch.
	All Metric = "all"
)

// Metrics returns the four comparable metric families in output order.
func Metrics() []Metric {
	return []Metric{ASF, APA, PSF, SSF}
}

// UnsupportedMetricError reports a metric selector outside the five
// recognized values.
type UnsupportedMetricError struct {
	Input string
}

func (e *UnsupportedMetricError) Error() string {
	return fmt.Sprintf("report: unsupported metric type %q (want asf, apa, psf, ssf, or all)", e.Input)
}

// ParseMetric parses a metric selector case-insensitively.
func ParseMetric(s string) (Metric, error) {
	switch Metric(strings.ToLower(strings.TrimSpace(s))) {
	case ASF:
		return ASF, nil
	case APA:
		return APA, nil
	case PSF:
		return PSF, nil
	case SSF:
		return SSF, nil
	case All:
		return All, nil
	default:
		return "", &UnsupportedMetricError{Input: s}
	}
}

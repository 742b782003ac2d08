package sim

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WaitReport summarizes the wait-time (t_consumed - t_prod) distribution
// over a consumption log as a numeric report rather than a rendered
// heatmap, since GUI output is out of scope.
type WaitReport struct {
	Count       int
	MeanMinutes float64
	P50Minutes  float64
	P95Minutes  float64
	P99Minutes  float64
}

// ComputeWaitReport builds a WaitReport from a consumption log. Returns the
// zero-value report (Count 0) for an empty log.
func ComputeWaitReport(records []ConsumptionRecord) WaitReport {
	if len(records) == 0 {
		return WaitReport{}
	}
	waits := make([]float64, len(records))
	for i, r := range records {
		waits[i] = float64(r.WaitMinutes())
	}
	sort.Float64s(waits)

	return WaitReport{
		Count:       len(waits),
		MeanMinutes: stat.Mean(waits, nil),
		P50Minutes:  stat.Quantile(0.50, stat.Empirical, waits, nil),
		P95Minutes:  stat.Quantile(0.95, stat.Empirical, waits, nil),
		P99Minutes:  stat.Quantile(0.99, stat.Empirical, waits, nil),
	}
}

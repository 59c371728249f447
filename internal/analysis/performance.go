package analysis

import (
	"math"

	"sofr-carry-backtest/internal/model"
)

// Performance summarizes a daily P&L series.
type Performance struct {
	Days         int // dates with a defined daily P&L
	MeanDailyPNL float64
	StdDailyPNL  float64
	// Sharpe is sqrt(tradingDays) * mean / std. NaN when the series has
	// zero variance or fewer than two defined values.
	Sharpe      float64
	MaxDrawdown float64
}

// Compute produces the performance summary for a backtest. daily may contain
// missing entries (days with no mark); those are dropped before computing
// mean and deviation. cum is the cumulative P&L per date.
func Compute(daily []model.Rate, cum []float64, tradingDaysPerYear int) Performance {
	vals := make([]float64, 0, len(daily))
	for _, r := range daily {
		if r.Valid {
			vals = append(vals, r.Value)
		}
	}

	p := Performance{Days: len(vals), Sharpe: math.NaN()}
	p.MeanDailyPNL = Mean(vals)
	p.StdDailyPNL = SampleStdDev(vals)
	if p.StdDailyPNL > 0 {
		p.Sharpe = math.Sqrt(float64(tradingDaysPerYear)) * p.MeanDailyPNL / p.StdDailyPNL
	}
	p.MaxDrawdown = MaxDrawdown(Drawdown(cum, RunningMax(cum)))
	return p
}

// Mean is the arithmetic mean; 0 for an empty slice.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// SampleStdDev is the sample (n-1) standard deviation; 0 below two values.
func SampleStdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := Mean(vals)
	sumSq := 0.0
	for _, v := range vals {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(vals)-1))
}

// RunningMax returns the running peak of the cumulative series. The result
// is non-decreasing.
func RunningMax(cum []float64) []float64 {
	out := make([]float64, len(cum))
	peak := math.Inf(-1)
	for i, v := range cum {
		if v > peak {
			peak = v
		}
		out[i] = peak
	}
	return out
}

// Drawdown returns cum - runningMax element-wise; every entry is <= 0.
func Drawdown(cum, runningMax []float64) []float64 {
	out := make([]float64, len(cum))
	for i := range cum {
		out[i] = cum[i] - runningMax[i]
	}
	return out
}

// MaxDrawdown is the minimum of the drawdown series; 0 for an empty series.
func MaxDrawdown(drawdown []float64) float64 {
	min := 0.0
	for _, v := range drawdown {
		if v < min {
			min = v
		}
	}
	return min
}

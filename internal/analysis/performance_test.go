package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sofr-carry-backtest/internal/model"
)

func TestComputeDropsMissing(t *testing.T) {
	daily := []model.Rate{
		model.SomeRate(0),
		model.SomeRate(-50),
		{}, // missing day, excluded from mean/std
		model.SomeRate(-50),
		model.SomeRate(-75),
	}
	cum := []float64{0, -50, -50, -100, -175}

	p := Compute(daily, cum, 252)

	require.Equal(t, 4, p.Days)
	assert.InDelta(t, -43.75, p.MeanDailyPNL, 1e-9)
	// Sample std of {0, -50, -50, -75}.
	wantStd := math.Sqrt((43.75*43.75 + 6.25*6.25 + 6.25*6.25 + 31.25*31.25) / 3)
	assert.InDelta(t, wantStd, p.StdDailyPNL, 1e-9)
	assert.InDelta(t, math.Sqrt(252)*-43.75/wantStd, p.Sharpe, 1e-9)
	assert.InDelta(t, -175, p.MaxDrawdown, 1e-9)
}

func TestComputeZeroVarianceSharpeUndefined(t *testing.T) {
	daily := []model.Rate{model.SomeRate(10), model.SomeRate(10), model.SomeRate(10)}
	cum := []float64{10, 20, 30}

	p := Compute(daily, cum, 252)
	assert.True(t, math.IsNaN(p.Sharpe), "zero-variance series must report an undefined Sharpe")
	assert.InDelta(t, 10, p.MeanDailyPNL, 1e-9)
	assert.Zero(t, p.MaxDrawdown)
}

func TestComputeEmptySeries(t *testing.T) {
	p := Compute(nil, nil, 252)
	assert.Zero(t, p.Days)
	assert.Zero(t, p.MeanDailyPNL)
	assert.Zero(t, p.StdDailyPNL)
	assert.True(t, math.IsNaN(p.Sharpe))
}

func TestRunningMaxAndDrawdown(t *testing.T) {
	cum := []float64{0, 50, 20, 80, 30}

	rm := RunningMax(cum)
	assert.Equal(t, []float64{0, 50, 50, 80, 80}, rm)
	for i := 1; i < len(rm); i++ {
		assert.GreaterOrEqual(t, rm[i], rm[i-1])
	}

	dd := Drawdown(cum, rm)
	assert.Equal(t, []float64{0, 0, -30, 0, -50}, dd)
	for _, v := range dd {
		assert.LessOrEqual(t, v, 0.0)
	}
	assert.Equal(t, -50.0, MaxDrawdown(dd))
}

func TestSampleStdDev(t *testing.T) {
	assert.Zero(t, SampleStdDev(nil))
	assert.Zero(t, SampleStdDev([]float64{5}))
	// {2, 4}: mean 3, sample variance 2.
	assert.InDelta(t, math.Sqrt2, SampleStdDev([]float64{2, 4}), 1e-12)
}

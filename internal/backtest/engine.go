package backtest

import (
	"fmt"

	"sofr-carry-backtest/internal/analysis"
	"sofr-carry-backtest/internal/model"
	"sofr-carry-backtest/internal/strategy"
)

// Params scale the mark-to-market. DV01PerBP is the currency value of a one
// basis point move for one contract; rates are quoted in percent, so a rate
// delta is multiplied by 100 to get basis points.
type Params struct {
	DV01PerBP          float64
	TradingDaysPerYear int
}

func DefaultParams() Params {
	return Params{DV01PerBP: 25, TradingDaysPerYear: 252}
}

type Engine struct {
	params Params
}

func New(params Params) *Engine {
	if params.DV01PerBP <= 0 {
		params.DV01PerBP = DefaultParams().DV01PerBP
	}
	if params.TradingDaysPerYear <= 0 {
		params.TradingDaysPerYear = DefaultParams().TradingDaysPerYear
	}
	return &Engine{params: params}
}

// Run folds the roll rule over the matrix date by date, marks the held
// contract to market, and returns the full ledger with performance metrics.
// universe must be the chronologically sorted contract identifiers.
func (e *Engine) Run(m *model.RateMatrix, universe []string, roller strategy.Roller) (*Result, error) {
	if roller == nil {
		return nil, fmt.Errorf("roller is nil")
	}
	if m == nil || m.Len() == 0 {
		return nil, fmt.Errorf("no trading dates")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	ledger := make([]LedgerRow, 0, m.Len())
	st := strategy.State{}
	cum := 0.0

	for i := 0; i < m.Len(); i++ {
		avail := m.Available(i, universe)

		var held string
		st, held = roller.Step(st, strategy.Observation{
			Index:     i,
			Date:      m.Dates[i],
			Available: avail,
		})

		row := LedgerRow{Index: i, Date: m.Dates[i], Held: held}
		if len(avail) >= 2 {
			row.Front = avail[0]
		}

		if held != "" {
			if v, ok := m.Quote(i, held); ok {
				row.HeldRate = model.SomeRate(v)
			}
		}

		// Delta is taken against the held contract's own prior print. A
		// missing side leaves the delta (and P&L) missing, never zero.
		if i > 0 && held != "" && row.HeldRate.Valid {
			if prev, ok := m.Quote(i-1, held); ok {
				row.DeltaRate = model.SomeRate(row.HeldRate.Value - prev)
			}
		}

		switch {
		case i == 0:
			// The first date has no prior mark; P&L is pinned to zero.
			row.PNL = model.SomeRate(0)
		case row.DeltaRate.Valid:
			row.PNL = model.SomeRate(-row.DeltaRate.Value * 100 * e.params.DV01PerBP)
		}

		if row.PNL.Valid {
			cum += row.PNL.Value
		}
		row.CumPNL = cum
		ledger = append(ledger, row)
	}

	cumSeries := make([]float64, len(ledger))
	daily := make([]model.Rate, len(ledger))
	for i, r := range ledger {
		cumSeries[i] = r.CumPNL
		daily[i] = r.PNL
	}
	runningMax := analysis.RunningMax(cumSeries)
	drawdown := analysis.Drawdown(cumSeries, runningMax)
	for i := range ledger {
		ledger[i].RunningMax = runningMax[i]
		ledger[i].Drawdown = drawdown[i]
	}

	return &Result{
		Ledger:      ledger,
		Start:       m.Dates[0],
		End:         m.Dates[m.Len()-1],
		TradingDays: m.Len(),
		FinalCumPNL: cum,
		Performance: analysis.Compute(daily, cumSeries, e.params.TradingDaysPerYear),
	}, nil
}

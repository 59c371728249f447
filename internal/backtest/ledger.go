package backtest

import (
	"time"

	"sofr-carry-backtest/internal/analysis"
	"sofr-carry-backtest/internal/model"
)

// LedgerRow is one trading date of output.
// This is the primary artifact for "what happened" in a backtest.
type LedgerRow struct {
	Index int
	Date  time.Time

	// Front is the nearest quoted contract, empty on days with fewer than
	// two quoted contracts. Held is the assignment recorded for the day,
	// empty when there is none.
	Front string
	Held  string

	// HeldRate is the held contract's quote on this date; missing when
	// there is no assignment or the held contract has no print.
	HeldRate model.Rate
	// DeltaRate is the day-over-day change of the held contract's own
	// series, in percent.
	DeltaRate model.Rate
	// PNL is -DeltaRate * 100 * DV01; missing when DeltaRate is missing.
	// The first row is always exactly 0.
	PNL model.Rate

	// CumPNL carries the prior value forward across missing PNL days.
	CumPNL     float64
	RunningMax float64
	Drawdown   float64
}

type Result struct {
	Ledger []LedgerRow

	Start       time.Time
	End         time.Time
	TradingDays int

	FinalCumPNL float64
	Performance analysis.Performance
}

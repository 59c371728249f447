package models

import "time"

// BacktestResponse represents the response from a backtest run.
type BacktestResponse struct {
	Status  string          `json:"status"`
	Summary BacktestSummary `json:"summary"`
	Ledger  []LedgerRow     `json:"ledger,omitempty"`
}

// BacktestSummary contains aggregated backtest results. Sharpe is null when
// the P&L series has zero variance (NaN is not representable in JSON).
type BacktestSummary struct {
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	TradingDays  int      `json:"trading_days"`
	FinalCumPNL  float64  `json:"final_cum_pnl"`
	Sharpe       *float64 `json:"sharpe"`
	MaxDrawdown  float64  `json:"max_drawdown"`
	MeanDailyPNL float64  `json:"mean_daily_pnl"`
	StdDailyPNL  float64  `json:"std_daily_pnl"`
}

// LedgerRow represents one trading date in the backtest ledger. Optional
// values are null when missing, never coerced to zero.
type LedgerRow struct {
	Index         int       `json:"index"`
	Date          time.Time `json:"date"`
	FrontContract string    `json:"front_contract,omitempty"`
	HeldContract  string    `json:"held_contract,omitempty"`
	HeldRate      *float64  `json:"held_rate"`
	DeltaRate     *float64  `json:"delta_rate"`
	PNL           *float64  `json:"pnl"`
	CumPNL        float64   `json:"cum_pnl"`
	RunningMax    float64   `json:"running_max"`
	Drawdown      float64   `json:"drawdown"`
}

// StrategyInfo represents information about a roll rule.
type StrategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

package models

// BacktestRequest represents the request body for running a backtest.
// The rate table is supplied inline; columns are contract identifiers like
// "SR3Z4" and missing quotes are simply absent from a day's map.
type BacktestRequest struct {
	Rates   []RateRow       `json:"rates" binding:"required"`
	Config  BacktestConfig  `json:"config,omitempty"`
	Options BacktestOptions `json:"options,omitempty"`
}

// RateRow is one trading date of quotes, rates in percent.
type RateRow struct {
	Date   string             `json:"date" binding:"required"` // YYYY-MM-DD
	Quotes map[string]float64 `json:"quotes"`
}

// BacktestConfig overrides product and strategy defaults.
type BacktestConfig struct {
	Root               string  `json:"root,omitempty"`
	AnchorYear         int     `json:"anchor_year,omitempty"`
	DV01PerBP          float64 `json:"dv01_per_bp,omitempty"`
	TradingDaysPerYear int     `json:"trading_days_per_year,omitempty"`
	Strategy           string  `json:"strategy,omitempty"`
}

// BacktestOptions contains optional backtest parameters.
type BacktestOptions struct {
	LimitDays     int  `json:"limit_days,omitempty"`     // 0 = all
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

package model

import (
	"fmt"
	"time"
)

// Rate is an optional percent quote. The zero value means "no quote";
// a missing rate is never represented by a sentinel number.
type Rate struct {
	Value float64
	Valid bool
}

// SomeRate wraps a present quote.
func SomeRate(v float64) Rate { return Rate{Value: v, Valid: true} }

// RateMatrix is the full historical input: one row of contract quotes per
// trading date, dates strictly increasing. It is read-only after load.
type RateMatrix struct {
	// Dates are the trading dates, ascending, no duplicates.
	Dates []time.Time
	// Contracts are the column identifiers in file order.
	Contracts []string
	// Rows holds, per date, the quotes keyed by contract. An absent key
	// means the contract has no quote that day.
	Rows []map[string]float64
}

func (m *RateMatrix) Len() int { return len(m.Dates) }

// Quote returns the rate of sym on date index i, if quoted.
func (m *RateMatrix) Quote(i int, sym string) (float64, bool) {
	if i < 0 || i >= len(m.Rows) {
		return 0, false
	}
	v, ok := m.Rows[i][sym]
	return v, ok
}

// Available returns, preserving the order of universe, the contracts quoted
// on date index i. Pass a chronologically sorted universe to get the curve
// front-to-back.
func (m *RateMatrix) Available(i int, universe []string) []string {
	out := make([]string, 0, len(universe))
	for _, sym := range universe {
		if _, ok := m.Quote(i, sym); ok {
			out = append(out, sym)
		}
	}
	return out
}

// Validate checks the structural invariants: one row per date and strictly
// increasing dates.
func (m *RateMatrix) Validate() error {
	if len(m.Dates) != len(m.Rows) {
		return fmt.Errorf("rate matrix has %d dates but %d rows", len(m.Dates), len(m.Rows))
	}
	for i := 1; i < len(m.Dates); i++ {
		if !m.Dates[i].After(m.Dates[i-1]) {
			return fmt.Errorf("dates not strictly increasing at row %d: %s then %s",
				i, m.Dates[i-1].Format("2006-01-02"), m.Dates[i].Format("2006-01-02"))
		}
	}
	return nil
}

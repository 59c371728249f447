package backtest

import (
	"encoding/csv"
	"os"
	"strconv"

	"sofr-carry-backtest/internal/model"
)

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"date",
		"front_contract",
		"held_contract",
		"held_rate",
		"delta_rate",
		"pnl",
		"cum_pnl",
		"running_max",
		"drawdown",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			r.Date.Format("2006-01-02"),
			r.Front,
			r.Held,
			fmtRate(r.HeldRate),
			fmtRate(r.DeltaRate),
			fmtRate(r.PNL),
			fmtFloat(r.CumPNL),
			fmtFloat(r.RunningMax),
			fmtFloat(r.Drawdown),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// fmtRate writes missing values as empty cells, never as a number.
func fmtRate(r model.Rate) string {
	if !r.Valid {
		return ""
	}
	return fmtFloat(r.Value)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

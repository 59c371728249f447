package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"sofr-carry-backtest/internal/backtest"
)

const bannerWidth = 60

// Write renders the plain-text summary of a backtest run.
func Write(w io.Writer, title string, res *backtest.Result) error {
	banner := strings.Repeat("=", bannerWidth)
	perf := res.Performance

	sharpe := "undefined"
	if !math.IsNaN(perf.Sharpe) {
		sharpe = fmt.Sprintf("%.3f", perf.Sharpe)
	}

	lines := []string{
		banner,
		title,
		banner,
		fmt.Sprintf("Start Date:          %s", res.Start.Format("2006-01-02")),
		fmt.Sprintf("End Date:            %s", res.End.Format("2006-01-02")),
		fmt.Sprintf("Trading Days:        %d", res.TradingDays),
		fmt.Sprintf("Cumulative P&L:      $%s", Comma(res.FinalCumPNL)),
		fmt.Sprintf("Sharpe Ratio:        %s", sharpe),
		fmt.Sprintf("Maximum Drawdown:    $%s", Comma(perf.MaxDrawdown)),
		fmt.Sprintf("Average Daily P&L:   $%s", Comma(perf.MeanDailyPNL)),
		fmt.Sprintf("Daily P&L Std Dev:   $%s", Comma(perf.StdDailyPNL)),
		banner,
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// Comma formats a currency amount with two decimals and thousands
// separators, e.g. -1234567.5 -> "-1,234,567.50".
func Comma(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

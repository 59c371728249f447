package handlers

import (
	"math"
	"net/http"
	"time"

	"sofr-carry-backtest/internal/api/models"
	"sofr-carry-backtest/internal/backtest"
	"sofr-carry-backtest/internal/config"
	"sofr-carry-backtest/internal/model"
	"sofr-carry-backtest/internal/strategy"

	"github.com/gin-gonic/gin"
)

// BacktestHandler handles backtest-related requests.
type BacktestHandler struct{}

// NewBacktestHandler creates a new backtest handler.
func NewBacktestHandler() *BacktestHandler {
	return &BacktestHandler{}
}

// RunBacktest handles POST /api/v1/backtest.
func (h *BacktestHandler) RunBacktest(c *gin.Context) {
	var req models.BacktestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	m, err := buildMatrix(req.Rates)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_RATES", Message: err.Error()},
		})
		return
	}
	if req.Options.LimitDays > 0 && req.Options.LimitDays < m.Len() {
		m.Dates = m.Dates[:req.Options.LimitDays]
		m.Rows = m.Rows[:req.Options.LimitDays]
	}

	cfg := buildConfig(req.Config)
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()},
		})
		return
	}

	universe, err := model.SortContracts(
		model.FilterByRoot(m.Contracts, cfg.Product.Root), cfg.Product.AnchorYear)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONTRACT", Message: err.Error()},
		})
		return
	}

	roller, err := strategy.Build(cfg.Strategy.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_STRATEGY", Message: err.Error()},
		})
		return
	}

	engine := backtest.New(backtest.Params{
		DV01PerBP:          cfg.Product.DV01PerBP,
		TradingDaysPerYear: cfg.Product.TradingDaysPerYear,
	})
	res, err := engine.Run(m, universe, roller)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "BACKTEST_ERROR", Message: err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, buildResponse(res, req.Options.IncludeLedger))
}

func buildMatrix(rows []models.RateRow) (*model.RateMatrix, error) {
	seen := map[string]bool{}
	m := &model.RateMatrix{
		Dates: make([]time.Time, 0, len(rows)),
		Rows:  make([]map[string]float64, 0, len(rows)),
	}
	for _, r := range rows {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, err
		}
		row := make(map[string]float64, len(r.Quotes))
		for sym, v := range r.Quotes {
			row[sym] = v
			if !seen[sym] {
				seen[sym] = true
				m.Contracts = append(m.Contracts, sym)
			}
		}
		m.Dates = append(m.Dates, date)
		m.Rows = append(m.Rows, row)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func buildConfig(over models.BacktestConfig) *config.Config {
	cfg := config.Default()
	if over.Root != "" {
		cfg.Product.Root = over.Root
	}
	if over.AnchorYear != 0 {
		cfg.Product.AnchorYear = over.AnchorYear
	}
	if over.DV01PerBP != 0 {
		cfg.Product.DV01PerBP = over.DV01PerBP
	}
	if over.TradingDaysPerYear != 0 {
		cfg.Product.TradingDaysPerYear = over.TradingDaysPerYear
	}
	if over.Strategy != "" {
		cfg.Strategy.Name = over.Strategy
	}
	return &cfg
}

func buildResponse(res *backtest.Result, includeLedger bool) models.BacktestResponse {
	perf := res.Performance
	summary := models.BacktestSummary{
		StartDate:    res.Start.Format("2006-01-02"),
		EndDate:      res.End.Format("2006-01-02"),
		TradingDays:  res.TradingDays,
		FinalCumPNL:  res.FinalCumPNL,
		MaxDrawdown:  perf.MaxDrawdown,
		MeanDailyPNL: perf.MeanDailyPNL,
		StdDailyPNL:  perf.StdDailyPNL,
	}
	if !math.IsNaN(perf.Sharpe) {
		s := perf.Sharpe
		summary.Sharpe = &s
	}

	resp := models.BacktestResponse{Status: "completed", Summary: summary}
	if includeLedger {
		resp.Ledger = make([]models.LedgerRow, 0, len(res.Ledger))
		for _, r := range res.Ledger {
			resp.Ledger = append(resp.Ledger, models.LedgerRow{
				Index:         r.Index,
				Date:          r.Date,
				FrontContract: r.Front,
				HeldContract:  r.Held,
				HeldRate:      ratePtr(r.HeldRate),
				DeltaRate:     ratePtr(r.DeltaRate),
				PNL:           ratePtr(r.PNL),
				CumPNL:        r.CumPNL,
				RunningMax:    r.RunningMax,
				Drawdown:      r.Drawdown,
			})
		}
	}
	return resp
}

func ratePtr(r model.Rate) *float64 {
	if !r.Valid {
		return nil
	}
	v := r.Value
	return &v
}

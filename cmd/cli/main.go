package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"sofr-carry-backtest/internal/backtest"
	"sofr-carry-backtest/internal/config"
	"sofr-carry-backtest/internal/data"
	"sofr-carry-backtest/internal/model"
	"sofr-carry-backtest/internal/report"
	"sofr-carry-backtest/internal/strategy"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "backtest":
		cmdBacktest(os.Args[2:])
	case "universe":
		cmdUniverse(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli backtest --data rates.csv [--config config.yaml] [--out results/ledger.csv] [--n N]")
	fmt.Println("  cli universe --data rates.csv [--config config.yaml]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - backtest prints the performance report and optionally writes the per-date ledger CSV")
	fmt.Println("  - universe prints the chronologically sorted contract identifiers found in the data")
}

func cmdBacktest(args []string) {
	fs := flag.NewFlagSet("backtest", flag.ExitOnError)
	dataPath := fs.String("data", "rates.csv", "Path to rate table CSV")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Optional ledger CSV output path")
	n := fs.Int("n", 0, "Optional: limit to first N trading days (0=all)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)

	m, err := data.LoadRateCSV(*dataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load rates")
	}
	if *n > 0 && *n < m.Len() {
		m.Dates = m.Dates[:*n]
		m.Rows = m.Rows[:*n]
	}

	universe, err := model.SortContracts(
		model.FilterByRoot(m.Contracts, cfg.Product.Root), cfg.Product.AnchorYear)
	if err != nil {
		log.Fatal().Err(err).Msg("sort contract universe")
	}

	roller, err := strategy.Build(cfg.Strategy.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("build strategy")
	}

	engine := backtest.New(backtest.Params{
		DV01PerBP:          cfg.Product.DV01PerBP,
		TradingDaysPerYear: cfg.Product.TradingDaysPerYear,
	})
	res, err := engine.Run(m, universe, roller)
	if err != nil {
		log.Fatal().Err(err).Msg("run backtest")
	}

	title := fmt.Sprintf("%s SECOND-CONTRACT CARRY BACKTEST", cfg.Product.Root)
	if err := report.Write(os.Stdout, title, res); err != nil {
		log.Fatal().Err(err).Msg("write report")
	}

	ledgerOut := *outPath
	if ledgerOut == "" {
		ledgerOut = cfg.Output.LedgerCSV
	}
	if ledgerOut != "" {
		if err := os.MkdirAll(filepath.Dir(ledgerOut), 0o755); err != nil {
			log.Fatal().Err(err).Msg("create output dir")
		}
		if err := backtest.WriteLedgerCSV(ledgerOut, res.Ledger); err != nil {
			log.Fatal().Err(err).Msg("write ledger CSV")
		}
		log.Info().Int("rows", len(res.Ledger)).Str("path", ledgerOut).Msg("wrote ledger")
	}
}

func cmdUniverse(args []string) {
	fs := flag.NewFlagSet("universe", flag.ExitOnError)
	dataPath := fs.String("data", "rates.csv", "Path to rate table CSV")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)

	m, err := data.LoadRateCSV(*dataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load rates")
	}

	universe, err := model.SortContracts(
		model.FilterByRoot(m.Contracts, cfg.Product.Root), cfg.Product.AnchorYear)
	if err != nil {
		log.Fatal().Err(err).Msg("sort contract universe")
	}

	for _, sym := range universe {
		fmt.Println(sym)
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		cfg := config.Default()
		return &cfg
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	return cfg
}

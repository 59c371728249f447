package config

import (
	"errors"
	"fmt"
	"os"

	"sofr-carry-backtest/internal/strategy"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Product  ProductConfig  `yaml:"product"`
	Strategy StrategyConfig `yaml:"strategy"`
	Output   OutputConfig   `yaml:"output"`
}

type ProductConfig struct {
	// Root selects the contract columns, e.g. "SR3".
	Root string `yaml:"root"`
	// AnchorYear pins the decade window for the single year digit in
	// contract symbols: every symbol must resolve into
	// [anchor_year, anchor_year+10).
	AnchorYear int `yaml:"anchor_year"`
	// DV01PerBP is the currency value of one basis point per contract.
	DV01PerBP float64 `yaml:"dv01_per_bp"`
	// TradingDaysPerYear is the annualization convention for the Sharpe ratio.
	TradingDaysPerYear int `yaml:"trading_days_per_year"`
}

type StrategyConfig struct {
	Name string `yaml:"name"`
}

type OutputConfig struct {
	// LedgerCSV, when set, is where the per-date ledger is written.
	LedgerCSV string `yaml:"ledger_csv"`
}

// Default returns the configuration used when a field (or the whole file)
// is omitted: SR3 contracts anchored at 2020, $25 DV01, 252-day year.
func Default() Config {
	return Config{
		Product: ProductConfig{
			Root:               "SR3",
			AnchorYear:         2020,
			DV01PerBP:          25,
			TradingDaysPerYear: 252,
		},
		Strategy: StrategyConfig{Name: "second-carry"},
	}
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// applyDefaults fills zero-valued fields so partial configs stay concise.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Product.Root == "" {
		c.Product.Root = def.Product.Root
	}
	if c.Product.AnchorYear == 0 {
		c.Product.AnchorYear = def.Product.AnchorYear
	}
	if c.Product.DV01PerBP == 0 {
		c.Product.DV01PerBP = def.Product.DV01PerBP
	}
	if c.Product.TradingDaysPerYear == 0 {
		c.Product.TradingDaysPerYear = def.Product.TradingDaysPerYear
	}
	if c.Strategy.Name == "" {
		c.Strategy.Name = def.Strategy.Name
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Product.Root == "" {
		return errors.New("product.root is required")
	}
	if c.Product.AnchorYear <= 0 {
		return fmt.Errorf("product.anchor_year must be positive, got %d", c.Product.AnchorYear)
	}
	if c.Product.DV01PerBP <= 0 {
		return fmt.Errorf("product.dv01_per_bp must be positive, got %v", c.Product.DV01PerBP)
	}
	if c.Product.TradingDaysPerYear <= 0 {
		return fmt.Errorf("product.trading_days_per_year must be positive, got %d", c.Product.TradingDaysPerYear)
	}
	if _, err := strategy.Build(c.Strategy.Name); err != nil {
		return fmt.Errorf("strategy config invalid: %w", err)
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
product:
  anchor_year: 2024
`))
	require.NoError(t, err)

	assert.Equal(t, "SR3", cfg.Product.Root)
	assert.Equal(t, 2024, cfg.Product.AnchorYear)
	assert.Equal(t, 25.0, cfg.Product.DV01PerBP)
	assert.Equal(t, 252, cfg.Product.TradingDaysPerYear)
	assert.Equal(t, "second-carry", cfg.Strategy.Name)
	assert.Empty(t, cfg.Output.LedgerCSV)
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
product:
  root: SR1
  anchor_year: 2020
  dv01_per_bp: 41.67
  trading_days_per_year: 260
strategy:
  name: second-carry
output:
  ledger_csv: results/ledger.csv
`))
	require.NoError(t, err)

	assert.Equal(t, "SR1", cfg.Product.Root)
	assert.Equal(t, 41.67, cfg.Product.DV01PerBP)
	assert.Equal(t, 260, cfg.Product.TradingDaysPerYear)
	assert.Equal(t, "results/ledger.csv", cfg.Output.LedgerCSV)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"negative anchor", "product:\n  anchor_year: -3\n", "anchor_year"},
		{"negative dv01", "product:\n  dv01_per_bp: -1\n", "dv01_per_bp"},
		{"negative trading days", "product:\n  trading_days_per_year: -5\n", "trading_days_per_year"},
		{"unknown strategy", "strategy:\n  name: momentum\n", "momentum"},
		{"not yaml", "{{{\n", "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

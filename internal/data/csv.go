package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sofr-carry-backtest/internal/model"
)

// LoadRateCSV reads a rate table of the form
//
//	date,SR3H4,SR3M4,SR3U4,...
//	2024-01-02,5.32,5.10,...
//
// into a RateMatrix. Empty cells are missing quotes. Dates must be strictly
// increasing; the matrix is validated before being returned.
func LoadRateCSV(path string) (*model.RateMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: need a header and at least one data row", path)
	}

	header := records[0]
	if len(header) < 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "date") {
		return nil, fmt.Errorf("%s: first header column must be \"date\"", path)
	}
	contracts := make([]string, 0, len(header)-1)
	for _, c := range header[1:] {
		c = strings.TrimSpace(c)
		if c == "" {
			return nil, fmt.Errorf("%s: empty contract column in header", path)
		}
		if _, _, err := model.CheckSymbol(c); err != nil {
			return nil, fmt.Errorf("%s: header: %w", path, err)
		}
		contracts = append(contracts, c)
	}

	m := &model.RateMatrix{
		Contracts: contracts,
		Dates:     make([]time.Time, 0, len(records)-1),
		Rows:      make([]map[string]float64, 0, len(records)-1),
	}

	for lineNo, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%s row %d: got %d cells, want %d", path, lineNo+2, len(rec), len(header))
		}
		date, err := time.Parse("2006-01-02", strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad date %q: %w", path, lineNo+2, rec[0], err)
		}

		row := make(map[string]float64, len(contracts))
		for j, cell := range rec[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: bad rate %q for %s: %w", path, lineNo+2, cell, contracts[j], err)
			}
			row[contracts[j]] = v
		}

		m.Dates = append(m.Dates, date)
		m.Rows = append(m.Rows, row)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

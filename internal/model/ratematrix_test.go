package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestRateMatrixQuoteAndAvailable(t *testing.T) {
	m := &RateMatrix{
		Dates:     []time.Time{day(2), day(3)},
		Contracts: []string{"SR3H4", "SR3M4", "SR3U4"},
		Rows: []map[string]float64{
			{"SR3H4": 5.30, "SR3M4": 5.10},
			{"SR3M4": 5.12, "SR3U4": 4.95},
		},
	}
	require.NoError(t, m.Validate())

	v, ok := m.Quote(0, "SR3H4")
	require.True(t, ok)
	assert.Equal(t, 5.30, v)

	_, ok = m.Quote(0, "SR3U4")
	assert.False(t, ok, "unquoted contract must be missing, not zero")
	_, ok = m.Quote(5, "SR3H4")
	assert.False(t, ok, "out-of-range date index")

	universe := []string{"SR3H4", "SR3M4", "SR3U4"}
	assert.Equal(t, []string{"SR3H4", "SR3M4"}, m.Available(0, universe))
	assert.Equal(t, []string{"SR3M4", "SR3U4"}, m.Available(1, universe))
}

func TestRateMatrixValidate(t *testing.T) {
	m := &RateMatrix{
		Dates: []time.Time{day(3), day(3)},
		Rows:  []map[string]float64{{}, {}},
	}
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strictly increasing")

	m = &RateMatrix{
		Dates: []time.Time{day(3), day(2)},
		Rows:  []map[string]float64{{}, {}},
	}
	assert.Error(t, m.Validate())

	m = &RateMatrix{Dates: []time.Time{day(2)}, Rows: nil}
	assert.Error(t, m.Validate())
}

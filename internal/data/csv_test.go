package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRateCSV(t *testing.T) {
	path := writeCSV(t, `date,SR3H4,SR3M4,SR3U4
2024-01-02,5.00,5.10,
2024-01-03,5.01,5.12,
2024-01-04,,5.15,5.20
`)

	m, err := LoadRateCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"SR3H4", "SR3M4", "SR3U4"}, m.Contracts)
	require.Equal(t, 3, m.Len())

	v, ok := m.Quote(0, "SR3H4")
	require.True(t, ok)
	assert.Equal(t, 5.00, v)

	_, ok = m.Quote(0, "SR3U4")
	assert.False(t, ok, "empty cell is a missing quote")
	_, ok = m.Quote(2, "SR3H4")
	assert.False(t, ok)

	assert.Equal(t, "2024-01-04", m.Dates[2].Format("2006-01-02"))
}

func TestLoadRateCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "header only",
			content: "date,SR3H4\n",
			wantErr: "at least one data row",
		},
		{
			name:    "unknown month letter in header",
			content: "date,SR3H4,SR3X4\n2024-01-02,5.0,5.1\n",
			wantErr: "SR3X4",
		},
		{
			name:    "non-numeric year digit in header",
			content: "date,SR3ZQ\n2024-01-02,5.0\n",
			wantErr: "SR3ZQ",
		},
		{
			name:    "missing date column",
			content: "timestamp,SR3H4\n2024-01-02,5.0\n",
			wantErr: "date",
		},
		{
			name:    "bad date",
			content: "date,SR3H4\n01/02/2024,5.0\n",
			wantErr: "bad date",
		},
		{
			name:    "bad rate",
			content: "date,SR3H4\n2024-01-02,five\n",
			wantErr: "bad rate",
		},
		{
			name:    "dates out of order",
			content: "date,SR3H4\n2024-01-03,5.0\n2024-01-02,5.1\n",
			wantErr: "strictly increasing",
		},
		{
			name:    "duplicate date",
			content: "date,SR3H4\n2024-01-02,5.0\n2024-01-02,5.1\n",
			wantErr: "strictly increasing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRateCSV(writeCSV(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRateCSVMissingFile(t *testing.T) {
	_, err := LoadRateCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

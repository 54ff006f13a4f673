package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestCSV(t *testing.T) (*CSVJournal, string, string) {
	t.Helper()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")
	equityPath := filepath.Join(dir, "equity.csv")

	j, err := NewCSV(tradesPath, equityPath)
	assert.NoError(t, err)

	return j, tradesPath, equityPath
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	assert.NoError(t, err)
	return rows
}

func TestCSVJournalHeaders(t *testing.T) {
	t.Parallel()

	j, tradesPath, equityPath := newTestCSV(t)
	assert.NoError(t, j.Close())

	trades := readCSV(t, tradesPath)
	equity := readCSV(t, equityPath)

	wantTrades := []string{"trade_id", "symbol", "side", "quantity", "price", "realized_pl", "time"}
	assert.Equal(t, wantTrades, trades[0])

	wantEquity := []string{"time", "balance", "market_value", "unrealized_pl", "realized_pl", "equity"}
	assert.Equal(t, wantEquity, equity[0])
}

func TestCSVJournalRecordTrade(t *testing.T) {
	t.Parallel()

	j, tradesPath, _ := newTestCSV(t)

	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err := j.RecordTrade(TradeRecord{
		TradeID:    "T1",
		Symbol:     "AAPL",
		Side:       "SELL",
		Quantity:   4,
		Price:      200.00,
		RealizedPL: 60.00,
		Time:       when,
	})
	assert.NoError(t, err)
	assert.NoError(t, j.Close())

	rows := readCSV(t, tradesPath)
	assert.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, "T1", row[0])
	assert.Equal(t, "AAPL", row[1])
	assert.Equal(t, "SELL", row[2])
	assert.Equal(t, "4", row[3])
	assert.Equal(t, "200.000000", row[4])
	assert.Equal(t, "60.000000", row[5])
	assert.Equal(t, when.Format(time.RFC3339), row[6])
}

func TestCSVJournalRecordEquity(t *testing.T) {
	t.Parallel()

	j, _, equityPath := newTestCSV(t)

	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err := j.RecordEquity(EquitySnapshot{
		Time:         when,
		Balance:      8950.00,
		MarketValue:  1110.00,
		UnrealizedPL: 0.00,
		RealizedPL:   60.00,
		Equity:       10060.00,
	})
	assert.NoError(t, err)
	assert.NoError(t, j.Close())

	rows := readCSV(t, equityPath)
	assert.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, when.Format(time.RFC3339), row[0])
	assert.Equal(t, "8950.000000", row[1])
	assert.Equal(t, "1110.000000", row[2])
	assert.Equal(t, "0.000000", row[3])
	assert.Equal(t, "60.000000", row[4])
	assert.Equal(t, "10060.000000", row[5])
}

package store

import (
	"os"
	"testing"

	"github.com/rustyeddy/papertrade/account"
	"github.com/rustyeddy/papertrade/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrSeedFirstRun(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	acct := account.New("fresh")

	require.NoError(t, LoadOrSeed(st, acct))

	assert.InDelta(t, DefaultOpeningBalance, acct.Balance(), 1e-9)
	assert.Empty(t, acct.Holdings())
}

func TestLoadOrSeedZeroRecord(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	require.NoError(t, st.Save(account.Snapshot{}))

	acct := account.New("zeroed")
	require.NoError(t, LoadOrSeed(st, acct))

	assert.InDelta(t, DefaultOpeningBalance, acct.Balance(), 1e-9)
}

func TestLoadOrSeedRestoresExistingRecord(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	require.NoError(t, st.Save(account.Snapshot{
		Balance:     8950.00,
		RealizedPnL: 60.00,
		Holdings: []portfolio.Holding{
			{Symbol: "AAPL", Quantity: 6, AvgCost: 185.00},
		},
	}))

	acct := account.New("returning")
	require.NoError(t, LoadOrSeed(st, acct))

	assert.InDelta(t, 8950.00, acct.Balance(), 1e-6)
	assert.InDelta(t, 60.00, acct.RealizedPnL(), 1e-6)

	hs := acct.Holdings()
	require.Len(t, hs, 1)
	assert.Equal(t, int64(6), hs[0].Quantity)
	assert.InDelta(t, 185.00, hs[0].AvgCost, 1e-6)
}

func TestLoadOrSeedKeepsHoldingsOnlyRecord(t *testing.T) {
	t.Parallel()

	// Zero cash but open positions: not a fresh account, no demo funds.
	st := newTestStore(t)
	require.NoError(t, st.Save(account.Snapshot{
		Balance: 0,
		Holdings: []portfolio.Holding{
			{Symbol: "TSLA", Quantity: 3, AvgCost: 240.00},
		},
	}))

	acct := account.New("all-in")
	require.NoError(t, LoadOrSeed(st, acct))

	assert.InDelta(t, 0.0, acct.Balance(), 1e-9)
	assert.Len(t, acct.Holdings(), 1)
}

func TestLoadOrSeedMalformedRecordStartsFresh(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	require.NoError(t, os.WriteFile(st.Path(), []byte("not a record\n"), 0o644))

	acct := account.New("recovering")
	require.NoError(t, LoadOrSeed(st, acct))

	assert.InDelta(t, DefaultOpeningBalance, acct.Balance(), 1e-9)
	assert.Empty(t, acct.Holdings())
}

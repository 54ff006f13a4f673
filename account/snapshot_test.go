package account

import (
	"testing"

	"github.com/rustyeddy/papertrade/portfolio"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotCapturesDurableState(t *testing.T) {
	t.Parallel()

	a := newFundedAccount(t, 10000)
	mkt := stubMarket{"AAPL": 185.00, "TSLA": 240.00}

	assert.NoError(t, a.Buy(mkt, "TSLA", 5))
	assert.NoError(t, a.Buy(mkt, "AAPL", 10))

	snap := a.Snapshot()
	assert.InDelta(t, a.Balance(), snap.Balance, 1e-9)
	assert.Len(t, snap.Holdings, 2)
	assert.Equal(t, "AAPL", snap.Holdings[0].Symbol)
	assert.Equal(t, "TSLA", snap.Holdings[1].Symbol)
}

func TestRestoreReplaysThroughPortfolio(t *testing.T) {
	t.Parallel()

	a := New("tester")
	a.Restore(Snapshot{
		Balance:     500.00,
		RealizedPnL: -12.50,
		Holdings: []portfolio.Holding{
			{Symbol: "AAPL", Quantity: 6, AvgCost: 185.00},
		},
	})

	assert.InDelta(t, 500.00, a.Balance(), 1e-9)
	assert.InDelta(t, -12.50, a.RealizedPnL(), 1e-9)

	hs := a.Holdings()
	assert.Len(t, hs, 1)
	assert.Equal(t, int64(6), hs[0].Quantity)
	assert.InDelta(t, 185.00, hs[0].AvgCost, 1e-9)

	// Restored positions behave exactly like live ones: a later buy blends.
	mkt := stubMarket{"AAPL": 35.00}
	assert.NoError(t, a.Buy(mkt, "AAPL", 4))

	hs = a.Holdings()
	assert.Equal(t, int64(10), hs[0].Quantity)
	assert.InDelta(t, (185.00*6+35.00*4)/10, hs[0].AvgCost, 1e-9)
}

func TestRestoreReplacesPriorState(t *testing.T) {
	t.Parallel()

	a := newFundedAccount(t, 10000)
	mkt := stubMarket{"AAPL": 185.00}
	assert.NoError(t, a.Buy(mkt, "AAPL", 10))

	a.Restore(Snapshot{Balance: 1.00})

	assert.InDelta(t, 1.00, a.Balance(), 1e-9)
	assert.Empty(t, a.Holdings())
	assert.Equal(t, 0.0, a.RealizedPnL())
}

func TestRestoreSkipsNonPositiveQuantities(t *testing.T) {
	t.Parallel()

	a := New("tester")
	a.Restore(Snapshot{
		Balance: 100.00,
		Holdings: []portfolio.Holding{
			{Symbol: "AAPL", Quantity: 0, AvgCost: 185.00},
			{Symbol: "TSLA", Quantity: -3, AvgCost: 240.00},
			{Symbol: "NVDA", Quantity: 2, AvgCost: 950.00},
		},
	})

	hs := a.Holdings()
	assert.Len(t, hs, 1)
	assert.Equal(t, "NVDA", hs[0].Symbol)
}

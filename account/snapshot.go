package account

import "github.com/rustyeddy/papertrade/portfolio"

// Snapshot is the durable state of an account: cash, realized P&L, and the
// open positions. Market prices are never part of it; every run reseeds the
// market.
type Snapshot struct {
	Balance     float64
	RealizedPnL float64
	Holdings    []portfolio.Holding
}

// Snapshot captures the account's durable state, holdings sorted by symbol.
func (a *Account) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Snapshot{
		Balance:     a.balance,
		RealizedPnL: a.realizedPnL,
		Holdings:    a.portfolio.Holdings(),
	}
}

// Restore replaces the account's state with snap. Holdings are replayed
// through the portfolio's Buy path so average-cost bookkeeping runs the
// same code as live trading.
func (a *Account) Restore(snap Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = snap.Balance
	a.realizedPnL = snap.RealizedPnL
	a.portfolio.Clear()
	for _, h := range snap.Holdings {
		if h.Quantity <= 0 {
			continue
		}
		a.portfolio.Buy(h.Symbol, h.Quantity, h.AvgCost)
	}
}

// Package account enforces the trading rules for one virtual account: cash
// may never go negative, positions may never go short, and a rejected trade
// leaves every piece of state exactly as it was.
package account

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/market"
	"github.com/rustyeddy/papertrade/pkg/id"
	"github.com/rustyeddy/papertrade/portfolio"
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// balanceEpsilon absorbs float rounding when comparing cost to balance, so
// buying with exactly the cash on hand is never falsely rejected.
const balanceEpsilon = 1e-9

// Quoter is the market surface the account needs: price discovery only.
// *market.Market satisfies it.
type Quoter interface {
	Get(symbol string) (market.Quote, error)
}

// Account owns the cash balance, cumulative realized P&L, and the
// average-cost portfolio of one user. All trades go through Buy and Sell;
// validation happens before any mutation, so failures never apply partially.
type Account struct {
	mu          sync.Mutex
	name        string
	balance     float64
	realizedPnL float64
	portfolio   *portfolio.Portfolio
	journal     journal.Journal
}

func New(name string) *Account {
	return &Account{
		name:      name,
		portfolio: portfolio.New(),
		journal:   journal.Nop{},
	}
}

// SetJournal directs completed trades and equity snapshots to j. A nil j
// disables journaling.
func (a *Account) SetJournal(j journal.Journal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if j == nil {
		j = journal.Nop{}
	}
	a.journal = j
}

func (a *Account) Name() string { return a.name }

func (a *Account) Balance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) RealizedPnL() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.realizedPnL
}

// AddFunds credits the cash balance. Non-positive amounts are rejected.
func (a *Account) AddFunds(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("add funds %.2f: %w", amount, ErrInvalidAmount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += amount
	return nil
}

// Buy purchases qty shares of symbol at the current market price. The full
// cost is debited from the cash balance and the position's average cost is
// reblended by the portfolio.
func (a *Account) Buy(mkt Quoter, symbol string, qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("buy %s: %w", symbol, ErrInvalidQuantity)
	}
	q, err := mkt.Get(symbol)
	if err != nil {
		return fmt.Errorf("buy: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	cost := q.Price * float64(qty)
	if cost > a.balance+balanceEpsilon {
		return fmt.Errorf("buy %d %s at %.2f: %w", qty, symbol, q.Price, ErrInsufficientBalance)
	}

	a.balance -= cost
	a.portfolio.Buy(symbol, qty, q.Price)

	return a.journal.RecordTrade(journal.TradeRecord{
		TradeID:  id.New(),
		Symbol:   symbol,
		Side:     "BUY",
		Quantity: qty,
		Price:    q.Price,
		Time:     time.Now().UTC(),
	})
}

// Sell disposes qty shares of symbol at the current market price. Proceeds
// are credited to the cash balance and the profit against the position's
// average cost is added to cumulative realized P&L. The position check runs
// before any balance mutation.
func (a *Account) Sell(mkt Quoter, symbol string, qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("sell %s: %w", symbol, ErrInvalidQuantity)
	}
	q, err := mkt.Get(symbol)
	if err != nil {
		return fmt.Errorf("sell: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	profit, err := a.portfolio.Sell(symbol, qty, q.Price)
	if err != nil {
		return err
	}

	a.balance += q.Price * float64(qty)
	a.realizedPnL += profit

	return a.journal.RecordTrade(journal.TradeRecord{
		TradeID:    id.New(),
		Symbol:     symbol,
		Side:       "SELL",
		Quantity:   qty,
		Price:      q.Price,
		RealizedPL: profit,
		Time:       time.Now().UTC(),
	})
}

// TotalEquity is cash plus the market value of all held positions.
func (a *Account) TotalEquity(prices portfolio.PriceLookup) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance + a.portfolio.MarketValue(prices)
}

// MarketValue sums current value over all held positions.
func (a *Account) MarketValue(prices portfolio.PriceLookup) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.portfolio.MarketValue(prices)
}

// UnrealizedPnL is the paper profit on all held positions.
func (a *Account) UnrealizedPnL(prices portfolio.PriceLookup) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.portfolio.UnrealizedPnL(prices)
}

// Holdings returns a read-only copy of all positions, sorted by symbol.
func (a *Account) Holdings() []portfolio.Holding {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.portfolio.Holdings()
}

// SnapshotEquity records the account's current derived metrics to the
// journal.
func (a *Account) SnapshotEquity(prices portfolio.PriceLookup) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	mv := a.portfolio.MarketValue(prices)
	upnl := a.portfolio.UnrealizedPnL(prices)

	return a.journal.RecordEquity(journal.EquitySnapshot{
		Time:         time.Now().UTC(),
		Balance:      a.balance,
		MarketValue:  mv,
		UnrealizedPL: upnl,
		RealizedPL:   a.realizedPnL,
		Equity:       a.balance + mv,
	})
}

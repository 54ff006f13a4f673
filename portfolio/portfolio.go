// Package portfolio tracks per-symbol average-cost positions for a single
// account. A position's average cost reflects the blended purchase price of
// the shares still held; partial sells never touch it, and a position sold
// flat is removed rather than kept at zero quantity.
package portfolio

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInsufficientPosition = errors.New("insufficient position")

// Holding is one average-cost position.
type Holding struct {
	Symbol   string
	Quantity int64
	AvgCost  float64
}

// PriceLookup resolves a symbol to its current price. market.Market
// satisfies it.
type PriceLookup interface {
	Price(symbol string) (float64, bool)
}

// Portfolio maps symbols to holdings. It performs no balance or quantity
// validation beyond the no-short rule; that is the account's job.
type Portfolio struct {
	holdings map[string]Holding
}

func New() *Portfolio {
	return &Portfolio{holdings: make(map[string]Holding)}
}

// Buy adds qty shares at price. An existing position gets a
// quantity-weighted average cost blend; a new one starts at price.
// The caller guarantees qty > 0.
func (p *Portfolio) Buy(symbol string, qty int64, price float64) {
	h, ok := p.holdings[symbol]
	if !ok {
		p.holdings[symbol] = Holding{Symbol: symbol, Quantity: qty, AvgCost: price}
		return
	}
	totalCost := h.AvgCost*float64(h.Quantity) + price*float64(qty)
	h.Quantity += qty
	h.AvgCost = totalCost / float64(h.Quantity)
	p.holdings[symbol] = h
}

// Sell removes qty shares at price and returns the realized profit against
// the position's average cost. Selling more than is held, or a symbol not
// held at all, fails with ErrInsufficientPosition and changes nothing.
func (p *Portfolio) Sell(symbol string, qty int64, price float64) (float64, error) {
	h, ok := p.holdings[symbol]
	if !ok || h.Quantity < qty {
		return 0, fmt.Errorf("sell %d %s: %w", qty, symbol, ErrInsufficientPosition)
	}

	profit := (price - h.AvgCost) * float64(qty)
	h.Quantity -= qty
	if h.Quantity == 0 {
		delete(p.holdings, symbol)
	} else {
		p.holdings[symbol] = h
	}
	return profit, nil
}

// Get returns the holding for symbol, if any.
func (p *Portfolio) Get(symbol string) (Holding, bool) {
	h, ok := p.holdings[symbol]
	return h, ok
}

// Holdings returns a copy of all positions, sorted by symbol.
func (p *Portfolio) Holdings() []Holding {
	out := make([]Holding, 0, len(p.holdings))
	for _, h := range p.holdings {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Len reports the number of open positions.
func (p *Portfolio) Len() int { return len(p.holdings) }

// MarketValue sums quantity * current price over all holdings. Symbols the
// price source cannot resolve contribute 0.
func (p *Portfolio) MarketValue(prices PriceLookup) float64 {
	var sum float64
	for sym, h := range p.holdings {
		if price, ok := prices.Price(sym); ok {
			sum += price * float64(h.Quantity)
		}
	}
	return sum
}

// UnrealizedPnL sums (current price - average cost) * quantity over all
// holdings, with the same missing-symbol policy as MarketValue.
func (p *Portfolio) UnrealizedPnL(prices PriceLookup) float64 {
	var pnl float64
	for sym, h := range p.holdings {
		if price, ok := prices.Price(sym); ok {
			pnl += (price - h.AvgCost) * float64(h.Quantity)
		}
	}
	return pnl
}

// Clear removes every holding. Used when reloading persisted state.
func (p *Portfolio) Clear() {
	p.holdings = make(map[string]Holding)
}

package market

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

var (
	ErrSymbolNotFound  = errors.New("symbol not found")
	ErrDuplicateSymbol = errors.New("symbol already registered")
)

// Quote is a point-in-time snapshot of one security. Callers get quotes,
// never live Security references, so price mutation stays behind Tick.
type Quote struct {
	Symbol string
	Name   string
	Price  float64
}

// Market owns the set of tradeable securities. Membership is fixed after
// seeding; only prices change, and only through Tick. A tick pass holds the
// write lock for the whole market so lookups never observe a half-updated
// pass if ticking ever moves to a timer.
type Market struct {
	mu         sync.RWMutex
	securities map[string]Security
}

func New() *Market {
	return &Market{securities: make(map[string]Security)}
}

// AddSecurity registers sec under its symbol. Duplicate symbols are
// rejected, not overwritten.
func (m *Market) AddSecurity(sec Security) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sym := sec.Symbol()
	if _, ok := m.securities[sym]; ok {
		return fmt.Errorf("add security %q: %w", sym, ErrDuplicateSymbol)
	}
	m.securities[sym] = sec
	return nil
}

// Get returns the current quote for symbol. An unknown symbol is a caller
// error, reported as ErrSymbolNotFound rather than a panic.
func (m *Market) Get(symbol string) (Quote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sec, ok := m.securities[symbol]
	if !ok {
		return Quote{}, fmt.Errorf("get %q: %w", symbol, ErrSymbolNotFound)
	}
	return Quote{Symbol: sec.Symbol(), Name: sec.Name(), Price: sec.Price()}, nil
}

// Price reports the current price of symbol. It satisfies
// portfolio.PriceLookup.
func (m *Market) Price(symbol string) (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sec, ok := m.securities[symbol]
	if !ok {
		return 0, false
	}
	return sec.Price(), true
}

// Tick advances every registered security by times price updates. Update
// order within a pass is not specified; each security's update is
// independent.
func (m *Market) Tick(rng *rand.Rand, times int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for t := 0; t < times; t++ {
		for _, sec := range m.securities {
			sec.UpdatePrice(rng)
		}
	}
}

// List returns quotes for every security, sorted by symbol.
func (m *Market) List() []Quote {
	m.mu.RLock()
	defer m.mu.RUnlock()

	quotes := make([]Quote, 0, len(m.securities))
	for _, sec := range m.securities {
		quotes = append(quotes, Quote{Symbol: sec.Symbol(), Name: sec.Name(), Price: sec.Price()})
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].Symbol < quotes[j].Symbol })
	return quotes
}

// Len reports how many securities are registered.
func (m *Market) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.securities)
}

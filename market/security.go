package market

import (
	"math"
	"math/rand"
)

// Security is the capability every tradeable instrument provides: identity,
// a current price, and the ability to advance that price one simulated tick.
// New instrument kinds only need to implement this interface; the Market
// never looks past it.
type Security interface {
	Symbol() string
	Name() string
	Price() float64
	UpdatePrice(rng *rand.Rand)
}

const (
	// drift is the small upward bias applied on every tick.
	drift = 0.0005

	// priceFloor is the lowest price a tick can leave behind.
	priceFloor = 1.0

	// maxTickGain caps a single tick at +25% of the pre-tick price.
	maxTickGain = 1.25
)

// Stock is an equity with a fixed base volatility. Each tick draws
// noise ~ Normal(0, vol) and applies p' = p * (1 + drift + noise), clamped
// to [priceFloor, p*maxTickGain] so the price can neither cross zero nor
// explode in one step.
type Stock struct {
	symbol string
	name   string
	price  float64
	vol    float64
}

func NewStock(symbol, name string, price, vol float64) *Stock {
	return &Stock{symbol: symbol, name: name, price: price, vol: vol}
}

func (s *Stock) Symbol() string { return s.symbol }
func (s *Stock) Name() string   { return s.name }
func (s *Stock) Price() float64 { return s.price }

func (s *Stock) UpdatePrice(rng *rand.Rand) {
	noise := rng.NormFloat64() * s.vol
	change := drift + noise
	np := s.price * (1 + change)
	np = math.Max(priceFloor, math.Min(np, s.price*maxTickGain))
	s.price = np
}

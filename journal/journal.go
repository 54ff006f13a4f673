package journal

import "time"

// TradeRecord is one completed buy or sell. RealizedPL is zero for buys;
// for sells it is the profit locked in against the position's average cost.
type TradeRecord struct {
	TradeID    string
	Symbol     string
	Side       string // "BUY" or "SELL"
	Quantity   int64
	Price      float64
	RealizedPL float64
	Time       time.Time
}

// EquitySnapshot captures the account's derived metrics at one moment.
type EquitySnapshot struct {
	Time         time.Time
	Balance      float64
	MarketValue  float64
	UnrealizedPL float64
	RealizedPL   float64
	Equity       float64
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordEquity(EquitySnapshot) error
	Close() error
}

// Nop discards everything. Used when a run does not want a trade log.
type Nop struct{}

func (Nop) RecordTrade(TradeRecord) error     { return nil }
func (Nop) RecordEquity(EquitySnapshot) error { return nil }
func (Nop) Close() error                      { return nil }

package cmd

import (
	"fmt"

	"github.com/rustyeddy/papertrade/account"
	"github.com/rustyeddy/papertrade/market"
)

func printDashboard(acct *account.Account, mkt *market.Market) {
	fmt.Printf("\n--- %s ---\n", acct.Name())
	fmt.Printf("Cash Balance   : $%.2f\n", acct.Balance())
	fmt.Printf("Mkt Value      : $%.2f\n", acct.MarketValue(mkt))
	fmt.Printf("Unrealized P/L : $%.2f\n", acct.UnrealizedPnL(mkt))
	fmt.Printf("Realized P/L   : $%.2f\n", acct.RealizedPnL())
	fmt.Printf("Total Equity   : $%.2f\n", acct.TotalEquity(mkt))

	holdings := acct.Holdings()
	if len(holdings) == 0 {
		return
	}

	fmt.Printf("\n%-8s %10s %14s %12s %14s\n", "Symbol", "Qty", "Avg Cost", "Price", "Unrlzd P/L")
	for _, h := range holdings {
		price, ok := mkt.Price(h.Symbol)
		if !ok {
			continue
		}
		pnl := (price - h.AvgCost) * float64(h.Quantity)
		fmt.Printf("%-8s %10d %14.2f %12.2f %14.2f\n", h.Symbol, h.Quantity, h.AvgCost, price, pnl)
	}
}

func printMarket(mkt *market.Market) {
	fmt.Printf("%-8s %-24s %12s\n", "Symbol", "Name", "Price")
	for _, q := range mkt.List() {
		fmt.Printf("%-8s %-24s %12.2f\n", q.Symbol, q.Name, q.Price)
	}
}

package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "papertrade",
	Short: "A virtual stock portfolio simulator",
	Long: `Papertrade is a single-account virtual trading simulator written in Go.

It provides tools for:
  - Simulating a market of securities with stochastic price movement
  - Trading against the simulated market with average-cost accounting
  - Tracking cash, realized and unrealized P/L, and total equity
  - Persisting the account across runs
  - Journaling trades and equity curves to CSV or SQLite

Complete documentation is available at https://github.com/rustyeddy/papertrade`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "List the market catalog after simulating ticks",
	Long: `Seed the market from the config catalog, advance it the requested
number of ticks, and print the resulting quotes sorted by symbol.

Example:
  papertrade market --ticks 10 --seed 42`,
	RunE: runMarket,
}

var (
	marketTicks int
	marketSeed  int64
)

func init() {
	rootCmd.AddCommand(marketCmd)

	marketCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	marketCmd.Flags().IntVarP(&marketTicks, "ticks", "t", 0, "market ticks to simulate")
	marketCmd.Flags().Int64Var(&marketSeed, "seed", 0, "RNG seed (0 seeds from the clock)")
}

func runMarket(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if marketSeed != 0 {
		cfg.Market.Seed = marketSeed
	}

	mkt, err := cfg.BuildMarket()
	if err != nil {
		return fmt.Errorf("seed market: %w", err)
	}

	if marketTicks > 0 {
		mkt.Tick(cfg.RNG(), marketTicks)
	}

	printMarket(mkt)
	return nil
}

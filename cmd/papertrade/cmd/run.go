package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rustyeddy/papertrade/account"
	"github.com/rustyeddy/papertrade/config"
	"github.com/rustyeddy/papertrade/store"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted trading session",
	Long: `Run a non-interactive trading session.

The account is restored from the save file (or seeded with demo funds on
first run), the market is advanced the requested number of ticks, any
scripted trades are applied, and the account is saved back.

Example:
  papertrade run --ticks 5 --buy AAPL:10 --sell AAPL:4`,
	RunE: runRun,
}

var (
	runConfigPath string
	runTicks      int
	runSeed       int64
	runBuys       []string
	runSells      []string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	runCmd.Flags().IntVarP(&runTicks, "ticks", "t", 1, "market ticks to simulate before trading")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "RNG seed (0 seeds from the clock)")
	runCmd.Flags().StringArrayVar(&runBuys, "buy", nil, "buy order as SYMBOL:QTY (repeatable)")
	runCmd.Flags().StringArrayVar(&runSells, "sell", nil, "sell order as SYMBOL:QTY (repeatable)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runSeed != 0 {
		cfg.Market.Seed = runSeed
	}

	mkt, err := cfg.BuildMarket()
	if err != nil {
		return fmt.Errorf("seed market: %w", err)
	}

	j, err := cfg.OpenJournal()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	acct := account.New(cfg.Account.Name)
	acct.SetJournal(j)

	st := store.New(cfg.Store.Path)
	if err := store.LoadOrSeed(st, acct); err != nil {
		return fmt.Errorf("load account: %w", err)
	}

	rng := cfg.RNG()
	if runTicks > 0 {
		mkt.Tick(rng, runTicks)
	}

	for _, spec := range runBuys {
		sym, qty, err := parseOrder(spec)
		if err != nil {
			return err
		}
		if err := acct.Buy(mkt, sym, qty); err != nil {
			fmt.Printf("buy rejected: %v\n", err)
			continue
		}
		fmt.Printf("Bought %d of %s\n", qty, sym)
	}
	for _, spec := range runSells {
		sym, qty, err := parseOrder(spec)
		if err != nil {
			return err
		}
		if err := acct.Sell(mkt, sym, qty); err != nil {
			fmt.Printf("sell rejected: %v\n", err)
			continue
		}
		fmt.Printf("Sold %d of %s\n", qty, sym)
	}

	if err := acct.SnapshotEquity(mkt); err != nil {
		return fmt.Errorf("record equity: %w", err)
	}

	printDashboard(acct, mkt)

	if err := st.Save(acct.Snapshot()); err != nil {
		return err
	}
	fmt.Printf("\nProgress saved to %s\n", st.Path())
	return nil
}

func loadConfig() (*config.Config, error) {
	if runConfigPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func parseOrder(spec string) (string, int64, error) {
	sym, qtyStr, ok := strings.Cut(spec, ":")
	if !ok {
		return "", 0, fmt.Errorf("order %q: want SYMBOL:QTY", spec)
	}
	qty, err := strconv.ParseInt(qtyStr, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("order %q: %w", spec, err)
	}
	return strings.ToUpper(strings.TrimSpace(sym)), qty, nil
}

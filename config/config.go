package config

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/market"
	"gopkg.in/yaml.v3"
)

// Config represents the complete simulation configuration
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Market  MarketConfig  `json:"market" yaml:"market"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// AccountConfig contains account initialization parameters
type AccountConfig struct {
	Name string `json:"name" yaml:"name"`
}

// MarketConfig contains the seeded security catalog and RNG seed
type MarketConfig struct {
	// Seed fixes the random source; 0 means seed from the clock.
	Seed       int64            `json:"seed,omitempty" yaml:"seed,omitempty"`
	Securities []SecurityConfig `json:"securities" yaml:"securities"`
}

// SecurityConfig describes one catalog entry
type SecurityConfig struct {
	Symbol     string  `json:"symbol" yaml:"symbol"`
	Name       string  `json:"name" yaml:"name"`
	Price      float64 `json:"price" yaml:"price"`
	Volatility float64 `json:"volatility" yaml:"volatility"`
}

// StoreConfig contains persistence parameters
type StoreConfig struct {
	Path string `json:"path" yaml:"path"`
}

// JournalConfig contains trade journaling parameters
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Account.Name == "" {
		return fmt.Errorf("account.name is required")
	}
	if len(c.Market.Securities) == 0 {
		return fmt.Errorf("market.securities must not be empty")
	}
	seen := make(map[string]bool, len(c.Market.Securities))
	for _, s := range c.Market.Securities {
		if s.Symbol == "" {
			return fmt.Errorf("security symbol is required")
		}
		if seen[s.Symbol] {
			return fmt.Errorf("duplicate security symbol: %s", s.Symbol)
		}
		seen[s.Symbol] = true
		if s.Price <= 0 {
			return fmt.Errorf("security %s: price must be positive", s.Symbol)
		}
		if s.Volatility <= 0 {
			return fmt.Errorf("security %s: volatility must be positive", s.Symbol)
		}
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.EquityFile == "" {
			return fmt.Errorf("journal trades_file and equity_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// BuildMarket seeds a Market from the configured catalog.
func (c *Config) BuildMarket() (*market.Market, error) {
	mkt := market.New()
	for _, s := range c.Market.Securities {
		if err := mkt.AddSecurity(market.NewStock(s.Symbol, s.Name, s.Price, s.Volatility)); err != nil {
			return nil, err
		}
	}
	return mkt, nil
}

// RNG builds the run's random source. A non-zero seed makes the whole run
// reproducible.
func (c *Config) RNG() *rand.Rand {
	seed := c.Market.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// OpenJournal opens the configured journal backend.
func (c *Config) OpenJournal() (journal.Journal, error) {
	switch c.Journal.Type {
	case "", "none":
		return journal.Nop{}, nil
	case "csv":
		return journal.NewCSV(c.Journal.TradesFile, c.Journal.EquityFile)
	case "sqlite":
		return journal.NewSQLite(c.Journal.DBPath)
	default:
		return nil, fmt.Errorf("unknown journal type: %s", c.Journal.Type)
	}
}

// Default returns a configuration with the demo catalog
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Name: "Player",
		},
		Market: MarketConfig{
			Securities: []SecurityConfig{
				{Symbol: "AAPL", Name: "Apple Inc.", Price: 185.00, Volatility: 0.010},
				{Symbol: "GOOG", Name: "Alphabet Inc.", Price: 2850.00, Volatility: 0.012},
				{Symbol: "TSLA", Name: "Tesla Inc.", Price: 240.00, Volatility: 0.020},
				{Symbol: "INFY", Name: "Infosys Ltd.", Price: 20.50, Volatility: 0.015},
				{Symbol: "RELI", Name: "Reliance Ind.", Price: 28.00, Volatility: 0.013},
				{Symbol: "NVDA", Name: "NVIDIA Corp.", Price: 950.00, Volatility: 0.018},
				{Symbol: "TCS", Name: "Tata Consultancy", Price: 40.00, Volatility: 0.010},
				{Symbol: "HDFB", Name: "HDFC Bank", Price: 18.50, Volatility: 0.011},
			},
		},
		Store: StoreConfig{
			Path: "portfolio.sav",
		},
		Journal: JournalConfig{
			Type: "none",
		},
	}
}

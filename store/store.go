// Package store persists one account snapshot as a plain-text record:
//
//	<balance> <realizedPnL>
//	<holdingCount>
//	<symbol>,<quantity>,<avgCost>
//	...
//
// Floats are written with 8 fractional digits and holdings sorted by symbol,
// so saving the same account twice produces identical files.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/rustyeddy/papertrade/account"
	"github.com/rustyeddy/papertrade/portfolio"
)

var (
	ErrNoRecord        = errors.New("no saved record")
	ErrMalformedRecord = errors.New("malformed record")
	ErrUnavailable     = errors.New("persistence unavailable")
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Save writes snap to the store's path, replacing any previous record.
func (s *Store) Save(snap account.Snapshot) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%.8f %.8f\n", snap.Balance, snap.RealizedPnL)
	fmt.Fprintf(&b, "%d\n", len(snap.Holdings))
	for _, h := range snap.Holdings {
		fmt.Fprintf(&b, "%s,%d,%.8f\n", h.Symbol, h.Quantity, h.AvgCost)
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("save account: %w: %w", ErrUnavailable, err)
	}
	return nil
}

// Load reads the record back. A missing file reports ErrNoRecord. An
// unreadable header reports ErrMalformedRecord with a zero snapshot, so the
// caller falls back to a fresh account instead of crashing. Unparsable
// holding lines are skipped; the rest of the record still loads.
func (s *Store) Load() (account.Snapshot, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return account.Snapshot{}, ErrNoRecord
	}
	if err != nil {
		return account.Snapshot{}, fmt.Errorf("open record: %w", err)
	}
	defer f.Close()

	var snap account.Snapshot
	sc := bufio.NewScanner(f)

	if !sc.Scan() {
		return account.Snapshot{}, fmt.Errorf("empty record: %w", ErrMalformedRecord)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return account.Snapshot{}, fmt.Errorf("header %q: %w", sc.Text(), ErrMalformedRecord)
	}
	balance, err1 := strconv.ParseFloat(fields[0], 64)
	realized, err2 := strconv.ParseFloat(fields[1], 64)
	if err1 != nil || err2 != nil {
		return account.Snapshot{}, fmt.Errorf("header %q: %w", sc.Text(), ErrMalformedRecord)
	}
	snap.Balance = balance
	snap.RealizedPnL = realized

	// A missing or unreadable count means the holdings section is gone;
	// the header still stands.
	if !sc.Scan() {
		return snap, nil
	}
	count, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || count < 0 {
		return snap, nil
	}

	for i := 0; i < count && sc.Scan(); i++ {
		h, ok := parseHolding(sc.Text())
		if !ok {
			continue
		}
		snap.Holdings = append(snap.Holdings, h)
	}

	if err := sc.Err(); err != nil {
		return snap, fmt.Errorf("read record: %w", err)
	}
	return snap, nil
}

// parseHolding reads one "symbol,quantity,avgCost" line, tolerating
// surrounding whitespace and quotes per field.
func parseHolding(line string) (portfolio.Holding, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return portfolio.Holding{}, false
	}
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), `"`)
	}

	qty, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return portfolio.Holding{}, false
	}
	avg, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return portfolio.Holding{}, false
	}
	if parts[0] == "" || qty <= 0 {
		return portfolio.Holding{}, false
	}

	return portfolio.Holding{Symbol: parts[0], Quantity: qty, AvgCost: avg}, true
}

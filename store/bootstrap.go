package store

import (
	"errors"

	"github.com/rustyeddy/papertrade/account"
)

// DefaultOpeningBalance is the demo cash a fresh account starts with.
const DefaultOpeningBalance = 10000.00

// LoadOrSeed restores acct from st. When no usable record exists, or the
// record carries a zero balance and no holdings, the account starts fresh
// with DefaultOpeningBalance instead.
func LoadOrSeed(st *Store, acct *account.Account) error {
	snap, err := st.Load()
	switch {
	case errors.Is(err, ErrNoRecord), errors.Is(err, ErrMalformedRecord):
		snap = account.Snapshot{}
	case err != nil:
		return err
	}

	acct.Restore(snap)

	if acct.Balance() <= 1e-9 && len(acct.Holdings()) == 0 {
		return acct.AddFunds(DefaultOpeningBalance)
	}
	return nil
}

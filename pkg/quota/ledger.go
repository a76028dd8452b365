// Package quota decides whether a user may consume another
// recommendation this month, creating and updating per-user usage
// counters as a side effect.
package quota

import (
	"context"
	"fmt"
	"time"
)

// monthLayout keys usage counters to a calendar month.
const monthLayout = "2006-01"

// Account is the ledger's view of a stored user.
type Account struct {
	UserID      string
	Subscribed  bool
	PlanRef     string
	UsageCount  int
	UsageMonth  string
	CustomerRef string
}

// Store persists accounts. Find returns nil with a nil error when the
// user does not exist yet.
type Store interface {
	Find(ctx context.Context, userID string) (*Account, error)
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
}

// Decision is the outcome of a quota check. When Allowed is false,
// Options carries the plans to offer as an upsell.
type Decision struct {
	Allowed bool
	Options []Plan
}

type Ledger struct {
	store   Store
	catalog *Catalog
	now     func() time.Time
}

func NewLedger(store Store, catalog *Catalog) *Ledger {
	return &Ledger{
		store:   store,
		catalog: catalog,
		now:     time.Now,
	}
}

// CheckAndConsume applies the monthly quota to one message turn.
//
// A user with no account gets one created with a single use already
// consumed; the first turn is always free. A stale month resets the
// counter before the ceiling comparison. At or over the ceiling the
// call denies without incrementing. Every path performs at most one
// store write, and a store failure propagates instead of defaulting
// to allow.
func (l *Ledger) CheckAndConsume(ctx context.Context, userID string) (Decision, error) {
	month := l.now().Format(monthLayout)

	account, err := l.store.Find(ctx, userID)
	if err != nil {
		return Decision{}, fmt.Errorf("quota lookup failed: %w", err)
	}

	if account == nil {
		account = &Account{
			UserID:     userID,
			UsageCount: 1,
			UsageMonth: month,
		}
		if err := l.store.Create(ctx, account); err != nil {
			return Decision{}, fmt.Errorf("quota account creation failed: %w", err)
		}
		return Decision{Allowed: true}, nil
	}

	reset := false
	if account.UsageMonth != month {
		account.UsageCount = 0
		account.UsageMonth = month
		reset = true
	}

	ceiling := l.catalog.Ceiling(account.Subscribed, account.PlanRef)
	if ceiling != Unlimited && account.UsageCount >= ceiling {
		if reset {
			// Persist the month reset even on a deny so the
			// stored counter stays trustworthy.
			if err := l.store.Update(ctx, account); err != nil {
				return Decision{}, fmt.Errorf("quota update failed: %w", err)
			}
		}
		return Decision{Allowed: false, Options: l.catalog.Plans()}, nil
	}

	account.UsageCount++
	if err := l.store.Update(ctx, account); err != nil {
		return Decision{}, fmt.Errorf("quota update failed: %w", err)
	}
	return Decision{Allowed: true}, nil
}

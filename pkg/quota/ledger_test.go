package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	accounts map[string]*Account
	creates  int
	updates  int
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{accounts: map[string]*Account{}}
}

func (f *fakeStore) Find(_ context.Context, userID string) (*Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	a, ok := f.accounts[userID]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeStore) Create(_ context.Context, account *Account) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.creates++
	copied := *account
	f.accounts[account.UserID] = &copied
	return nil
}

func (f *fakeStore) Update(_ context.Context, account *Account) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.updates++
	copied := *account
	f.accounts[account.UserID] = &copied
	return nil
}

func fixedLedger(store Store, catalog *Catalog) *Ledger {
	l := NewLedger(store, catalog)
	l.now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return l
}

func TestCheckAndConsumeFirstUseIsFree(t *testing.T) {
	store := newFakeStore()
	ledger := fixedLedger(store, DefaultCatalog())

	decision, err := ledger.CheckAndConsume(context.Background(), "U1")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	account := store.accounts["U1"]
	require.NotNil(t, account)
	assert.Equal(t, 1, account.UsageCount)
	assert.Equal(t, "2025-06", account.UsageMonth)
	assert.False(t, account.Subscribed)
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, 0, store.updates)
}

func TestCheckAndConsumeStaleMonthResets(t *testing.T) {
	store := newFakeStore()
	store.accounts["U1"] = &Account{
		UserID:     "U1",
		Subscribed: true,
		PlanRef:    "light",
		UsageCount: 10,
		UsageMonth: "2025-05",
	}
	ledger := fixedLedger(store, DefaultCatalog())

	decision, err := ledger.CheckAndConsume(context.Background(), "U1")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	account := store.accounts["U1"]
	assert.Equal(t, 1, account.UsageCount)
	assert.Equal(t, "2025-06", account.UsageMonth)
	assert.Equal(t, 1, store.updates)
}

func TestCheckAndConsumeDenyAtCeiling(t *testing.T) {
	store := newFakeStore()
	store.accounts["U1"] = &Account{
		UserID:     "U1",
		Subscribed: false,
		UsageCount: 1,
		UsageMonth: "2025-06",
	}
	ledger := fixedLedger(store, DefaultCatalog())

	decision, err := ledger.CheckAndConsume(context.Background(), "U1")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Len(t, decision.Options, 3)

	assert.Equal(t, 1, store.accounts["U1"].UsageCount)
	assert.Equal(t, 0, store.updates)
}

func TestCheckAndConsumeUnlimitedPlanNeverDenies(t *testing.T) {
	store := newFakeStore()
	store.accounts["U1"] = &Account{
		UserID:     "U1",
		Subscribed: true,
		PlanRef:    "premium",
		UsageCount: 9999,
		UsageMonth: "2025-06",
	}
	ledger := fixedLedger(store, DefaultCatalog())

	decision, err := ledger.CheckAndConsume(context.Background(), "U1")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 10000, store.accounts["U1"].UsageCount)
}

func TestCheckAndConsumeFailsLoudOnStoreError(t *testing.T) {
	store := newFakeStore()
	store.failWith = errors.New("connection refused")
	ledger := fixedLedger(store, DefaultCatalog())

	_, err := ledger.CheckAndConsume(context.Background(), "U1")
	assert.Error(t, err)
}

func TestCatalogCeiling(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name       string
		subscribed bool
		planRef    string
		want       int
	}{
		{"unsubscribed", false, "", FreeCeiling},
		{"unsubscribed with stale plan ref", false, "premium", FreeCeiling},
		{"light plan", true, "light", 10},
		{"standard plan", true, "standard", 50},
		{"premium plan", true, "premium", Unlimited},
		{"subscribed with unknown plan", true, "gone", FreeCeiling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Ceiling(tt.subscribed, tt.planRef)
			if got != tt.want {
				t.Errorf("Ceiling(%v, %q) = %d, want %d", tt.subscribed, tt.planRef, got, tt.want)
			}
		})
	}
}

// Package service implements the account ledger and state-transition engine.
// Every public operation runs one full load-snapshot, mutate-in-memory,
// save-snapshot cycle under a single mutex: one logical writer at a time,
// whole-collection commits, no partial state visible to callers.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/ident"
	"github.com/retrobank/backoffice/internal/repository"
)

// Config carries the business policy knobs.
type Config struct {
	// LoanInterestRatePct is the flat rate applied to every loan application.
	LoanInterestRatePct decimal.Decimal
	// CardDailyLimit is the ATM withdrawal cap stamped on new cards.
	CardDailyLimit decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		LoanInterestRatePct: decimal.NewFromFloat(5.0),
		CardDailyLimit:      decimal.NewFromInt(2000),
	}
}

type Bank struct {
	mu    sync.Mutex
	store repository.Store
	ident ident.Generator
	cfg   Config
}

func NewBank(store repository.Store, gen ident.Generator, cfg Config) *Bank {
	return &Bank{store: store, ident: gen, cfg: cfg}
}

// Account returns a copy of one account's current state.
func (b *Bank) Account(ctx context.Context, accountNumber string) (*domain.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("Account: %w", err)
	}

	acct := snap.Account(accountNumber)
	if acct == nil {
		return nil, fmt.Errorf("Account: %s: %w", accountNumber, domain.ErrNotFound)
	}
	return acct.Clone(), nil
}

// load is called with b.mu held.
func (b *Bank) load(ctx context.Context) (domain.Snapshot, error) {
	snap, err := b.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}

// commit is called with b.mu held, after all validation passed.
func (b *Bank) commit(ctx context.Context, snap domain.Snapshot) error {
	if err := b.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func now() time.Time { return time.Now().UTC() }

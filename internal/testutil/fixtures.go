package testutil

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/repository"
	"github.com/retrobank/backoffice/internal/service"
)

// TestPassword is the plaintext behind every fixture account's hash.
const TestPassword = "password123"

func HashPassword(t *testing.T, plaintext string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

// Account builds a customer account with the fixture password and the given
// balance.
func Account(t *testing.T, number, name, balance string) domain.Account {
	t.Helper()
	bal, err := decimal.NewFromString(balance)
	if err != nil {
		t.Fatalf("parse balance %q: %v", balance, err)
	}
	return domain.Account{
		AccountNumber: number,
		PasswordHash:  HashPassword(t, TestPassword),
		Name:          name,
		Email:         fmt.Sprintf("%s@example.com", number),
		Balance:       bal,
		Transactions:  []domain.Transaction{},
		Loans:         []domain.Loan{},
		Cheques:       []domain.Cheque{},
	}
}

// NewBank wires an engine over an in-memory store seeded with the given
// accounts. The returned generator can be scripted to force collisions or
// pin identifier values.
func NewBank(t *testing.T, cfg service.Config, accounts ...domain.Account) (*service.Bank, *ScriptedGenerator) {
	t.Helper()
	store, err := repository.NewMemoryStoreWith(domain.Snapshot(accounts))
	if err != nil {
		t.Fatalf("seed memory store: %v", err)
	}
	gen := NewScriptedGenerator()
	return service.NewBank(store, gen, cfg), gen
}

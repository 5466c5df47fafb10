package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/logging"
)

// register retries this many times before giving up on a non-colliding
// account number. With a 5-digit space and demo-scale population the loop
// terminates on the first draw in practice.
const maxAccountNumberAttempts = 100

// Login verifies an account number and secret, returning the account.
func (b *Bank) Login(ctx context.Context, accountNumber, secret string) (*domain.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}

	acct := snap.Account(accountNumber)
	if acct == nil {
		return nil, fmt.Errorf("Login: %w", domain.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(secret)); err != nil {
		return nil, fmt.Errorf("Login: %w", domain.ErrInvalidCredentials)
	}
	return acct.Clone(), nil
}

// Register opens a new account with a fresh unique 5-digit number and a
// 6-digit secret. The plaintext secret is returned exactly once; only its
// bcrypt hash is stored.
func (b *Bank) Register(ctx context.Context, name, email string) (*domain.Account, string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("Register: %w", err)
	}

	number, err := b.freeAccountNumber(snap)
	if err != nil {
		return nil, "", fmt.Errorf("Register: %w", err)
	}
	secret, err := b.ident.Secret()
	if err != nil {
		return nil, "", fmt.Errorf("Register: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("Register: %w", err)
	}

	acct := domain.Account{
		AccountNumber: number,
		PasswordHash:  string(hash),
		Name:          name,
		Email:         email,
		Transactions:  []domain.Transaction{},
		Loans:         []domain.Loan{},
		Cheques:       []domain.Cheque{},
	}
	snap = append(snap, acct)

	if err := b.commit(ctx, snap); err != nil {
		return nil, "", fmt.Errorf("Register: %w", err)
	}

	logging.FromContext(ctx).Info("account registered",
		"account", number,
		"name", name,
	)
	return acct.Clone(), secret, nil
}

// ResetPassword rotates the secret when account number and email both match.
func (b *Bank) ResetPassword(ctx context.Context, accountNumber, email string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return "", fmt.Errorf("ResetPassword: %w", err)
	}

	acct := snap.Account(accountNumber)
	if acct == nil || acct.Email != email {
		return "", fmt.Errorf("ResetPassword: %w", domain.ErrNotFound)
	}

	secret, err := b.ident.Secret()
	if err != nil {
		return "", fmt.Errorf("ResetPassword: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("ResetPassword: %w", err)
	}
	acct.PasswordHash = string(hash)

	if err := b.commit(ctx, snap); err != nil {
		return "", fmt.Errorf("ResetPassword: %w", err)
	}

	logging.FromContext(ctx).Info("password reset", "account", accountNumber)
	return secret, nil
}

func (b *Bank) freeAccountNumber(snap domain.Snapshot) (string, error) {
	for attempt := 0; attempt < maxAccountNumberAttempts; attempt++ {
		number, err := b.ident.AccountNumber()
		if err != nil {
			return "", err
		}
		if snap.Account(number) == nil {
			return number, nil
		}
	}
	return "", fmt.Errorf("freeAccountNumber: exhausted %d attempts", maxAccountNumberAttempts)
}

package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/logging"
)

// RequestChequeBook adds one leaf to the account's quota. One request equals
// one usable leaf, not a multi-page book.
func (b *Bank) RequestChequeBook(ctx context.Context, accountNumber string) (*domain.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("RequestChequeBook: %w", err)
	}

	acct := snap.Account(accountNumber)
	if acct == nil {
		return nil, fmt.Errorf("RequestChequeBook: %w", domain.ErrNotFound)
	}
	acct.ChequeBooksLeft++

	if err := b.commit(ctx, snap); err != nil {
		return nil, fmt.Errorf("RequestChequeBook: %w", err)
	}

	logging.FromContext(ctx).Info("cheque book requested",
		"account", accountNumber,
		"leaves", acct.ChequeBooksLeft,
	)
	return acct.Clone(), nil
}

// IssueCheque writes an ISSUED cheque and consumes one leaf from the quota.
// Issuance has no balance effect; funds are only checked when an admin clears
// the cheque.
func (b *Bank) IssueCheque(ctx context.Context, accountNumber, payee string, amount decimal.Decimal, memo string) (*domain.Account, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("IssueCheque: %w", domain.ErrInvalidAmount)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("IssueCheque: %w", err)
	}

	acct := snap.Account(accountNumber)
	if acct == nil {
		return nil, fmt.Errorf("IssueCheque: %w", domain.ErrNotFound)
	}
	if acct.ChequeBooksLeft <= 0 {
		return nil, fmt.Errorf("IssueCheque: %w", domain.ErrNoChequeLeaves)
	}

	number, err := b.ident.ChequeNumber()
	if err != nil {
		return nil, fmt.Errorf("IssueCheque: %w", err)
	}

	acct.ChequeBooksLeft--
	cheque := domain.Cheque{
		ID:     b.ident.ID(),
		Number: number,
		Payee:  payee,
		Amount: amount,
		Date:   now(),
		Memo:   memo,
		Status: domain.ChequeIssued,
	}
	acct.Cheques = append(acct.Cheques, cheque)

	if err := b.commit(ctx, snap); err != nil {
		return nil, fmt.Errorf("IssueCheque: %w", err)
	}

	logging.FromContext(ctx).Info("cheque issued",
		"account", accountNumber,
		"cheque_id", cheque.ID,
		"number", number,
		"amount", amount,
	)
	return acct.Clone(), nil
}

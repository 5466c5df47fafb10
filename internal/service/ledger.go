package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/logging"
)

// Deposit credits an existing account. Frozen accounts still accept deposits;
// the freeze gate applies to outgoing movement only.
func (b *Bank) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.Account, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("Deposit: %w", domain.ErrInvalidAmount)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("Deposit: %w", err)
	}

	acct := snap.Account(accountNumber)
	if acct == nil {
		return nil, fmt.Errorf("Deposit: %w", domain.ErrNotFound)
	}

	acct.Balance = acct.Balance.Add(amount)
	acct.RecordTransaction(domain.Transaction{
		ID:          b.ident.ID(),
		Date:        now(),
		Type:        domain.TransactionDeposit,
		Amount:      amount,
		Description: "Cash Deposit",
		Status:      domain.TransactionSuccess,
	})

	if err := b.commit(ctx, snap); err != nil {
		return nil, fmt.Errorf("Deposit: %w", err)
	}

	logging.FromContext(ctx).Info("deposit applied",
		"account", accountNumber,
		"amount", amount,
	)
	return acct.Clone(), nil
}

// Withdraw debits an existing, unfrozen account with sufficient funds.
func (b *Bank) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.Account, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("Withdraw: %w", domain.ErrInvalidAmount)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: %w", err)
	}

	acct := snap.Account(accountNumber)
	if acct == nil {
		return nil, fmt.Errorf("Withdraw: %w", domain.ErrNotFound)
	}
	if acct.IsFrozen {
		return nil, fmt.Errorf("Withdraw: %w", domain.ErrAccountFrozen)
	}
	if acct.Balance.LessThan(amount) {
		return nil, fmt.Errorf("Withdraw: %w", domain.ErrInsufficientFunds)
	}

	acct.Balance = acct.Balance.Sub(amount)
	acct.RecordTransaction(domain.Transaction{
		ID:          b.ident.ID(),
		Date:        now(),
		Type:        domain.TransactionWithdrawal,
		Amount:      amount,
		Description: "Cash Withdrawal",
		Status:      domain.TransactionSuccess,
	})

	if err := b.commit(ctx, snap); err != nil {
		return nil, fmt.Errorf("Withdraw: %w", err)
	}

	logging.FromContext(ctx).Info("withdrawal applied",
		"account", accountNumber,
		"amount", amount,
	)
	return acct.Clone(), nil
}

// Transfer moves funds between two accounts in one commit. The first failing
// check short-circuits with no mutation; on success both balance changes and
// the shared-id transaction pair land in the same snapshot write.
func (b *Bank) Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal) (*domain.Account, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("Transfer: %w", domain.ErrInvalidAmount)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("Transfer: %w", err)
	}

	sender := snap.Account(fromAccount)
	if sender == nil {
		return nil, fmt.Errorf("Transfer: %w", domain.ErrSenderNotFound)
	}
	receiver := snap.Account(toAccount)
	if receiver == nil {
		return nil, fmt.Errorf("Transfer: %w", domain.ErrTargetAccountInvalid)
	}
	if sender.IsFrozen {
		return nil, fmt.Errorf("Transfer: %w", domain.ErrAccountFrozen)
	}
	if sender.Balance.LessThan(amount) {
		return nil, fmt.Errorf("Transfer: %w", domain.ErrInsufficientFunds)
	}

	sender.Balance = sender.Balance.Sub(amount)
	receiver.Balance = receiver.Balance.Add(amount)

	txID := b.ident.ID()
	date := now()
	sender.RecordTransaction(domain.Transaction{
		ID:            txID,
		Date:          date,
		Type:          domain.TransactionTransfer,
		Amount:        amount,
		Description:   fmt.Sprintf("Transfer to %s", toAccount),
		TargetAccount: toAccount,
		Status:        domain.TransactionSuccess,
	})
	receiver.RecordTransaction(domain.Transaction{
		ID:            txID,
		Date:          date,
		Type:          domain.TransactionTransfer,
		Amount:        amount,
		Description:   fmt.Sprintf("Transfer from %s", fromAccount),
		TargetAccount: fromAccount,
		Status:        domain.TransactionSuccess,
	})

	if err := b.commit(ctx, snap); err != nil {
		return nil, fmt.Errorf("Transfer: %w", err)
	}

	logging.FromContext(ctx).Info("transfer applied",
		"from", fromAccount,
		"to", toAccount,
		"amount", amount,
		"transaction_id", txID,
	)
	return sender.Clone(), nil
}

package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/logging"
)

// Every new card ships with this PIN until the holder is told to change it at
// a branch. Known weakness of the product, preserved on purpose.
const defaultCardPIN = "1234"

const maxWrongPinAttempts = 3

// IssueCard creates the account's debit card. Idempotent: an account holds at
// most one card, and a second call returns the existing one untouched.
func (b *Bank) IssueCard(ctx context.Context, accountNumber string) (*domain.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("IssueCard: %w", err)
	}

	acct := snap.Account(accountNumber)
	if acct == nil {
		return nil, fmt.Errorf("IssueCard: %w", domain.ErrNotFound)
	}
	if acct.Card != nil {
		return acct.Clone(), nil
	}

	card, err := b.newCard()
	if err != nil {
		return nil, fmt.Errorf("IssueCard: %w", err)
	}
	acct.Card = card

	if err := b.commit(ctx, snap); err != nil {
		return nil, fmt.Errorf("IssueCard: %w", err)
	}

	logging.FromContext(ctx).Info("card issued",
		"account", accountNumber,
		"card", card.Number,
	)
	return acct.Clone(), nil
}

// ATMWithdraw authenticates by card number and PIN, not by a logged-in
// session. A zero amount is a pure PIN check: wrong PINs still count toward
// lockout and a correct PIN still resets the counter and writes a zero-amount
// receipt, exactly like any other withdrawal.
func (b *Bank) ATMWithdraw(ctx context.Context, cardNumber, pin string, amount decimal.Decimal) (*domain.Account, error) {
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("ATMWithdraw: %w", domain.ErrInvalidAmount)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("ATMWithdraw: %w", err)
	}

	acct := snap.AccountByCard(cardNumber)
	if acct == nil {
		return nil, fmt.Errorf("ATMWithdraw: %w", domain.ErrCardInvalid)
	}
	card := acct.Card

	if card.Status != domain.CardActive {
		return nil, fmt.Errorf("ATMWithdraw: card is %s: %w", card.Status, domain.ErrCardNotActive)
	}

	if card.PIN != pin {
		card.WrongPinAttempts++
		if card.WrongPinAttempts >= maxWrongPinAttempts {
			card.Status = domain.CardLocked
		}
		if err := b.commit(ctx, snap); err != nil {
			return nil, fmt.Errorf("ATMWithdraw: %w", err)
		}
		logging.FromContext(ctx).Info("wrong PIN attempt",
			"card", cardNumber,
			"attempts", card.WrongPinAttempts,
			"locked", card.Status == domain.CardLocked,
		)
		return nil, fmt.Errorf("ATMWithdraw: %w", domain.ErrInvalidPIN)
	}
	card.WrongPinAttempts = 0

	if card.DailyWithdrawn.Add(amount).GreaterThan(card.DailyLimit) {
		return nil, fmt.Errorf("ATMWithdraw: %w", domain.ErrDailyLimitExceeded)
	}
	if acct.Balance.LessThan(amount) {
		return nil, fmt.Errorf("ATMWithdraw: %w", domain.ErrInsufficientFunds)
	}

	acct.Balance = acct.Balance.Sub(amount)
	card.DailyWithdrawn = card.DailyWithdrawn.Add(amount)
	acct.RecordTransaction(domain.Transaction{
		ID:          b.ident.ID(),
		Date:        now(),
		Type:        domain.TransactionATMWithdrawal,
		Amount:      amount,
		Description: "ATM Cash Withdrawal",
		Status:      domain.TransactionSuccess,
	})

	if err := b.commit(ctx, snap); err != nil {
		return nil, fmt.Errorf("ATMWithdraw: %w", err)
	}

	logging.FromContext(ctx).Info("atm withdrawal applied",
		"account", acct.AccountNumber,
		"amount", amount,
	)
	return acct.Clone(), nil
}

// VerifyCardPIN is the zero-amount ATM path under its own name. Failed
// probes count toward lockout just like at the machine.
func (b *Bank) VerifyCardPIN(ctx context.Context, cardNumber, pin string) (*domain.Account, error) {
	acct, err := b.ATMWithdraw(ctx, cardNumber, pin, decimal.Zero)
	if err != nil {
		return nil, fmt.Errorf("VerifyCardPIN: %w", err)
	}
	return acct, nil
}

func (b *Bank) newCard() (*domain.Card, error) {
	number, err := b.ident.CardNumber()
	if err != nil {
		return nil, err
	}
	cvv, err := b.ident.CVV()
	if err != nil {
		return nil, err
	}
	expiry := now().AddDate(4, 0, 0)
	return &domain.Card{
		Number:           number,
		Expiry:           fmt.Sprintf("%02d/%02d", int(expiry.Month()), expiry.Year()%100),
		CVV:              cvv,
		PIN:              defaultCardPIN,
		Status:           domain.CardActive,
		WrongPinAttempts: 0,
		DailyLimit:       b.cfg.CardDailyLimit,
		DailyWithdrawn:   decimal.Zero,
	}, nil
}

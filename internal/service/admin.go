package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/logging"
)

// Command is the closed set of operator actions. One request type per action
// replaces the string-tag dispatch of earlier designs, and loan/cheque
// targets resolve through snapshot indices, so an account number can never be
// mistaken for a loan or cheque id.
type Command interface{ isCommand() }

type ApproveLoan struct{ LoanID string }
type RejectLoan struct{ LoanID string }
type ClearCheque struct{ ChequeID string }
type BounceCheque struct{ ChequeID string }
type FreezeAccount struct{ AccountNumber string }
type UnfreezeAccount struct{ AccountNumber string }
type UnlockCard struct{ AccountNumber string }
type FreezeCard struct{ AccountNumber string }
type IssueCardFor struct{ AccountNumber string }

func (ApproveLoan) isCommand()     {}
func (RejectLoan) isCommand()      {}
func (ClearCheque) isCommand()     {}
func (BounceCheque) isCommand()    {}
func (FreezeAccount) isCommand()   {}
func (UnfreezeAccount) isCommand() {}
func (UnlockCard) isCommand()      {}
func (FreezeCard) isCommand()      {}
func (IssueCardFor) isCommand()    {}

// Dispatch applies one operator command against the snapshot. State-gated
// commands (loan decisions, cheque decisions) are no-ops when the target has
// already left the required state; unknown target ids fail with ErrNotFound.
func (b *Bank) Dispatch(ctx context.Context, cmd Command) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return fmt.Errorf("Dispatch: %w", err)
	}

	if err := b.apply(ctx, snap, cmd); err != nil {
		return fmt.Errorf("Dispatch: %w", err)
	}

	if err := b.commit(ctx, snap); err != nil {
		return fmt.Errorf("Dispatch: %w", err)
	}
	return nil
}

func (b *Bank) apply(ctx context.Context, snap domain.Snapshot, cmd Command) error {
	idx := snap.BuildIndex()
	log := logging.FromContext(ctx)

	switch c := cmd.(type) {
	case ApproveLoan:
		return b.decideLoan(log, snap, idx, c.LoanID, true)
	case RejectLoan:
		return b.decideLoan(log, snap, idx, c.LoanID, false)
	case ClearCheque:
		return b.clearCheque(log, snap, idx, c.ChequeID)
	case BounceCheque:
		return b.bounceCheque(log, snap, idx, c.ChequeID)
	case FreezeAccount:
		acct := snap.Account(c.AccountNumber)
		if acct == nil {
			return domain.ErrNotFound
		}
		acct.IsFrozen = true
		log.Info("account frozen", "account", c.AccountNumber)
		return nil
	case UnfreezeAccount:
		acct := snap.Account(c.AccountNumber)
		if acct == nil {
			return domain.ErrNotFound
		}
		acct.IsFrozen = false
		log.Info("account unfrozen", "account", c.AccountNumber)
		return nil
	case UnlockCard:
		acct := snap.Account(c.AccountNumber)
		if acct == nil {
			return domain.ErrNotFound
		}
		if acct.Card == nil {
			return domain.ErrCardInvalid
		}
		acct.Card.Status = domain.CardActive
		acct.Card.WrongPinAttempts = 0
		log.Info("card unlocked", "account", c.AccountNumber)
		return nil
	case FreezeCard:
		acct := snap.Account(c.AccountNumber)
		if acct == nil {
			return domain.ErrNotFound
		}
		if acct.Card == nil {
			return domain.ErrCardInvalid
		}
		acct.Card.Status = domain.CardFrozen
		log.Info("card frozen", "account", c.AccountNumber)
		return nil
	case IssueCardFor:
		acct := snap.Account(c.AccountNumber)
		if acct == nil {
			return domain.ErrNotFound
		}
		if acct.Card != nil {
			return nil
		}
		card, err := b.newCard()
		if err != nil {
			return err
		}
		acct.Card = card
		log.Info("card issued by admin", "account", c.AccountNumber, "card", card.Number)
		return nil
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
}

func (b *Bank) decideLoan(log *slog.Logger, snap domain.Snapshot, idx domain.Index, loanID string, approve bool) error {
	number, ok := idx.LoanAccount(loanID)
	if !ok {
		return domain.ErrNotFound
	}
	acct := snap.Account(number)
	loan := acct.FindLoan(loanID)
	if loan.Status != domain.LoanPending {
		return nil
	}

	if !approve {
		loan.Status = domain.LoanRejected
		log.Info("loan rejected", "account", number, "loan_id", loanID)
		return nil
	}

	loan.Status = domain.LoanApproved
	acct.Balance = acct.Balance.Add(loan.Amount)
	acct.RecordTransaction(domain.Transaction{
		ID:          b.ident.ID(),
		Date:        now(),
		Type:        domain.TransactionLoanDisbursal,
		Amount:      loan.Amount,
		Description: "Loan Disbursed",
		Status:      domain.TransactionSuccess,
	})
	log.Info("loan approved and disbursed",
		"account", number,
		"loan_id", loanID,
		"principal", loan.Amount,
	)
	return nil
}

// clearCheque debits and clears when funds cover the cheque at clearing time;
// otherwise the cheque silently bounces. The caller sees success either way —
// a business policy, not an error path.
func (b *Bank) clearCheque(log *slog.Logger, snap domain.Snapshot, idx domain.Index, chequeID string) error {
	number, ok := idx.ChequeAccount(chequeID)
	if !ok {
		return domain.ErrNotFound
	}
	acct := snap.Account(number)
	cheque := acct.FindCheque(chequeID)
	if cheque.Status != domain.ChequeIssued {
		return nil
	}

	if acct.Balance.LessThan(cheque.Amount) {
		cheque.Status = domain.ChequeBounced
		log.Info("cheque auto-bounced on insufficient funds",
			"account", number,
			"cheque_id", chequeID,
		)
		return nil
	}

	cheque.Status = domain.ChequeCleared
	acct.Balance = acct.Balance.Sub(cheque.Amount)
	acct.RecordTransaction(domain.Transaction{
		ID:          b.ident.ID(),
		Date:        now(),
		Type:        domain.TransactionChequeClearing,
		Amount:      cheque.Amount,
		Description: fmt.Sprintf("Cheque %s Cleared", cheque.Number),
		Status:      domain.TransactionSuccess,
	})
	log.Info("cheque cleared", "account", number, "cheque_id", chequeID, "amount", cheque.Amount)
	return nil
}

func (b *Bank) bounceCheque(log *slog.Logger, snap domain.Snapshot, idx domain.Index, chequeID string) error {
	number, ok := idx.ChequeAccount(chequeID)
	if !ok {
		return domain.ErrNotFound
	}
	acct := snap.Account(number)
	cheque := acct.FindCheque(chequeID)
	if cheque.Status != domain.ChequeIssued {
		return nil
	}
	cheque.Status = domain.ChequeBounced
	log.Info("cheque bounced", "account", number, "cheque_id", chequeID)
	return nil
}

// AdjustBalance applies an operator correction, positive or negative. It
// bypasses the freeze gate and floors the result at zero instead of failing;
// the recorded transaction carries the requested magnitude, which can exceed
// the actual delta when the floor clamps.
func (b *Bank) AdjustBalance(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("AdjustBalance: %w", err)
	}

	acct := snap.Account(accountNumber)
	if acct == nil {
		return nil, fmt.Errorf("AdjustBalance: %w", domain.ErrNotFound)
	}

	acct.Balance = acct.Balance.Add(amount)
	if acct.Balance.Sign() < 0 {
		acct.Balance = decimal.Zero
	}

	txType := domain.TransactionWithdrawal
	if amount.Sign() > 0 {
		txType = domain.TransactionDeposit
	}
	acct.RecordTransaction(domain.Transaction{
		ID:          b.ident.ID(),
		Date:        now(),
		Type:        txType,
		Amount:      amount.Abs(),
		Description: "Admin Adjustment",
		Status:      domain.TransactionSuccess,
	})

	if err := b.commit(ctx, snap); err != nil {
		return nil, fmt.Errorf("AdjustBalance: %w", err)
	}

	logging.FromContext(ctx).Info("balance adjusted",
		"account", accountNumber,
		"amount", amount,
		"balance", acct.Balance,
	)
	return acct.Clone(), nil
}

// AllAccounts returns the whole snapshot for the operator console.
func (b *Bank) AllAccounts(ctx context.Context) ([]domain.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("AllAccounts: %w", err)
	}

	out := make([]domain.Account, len(snap))
	for i := range snap {
		out[i] = *snap[i].Clone()
	}
	return out, nil
}

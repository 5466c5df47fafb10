package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/logging"
)

var hundred = decimal.NewFromInt(100)

// ApplyLoan files a PENDING loan application. Interest is flat: principal
// times the fixed rate, not compounded and not prorated by tenure. The EMI is
// the ceiling of total over tenure. No balance effect until an admin approves.
func (b *Bank) ApplyLoan(ctx context.Context, accountNumber string, principal decimal.Decimal, tenureMonths int) (*domain.Account, error) {
	if principal.Sign() <= 0 {
		return nil, fmt.Errorf("ApplyLoan: %w", domain.ErrInvalidAmount)
	}
	if tenureMonths <= 0 {
		return nil, fmt.Errorf("ApplyLoan: %w", domain.ErrInvalidTenure)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("ApplyLoan: %w", err)
	}

	acct := snap.Account(accountNumber)
	if acct == nil {
		return nil, fmt.Errorf("ApplyLoan: %w", domain.ErrNotFound)
	}

	interest := principal.Mul(b.cfg.LoanInterestRatePct).Div(hundred)
	total := principal.Add(interest)
	emi := total.Div(decimal.NewFromInt(int64(tenureMonths))).Ceil()

	loan := domain.Loan{
		ID:              b.ident.ID(),
		Amount:          principal,
		InterestRate:    b.cfg.LoanInterestRatePct,
		TenureMonths:    tenureMonths,
		MonthlyEMI:      emi,
		Status:          domain.LoanPending,
		RemainingAmount: total,
		AppliedDate:     now(),
	}
	acct.Loans = append(acct.Loans, loan)

	if err := b.commit(ctx, snap); err != nil {
		return nil, fmt.Errorf("ApplyLoan: %w", err)
	}

	logging.FromContext(ctx).Info("loan application filed",
		"account", accountNumber,
		"loan_id", loan.ID,
		"principal", principal,
		"tenure_months", tenureMonths,
		"monthly_emi", emi,
	)
	return acct.Clone(), nil
}

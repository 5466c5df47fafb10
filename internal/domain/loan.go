package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanPending  LoanStatus = "PENDING"
	LoanApproved LoanStatus = "APPROVED"
	LoanRejected LoanStatus = "REJECTED"
	LoanPaid     LoanStatus = "PAID"
	LoanActive   LoanStatus = "ACTIVE"
	LoanClosed   LoanStatus = "CLOSED"
	LoanOverdue  LoanStatus = "OVERDUE"
)

// Loan lifecycle: created PENDING by the account holder, moved to APPROVED or
// REJECTED only by an admin command. Approval is the single disbursal point;
// the status gate makes a second disbursal impossible.
type Loan struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	TenureMonths    int             `json:"tenureMonths"`
	MonthlyEMI      decimal.Decimal `json:"monthlyEMI"`
	Status          LoanStatus      `json:"status"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	AppliedDate     time.Time       `json:"appliedDate"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionDeposit        TransactionType = "DEPOSIT"
	TransactionWithdrawal     TransactionType = "WITHDRAWAL"
	TransactionTransfer       TransactionType = "TRANSFER"
	TransactionLoanDisbursal  TransactionType = "LOAN_DISBURSAL"
	TransactionLoanPayment    TransactionType = "LOAN_PAYMENT"
	TransactionATMWithdrawal  TransactionType = "ATM_WITHDRAWAL"
	TransactionChequeClearing TransactionType = "CHEQUE_CLEARING"
)

type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "success"
	TransactionFailed  TransactionStatus = "failed"
)

// Transaction is one immutable history entry. Amount is always the positive
// magnitude; Type carries the direction. A transfer writes two entries that
// share one ID and Date, one on each side.
type Transaction struct {
	ID            string            `json:"id"`
	Date          time.Time         `json:"date"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Description   string            `json:"description"`
	TargetAccount string            `json:"targetAccount,omitempty"`
	Status        TransactionStatus `json:"status"`
}

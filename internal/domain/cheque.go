package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ChequeStatus string

const (
	ChequeIssued  ChequeStatus = "ISSUED"
	ChequePending ChequeStatus = "PENDING"
	ChequeCleared ChequeStatus = "CLEARED"
	ChequeBounced ChequeStatus = "BOUNCED"
)

// Cheque. Number is a display identifier, unique only by practical collision
// odds; ID is the real key. Issuance has no balance effect; clearing debits
// at clearing time or auto-bounces on insufficient funds.
type Cheque struct {
	ID     string          `json:"id"`
	Number string          `json:"number"`
	Payee  string          `json:"payee"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Memo   string          `json:"memo"`
	Status ChequeStatus    `json:"status"`
}

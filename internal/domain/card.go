package domain

import (
	"github.com/shopspring/decimal"
)

type CardStatus string

const (
	CardActive CardStatus = "ACTIVE"
	CardFrozen CardStatus = "FROZEN"
	CardLocked CardStatus = "LOCKED"
)

// Card state machine: ACTIVE -> LOCKED after the 3rd consecutive wrong PIN,
// ACTIVE -> FROZEN by admin action. Both recover to ACTIVE only through an
// admin unlock, which also resets WrongPinAttempts.
//
// DailyWithdrawn accumulates without a day boundary; there is no rollover.
type Card struct {
	Number           string          `json:"number"`
	Expiry           string          `json:"expiry"` // MM/YY
	CVV              string          `json:"cvv"`
	PIN              string          `json:"pin"`
	Status           CardStatus      `json:"status"`
	WrongPinAttempts int             `json:"wrongPinAttempts"`
	DailyLimit       decimal.Decimal `json:"dailyLimit"`
	DailyWithdrawn   decimal.Decimal `json:"dailyWithdrawn"`
}

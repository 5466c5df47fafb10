package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidTenure        = errors.New("tenure must be at least one month")
	ErrInvalidCredentials   = errors.New("invalid account number or password")
	ErrAccountFrozen        = errors.New("account frozen")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrSenderNotFound       = errors.New("sender not found")
	ErrTargetAccountInvalid = errors.New("target account invalid")
	ErrNoChequeLeaves       = errors.New("no cheque leaves available")
	ErrCardInvalid          = errors.New("card invalid")
	ErrCardNotActive        = errors.New("card not active")
	ErrInvalidPIN           = errors.New("invalid PIN")
	ErrDailyLimitExceeded   = errors.New("daily limit exceeded")
)

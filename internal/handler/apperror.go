package handler

import "net/http"

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrMissingToken       = &AppError{http.StatusUnauthorized, "MISSING_TOKEN", "Authorization header required"}
	ErrInvalidToken       = &AppError{http.StatusUnauthorized, "INVALID_TOKEN", "Token is invalid or expired"}
	ErrInvalidCredentials = &AppError{http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid account number or password"}
	ErrForbidden          = &AppError{http.StatusForbidden, "FORBIDDEN", "Operator privileges required"}
	ErrInvalidRequest     = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body"}
	ErrValidationFailed   = &AppError{http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed"}
	ErrResourceNotFound   = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"}
	ErrInternalError      = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"}

	ErrInvalidAmount        = &AppError{http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be greater than zero"}
	ErrInvalidTenure        = &AppError{http.StatusBadRequest, "INVALID_TENURE", "Tenure must be at least one month"}
	ErrInsufficientFunds    = &AppError{http.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS", "Insufficient funds"}
	ErrAccountFrozen        = &AppError{http.StatusUnprocessableEntity, "ACCOUNT_FROZEN", "Account is frozen"}
	ErrSenderNotFound       = &AppError{http.StatusUnprocessableEntity, "SENDER_NOT_FOUND", "Sender not found"}
	ErrTargetAccountInvalid = &AppError{http.StatusUnprocessableEntity, "TARGET_ACCOUNT_INVALID", "Target account invalid"}
	ErrNoChequeLeaves       = &AppError{http.StatusUnprocessableEntity, "NO_CHEQUE_LEAVES", "No cheque leaves available"}
	ErrCardInvalid          = &AppError{http.StatusUnprocessableEntity, "CARD_INVALID", "Card invalid"}
	ErrCardNotActive        = &AppError{http.StatusUnprocessableEntity, "CARD_NOT_ACTIVE", "Card is frozen or locked"}
	ErrInvalidPIN           = &AppError{http.StatusUnprocessableEntity, "INVALID_PIN", "Invalid PIN"}
	ErrDailyLimitExceeded   = &AppError{http.StatusUnprocessableEntity, "DAILY_LIMIT_EXCEEDED", "Daily withdrawal limit exceeded"}
)

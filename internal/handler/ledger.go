package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/retrobank/backoffice/internal/auth"
	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/logging"
)

type ledgerService interface {
	Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.Account, error)
	Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.Account, error)
	Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal) (*domain.Account, error)
}

type LedgerHandler struct {
	bank ledgerService
}

func NewLedgerHandler(bank ledgerService) *LedgerHandler {
	return &LedgerHandler{bank: bank}
}

// parseAmount accepts the amount as a JSON string so callers control the
// exact decimal representation.
func parseAmount(raw string) (decimal.Decimal, []FieldError) {
	if raw == "" {
		return decimal.Zero, []FieldError{{Field: "amount", Message: "required"}}
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, []FieldError{{Field: "amount", Message: "must be a decimal number"}}
	}
	return amount, nil
}

type amountRequest struct {
	Amount string `json:"amount"`
}

func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, "deposit", h.bank.Deposit)
}

func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, "withdrawal", h.bank.Withdraw)
}

func (h *LedgerHandler) move(w http.ResponseWriter, r *http.Request, op string, fn func(context.Context, string, decimal.Decimal) (*domain.Account, error)) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		RespondAppError(w, ErrMissingToken, nil)
		return
	}

	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	amount, fields := parseAmount(req.Amount)
	if len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	acct, err := fn(r.Context(), claims.AccountNumber, amount)
	if err != nil {
		logging.FromContext(r.Context()).Warn(op+" failed", "account", claims.AccountNumber, "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toAccountDTO(acct))
}

type transferRequest struct {
	TargetAccount string `json:"target_account"`
	Amount        string `json:"amount"`
}

func (r transferRequest) Validate() []FieldError {
	var errs []FieldError
	if r.TargetAccount == "" {
		errs = append(errs, FieldError{Field: "target_account", Message: "required"})
	}
	return errs
}

func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		RespondAppError(w, ErrMissingToken, nil)
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	fields := req.Validate()
	amount, amountFields := parseAmount(req.Amount)
	fields = append(fields, amountFields...)
	if len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	acct, err := h.bank.Transfer(r.Context(), claims.AccountNumber, req.TargetAccount, amount)
	if err != nil {
		logging.FromContext(r.Context()).Warn("transfer failed",
			"from", claims.AccountNumber, "to", req.TargetAccount, "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toAccountDTO(acct))
}

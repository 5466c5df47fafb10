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

type chequeService interface {
	IssueCheque(ctx context.Context, accountNumber, payee string, amount decimal.Decimal, memo string) (*domain.Account, error)
	RequestChequeBook(ctx context.Context, accountNumber string) (*domain.Account, error)
}

type ChequeHandler struct {
	bank chequeService
}

func NewChequeHandler(bank chequeService) *ChequeHandler {
	return &ChequeHandler{bank: bank}
}

type issueChequeRequest struct {
	Payee  string `json:"payee"`
	Amount string `json:"amount"`
	Memo   string `json:"memo"`
}

func (r issueChequeRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Payee == "" {
		errs = append(errs, FieldError{Field: "payee", Message: "required"})
	}
	return errs
}

func (h *ChequeHandler) Issue(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		RespondAppError(w, ErrMissingToken, nil)
		return
	}

	var req issueChequeRequest
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

	acct, err := h.bank.IssueCheque(r.Context(), claims.AccountNumber, req.Payee, amount, req.Memo)
	if err != nil {
		logging.FromContext(r.Context()).Warn("cheque issuance failed",
			"account", claims.AccountNumber, "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, toAccountDTO(acct))
}

func (h *ChequeHandler) RequestBook(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		RespondAppError(w, ErrMissingToken, nil)
		return
	}

	acct, err := h.bank.RequestChequeBook(r.Context(), claims.AccountNumber)
	if err != nil {
		logging.FromContext(r.Context()).Warn("cheque book request failed",
			"account", claims.AccountNumber, "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toAccountDTO(acct))
}

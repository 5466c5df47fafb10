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

type loanService interface {
	ApplyLoan(ctx context.Context, accountNumber string, principal decimal.Decimal, tenureMonths int) (*domain.Account, error)
}

type LoanHandler struct {
	bank loanService
}

func NewLoanHandler(bank loanService) *LoanHandler {
	return &LoanHandler{bank: bank}
}

type applyLoanRequest struct {
	Amount       string `json:"amount"`
	TenureMonths int    `json:"tenure_months"`
}

func (h *LoanHandler) Apply(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		RespondAppError(w, ErrMissingToken, nil)
		return
	}

	var req applyLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	amount, fields := parseAmount(req.Amount)
	if len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	acct, err := h.bank.ApplyLoan(r.Context(), claims.AccountNumber, amount, req.TenureMonths)
	if err != nil {
		logging.FromContext(r.Context()).Warn("loan application failed",
			"account", claims.AccountNumber, "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, toAccountDTO(acct))
}

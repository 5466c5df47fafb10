package handler

import (
	"context"
	"net/http"

	"github.com/retrobank/backoffice/internal/auth"
	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/logging"
)

type accountReader interface {
	Account(ctx context.Context, accountNumber string) (*domain.Account, error)
}

type AccountHandler struct {
	bank accountReader
}

func NewAccountHandler(bank accountReader) *AccountHandler {
	return &AccountHandler{bank: bank}
}

func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		RespondAppError(w, ErrMissingToken, nil)
		return
	}

	acct, err := h.bank.Account(r.Context(), claims.AccountNumber)
	if err != nil {
		logging.FromContext(r.Context()).Warn("account lookup failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toAccountDTO(acct))
}

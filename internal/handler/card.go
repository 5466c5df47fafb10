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

type cardService interface {
	IssueCard(ctx context.Context, accountNumber string) (*domain.Account, error)
	ATMWithdraw(ctx context.Context, cardNumber, pin string, amount decimal.Decimal) (*domain.Account, error)
	VerifyCardPIN(ctx context.Context, cardNumber, pin string) (*domain.Account, error)
}

type CardHandler struct {
	bank cardService
}

func NewCardHandler(bank cardService) *CardHandler {
	return &CardHandler{bank: bank}
}

func (h *CardHandler) Issue(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		RespondAppError(w, ErrMissingToken, nil)
		return
	}

	acct, err := h.bank.IssueCard(r.Context(), claims.AccountNumber)
	if err != nil {
		logging.FromContext(r.Context()).Warn("card issuance failed",
			"account", claims.AccountNumber, "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, toAccountDTO(acct))
}

// The ATM routes authenticate by card number and PIN instead of a bearer
// token, so their responses carry only what an ATM screen shows.

type atmWithdrawRequest struct {
	CardNumber string `json:"card_number"`
	PIN        string `json:"pin"`
	Amount     string `json:"amount"`
}

func (r atmWithdrawRequest) Validate() []FieldError {
	var errs []FieldError
	if r.CardNumber == "" {
		errs = append(errs, FieldError{Field: "card_number", Message: "required"})
	}
	if r.PIN == "" {
		errs = append(errs, FieldError{Field: "pin", Message: "required"})
	}
	return errs
}

type atmResponse struct {
	AccountNumber string `json:"account_number"`
	Name          string `json:"name"`
	Balance       string `json:"balance"`
}

func (h *CardHandler) ATMWithdraw(w http.ResponseWriter, r *http.Request) {
	var req atmWithdrawRequest
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

	acct, err := h.bank.ATMWithdraw(r.Context(), req.CardNumber, req.PIN, amount)
	if err != nil {
		logging.FromContext(r.Context()).Warn("atm withdrawal failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, atmResponse{
		AccountNumber: acct.AccountNumber,
		Name:          acct.Name,
		Balance:       acct.Balance.String(),
	})
}

type atmVerifyPINRequest struct {
	CardNumber string `json:"card_number"`
	PIN        string `json:"pin"`
}

func (r atmVerifyPINRequest) Validate() []FieldError {
	var errs []FieldError
	if r.CardNumber == "" {
		errs = append(errs, FieldError{Field: "card_number", Message: "required"})
	}
	if r.PIN == "" {
		errs = append(errs, FieldError{Field: "pin", Message: "required"})
	}
	return errs
}

func (h *CardHandler) VerifyPIN(w http.ResponseWriter, r *http.Request) {
	var req atmVerifyPINRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	acct, err := h.bank.VerifyCardPIN(r.Context(), req.CardNumber, req.PIN)
	if err != nil {
		logging.FromContext(r.Context()).Warn("atm pin verification failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, atmResponse{
		AccountNumber: acct.AccountNumber,
		Name:          acct.Name,
		Balance:       acct.Balance.String(),
	})
}

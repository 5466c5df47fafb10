package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/logging"
	"github.com/retrobank/backoffice/internal/service"
)

type adminService interface {
	AllAccounts(ctx context.Context) ([]domain.Account, error)
	Dispatch(ctx context.Context, cmd service.Command) error
	AdjustBalance(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.Account, error)
}

type AdminHandler struct {
	bank adminService
}

func NewAdminHandler(bank adminService) *AdminHandler {
	return &AdminHandler{bank: bank}
}

func (h *AdminHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.bank.AllAccounts(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("account listing failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	dtos := make([]accountDTO, 0, len(accounts))
	for i := range accounts {
		dtos = append(dtos, toAccountDTO(&accounts[i]))
	}
	RespondSuccess(w, http.StatusOK, dtos)
}

type adminActionRequest struct {
	Action        string `json:"action"`
	LoanID        string `json:"loan_id,omitempty"`
	ChequeID      string `json:"cheque_id,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
}

// Command builds the typed engine command for the wire action, or reports
// the field errors that prevent it.
func (r adminActionRequest) Command() (service.Command, []FieldError) {
	needLoan := func() []FieldError {
		if r.LoanID == "" {
			return []FieldError{{Field: "loan_id", Message: "required"}}
		}
		return nil
	}
	needCheque := func() []FieldError {
		if r.ChequeID == "" {
			return []FieldError{{Field: "cheque_id", Message: "required"}}
		}
		return nil
	}
	needAccount := func() []FieldError {
		if r.AccountNumber == "" {
			return []FieldError{{Field: "account_number", Message: "required"}}
		}
		return nil
	}

	switch r.Action {
	case "approve_loan":
		if errs := needLoan(); errs != nil {
			return nil, errs
		}
		return service.ApproveLoan{LoanID: r.LoanID}, nil
	case "reject_loan":
		if errs := needLoan(); errs != nil {
			return nil, errs
		}
		return service.RejectLoan{LoanID: r.LoanID}, nil
	case "clear_cheque":
		if errs := needCheque(); errs != nil {
			return nil, errs
		}
		return service.ClearCheque{ChequeID: r.ChequeID}, nil
	case "bounce_cheque":
		if errs := needCheque(); errs != nil {
			return nil, errs
		}
		return service.BounceCheque{ChequeID: r.ChequeID}, nil
	case "freeze_account":
		if errs := needAccount(); errs != nil {
			return nil, errs
		}
		return service.FreezeAccount{AccountNumber: r.AccountNumber}, nil
	case "unfreeze_account":
		if errs := needAccount(); errs != nil {
			return nil, errs
		}
		return service.UnfreezeAccount{AccountNumber: r.AccountNumber}, nil
	case "unlock_card":
		if errs := needAccount(); errs != nil {
			return nil, errs
		}
		return service.UnlockCard{AccountNumber: r.AccountNumber}, nil
	case "freeze_card":
		if errs := needAccount(); errs != nil {
			return nil, errs
		}
		return service.FreezeCard{AccountNumber: r.AccountNumber}, nil
	case "issue_card":
		if errs := needAccount(); errs != nil {
			return nil, errs
		}
		return service.IssueCardFor{AccountNumber: r.AccountNumber}, nil
	case "":
		return nil, []FieldError{{Field: "action", Message: "required"}}
	default:
		return nil, []FieldError{{Field: "action", Message: "unknown action"}}
	}
}

func (h *AdminHandler) Action(w http.ResponseWriter, r *http.Request) {
	var req adminActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	cmd, fields := req.Command()
	if len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	if err := h.bank.Dispatch(r.Context(), cmd); err != nil {
		logging.FromContext(r.Context()).Warn("admin action failed", "action", req.Action, "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, map[string]string{"action": req.Action})
}

type adjustBalanceRequest struct {
	AccountNumber string `json:"account_number"`
	// Amount is signed: positive credits, negative debits.
	Amount string `json:"amount"`
}

func (h *AdminHandler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	var req adjustBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	var fields []FieldError
	if req.AccountNumber == "" {
		fields = append(fields, FieldError{Field: "account_number", Message: "required"})
	}
	amount, amountFields := parseAmount(req.Amount)
	fields = append(fields, amountFields...)
	if len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	acct, err := h.bank.AdjustBalance(r.Context(), req.AccountNumber, amount)
	if err != nil {
		logging.FromContext(r.Context()).Warn("balance adjustment failed",
			"account", req.AccountNumber, "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toAccountDTO(acct))
}

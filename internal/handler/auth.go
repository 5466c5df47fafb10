package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/retrobank/backoffice/internal/auth"
	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/logging"
)

type authService interface {
	Login(ctx context.Context, accountNumber, secret string) (*domain.Account, error)
	Register(ctx context.Context, name, email string) (*domain.Account, string, error)
	ResetPassword(ctx context.Context, accountNumber, email string) (string, error)
}

type AuthHandler struct {
	bank      authService
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthHandler(bank authService, jwtSecret string, jwtExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		bank:      bank,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

type loginRequest struct {
	AccountNumber string `json:"account_number"`
	Password      string `json:"password"`
}

func (r loginRequest) Validate() []FieldError {
	var errs []FieldError
	if r.AccountNumber == "" {
		errs = append(errs, FieldError{Field: "account_number", Message: "required"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "required"})
	}
	return errs
}

type loginResponse struct {
	Token   string     `json:"token"`
	Account accountDTO `json:"account"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	acct, err := h.bank.Login(r.Context(), req.AccountNumber, req.Password)
	if err != nil {
		logging.FromContext(r.Context()).Warn("login failed", "account", req.AccountNumber)
		RespondDomainError(w, err)
		return
	}

	token, err := auth.GenerateToken(acct.AccountNumber, acct.IsAdmin, h.jwtSecret, h.jwtExpiry)
	if err != nil {
		RespondAppError(w, ErrInternalError, nil)
		return
	}

	RespondSuccess(w, http.StatusOK, loginResponse{
		Token:   token,
		Account: toAccountDTO(acct),
	})
}

type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r registerRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(r.Email, "@") {
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	return errs
}

type registerResponse struct {
	Token string `json:"token"`
	// Password is the generated secret, returned exactly once.
	Password string     `json:"password"`
	Account  accountDTO `json:"account"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	acct, secret, err := h.bank.Register(r.Context(), req.Name, req.Email)
	if err != nil {
		log.Warn("registration failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	token, err := auth.GenerateToken(acct.AccountNumber, acct.IsAdmin, h.jwtSecret, h.jwtExpiry)
	if err != nil {
		RespondAppError(w, ErrInternalError, nil)
		return
	}

	RespondSuccess(w, http.StatusCreated, registerResponse{
		Token:    token,
		Password: secret,
		Account:  toAccountDTO(acct),
	})
}

type resetPasswordRequest struct {
	AccountNumber string `json:"account_number"`
	Email         string `json:"email"`
}

func (r resetPasswordRequest) Validate() []FieldError {
	var errs []FieldError
	if r.AccountNumber == "" {
		errs = append(errs, FieldError{Field: "account_number", Message: "required"})
	}
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "required"})
	}
	return errs
}

type resetPasswordResponse struct {
	Password string `json:"password"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	secret, err := h.bank.ResetPassword(r.Context(), req.AccountNumber, req.Email)
	if err != nil {
		logging.FromContext(r.Context()).Warn("password reset failed", "account", req.AccountNumber)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, resetPasswordResponse{Password: secret})
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/service"
)

type mockAdmin struct {
	accounts []domain.Account
	acct     *domain.Account
	err      error

	dispatched service.Command
}

func (m *mockAdmin) AllAccounts(_ context.Context) ([]domain.Account, error) {
	return m.accounts, m.err
}

func (m *mockAdmin) Dispatch(_ context.Context, cmd service.Command) error {
	m.dispatched = cmd
	return m.err
}

func (m *mockAdmin) AdjustBalance(_ context.Context, _ string, _ decimal.Decimal) (*domain.Account, error) {
	return m.acct, m.err
}

func TestAdminActionMapping(t *testing.T) {
	tests := []struct {
		name string
		body string
		want service.Command
	}{
		{
			name: "approve loan",
			body: `{"action":"approve_loan","loan_id":"loan-1"}`,
			want: service.ApproveLoan{LoanID: "loan-1"},
		},
		{
			name: "reject loan",
			body: `{"action":"reject_loan","loan_id":"loan-1"}`,
			want: service.RejectLoan{LoanID: "loan-1"},
		},
		{
			name: "clear cheque",
			body: `{"action":"clear_cheque","cheque_id":"chq-1"}`,
			want: service.ClearCheque{ChequeID: "chq-1"},
		},
		{
			name: "bounce cheque",
			body: `{"action":"bounce_cheque","cheque_id":"chq-1"}`,
			want: service.BounceCheque{ChequeID: "chq-1"},
		},
		{
			name: "freeze account",
			body: `{"action":"freeze_account","account_number":"10001"}`,
			want: service.FreezeAccount{AccountNumber: "10001"},
		},
		{
			name: "unfreeze account",
			body: `{"action":"unfreeze_account","account_number":"10001"}`,
			want: service.UnfreezeAccount{AccountNumber: "10001"},
		},
		{
			name: "unlock card",
			body: `{"action":"unlock_card","account_number":"10001"}`,
			want: service.UnlockCard{AccountNumber: "10001"},
		},
		{
			name: "freeze card",
			body: `{"action":"freeze_card","account_number":"10001"}`,
			want: service.FreezeCard{AccountNumber: "10001"},
		},
		{
			name: "issue card",
			body: `{"action":"issue_card","account_number":"10001"}`,
			want: service.IssueCardFor{AccountNumber: "10001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAdmin{}
			h := NewAdminHandler(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/actions", strings.NewReader(tt.body))
			h.Action(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, svc.dispatched)
		})
	}
}

func TestAdminActionValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown action", `{"action":"explode"}`},
		{"missing action", `{}`},
		{"loan action without id", `{"action":"approve_loan"}`},
		{"cheque action without id", `{"action":"clear_cheque"}`},
		{"account action without number", `{"action":"freeze_account"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAdmin{}
			h := NewAdminHandler(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/actions", strings.NewReader(tt.body))
			h.Action(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, svc.dispatched)
		})
	}
}

func TestAdminActionDomainError(t *testing.T) {
	h := NewAdminHandler(&mockAdmin{err: domain.ErrNotFound})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/actions",
		strings.NewReader(`{"action":"approve_loan","loan_id":"missing"}`))
	h.Action(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, ErrResourceNotFound.Code, resp.Error.Code)
}

func TestAdjustBalanceHandler(t *testing.T) {
	t.Run("accepts signed amounts", func(t *testing.T) {
		h := NewAdminHandler(&mockAdmin{acct: testAccount()})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/adjust-balance",
			strings.NewReader(`{"account_number":"10001","amount":"-40"}`))
		h.AdjustBalance(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("requires account number", func(t *testing.T) {
		h := NewAdminHandler(&mockAdmin{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/adjust-balance",
			strings.NewReader(`{"amount":"-40"}`))
		h.AdjustBalance(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListAccountsStripsSecrets(t *testing.T) {
	h := NewAdminHandler(&mockAdmin{accounts: []domain.Account{*testAccount()}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/accounts", nil)
	h.ListAccounts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, body, "secret-hash")
	assert.Contains(t, body, `"account_number":"10001"`)
}

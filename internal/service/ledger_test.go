package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/service"
	"github.com/retrobank/backoffice/internal/testutil"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("credits balance and records transaction", func(t *testing.T) {
		bank, _ := testutil.NewBank(t, service.DefaultConfig(),
			testutil.Account(t, "10001", "Ada", "100"))

		acct, err := bank.Deposit(ctx, "10001", dec(t, "250.50"))
		require.NoError(t, err)
		assert.True(t, acct.Balance.Equal(dec(t, "350.50")))
		require.Len(t, acct.Transactions, 1)
		assert.Equal(t, domain.TransactionDeposit, acct.Transactions[0].Type)
		assert.Equal(t, "Cash Deposit", acct.Transactions[0].Description)
		assert.True(t, acct.Transactions[0].Amount.Equal(dec(t, "250.50")))
	})

	t.Run("frozen account still accepts deposits", func(t *testing.T) {
		frozen := testutil.Account(t, "10002", "Bob", "50")
		frozen.IsFrozen = true
		bank, _ := testutil.NewBank(t, service.DefaultConfig(), frozen)

		acct, err := bank.Deposit(ctx, "10002", dec(t, "10"))
		require.NoError(t, err)
		assert.True(t, acct.Balance.Equal(dec(t, "60")))
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		bank, _ := testutil.NewBank(t, service.DefaultConfig(),
			testutil.Account(t, "10001", "Ada", "100"))

		_, err := bank.Deposit(ctx, "10001", decimal.Zero)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = bank.Deposit(ctx, "10001", dec(t, "-5"))
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("unknown account", func(t *testing.T) {
		bank, _ := testutil.NewBank(t, service.DefaultConfig())

		_, err := bank.Deposit(ctx, "99999", dec(t, "10"))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*domain.Account)
		amount  string
		wantErr error
	}{
		{name: "sufficient funds", amount: "40"},
		{name: "exact balance is allowed", amount: "100"},
		{name: "insufficient funds", amount: "100.01", wantErr: domain.ErrInsufficientFunds},
		{name: "zero amount", amount: "0", wantErr: domain.ErrInvalidAmount},
		{
			name:    "frozen account",
			mutate:  func(a *domain.Account) { a.IsFrozen = true },
			amount:  "10",
			wantErr: domain.ErrAccountFrozen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := testutil.Account(t, "10001", "Ada", "100")
			if tt.mutate != nil {
				tt.mutate(&seed)
			}
			bank, _ := testutil.NewBank(t, service.DefaultConfig(), seed)

			acct, err := bank.Withdraw(ctx, "10001", dec(t, tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				// Failed withdrawal must not touch committed state.
				after, err := bank.Account(ctx, "10001")
				require.NoError(t, err)
				assert.True(t, after.Balance.Equal(dec(t, "100")))
				assert.Empty(t, after.Transactions)
				return
			}
			require.NoError(t, err)
			assert.True(t, acct.Balance.Equal(dec(t, "100").Sub(dec(t, tt.amount))))
			require.Len(t, acct.Transactions, 1)
			assert.Equal(t, "Cash Withdrawal", acct.Transactions[0].Description)
		})
	}
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("moves funds and writes a shared-id pair", func(t *testing.T) {
		bank, _ := testutil.NewBank(t, service.DefaultConfig(),
			testutil.Account(t, "10001", "Ada", "100"),
			testutil.Account(t, "10002", "Bob", "20"))

		sender, err := bank.Transfer(ctx, "10001", "10002", dec(t, "30"))
		require.NoError(t, err)
		assert.True(t, sender.Balance.Equal(dec(t, "70")))

		receiver, err := bank.Account(ctx, "10002")
		require.NoError(t, err)
		assert.True(t, receiver.Balance.Equal(dec(t, "50")))

		require.Len(t, sender.Transactions, 1)
		require.Len(t, receiver.Transactions, 1)
		assert.Equal(t, sender.Transactions[0].ID, receiver.Transactions[0].ID)
		assert.Equal(t, "Transfer to 10002", sender.Transactions[0].Description)
		assert.Equal(t, "Transfer from 10001", receiver.Transactions[0].Description)
		assert.Equal(t, "10002", sender.Transactions[0].TargetAccount)
		assert.Equal(t, "10001", receiver.Transactions[0].TargetAccount)
	})

	t.Run("self-transfer is allowed", func(t *testing.T) {
		bank, _ := testutil.NewBank(t, service.DefaultConfig(),
			testutil.Account(t, "10001", "Ada", "100"))

		acct, err := bank.Transfer(ctx, "10001", "10001", dec(t, "10"))
		require.NoError(t, err)
		assert.True(t, acct.Balance.Equal(dec(t, "100")))
		assert.Len(t, acct.Transactions, 2)
	})

	t.Run("failure paths leave both sides untouched", func(t *testing.T) {
		tests := []struct {
			name    string
			from    string
			to      string
			amount  string
			frozen  bool
			wantErr error
		}{
			{name: "unknown sender", from: "99999", to: "10002", amount: "10", wantErr: domain.ErrSenderNotFound},
			{name: "unknown target", from: "10001", to: "99999", amount: "10", wantErr: domain.ErrTargetAccountInvalid},
			{name: "frozen sender", from: "10001", to: "10002", amount: "10", frozen: true, wantErr: domain.ErrAccountFrozen},
			{name: "insufficient funds", from: "10001", to: "10002", amount: "100.01", wantErr: domain.ErrInsufficientFunds},
			{name: "zero amount", from: "10001", to: "10002", amount: "0", wantErr: domain.ErrInvalidAmount},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				sender := testutil.Account(t, "10001", "Ada", "100")
				sender.IsFrozen = tt.frozen
				bank, _ := testutil.NewBank(t, service.DefaultConfig(),
					sender, testutil.Account(t, "10002", "Bob", "20"))

				_, err := bank.Transfer(ctx, tt.from, tt.to, dec(t, tt.amount))
				require.ErrorIs(t, err, tt.wantErr)

				after1, err := bank.Account(ctx, "10001")
				require.NoError(t, err)
				after2, err := bank.Account(ctx, "10002")
				require.NoError(t, err)
				assert.True(t, after1.Balance.Equal(dec(t, "100")))
				assert.True(t, after2.Balance.Equal(dec(t, "20")))
				assert.Empty(t, after1.Transactions)
				assert.Empty(t, after2.Transactions)
			})
		}
	})
}

// Walks a fresh customer through the typical first session.
func TestAccountLifecycle(t *testing.T) {
	ctx := context.Background()
	bank, _ := testutil.NewBank(t, service.DefaultConfig(),
		testutil.Account(t, "20000", "Teller", "1000"))

	acct, secret, err := bank.Register(ctx, "Grace Hopper", "grace@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, secret)
	assert.True(t, acct.Balance.IsZero())

	_, err = bank.Login(ctx, acct.AccountNumber, secret)
	require.NoError(t, err)

	deposited, err := bank.Deposit(ctx, acct.AccountNumber, dec(t, "500"))
	require.NoError(t, err)
	assert.True(t, deposited.Balance.Equal(dec(t, "500")))

	_, err = bank.Withdraw(ctx, acct.AccountNumber, dec(t, "600"))
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, err = bank.Transfer(ctx, acct.AccountNumber, "31337", dec(t, "50"))
	require.ErrorIs(t, err, domain.ErrTargetAccountInvalid)

	final, err := bank.Transfer(ctx, acct.AccountNumber, "20000", dec(t, "50"))
	require.NoError(t, err)
	assert.True(t, final.Balance.Equal(dec(t, "450")))
}

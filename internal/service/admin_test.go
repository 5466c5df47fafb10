package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrobank/backoffice/internal/domain"
	"github.com/retrobank/backoffice/internal/service"
	"github.com/retrobank/backoffice/internal/testutil"
)

func TestFreezeCommands(t *testing.T) {
	ctx := context.Background()
	bank, _ := testutil.NewBank(t, service.DefaultConfig(),
		testutil.Account(t, "10001", "Ada", "100"))

	require.NoError(t, bank.Dispatch(ctx, service.FreezeAccount{AccountNumber: "10001"}))

	_, err := bank.Withdraw(ctx, "10001", dec(t, "10"))
	require.ErrorIs(t, err, domain.ErrAccountFrozen)

	// Deposits still land on a frozen account.
	_, err = bank.Deposit(ctx, "10001", dec(t, "10"))
	require.NoError(t, err)

	require.NoError(t, bank.Dispatch(ctx, service.UnfreezeAccount{AccountNumber: "10001"}))
	_, err = bank.Withdraw(ctx, "10001", dec(t, "10"))
	require.NoError(t, err)

	err = bank.Dispatch(ctx, service.FreezeAccount{AccountNumber: "99999"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCardCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("freeze blocks the ATM until unlock", func(t *testing.T) {
		bank, _ := testutil.NewBank(t, service.DefaultConfig(),
			testutil.Account(t, "10001", "Ada", "100"))
		card := issueCard(t, bank, "10001")

		require.NoError(t, bank.Dispatch(ctx, service.FreezeCard{AccountNumber: "10001"}))
		_, err := bank.ATMWithdraw(ctx, card.Number, testPIN, dec(t, "10"))
		require.ErrorIs(t, err, domain.ErrCardNotActive)

		require.NoError(t, bank.Dispatch(ctx, service.UnlockCard{AccountNumber: "10001"}))
		_, err = bank.ATMWithdraw(ctx, card.Number, testPIN, dec(t, "10"))
		require.NoError(t, err)
	})

	t.Run("card commands need an existing card", func(t *testing.T) {
		bank, _ := testutil.NewBank(t, service.DefaultConfig(),
			testutil.Account(t, "10001", "Ada", "100"))

		err := bank.Dispatch(ctx, service.FreezeCard{AccountNumber: "10001"})
		require.ErrorIs(t, err, domain.ErrCardInvalid)
		err = bank.Dispatch(ctx, service.UnlockCard{AccountNumber: "10001"})
		require.ErrorIs(t, err, domain.ErrCardInvalid)
	})

	t.Run("admin issuance is idempotent", func(t *testing.T) {
		bank, _ := testutil.NewBank(t, service.DefaultConfig(),
			testutil.Account(t, "10001", "Ada", "100"))

		require.NoError(t, bank.Dispatch(ctx, service.IssueCardFor{AccountNumber: "10001"}))
		acct, err := bank.Account(ctx, "10001")
		require.NoError(t, err)
		require.NotNil(t, acct.Card)
		first := acct.Card.Number

		require.NoError(t, bank.Dispatch(ctx, service.IssueCardFor{AccountNumber: "10001"}))
		acct, err = bank.Account(ctx, "10001")
		require.NoError(t, err)
		assert.Equal(t, first, acct.Card.Number)
	})
}

func TestAdjustBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("credit", func(t *testing.T) {
		bank, _ := testutil.NewBank(t, service.DefaultConfig(),
			testutil.Account(t, "10001", "Ada", "100"))

		acct, err := bank.AdjustBalance(ctx, "10001", dec(t, "40"))
		require.NoError(t, err)
		assert.True(t, acct.Balance.Equal(dec(t, "140")))
		require.Len(t, acct.Transactions, 1)
		assert.Equal(t, domain.TransactionDeposit, acct.Transactions[0].Type)
		assert.Equal(t, "Admin Adjustment", acct.Transactions[0].Description)
	})

	t.Run("debit records the positive magnitude", func(t *testing.T) {
		bank, _ := testutil.NewBank(t, service.DefaultConfig(),
			testutil.Account(t, "10001", "Ada", "100"))

		acct, err := bank.AdjustBalance(ctx, "10001", dec(t, "-40"))
		require.NoError(t, err)
		assert.True(t, acct.Balance.Equal(dec(t, "60")))
		assert.Equal(t, domain.TransactionWithdrawal, acct.Transactions[0].Type)
		assert.True(t, acct.Transactions[0].Amount.Equal(dec(t, "40")))
	})

	t.Run("over-debit clamps to zero", func(t *testing.T) {
		bank, _ := testutil.NewBank(t, service.DefaultConfig(),
			testutil.Account(t, "10001", "Ada", "100"))

		acct, err := bank.AdjustBalance(ctx, "10001", dec(t, "-250"))
		require.NoError(t, err)
		assert.True(t, acct.Balance.IsZero())
		assert.True(t, acct.Transactions[0].Amount.Equal(dec(t, "250")))
	})

	t.Run("bypasses the freeze gate", func(t *testing.T) {
		frozen := testutil.Account(t, "10001", "Ada", "100")
		frozen.IsFrozen = true
		bank, _ := testutil.NewBank(t, service.DefaultConfig(), frozen)

		acct, err := bank.AdjustBalance(ctx, "10001", dec(t, "-40"))
		require.NoError(t, err)
		assert.True(t, acct.Balance.Equal(dec(t, "60")))
	})

	t.Run("unknown account", func(t *testing.T) {
		bank, _ := testutil.NewBank(t, service.DefaultConfig())

		_, err := bank.AdjustBalance(ctx, "99999", dec(t, "10"))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAllAccounts(t *testing.T) {
	ctx := context.Background()
	bank, _ := testutil.NewBank(t, service.DefaultConfig(),
		testutil.Account(t, "10001", "Ada", "100"),
		testutil.Account(t, "10002", "Bob", "200"))

	accounts, err := bank.AllAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	numbers := []string{accounts[0].AccountNumber, accounts[1].AccountNumber}
	assert.ElementsMatch(t, []string{"10001", "10002"}, numbers)
}

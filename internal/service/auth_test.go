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

func TestLogin(t *testing.T) {
	ctx := context.Background()
	bank, _ := testutil.NewBank(t, service.DefaultConfig(),
		testutil.Account(t, "10001", "Ada", "100"))

	t.Run("valid credentials", func(t *testing.T) {
		acct, err := bank.Login(ctx, "10001", testutil.TestPassword)
		require.NoError(t, err)
		assert.Equal(t, "Ada", acct.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := bank.Login(ctx, "10001", "wrong")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown account looks like bad credentials", func(t *testing.T) {
		_, err := bank.Login(ctx, "99999", testutil.TestPassword)
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("new account starts empty", func(t *testing.T) {
		bank, gen := testutil.NewBank(t, service.DefaultConfig())
		gen.PushAccountNumbers("54321")
		gen.PushSecrets("246801")

		acct, secret, err := bank.Register(ctx, "Grace", "grace@example.com")
		require.NoError(t, err)
		assert.Equal(t, "54321", acct.AccountNumber)
		assert.Equal(t, "246801", secret)
		assert.True(t, acct.Balance.IsZero())
		assert.Equal(t, 0, acct.ChequeBooksLeft)
		assert.False(t, acct.IsAdmin)
		assert.NotEqual(t, secret, acct.PasswordHash)

		_, err = bank.Login(ctx, "54321", "246801")
		require.NoError(t, err)
	})

	t.Run("retries past colliding numbers", func(t *testing.T) {
		bank, gen := testutil.NewBank(t, service.DefaultConfig(),
			testutil.Account(t, "10001", "Ada", "100"))
		gen.PushAccountNumbers("10001", "10001", "77777")

		acct, _, err := bank.Register(ctx, "Grace", "grace@example.com")
		require.NoError(t, err)
		assert.Equal(t, "77777", acct.AccountNumber)
	})
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	bank, gen := testutil.NewBank(t, service.DefaultConfig(),
		testutil.Account(t, "10001", "Ada", "100"))
	gen.PushSecrets("135790")

	t.Run("number and email must both match", func(t *testing.T) {
		_, err := bank.ResetPassword(ctx, "10001", "someone-else@example.com")
		require.ErrorIs(t, err, domain.ErrNotFound)

		_, err = bank.ResetPassword(ctx, "99999", "10001@example.com")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rotates the secret", func(t *testing.T) {
		secret, err := bank.ResetPassword(ctx, "10001", "10001@example.com")
		require.NoError(t, err)
		assert.Equal(t, "135790", secret)

		_, err = bank.Login(ctx, "10001", testutil.TestPassword)
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)

		_, err = bank.Login(ctx, "10001", secret)
		require.NoError(t, err)
	})
}

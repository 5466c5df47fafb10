package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorFormats(t *testing.T) {
	g := NewCryptoGenerator()

	for i := 0; i < 50; i++ {
		acct, err := g.AccountNumber()
		require.NoError(t, err)
		assert.Len(t, acct, 5)
		assert.NotEqual(t, byte('0'), acct[0])

		secret, err := g.Secret()
		require.NoError(t, err)
		assert.Len(t, secret, 6)

		card, err := g.CardNumber()
		require.NoError(t, err)
		assert.Len(t, card, 16)
		assert.Equal(t, byte('4'), card[0])

		cvv, err := g.CVV()
		require.NoError(t, err)
		assert.Len(t, cvv, 3)
	}
}

func TestIDUnique(t *testing.T) {
	g := NewCryptoGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.ID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

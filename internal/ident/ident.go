// Package ident produces the identifiers the bank hands out: account numbers,
// one-time secrets, cheque display numbers, card numbers and entity ids.
// Numbers are drawn from crypto/rand; the generator makes no uniqueness
// promise beyond entity ids — callers that need a unique account number check
// against the snapshot and retry.
package ident

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

type Generator interface {
	// AccountNumber returns a 5-digit number without a leading zero.
	AccountNumber() (string, error)
	// Secret returns a 6-digit login secret.
	Secret() (string, error)
	// ChequeNumber returns a 6-digit cheque display number.
	ChequeNumber() (string, error)
	// CardNumber returns a 16-digit card number with the fixed '4' prefix.
	CardNumber() (string, error)
	// CVV returns a 3-digit card verification value.
	CVV() (string, error)
	// ID returns a globally unique entity id.
	ID() string
}

type CryptoGenerator struct{}

func NewCryptoGenerator() *CryptoGenerator { return &CryptoGenerator{} }

func (g *CryptoGenerator) AccountNumber() (string, error) {
	return randomInRange(10000, 99999)
}

func (g *CryptoGenerator) Secret() (string, error) {
	return randomInRange(100000, 999999)
}

func (g *CryptoGenerator) ChequeNumber() (string, error) {
	return randomInRange(100000, 999999)
}

func (g *CryptoGenerator) CardNumber() (string, error) {
	digits, err := randomDigits(15)
	if err != nil {
		return "", fmt.Errorf("CardNumber: %w", err)
	}
	return "4" + digits, nil
}

func (g *CryptoGenerator) CVV() (string, error) {
	return randomInRange(100, 999)
}

func (g *CryptoGenerator) ID() string {
	return uuid.New().String()
}

func randomInRange(lo, hi int64) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(hi-lo+1))
	if err != nil {
		return "", fmt.Errorf("randomInRange: %w", err)
	}
	return fmt.Sprintf("%d", lo+n.Int64()), nil
}

func randomDigits(count int) (string, error) {
	digits := make([]byte, count)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("randomDigits: %w", err)
		}
		digits[i] = '0' + byte(n.Int64())
	}
	return string(digits), nil
}

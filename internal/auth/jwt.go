package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identify a logged-in account. Admin mirrors the account's flag at
// login time; the admin gate trusts it for the token's lifetime.
type Claims struct {
	AccountNumber string
	Admin         bool
}

type tokenClaims struct {
	jwt.RegisteredClaims
	AccountNumber string `json:"account_number"`
	Admin         bool   `json:"admin"`
}

func GenerateToken(accountNumber string, admin bool, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		AccountNumber: accountNumber,
		Admin:         admin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("GenerateToken: %w", err)
	}
	return signed, nil
}

func ValidateToken(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("ValidateToken: %w", err)
	}

	tc, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("ValidateToken: invalid token claims")
	}
	if tc.AccountNumber == "" {
		return nil, fmt.Errorf("ValidateToken: missing account number in token")
	}

	return &Claims{
		AccountNumber: tc.AccountNumber,
		Admin:         tc.Admin,
	}, nil
}

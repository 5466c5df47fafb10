package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("10001", false, testSecret, 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "10001", claims.AccountNumber)
	assert.False(t, claims.Admin)
}

func TestAdminFlagRoundTrips(t *testing.T) {
	token, err := GenerateToken("admin", true, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
}

func TestValidateToken(t *testing.T) {
	validToken, err := GenerateToken("10001", false, testSecret, time.Hour)
	require.NoError(t, err)

	expiredToken, err := GenerateToken("10001", false, testSecret, -1*time.Hour)
	require.NoError(t, err)

	emptyAccountToken, err := GenerateToken("", false, testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		secret    string
		wantErrIs error
	}{
		{
			name:      "expired token",
			token:     expiredToken,
			secret:    testSecret,
			wantErrIs: jwt.ErrTokenExpired,
		},
		{
			name:      "wrong secret",
			token:     validToken,
			secret:    "wrong-secret",
			wantErrIs: jwt.ErrTokenSignatureInvalid,
		},
		{
			name:   "malformed token",
			token:  "not.a.valid.jwt",
			secret: testSecret,
		},
		{
			name:   "missing account number",
			token:  emptyAccountToken,
			secret: testSecret,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateToken(tc.token, tc.secret)
			require.Error(t, err)
			if tc.wantErrIs != nil {
				assert.ErrorIs(t, err, tc.wantErrIs)
			}
		})
	}
}

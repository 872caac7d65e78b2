package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, c jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func tokenExpiring(t *testing.T, exp time.Time) string {
	t.Helper()
	return signToken(t, jwt.MapClaims{
		"id":       7,
		"username": "admin",
		"email":    "admin@example.com",
		"role":     "superadmin",
		"exp":      exp.Unix(),
	})
}

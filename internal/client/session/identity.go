package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSession      = errors.New("no session")
	ErrSessionExpired = errors.New("session expired")
	ErrMalformedToken = errors.New("malformed token")
)

// Identity is the operator as described by the token payload.
type Identity struct {
	ID        string
	Username  string
	Email     string
	Role      string
	ExpiresAt time.Time
}

func (i Identity) String() string {
	return fmt.Sprintf("%s <%s> role=%s", i.Username, i.Email, i.Role)
}

// Session pairs the raw token with its decoded identity.
type Session struct {
	Token    string
	Identity Identity
}

// flexibleID accepts both "id": 12 and "id": "12".
type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

type claims struct {
	UserID   flexibleID `json:"id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	jwt.RegisteredClaims
}

// Decode reads the identity out of token without verifying its signature.
// A token that does not parse or carries no exp claim is ErrMalformedToken.
func Decode(token string) (Identity, error) {
	if strings.TrimSpace(token) == "" {
		return Identity{}, ErrMalformedToken
	}

	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if c.ExpiresAt == nil {
		return Identity{}, fmt.Errorf("%w: no exp claim", ErrMalformedToken)
	}

	return Identity{
		ID:        string(c.UserID),
		Username:  c.Username,
		Email:     c.Email,
		Role:      c.Role,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

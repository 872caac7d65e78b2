package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/renewadmin/internal/client/client"
	"github.com/dmitrijs2005/renewadmin/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token and start the local session.
//   - Logout: drop the local session. The backend keeps no logout state.
//   - WhoAmI: the current session, validated against the clock.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*session.Session, error)
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (*session.Session, error)
}

// SessionKeeper is the part of session.Guard the auth service drives.
type SessionKeeper interface {
	Start(ctx context.Context, token string) (*session.Session, error)
	End(ctx context.Context) error
	Check(ctx context.Context) (*session.Session, error)
}

type authService struct {
	fetcher client.Fetcher
	keeper  SessionKeeper
}

func NewAuthService(fetcher client.Fetcher, keeper SessionKeeper) AuthService {
	return &authService{fetcher: fetcher, keeper: keeper}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*session.Session, error) {
	token, err := a.fetcher.Login(ctx, username, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	s, err := a.keeper.Start(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("session error: %w", err)
	}
	return s, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.keeper.End(ctx)
}

func (a *authService) WhoAmI(ctx context.Context) (*session.Session, error) {
	return a.keeper.Check(ctx)
}

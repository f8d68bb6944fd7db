package local

import (
	"context"
	"talk/domain"
	"talk/services"
)

// AuthBackend calls the auth service directly.
type AuthBackend struct {
	auth services.IAuthService
}

func NewAuthBackend(auth services.IAuthService) *AuthBackend {
	return &AuthBackend{auth: auth}
}

func (a *AuthBackend) SignInWithPassword(ctx context.Context, email, password string) (domain.AuthSession, error) {
	return a.auth.SignInWithPassword(ctx, email, password)
}

func (a *AuthBackend) CreateAccount(ctx context.Context, email, password string) (domain.AuthSession, error) {
	return a.auth.CreateAccount(ctx, email, password)
}

func (a *AuthBackend) UpdateProfile(ctx context.Context, token, displayName string) (domain.Identity, error) {
	caller, err := a.auth.VerifySession(ctx, token)
	if err != nil {
		return domain.Identity{}, err
	}
	return a.auth.UpdateProfile(ctx, caller.ID, displayName)
}

func (a *AuthBackend) SignInAnonymously(ctx context.Context) (domain.AuthSession, error) {
	return a.auth.SignInAnonymously(ctx)
}

func (a *AuthBackend) SignInWithCustomToken(ctx context.Context, customToken string) (domain.AuthSession, error) {
	return a.auth.SignInWithCustomToken(ctx, customToken)
}

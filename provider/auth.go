// Package provider adapts a remote or embedded backend to the auth and
// document collaborators the screens depend on.
package provider

import (
	"context"
	"log/slog"
	"sync"
	"talk/contract"
	"talk/domain"
	"talk/errors"
)

// Auth holds the current session and broadcasts auth state changes.
type Auth struct {
	log      *slog.Logger
	backend  contract.IAuthBackend
	notifyMu sync.Mutex // serializes deliveries so listeners see changes in order
	mu       sync.Mutex
	session  *domain.AuthSession
	nextID   int
	watchers map[int]func(identity *domain.Identity)
}

func NewAuth(log *slog.Logger, backend contract.IAuthBackend) *Auth {
	return &Auth{log: log, backend: backend, watchers: make(map[int]func(*domain.Identity))}
}

func (a *Auth) SignInWithPassword(ctx context.Context, email, password string) (domain.Identity, error) {
	return a.signIn(a.backend.SignInWithPassword(ctx, email, password))
}

func (a *Auth) CreateAccount(ctx context.Context, email, password string) (domain.Identity, error) {
	return a.signIn(a.backend.CreateAccount(ctx, email, password))
}

func (a *Auth) SignInAnonymously(ctx context.Context) (domain.Identity, error) {
	return a.signIn(a.backend.SignInAnonymously(ctx))
}

func (a *Auth) SignInWithCustomToken(ctx context.Context, token string) (domain.Identity, error) {
	return a.signIn(a.backend.SignInWithCustomToken(ctx, token))
}

// UpdateProfile sets the display name of the signed-in identity and
// notifies the listeners with the updated identity.
func (a *Auth) UpdateProfile(ctx context.Context, displayName string) (domain.Identity, error) {
	token := a.Token()
	if token == "" {
		return domain.Identity{}, errors.ErrNoSession
	}
	identity, err := a.backend.UpdateProfile(ctx, token, displayName)
	if err != nil {
		return domain.Identity{}, err
	}
	a.setSession(&domain.AuthSession{Token: token, Identity: identity})
	return identity, nil
}

// SignOut drops the session. Tokens are stateless, the backend is not called.
func (a *Auth) SignOut(_ context.Context) error {
	a.setSession(nil)
	return nil
}

// OnAuthStateChanged calls fn with the current identity right away, then on
// every change. fn must not call back into Auth.
func (a *Auth) OnAuthStateChanged(fn func(identity *domain.Identity)) contract.Unsubscribe {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.watchers[id] = fn
	current := identityOf(a.session)
	a.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.watchers, id)
			a.mu.Unlock()
		})
	}
}

// Token returns the bearer token of the current session, empty when signed out.
func (a *Auth) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return ""
	}
	return a.session.Token
}

func (a *Auth) signIn(session domain.AuthSession, err error) (domain.Identity, error) {
	if err != nil {
		return domain.Identity{}, err
	}
	a.setSession(&session)
	a.log.Info("Signed in", "user_id", session.Identity.ID, "anonymous", session.Identity.IsAnonymous)
	return session.Identity, nil
}

func (a *Auth) setSession(session *domain.AuthSession) {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	a.mu.Lock()
	a.session = session
	watchers := make([]func(*domain.Identity), 0, len(a.watchers))
	for _, fn := range a.watchers {
		watchers = append(watchers, fn)
	}
	a.mu.Unlock()

	for _, fn := range watchers {
		fn(identityOf(session))
	}
}

func identityOf(session *domain.AuthSession) *domain.Identity {
	if session == nil {
		return nil
	}
	identity := session.Identity
	return &identity
}

// Package credentials backs the sign-in screen: it submits email and
// password or guest sign-ins to the auth provider and turns failures into
// one displayable message.
package credentials

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"talk/contract"
)

type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

func (m Mode) String() string {
	if m == ModeRegister {
		return "register"
	}
	return "login"
}

// Form holds the screen state. Submissions block on the provider; while
// one is in flight further submissions are ignored.
type Form struct {
	log     *slog.Logger
	auth    contract.IAuthProvider
	mu      sync.Mutex
	mode    Mode
	busy    bool
	failure *AuthFailure
}

func NewForm(log *slog.Logger, auth contract.IAuthProvider) *Form {
	return &Form{log: log, auth: auth}
}

// SubmitCredentials signs in, or registers and then sets the display
// name when one is given. The returned error is nil or an *AuthFailure.
func (f *Form) SubmitCredentials(ctx context.Context, mode Mode, email, password, displayName string) error {
	if !f.begin() {
		return nil
	}
	var err error
	switch mode {
	case ModeRegister:
		err = f.register(ctx, email, password, displayName)
	default:
		_, err = f.auth.SignInWithPassword(ctx, email, password)
	}
	if err != nil {
		f.log.Debug("Credential submission failed", "mode", mode.String(), "error", err)
		return f.end(MapAuthError(err))
	}
	return f.end(nil)
}

// SubmitAnonymous signs in as a guest. An unclassified failure is shown
// with the guest message.
func (f *Form) SubmitAnonymous(ctx context.Context) error {
	if !f.begin() {
		return nil
	}
	if _, err := f.auth.SignInAnonymously(ctx); err != nil {
		f.log.Debug("Anonymous sign in failed", "error", err)
		failure := MapAuthError(err)
		if failure.Kind == Unknown {
			failure.Message = messageGuestFailed
		}
		return f.end(failure)
	}
	return f.end(nil)
}

// ToggleMode switches between login and register and clears the message.
func (f *Form) ToggleMode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == ModeLogin {
		f.mode = ModeRegister
	} else {
		f.mode = ModeLogin
	}
	f.failure = nil
	return f.mode
}

func (f *Form) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *Form) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// Message is the error currently shown, empty when there is none.
func (f *Form) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failure == nil {
		return ""
	}
	return f.failure.Message
}

func (f *Form) register(ctx context.Context, email, password, displayName string) error {
	if _, err := f.auth.CreateAccount(ctx, email, password); err != nil {
		return err
	}
	if name := strings.TrimSpace(displayName); name != "" {
		if _, err := f.auth.UpdateProfile(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (f *Form) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return false
	}
	f.busy = true
	f.failure = nil
	return true
}

func (f *Form) end(failure *AuthFailure) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	f.failure = failure
	if failure == nil {
		return nil
	}
	return failure
}

package domain

// SessionStatus is the process-wide auth state machine:
// Initializing -> {Unauthenticated, Authenticated}, then back and forth
// on sign-in and sign-out. There is no terminal state.
type SessionStatus int

const (
	StatusInitializing SessionStatus = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// SessionState is what the session gate exposes to the screens.
type SessionState struct {
	Identity *Identity
	Loading  bool
}

func (s SessionState) Status() SessionStatus {
	switch {
	case s.Loading:
		return StatusInitializing
	case s.Identity == nil:
		return StatusUnauthenticated
	}
	return StatusAuthenticated
}

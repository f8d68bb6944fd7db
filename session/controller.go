// Package session gates the screens on the auth state: it tells whether the
// client is still initializing, signed out or signed in, and as whom.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"talk/contract"
	"talk/domain"
	"talk/errors"
)

type Controller struct {
	log          *slog.Logger
	auth         contract.IAuthProvider
	loop         contract.IEventLoop
	initialToken string
	startOnce    sync.Once
	mu           sync.Mutex
	state        domain.SessionState
	unsubscribe  contract.Unsubscribe
	stopped      bool
	watchers     map[int]func(domain.SessionState)
	nextID       int
}

// NewController builds a gate in the Initializing state. A non empty
// initialToken is exchanged for a session on Start.
func NewController(log *slog.Logger, auth contract.IAuthProvider, loop contract.IEventLoop, initialToken string) *Controller {
	return &Controller{
		log:          log,
		auth:         auth,
		loop:         loop,
		initialToken: initialToken,
		state:        domain.SessionState{Loading: true},
		watchers:     make(map[int]func(domain.SessionState)),
	}
}

// Start exchanges the initial token, if any, then follows the provider's
// auth state. Only the first call does anything.
func (c *Controller) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		if c.initialToken != "" {
			if _, err := c.auth.SignInWithCustomToken(ctx, c.initialToken); err != nil {
				c.log.Debug("Initial token exchange failed", "error", fmt.Errorf("%w: %w", errors.ErrLogin, err))
			}
		}
		unsubscribe := c.auth.OnAuthStateChanged(func(identity *domain.Identity) {
			c.loop.Post(func() { c.apply(identity) })
		})
		c.mu.Lock()
		stopped := c.stopped
		if !stopped {
			c.unsubscribe = unsubscribe
		}
		c.mu.Unlock()
		if stopped {
			unsubscribe()
			return
		}
		c.log.Info("Session gate started")
	})
}

func (c *Controller) State() domain.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Watch registers fn for every state change. fn runs on the event loop.
func (c *Controller) Watch(fn func(state domain.SessionState)) contract.Unsubscribe {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.watchers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.watchers, id)
		c.mu.Unlock()
	}
}

// SignOut ends the session. The new state arrives through the provider.
func (c *Controller) SignOut(ctx context.Context) error {
	return c.auth.SignOut(ctx)
}

// Stop unsubscribes from the provider. Watchers get no further state.
func (c *Controller) Stop() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.stopped = true
	c.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (c *Controller) apply(identity *domain.Identity) {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.state = domain.SessionState{Identity: identity}
	state := c.state
	watchers := make([]func(domain.SessionState), 0, len(c.watchers))
	for _, fn := range c.watchers {
		watchers = append(watchers, fn)
	}
	c.mu.Unlock()

	c.log.Debug("Auth state changed", "status", state.Status().String())
	for _, fn := range watchers {
		fn(state)
	}
}

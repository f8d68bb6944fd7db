//go:generate go run go.uber.org/mock/mockgen -source=shell.go -destination=../mocks/mock_view.go -package=mocks
package shell

import (
	"context"
	"log/slog"
	"sync"
	"talk/contract"
	"talk/credentials"
	"talk/domain"
	"talk/feed"
	"talk/projection"
	"talk/session"
)

type Screen int

const (
	ScreenLoading Screen = iota
	ScreenCredentials
	ScreenFeed
)

func (s Screen) String() string {
	switch s {
	case ScreenCredentials:
		return "credentials"
	case ScreenFeed:
		return "feed"
	}
	return "loading"
}

// View renders the screen the shell selected. Calls come from the event loop.
type View interface {
	ShowLoading()
	ShowCredentials(mode credentials.Mode, message string, busy bool)
	ShowFeed(identity domain.Identity, timeline *projection.Timeline, update projection.Update)
}

// Shell shows exactly one screen for the current session state and owns
// the feed subscription while the feed screen is up.
type Shell struct {
	log       *slog.Logger
	gate      *session.Controller
	form      *credentials.Form
	feed      *feed.Feed
	loop      contract.IEventLoop
	view      View
	mu        sync.Mutex
	screen    Screen
	identity  *domain.Identity
	closeFeed contract.Unsubscribe
	stopGate  contract.Unsubscribe
	stopped   bool
}

func NewShell(log *slog.Logger, gate *session.Controller, form *credentials.Form, feed *feed.Feed, loop contract.IEventLoop, view View) *Shell {
	return &Shell{log: log, gate: gate, form: form, feed: feed, loop: loop, view: view}
}

// Start renders the loading screen and follows the session gate.
func (s *Shell) Start(ctx context.Context) {
	s.loop.Post(s.view.ShowLoading)
	stop := s.gate.Watch(s.onSessionState)
	s.mu.Lock()
	s.stopGate = stop
	s.mu.Unlock()
	s.gate.Start(ctx)
}

func (s *Shell) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// Mode is the current mode of the credential form.
func (s *Shell) Mode() credentials.Mode { return s.form.Mode() }

// SubmitCredentials blocks until the provider answers. Call it off the loop.
func (s *Shell) SubmitCredentials(ctx context.Context, email, password, displayName string) {
	if s.form.Busy() {
		return
	}
	s.loop.Post(s.renderBusy)
	_ = s.form.SubmitCredentials(ctx, s.form.Mode(), email, password, displayName)
	s.loop.Post(s.renderCredentials)
}

// SubmitAnonymous blocks until the provider answers. Call it off the loop.
func (s *Shell) SubmitAnonymous(ctx context.Context) {
	if s.form.Busy() {
		return
	}
	s.loop.Post(s.renderBusy)
	_ = s.form.SubmitAnonymous(ctx)
	s.loop.Post(s.renderCredentials)
}

func (s *Shell) ToggleMode() {
	s.form.ToggleMode()
	s.loop.Post(s.renderCredentials)
}

// Send posts text as the signed-in identity. Failures are logged by the
// feed and not shown.
func (s *Shell) Send(ctx context.Context, text string) {
	identity := s.gate.State().Identity
	if identity == nil {
		return
	}
	_ = s.feed.Send(ctx, *identity, text)
}

func (s *Shell) SignOut(ctx context.Context) {
	if err := s.gate.SignOut(ctx); err != nil {
		s.log.Error("Sign out failed", "error", err)
	}
}

// Stop tears the feed subscription and the gate down. It does not go
// through the event loop, which may already be stopped.
func (s *Shell) Stop() {
	s.mu.Lock()
	s.stopped = true
	stop := s.stopGate
	s.mu.Unlock()
	if stop != nil {
		stop()
	}
	s.gate.Stop()
	s.leaveFeed()
}

func (s *Shell) onSessionState(state domain.SessionState) {
	s.mu.Lock()
	stopped := s.stopped
	s.mu.Unlock()
	if stopped {
		return
	}
	switch state.Status() {
	case domain.StatusInitializing:
		s.leaveFeed()
		s.setScreen(ScreenLoading)
		s.view.ShowLoading()
	case domain.StatusUnauthenticated:
		s.leaveFeed()
		s.setScreen(ScreenCredentials)
		s.renderCredentials()
	case domain.StatusAuthenticated:
		s.enterFeed(*state.Identity)
	}
}

func (s *Shell) enterFeed(identity domain.Identity) {
	s.mu.Lock()
	same := s.screen == ScreenFeed && s.identity != nil && s.identity.ID == identity.ID
	if same {
		s.identity = &identity
	}
	s.mu.Unlock()
	if same {
		return
	}

	s.leaveFeed()
	timeline := projection.NewTimeline(identity.ID)
	s.mu.Lock()
	s.screen = ScreenFeed
	s.identity = &identity
	s.mu.Unlock()

	s.view.ShowFeed(identity, timeline, projection.Update{})
	closeFeed := s.feed.Subscribe(func(messages []domain.Message) {
		update := timeline.Consume(messages)
		s.mu.Lock()
		current := s.identity
		s.mu.Unlock()
		if current != nil {
			s.view.ShowFeed(*current, timeline, update)
		}
	})
	s.mu.Lock()
	stopped := s.stopped
	if !stopped {
		s.closeFeed = closeFeed
	}
	s.mu.Unlock()
	if stopped {
		closeFeed()
		return
	}
	s.log.Info("Feed opened", "user_id", identity.ID, "path", s.feed.Path())
}

func (s *Shell) leaveFeed() {
	s.mu.Lock()
	closeFeed := s.closeFeed
	s.closeFeed = nil
	if closeFeed != nil {
		s.identity = nil
	}
	s.mu.Unlock()
	if closeFeed == nil {
		return
	}
	closeFeed()
	s.log.Info("Feed closed")
}

func (s *Shell) renderCredentials() {
	if s.Screen() != ScreenCredentials {
		return
	}
	s.view.ShowCredentials(s.form.Mode(), s.form.Message(), s.form.Busy())
}

// renderBusy shows the form disabled with the previous message cleared,
// as the submission about to start does.
func (s *Shell) renderBusy() {
	if s.Screen() != ScreenCredentials {
		return
	}
	s.view.ShowCredentials(s.form.Mode(), "", true)
}

func (s *Shell) setScreen(screen Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = screen
}

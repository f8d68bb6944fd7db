// Package ui renders the shell in a terminal, one line per message, and
// reads commands and messages from standard input.
package ui

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"talk/credentials"
	"talk/domain"
	"talk/projection"
	"talk/shell"

	"github.com/samber/lo"
	"golang.org/x/term"
)

// readPassword is replaced in tests to keep away from the terminal.
var readPassword = term.ReadPassword

const (
	defaultWidth  = 80
	pendingMarker = " …"
	clearScreen   = "\033[H\033[2J"
)

// Controls is what the terminal drives on user input.
type Controls interface {
	Screen() shell.Screen
	Mode() credentials.Mode
	SubmitCredentials(ctx context.Context, email, password, displayName string)
	SubmitAnonymous(ctx context.Context)
	ToggleMode()
	Send(ctx context.Context, text string)
	SignOut(ctx context.Context)
}

// Terminal implements shell.View on a line based terminal.
type Terminal struct {
	out    io.Writer
	in     *bufio.Reader
	fd     int
	width  int
	theme  Theme
	mu     sync.Mutex
	screen shell.Screen
	// header and lines are what the feed screen currently shows.
	header string
	lines  []string
}

// NewTerminal reads from in and writes to out. Passwords are read without
// echo when in is an interactive terminal.
func NewTerminal(in io.Reader, out io.Writer, theme Theme) *Terminal {
	t := &Terminal{out: out, in: bufio.NewReader(in), fd: -1, width: defaultWidth, theme: theme, screen: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())
		if w, _, err := term.GetSize(t.fd); err == nil && w > 0 {
			t.width = w
		}
	}
	return t
}

func (t *Terminal) ShowLoading() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen = shell.ScreenLoading
	t.lines = nil
	t.println(t.theme.paint(t.theme.Muted, "Connecting..."))
}

func (t *Terminal) ShowCredentials(mode credentials.Mode, message string, busy bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen = shell.ScreenCredentials
	t.lines = nil
	title := "Sign in"
	toggle := "no account yet? type toggle to register"
	if mode == credentials.ModeRegister {
		title = "Create account"
		toggle = "already registered? type toggle to sign in"
	}
	t.println(t.theme.paint(t.theme.Header, fmt.Sprintf(" ====== %s ====== ", title)))
	switch {
	case busy:
		t.println(t.theme.paint(t.theme.Muted, "Please wait..."))
	case message != "":
		t.println(t.theme.paint(t.theme.Error, message))
	}
	if !busy {
		t.println(t.theme.paint(t.theme.Muted, "Commands: signin, guest, toggle, quit ("+toggle+")"))
	}
}

// ShowFeed renders the whole timeline in order. New messages at the end
// are appended, any other change redraws the feed.
func (t *Terminal) ShowFeed(identity domain.Identity, timeline *projection.Timeline, _ projection.Update) {
	t.mu.Lock()
	defer t.mu.Unlock()
	header := fmt.Sprintf(" ====== Feed (%s) ====== ", identity.SenderName())
	lines := lo.Map(timeline.Messages, func(m domain.Message, _ int) string {
		return t.formatMessage(timeline, m)
	})

	if t.screen == shell.ScreenFeed && header == t.header && isPrefix(t.lines, lines) {
		for _, line := range lines[len(t.lines):] {
			t.println(line)
		}
		t.lines = lines
		return
	}

	if t.screen == shell.ScreenFeed && t.fd >= 0 {
		_, _ = fmt.Fprint(t.out, clearScreen)
	}
	t.screen = shell.ScreenFeed
	t.header = header
	t.println(t.theme.paint(t.theme.Header, header))
	t.println(t.theme.paint(t.theme.Muted, "Type a message and press enter. Commands: /logout, /quit"))
	for _, line := range lines {
		t.println(line)
	}
	t.lines = lines
}

func isPrefix(prefix, lines []string) bool {
	if len(prefix) > len(lines) {
		return false
	}
	for i := range prefix {
		if prefix[i] != lines[i] {
			return false
		}
	}
	return true
}

// Run reads input until quit, end of input or ctx is done.
func (t *Terminal) Run(ctx context.Context, controls Controls) error {
	for ctx.Err() == nil {
		line, err := t.readLine()
		if err != nil {
			if stderrors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		command := strings.TrimSpace(line)
		if command == "quit" || command == "/quit" {
			return nil
		}

		switch controls.Screen() {
		case shell.ScreenCredentials:
			if err := t.credentialCommand(ctx, controls, command); err != nil {
				if stderrors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		case shell.ScreenFeed:
			switch command {
			case "/logout":
				controls.SignOut(ctx)
			case "/help":
				t.print(t.theme.paint(t.theme.Muted, "Commands: /logout, /quit\n"))
			default:
				controls.Send(ctx, line)
			}
		}
	}
	return nil
}

func (t *Terminal) credentialCommand(ctx context.Context, controls Controls, command string) error {
	switch command {
	case "signin":
		email, err := t.prompt("Email: ")
		if err != nil {
			return err
		}
		password, err := t.promptPassword("Password: ")
		if err != nil {
			return err
		}
		var displayName string
		if controls.Mode() == credentials.ModeRegister {
			if displayName, err = t.prompt("Display name (optional): "); err != nil {
				return err
			}
		}
		controls.SubmitCredentials(ctx, strings.TrimSpace(email), password, displayName)
	case "guest":
		controls.SubmitAnonymous(ctx)
	case "toggle":
		controls.ToggleMode()
	case "":
	default:
		t.print(t.theme.paint(t.theme.Muted, "Unknown command, try signin, guest, toggle or quit\n"))
	}
	return nil
}

func (t *Terminal) formatMessage(timeline *projection.Timeline, m domain.Message) string {
	text := m.Text
	if m.Pending() {
		text += pendingMarker
	}
	if timeline.IsOwn(m) {
		pad := t.width - len([]rune(text))
		if pad < 0 {
			pad = 0
		}
		return strings.Repeat(" ", pad) + t.theme.paint(t.theme.Own, text)
	}
	return t.theme.paint(t.theme.Other, m.SenderName+": ") + text
}

func (t *Terminal) prompt(label string) (string, error) {
	t.print(label)
	line, err := t.readLine()
	return strings.TrimSpace(line), err
}

func (t *Terminal) promptPassword(label string) (string, error) {
	if t.fd < 0 {
		line, err := t.prompt(label)
		return line, err
	}
	t.print(label)
	password, err := readPassword(t.fd)
	t.print("\n")
	if err != nil {
		return "", err
	}
	return string(password), nil
}

// readLine returns the line without its line terminator. A last line
// without terminator is returned before io.EOF.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && !(stderrors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) print(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprint(t.out, text)
}

// println must be called with t.mu held.
func (t *Terminal) println(text string) {
	_, _ = fmt.Fprintln(t.out, text)
}

// Package domain contains core concepts of the chat client.
// This file defines the Identity issued by the auth provider.
// Identities are read-only to the client.
package domain

import "strings"

// Identity is the authenticated or anonymous principal using the client.
type Identity struct {
	ID          string
	DisplayName string
	Email       string
	IsAnonymous bool
}

// AuthSession is what the auth provider hands back on a successful sign-in:
// the identity and the bearer token for later calls.
type AuthSession struct {
	Token    string
	Identity Identity
}

const (
	anonymousPrefix = "anon_"
	fallbackPrefix  = "user_"
	shortIDLength   = 4
)

// SenderName derives the name stamped on outgoing messages.
// Priority: explicit display name, then "anon_" plus the first four
// characters of the id for anonymous identities, then the local part of
// the email. An identity with none of those gets "user_" plus the short id.
func (i Identity) SenderName() string {
	if name := strings.TrimSpace(i.DisplayName); name != "" {
		return name
	}
	if i.IsAnonymous {
		return anonymousPrefix + shortID(i.ID)
	}
	if local, _, _ := strings.Cut(i.Email, "@"); local != "" {
		return local
	}
	return fallbackPrefix + shortID(i.ID)
}

func shortID(id string) string {
	r := []rune(id)
	if len(r) > shortIDLength {
		r = r[:shortIDLength]
	}
	return string(r)
}

// Package domain contains core concepts of the chat client.
// This file defines Message events and their display order.
// Messages are immutable and append-only.
package domain

import (
	"sort"
	"time"
)

// Document fields of a stored message.
const (
	FieldText       = "text"
	FieldSenderID   = "senderId"
	FieldSenderName = "senderName"
	FieldCreatedAt  = "createdAt"
)

// Message represents an immutable chat entry.
// CreatedAt is nil while the server timestamp is still pending.
type Message struct {
	ID         string
	Text       string
	SenderID   string
	SenderName string
	CreatedAt  *time.Time
}

// SortKey is the display ordering key: unix nanoseconds of CreatedAt,
// 0 when the timestamp is missing.
func (m Message) SortKey() int64 {
	if m.CreatedAt == nil {
		return 0
	}
	return m.CreatedAt.UnixNano()
}

// Pending reports whether the server has not stamped the message yet.
func (m Message) Pending() bool {
	return m.CreatedAt == nil
}

// SortMessages returns a copy of messages ordered by CreatedAt ascending.
// The sort is stable, so equal keys keep the backend order.
func SortMessages(messages []Message) []Message {
	sorted := make([]Message, len(messages))
	copy(sorted, messages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortKey() < sorted[j].SortKey()
	})
	return sorted
}

// MessageFromDocument decodes a stored document. Unknown or mistyped
// fields decode to their zero value.
func MessageFromDocument(doc Document) Message {
	return Message{
		ID:         doc.ID,
		Text:       doc.StringField(FieldText),
		SenderID:   doc.StringField(FieldSenderID),
		SenderName: doc.StringField(FieldSenderName),
		CreatedAt:  doc.TimeField(FieldCreatedAt),
	}
}

// Package feed is the shared message feed: a live sorted view of the
// partition's messages and the send action.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"talk/contract"
	"talk/domain"

	"github.com/samber/lo"
)

type SendErrorKind int

const (
	SendErrorTransient SendErrorKind = iota
)

// SendError reports a message the backend did not accept.
type SendError struct {
	Kind SendErrorKind
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send failed: %v", e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

type Feed struct {
	log   *slog.Logger
	store contract.IMessageStore
	loop  contract.IEventLoop
	path  string
}

// NewFeed binds the feed to the messages collection of partition.
func NewFeed(log *slog.Logger, store contract.IMessageStore, loop contract.IEventLoop, partition string) *Feed {
	return &Feed{log: log, store: store, loop: loop, path: domain.MessagesPath(partition)}
}

func (f *Feed) Path() string { return f.path }

// Subscribe calls onUpdate on the event loop with every change of the
// collection, sorted by creation time. Once the returned function has
// run on the loop, onUpdate is not called again.
func (f *Feed) Subscribe(onUpdate func(messages []domain.Message)) contract.Unsubscribe {
	var closed atomic.Bool
	unsubscribe := f.store.OnSnapshot(f.path,
		func(docs []domain.Document) {
			messages := domain.SortMessages(lo.Map(docs, func(doc domain.Document, _ int) domain.Message {
				return domain.MessageFromDocument(doc)
			}))
			f.loop.Post(func() {
				if !closed.Load() {
					onUpdate(messages)
				}
			})
		},
		func(err error) {
			f.log.Error("Message subscription failed", "path", f.path, "error", err)
		})

	return func() {
		if closed.CompareAndSwap(false, true) {
			unsubscribe()
		}
	}
}

// Send appends text as a message from identity. Blank text is ignored.
// The text is stored as typed, surrounding spaces included.
func (f *Feed) Send(ctx context.Context, identity domain.Identity, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	id, err := f.store.AppendDocument(ctx, f.path, map[string]any{
		domain.FieldText:       text,
		domain.FieldSenderID:   identity.ID,
		domain.FieldSenderName: identity.SenderName(),
		domain.FieldCreatedAt:  domain.ServerTimestamp,
	})
	if err != nil {
		f.log.Error("Send failed", "path", f.path, "sender_id", identity.ID, "error", err)
		return &SendError{Kind: SendErrorTransient, Err: err}
	}
	f.log.Debug("Message sent", "id", id, "sender_id", identity.ID)
	return nil
}

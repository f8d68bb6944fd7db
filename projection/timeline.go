// Package projection builds local timelines from observed snapshots.
// Handles ordering, deduplication, and the scroll anchor.
// Does not emit events or interact with UI directly.
package projection

import (
	"talk/domain"
)

// Timeline holds the feed as last delivered, from the point of view of Owner.
type Timeline struct {
	Owner    string
	Messages []domain.Message
	seen     map[string]struct{}
}

// Update describes what a snapshot changed. Anchor is the newest message,
// the one the view scrolls to, set only when something was added.
type Update struct {
	Added  []domain.Message
	Anchor *domain.Message
}

func NewTimeline(owner string) *Timeline {
	return &Timeline{
		Owner: owner,
		seen:  make(map[string]struct{}),
	}
}

// Consume replaces the timeline with a sorted snapshot and reports the
// messages not seen before. A pending message confirmed by the server is
// not reported twice.
func (t *Timeline) Consume(messages []domain.Message) Update {
	var update Update
	for _, m := range messages {
		if _, ok := t.seen[m.ID]; ok {
			continue
		}
		t.seen[m.ID] = struct{}{}
		update.Added = append(update.Added, m)
	}
	t.Messages = messages
	if len(update.Added) > 0 && len(messages) > 0 {
		newest := messages[len(messages)-1]
		update.Anchor = &newest
	}
	return update
}

// IsOwn reports whether m was sent by the timeline owner.
func (t *Timeline) IsOwn(m domain.Message) bool {
	return t.Owner != "" && m.SenderID == t.Owner
}

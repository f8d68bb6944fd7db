package sink

import "talk/domain"

// Watermark remembers how many documents a subscriber was last sent.
// Collections are append-only, so a snapshot with fewer documents was
// listed before one already delivered and must be skipped.
type Watermark struct {
	delivered int
}

// Admit reports whether docs may be delivered and records them when so.
func (w *Watermark) Admit(docs []domain.Document) bool {
	if len(docs) < w.delivered {
		return false
	}
	w.delivered = len(docs)
	return true
}

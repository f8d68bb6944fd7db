package domain

import (
	"fmt"
	"strings"
	"time"
)

// Document is a schemaless record of a collection. Field values are the
// JSON-like types a structpb.Struct can carry: string, float64, bool,
// nil, []any and map[string]any. Timestamps are unix milliseconds.
type Document struct {
	ID     string
	Fields map[string]any
}

// serverTimestamp is a placeholder the store replaces with its own clock.
type serverTimestamp struct{}

// ServerTimestamp marks a field to be filled with the server time on append.
var ServerTimestamp = serverTimestamp{}

// IsServerTimestamp reports whether v is the ServerTimestamp placeholder.
func IsServerTimestamp(v any) bool {
	_, ok := v.(serverTimestamp)
	return ok
}

func (d Document) StringField(field string) string {
	s, _ := d.Fields[field].(string)
	return s
}

// TimeField decodes a millisecond timestamp field. Missing or non-numeric values give nil.
func (d Document) TimeField(field string) *time.Time {
	ms, ok := d.Fields[field].(float64)
	if !ok {
		return nil
	}
	t := time.UnixMilli(int64(ms)).UTC()
	return &t
}

// TimestampValue encodes t the way documents store timestamps.
func TimestampValue(t time.Time) float64 {
	return float64(t.UnixMilli())
}

const defaultPartition = "default-app-id"

// MessagesPath is the collection holding the shared feed of a partition.
// An empty partition falls back to the default application id.
func MessagesPath(partition string) string {
	if strings.TrimSpace(partition) == "" {
		partition = defaultPartition
	}
	return fmt.Sprintf("artifacts/%s/public/data/messages", partition)
}

// ValidCollectionPath accepts slash separated paths with an odd number of
// non-empty segments, the shape of a collection reference.
func ValidCollectionPath(path string) bool {
	if path == "" {
		return false
	}
	segments := strings.Split(path, "/")
	if len(segments)%2 == 0 {
		return false
	}
	for _, s := range segments {
		if strings.TrimSpace(s) == "" || strings.Contains(s, ":") {
			return false
		}
	}
	return true
}

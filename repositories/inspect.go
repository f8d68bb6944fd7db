package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Record kinds reported by Inspect.
const (
	KindUser       = "USER"
	KindEmailIndex = "EMAIL"
	KindDocument   = "DOCUMENT"
	KindUnknown    = "UNKNOWN"
)

// Record describes a stored entry for the inspection tools. Password
// hashes are never included.
type Record struct {
	Key       string
	Kind      string
	EntityID  string
	Namespace string
	Detail    string
	Timestamp time.Time
}

// Inspect decodes a raw key/value pair of the store.
func Inspect(key string, val []byte) Record {
	record := Record{Key: key, Kind: KindUnknown, Detail: fmt.Sprintf("%d bytes", len(val))}
	switch {
	case strings.HasPrefix(key, "user:"):
		fields, err := decodeRecord(val)
		if err != nil {
			record.Detail = err.Error()
			return record
		}
		user := toUser(fields)
		record.Kind, record.EntityID, record.Timestamp = KindUser, user.ID, user.CreatedAt
		record.Detail = user.Email
		if user.Anonymous {
			record.Detail = "anonymous"
		}
		if user.DisplayName != "" {
			record.Detail += " (" + user.DisplayName + ")"
		}
	case strings.HasPrefix(key, "email:"):
		record.Kind, record.EntityID = KindEmailIndex, string(val)
		record.Detail = strings.TrimPrefix(key, "email:")
	case strings.HasPrefix(key, "doc:"):
		fields, err := decodeRecord(val)
		if err != nil {
			record.Detail = err.Error()
			return record
		}
		path := strings.TrimPrefix(key, "doc:")
		if i := strings.LastIndex(path, "/"); i >= 0 {
			record.Namespace, record.EntityID = path[:i], path[i+1:]
		}
		record.Kind = KindDocument
		record.Detail = describeFields(fields)
		if ms, ok := fields["createdAt"].(float64); ok {
			record.Timestamp = time.UnixMilli(int64(ms)).UTC()
		}
	}
	return record
}

// InspectAll walks every key starting with prefix. An empty prefix walks
// the whole store.
func InspectAll(db *badger.DB, prefix string) ([]Record, error) {
	var records []Record
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			item := it.Item()
			key := string(item.KeyCopy(nil))
			if err := item.Value(func(val []byte) error {
				records = append(records, Inspect(key, val))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}

func describeFields(fields map[string]any) string {
	if text, ok := fields["text"].(string); ok {
		if sender, ok := fields["senderName"].(string); ok && sender != "" {
			return sender + ": " + text
		}
		return text
	}
	return fmt.Sprintf("%d fields", len(fields))
}

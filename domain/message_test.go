package domain

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestSortMessages_OrdersByCreatedAtAndKeepsTies(t *testing.T) {
	req := require.New(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	later := base.Add(time.Second)

	// Given messages out of order, two of them sharing a timestamp
	messages := []Message{
		{ID: "c", CreatedAt: &later},
		{ID: "a", CreatedAt: &base},
		{ID: "pending"},
		{ID: "b", CreatedAt: &base},
	}

	// When they are sorted
	sorted := SortMessages(messages)

	// Then pending comes first and ties keep their order
	req.Equal([]string{"pending", "a", "b", "c"}, lo.Map(sorted, func(m Message, _ int) string { return m.ID }))
	// And the input is left untouched
	req.Equal("c", messages[0].ID)
}

func TestMessageFromDocument(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	msg := MessageFromDocument(Document{ID: "m1", Fields: map[string]any{
		FieldText:       "hello",
		FieldSenderID:   "u1",
		FieldSenderName: "Ada",
		FieldCreatedAt:  TimestampValue(at),
	}})

	req.Equal("m1", msg.ID)
	req.Equal("hello", msg.Text)
	req.Equal("u1", msg.SenderID)
	req.Equal("Ada", msg.SenderName)
	req.NotNil(msg.CreatedAt)
	req.True(at.Equal(*msg.CreatedAt))
	req.False(msg.Pending())
}

func TestMessageFromDocument_MistypedFieldsAreZero(t *testing.T) {
	req := require.New(t)

	msg := MessageFromDocument(Document{ID: "m1", Fields: map[string]any{
		FieldText:      42.0,
		FieldCreatedAt: "yesterday",
	}})

	req.Empty(msg.Text)
	req.True(msg.Pending())
	req.Equal(int64(0), msg.SortKey())
}

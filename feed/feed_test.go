package feed

import (
	"context"
	"log/slog"
	"talk/contract"
	"talk/domain"
	"talk/errors"
	"talk/mocks"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const messagesPath = "artifacts/talk-test/public/data/messages"

type inlineLoop struct{}

func (inlineLoop) Post(fn func()) { fn() }

func newFeed(t *testing.T) (*Feed, *mocks.MockIMessageStore) {
	t.Helper()
	store := mocks.NewMockIMessageStore(gomock.NewController(t))
	return NewFeed(logs.GetLoggerFromLevel(slog.LevelDebug), store, inlineLoop{}, "talk-test"), store
}

func message(id, text string, createdAt any) domain.Document {
	fields := map[string]any{domain.FieldText: text, domain.FieldSenderID: "uid-1"}
	if createdAt != nil {
		fields[domain.FieldCreatedAt] = createdAt
	}
	return domain.Document{ID: id, Fields: fields}
}

func TestFeed_Subscribe(t *testing.T) {
	t.Run("should deliver every batch sorted by creation time", func(t *testing.T) {
		req := require.New(t)
		f, store := newFeed(t)
		var push func([]domain.Document)
		var batches [][]domain.Message

		// Given
		store.EXPECT().OnSnapshot(messagesPath, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, onChange func([]domain.Document), _ func(error)) contract.Unsubscribe {
				push = onChange
				return func() {}
			})
		unsubscribe := f.Subscribe(func(messages []domain.Message) { batches = append(batches, messages) })
		defer unsubscribe()

		// When
		push([]domain.Document{
			message("c", "third", float64(3000)),
			message("a", "first", float64(1000)),
			message("p", "pending", nil),
			message("b", "tie", float64(1000)),
		})

		// Then
		req.Len(batches, 1)
		ids := []string{}
		for _, m := range batches[0] {
			ids = append(ids, m.ID)
		}
		req.Equal([]string{"p", "a", "b", "c"}, ids)
		req.True(batches[0][0].Pending())
	})

	t.Run("should stop delivering after unsubscribe", func(t *testing.T) {
		req := require.New(t)
		f, store := newFeed(t)
		var push func([]domain.Document)
		calls, unsubscribed := 0, 0

		// Given
		store.EXPECT().OnSnapshot(messagesPath, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, onChange func([]domain.Document), _ func(error)) contract.Unsubscribe {
				push = onChange
				return func() { unsubscribed++ }
			})
		unsubscribe := f.Subscribe(func([]domain.Message) { calls++ })

		// When
		unsubscribe()
		unsubscribe()
		push([]domain.Document{message("a", "late", float64(1000))})

		// Then
		req.Zero(calls)
		req.Equal(1, unsubscribed)
	})
}

func TestFeed_Send(t *testing.T) {
	ctx := context.Background()
	ada := domain.Identity{ID: "uid-1234", Email: "ada@example.com"}

	t.Run("should append the message with a server timestamp", func(t *testing.T) {
		req := require.New(t)
		f, store := newFeed(t)

		// Given
		store.EXPECT().AppendDocument(ctx, messagesPath, map[string]any{
			domain.FieldText:       " hello ",
			domain.FieldSenderID:   "uid-1234",
			domain.FieldSenderName: "ada",
			domain.FieldCreatedAt:  domain.ServerTimestamp,
		}).Return("doc-1", nil)

		// When
		err := f.Send(ctx, ada, " hello ")

		// Then
		req.NoError(err)
	})

	t.Run("should ignore blank text", func(t *testing.T) {
		req := require.New(t)
		f, _ := newFeed(t)

		// When
		err := f.Send(ctx, ada, " \t\n")

		// Then
		req.NoError(err)
	})

	t.Run("should report a transient failure", func(t *testing.T) {
		req := require.New(t)
		f, store := newFeed(t)

		// Given
		store.EXPECT().AppendDocument(ctx, messagesPath, gomock.Any()).Return("", errors.ErrUnavailable)

		// When
		err := f.Send(ctx, ada, "hello")

		// Then
		var sendErr *SendError
		req.True(errors.As(err, &sendErr))
		req.Equal(SendErrorTransient, sendErr.Kind)
		req.ErrorIs(err, errors.ErrUnavailable)
	})
}

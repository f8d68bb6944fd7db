package workers

import (
	"context"
	"log/slog"
	"talk/contract"
	"talk/domain"
	"talk/domain/event"
	"talk/errors"
	"talk/mocks"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const messagesPath = "artifacts/default-app-id/public/data/messages"

func TestEventFanout_Fanout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockRepository := mocks.NewMockIDocumentRepository(ctrl)
	mockSink1 := mocks.NewMockEventSink(ctrl)
	mockSink2 := mocks.NewMockEventSink(ctrl)

	fanout := NewEventFanout(log, mockRegistry, mockRepository, nil, time.Second)
	docs := []domain.Document{
		{ID: "a", Fields: map[string]any{domain.FieldText: "hello"}},
		{ID: "b", Fields: map[string]any{domain.FieldText: "world"}},
	}
	expected := event.Snapshot{Path: messagesPath, Documents: docs}

	// Given two sinks watch the collection
	mockRegistry.EXPECT().GetSinksForCollection(messagesPath).
		Return([]contract.EventSink{mockSink1, mockSink2}).Times(1)
	// And the collection is loaded once
	mockRepository.EXPECT().List(messagesPath).Return(docs, nil).Times(1)
	// Then both sinks receive the full snapshot
	mockSink1.EXPECT().Consume(gomock.Any(), expected).Return(nil).Times(1)
	mockSink2.EXPECT().Consume(gomock.Any(), expected).Return(nil).Times(1)

	// When a document is appended
	fanout.Fanout(context.Background(), event.DocumentAppended{Path: messagesPath, DocumentID: "b"})
	req.True(ctrl.Satisfied())
}

func TestEventFanout_NoSubscriber(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockRepository := mocks.NewMockIDocumentRepository(ctrl)

	fanout := NewEventFanout(log, mockRegistry, mockRepository, nil, time.Second)

	// Given nobody watches the collection
	mockRegistry.EXPECT().GetSinksForCollection(messagesPath).Return(nil).Times(1)
	// Then the collection is never loaded
	mockRepository.EXPECT().List(gomock.Any()).Times(0)

	fanout.Fanout(context.Background(), event.DocumentAppended{Path: messagesPath})
}

func TestEventFanout_ListFailure(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockRepository := mocks.NewMockIDocumentRepository(ctrl)
	mockSink := mocks.NewMockEventSink(ctrl)

	fanout := NewEventFanout(log, mockRegistry, mockRepository, nil, time.Second)

	mockRegistry.EXPECT().GetSinksForCollection(messagesPath).
		Return([]contract.EventSink{mockSink}).Times(1)
	// Given the store cannot be read
	mockRepository.EXPECT().List(messagesPath).Return(nil, errors.ErrUnavailable).Times(1)
	// Then no sink is consumed
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Times(0)

	fanout.Fanout(context.Background(), event.DocumentAppended{Path: messagesPath})
}

func TestEventFanout_SinkTimeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockRepository := mocks.NewMockIDocumentRepository(ctrl)
	slowSink := mocks.NewMockEventSink(ctrl)
	fastSink := mocks.NewMockEventSink(ctrl)

	fanout := NewEventFanout(log, mockRegistry, mockRepository, nil, 20*time.Millisecond)

	mockRegistry.EXPECT().GetSinksForCollection(messagesPath).
		Return([]contract.EventSink{slowSink, fastSink}).Times(1)
	mockRepository.EXPECT().List(messagesPath).Return(nil, nil).Times(1)
	// Given a sink blocking until its deadline
	slowSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ event.Snapshot) error {
			<-ctx.Done()
			return ctx.Err()
		}).Times(1)
	// Then the next sink is still served
	fastSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	start := time.Now()
	fanout.Fanout(context.Background(), event.DocumentAppended{Path: messagesPath})
	req.Less(time.Since(start), time.Second)
}

func TestEventFanout_Run(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockRepository := mocks.NewMockIDocumentRepository(ctrl)
	mockSink := mocks.NewMockEventSink(ctrl)

	events := make(chan event.DomainEvent, 1)
	fanout := NewEventFanout(log, mockRegistry, mockRepository, events, time.Second)

	consumed := make(chan struct{})
	mockRegistry.EXPECT().GetSinksForCollection(messagesPath).
		Return([]contract.EventSink{mockSink}).Times(1)
	mockRepository.EXPECT().List(messagesPath).Return(nil, nil).Times(1)
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, event.Snapshot) error {
			close(consumed)
			return nil
		}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- fanout.Run(ctx) }()

	// When an event is queued
	events <- event.DocumentAppended{Path: messagesPath}
	select {
	case <-consumed:
	case <-time.After(time.Second):
		req.Fail("Snapshot was not delivered")
	}

	// Then the worker stops cleanly on cancellation
	cancel()
	req.NoError(<-done)
}

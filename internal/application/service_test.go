package application

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/bnema/tabboard/internal/domain"
	"github.com/bnema/tabboard/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSessionDefaults(t *testing.T) {
	clock := mocks.NewMockClock(t)
	startedAt := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(startedAt)

	session := NewSession(SessionOptions{DisplayName: "  "}, clock)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, startedAt, session.StartedAt)
	assert.Equal(t, domain.ViewBoard, session.ActiveView)
	assert.Equal(t, domain.DefaultDisplayName, session.DisplayName)
	assert.Equal(t, 0, session.Board.Len())
	assert.Equal(t, 0, session.Chat.Len())
	assert.Equal(t, domain.MessageID(1), session.Board.NextID)
}

func TestNewSessionHonoursOptions(t *testing.T) {
	session := NewSession(SessionOptions{DisplayName: "ada", InitialView: domain.ViewProfile}, nil)

	assert.Equal(t, "ada", session.DisplayName)
	assert.Equal(t, domain.ViewProfile, session.ActiveView)
}

func TestServiceDispatchReturnsSnapshot(t *testing.T) {
	svc := NewService(SessionOptions{}, nil, nil)

	snapshot, err := svc.Dispatch(context.Background(),
		domain.EditBoardDraft("hello"),
		domain.SendBoard(),
		domain.SelectView(domain.ViewChat),
	)
	require.NoError(t, err)

	assert.Equal(t, domain.ViewChat, snapshot.ActiveView)
	assert.Equal(t, []domain.Message{{ID: 1, Author: "User123", Content: "hello"}}, snapshot.Board)
	assert.Empty(t, snapshot.Chat)
	assert.NotNil(t, snapshot.Chat)
	assert.Equal(t, "", snapshot.BoardDraft)
	assert.Equal(t, snapshot, svc.Snapshot())
}

func TestServiceDispatchStopsOnCancelledContext(t *testing.T) {
	svc := NewService(SessionOptions{}, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snapshot, err := svc.Dispatch(ctx, domain.SelectView(domain.ViewChat))

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.ViewBoard, snapshot.ActiveView)
}

func TestServiceSessionReturnsCopy(t *testing.T) {
	svc := NewService(SessionOptions{}, nil, nil)
	_, err := svc.Dispatch(context.Background(), domain.EditChatDraft("x"), domain.SendChat())
	require.NoError(t, err)

	session := svc.Session()
	session.Chat.Messages[0].Content = "tampered"

	assert.Equal(t, "x", svc.Snapshot().Chat[0].Content)
}

func TestServiceLogsDiscardedDraft(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := NewService(SessionOptions{}, nil, logger)

	_, err := svc.Dispatch(context.Background(), domain.EditBoardDraft("   "), domain.SendBoard())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "draft discarded")
	assert.Contains(t, buf.String(), "thread=board")
	assert.NotContains(t, buf.String(), "message appended")
}

func TestServiceLogsAppendedMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := NewService(SessionOptions{DisplayName: "ada"}, nil, logger)

	_, err := svc.Dispatch(context.Background(), domain.EditChatDraft("hi"), domain.SendChat())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "message appended")
	assert.Contains(t, buf.String(), "thread=chat")
	assert.Contains(t, buf.String(), "author=ada")
}

func TestServiceReplayDispatchesLoadedEvents(t *testing.T) {
	source := mocks.NewMockEventSource(t)
	source.EXPECT().Load(mock.Anything).Return([]domain.Event{
		domain.SelectView(domain.ViewChat),
		domain.EditChatDraft("a"),
		domain.SendChat(),
		domain.EditChatDraft("b"),
		domain.SendChat(),
	}, nil)

	svc := NewService(SessionOptions{}, nil, nil)
	snapshot, err := svc.Replay(context.Background(), source)
	require.NoError(t, err)

	require.Len(t, snapshot.Chat, 2)
	assert.Equal(t, domain.MessageID(1), snapshot.Chat[0].ID)
	assert.Equal(t, domain.MessageID(2), snapshot.Chat[1].ID)
	assert.Equal(t, "b", snapshot.Chat[1].Content)
}

func TestServiceReplayWrapsSourceError(t *testing.T) {
	sourceErr := errors.New("boom")
	source := mocks.NewMockEventSource(t)
	source.EXPECT().Load(mock.Anything).Return(nil, sourceErr)

	svc := NewService(SessionOptions{}, nil, nil)
	_, err := svc.Replay(context.Background(), source)

	require.ErrorIs(t, err, sourceErr)
	assert.Contains(t, err.Error(), "load events")
}

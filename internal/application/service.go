package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/tabboard/internal/domain"
	"github.com/bnema/tabboard/internal/ports"
	"github.com/google/uuid"
)

// Service owns the session of one running UI. It is not safe for concurrent
// use; presentation layers deliver events from a single goroutine.
type Service struct {
	session domain.Session
	logger  *slog.Logger
}

func NewSession(opts SessionOptions, clock ports.Clock) domain.Session {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	opts = opts.withDefaults()

	return domain.Session{
		ID:          uuid.Must(uuid.NewV7()).String(),
		StartedAt:   clock.Now(),
		ActiveView:  opts.InitialView,
		Board:       domain.NewThread(),
		Chat:        domain.NewThread(),
		DisplayName: opts.DisplayName,
	}
}

func NewService(opts SessionOptions, clock ports.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	session := NewSession(opts, clock)
	logger = logger.With(slog.String("session_id", session.ID))
	logger.Debug("session started",
		slog.String("display_name", session.DisplayName),
		slog.String("view", session.ActiveView.String()),
	)

	return &Service{session: session, logger: logger}
}

func (s *Service) Dispatch(ctx context.Context, events ...domain.Event) (Snapshot, error) {
	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return SnapshotOf(s.session), err
		}
		s.apply(ctx, event)
	}

	return SnapshotOf(s.session), nil
}

func (s *Service) Replay(ctx context.Context, source ports.EventSource) (Snapshot, error) {
	events, err := source.Load(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load events: %w", err)
	}

	s.logger.Debug("replaying events", slog.Int("count", len(events)))
	return s.Dispatch(ctx, events...)
}

func (s *Service) Session() domain.Session {
	return s.session.Clone()
}

func (s *Service) Snapshot() Snapshot {
	return SnapshotOf(s.session)
}

func (s *Service) apply(ctx context.Context, event domain.Event) {
	before := s.session
	s.session = Reduce(before, event)

	switch event.Type {
	case domain.EventSelectView:
		s.logger.DebugContext(ctx, "view selected",
			slog.String("from", before.ActiveView.String()),
			slog.String("to", s.session.ActiveView.String()),
		)
	case domain.EventSendBoard, domain.EventSendChat:
		s.logSend(ctx, before, event.Type)
	case domain.EventEditBoardDraft, domain.EventEditChatDraft:
		s.logger.Log(ctx, slog.LevelDebug-4, "draft edited",
			slog.String("type", string(event.Type)),
			slog.Int("length", len(event.Text)),
		)
	default:
		s.logger.WarnContext(ctx, "event ignored", slog.String("type", string(event.Type)))
	}
}

func (s *Service) logSend(ctx context.Context, before domain.Session, eventType domain.EventType) {
	view := domain.ViewBoard
	if eventType == domain.EventSendChat {
		view = domain.ViewChat
	}

	prev, _ := before.Thread(view)
	next, _ := s.session.Thread(view)
	if next.Len() == prev.Len() {
		s.logger.DebugContext(ctx, "draft discarded", slog.String("thread", view.String()))
		return
	}

	msg, _ := next.Last()
	s.logger.DebugContext(ctx, "message appended",
		slog.String("thread", view.String()),
		slog.Int("id", int(msg.ID)),
		slog.String("author", msg.Author),
	)
}

package application

import (
	"time"

	"github.com/bnema/tabboard/internal/domain"
)

type Snapshot struct {
	SessionID   string           `json:"session_id"`
	StartedAt   time.Time        `json:"started_at"`
	ActiveView  domain.View      `json:"active_view"`
	DisplayName string           `json:"display_name"`
	Board       []domain.Message `json:"board"`
	Chat        []domain.Message `json:"chat"`
	BoardDraft  string           `json:"board_draft"`
	ChatDraft   string           `json:"chat_draft"`
}

func SnapshotOf(session domain.Session) Snapshot {
	session = session.Clone()

	return Snapshot{
		SessionID:   session.ID,
		StartedAt:   session.StartedAt,
		ActiveView:  session.ActiveView,
		DisplayName: session.DisplayName,
		Board:       nonNil(session.Board.Messages),
		Chat:        nonNil(session.Chat.Messages),
		BoardDraft:  session.BoardDraft,
		ChatDraft:   session.ChatDraft,
	}
}

func (s Snapshot) Messages(view domain.View) []domain.Message {
	switch view {
	case domain.ViewBoard:
		return s.Board
	case domain.ViewChat:
		return s.Chat
	default:
		return nil
	}
}

func (s Snapshot) Draft(view domain.View) string {
	switch view {
	case domain.ViewBoard:
		return s.BoardDraft
	case domain.ViewChat:
		return s.ChatDraft
	default:
		return ""
	}
}

func nonNil(messages []domain.Message) []domain.Message {
	if messages == nil {
		return []domain.Message{}
	}
	return messages
}

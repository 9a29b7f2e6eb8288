package domain

import "time"

const DefaultDisplayName = "User123"

type Session struct {
	ID          string
	StartedAt   time.Time
	ActiveView  View
	Board       Thread
	Chat        Thread
	DisplayName string
	BoardDraft  string
	ChatDraft   string
}

// Clone returns a deep copy so callers can hand sessions out without
// sharing thread storage.
func (s Session) Clone() Session {
	s.Board = s.Board.Clone()
	s.Chat = s.Chat.Clone()
	return s
}

func (s Session) Thread(view View) (Thread, bool) {
	switch view {
	case ViewBoard:
		return s.Board, true
	case ViewChat:
		return s.Chat, true
	default:
		return Thread{}, false
	}
}

func (s Session) Draft(view View) string {
	switch view {
	case ViewBoard:
		return s.BoardDraft
	case ViewChat:
		return s.ChatDraft
	default:
		return ""
	}
}

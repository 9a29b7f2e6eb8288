package application

import (
	"strings"

	"github.com/bnema/tabboard/internal/domain"
)

// AppendMessage commits draft to thread under author. A draft that is empty
// after trimming is left in place and the thread is returned as is; otherwise
// the untrimmed draft becomes the content and the returned draft is empty.
func AppendMessage(thread domain.Thread, draft, author string) (domain.Thread, string) {
	if strings.TrimSpace(draft) == "" {
		return thread, draft
	}

	msg := domain.Message{
		ID:      thread.Allocate(),
		Author:  author,
		Content: draft,
	}

	return thread.With(msg), ""
}

func SelectView(session domain.Session, view domain.View) domain.Session {
	if !view.Valid() {
		return session
	}

	session.ActiveView = view
	return session
}

// Reduce applies a single event. The input session is never modified; an
// event it cannot interpret yields the session unchanged.
func Reduce(session domain.Session, event domain.Event) domain.Session {
	switch event.Type {
	case domain.EventSelectView:
		return SelectView(session, event.View)
	case domain.EventEditBoardDraft:
		session.BoardDraft = event.Text
	case domain.EventEditChatDraft:
		session.ChatDraft = event.Text
	case domain.EventSendBoard:
		session.Board, session.BoardDraft = AppendMessage(session.Board, session.BoardDraft, session.DisplayName)
	case domain.EventSendChat:
		session.Chat, session.ChatDraft = AppendMessage(session.Chat, session.ChatDraft, session.DisplayName)
	}

	return session
}

func ReduceAll(session domain.Session, events ...domain.Event) domain.Session {
	for _, event := range events {
		session = Reduce(session, event)
	}
	return session
}

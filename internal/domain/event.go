package domain

type EventType string

const (
	EventSelectView     EventType = "select_view"
	EventEditBoardDraft EventType = "edit_board_draft"
	EventEditChatDraft  EventType = "edit_chat_draft"
	EventSendBoard      EventType = "send_board"
	EventSendChat       EventType = "send_chat"
)

func (t EventType) Valid() bool {
	switch t {
	case EventSelectView, EventEditBoardDraft, EventEditChatDraft, EventSendBoard, EventSendChat:
		return true
	default:
		return false
	}
}

// Event is a discrete input delivered by a presentation layer. View is only
// read for EventSelectView and Text only for the draft edits.
type Event struct {
	Type EventType
	View View
	Text string
}

func SelectView(view View) Event {
	return Event{Type: EventSelectView, View: view}
}

func EditBoardDraft(text string) Event {
	return Event{Type: EventEditBoardDraft, Text: text}
}

func EditChatDraft(text string) Event {
	return Event{Type: EventEditChatDraft, Text: text}
}

func SendBoard() Event {
	return Event{Type: EventSendBoard}
}

func SendChat() Event {
	return Event{Type: EventSendChat}
}

// EditDraft returns the draft edit event for the thread shown by view.
func EditDraft(view View, text string) (Event, bool) {
	switch view {
	case ViewBoard:
		return EditBoardDraft(text), true
	case ViewChat:
		return EditChatDraft(text), true
	default:
		return Event{}, false
	}
}

// Send returns the send event for the thread shown by view.
func Send(view View) (Event, bool) {
	switch view {
	case ViewBoard:
		return SendBoard(), true
	case ViewChat:
		return SendChat(), true
	default:
		return Event{}, false
	}
}

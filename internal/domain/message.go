package domain

import "slices"

type MessageID int

type Message struct {
	ID      MessageID `json:"id"`
	Author  string    `json:"author"`
	Content string    `json:"content"`
}

// Thread is an append-only message list. NextID is kept alongside the
// messages so identifiers never depend on list positions.
type Thread struct {
	Messages []Message `json:"messages"`
	NextID   MessageID `json:"next_id"`
}

func NewThread() Thread {
	return Thread{NextID: 1}
}

func (t Thread) Len() int {
	return len(t.Messages)
}

func (t Thread) Last() (Message, bool) {
	if len(t.Messages) == 0 {
		return Message{}, false
	}
	return t.Messages[len(t.Messages)-1], true
}

// With returns a copy of t holding msg as its newest entry. The receiver's
// backing array is never written to.
func (t Thread) With(msg Message) Thread {
	messages := make([]Message, 0, len(t.Messages)+1)
	messages = append(messages, t.Messages...)
	messages = append(messages, msg)

	next := msg.ID + 1
	if next < t.NextID {
		next = t.NextID
	}

	return Thread{Messages: messages, NextID: next}
}

func (t Thread) Clone() Thread {
	return Thread{Messages: slices.Clone(t.Messages), NextID: t.NextID}
}

// Allocate returns the identifier the next appended message receives. A zero
// Thread falls back to its length so literal values stay usable.
func (t Thread) Allocate() MessageID {
	if t.NextID < 1 {
		return MessageID(len(t.Messages) + 1)
	}
	return t.NextID
}

package toml

import (
	"fmt"

	"github.com/bnema/tabboard/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Events  []eventSchema `toml:"events"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported script schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type eventSchema struct {
	Type string `toml:"type"`
	View string `toml:"view,omitempty"`
	Text string `toml:"text,omitempty"`
}

func toSchema(event domain.Event) eventSchema {
	encoded := eventSchema{Type: string(event.Type)}
	switch event.Type {
	case domain.EventSelectView:
		encoded.View = string(event.View)
	case domain.EventEditBoardDraft, domain.EventEditChatDraft:
		encoded.Text = event.Text
	}

	return encoded
}

func fromSchema(index int, entry eventSchema) (domain.Event, error) {
	eventType := domain.EventType(entry.Type)
	if !eventType.Valid() {
		return domain.Event{}, fmt.Errorf("event %d: %w: %q", index+1, domain.ErrUnknownEventType, entry.Type)
	}

	switch eventType {
	case domain.EventSelectView:
		view, err := domain.ParseView(entry.View)
		if err != nil {
			return domain.Event{}, fmt.Errorf("event %d: %w", index+1, err)
		}
		return domain.SelectView(view), nil
	case domain.EventEditBoardDraft:
		return domain.EditBoardDraft(entry.Text), nil
	case domain.EventEditChatDraft:
		return domain.EditChatDraft(entry.Text), nil
	case domain.EventSendBoard:
		return domain.SendBoard(), nil
	default:
		return domain.SendChat(), nil
	}
}

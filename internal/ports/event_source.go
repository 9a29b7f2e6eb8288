package ports

import (
	"context"

	"github.com/bnema/tabboard/internal/domain"
)

// EventSource yields a finite, ordered batch of presentation events.
type EventSource interface {
	Load(ctx context.Context) ([]domain.Event, error)
}

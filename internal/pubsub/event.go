package pubsub

import (
	"time"

	"github.com/google/uuid"
)

// NewEvent stamps a payload with a fresh id and the current time.
func NewEvent[T any](eventType EventType, payload T, dryRun bool) Event[T] {
	return Event[T]{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		DryRun:     dryRun,
		Payload:    payload,
	}
}

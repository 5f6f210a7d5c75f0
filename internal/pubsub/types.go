package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
)

// defaultPublishTimeout bounds how long SendMessage waits for the server to acknowledge.
const defaultPublishTimeout = 10 * time.Second

type client struct {
	client         *pubsub.Client
	teardown       func()
	publishTimeout time.Duration
}

// localClient is used when no GCP project is configured: events are encoded and logged, not published.
type localClient struct{}

// EventType represents the type of event/message sent via pubsub. It doubles as the topic name.
type EventType string

const (
	EventMatchRecorded EventType = "match-recorded"
	EventRoundPaired   EventType = "round-paired"
)

// Event wraps every payload published by the service.
type Event[T any] struct {
	ID         string    `msgpack:"id"`
	Type       EventType `msgpack:"type"`
	OccurredAt time.Time `msgpack:"occurred_at"`
	DryRun     bool      `msgpack:"dry_run"`
	Payload    T         `msgpack:"payload"`
}

package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamName = "tradingstudio_events"

	// Event types
	EventTypeStrategy = "strategy"
)

// SubjectForCatalog returns the wildcard subject for all events of a catalog.
// Example: "tradingstudio.session.>"
func SubjectForCatalog(catalog string) string {
	return fmt.Sprintf("tradingstudio.%s.>", catalog)
}

// SubjectForEvent returns the subject for one event type in a catalog.
// Example: "tradingstudio.session.strategy"
func SubjectForEvent(catalog, eventType string) string {
	return fmt.Sprintf("tradingstudio.%s.%s", catalog, eventType)
}

// SetupStream creates or updates the event stream. The stream is held in
// memory: its contents disappear with the process.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{"tradingstudio.>"},
		Storage:  jetstream.MemoryStorage,
	})
}

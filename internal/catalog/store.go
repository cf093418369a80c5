package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/mark3labs/tradingstudio/internal/logger"
	"github.com/mark3labs/tradingstudio/internal/nats"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/nats-io/nats-server/v2/server"
	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// sessionCatalog is the subject token used for the running session's catalog.
const sessionCatalog = "session"

// Event actions
const (
	ActionSeed   = "seed"   // strategy loaded from the fixture
	ActionCreate = "create" // strategy created in the wizard
	ActionCopy   = "copy"   // strategy duplicated from the dashboard
)

// Event is one entry in the catalog's append-only log.
type Event struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Catalog   string          `json:"catalog"`
	Type      string          `json:"type"`
	Action    string          `json:"action"`
	Meta      json.RawMessage `json:"meta,omitempty"`
	Data      strategy.Stored `json:"data"`
}

// State is the catalog reconstructed from its events.
type State struct {
	Strategies []strategy.Stored
}

// Apply reduces one event into the state.
func (st *State) Apply(event Event) {
	if event.Type != nats.EventTypeStrategy {
		return
	}
	switch event.Action {
	case ActionSeed, ActionCreate, ActionCopy:
		st.Strategies = append(st.Strategies, event.Data)
	}
}

// Store is a catalog kept as an event log on an embedded JetStream server.
// The stream uses memory storage, so everything recorded is discarded when
// the store is closed.
type Store struct {
	ns       *server.Server
	nc       *natsgo.Conn
	js       jetstream.JetStream
	stream   jetstream.Stream
	storeDir string
	catalog  string
	now      func() time.Time
}

// Open starts the embedded server and seeds the log from seed.
func Open(ctx context.Context, seed Source) (*Store, error) {
	storeDir, err := os.MkdirTemp("", "tradingstudio-js-*")
	if err != nil {
		return nil, fmt.Errorf("creating jetstream dir: %w", err)
	}

	ns, err := nats.StartEmbeddedNATS(storeDir)
	if err != nil {
		_ = os.RemoveAll(storeDir)
		return nil, fmt.Errorf("starting embedded nats: %w", err)
	}

	nc, err := nats.ConnectInProcess(ns)
	if err != nil {
		_ = nats.Shutdown(nil, ns)
		_ = os.RemoveAll(storeDir)
		return nil, fmt.Errorf("connecting to embedded nats: %w", err)
	}

	s := &Store{
		ns:       ns,
		nc:       nc,
		storeDir: storeDir,
		catalog:  sessionCatalog,
		now:      time.Now,
	}

	if err := s.init(ctx, seed); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init(ctx context.Context, seed Source) error {
	js, err := nats.CreateJetStream(s.nc)
	if err != nil {
		return fmt.Errorf("creating jetstream context: %w", err)
	}
	s.js = js

	stream, err := nats.SetupStream(ctx, js)
	if err != nil {
		return fmt.Errorf("setting up stream: %w", err)
	}
	s.stream = stream

	if seed == nil {
		return nil
	}
	items, err := seed.List(ctx)
	if err != nil {
		return fmt.Errorf("listing seed strategies: %w", err)
	}
	for _, item := range items {
		if _, err := s.publish(ctx, ActionSeed, item, nil); err != nil {
			return err
		}
	}
	logger.Debug("Seeded catalog with %d strategies", len(items))
	return nil
}

// Close stops the embedded server and removes its scratch directory.
func (s *Store) Close() error {
	err := nats.Shutdown(s.nc, s.ns)
	if rmErr := os.RemoveAll(s.storeDir); rmErr != nil && err == nil {
		err = rmErr
	}
	return err
}

// publish appends an event to the log.
func (s *Store) publish(ctx context.Context, action string, data strategy.Stored, meta any) (*jetstream.PubAck, error) {
	event := Event{
		ID:        strconv.Itoa(data.ID),
		Timestamp: s.now(),
		Catalog:   s.catalog,
		Type:      nats.EventTypeStrategy,
		Action:    action,
		Data:      data,
	}
	if meta != nil {
		raw, err := json.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal event meta: %w", err)
		}
		event.Meta = raw
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event: %v", err)
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := nats.SubjectForEvent(s.catalog, event.Type)
	ack, err := s.js.Publish(ctx, subject, payload)
	if err != nil {
		logger.Error("Failed to publish event to subject %s: %v", subject, err)
		return nil, fmt.Errorf("failed to publish event: %w", err)
	}

	logger.Debug("Published %s event for strategy %d (seq=%d)", action, data.ID, ack.Sequence)
	return ack, nil
}

// LoadState replays the catalog's events into a State.
func (s *Store) LoadState(ctx context.Context) (*State, error) {
	consumer, err := s.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject: nats.SubjectForCatalog(s.catalog),
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}
	defer func() {
		_ = s.stream.DeleteConsumer(context.WithoutCancel(ctx), consumer.CachedInfo().Name)
	}()

	state := &State{}

	const batchSize = 500
	malformed := 0
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		count := 0
		for msg := range msgs.Messages() {
			count++
			var event Event
			if err := json.Unmarshal(msg.Data(), &event); err != nil {
				malformed++
				_ = msg.Ack()
				continue
			}
			state.Apply(event)
			_ = msg.Ack()
		}

		if count < batchSize {
			break
		}
	}

	if malformed > 0 {
		logger.Warn("Skipped %d malformed catalog events", malformed)
	}
	return state, nil
}

// List returns all strategies, newest first.
func (s *Store) List(ctx context.Context) ([]strategy.Stored, error) {
	state, err := s.LoadState(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(state.Strategies)
	return state.Strategies, nil
}

// Record appends a strategy built from a completed draft.
func (s *Store) Record(ctx context.Context, d strategy.Draft, status strategy.Status) (strategy.Stored, error) {
	items, err := s.List(ctx)
	if err != nil {
		return strategy.Stored{}, err
	}

	if step, errs := d.FirstIncomplete(); step >= 0 {
		section, _ := strategy.SectionForStep(step)
		return strategy.Stored{}, fmt.Errorf("draft is incomplete: step %d (%s) is missing %s",
			step+1, section.Title(), joinFields(errs.Fields()))
	}

	stored := strategy.FromDraft(nextID(items), d, status, s.now())
	if err := stored.Normalize(); err != nil {
		return strategy.Stored{}, err
	}

	meta := map[string]any{"draft": d}
	if _, err := s.publish(ctx, ActionCreate, stored, meta); err != nil {
		return strategy.Stored{}, err
	}
	logger.Info("Recorded strategy %d %q", stored.ID, stored.Name)
	return stored, nil
}

// Copy appends a duplicate of strategy id named "<name> (copy)" with Draft status.
func (s *Store) Copy(ctx context.Context, id int) (strategy.Stored, error) {
	items, err := s.List(ctx)
	if err != nil {
		return strategy.Stored{}, err
	}

	var src *strategy.Stored
	for i := range items {
		if items[i].ID == id {
			src = &items[i]
			break
		}
	}
	if src == nil {
		return strategy.Stored{}, NotFoundError{Key: strconv.Itoa(id)}
	}

	dup := strategy.Stored{
		ID:          nextID(items),
		Name:        src.Name + " (copy)",
		Status:      strategy.StatusDraft,
		CreatedAt:   s.now().Format(strategy.DateLayout),
		Description: src.Description,
	}
	dup.Slug = slug.Make(dup.Name)

	if _, err := s.publish(ctx, ActionCopy, dup, map[string]int{"source_id": id}); err != nil {
		return strategy.Stored{}, err
	}
	logger.Info("Copied strategy %d to %d", id, dup.ID)
	return dup, nil
}

func joinFields(fields []strategy.Field) string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

package ingestion

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/observability"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	// EventStream holds published gauge events.
	EventStream = "GAUGE_EVENTS"

	// EventSubjectPrefix is followed by the lower-cased event type.
	EventSubjectPrefix = "gauge.events"
)

// PublishableEvent is one emitted event in its outbound wire form.
type PublishableEvent struct {
	Sequence  int64           `json:"sequence"`
	Index     int             `json:"index"`
	EventType string          `json:"event_type"`
	CommandID string          `json:"command_id"`
	Actor     string          `json:"actor"`
	Payload   json.RawMessage `json:"payload"`
	StateHash string          `json:"state_hash"`
	Timestamp uint64          `json:"timestamp"`
}

// Subject returns the NATS subject the event is published on.
func (e PublishableEvent) Subject() string {
	return EventSubjectPrefix + "." + strings.ToLower(e.EventType)
}

// PublishablesFrom flattens one applied command's envelopes.
func PublishablesFrom(out core.CoreOutput) ([]PublishableEvent, error) {
	pubs := make([]PublishableEvent, 0, len(out.Events))
	for _, env := range out.Events {
		evt, err := env.Decode()
		if err != nil {
			return nil, fmt.Errorf("decode event %d/%d: %w", env.Sequence, env.Index, err)
		}
		pubs = append(pubs, PublishableEvent{
			Sequence:  env.Sequence,
			Index:     env.Index,
			EventType: env.EventType.String(),
			CommandID: env.CommandID.String(),
			Actor:     evt.Actor(),
			Payload:   env.Payload,
			StateHash: hex.EncodeToString(out.StateHash[:]),
			Timestamp: env.Timestamp,
		})
	}
	return pubs, nil
}

// EventSink is one outbound destination.
type EventSink interface {
	Name() string
	Publish(ctx context.Context, evt PublishableEvent) error
}

// OutboundPublisher fans persisted events out to every sink. Publishing is
// best effort: downstream consumers can always query the event log.
type OutboundPublisher struct {
	sinks     []EventSink
	inputChan <-chan PublishableEvent
	metrics   *observability.Metrics
}

func NewOutboundPublisher(inputChan <-chan PublishableEvent, metrics *observability.Metrics, sinks ...EventSink) *OutboundPublisher {
	return &OutboundPublisher{
		sinks:     sinks,
		inputChan: inputChan,
		metrics:   metrics,
	}
}

// Run starts the outbound publisher loop.
func (op *OutboundPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case evt, ok := <-op.inputChan:
			if !ok {
				return nil
			}
			op.publish(ctx, evt)
		}
	}
}

func (op *OutboundPublisher) publish(ctx context.Context, evt PublishableEvent) {
	for _, sink := range op.sinks {
		if err := sink.Publish(ctx, evt); err != nil {
			log.Printf("WARN: publish to %s failed seq=%d idx=%d: %v", sink.Name(), evt.Sequence, evt.Index, err)
			if op.metrics != nil {
				op.metrics.PublishErrors.WithLabelValues(sink.Name()).Inc()
			}
		}
	}
}

// NATSSink publishes events to JetStream.
type NATSSink struct {
	js jetstream.JetStream
}

func NewNATSSink(js jetstream.JetStream) *NATSSink {
	return &NATSSink{js: js}
}

func (s *NATSSink) Name() string { return "nats" }

func (s *NATSSink) Publish(ctx context.Context, evt PublishableEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	// Sequence and index identify the event, so JetStream dedups republished
	// events within its window.
	msgID := fmt.Sprintf("%d-%d", evt.Sequence, evt.Index)
	_, err = s.js.Publish(ctx, evt.Subject(), data, jetstream.WithMsgID(msgID))
	return err
}

// EnsureOutboundStream creates the outbound events stream.
func EnsureOutboundStream(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       EventStream,
		Subjects:   []string{EventSubjectPrefix + ".>"},
		Storage:    jetstream.FileStorage,
		Retention:  jetstream.LimitsPolicy,
		MaxAge:     72 * time.Hour,
		Duplicates: 2 * time.Minute,
		Replicas:   1,
	})
	if err != nil {
		return fmt.Errorf("create outbound stream: %w", err)
	}
	log.Printf("INFO: ensured outbound stream %s", EventStream)
	return nil
}

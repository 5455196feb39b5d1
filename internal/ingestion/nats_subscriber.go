package ingestion

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	// CommandStream holds every inbound gauge command.
	CommandStream = "GAUGE_COMMANDS"

	// CommandSubjectPrefix is followed by the command's wire type name,
	// e.g. gauge.commands.stake.
	CommandSubjectPrefix = "gauge.commands"

	// DefaultConsumer is the durable consumer name of the ledger.
	DefaultConsumer = "gauge-ledger"
)

// RawCommand is an undecoded message from the command stream. The
// dispatcher decodes it and acknowledges it once the processor has
// returned a verdict.
type RawCommand struct {
	Subject  string
	Data     []byte
	Received time.Time
	AckFunc  func() // processed or permanently rejected
	NakFunc  func() // transient failure, redeliver
	TermFunc func() // undecodable, never redeliver
}

// NATSSubscriber consumes the command stream with a single durable consumer
// so commands reach the processor in stream order.
type NATSSubscriber struct {
	js       jetstream.JetStream
	rawChan  chan<- RawCommand
	consumer jetstream.ConsumeContext
}

func NewNATSSubscriber(js jetstream.JetStream, rawChan chan<- RawCommand) *NATSSubscriber {
	return &NATSSubscriber{
		js:      js,
		rawChan: rawChan,
	}
}

// Subscribe creates the durable consumer and starts pushing messages to the
// raw channel. Consumers use explicit ACK, max_deliver=5, ack_wait=30s and
// at most one unacknowledged message so ordering survives redelivery.
func (ns *NATSSubscriber) Subscribe(ctx context.Context, durable string) error {
	consumer, err := ns.js.CreateOrUpdateConsumer(ctx, CommandStream, jetstream.ConsumerConfig{
		Durable:       durable,
		FilterSubject: CommandSubjectPrefix + ".>",
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    5,
		MaxAckPending: 1,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	})
	if err != nil {
		return fmt.Errorf("create consumer %s: %w", durable, err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		raw := RawCommand{
			Subject:  msg.Subject(),
			Data:     msg.Data(),
			Received: time.Now(),
			AckFunc:  func() { msg.Ack() },
			NakFunc:  func() { msg.Nak() },
			TermFunc: func() { msg.Term() },
		}

		select {
		case ns.rawChan <- raw:
		case <-ctx.Done():
			msg.Nak()
		}
	})
	if err != nil {
		return fmt.Errorf("consume %s: %w", durable, err)
	}

	ns.consumer = cc
	log.Printf("INFO: subscribed to %s.> (consumer=%s)", CommandSubjectPrefix, durable)
	return nil
}

// EnsureStreams creates the command stream if it does not exist.
// Commands are kept 72h; the Postgres command log is the durable record.
func EnsureStreams(ctx context.Context, js jetstream.JetStream) error {
	cfg := jetstream.StreamConfig{
		Name:      CommandStream,
		Subjects:  []string{CommandSubjectPrefix + ".>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    72 * time.Hour,
		Replicas:  1,
	}
	if _, err := js.CreateOrUpdateStream(ctx, cfg); err != nil {
		return fmt.Errorf("create stream %s: %w", cfg.Name, err)
	}
	log.Printf("INFO: ensured stream %s", cfg.Name)
	return nil
}

// Stop stops the consumer. Messages in flight are redelivered later.
func (ns *NATSSubscriber) Stop() {
	if ns.consumer != nil {
		ns.consumer.Stop()
	}
	log.Println("INFO: NATS subscriber stopped")
}

// ConnectNATS establishes a NATS connection and returns a JetStream context.
func ConnectNATS(url string) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := nats.Connect(url,
		nats.Name("gauge-ledger"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("WARN: NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Println("INFO: NATS reconnected")
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("jetstream: %w", err)
	}

	return nc, js, nil
}

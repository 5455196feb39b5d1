package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// KafkaSink mirrors published events to a Kafka topic keyed by actor, so a
// consumer sees each account's events in order.
type KafkaSink struct {
	client   sarama.Client
	producer sarama.SyncProducer
	topic    string
}

// SaramaConfig is the producer configuration used by NewKafkaSink.
func SaramaConfig(clientID string) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	return cfg
}

// NewKafkaSink dials the brokers and returns a sink with its own client.
func NewKafkaSink(brokers []string, topic, clientID string) (*KafkaSink, error) {
	client, err := sarama.NewClient(brokers, SaramaConfig(clientID))
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return &KafkaSink{client: client, producer: producer, topic: topic}, nil
}

func NewKafkaSinkFromProducer(producer sarama.SyncProducer, topic string) *KafkaSink {
	return &KafkaSink{producer: producer, topic: topic}
}

func (k *KafkaSink) Name() string { return "kafka" }

func (k *KafkaSink) Publish(_ context.Context, evt PublishableEvent) error {
	js, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("json marshal event: %w", err)
	}

	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(evt.Actor),
		Value: sarama.ByteEncoder(js),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(evt.EventType)},
			{Key: []byte("command_id"), Value: []byte(evt.CommandID)},
		},
	})
	if err != nil {
		return fmt.Errorf("send event to kafka: %w", err)
	}

	return nil
}

// Close closes the producer, then the client opened by NewKafkaSink.
func (k *KafkaSink) Close() error {
	err := k.producer.Close()
	if k.client != nil {
		if cerr := k.client.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

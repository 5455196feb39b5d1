package event

import (
	"encoding/json"

	"github.com/google/uuid"
)

// EventType discriminator for emitted event payloads
type EventType int32

const (
	EventTypeUnknown EventType = iota
	EventTypeStaked
	EventTypeUnstaked
	EventTypeRewardClaimed
	EventTypeFeesCollected
	EventTypeRateUpdated
)

// EventEnvelope wraps every emitted event in the log
type EventEnvelope struct {
	// Global monotonic sequence of the command that produced the event
	Sequence int64

	// Position of the event within its command's output
	Index int

	// Upstream command that caused the event
	CommandID uuid.UUID

	// Event type discriminator
	EventType EventType

	// Versioned input timestamp in unix seconds (NOT wall-clock)
	Timestamp uint64

	// JSON-encoded event-specific data
	Payload []byte
}

// Event is the interface all emitted payloads implement
type Event interface {
	// EventType returns the discriminator
	EventType() EventType

	// Actor returns the account that caused the event (hex)
	Actor() string
}

// Wrap builds envelopes for the events produced by one command.
func Wrap(sequence int64, commandID uuid.UUID, timestamp uint64, events []Event) ([]EventEnvelope, error) {
	out := make([]EventEnvelope, 0, len(events))
	for i, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return nil, err
		}
		out = append(out, EventEnvelope{
			Sequence:  sequence,
			Index:     i,
			CommandID: commandID,
			EventType: evt.EventType(),
			Timestamp: timestamp,
			Payload:   payload,
		})
	}
	return out, nil
}

// Decode unmarshals an envelope payload back into its typed event.
func (e *EventEnvelope) Decode() (Event, error) {
	var evt Event
	switch e.EventType {
	case EventTypeStaked:
		evt = &Staked{}
	case EventTypeUnstaked:
		evt = &Unstaked{}
	case EventTypeRewardClaimed:
		evt = &RewardClaimed{}
	case EventTypeFeesCollected:
		evt = &FeesCollected{}
	case EventTypeRateUpdated:
		evt = &RateUpdated{}
	default:
		return nil, &UnknownTypeError{Kind: "event", Type: e.EventType.String()}
	}
	if err := json.Unmarshal(e.Payload, evt); err != nil {
		return nil, err
	}
	return evt, nil
}

func (et EventType) String() string {
	switch et {
	case EventTypeStaked:
		return "Staked"
	case EventTypeUnstaked:
		return "Unstaked"
	case EventTypeRewardClaimed:
		return "RewardClaimed"
	case EventTypeFeesCollected:
		return "FeesCollected"
	case EventTypeRateUpdated:
		return "RateUpdated"
	default:
		return "Unknown"
	}
}

// UnknownTypeError reports a discriminator with no registered payload.
type UnknownTypeError struct {
	Kind string
	Type string
}

func (e *UnknownTypeError) Error() string {
	return "unknown " + e.Kind + " type: " + e.Type
}

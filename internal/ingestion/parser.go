package ingestion

import (
	"GaugeLedger/internal/event"
	"errors"
	"fmt"
	"strings"
)

// ErrSubjectMismatch is returned when a message's subject names a different
// command type than its payload.
var ErrSubjectMismatch = errors.New("subject does not match command type")

// CommandSubject returns the subject a producer publishes ct on.
func CommandSubject(ct event.CommandType) string {
	return CommandSubjectPrefix + "." + ct.String()
}

// ParseRawCommand decodes a stream message into a typed command. The last
// subject token must name the payload's command type; messages published
// directly on the prefix skip the check.
func ParseRawCommand(raw RawCommand) (event.Command, error) {
	cmd, err := event.DecodeCommand(raw.Data)
	if err != nil {
		return nil, err
	}

	suffix := strings.TrimPrefix(raw.Subject, CommandSubjectPrefix+".")
	if suffix == raw.Subject || suffix == "" {
		return cmd, nil
	}
	name, _, _ := strings.Cut(suffix, ".")
	if name != cmd.CommandType().String() {
		return nil, fmt.Errorf("%w: subject %s carries %s", ErrSubjectMismatch, raw.Subject, cmd.CommandType())
	}

	return cmd, nil
}

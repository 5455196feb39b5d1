package ingestion

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/event"
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Submitter applies one command. *core.Processor satisfies it.
type Submitter interface {
	Submit(cmd event.Command) (core.Result, error)
}

// Dispatcher drains raw stream messages into the processor one at a time.
//
// Every message that reaches the processor is acknowledged, including
// rejected commands: a rejection is a verdict, not a transient failure, and
// redelivery would only be rejected again. Undecodable payloads are
// terminated.
type Dispatcher struct {
	submitter Submitter
	rawChan   <-chan RawCommand
	logger    zerolog.Logger

	applied    int64
	rejected   int64
	duplicates int64
	malformed  int64
}

func NewDispatcher(submitter Submitter, rawChan <-chan RawCommand, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		submitter: submitter,
		rawChan:   rawChan,
		logger:    logger,
	}
}

// Run processes messages until ctx is cancelled or the channel is closed.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case raw, ok := <-d.rawChan:
			if !ok {
				return nil
			}
			d.handle(raw)
		}
	}
}

func (d *Dispatcher) handle(raw RawCommand) {
	cmd, err := ParseRawCommand(raw)
	if err != nil {
		d.malformed++
		d.logger.Warn().Err(err).Str("subject", raw.Subject).Msg("malformed command")
		call(raw.TermFunc)
		return
	}

	res, err := d.submitter.Submit(cmd)
	switch {
	case err != nil:
		d.rejected++
		ev := d.logger.Info()
		var unknown *event.UnknownTypeError
		if errors.As(err, &unknown) {
			ev = d.logger.Warn()
		}
		ev.Err(err).
			Str("command", cmd.CommandType().String()).
			Str("command_id", cmd.CommandID().String()).
			Str("caller", cmd.Sender().Hex()).
			Msg("command rejected")
	case res.Duplicate:
		d.duplicates++
	default:
		d.applied++
	}
	call(raw.AckFunc)
}

// Stats returns applied, rejected, duplicate and malformed counts.
func (d *Dispatcher) Stats() (applied, rejected, duplicates, malformed int64) {
	return d.applied, d.rejected, d.duplicates, d.malformed
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

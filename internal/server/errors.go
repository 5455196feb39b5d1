package server

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/ingestion"
	"GaugeLedger/internal/ledger"
	"GaugeLedger/internal/sim"
	"GaugeLedger/internal/state"
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError maps domain errors onto gRPC codes. Errors that already
// carry a status pass through.
func statusFromError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codeOf(err), err.Error())
}

func codeOf(err error) codes.Code {
	var unknown *event.UnknownTypeError
	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded

	case errors.Is(err, core.ErrUnauthorized),
		errors.Is(err, sim.ErrNotController),
		errors.Is(err, sim.ErrNotHolder):
		return codes.PermissionDenied

	case errors.Is(err, core.ErrAlreadyStaked),
		errors.Is(err, core.ErrNotStaked),
		errors.Is(err, core.ErrGaugeInactive),
		errors.Is(err, core.ErrNotInitialized),
		errors.Is(err, core.ErrAlreadyInitialized),
		errors.Is(err, core.ErrInsufficientFunding),
		errors.Is(err, core.ErrClockRegression),
		errors.Is(err, ledger.ErrInsufficientBalance):
		return codes.FailedPrecondition

	case errors.Is(err, ingestion.ErrMalformedCommand),
		errors.As(err, &unknown),
		errors.Is(err, core.ErrZeroAmount),
		errors.Is(err, core.ErrInvalidRate),
		errors.Is(err, core.ErrZeroDuration),
		errors.Is(err, core.ErrTokenMismatch),
		errors.Is(err, sim.ErrInvalidRange):
		return codes.InvalidArgument

	case errors.Is(err, sim.ErrUnknownPosition),
		errors.Is(err, state.ErrNotFound):
		return codes.NotFound

	case errors.Is(err, core.ErrReentrantCall),
		errors.Is(err, core.ErrInvariantViolation):
		return codes.Aborted

	default:
		return codes.Internal
	}
}

package core

import (
	"GaugeLedger/internal/event"
	"errors"
	"fmt"
)

// opTx makes one entry point all-or-nothing. Local mutations register an undo
// closure; external effects that already happened register a compensating
// action. Events are buffered and only released on commit.
type opTx struct {
	undo   []func() error
	events []event.Event
}

func (tx *opTx) onRollback(fn func() error) {
	tx.undo = append(tx.undo, fn)
}

// restore registers an undo that cannot fail.
func (tx *opTx) restore(fn func()) {
	tx.undo = append(tx.undo, func() error { fn(); return nil })
}

func (tx *opTx) emit(evt event.Event) {
	tx.events = append(tx.events, evt)
}

// rollback runs undo actions in reverse registration order. A failing
// compensation does not stop the remaining ones; all failures are joined and
// wrapped in ErrInvariantViolation since state may now be inconsistent.
func (tx *opTx) rollback() error {
	var errs []error
	for i := len(tx.undo) - 1; i >= 0; i-- {
		if err := tx.undo[i](); err != nil {
			errs = append(errs, err)
		}
	}
	tx.undo = nil
	tx.events = nil
	if len(errs) > 0 {
		return fmt.Errorf("%w: rollback: %w", ErrInvariantViolation, errors.Join(errs...))
	}
	return nil
}

package core

import "errors"

var (
	// ErrUnauthorized: caller is not the position owner, the reward controller
	// or the admin, as the entry point requires.
	ErrUnauthorized = errors.New("unauthorized caller")

	ErrAlreadyStaked = errors.New("position already staked")
	ErrNotStaked     = errors.New("position not staked by caller")

	// ErrTokenMismatch: the position's asset pair or tick spacing differs from
	// the gauge's pool.
	ErrTokenMismatch = errors.New("position does not match gauge pool")

	ErrInvalidRate         = errors.New("reward rate rounds to zero")
	ErrZeroDuration        = errors.New("zero emission duration")
	ErrInsufficientFunding = errors.New("reward rate exceeds held balance")

	ErrAlreadyInitialized = errors.New("gauge already initialized")
	ErrNotInitialized     = errors.New("gauge not initialized")
	ErrGaugeInactive      = errors.New("gauge is not active")
	ErrZeroAmount         = errors.New("amount must be positive")
	ErrReentrantCall      = errors.New("reentrant call")

	// ErrInvariantViolation signals inconsistent collaborator state, e.g. a
	// range-scoped reward counter that moved backwards. The operation aborts.
	ErrInvariantViolation = errors.New("invariant violation")
)

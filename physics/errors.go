package physics

import "errors"

var (
	// ErrInvalidConfig reports construction parameters that can never produce an arena.
	ErrInvalidConfig = errors.New("invalid arena configuration")
	// ErrCapacity reports that the arena cannot hold the requested bodies at the requested sizes.
	ErrCapacity = errors.New("arena cannot hold the requested bodies at the requested sizes")
)

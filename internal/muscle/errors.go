package muscle

import "codeberg.org/mutker/bodyctl/internal/errors"

const (
	// Input Errors
	ErrInvalidInput = errors.ErrInvalidInput

	// Planning Errors
	ErrNoData = errors.ErrNoData

	// Queue Errors
	ErrDrainFailed = errors.ErrorCode("muscle_drain_failed")
)

package bmi

import "codeberg.org/mutker/bodyctl/internal/errors"

const (
	// Input Errors
	ErrInvalidInput  = errors.ErrInvalidInput
	ErrInvalidFormat = errors.ErrInvalidFormat

	// Queue Errors
	ErrDrainFailed = errors.ErrorCode("bmi_drain_failed")
)

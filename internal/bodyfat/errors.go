package bodyfat

import "codeberg.org/mutker/bodyctl/internal/errors"

const (
	// Input Errors
	ErrInvalidInput = errors.ErrInvalidInput
	ErrInvalidBMI   = errors.ErrorCode("bodyfat_invalid_bmi")
	ErrInvalidAge   = errors.ErrorCode("bodyfat_invalid_age")
	ErrInvalidSex   = errors.ErrorCode("bodyfat_invalid_sex")

	// Queue Errors
	ErrDrainFailed = errors.ErrorCode("bodyfat_drain_failed")
)

// invalidInput tags a specific validation failure as ErrInvalidInput.
func invalidInput(code errors.ErrorCode, msg string, data any) error {
	errFactory := errors.New()

	return errFactory.Wrap(ErrInvalidInput, errFactory.WithMessage(code, msg).WithData(data))
}

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"codeberg.org/mutker/bodyctl/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	f := errors.New()

	assert.Equal(t, "Invalid measurement input", f.New(errors.ErrInvalidInput).Error())
	assert.Equal(t, "height must be greater than zero",
		f.WithMessage(errors.ErrInvalidInput, "height must be greater than zero").Error())
	assert.Equal(t, "Invalid export format: csv",
		f.WithData(errors.ErrInvalidFormat, "csv").Error())
	assert.Equal(t, "custom_code", errors.GetErrorMessage(errors.ErrorCode("custom_code")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := errors.New().Wrap(errors.ErrReadConfig, cause)

	assert.Equal(t, "Failed to read configuration: boom", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, errors.ErrReadConfig, err.Code())
}

func TestWithMessageKeepsCode(t *testing.T) {
	base := errors.New().New(errors.ErrNoData)
	err := base.WithMessage("no composition recorded").WithData(3)

	assert.Equal(t, errors.ErrNoData, err.Code())
	assert.Equal(t, 3, err.GetData())
	assert.Equal(t, "no composition recorded: 3", err.Error())
}

func TestHasCode(t *testing.T) {
	f := errors.New()
	inner := f.New(errors.ErrInvalidInput)
	outer := f.Wrap(errors.ErrPipeline, inner)

	assert.True(t, errors.HasCode(outer, errors.ErrPipeline))
	assert.True(t, errors.HasCode(outer, errors.ErrInvalidInput))
	assert.False(t, errors.HasCode(outer, errors.ErrInvalidFormat))
	assert.False(t, errors.HasCode(stderrors.New("plain"), errors.ErrInvalidInput))
	assert.False(t, errors.HasCode(nil, errors.ErrInvalidInput))

	code, ok := errors.CodeOf(outer)
	require.True(t, ok)
	assert.Equal(t, errors.ErrPipeline, code)
}

func TestCodes(t *testing.T) {
	f := errors.New()
	err := f.Wrap(errors.ErrPipeline, fmt.Errorf("bmi: %w", f.New(errors.ErrInvalidInput)))

	assert.Equal(t, []errors.ErrorCode{errors.ErrPipeline, errors.ErrInvalidInput}, errors.Codes(err))
	assert.Empty(t, errors.Codes(stderrors.New("plain")))
	assert.Empty(t, errors.Codes(nil))

	_, ok := errors.CodeOf(nil)
	assert.False(t, ok)
}

func TestWithDataReturnsCopy(t *testing.T) {
	base := errors.New().WithMessage(errors.ErrInvalidInput, "weight must be a finite value greater than zero")
	withData := base.WithData(-5.0)

	assert.Nil(t, base.GetData())
	assert.Equal(t, "weight must be a finite value greater than zero", base.Error())
	assert.Equal(t, "weight must be a finite value greater than zero: -5", withData.Error())
}

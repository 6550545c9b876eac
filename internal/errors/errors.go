// Package errors carries the coded errors returned by the trackers, the
// configuration loader and the CLI pipeline. A code names the failure class
// (invalid_input, no_data, read_config_failed, ...); message, cause and data
// are optional detail on top of it.
package errors

import (
	"errors"
	"fmt"
)

var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

type codedError struct {
	code    ErrorCode
	message string
	err     error
	data    any
}

// Error renders "<message>: <data>" or "<message>: <cause>". The message
// falls back to the code's registered text.
func (e *codedError) Error() string {
	msg := e.message
	if msg == "" {
		msg = GetErrorMessage(e.code)
	}

	switch {
	case e.data != nil:
		return fmt.Sprintf("%s: %v", msg, e.data)
	case e.err != nil:
		return fmt.Sprintf("%s: %v", msg, e.err)
	default:
		return msg
	}
}

func (e *codedError) Code() ErrorCode { return e.code }
func (e *codedError) GetData() any    { return e.data }
func (e *codedError) Unwrap() error   { return e.err }

// WithMessage and WithData return copies, so a shared error value such as a
// tracker's validation failure is never modified in place.
func (e *codedError) WithMessage(msg string) Error {
	c := *e
	c.message = msg

	return &c
}

func (e *codedError) WithData(data any) Error {
	c := *e
	c.data = data

	return &c
}

type factory struct{}

func (factory) New(code ErrorCode) Error {
	return &codedError{code: code}
}

func (factory) Wrap(code ErrorCode, err error) Error {
	return &codedError{code: code, err: err}
}

func (factory) WithMessage(code ErrorCode, msg string) Error {
	return &codedError{code: code, message: msg}
}

func (factory) WithData(code ErrorCode, data any) Error {
	return &codedError{code: code, data: data}
}

// New returns the Factory every package uses to build coded errors.
func New() Factory {
	return factory{}
}

// Codes lists the codes found along err's chain, outermost first. A drain
// failure, for example, yields [bmi_drain_failed invalid_input].
func Codes(err error) []ErrorCode {
	var codes []ErrorCode
	for err != nil {
		var coded Error
		if !errors.As(err, &coded) {
			break
		}
		codes = append(codes, coded.Code())
		err = coded.Unwrap()
	}

	return codes
}

// HasCode reports whether code appears anywhere along err's chain.
func HasCode(err error, code ErrorCode) bool {
	for _, c := range Codes(err) {
		if c == code {
			return true
		}
	}

	return false
}

// CodeOf returns the outermost code in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	codes := Codes(err)
	if len(codes) == 0 {
		return "", false
	}

	return codes[0], true
}

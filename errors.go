package timelock

import (
	"fmt"

	"github.com/go-errors/errors"
)

// Errors returned by this package wrap one of these; test with errors.Is from
// github.com/go-errors/errors, except for ErrFatalSetup (see SetupError). None of them is transient: retrying with the same input
// yields the same error.
var (
	// ErrInvalidInput is returned for inputs on which the computation is undefined,
	// such as a non-positive modulus or totient. Inputs are never coerced.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFatalSetup is matched by the *SetupError returned when modulus generation fails,
	// i.e. when the entropy source could not be read.
	ErrFatalSetup = errors.New("fatal setup error")

	// ErrEquivalenceViolation is returned when the sequential and trapdoor strategies
	// disagree on the same parameters. This indicates a wrong totient or a defective
	// modulus, and the modulus must not be used.
	ErrEquivalenceViolation = errors.New("puzzle strategies disagree")
)

func invalidInput(format string, args ...interface{}) error {
	return errors.WrapPrefix(ErrInvalidInput, fmt.Sprintf(format, args...), 1)
}

// SetupError is returned when modulus generation fails. Under the standard library's
// errors.Is it matches ErrFatalSetup as well as the entropy source's failure.
type SetupError struct {
	Cause error
	err   *errors.Error
}

func (e *SetupError) Error() string {
	return e.err.Error() + ": " + e.Cause.Error()
}

// ErrorStack returns the error message followed by the stack trace of the failed setup.
func (e *SetupError) ErrorStack() string {
	return e.err.TypeName() + " " + e.Error() + "\n" + string(e.err.Stack())
}

func (e *SetupError) Is(target error) bool {
	return errors.Is(e.err, target)
}

func (e *SetupError) Unwrap() error {
	if cause, ok := e.Cause.(*errors.Error); ok {
		return cause.Err
	}
	return e.Cause
}

func fatalSetup(cause error, format string, args ...interface{}) error {
	return &SetupError{
		Cause: cause,
		err:   errors.WrapPrefix(ErrFatalSetup, fmt.Sprintf(format, args...), 1),
	}
}

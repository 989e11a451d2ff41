package cli

import (
	"errors"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// codeError pairs an error with the exit code it should produce.
type codeError struct {
	code int
	err  error
}

func (e *codeError) Error() string { return e.err.Error() }
func (e *codeError) Unwrap() error { return e.err }

func userError(err error) error { return &codeError{code: exitUserError, err: err} }
func sysError(err error) error  { return &codeError{code: exitSysError, err: err} }

// outcomeError converts a failed outcome into a CLI error. Bad arguments
// and unknown items are user errors; everything else is a system error.
func outcomeError(out types.Outcome) error {
	switch out.Reason {
	case types.ReasonOK:
		return nil
	case types.ReasonInvalidArgument, types.ReasonItemNotFound:
		return userError(out.Err())
	default:
		return sysError(out.Err())
	}
}

// exitCode returns the exit code carried by err. Errors raised by cobra
// itself (unknown command, wrong argument count) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *codeError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}

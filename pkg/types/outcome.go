package types

import (
	"errors"
	"fmt"
)

// Reason tags the outcome of a store operation.
type Reason int

// Outcome reasons. ReasonOK is the zero value.
const (
	ReasonOK Reason = iota
	ReasonInvalidArgument
	ReasonItemNotFound
	ReasonFileNotFound
	ReasonMalformedData
	ReasonIOFailure
)

var reasonNames = map[Reason]string{
	ReasonOK:              "ok",
	ReasonInvalidArgument: "invalid argument",
	ReasonItemNotFound:    "item not found",
	ReasonFileNotFound:    "file not found",
	ReasonMalformedData:   "malformed data",
	ReasonIOFailure:       "i/o failure",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Store operation errors. Each non-OK Reason has exactly one sentinel.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrItemNotFound    = errors.New("item not found")
	ErrFileNotFound    = errors.New("file not found")
	ErrMalformedData   = errors.New("malformed data")
	ErrIOFailure       = errors.New("i/o failure")
)

var reasonErrors = map[Reason]error{
	ReasonInvalidArgument: ErrInvalidArgument,
	ReasonItemNotFound:    ErrItemNotFound,
	ReasonFileNotFound:    ErrFileNotFound,
	ReasonMalformedData:   ErrMalformedData,
	ReasonIOFailure:       ErrIOFailure,
}

// Outcome is the result of a store operation. Operations never return Go
// errors for expected failures; they report them here instead.
type Outcome struct {
	Reason Reason
	Detail string
	Cause  error
}

// OK returns a successful Outcome.
func OK() Outcome {
	return Outcome{}
}

// Fail returns a failed Outcome with a formatted detail message.
func Fail(reason Reason, format string, args ...any) Outcome {
	return Outcome{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// FromError classifies err by its sentinel. Errors that match no sentinel
// are treated as I/O failures. A nil err yields OK.
func FromError(err error) Outcome {
	if err == nil {
		return OK()
	}
	for reason, sentinel := range reasonErrors {
		if errors.Is(err, sentinel) {
			return Outcome{Reason: reason, Detail: err.Error(), Cause: err}
		}
	}
	return Outcome{Reason: ReasonIOFailure, Detail: err.Error(), Cause: err}
}

// Ok reports whether the operation succeeded.
func (o Outcome) Ok() bool {
	return o.Reason == ReasonOK
}

// Err returns nil on success, otherwise the reason's sentinel wrapped with
// the detail so that errors.Is matches it.
func (o Outcome) Err() error {
	if o.Ok() {
		return nil
	}
	sentinel, ok := reasonErrors[o.Reason]
	if !ok {
		return fmt.Errorf("unknown outcome %s: %s", o.Reason, o.Detail)
	}
	if o.Detail == "" {
		return sentinel
	}
	if o.Cause != nil && errors.Is(o.Cause, sentinel) {
		return o.Cause
	}
	return fmt.Errorf("%w: %s", sentinel, o.Detail)
}

func (o Outcome) String() string {
	if o.Detail == "" {
		return o.Reason.String()
	}
	return o.Reason.String() + ": " + o.Detail
}

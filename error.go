package vlq

import (
	"errors"
	"runtime"
)

// Errors in vlq reuse a small set of sentinel kinds, wrapped in Error with
// extra detail where applicable. Check them with errors.Is:
//
//	if _, _, err := vlq.DecodeUint32(buff); errors.Is(err, vlq.ErrTruncated) {
//		// wait for more bytes
//	}
//
// Decoding never panics on malformed input; panics are reserved for clear
// misuse of the library, such as encode buffers smaller than the width's
// maximum length.
var (
	// ErrTruncated is returned when a buffer ends before the length its
	// prefix promises.
	ErrTruncated = errors.New("truncated input")

	// ErrInvalidPrefix is returned when the leading zero run of the first
	// byte implies a length beyond the width's maximum. It indicates
	// corrupt data, or data encoded for a wider type.
	ErrInvalidPrefix = errors.New("invalid length prefix")

	// ErrOutOfRange is returned when a structurally valid encoding holds a
	// value that doesn't fit the width being decoded.
	ErrOutOfRange = errors.New("value out of range")
)

// NewError returns an Error wrapping err with message.
// depth is the number of stack frames to ascend when recording the caller,
// with 0 naming the function calling NewError.
func NewError(err error, message string, depth int) error {
	return Error{
		Err:     err,
		Message: message,
		Caller:  GetCaller(depth + 1),
	}
}

// Error wraps a sentinel error kind with detail about a specific failure.
type Error struct {
	Err     error
	Message string
	Caller  string
}

// Error implements error.
func (e Error) Error() (str string) {
	if e.Caller != "" {
		str = e.Caller + ": "
	}

	str += e.Err.Error()

	if e.Message != "" {
		str += " (" + e.Message + ")"
	}

	return str
}

// Unwrap implements errors's Unwrap().
func (e Error) Unwrap() error {
	return e.Err
}

// GetCaller returns the name of the calling function, skipping skip functions.
// i.e. 0 writes the calling function, 1 the function calling that etc...
func GetCaller(skip int) string {
	pcs := make([]uintptr, 1)
	n := runtime.Callers(2+skip, pcs)
	if n != 1 {
		return "Unknown Function"
	}

	frames := runtime.CallersFrames(pcs)
	frame, _ := frames.Next()
	return frame.Function
}

package vlqio

// Errors from vlqio come in two flavours: IOError errors indicate a bad or
// exhausted io.Reader/io.Writer, and the caller should stop using it, while
// errors from the vlq package indicate bad data on an otherwise healthy
// stream. Distinguish them with errors.As.

// NewIOError returns an IOError wrapping err with the given message.
// err is typically the error returned from the io.Reader/io.Writer, or
// another error describing why it isn't operating correctly.
func NewIOError(err error, message string) error {
	return IOError{
		Err:     err,
		Message: message,
	}
}

// IOError is returned when io errors occur, or when a reader or writer
// misbehaves.
type IOError struct {
	Err     error
	Message string
}

// Error implements error.
func (e IOError) Error() string {
	if e.Message != "" {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap implements errors's Unwrap().
func (e IOError) Unwrap() error {
	return e.Err
}

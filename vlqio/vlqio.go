// Package vlqio provides byte-source and byte-sink adapters for the vlq
// codec, along with io helpers and error types for stream use.
//
// Adapters frame nothing themselves; the bytes on the wire are exactly the
// bytes the codec defines, so streams written here can be decoded by any
// other implementation of the encoding and vice versa.
package vlqio

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Warnings is where warnings are sent to.
// In many cases vlqio will continue to operate with e.g. incorrectly
// implemented io.Readers or io.Writers, however it won't silently put up with
// things that seem worrying.
var Warnings io.Writer = os.Stderr

// Read reads from r, completely filling buff.
// If the read reports the whole buffer is read, returned errors are ignored.
// Streams ending mid-buffer fail with an IOError wrapping
// io.ErrUnexpectedEOF.
func Read(buff []byte, r io.Reader) error {
	n, err := r.Read(buff)
	if n == len(buff) {
		return nil
	}

	end := n
	for end < len(buff) && err == nil && n > 0 {
		n, err = r.Read(buff[end:])
		end += n
	}

	if end != len(buff) {
		switch {
		case end > len(buff):
			return NewIOError(
				errors.New("bad io.Reader implementation"),
				fmt.Sprintf("%T reported %v bytes read, but the buffer is only %v bytes", r, end, len(buff)),
			)
		case errors.Is(err, io.EOF):
			return NewIOError(
				io.ErrUnexpectedEOF,
				fmt.Sprintf("want %v bytes but only got %v", len(buff), end),
			)
		case err != nil:
			return err
		default: // err == nil
			return NewIOError(
				io.ErrNoProgress,
				fmt.Sprintf("want %v bytes but only got %v", len(buff), end),
			)
		}
	}
	return nil
}

// Write writes to w from buff, returning any error from Write().
// Writers that report short writes without an error are warned about and
// called again.
func Write(buff []byte, w io.Writer) error {
	n, err := w.Write(buff)
	if n == len(buff) {
		return err
	}

	end := n
	for end < len(buff) && err == nil && n > 0 {
		fmt.Fprintf(Warnings, "vlqio: %T is a bad io.Writer implementation. It wrote short (given %v bytes but reported only %v written) yet returned no error. Will call it again...\n", w, len(buff)-(end-n), n)
		n, err = w.Write(buff[end:])
		end += n
	}

	if end != len(buff) {
		switch {
		case end > len(buff):
			return NewIOError(
				errors.New("bad io.Writer implementation"),
				fmt.Sprintf("%T reported %v bytes written, but was only given %v bytes", w, end, len(buff)),
			)
		case err == nil:
			return NewIOError(
				io.ErrShortWrite,
				fmt.Sprintf("want %v bytes but only wrote %v", len(buff), end),
			)
		default:
			return NewIOError(
				err,
				fmt.Sprintf("want %v bytes but wrote %v", len(buff), end),
			)
		}
	}
	return nil
}

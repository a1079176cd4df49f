package vlqio

import (
	"errors"
	"io"

	"github.com/shabbyrobe/go-num"
	"github.com/stewi1014/vlq"
)

// NewReader returns a Reader decoding from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r: r,
	}
}

// Reader decodes integers from an io.Reader, consuming exactly the bytes of
// each encoding. It holds no buffered lookahead, so the underlying reader can
// be handed off between values.
//
// Reader is not safe for concurrent use.
type Reader struct {
	r    io.Reader
	buff [vlq.MaxLen128]byte
}

// first reads the first byte of an encoding.
// A stream ending cleanly on a value boundary returns io.EOF; anywhere else
// the end of the stream is an IOError wrapping io.ErrUnexpectedEOF.
func (r *Reader) first() error {
	err := Read(r.buff[:1], r.r)
	if err != nil && errors.Is(err, io.ErrUnexpectedEOF) {
		return io.EOF
	}
	return err
}

// ReadUint32 reads a single encoded uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.first(); err != nil {
		return 0, err
	}

	l, err := vlq.DecodeLen32(r.buff[0])
	if err != nil {
		return 0, err
	}
	if l > 1 {
		if err := Read(r.buff[1:l], r.r); err != nil {
			return 0, err
		}
	}

	n, _, err := vlq.DecodeUint32(r.buff[:l])
	return n, err
}

// ReadInt32 reads a single encoded int32.
func (r *Reader) ReadInt32() (int32, error) {
	n, err := r.ReadUint32()
	return vlq.Unzigzag32(n), err
}

// ReadUint64 reads a single encoded uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.first(); err != nil {
		return 0, err
	}

	l := vlq.DecodeLen64(r.buff[0])
	if l > 1 {
		if err := Read(r.buff[1:l], r.r); err != nil {
			return 0, err
		}
	}

	n, _, err := vlq.DecodeUint64(r.buff[:l])
	return n, err
}

// ReadInt64 reads a single encoded int64.
func (r *Reader) ReadInt64() (int64, error) {
	n, err := r.ReadUint64()
	return vlq.Unzigzag64(n), err
}

// ReadUint128 reads a single encoded U128.
func (r *Reader) ReadUint128() (num.U128, error) {
	if err := r.first(); err != nil {
		return num.U128{}, err
	}

	have := 1
	if r.buff[0] == 0 {
		// The prefix extends into the second byte.
		if err := Read(r.buff[1:2], r.r); err != nil {
			return num.U128{}, err
		}
		have = 2
	}

	l := vlq.DecodeLen128(r.buff[0], r.buff[1])
	if l > have {
		if err := Read(r.buff[have:l], r.r); err != nil {
			return num.U128{}, err
		}
	}

	n, _, err := vlq.DecodeUint128(r.buff[:l])
	return n, err
}

// ReadInt128 reads a single encoded I128.
func (r *Reader) ReadInt128() (num.I128, error) {
	n, err := r.ReadUint128()
	return vlq.Unzigzag128(n), err
}

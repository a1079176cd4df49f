package vlqio

import (
	"io"

	"github.com/shabbyrobe/go-num"
	"github.com/stewi1014/vlq"
)

// NewWriter returns a Writer encoding to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: w,
	}
}

// Writer encodes integers to an io.Writer. Each value is written with a
// single Write call on the underlying writer.
//
// Writer is not safe for concurrent use.
type Writer struct {
	w    io.Writer
	buff [vlq.MaxLen128]byte
}

// WriteUint32 writes n in its minimal encoding.
func (w *Writer) WriteUint32(n uint32) error {
	l := vlq.EncodeUint32(w.buff[:], n)
	return Write(w.buff[:l], w.w)
}

// WriteInt32 writes n in its minimal encoding.
func (w *Writer) WriteInt32(n int32) error {
	return w.WriteUint32(vlq.Zigzag32(n))
}

// WriteUint64 writes n in its minimal encoding.
func (w *Writer) WriteUint64(n uint64) error {
	l := vlq.EncodeUint64(w.buff[:], n)
	return Write(w.buff[:l], w.w)
}

// WriteInt64 writes n in its minimal encoding.
func (w *Writer) WriteInt64(n int64) error {
	return w.WriteUint64(vlq.Zigzag64(n))
}

// WriteUint128 writes n in its minimal encoding.
func (w *Writer) WriteUint128(n num.U128) error {
	l := vlq.EncodeUint128(w.buff[:], n)
	return Write(w.buff[:l], w.w)
}

// WriteInt128 writes n in its minimal encoding.
func (w *Writer) WriteInt128(n num.I128) error {
	return w.WriteUint128(vlq.Zigzag128(n))
}

package vlq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/stewi1014/vlq"
)

func TestUint32(t *testing.T) {
	testCases := []uint32{
		0, 1, 2, 3, 4,
		126, 127, 128, 129,
		16511, 16512, 16513,
		2113663, 2113664,
		270549119, 270549120, 270549121,
		1 << 30, 1<<31 + 1,
		1<<32 - 2, 1<<32 - 1,
	}

	for _, tC := range testCases {
		t.Run(fmt.Sprint(tC), func(t *testing.T) {
			var buff [vlq.MaxLen32]byte

			l := vlq.EncodeUint32(buff[:], tC)
			if l != vlq.EncodeLen32(tC) {
				t.Fatalf("wrong length, wanted: %v, got %v", vlq.EncodeLen32(tC), l)
			}

			pl, err := vlq.DecodeLen32(buff[0])
			if err != nil {
				t.Fatal(err)
			}
			if pl != l {
				t.Fatalf("peeked length %v doesn't match encoded length %v", pl, l)
			}

			n, read, err := vlq.DecodeUint32(buff[:l])
			if err != nil {
				t.Fatal(err)
			}

			if n != tC {
				t.Fatalf("wrong number, wanted: %v, got %v", tC, n)
			}

			if read != l {
				t.Fatalf("wrong number of bytes read, wanted: %v, got %v", l, read)
			}
		})
	}
}

func TestEncodeUint32(t *testing.T) {
	testCases := []struct {
		value uint32
		want  []byte
	}{
		{0, []byte{0x80}},
		{127, []byte{0xFF}},
		{128, []byte{0x40, 0x00}},
		{16511, []byte{0x7F, 0xFF}},
		{16512, []byte{0x20, 0x00, 0x00}},
		{270549119, []byte{0x1F, 0xFF, 0xFF, 0xFF}},
		{270549120, []byte{0x08, 0x00, 0x00, 0x00, 0x00}},
		{1<<32 - 1, []byte{0x08, 0xEF, 0xDF, 0xBF, 0x7F}},
	}

	for _, tC := range testCases {
		t.Run(fmt.Sprint(tC.value), func(t *testing.T) {
			var buff [vlq.MaxLen32]byte
			l := vlq.EncodeUint32(buff[:], tC.value)
			td.Cmp(t, buff[:l], tC.want)
		})
	}
}

// 64-bit encodings of values beyond the 32-bit range must not decode as
// uint32s. 5 byte encodings share their prefix with the 32-bit final class
// and fail on the payload; longer encodings fail on the prefix alone.
func TestDecodeUint32WideInput(t *testing.T) {
	testCases := []struct {
		value uint64
		want  error
	}{
		{1 << 32, vlq.ErrOutOfRange},
		{1<<35 - 1, vlq.ErrOutOfRange},
		{1 << 40, vlq.ErrInvalidPrefix},
		{1 << 50, vlq.ErrInvalidPrefix},
		{1<<64 - 1, vlq.ErrInvalidPrefix},
	}

	for _, tC := range testCases {
		t.Run(fmt.Sprint(tC.value), func(t *testing.T) {
			var buff [vlq.MaxLen64]byte
			l := vlq.EncodeUint64(buff[:], tC.value)

			_, _, err := vlq.DecodeUint32(buff[:l])
			if !errors.Is(err, tC.want) {
				t.Fatalf("wanted %v, got %v", tC.want, err)
			}
		})
	}
}

func TestDecodeUint32Truncated(t *testing.T) {
	var buff [vlq.MaxLen32]byte
	l := vlq.EncodeUint32(buff[:], 1<<32-1)

	for i := 0; i < l; i++ {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, _, err := vlq.DecodeUint32(buff[:i])
			if !errors.Is(err, vlq.ErrTruncated) {
				t.Fatalf("wanted ErrTruncated, got %v", err)
			}
		})
	}
}

func TestDecodeLen32(t *testing.T) {
	testCases := []struct {
		first byte
		want  int
		err   error
	}{
		{0x80, 1, nil},
		{0xFF, 1, nil},
		{0x40, 2, nil},
		{0x20, 3, nil},
		{0x10, 4, nil},
		{0x08, 5, nil},
		{0x0F, 5, nil},
		{0x07, 0, vlq.ErrInvalidPrefix},
		{0x04, 0, vlq.ErrInvalidPrefix},
		{0x01, 0, vlq.ErrInvalidPrefix},
		{0x00, 0, vlq.ErrInvalidPrefix},
	}

	for _, tC := range testCases {
		t.Run(fmt.Sprintf("%#02x", tC.first), func(t *testing.T) {
			l, err := vlq.DecodeLen32(tC.first)
			if !errors.Is(err, tC.err) {
				t.Fatalf("wanted error %v, got %v", tC.err, err)
			}
			if l != tC.want {
				t.Fatalf("wrong length, wanted: %v, got %v", tC.want, l)
			}
		})
	}
}

package vlq

import (
	"fmt"
	"math/bits"
)

// MaxLen32 is the maximum number of bytes an encoded uint32 occupies.
const MaxLen32 = 5

// EncodeLen32 returns the number of bytes EncodeUint32 uses for n.
func EncodeLen32(n uint32) int {
	switch {
	case n < base2:
		return 1
	case n < base3:
		return 2
	case n < base4:
		return 3
	case n < base5:
		return 4
	default:
		return 5
	}
}

// DecodeLen32 returns the number of bytes an encoded uint32 occupies, given
// its first byte. A leading zero run implying a length beyond MaxLen32 is
// only produced by corrupt data or by an encoder for a wider type, and fails
// with ErrInvalidPrefix.
func DecodeLen32(b byte) (int, error) {
	lz := bits.LeadingZeros8(b)
	switch {
	case lz < MaxLen32-1:
		return lz + 1, nil
	case lz == MaxLen32-1:
		// Final class. The 35-bit payload field covers the remaining
		// 32-bit range, so the marker never moves past bit 3.
		return MaxLen32, nil
	default:
		return 0, NewError(ErrInvalidPrefix, fmt.Sprintf("first byte %#02x implies %v bytes but 32-bit encodings have at most %v", b, lz+1, MaxLen32), 0)
	}
}

// EncodeUint32 writes n to buff in the minimal number of bytes, returning the
// encoded length. buff must be at least MaxLen32 bytes long.
func EncodeUint32(buff []byte, n uint32) int {
	_ = buff[MaxLen32-1]

	l := EncodeLen32(n)
	if l == MaxLen32 {
		v := uint64(n) - base5
		for i := MaxLen32 - 1; i >= 1; i-- {
			buff[i] = byte(v)
			v >>= 8
		}
		buff[0] = byte(1<<(8-MaxLen32)) | byte(v)
		return MaxLen32
	}

	v := n - uint32(offset64[l])
	for i := l - 1; i >= 1; i-- {
		buff[i] = byte(v)
		v >>= 8
	}
	buff[0] = byte(1<<(8-l)) | byte(v)
	return l
}

// DecodeUint32 reads an encoded uint32 from the front of buff, returning the
// value and the number of bytes consumed. Bytes beyond the encoded length are
// ignored.
func DecodeUint32(buff []byte) (uint32, int, error) {
	if len(buff) == 0 {
		return 0, 0, NewError(ErrTruncated, "empty buffer", 0)
	}

	l, err := DecodeLen32(buff[0])
	if err != nil {
		return 0, 0, err
	}
	if len(buff) < l {
		return 0, 0, NewError(ErrTruncated, fmt.Sprintf("want %v bytes but have %v", l, len(buff)), 0)
	}

	if l == MaxLen32 {
		v := uint64(buff[0] & (0xFF >> MaxLen32))
		for i := 1; i < MaxLen32; i++ {
			v = v<<8 | uint64(buff[i])
		}
		if v > (1<<32-1)-base5 {
			return 0, 0, NewError(ErrOutOfRange, fmt.Sprintf("5 byte payload %v exceeds the 32-bit range", v), 0)
		}
		return uint32(base5 + v), MaxLen32, nil
	}

	v := uint32(buff[0] & (0xFF >> l))
	for i := 1; i < l; i++ {
		v = v<<8 | uint32(buff[i])
	}
	return uint32(offset64[l]) + v, l, nil
}

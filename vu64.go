package vlq

import (
	"fmt"
	"math/bits"
)

// MaxLen64 is the maximum number of bytes an encoded uint64 occupies.
const MaxLen64 = 9

// EncodeLen64 returns the number of bytes EncodeUint64 uses for n.
func EncodeLen64(n uint64) int {
	switch {
	case n < base2:
		return 1
	case n < base3:
		return 2
	case n < base4:
		return 3
	case n < base5:
		return 4
	case n < base6:
		return 5
	case n < base7:
		return 6
	case n < base8:
		return 7
	case n < base9:
		return 8
	default:
		return 9
	}
}

// DecodeLen64 returns the number of bytes an encoded uint64 occupies, given
// its first byte.
//
//	1xxx_xxxx: 1 byte
//	01xx_xxxx: 2 bytes
//	...
//	0000_0001: 8 bytes
//	0000_0000: 9 bytes
func DecodeLen64(b byte) int {
	return bits.LeadingZeros8(b) + 1
}

// EncodeUint64 writes n to buff in the minimal number of bytes, returning the
// encoded length. buff must be at least MaxLen64 bytes long.
func EncodeUint64(buff []byte, n uint64) int {
	_ = buff[MaxLen64-1]

	l := EncodeLen64(n)
	if l == MaxLen64 {
		// Final class; no room for a marker bit. An all-zero first byte
		// followed by the remaining range in 8 bytes.
		v := n - base9
		buff[0] = 0
		for i := MaxLen64 - 1; i >= 1; i-- {
			buff[i] = byte(v)
			v >>= 8
		}
		return MaxLen64
	}

	v := n - offset64[l]
	for i := l - 1; i >= 1; i-- {
		buff[i] = byte(v)
		v >>= 8
	}
	buff[0] = byte(1<<(8-l)) | byte(v)
	return l
}

// DecodeUint64 reads an encoded uint64 from the front of buff, returning the
// value and the number of bytes consumed. Bytes beyond the encoded length are
// ignored.
func DecodeUint64(buff []byte) (uint64, int, error) {
	if len(buff) == 0 {
		return 0, 0, NewError(ErrTruncated, "empty buffer", 0)
	}

	l := DecodeLen64(buff[0])
	if len(buff) < l {
		return 0, 0, NewError(ErrTruncated, fmt.Sprintf("want %v bytes but have %v", l, len(buff)), 0)
	}

	if l == MaxLen64 {
		var v uint64
		for i := 1; i < MaxLen64; i++ {
			v = v<<8 | uint64(buff[i])
		}
		if v > ^uint64(0)-base9 {
			return 0, 0, NewError(ErrOutOfRange, fmt.Sprintf("9 byte payload %v exceeds the 64-bit range", v), 0)
		}
		return base9 + v, MaxLen64, nil
	}

	v := uint64(buff[0] & (0xFF >> l))
	for i := 1; i < l; i++ {
		v = v<<8 | uint64(buff[i])
	}
	return offset64[l] + v, l, nil
}

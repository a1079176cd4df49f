package vlq

import (
	"fmt"
	"math/bits"

	"github.com/shabbyrobe/go-num"
)

// MaxLen128 is the maximum number of bytes an encoded U128 occupies.
const MaxLen128 = 18

// EncodeLen128 returns the number of bytes EncodeUint128 uses for n.
//
// Lengths 1 through 8 are shared with the 64-bit encoding. Lengths 9 through
// 16 restart the prefix rule in the second byte, and values at or above
// base(17) take the full 18 bytes; a 17 byte class would be indistinguishable
// from the 18 byte one, so it doesn't exist.
func EncodeLen128(n num.U128) int {
	hi, lo := n.Raw()
	if hi == 0 && lo < base9 {
		return EncodeLen64(lo)
	}

	for l := 9; l < 17; l++ {
		if less128(hi, lo, offset128Hi[l+1], offset128Lo[l+1]) {
			return l
		}
	}
	return MaxLen128
}

// DecodeLen128 returns the number of bytes an encoded U128 occupies, given
// its first two bytes. The second byte only participates when the first is
// zero:
//
//	1xxx_xxxx ____: 1 byte
//	01xx_xxxx ____: 2 bytes
//	...
//	0000_0001 ____: 8 bytes
//	0000_0000 1xxx_xxxx: 9 bytes
//	0000_0000 01xx_xxxx: 10 bytes
//	...
//	0000_0000 0000_0001: 16 bytes
//	0000_0000 0000_0000: 18 bytes
func DecodeLen128(b0, b1 byte) int {
	if b0 != 0 {
		return bits.LeadingZeros8(b0) + 1
	}
	if b1 == 0 {
		return MaxLen128
	}
	return 9 + bits.LeadingZeros8(b1)
}

// EncodeUint128 writes n to buff in the minimal number of bytes, returning
// the encoded length. buff must be at least MaxLen128 bytes long.
//
// Values below base(9) encode identically to EncodeUint64.
func EncodeUint128(buff []byte, n num.U128) int {
	_ = buff[MaxLen128-1]

	hi, lo := n.Raw()
	l := EncodeLen128(n)
	switch {
	case l <= 8:
		return EncodeUint64(buff, lo)

	case l == MaxLen128:
		// Final class; the raw value behind an all-zero two byte prefix.
		buff[0], buff[1] = 0, 0
		v := hi
		for i := 9; i >= 2; i-- {
			buff[i] = byte(v)
			v >>= 8
		}
		v = lo
		for i := MaxLen128 - 1; i >= 10; i-- {
			buff[i] = byte(v)
			v >>= 8
		}
		return MaxLen128

	default:
		vhi, vlo := sub128(hi, lo, offset128Hi[l], offset128Lo[l])
		buff[0] = 0
		for i := l - 1; i >= 2; i-- {
			buff[i] = byte(vlo)
			vlo = vlo>>8 | vhi<<56
			vhi >>= 8
		}
		buff[1] = byte(1<<(16-l)) | byte(vlo)
		return l
	}
}

// DecodeUint128 reads an encoded U128 from the front of buff, returning the
// value and the number of bytes consumed. Bytes beyond the encoded length are
// ignored.
func DecodeUint128(buff []byte) (num.U128, int, error) {
	if len(buff) == 0 {
		return num.U128{}, 0, NewError(ErrTruncated, "empty buffer", 0)
	}

	if buff[0] != 0 {
		l := bits.LeadingZeros8(buff[0]) + 1
		if len(buff) < l {
			return num.U128{}, 0, NewError(ErrTruncated, fmt.Sprintf("want %v bytes but have %v", l, len(buff)), 0)
		}

		v := uint64(buff[0] & (0xFF >> l))
		for i := 1; i < l; i++ {
			v = v<<8 | uint64(buff[i])
		}
		return num.U128From64(offset64[l] + v), l, nil
	}

	// Extended prefix; the length lives in the second byte.
	if len(buff) < 2 {
		return num.U128{}, 0, NewError(ErrTruncated, "want 2 bytes of prefix but have 1", 0)
	}

	l := DecodeLen128(0, buff[1])
	if len(buff) < l {
		return num.U128{}, 0, NewError(ErrTruncated, fmt.Sprintf("want %v bytes but have %v", l, len(buff)), 0)
	}

	if l == MaxLen128 {
		var hi, lo uint64
		for i := 2; i < 10; i++ {
			hi = hi<<8 | uint64(buff[i])
		}
		for i := 10; i < MaxLen128; i++ {
			lo = lo<<8 | uint64(buff[i])
		}
		return num.U128FromRaw(hi, lo), MaxLen128, nil
	}

	vlo := uint64(buff[1] & (0xFF >> (l - 8)))
	var vhi uint64
	for i := 2; i < l; i++ {
		vhi = vhi<<8 | vlo>>56
		vlo = vlo<<8 | uint64(buff[i])
	}

	hi, lo := add128(vhi, vlo, offset128Hi[l], offset128Lo[l])
	return num.U128FromRaw(hi, lo), l, nil
}

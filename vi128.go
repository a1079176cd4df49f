package vlq

import "github.com/shabbyrobe/go-num"

// Zigzag128 maps a signed integer onto the unsigned range; see Zigzag64.
// The shifts operate on the raw two's complement halves of n.
func Zigzag128(n num.I128) num.U128 {
	hi, lo := n.AsU128().Raw()
	fill := uint64(int64(hi) >> 63)
	return num.U128FromRaw((hi<<1|lo>>63)^fill, lo<<1^fill)
}

// Unzigzag128 is the inverse of Zigzag128.
func Unzigzag128(n num.U128) num.I128 {
	hi, lo := n.Raw()
	fill := -(lo & 1)
	return num.U128FromRaw(hi>>1^fill, (lo>>1|hi<<63)^fill).AsI128()
}

// EncodeInt128 writes n to buff in the minimal number of bytes, returning the
// encoded length. buff must be at least MaxLen128 bytes long.
func EncodeInt128(buff []byte, n num.I128) int {
	return EncodeUint128(buff, Zigzag128(n))
}

// DecodeInt128 reads an encoded I128 from the front of buff, returning the
// value and the number of bytes consumed.
func DecodeInt128(buff []byte) (num.I128, int, error) {
	v, l, err := DecodeUint128(buff)
	return Unzigzag128(v), l, err
}

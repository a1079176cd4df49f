package vlq

// Zigzag64 maps a signed integer onto the unsigned range, interleaving
// positive and negative values by magnitude: 0, -1, 1, -2, 2 ... map to
// 0, 1, 2, 3, 4 ...
func Zigzag64(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// Unzigzag64 is the inverse of Zigzag64.
func Unzigzag64(n uint64) int64 {
	return int64(n>>1) ^ -int64(n&1)
}

// EncodeInt64 writes n to buff in the minimal number of bytes, returning the
// encoded length. buff must be at least MaxLen64 bytes long.
func EncodeInt64(buff []byte, n int64) int {
	return EncodeUint64(buff, Zigzag64(n))
}

// DecodeInt64 reads an encoded int64 from the front of buff, returning the
// value and the number of bytes consumed.
func DecodeInt64(buff []byte) (int64, int, error) {
	v, l, err := DecodeUint64(buff)
	return Unzigzag64(v), l, err
}

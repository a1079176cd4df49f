package vlq

// Zigzag32 maps a signed integer onto the unsigned range; see Zigzag64.
func Zigzag32(n int32) uint32 {
	return uint32(n<<1) ^ uint32(n>>31)
}

// Unzigzag32 is the inverse of Zigzag32.
func Unzigzag32(n uint32) int32 {
	return int32(n>>1) ^ -int32(n&1)
}

// EncodeInt32 writes n to buff in the minimal number of bytes, returning the
// encoded length. buff must be at least MaxLen32 bytes long.
func EncodeInt32(buff []byte, n int32) int {
	return EncodeUint32(buff, Zigzag32(n))
}

// DecodeInt32 reads an encoded int32 from the front of buff, returning the
// value and the number of bytes consumed.
func DecodeInt32(buff []byte) (int32, int, error) {
	v, l, err := DecodeUint32(buff)
	return Unzigzag32(v), l, err
}

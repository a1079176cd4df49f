// Package vlq implements a self-delimiting variable-length encoding for
// unsigned and signed integers of 32, 64 and 128 bits.
//
// The number of bytes an encoded integer occupies is derivable from its first
// byte alone (first two bytes for the extended lengths of the 128-bit width),
// allowing readers to size reads and skip values without decoding them.
// The length is held as a run of leading zero bits terminated by a marker bit,
// and the remaining bits of the first byte along with any continuation bytes
// hold the value, biased so that every byte count covers a contiguous,
// non-overlapping range. Encoders always produce the smallest byte count that
// can hold the value.
//
// Lengths range from 1 byte up to MaxLen32 (5), MaxLen64 (9) and MaxLen128
// (18) bytes respectively. Signed integers are first mapped onto the unsigned
// range with the zigzag transform, so small magnitudes of either sign stay
// small on the wire.
//
// Encoding and decoding are pure functions over caller-supplied buffers; the
// package performs no allocation and holds no state, and is safe for
// concurrent use. Errors follow the scheme described on Error; panics are
// reserved for clear misuse, such as undersized encode buffers.
//
// vlq/vlqio layers stream adapters over the codec for io.Reader/io.Writer and
// for incremental, non-blocking reassembly.
package vlq

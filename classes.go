package vlq

import "math/bits"

// Length class offsets. A length of L bytes carries 7L payload bits, and the
// classes are stacked so each begins where the previous ends:
//
//	base(L) = 2^7 + 2^14 + ... + 2^(7(L-1))
//
// The final class of each width is the exception; it is sized to the width's
// remaining range rather than continuing the 7-bit pattern.
const (
	base2 = 1 << 7
	base3 = base2 + 1<<14
	base4 = base3 + 1<<21
	base5 = base4 + 1<<28
	base6 = base5 + 1<<35
	base7 = base6 + 1<<42
	base8 = base7 + 1<<49
	base9 = base8 + 1<<56
)

// offset64 indexes base(L) by length for the shared 1..9 byte classes.
var offset64 = [MaxLen64 + 1]uint64{
	1: 0,
	2: base2,
	3: base3,
	4: base4,
	5: base5,
	6: base6,
	7: base7,
	8: base8,
	9: base9,
}

// The 128-bit extended classes continue the same stacking past the 64-bit
// halfway point: base(10) = base(9) + 2^63, then increments of 2^70, 2^77 and
// so on up to base(17). The low half is constant from length 10 onwards as
// every later increment lands in the high half.
const (
	extLo   = base9 + 1<<63
	extHi11 = 1 << 6 // 2^70 past the 64-bit halfway point lands at bit 6 of the high half.
	extHi12 = extHi11 + 1<<13
	extHi13 = extHi12 + 1<<20
	extHi14 = extHi13 + 1<<27
	extHi15 = extHi14 + 1<<34
	extHi16 = extHi15 + 1<<41
	extHi17 = extHi16 + 1<<48
)

var offset128Hi = [MaxLen128]uint64{
	11: extHi11,
	12: extHi12,
	13: extHi13,
	14: extHi14,
	15: extHi15,
	16: extHi16,
	17: extHi17,
}

var offset128Lo = [MaxLen128]uint64{
	1: 0,
	2: base2,
	3: base3,
	4: base4,
	5: base5,
	6: base6,
	7: base7,
	8: base8,
	9: base9,

	10: extLo,
	11: extLo,
	12: extLo,
	13: extLo,
	14: extLo,
	15: extLo,
	16: extLo,
	17: extLo,
}

func add128(ahi, alo, bhi, blo uint64) (hi, lo uint64) {
	lo, carry := bits.Add64(alo, blo, 0)
	hi, _ = bits.Add64(ahi, bhi, carry)
	return
}

func sub128(ahi, alo, bhi, blo uint64) (hi, lo uint64) {
	lo, borrow := bits.Sub64(alo, blo, 0)
	hi, _ = bits.Sub64(ahi, bhi, borrow)
	return
}

// less128 reports (ahi, alo) < (bhi, blo).
func less128(ahi, alo, bhi, blo uint64) bool {
	return ahi < bhi || (ahi == bhi && alo < blo)
}

package vlqio

import (
	"fmt"

	"github.com/stewi1014/vlq"
)

// NewAssembler returns an Assembler for encodings of at most maxLen bytes;
// one of vlq.MaxLen32, vlq.MaxLen64 or vlq.MaxLen128. It panics on anything
// else.
func NewAssembler(maxLen int) *Assembler {
	switch maxLen {
	case vlq.MaxLen32, vlq.MaxLen64, vlq.MaxLen128:
	default:
		panic(fmt.Sprintf("vlqio: %v is not a maximum encoding length", maxLen))
	}
	return &Assembler{
		max: maxLen,
	}
}

// Assembler collects one encoding from arbitrarily fragmented input.
// Feed it byte slices as they arrive; it consumes bytes until it holds a
// complete encoding, leaving trailing bytes untouched for the caller.
//
// Assembler is not safe for concurrent use.
type Assembler struct {
	buff [vlq.MaxLen128]byte
	max  int
	have int
	need int
}

// Feed consumes bytes from p, returning the number consumed and whether a
// complete encoding is now held. A first byte that cannot begin an encoding
// of the configured width fails with ErrInvalidPrefix; the assembler must be
// Reset before further use.
func (a *Assembler) Feed(p []byte) (int, bool, error) {
	var consumed int
	for consumed < len(p) && !a.Done() {
		a.buff[a.have] = p[consumed]
		a.have++
		consumed++

		if a.need == 0 {
			need, err := a.peek()
			if err != nil {
				return consumed, false, err
			}
			a.need = need
		}
	}
	return consumed, a.Done(), nil
}

// Done returns whether a complete encoding is held.
func (a *Assembler) Done() bool {
	return a.need != 0 && a.have == a.need
}

// Bytes returns the assembled encoding.
// It panics if the encoding is incomplete. The returned slice is only valid
// until the next call to Feed or Reset.
func (a *Assembler) Bytes() []byte {
	if !a.Done() {
		panic(fmt.Sprintf("vlqio: incomplete encoding; have %v of %v bytes", a.have, a.need))
	}
	return a.buff[:a.have]
}

// Reset discards any held bytes, readying the Assembler for the next
// encoding.
func (a *Assembler) Reset() {
	a.have = 0
	a.need = 0
}

// peek returns the total length of the held encoding, or 0 if more prefix
// bytes are needed. Mirrors the DecodeLen function of the configured width.
func (a *Assembler) peek() (int, error) {
	switch a.max {
	case vlq.MaxLen32:
		return vlq.DecodeLen32(a.buff[0])
	case vlq.MaxLen64:
		return vlq.DecodeLen64(a.buff[0]), nil
	default:
		if a.buff[0] == 0 && a.have < 2 {
			return 0, nil
		}
		return vlq.DecodeLen128(a.buff[0], a.buff[1]), nil
	}
}

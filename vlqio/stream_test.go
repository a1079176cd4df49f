package vlqio_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/shabbyrobe/go-num"

	"github.com/stewi1014/vlq"
	"github.com/stewi1014/vlq/vlqio"
)

func TestAssembler(t *testing.T) {
	var enc [vlq.MaxLen128]byte
	testCases := []struct {
		maxLen int
		encode func() int
	}{
		{vlq.MaxLen32, func() int { return vlq.EncodeUint32(enc[:], 1<<32-1) }},
		{vlq.MaxLen32, func() int { return vlq.EncodeUint32(enc[:], 0) }},
		{vlq.MaxLen64, func() int { return vlq.EncodeUint64(enc[:], 1<<64-1) }},
		{vlq.MaxLen64, func() int { return vlq.EncodeUint64(enc[:], 16512) }},
		{vlq.MaxLen128, func() int { return vlq.EncodeUint128(enc[:], num.U128From64(127)) }},
		{vlq.MaxLen128, func() int { return vlq.EncodeUint128(enc[:], num.U128FromRaw(0, 1<<63)) }},
		{vlq.MaxLen128, func() int { return vlq.EncodeUint128(enc[:], num.U128FromRaw(1<<63, 0)) }},
	}

	for i, tC := range testCases {
		l := tC.encode()
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			// Byte at a time.
			a := vlqio.NewAssembler(tC.maxLen)
			for i := 0; i < l; i++ {
				if a.Done() {
					t.Fatalf("done after %v of %v bytes", i, l)
				}
				consumed, done, err := a.Feed(enc[i : i+1])
				if err != nil {
					t.Fatal(err)
				}
				if consumed != 1 {
					t.Fatalf("consumed %v bytes of 1", consumed)
				}
				if done != (i == l-1) {
					t.Fatalf("done is %v after %v of %v bytes", done, i+1, l)
				}
			}
			td.Cmp(t, a.Bytes(), enc[:l])

			// All at once, with trailing bytes it mustn't touch.
			a.Reset()
			consumed, done, err := a.Feed(enc[:vlq.MaxLen128])
			if err != nil {
				t.Fatal(err)
			}
			if !done {
				t.Fatalf("not done after a complete encoding")
			}
			if consumed != l {
				t.Fatalf("consumed %v bytes of a %v byte encoding", consumed, l)
			}
			td.Cmp(t, a.Bytes(), enc[:l])
		})
	}
}

func TestAssemblerInvalidPrefix(t *testing.T) {
	a := vlqio.NewAssembler(vlq.MaxLen32)

	_, _, err := a.Feed([]byte{0x00})
	if !errors.Is(err, vlq.ErrInvalidPrefix) {
		t.Fatalf("wanted ErrInvalidPrefix, got %v", err)
	}
}

func TestAssemblerEmptyFeed(t *testing.T) {
	a := vlqio.NewAssembler(vlq.MaxLen64)

	consumed, done, err := a.Feed(nil)
	if err != nil {
		t.Fatal(err)
	}
	if consumed != 0 || done {
		t.Fatalf("consumed %v, done %v from an empty feed", consumed, done)
	}
}

func TestNewAssemblerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("no panic from an invalid maximum length")
		}
	}()
	vlqio.NewAssembler(7)
}

package vlqio_test

import (
	"io"
	"testing"

	"github.com/stewi1014/vlq/vlqio"
)

func TestBuffer(t *testing.T) {
	buff := new(vlqio.Buffer)

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if _, err := buff.Write(data); err != nil {
		t.Fatal(err)
	}
	if buff.Len() != len(data) {
		t.Fatalf("wrong length, wanted: %v, got %v", len(data), buff.Len())
	}

	read := make([]byte, 3)
	for i := 0; i < 2; i++ {
		n, err := buff.Read(read)
		if err != nil || n != 3 {
			t.Fatalf("read %v bytes (%v)", n, err)
		}
	}

	b, err := buff.ReadByte()
	if err != nil || b != 7 {
		t.Fatalf("wanted byte 7, got %v (%v)", b, err)
	}

	n, err := buff.Read(read)
	if n != 1 || err != io.EOF {
		t.Fatalf("wanted 1 byte and io.EOF at the end, got %v (%v)", n, err)
	}
}

// The whole point of Pipe; a reader draining values as a separate goroutine
// writes them.
func TestPipe(t *testing.T) {
	pipe := vlqio.NewPipe()
	r := vlqio.NewReader(pipe)

	const count = 1000
	go func() {
		w := vlqio.NewWriter(pipe)
		for i := 0; i < count; i++ {
			if err := w.WriteUint64(uint64(i) * 123456789); err != nil {
				t.Error(err)
				break
			}
		}
		if err := pipe.Close(); err != nil {
			t.Error(err)
		}
	}()

	for i := 0; i < count; i++ {
		n, err := r.ReadUint64()
		if err != nil {
			t.Fatal(err)
		}
		if n != uint64(i)*123456789 {
			t.Fatalf("wrong number, wanted: %v, got %v", uint64(i)*123456789, n)
		}
	}

	if _, err := r.ReadUint64(); err != io.EOF {
		t.Fatalf("wanted io.EOF at end of stream, got %v", err)
	}

	if _, err := pipe.Write([]byte{0x80}); err != io.ErrClosedPipe {
		t.Fatalf("wanted io.ErrClosedPipe, got %v", err)
	}
}

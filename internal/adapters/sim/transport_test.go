package sim

import (
	"bytes"
	"errors"
	"testing"
)

func TestTransport_RecordsWrites(t *testing.T) {
	tr := New()

	frames := [][]byte{{0x60, 0x01}, {0x13, 0x30, 0xFF}}
	for _, f := range frames {
		if err := tr.Write(f); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	if tr.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", tr.Count())
	}
	for i, w := range tr.Writes() {
		if !bytes.Equal(w, frames[i]) {
			t.Errorf("write %d = % X, want % X", i, w, frames[i])
		}
	}
}

func TestTransport_WriteCopiesInput(t *testing.T) {
	tr := New()
	buf := []byte{0x01, 0x02}
	if err := tr.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	buf[0] = 0xFF
	if tr.Writes()[0][0] != 0x01 {
		t.Error("recorded write aliases caller buffer")
	}
}

func TestTransport_FailAt(t *testing.T) {
	tr := New()
	fail := errors.New("boom")
	tr.FailAt(2, fail)

	if err := tr.Write([]byte{0x01}); err != nil {
		t.Fatalf("write 1 error = %v", err)
	}
	if err := tr.Write([]byte{0x02}); !errors.Is(err, fail) {
		t.Fatalf("write 2 error = %v, want boom", err)
	}
	if tr.Count() != 1 {
		t.Errorf("Count() = %d, want 1 (failed write not recorded)", tr.Count())
	}
}

func TestTransport_Close(t *testing.T) {
	tr := New()
	if err := tr.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

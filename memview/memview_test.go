package memview

import (
	"context"
	stderrors "errors"
	"math"
	"testing"
	"unsafe"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/transmute/errors"
)

// moduleWithMemory is a hand-assembled wasm module that exports one page
// of linear memory as "memory": header, memory section, export section.
var moduleWithMemory = []byte{
	0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00,
	0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x0A, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
}

func newMemory(t *testing.T) api.Memory {
	t.Helper()
	ctx := context.Background()

	r := wazero.NewRuntime(ctx)
	t.Cleanup(func() { _ = r.Close(ctx) })

	mod, err := r.Instantiate(ctx, moduleWithMemory)
	if err != nil {
		t.Fatalf("instantiate module: %v", err)
	}
	mem := mod.Memory()
	if mem == nil {
		t.Fatal("module has no exported memory")
	}
	return mem
}

func TestRaw(t *testing.T) {
	mem := newMemory(t)

	t.Run("window aliases guest memory", func(t *testing.T) {
		if !mem.WriteByte(10, 0xAB) {
			t.Fatal("WriteByte failed")
		}

		b, err := Raw(mem, 10, 4)
		if err != nil {
			t.Fatalf("Raw() error = %v", err)
		}
		if b[0] != 0xAB {
			t.Errorf("b[0] = 0x%02X, want 0xAB", b[0])
		}

		b[1] = 0xCD
		got, ok := mem.ReadByte(11)
		if !ok || got != 0xCD {
			t.Errorf("guest byte = 0x%02X, want 0xCD (host write not visible)", got)
		}
	})

	t.Run("window past the end rejected", func(t *testing.T) {
		_, err := Raw(mem, mem.Size()-2, 4)

		var oor *errors.OutOfRangeError
		if !stderrors.As(err, &oor) {
			t.Fatalf("Raw() error = %v, want *errors.OutOfRangeError", err)
		}
		if oor.Offset != mem.Size()-2 {
			t.Errorf("Offset = %d, want %d", oor.Offset, mem.Size()-2)
		}
		if oor.Length != 4 {
			t.Errorf("Length = %d, want 4", oor.Length)
		}
		if oor.Size != mem.Size() {
			t.Errorf("Size = %d, want %d", oor.Size, mem.Size())
		}
	})
}

func TestOfPutSliceRoundTrip(t *testing.T) {
	mem := newMemory(t)

	src := []uint32{10, 20, 30, 40}
	if err := PutSlice(mem, 16, src); err != nil {
		t.Fatalf("PutSlice() error = %v", err)
	}

	got, err := Of[uint32](mem, 16, 4)
	if err != nil {
		t.Fatalf("Of() error = %v", err)
	}
	for i, want := range src {
		if got[i] != want {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want)
		}
	}

	// The view aliases guest memory.
	got[0] = 99
	back, err := One[uint32](mem, 16)
	if err != nil {
		t.Fatalf("One() error = %v", err)
	}
	if back != 99 {
		t.Errorf("guest value after view write = %d, want 99", back)
	}
}

func TestOnePutRoundTrip(t *testing.T) {
	mem := newMemory(t)

	if err := Put(mem, 8, uint64(0x1122334455667788)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := One[uint64](mem, 8)
	if err != nil {
		t.Fatalf("One() error = %v", err)
	}
	if got != 0x1122334455667788 {
		t.Errorf("One() = 0x%016X, want 0x1122334455667788", got)
	}
}

func TestOfMisalignedOffset(t *testing.T) {
	mem := newMemory(t)

	_, err := Of[uint32](mem, 2, 1)
	var ue *errors.UnalignedError
	if !stderrors.As(err, &ue) {
		t.Fatalf("Of() error = %v, want *errors.UnalignedError", err)
	}

	alignOf := unsafe.Alignof(uint32(0))
	wantOff := int((alignOf - 2%alignOf) % alignOf)
	if ue.Offset != wantOff {
		t.Errorf("Offset = %d, want %d", ue.Offset, wantOff)
	}
}

func TestOfOutOfRange(t *testing.T) {
	mem := newMemory(t)

	_, err := Of[uint32](mem, mem.Size()-4, 2)
	var oor *errors.OutOfRangeError
	if !stderrors.As(err, &oor) {
		t.Fatalf("Of() error = %v, want *errors.OutOfRangeError", err)
	}
	if oor.Length != 8 {
		t.Errorf("Length = %d, want 8", oor.Length)
	}
}

func TestOfCountOverflow(t *testing.T) {
	mem := newMemory(t)

	_, err := Of[uint64](mem, 0, math.MaxUint32)
	var oor *errors.OutOfRangeError
	if !stderrors.As(err, &oor) {
		t.Fatalf("Of() error = %v, want *errors.OutOfRangeError", err)
	}
}

func TestOfUnsupportedType(t *testing.T) {
	mem := newMemory(t)

	_, err := Of[*uint32](mem, 0, 1)
	var ute *errors.UnsupportedTypeError
	if !stderrors.As(err, &ute) {
		t.Fatalf("Of() error = %v, want *errors.UnsupportedTypeError", err)
	}
}

func TestBools(t *testing.T) {
	mem := newMemory(t)

	t.Run("legal encodings decode", func(t *testing.T) {
		if !mem.Write(32, []byte{0x01, 0x00, 0x01}) {
			t.Fatal("Write failed")
		}

		got, err := Bools(mem, 32, 3)
		if err != nil {
			t.Fatalf("Bools() error = %v", err)
		}
		want := []bool{true, false, true}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("illegal encoding rejected", func(t *testing.T) {
		if !mem.Write(32, []byte{0x01, 0x02}) {
			t.Fatal("Write failed")
		}

		_, err := Bools(mem, 32, 2)
		var ive *errors.InvalidValueError
		if !stderrors.As(err, &ive) {
			t.Fatalf("Bools() error = %v, want *errors.InvalidValueError", err)
		}
		if ive.Offset != 1 {
			t.Errorf("Offset = %d, want 1", ive.Offset)
		}
	})
}

func TestPutOutOfRange(t *testing.T) {
	mem := newMemory(t)

	err := Put(mem, mem.Size()-2, uint32(1))
	var oor *errors.OutOfRangeError
	if !stderrors.As(err, &oor) {
		t.Fatalf("Put() error = %v, want *errors.OutOfRangeError", err)
	}
}

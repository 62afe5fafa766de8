package cast

import (
	"testing"
	"unsafe"
)

// alignedBytes returns a byte view over uint64 storage so the base is
// aligned for every primitive element type.
func alignedBytes(words int) []byte {
	backing := make([]uint64, words)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(backing))), words*8)
}

func TestSizeAlign(t *testing.T) {
	if got := Size[uint32](); got != 4 {
		t.Errorf("Size[uint32]() = %d, want 4", got)
	}
	if got := Size[[3]uint16](); got != 6 {
		t.Errorf("Size[[3]uint16]() = %d, want 6", got)
	}
	if got := Align[uint64](); got != unsafe.Alignof(uint64(0)) {
		t.Errorf("Align[uint64]() = %d, want %d", got, unsafe.Alignof(uint64(0)))
	}
}

func TestSliceAliasesInput(t *testing.T) {
	b := alignedBytes(2)
	u := Slice[uint32](b, 4)

	if len(u) != 4 {
		t.Fatalf("len = %d, want 4", len(u))
	}
	if cap(u) != 4 {
		t.Errorf("cap = %d, want 4 (clamped to count)", cap(u))
	}

	u[1] = 0xDEADBEEF
	if got := Slice[uint32](b, 4)[1]; got != 0xDEADBEEF {
		t.Errorf("write through view not visible in storage: got 0x%08X", got)
	}
}

func TestSliceEmpty(t *testing.T) {
	if got := Slice[uint32](nil, 0); got != nil {
		t.Errorf("Slice(nil, 0) = %v, want nil", got)
	}
	if got := Slice[uint32](alignedBytes(1), 0); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestSliceCapKeepsCapacity(t *testing.T) {
	b := alignedBytes(4)
	s := SliceCap[uint32](b, 2, 8)

	if len(s) != 2 {
		t.Errorf("len = %d, want 2", len(s))
	}
	if cap(s) != 8 {
		t.Errorf("cap = %d, want 8", cap(s))
	}
}

func TestValueReadsFirstElement(t *testing.T) {
	b := alignedBytes(2)
	u := Slice[uint64](b, 2)
	u[0] = 0x1122334455667788

	if got := Value[uint64](b); got != 0x1122334455667788 {
		t.Errorf("Value() = 0x%016X, want 0x1122334455667788", got)
	}
}

func TestBytesAliasesValue(t *testing.T) {
	v := uint64(5)
	bs := Bytes(&v)

	if len(bs) != 8 {
		t.Fatalf("len = %d, want 8", len(bs))
	}
	if got := Value[uint64](bs); got != 5 {
		t.Errorf("Value(Bytes()) = %d, want 5", got)
	}

	bs[0] ^= 0xFF
	if got := Value[uint64](bs); got == 5 || got != v {
		t.Errorf("mutation through byte view not reflected: view 0x%X, value 0x%X", got, v)
	}
}

func TestSliceBytesScalesLenAndCap(t *testing.T) {
	s := make([]uint32, 3, 5)
	s[0], s[1], s[2] = 1, 2, 3

	bs := SliceBytes(s)
	if len(bs) != 12 {
		t.Errorf("len = %d, want 12", len(bs))
	}
	if cap(bs) != 20 {
		t.Errorf("cap = %d, want 20", cap(bs))
	}

	back := Slice[uint32](bs, 3)
	for i, want := range []uint32{1, 2, 3} {
		if back[i] != want {
			t.Errorf("back[%d] = %d, want %d", i, back[i], want)
		}
	}
}

func TestSliceBytesEmpty(t *testing.T) {
	if got := SliceBytes[uint32](nil); got != nil {
		t.Errorf("SliceBytes(nil) = %v, want nil", got)
	}
}

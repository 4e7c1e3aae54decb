package xmm

import "testing"

func TestCmpEqI8(t *testing.T) {
	a := FromInt8s([16]int8{1, 2, 3, -4, 0, 127, -128, 9, 1, 1, 1, 1, 0, 0, 0, 0})
	b := FromInt8s([16]int8{1, 0, 3, 4, 0, 127, 127, -9, 1, 2, 1, 2, 0, 1, 0, 1})
	want := [16]uint8{0xff, 0, 0xff, 0, 0xff, 0xff, 0, 0, 0xff, 0, 0xff, 0, 0xff, 0, 0xff, 0}
	got := CmpEqI8(a, b).Uint8s()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CmpEqI8 lane %d: got %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestCmpGtSignedSemantics(t *testing.T) {
	a := FromInt16s([8]int16{-1, 1, 0, -32768, 32767, 5, -5, 0})
	b := FromInt16s([8]int16{1, -1, 0, 32767, -32768, 5, -6, -1})
	want := [8]uint16{0, 0xffff, 0, 0, 0xffff, 0, 0xffff, 0xffff}
	if got := CmpGtI16(a, b).Uint16s(); got != want {
		t.Errorf("CmpGtI16: got %#x, want %#x", got, want)
	}
}

func TestCmpI32(t *testing.T) {
	a := FromInt32s([4]int32{-1, 42, -2147483648, 7})
	b := FromInt32s([4]int32{-1, 43, 2147483647, -7})
	if got, want := CmpEqI32(a, b).Uint32s(), [4]uint32{0xffffffff, 0, 0, 0}; got != want {
		t.Errorf("CmpEqI32: got %#x, want %#x", got, want)
	}
	if got, want := CmpGtI32(a, b).Uint32s(), [4]uint32{0, 0, 0, 0xffffffff}; got != want {
		t.Errorf("CmpGtI32: got %#x, want %#x", got, want)
	}
}

func TestMaskFeedsBitwiseSelect(t *testing.T) {
	a := FromInt32s([4]int32{5, -3, 100, -7})
	b := FromInt32s([4]int32{3, -2, 200, -7})
	mask := CmpGtI32(a, b)
	max := Or(And(mask, a), AndNot(mask, b))
	want := [4]int32{5, -2, 200, -7}
	if got := max.Int32s(); got != want {
		t.Errorf("select max: got %v, want %v", got, want)
	}
}

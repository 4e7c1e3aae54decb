package mmx

import "testing"

func TestCmpeqPi8(t *testing.T) {
	a := FromInt8s([8]int8{1, 2, 3, -4, 0, 127, -128, 9})
	b := FromInt8s([8]int8{1, 0, 3, 4, 0, 127, 127, -9})
	want := [8]uint8{0xff, 0, 0xff, 0, 0xff, 0xff, 0, 0}
	got := CmpeqPi8(a, b).Uint8s()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CmpeqPi8 lane %d: got %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestCmpeqPi16(t *testing.T) {
	a := FromInt16s([4]int16{100, -100, 0, 32767})
	b := FromInt16s([4]int16{100, 100, 0, -32768})
	want := [4]uint16{0xffff, 0, 0xffff, 0}
	if got := CmpeqPi16(a, b).Uint16s(); got != want {
		t.Errorf("CmpeqPi16: got %#x, want %#x", got, want)
	}
}

func TestCmpeqPi32(t *testing.T) {
	a := FromInt32s([2]int32{-1, 42})
	b := FromInt32s([2]int32{-1, 43})
	want := [2]uint32{0xffffffff, 0}
	if got := CmpeqPi32(a, b).Uint32s(); got != want {
		t.Errorf("CmpeqPi32: got %#x, want %#x", got, want)
	}
}

func TestCmpgtIsSigned(t *testing.T) {
	// -1 (0xff) is below every non-negative value under signed comparison;
	// a bitwise comparison would order it highest.
	a := FromInt8s([8]int8{-1, 1, 0, -128, 127, 5, -5, 0})
	b := FromInt8s([8]int8{1, -1, 0, 127, -128, 5, -6, -1})
	want := [8]uint8{0, 0xff, 0, 0, 0xff, 0, 0xff, 0xff}
	if got := CmpgtPi8(a, b).Uint8s(); got != want {
		t.Errorf("CmpgtPi8: got %v, want %v", got, want)
	}
}

func TestCmpgtPi16(t *testing.T) {
	a := FromInt16s([4]int16{-32768, 32767, 0, 1})
	b := FromInt16s([4]int16{32767, -32768, -1, 1})
	want := [4]uint16{0, 0xffff, 0xffff, 0}
	if got := CmpgtPi16(a, b).Uint16s(); got != want {
		t.Errorf("CmpgtPi16: got %#x, want %#x", got, want)
	}
}

func TestCmpgtPi32(t *testing.T) {
	a := FromInt32s([2]int32{-2147483648, 5})
	b := FromInt32s([2]int32{2147483647, 4})
	want := [2]uint32{0, 0xffffffff}
	if got := CmpgtPi32(a, b).Uint32s(); got != want {
		t.Errorf("CmpgtPi32: got %#x, want %#x", got, want)
	}
}

func TestMasksAreAllOnesOrAllZeros(t *testing.T) {
	patterns := []M64{
		0,
		0xffffffffffffffff,
		0x0123456789abcdef,
		0x80007fff80007fff,
		0xfedcba9876543210,
	}
	for _, a := range patterns {
		for _, b := range patterns {
			for _, m := range []M64{CmpeqPi8(a, b), CmpgtPi8(a, b)} {
				for i, lane := range m.Uint8s() {
					if lane != 0 && lane != 0xff {
						t.Errorf("8-bit mask lane %d: got %#x, want 0 or 0xff", i, lane)
					}
				}
			}
			for _, m := range []M64{CmpeqPi16(a, b), CmpgtPi16(a, b)} {
				for i, lane := range m.Uint16s() {
					if lane != 0 && lane != 0xffff {
						t.Errorf("16-bit mask lane %d: got %#x, want 0 or 0xffff", i, lane)
					}
				}
			}
			for _, m := range []M64{CmpeqPi32(a, b), CmpgtPi32(a, b)} {
				for i, lane := range m.Uint32s() {
					if lane != 0 && lane != 0xffffffff {
						t.Errorf("32-bit mask lane %d: got %#x, want 0 or 0xffffffff", i, lane)
					}
				}
			}
		}
	}
}

func TestSelectByMask(t *testing.T) {
	// The classic lane-wise max: the mask feeds the bitwise ops directly.
	a := FromInt16s([4]int16{5, -3, 100, -32768})
	b := FromInt16s([4]int16{3, -2, 200, 32767})
	mask := CmpgtPi16(a, b)
	max := OrSi64(AndSi64(mask, a), AndnotSi64(mask, b))

	want := [4]int16{5, -2, 200, 32767}
	if got := max.Int16s(); got != want {
		t.Errorf("select-by-mask max: got %v, want %v", got, want)
	}
}

package xmm

import "testing"

func TestMulHighI16(t *testing.T) {
	a := FromInt16s([8]int16{4, 8, -16, 7, -32768, -32768, 32767, -1})
	b := FromInt16s([8]int16{16384, 16384, 16384, 16384, -32768, 32767, 32767, 1})
	want := [8]int16{1, 2, -4, 1, 16384, -16384, 16383, -1}
	got := MulHighI16(a, b).Int16s()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MulHighI16 lane %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMulLowI16(t *testing.T) {
	a := FromInt16s([8]int16{3, -3, 257, -32768, 0, 1, -1, 255})
	b := FromInt16s([8]int16{4, 4, 257, -1, 9, 1, -1, 255})
	want := [8]int16{12, -12, 513, -32768, 0, 1, 1, -511}
	if got := MulLowI16(a, b).Int16s(); got != want {
		t.Errorf("MulLowI16: got %v, want %v", got, want)
	}
}

func TestMAddI16(t *testing.T) {
	a := FromInt16s([8]int16{1, 2, 3, 4, -1, 2, -32768, -32768})
	b := FromInt16s([8]int16{10, 20, 30, 40, 10, 20, -32768, -32768})
	// Pairs: 10+40, 90+160, -10+40, and the single overflowing input
	// 2*(1<<30) which wraps to the 32-bit minimum.
	want := [4]int32{50, 250, 30, -2147483648}
	if got := MAddI16(a, b).Int32s(); got != want {
		t.Errorf("MAddI16: got %v, want %v", got, want)
	}
}

func TestHighLowRecombine(t *testing.T) {
	a := FromInt16s([8]int16{1234, -5678, 32767, -32768, 999, -999, 17, -17})
	b := FromInt16s([8]int16{4321, 8765, -2, 3, -999, 999, 1000, -1000})
	hi, lo := MulHighI16(a, b).Int16s(), MulLowI16(a, b).Uint16s()
	x, y := a.Int16s(), b.Int16s()
	for i := range hi {
		got := int32(hi[i])<<16 | int32(lo[i])
		want := int32(x[i]) * int32(y[i])
		if got != want {
			t.Errorf("lane %d: recombined product %d, want %d", i, got, want)
		}
	}
}

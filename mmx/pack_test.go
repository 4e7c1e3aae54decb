package mmx

import "testing"

func TestPacksPi16(t *testing.T) {
	a := SetrPi16(256, -129, 254, 0)
	got := PacksPi16(a, a).Int8s()
	want := [8]int8{127, -128, 127, 0, 127, -128, 127, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PacksPi16 lane %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPacksPi16OperandOrder(t *testing.T) {
	a := SetrPi16(1, 2, 3, 4)
	b := SetrPi16(5, 6, 7, 8)
	want := [8]int8{1, 2, 3, 4, 5, 6, 7, 8}
	if got := PacksPi16(a, b).Int8s(); got != want {
		t.Errorf("PacksPi16: got %v, want %v", got, want)
	}
}

func TestPacksPi32(t *testing.T) {
	a := SetrPi32(70000, -70000)
	b := SetrPi32(32767, -32768)
	want := [4]int16{32767, -32768, 32767, -32768}
	if got := PacksPi32(a, b).Int16s(); got != want {
		t.Errorf("PacksPi32: got %v, want %v", got, want)
	}
}

func TestPacksPu16(t *testing.T) {
	// Signed input, unsigned saturation: negatives floor at 0.
	a := SetrPi16(-1, 0, 255, 256)
	b := SetrPi16(300, -32768, 1, 128)
	want := [8]uint8{0, 0, 255, 255, 255, 0, 1, 128}
	if got := PacksPu16(a, b).Uint8s(); got != want {
		t.Errorf("PacksPu16: got %v, want %v", got, want)
	}
}

func TestUnpackloPi8(t *testing.T) {
	a := FromUint8s([8]uint8{1, 2, 3, 4, 5, 6, 7, 8})
	b := FromUint8s([8]uint8{11, 12, 13, 14, 15, 16, 17, 18})
	want := [8]uint8{1, 11, 2, 12, 3, 13, 4, 14}
	if got := UnpackloPi8(a, b).Uint8s(); got != want {
		t.Errorf("UnpackloPi8: got %v, want %v", got, want)
	}
}

func TestUnpackhiPi8(t *testing.T) {
	a := FromUint8s([8]uint8{1, 2, 3, 4, 5, 6, 7, 8})
	b := FromUint8s([8]uint8{11, 12, 13, 14, 15, 16, 17, 18})
	want := [8]uint8{5, 15, 6, 16, 7, 17, 8, 18}
	if got := UnpackhiPi8(a, b).Uint8s(); got != want {
		t.Errorf("UnpackhiPi8: got %v, want %v", got, want)
	}
}

func TestUnpackPi16(t *testing.T) {
	a := FromUint16s([4]uint16{1, 2, 3, 4})
	b := FromUint16s([4]uint16{11, 12, 13, 14})
	if got, want := UnpackloPi16(a, b).Uint16s(), [4]uint16{1, 11, 2, 12}; got != want {
		t.Errorf("UnpackloPi16: got %v, want %v", got, want)
	}
	if got, want := UnpackhiPi16(a, b).Uint16s(), [4]uint16{3, 13, 4, 14}; got != want {
		t.Errorf("UnpackhiPi16: got %v, want %v", got, want)
	}
}

func TestUnpackPi32(t *testing.T) {
	a := FromUint32s([2]uint32{1, 2})
	b := FromUint32s([2]uint32{11, 12})
	if got, want := UnpackloPi32(a, b).Uint32s(), [2]uint32{1, 11}; got != want {
		t.Errorf("UnpackloPi32: got %v, want %v", got, want)
	}
	if got, want := UnpackhiPi32(a, b).Uint32s(), [2]uint32{2, 12}; got != want {
		t.Errorf("UnpackhiPi32: got %v, want %v", got, want)
	}
}

func TestUnpackWidensZeroExtended(t *testing.T) {
	// Interleaving against zero is the classic unsigned widen.
	a := FromUint8s([8]uint8{0xff, 1, 0x80, 0, 2, 3, 4, 5})
	got := UnpackloPi8(a, SetzeroSi64()).Uint16s()
	want := [4]uint16{0xff, 1, 0x80, 0}
	if got != want {
		t.Errorf("UnpackloPi8 against zero: got %#x, want %#x", got, want)
	}
}

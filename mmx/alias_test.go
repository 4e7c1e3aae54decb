package mmx

import "testing"

// The alias layer is generated; these are spot checks that the bindings hit
// the canonical implementations, one per family.

func TestAliasesDelegate(t *testing.T) {
	a := FromInt16s([4]int16{32767, -32768, 100, -100})
	b := FromInt16s([4]int16{1, -1, -100, 100})

	if got, want := Paddw(a, b), AddPi16(a, b); got != want {
		t.Errorf("Paddw: got %#x, want %#x", got, want)
	}
	if got, want := Paddsw(a, b), AddsPi16(a, b); got != want {
		t.Errorf("Paddsw: got %#x, want %#x", got, want)
	}
	if got, want := Pcmpgtw(a, b), CmpgtPi16(a, b); got != want {
		t.Errorf("Pcmpgtw: got %#x, want %#x", got, want)
	}
	if got, want := Pmulhw(a, b), MulhiPi16(a, b); got != want {
		t.Errorf("Pmulhw: got %#x, want %#x", got, want)
	}
	if got, want := Packsswb(a, b), PacksPi16(a, b); got != want {
		t.Errorf("Packsswb: got %#x, want %#x", got, want)
	}
	if got, want := Punpcklbw(a, b), UnpackloPi8(a, b); got != want {
		t.Errorf("Punpcklbw: got %#x, want %#x", got, want)
	}
	if got, want := Psrawi(a, 3), SraiPi16(a, 3); got != want {
		t.Errorf("Psrawi: got %#x, want %#x", got, want)
	}
	if got, want := Pandn(a, b), AndnotSi64(a, b); got != want {
		t.Errorf("Pandn: got %#x, want %#x", got, want)
	}
}

func TestScalarAliases(t *testing.T) {
	if got := ToInt64(FromInt64(-12345)); got != -12345 {
		t.Errorf("ToInt64(FromInt64(-12345)): got %d", got)
	}
	if got := ToInt(FromInt(-7)); got != -7 {
		t.Errorf("ToInt(FromInt(-7)): got %d", got)
	}
}

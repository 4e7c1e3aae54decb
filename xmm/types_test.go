package xmm

import "testing"

func TestViewRoundTrips(t *testing.T) {
	patterns := []M128{
		Zero(),
		FromUint64s([2]uint64{0xffffffffffffffff, 0xffffffffffffffff}),
		FromUint64s([2]uint64{0x0123456789abcdef, 0xfedcba9876543210}),
		FromUint64s([2]uint64{0x8000000000000001, 0x7ffefdfc80818283}),
	}
	for _, v := range patterns {
		if got := FromUint8s(v.Uint8s()); got != v {
			t.Errorf("uint8 round trip: got %v, want %v", got.Uint64s(), v.Uint64s())
		}
		if got := FromInt8s(v.Int8s()); got != v {
			t.Errorf("int8 round trip: got %v, want %v", got.Uint64s(), v.Uint64s())
		}
		if got := FromUint16s(v.Uint16s()); got != v {
			t.Errorf("uint16 round trip: got %v, want %v", got.Uint64s(), v.Uint64s())
		}
		if got := FromInt16s(v.Int16s()); got != v {
			t.Errorf("int16 round trip: got %v, want %v", got.Uint64s(), v.Uint64s())
		}
		if got := FromUint32s(v.Uint32s()); got != v {
			t.Errorf("uint32 round trip: got %v, want %v", got.Uint64s(), v.Uint64s())
		}
		if got := FromInt32s(v.Int32s()); got != v {
			t.Errorf("int32 round trip: got %v, want %v", got.Uint64s(), v.Uint64s())
		}
		if got := FromInt64s(v.Int64s()); got != v {
			t.Errorf("int64 round trip: got %v, want %v", got.Uint64s(), v.Uint64s())
		}
	}
}

func TestLaneOrderLittleEndian(t *testing.T) {
	v := FromUint64s([2]uint64{0x0807060504030201, 0x100f0e0d0c0b0a09})
	bytes := v.Uint8s()
	for i, b := range bytes {
		if b != uint8(i+1) {
			t.Errorf("byte lane %d: got %d, want %d", i, b, i+1)
		}
	}
	words := v.Uint16s()
	if words[0] != 0x0201 || words[4] != 0x0a09 {
		t.Errorf("word lanes: got %#x and %#x, want 0x0201 and 0x0a09", words[0], words[4])
	}
}

func TestZero(t *testing.T) {
	if Zero() != (M128{}) {
		t.Error("Zero is not the zero value")
	}
	for i, lane := range Zero().Uint32s() {
		if lane != 0 {
			t.Errorf("Zero lane %d: got %#x, want 0", i, lane)
		}
	}
}

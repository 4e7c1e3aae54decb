// Copyright 2026 go-mmx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mmx

// Wraparound add/subtract and the bitwise operations have identical semantics
// at 64 and 128 bits per lane position, so they are computed directly on the
// narrow container without the bridge. Wraparound is sign-agnostic: the same
// function serves the signed and unsigned view of each lane width.

// AddPi8 adds eight 8-bit lanes with wraparound (paddb).
func AddPi8(a, b M64) M64 {
	x, y := a.Uint8s(), b.Uint8s()
	var r [8]uint8
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return FromUint8s(r)
}

// AddPi16 adds four 16-bit lanes with wraparound (paddw).
func AddPi16(a, b M64) M64 {
	x, y := a.Uint16s(), b.Uint16s()
	var r [4]uint16
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return FromUint16s(r)
}

// AddPi32 adds two 32-bit lanes with wraparound (paddd).
func AddPi32(a, b M64) M64 {
	x, y := a.Uint32s(), b.Uint32s()
	return FromUint32s([2]uint32{x[0] + y[0], x[1] + y[1]})
}

// SubPi8 subtracts eight 8-bit lanes with wraparound (psubb).
func SubPi8(a, b M64) M64 {
	x, y := a.Uint8s(), b.Uint8s()
	var r [8]uint8
	for i := range r {
		r[i] = x[i] - y[i]
	}
	return FromUint8s(r)
}

// SubPi16 subtracts four 16-bit lanes with wraparound (psubw).
func SubPi16(a, b M64) M64 {
	x, y := a.Uint16s(), b.Uint16s()
	var r [4]uint16
	for i := range r {
		r[i] = x[i] - y[i]
	}
	return FromUint16s(r)
}

// SubPi32 subtracts two 32-bit lanes with wraparound (psubd).
func SubPi32(a, b M64) M64 {
	x, y := a.Uint32s(), b.Uint32s()
	return FromUint32s([2]uint32{x[0] - y[0], x[1] - y[1]})
}

// AndSi64 returns the bitwise AND of a and b (pand).
func AndSi64(a, b M64) M64 {
	return a & b
}

// AndnotSi64 returns ^a & b, b masked by the complement of a (pandn).
func AndnotSi64(a, b M64) M64 {
	return ^a & b
}

// OrSi64 returns the bitwise OR of a and b (por).
func OrSi64(a, b M64) M64 {
	return a | b
}

// XorSi64 returns the bitwise XOR of a and b (pxor).
func XorSi64(a, b M64) M64 {
	return a ^ b
}

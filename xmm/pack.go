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

package xmm

// Packs halve the lane width with saturation: the result's low half holds the
// narrowed lanes of a, the high half those of b. Unpacks interleave the lanes
// of the selected half of a and b, doubling nothing but rearranging; lane 0 of
// the result always comes from a.

// PackSatI16 narrows the sixteen signed 16-bit lanes of a and b to signed
// 8-bit lanes with saturation.
func PackSatI16(a, b M128) M128 {
	x, y := a.Int16s(), b.Int16s()
	var r [16]int8
	for i := range x {
		r[i] = satI8(x[i])
		r[i+8] = satI8(y[i])
	}
	return FromInt8s(r)
}

// PackSatI32 narrows the eight signed 32-bit lanes of a and b to signed
// 16-bit lanes with saturation.
func PackSatI32(a, b M128) M128 {
	x, y := a.Int32s(), b.Int32s()
	var r [8]int16
	for i := range x {
		r[i] = satI16(x[i])
		r[i+4] = satI16(y[i])
	}
	return FromInt16s(r)
}

// PackUSatI16 narrows the sixteen signed 16-bit lanes of a and b to unsigned
// 8-bit lanes with saturation: negative input clamps to 0, input above 255
// clamps to 255.
func PackUSatI16(a, b M128) M128 {
	x, y := a.Int16s(), b.Int16s()
	var r [16]uint8
	for i := range x {
		r[i] = satU8(x[i])
		r[i+8] = satU8(y[i])
	}
	return FromUint8s(r)
}

// UnpackLoI8 interleaves the low eight 8-bit lanes of a and b.
func UnpackLoI8(a, b M128) M128 {
	x, y := a.Uint8s(), b.Uint8s()
	var r [16]uint8
	for i := 0; i < 8; i++ {
		r[2*i] = x[i]
		r[2*i+1] = y[i]
	}
	return FromUint8s(r)
}

// UnpackHiI8 interleaves the high eight 8-bit lanes of a and b.
func UnpackHiI8(a, b M128) M128 {
	x, y := a.Uint8s(), b.Uint8s()
	var r [16]uint8
	for i := 0; i < 8; i++ {
		r[2*i] = x[i+8]
		r[2*i+1] = y[i+8]
	}
	return FromUint8s(r)
}

// UnpackLoI16 interleaves the low four 16-bit lanes of a and b.
func UnpackLoI16(a, b M128) M128 {
	x, y := a.Uint16s(), b.Uint16s()
	var r [8]uint16
	for i := 0; i < 4; i++ {
		r[2*i] = x[i]
		r[2*i+1] = y[i]
	}
	return FromUint16s(r)
}

// UnpackHiI16 interleaves the high four 16-bit lanes of a and b.
func UnpackHiI16(a, b M128) M128 {
	x, y := a.Uint16s(), b.Uint16s()
	var r [8]uint16
	for i := 0; i < 4; i++ {
		r[2*i] = x[i+4]
		r[2*i+1] = y[i+4]
	}
	return FromUint16s(r)
}

// UnpackLoI32 interleaves the low two 32-bit lanes of a and b.
func UnpackLoI32(a, b M128) M128 {
	x, y := a.Uint32s(), b.Uint32s()
	return FromUint32s([4]uint32{x[0], y[0], x[1], y[1]})
}

// UnpackHiI32 interleaves the high two 32-bit lanes of a and b.
func UnpackHiI32(a, b M128) M128 {
	x, y := a.Uint32s(), b.Uint32s()
	return FromUint32s([4]uint32{x[2], y[2], x[3], y[3]})
}

// UnpackLoI64 places the low 64-bit lane of a in lane 0 and the low 64-bit
// lane of b in lane 1.
func UnpackLoI64(a, b M128) M128 {
	return M128{lo: a.lo, hi: b.lo}
}

// UnpackHiI64 places the high 64-bit lane of a in lane 0 and the high 64-bit
// lane of b in lane 1.
func UnpackHiI64(a, b M128) M128 {
	return M128{lo: a.hi, hi: b.hi}
}

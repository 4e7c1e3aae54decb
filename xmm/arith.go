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

// This file provides the wraparound and saturating add/subtract primitives.
// Wraparound arithmetic is sign-agnostic, so only one variant per lane width
// exists; saturating arithmetic clamps and therefore comes in signed and
// unsigned flavors at 8 and 16 bits, matching the instruction catalogue.

// AddI8 adds sixteen 8-bit lanes with two's-complement wraparound.
func AddI8(a, b M128) M128 {
	x, y := a.Uint8s(), b.Uint8s()
	var r [16]uint8
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return FromUint8s(r)
}

// SubI8 subtracts sixteen 8-bit lanes with two's-complement wraparound.
func SubI8(a, b M128) M128 {
	x, y := a.Uint8s(), b.Uint8s()
	var r [16]uint8
	for i := range r {
		r[i] = x[i] - y[i]
	}
	return FromUint8s(r)
}

// AddI16 adds eight 16-bit lanes with two's-complement wraparound.
func AddI16(a, b M128) M128 {
	x, y := a.Uint16s(), b.Uint16s()
	var r [8]uint16
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return FromUint16s(r)
}

// SubI16 subtracts eight 16-bit lanes with two's-complement wraparound.
func SubI16(a, b M128) M128 {
	x, y := a.Uint16s(), b.Uint16s()
	var r [8]uint16
	for i := range r {
		r[i] = x[i] - y[i]
	}
	return FromUint16s(r)
}

// AddI32 adds four 32-bit lanes with two's-complement wraparound.
func AddI32(a, b M128) M128 {
	x, y := a.Uint32s(), b.Uint32s()
	var r [4]uint32
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return FromUint32s(r)
}

// SubI32 subtracts four 32-bit lanes with two's-complement wraparound.
func SubI32(a, b M128) M128 {
	x, y := a.Uint32s(), b.Uint32s()
	var r [4]uint32
	for i := range r {
		r[i] = x[i] - y[i]
	}
	return FromUint32s(r)
}

// AddI64 adds two 64-bit lanes with two's-complement wraparound.
func AddI64(a, b M128) M128 {
	return M128{lo: a.lo + b.lo, hi: a.hi + b.hi}
}

// SubI64 subtracts two 64-bit lanes with two's-complement wraparound.
func SubI64(a, b M128) M128 {
	return M128{lo: a.lo - b.lo, hi: a.hi - b.hi}
}

// satI8 clamps a 16-bit intermediate to the signed 8-bit range.
func satI8(v int16) int8 {
	if v < -128 {
		return -128
	}
	if v > 127 {
		return 127
	}
	return int8(v)
}

// satU8 clamps a 16-bit intermediate to the unsigned 8-bit range.
func satU8(v int16) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// satI16 clamps a 32-bit intermediate to the signed 16-bit range.
func satI16(v int32) int16 {
	if v < -32768 {
		return -32768
	}
	if v > 32767 {
		return 32767
	}
	return int16(v)
}

// satU16 clamps a 32-bit intermediate to the unsigned 16-bit range.
func satU16(v int32) uint16 {
	if v < 0 {
		return 0
	}
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}

// AddSatI8 adds sixteen signed 8-bit lanes, saturating to [-128, 127].
func AddSatI8(a, b M128) M128 {
	x, y := a.Int8s(), b.Int8s()
	var r [16]int8
	for i := range r {
		r[i] = satI8(int16(x[i]) + int16(y[i]))
	}
	return FromInt8s(r)
}

// SubSatI8 subtracts sixteen signed 8-bit lanes, saturating to [-128, 127].
func SubSatI8(a, b M128) M128 {
	x, y := a.Int8s(), b.Int8s()
	var r [16]int8
	for i := range r {
		r[i] = satI8(int16(x[i]) - int16(y[i]))
	}
	return FromInt8s(r)
}

// AddSatU8 adds sixteen unsigned 8-bit lanes, saturating to [0, 255].
func AddSatU8(a, b M128) M128 {
	x, y := a.Uint8s(), b.Uint8s()
	var r [16]uint8
	for i := range r {
		r[i] = satU8(int16(x[i]) + int16(y[i]))
	}
	return FromUint8s(r)
}

// SubSatU8 subtracts sixteen unsigned 8-bit lanes, saturating to [0, 255].
func SubSatU8(a, b M128) M128 {
	x, y := a.Uint8s(), b.Uint8s()
	var r [16]uint8
	for i := range r {
		r[i] = satU8(int16(x[i]) - int16(y[i]))
	}
	return FromUint8s(r)
}

// AddSatI16 adds eight signed 16-bit lanes, saturating to [-32768, 32767].
func AddSatI16(a, b M128) M128 {
	x, y := a.Int16s(), b.Int16s()
	var r [8]int16
	for i := range r {
		r[i] = satI16(int32(x[i]) + int32(y[i]))
	}
	return FromInt16s(r)
}

// SubSatI16 subtracts eight signed 16-bit lanes, saturating to [-32768, 32767].
func SubSatI16(a, b M128) M128 {
	x, y := a.Int16s(), b.Int16s()
	var r [8]int16
	for i := range r {
		r[i] = satI16(int32(x[i]) - int32(y[i]))
	}
	return FromInt16s(r)
}

// AddSatU16 adds eight unsigned 16-bit lanes, saturating to [0, 65535].
func AddSatU16(a, b M128) M128 {
	x, y := a.Uint16s(), b.Uint16s()
	var r [8]uint16
	for i := range r {
		r[i] = satU16(int32(x[i]) + int32(y[i]))
	}
	return FromUint16s(r)
}

// SubSatU16 subtracts eight unsigned 16-bit lanes, saturating to [0, 65535].
func SubSatU16(a, b M128) M128 {
	x, y := a.Uint16s(), b.Uint16s()
	var r [8]uint16
	for i := range r {
		r[i] = satU16(int32(x[i]) - int32(y[i]))
	}
	return FromUint16s(r)
}

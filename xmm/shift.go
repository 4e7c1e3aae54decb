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

// Shift counts are full unsigned 64-bit values, as on hardware: a count at or
// above the lane width drains logical shifts to zero and arithmetic shifts to
// the sign fill. Counts are never reduced modulo the lane width.

// ShlI16 shifts eight 16-bit lanes left by count bits.
func ShlI16(a M128, count uint64) M128 {
	if count > 15 {
		return Zero()
	}
	x := a.Uint16s()
	var r [8]uint16
	for i := range r {
		r[i] = x[i] << count
	}
	return FromUint16s(r)
}

// ShrI16 shifts eight 16-bit lanes right by count bits, filling with zeros.
func ShrI16(a M128, count uint64) M128 {
	if count > 15 {
		return Zero()
	}
	x := a.Uint16s()
	var r [8]uint16
	for i := range r {
		r[i] = x[i] >> count
	}
	return FromUint16s(r)
}

// SarI16 shifts eight signed 16-bit lanes right by count bits, filling with
// the sign bit.
func SarI16(a M128, count uint64) M128 {
	if count > 15 {
		count = 15
	}
	x := a.Int16s()
	var r [8]int16
	for i := range r {
		r[i] = x[i] >> count
	}
	return FromInt16s(r)
}

// ShlI32 shifts four 32-bit lanes left by count bits.
func ShlI32(a M128, count uint64) M128 {
	if count > 31 {
		return Zero()
	}
	x := a.Uint32s()
	var r [4]uint32
	for i := range r {
		r[i] = x[i] << count
	}
	return FromUint32s(r)
}

// ShrI32 shifts four 32-bit lanes right by count bits, filling with zeros.
func ShrI32(a M128, count uint64) M128 {
	if count > 31 {
		return Zero()
	}
	x := a.Uint32s()
	var r [4]uint32
	for i := range r {
		r[i] = x[i] >> count
	}
	return FromUint32s(r)
}

// SarI32 shifts four signed 32-bit lanes right by count bits, filling with
// the sign bit.
func SarI32(a M128, count uint64) M128 {
	if count > 31 {
		count = 31
	}
	x := a.Int32s()
	var r [4]int32
	for i := range r {
		r[i] = x[i] >> count
	}
	return FromInt32s(r)
}

// ShlI64 shifts two 64-bit lanes left by count bits.
func ShlI64(a M128, count uint64) M128 {
	if count > 63 {
		return Zero()
	}
	return M128{lo: a.lo << count, hi: a.hi << count}
}

// ShrI64 shifts two 64-bit lanes right by count bits, filling with zeros.
func ShrI64(a M128, count uint64) M128 {
	if count > 63 {
		return Zero()
	}
	return M128{lo: a.lo >> count, hi: a.hi >> count}
}

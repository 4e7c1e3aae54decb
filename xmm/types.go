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

// Package xmm provides a bit-exact software rendition of the 128-bit integer
// vector primitives that the mmx package builds on: wraparound and saturating
// add/subtract per lane width, mask-producing comparisons, 16-bit multiplies,
// multiply-add pairs, saturating packs, interleaves and shifts.
//
// Every operation is a pure function over the 16-byte M128 value. Lanes are
// stored little-endian: lane 0 occupies the lowest-addressed bytes, matching
// the x86 register layout the instruction family was defined against. Results
// are identical, bit for bit, to what the corresponding hardware instructions
// produce, for every input bit pattern.
package xmm

// M128 is an opaque 128-bit vector value. Interpretation as 16x8-bit,
// 8x16-bit, 4x32-bit or 2x64-bit lanes is chosen per call site via the view
// accessors; a view is a relabeling of the same bits, never a conversion.
//
// The zero value is the all-zero vector.
type M128 struct {
	lo, hi uint64
}

// Zero returns the all-zero vector.
func Zero() M128 {
	return M128{}
}

// FromUint64s builds a vector from two 64-bit lanes, lane 0 first.
func FromUint64s(lanes [2]uint64) M128 {
	return M128{lo: lanes[0], hi: lanes[1]}
}

// Uint64s views the vector as two 64-bit lanes, lane 0 first.
func (v M128) Uint64s() [2]uint64 {
	return [2]uint64{v.lo, v.hi}
}

// Int64s views the vector as two signed 64-bit lanes.
func (v M128) Int64s() [2]int64 {
	return [2]int64{int64(v.lo), int64(v.hi)}
}

// FromInt64s builds a vector from two signed 64-bit lanes.
func FromInt64s(lanes [2]int64) M128 {
	return M128{lo: uint64(lanes[0]), hi: uint64(lanes[1])}
}

// Uint32s views the vector as four 32-bit lanes.
func (v M128) Uint32s() [4]uint32 {
	return [4]uint32{
		uint32(v.lo), uint32(v.lo >> 32),
		uint32(v.hi), uint32(v.hi >> 32),
	}
}

// FromUint32s builds a vector from four 32-bit lanes.
func FromUint32s(lanes [4]uint32) M128 {
	return M128{
		lo: uint64(lanes[0]) | uint64(lanes[1])<<32,
		hi: uint64(lanes[2]) | uint64(lanes[3])<<32,
	}
}

// Int32s views the vector as four signed 32-bit lanes.
func (v M128) Int32s() [4]int32 {
	return [4]int32{
		int32(uint32(v.lo)), int32(uint32(v.lo >> 32)),
		int32(uint32(v.hi)), int32(uint32(v.hi >> 32)),
	}
}

// FromInt32s builds a vector from four signed 32-bit lanes.
func FromInt32s(lanes [4]int32) M128 {
	return M128{
		lo: uint64(uint32(lanes[0])) | uint64(uint32(lanes[1]))<<32,
		hi: uint64(uint32(lanes[2])) | uint64(uint32(lanes[3]))<<32,
	}
}

// Uint16s views the vector as eight 16-bit lanes.
func (v M128) Uint16s() [8]uint16 {
	return [8]uint16{
		uint16(v.lo), uint16(v.lo >> 16), uint16(v.lo >> 32), uint16(v.lo >> 48),
		uint16(v.hi), uint16(v.hi >> 16), uint16(v.hi >> 32), uint16(v.hi >> 48),
	}
}

// FromUint16s builds a vector from eight 16-bit lanes.
func FromUint16s(lanes [8]uint16) M128 {
	return M128{
		lo: uint64(lanes[0]) | uint64(lanes[1])<<16 | uint64(lanes[2])<<32 | uint64(lanes[3])<<48,
		hi: uint64(lanes[4]) | uint64(lanes[5])<<16 | uint64(lanes[6])<<32 | uint64(lanes[7])<<48,
	}
}

// Int16s views the vector as eight signed 16-bit lanes.
func (v M128) Int16s() [8]int16 {
	return [8]int16{
		int16(uint16(v.lo)), int16(uint16(v.lo >> 16)), int16(uint16(v.lo >> 32)), int16(uint16(v.lo >> 48)),
		int16(uint16(v.hi)), int16(uint16(v.hi >> 16)), int16(uint16(v.hi >> 32)), int16(uint16(v.hi >> 48)),
	}
}

// FromInt16s builds a vector from eight signed 16-bit lanes.
func FromInt16s(lanes [8]int16) M128 {
	return M128{
		lo: uint64(uint16(lanes[0])) | uint64(uint16(lanes[1]))<<16 |
			uint64(uint16(lanes[2]))<<32 | uint64(uint16(lanes[3]))<<48,
		hi: uint64(uint16(lanes[4])) | uint64(uint16(lanes[5]))<<16 |
			uint64(uint16(lanes[6]))<<32 | uint64(uint16(lanes[7]))<<48,
	}
}

// Uint8s views the vector as sixteen 8-bit lanes.
func (v M128) Uint8s() [16]uint8 {
	var r [16]uint8
	for i := 0; i < 8; i++ {
		r[i] = uint8(v.lo >> (8 * i))
		r[i+8] = uint8(v.hi >> (8 * i))
	}
	return r
}

// FromUint8s builds a vector from sixteen 8-bit lanes.
func FromUint8s(lanes [16]uint8) M128 {
	var v M128
	for i := 0; i < 8; i++ {
		v.lo |= uint64(lanes[i]) << (8 * i)
		v.hi |= uint64(lanes[i+8]) << (8 * i)
	}
	return v
}

// Int8s views the vector as sixteen signed 8-bit lanes.
func (v M128) Int8s() [16]int8 {
	var r [16]int8
	for i := 0; i < 8; i++ {
		r[i] = int8(uint8(v.lo >> (8 * i)))
		r[i+8] = int8(uint8(v.hi >> (8 * i)))
	}
	return r
}

// FromInt8s builds a vector from sixteen signed 8-bit lanes.
func FromInt8s(lanes [16]int8) M128 {
	var v M128
	for i := 0; i < 8; i++ {
		v.lo |= uint64(uint8(lanes[i])) << (8 * i)
		v.hi |= uint64(uint8(lanes[i+8])) << (8 * i)
	}
	return v
}

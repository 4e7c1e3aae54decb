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

// Package mmx emulates the 64-bit MMX integer instruction family, bit for
// bit, on every host. Each operation re-expresses the narrow instruction on
// the 128-bit xmm engine (or directly on the 64-bit container where the
// semantics already match) and truncates the result, so code written against
// the historical instruction set computes identical answers everywhere.
//
// Operations carry their Intel intrinsic names (AddPi16, CmpgtPi8, ...) and,
// for source compatibility with older call sites, the instruction mnemonics
// (Paddw, Pcmpgtb, ...) as generated bindings in alias.go.
//
// Basic usage:
//
//	a := mmx.SetPi16(4, 4, 4, 4)
//	b := mmx.SetPi16(3, 3, 3, 3)
//	sum := mmx.AddPi16(a, b) // [7 7 7 7]
//
// Every operation is a pure function over stack-resident values: no
// allocation, no shared state, no errors. Any number of calls may run
// concurrently.
package mmx

//go:generate go run github.com/janpfeifer/go-mmx/cmd/mmxgen -dir .

// M64 is an opaque 64-bit vector value, the register type of the narrow
// instruction family. Interpretation as 8x8-bit, 4x16-bit or 2x32-bit lanes
// is chosen per call site through the view accessors; a view relabels the
// bits, it never converts them. Lane 0 occupies the lowest-order byte
// (little-endian, the layout the instruction family was defined against).
//
// The zero value is the all-zero vector.
type M64 uint64

// Uint8s views the value as eight 8-bit lanes, lane 0 first.
func (v M64) Uint8s() [8]uint8 {
	var r [8]uint8
	for i := range r {
		r[i] = uint8(v >> (8 * i))
	}
	return r
}

// FromUint8s builds an M64 from eight 8-bit lanes, lane 0 first.
func FromUint8s(lanes [8]uint8) M64 {
	var v M64
	for i := range lanes {
		v |= M64(lanes[i]) << (8 * i)
	}
	return v
}

// Int8s views the value as eight signed 8-bit lanes.
func (v M64) Int8s() [8]int8 {
	var r [8]int8
	for i := range r {
		r[i] = int8(uint8(v >> (8 * i)))
	}
	return r
}

// FromInt8s builds an M64 from eight signed 8-bit lanes.
func FromInt8s(lanes [8]int8) M64 {
	var v M64
	for i := range lanes {
		v |= M64(uint8(lanes[i])) << (8 * i)
	}
	return v
}

// Uint16s views the value as four 16-bit lanes.
func (v M64) Uint16s() [4]uint16 {
	return [4]uint16{
		uint16(v), uint16(v >> 16), uint16(v >> 32), uint16(v >> 48),
	}
}

// FromUint16s builds an M64 from four 16-bit lanes.
func FromUint16s(lanes [4]uint16) M64 {
	return M64(lanes[0]) | M64(lanes[1])<<16 | M64(lanes[2])<<32 | M64(lanes[3])<<48
}

// Int16s views the value as four signed 16-bit lanes.
func (v M64) Int16s() [4]int16 {
	return [4]int16{
		int16(uint16(v)), int16(uint16(v >> 16)),
		int16(uint16(v >> 32)), int16(uint16(v >> 48)),
	}
}

// FromInt16s builds an M64 from four signed 16-bit lanes.
func FromInt16s(lanes [4]int16) M64 {
	return M64(uint16(lanes[0])) | M64(uint16(lanes[1]))<<16 |
		M64(uint16(lanes[2]))<<32 | M64(uint16(lanes[3]))<<48
}

// Uint32s views the value as two 32-bit lanes.
func (v M64) Uint32s() [2]uint32 {
	return [2]uint32{uint32(v), uint32(v >> 32)}
}

// FromUint32s builds an M64 from two 32-bit lanes.
func FromUint32s(lanes [2]uint32) M64 {
	return M64(lanes[0]) | M64(lanes[1])<<32
}

// Int32s views the value as two signed 32-bit lanes.
func (v M64) Int32s() [2]int32 {
	return [2]int32{int32(uint32(v)), int32(uint32(v >> 32))}
}

// FromInt32s builds an M64 from two signed 32-bit lanes.
func FromInt32s(lanes [2]int32) M64 {
	return M64(uint32(lanes[0])) | M64(uint32(lanes[1]))<<32
}

// Uint64 views the value as a single unsigned 64-bit scalar.
func (v M64) Uint64() uint64 {
	return uint64(v)
}

// Int64 views the value as a single signed 64-bit scalar.
func (v M64) Int64() int64 {
	return int64(v)
}

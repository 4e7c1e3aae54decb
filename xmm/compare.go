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

// Comparisons produce a mask lane, all bits set where the predicate holds and
// all bits clear where it does not. The mask is directly usable as a bitwise
// operand for select-by-mask, so no boolean materialization ever happens.

// CmpEqI8 compares sixteen 8-bit lanes for equality.
func CmpEqI8(a, b M128) M128 {
	x, y := a.Uint8s(), b.Uint8s()
	var r [16]uint8
	for i := range r {
		if x[i] == y[i] {
			r[i] = 0xff
		}
	}
	return FromUint8s(r)
}

// CmpEqI16 compares eight 16-bit lanes for equality.
func CmpEqI16(a, b M128) M128 {
	x, y := a.Uint16s(), b.Uint16s()
	var r [8]uint16
	for i := range r {
		if x[i] == y[i] {
			r[i] = 0xffff
		}
	}
	return FromUint16s(r)
}

// CmpEqI32 compares four 32-bit lanes for equality.
func CmpEqI32(a, b M128) M128 {
	x, y := a.Uint32s(), b.Uint32s()
	var r [4]uint32
	for i := range r {
		if x[i] == y[i] {
			r[i] = 0xffffffff
		}
	}
	return FromUint32s(r)
}

// CmpGtI8 compares sixteen signed 8-bit lanes for a > b.
func CmpGtI8(a, b M128) M128 {
	x, y := a.Int8s(), b.Int8s()
	var r [16]uint8
	for i := range r {
		if x[i] > y[i] {
			r[i] = 0xff
		}
	}
	return FromUint8s(r)
}

// CmpGtI16 compares eight signed 16-bit lanes for a > b.
func CmpGtI16(a, b M128) M128 {
	x, y := a.Int16s(), b.Int16s()
	var r [8]uint16
	for i := range r {
		if x[i] > y[i] {
			r[i] = 0xffff
		}
	}
	return FromUint16s(r)
}

// CmpGtI32 compares four signed 32-bit lanes for a > b.
func CmpGtI32(a, b M128) M128 {
	x, y := a.Int32s(), b.Int32s()
	var r [4]uint32
	for i := range r {
		if x[i] > y[i] {
			r[i] = 0xffffffff
		}
	}
	return FromUint32s(r)
}

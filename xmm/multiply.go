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

// MulHighI16 multiplies eight signed 16-bit lane pairs and keeps the high
// 16 bits of each 32-bit product.
func MulHighI16(a, b M128) M128 {
	x, y := a.Int16s(), b.Int16s()
	var r [8]int16
	for i := range r {
		r[i] = int16(int32(x[i]) * int32(y[i]) >> 16)
	}
	return FromInt16s(r)
}

// MulLowI16 multiplies eight signed 16-bit lane pairs and keeps the low
// 16 bits of each 32-bit product. The low half is the same for signed and
// unsigned interpretation.
func MulLowI16(a, b M128) M128 {
	x, y := a.Int16s(), b.Int16s()
	var r [8]int16
	for i := range r {
		r[i] = int16(int32(x[i]) * int32(y[i]))
	}
	return FromInt16s(r)
}

// MAddI16 multiplies eight signed 16-bit lane pairs into 32-bit products and
// adds adjacent product pairs, yielding four 32-bit lanes. The pairwise sum
// wraps at 32 bits; only the single input (-32768, -32768) in both lanes of a
// pair can reach the wrap, as on hardware.
func MAddI16(a, b M128) M128 {
	x, y := a.Int16s(), b.Int16s()
	var r [4]int32
	for i := range r {
		p0 := int32(x[2*i]) * int32(y[2*i])
		p1 := int32(x[2*i+1]) * int32(y[2*i+1])
		r[i] = p0 + p1
	}
	return FromInt32s(r)
}

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

// Constructors. Set takes arguments highest lane first, the historical
// argument order of the intrinsic family; Setr takes them lowest lane first.
// For all lane values, SetPi16(a, b, c, d) == SetrPi16(d, c, b, a).

// SetPi8 assembles eight 8-bit lanes, highest lane (e7) first.
func SetPi8(e7, e6, e5, e4, e3, e2, e1, e0 int8) M64 {
	return FromInt8s([8]int8{e0, e1, e2, e3, e4, e5, e6, e7})
}

// SetPi16 assembles four 16-bit lanes, highest lane (e3) first.
func SetPi16(e3, e2, e1, e0 int16) M64 {
	return FromInt16s([4]int16{e0, e1, e2, e3})
}

// SetPi32 assembles two 32-bit lanes, highest lane (e1) first.
func SetPi32(e1, e0 int32) M64 {
	return FromInt32s([2]int32{e0, e1})
}

// SetrPi8 assembles eight 8-bit lanes, lowest lane (e0) first.
func SetrPi8(e0, e1, e2, e3, e4, e5, e6, e7 int8) M64 {
	return FromInt8s([8]int8{e0, e1, e2, e3, e4, e5, e6, e7})
}

// SetrPi16 assembles four 16-bit lanes, lowest lane (e0) first.
func SetrPi16(e0, e1, e2, e3 int16) M64 {
	return FromInt16s([4]int16{e0, e1, e2, e3})
}

// SetrPi32 assembles two 32-bit lanes, lowest lane (e0) first.
func SetrPi32(e0, e1 int32) M64 {
	return FromInt32s([2]int32{e0, e1})
}

// Set1Pi8 broadcasts one 8-bit value to all eight lanes.
func Set1Pi8(a int8) M64 {
	return FromInt8s([8]int8{a, a, a, a, a, a, a, a})
}

// Set1Pi16 broadcasts one 16-bit value to all four lanes.
func Set1Pi16(a int16) M64 {
	return FromInt16s([4]int16{a, a, a, a})
}

// Set1Pi32 broadcasts one 32-bit value to both lanes.
func Set1Pi32(a int32) M64 {
	return FromInt32s([2]int32{a, a})
}

// SetzeroSi64 returns the all-zero vector.
func SetzeroSi64() M64 {
	return 0
}

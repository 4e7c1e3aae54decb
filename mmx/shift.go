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

import "github.com/janpfeifer/go-mmx/xmm"

// Shifts by a vector count read the count from the full 64 bits of the count
// operand, not modulo the lane width: a count at or above the lane width
// drains logical shifts to zero and arithmetic shifts to the sign fill. The
// immediate variants take a plain int and follow the same drain rule (a
// negative count behaves as a huge one). There are no 8-bit shifts in the
// instruction family.

// SllPi16 shifts four 16-bit lanes left by the count in c (psllw).
func SllPi16(a, c M64) M64 {
	return narrow(xmm.ShlI16(widen(a), c.Uint64()))
}

// SllPi32 shifts two 32-bit lanes left by the count in c (pslld).
func SllPi32(a, c M64) M64 {
	return narrow(xmm.ShlI32(widen(a), c.Uint64()))
}

// SllSi64 shifts the whole 64-bit value left by the count in c (psllq).
func SllSi64(a, c M64) M64 {
	return narrow(xmm.ShlI64(widen(a), c.Uint64()))
}

// SrlPi16 shifts four 16-bit lanes right by the count in c, filling with
// zeros (psrlw).
func SrlPi16(a, c M64) M64 {
	return narrow(xmm.ShrI16(widen(a), c.Uint64()))
}

// SrlPi32 shifts two 32-bit lanes right by the count in c, filling with
// zeros (psrld).
func SrlPi32(a, c M64) M64 {
	return narrow(xmm.ShrI32(widen(a), c.Uint64()))
}

// SrlSi64 shifts the whole 64-bit value right by the count in c, filling
// with zeros (psrlq).
func SrlSi64(a, c M64) M64 {
	return narrow(xmm.ShrI64(widen(a), c.Uint64()))
}

// SraPi16 shifts four signed 16-bit lanes right by the count in c, filling
// with the sign bit (psraw).
func SraPi16(a, c M64) M64 {
	return narrow(xmm.SarI16(widen(a), c.Uint64()))
}

// SraPi32 shifts two signed 32-bit lanes right by the count in c, filling
// with the sign bit (psrad).
func SraPi32(a, c M64) M64 {
	return narrow(xmm.SarI32(widen(a), c.Uint64()))
}

// SlliPi16 shifts four 16-bit lanes left by count bits (psllwi).
func SlliPi16(a M64, count int) M64 {
	return SllPi16(a, M64(uint64(int64(count))))
}

// SlliPi32 shifts two 32-bit lanes left by count bits (pslldi).
func SlliPi32(a M64, count int) M64 {
	return SllPi32(a, M64(uint64(int64(count))))
}

// SlliSi64 shifts the whole 64-bit value left by count bits (psllqi).
func SlliSi64(a M64, count int) M64 {
	return SllSi64(a, M64(uint64(int64(count))))
}

// SrliPi16 shifts four 16-bit lanes right by count bits, filling with zeros
// (psrlwi).
func SrliPi16(a M64, count int) M64 {
	return SrlPi16(a, M64(uint64(int64(count))))
}

// SrliPi32 shifts two 32-bit lanes right by count bits, filling with zeros
// (psrldi).
func SrliPi32(a M64, count int) M64 {
	return SrlPi32(a, M64(uint64(int64(count))))
}

// SrliSi64 shifts the whole 64-bit value right by count bits, filling with
// zeros (psrlqi).
func SrliSi64(a M64, count int) M64 {
	return SrlSi64(a, M64(uint64(int64(count))))
}

// SraiPi16 shifts four signed 16-bit lanes right by count bits, filling with
// the sign bit (psrawi).
func SraiPi16(a M64, count int) M64 {
	return SraPi16(a, M64(uint64(int64(count))))
}

// SraiPi32 shifts two signed 32-bit lanes right by count bits, filling with
// the sign bit (psradi).
func SraiPi32(a M64, count int) M64 {
	return SraPi32(a, M64(uint64(int64(count))))
}

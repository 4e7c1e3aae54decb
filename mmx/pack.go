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

// Packs halve the lane width with saturation: the low result lanes come from
// a, the high result lanes from b. The 128-bit pack primitive reads eight
// source lanes per operand, so both narrow operands are first gathered into
// one wide value (a in the low half, b in the high half); its packed low half
// is then exactly the narrow result.
//
// Unpacks interleave lanes of a and b. The low variants fall out of the
// 128-bit low-interleave directly; the high variants shift the wanted half of
// each operand down first, the same rewrite hardware-assisted translations of
// the narrow instruction set use.

// packed gathers a into the low and b into the high 64 bits of a wide value.
func packed(a, b M64) xmm.M128 {
	return xmm.UnpackLoI64(widen(a), widen(b))
}

// PacksPi16 narrows the 16-bit lanes of a and b to eight signed 8-bit lanes
// with saturation (packsswb).
func PacksPi16(a, b M64) M64 {
	w := packed(a, b)
	return narrow(xmm.PackSatI16(w, w))
}

// PacksPi32 narrows the 32-bit lanes of a and b to four signed 16-bit lanes
// with saturation (packssdw).
func PacksPi32(a, b M64) M64 {
	w := packed(a, b)
	return narrow(xmm.PackSatI32(w, w))
}

// PacksPu16 narrows the signed 16-bit lanes of a and b to eight unsigned
// 8-bit lanes with saturation: negative lanes clamp to 0, lanes above 255
// clamp to 255 (packuswb).
func PacksPu16(a, b M64) M64 {
	w := packed(a, b)
	return narrow(xmm.PackUSatI16(w, w))
}

// UnpackloPi8 interleaves the low four 8-bit lanes of a and b (punpcklbw).
func UnpackloPi8(a, b M64) M64 {
	return via(xmm.UnpackLoI8, a, b)
}

// UnpackhiPi8 interleaves the high four 8-bit lanes of a and b (punpckhbw).
func UnpackhiPi8(a, b M64) M64 {
	return via(xmm.UnpackLoI8, a>>32, b>>32)
}

// UnpackloPi16 interleaves the low two 16-bit lanes of a and b (punpcklwd).
func UnpackloPi16(a, b M64) M64 {
	return via(xmm.UnpackLoI16, a, b)
}

// UnpackhiPi16 interleaves the high two 16-bit lanes of a and b (punpckhwd).
func UnpackhiPi16(a, b M64) M64 {
	return via(xmm.UnpackLoI16, a>>32, b>>32)
}

// UnpackloPi32 places the low 32-bit lane of a in lane 0 and the low 32-bit
// lane of b in lane 1 (punpckldq).
func UnpackloPi32(a, b M64) M64 {
	return via(xmm.UnpackLoI32, a, b)
}

// UnpackhiPi32 places the high 32-bit lane of a in lane 0 and the high
// 32-bit lane of b in lane 1 (punpckhdq).
func UnpackhiPi32(a, b M64) M64 {
	return via(xmm.UnpackLoI32, a>>32, b>>32)
}

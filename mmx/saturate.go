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

// Saturating add/subtract clamps each lane to the representable range of its
// type instead of wrapping. The instruction family defines these at 8 and 16
// bits only; there are no 32-bit saturating variants. All of them delegate to
// the xmm saturating primitives through the bridge: the zero-extended upper
// half saturates to zero and is discarded by narrow.

// AddsPi8 adds eight signed 8-bit lanes, clamping to [-128, 127] (paddsb).
func AddsPi8(a, b M64) M64 {
	return via(xmm.AddSatI8, a, b)
}

// AddsPi16 adds four signed 16-bit lanes, clamping to [-32768, 32767] (paddsw).
func AddsPi16(a, b M64) M64 {
	return via(xmm.AddSatI16, a, b)
}

// AddsPu8 adds eight unsigned 8-bit lanes, clamping to [0, 255] (paddusb).
func AddsPu8(a, b M64) M64 {
	return via(xmm.AddSatU8, a, b)
}

// AddsPu16 adds four unsigned 16-bit lanes, clamping to [0, 65535] (paddusw).
func AddsPu16(a, b M64) M64 {
	return via(xmm.AddSatU16, a, b)
}

// SubsPi8 subtracts eight signed 8-bit lanes, clamping to [-128, 127] (psubsb).
func SubsPi8(a, b M64) M64 {
	return via(xmm.SubSatI8, a, b)
}

// SubsPi16 subtracts four signed 16-bit lanes, clamping to [-32768, 32767] (psubsw).
func SubsPi16(a, b M64) M64 {
	return via(xmm.SubSatI16, a, b)
}

// SubsPu8 subtracts eight unsigned 8-bit lanes, clamping to [0, 255] (psubusb).
func SubsPu8(a, b M64) M64 {
	return via(xmm.SubSatU8, a, b)
}

// SubsPu16 subtracts four unsigned 16-bit lanes, clamping to [0, 65535] (psubusw).
func SubsPu16(a, b M64) M64 {
	return via(xmm.SubSatU16, a, b)
}

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

// MaddPi16 multiplies the four signed 16-bit lane pairs of a and b into
// 32-bit products and adds adjacent product pairs, yielding two 32-bit lanes
// (pmaddwd).
func MaddPi16(a, b M64) M64 {
	return via(xmm.MAddI16, a, b)
}

// MulhiPi16 multiplies four signed 16-bit lane pairs and keeps the high 16
// bits of each 32-bit product (pmulhw). Against a splat of 1<<14 this is the
// classic Q15 multiply-by-one-half.
func MulhiPi16(a, b M64) M64 {
	return via(xmm.MulHighI16, a, b)
}

// MulloPi16 multiplies four signed 16-bit lane pairs and keeps the low 16
// bits of each 32-bit product (pmullw).
func MulloPi16(a, b M64) M64 {
	return via(xmm.MulLowI16, a, b)
}

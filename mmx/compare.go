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

// Comparisons yield a mask per lane, all bits one where the predicate holds
// and all bits zero where it does not, so the result feeds straight into the
// bitwise operations for select-by-mask:
//
//	mask := mmx.CmpgtPi16(a, b)
//	max := mmx.OrSi64(mmx.AndSi64(mask, a), mmx.AndnotSi64(mask, b))
//
// Greater-than is signed; the instruction family has no unsigned variant.

// CmpeqPi8 compares eight 8-bit lanes for equality (pcmpeqb).
func CmpeqPi8(a, b M64) M64 {
	return via(xmm.CmpEqI8, a, b)
}

// CmpeqPi16 compares four 16-bit lanes for equality (pcmpeqw).
func CmpeqPi16(a, b M64) M64 {
	return via(xmm.CmpEqI16, a, b)
}

// CmpeqPi32 compares two 32-bit lanes for equality (pcmpeqd).
func CmpeqPi32(a, b M64) M64 {
	return via(xmm.CmpEqI32, a, b)
}

// CmpgtPi8 compares eight signed 8-bit lanes for a > b (pcmpgtb).
func CmpgtPi8(a, b M64) M64 {
	return via(xmm.CmpGtI8, a, b)
}

// CmpgtPi16 compares four signed 16-bit lanes for a > b (pcmpgtw).
func CmpgtPi16(a, b M64) M64 {
	return via(xmm.CmpGtI16, a, b)
}

// CmpgtPi32 compares two signed 32-bit lanes for a > b (pcmpgtd).
func CmpgtPi32(a, b M64) M64 {
	return via(xmm.CmpGtI32, a, b)
}

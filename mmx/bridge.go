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

// The widening bridge. Operations without a direct 64-bit rendition are
// computed by zero-extending the operands into the low half of a 128-bit
// value, invoking the xmm primitive, and truncating back to the low 64 bits.
//
// widen always leaves the upper half zero. Several xmm primitives (saturating
// adds, comparisons, multiplies) read all 128 bits, so the zero upper half is
// what keeps their unused lanes inert.

// widen zero-extends v into the low 64-bit lane of a 128-bit value.
func widen(v M64) xmm.M128 {
	return xmm.FromUint64s([2]uint64{uint64(v), 0})
}

// narrow truncates w to its low 64-bit lane. The high lane is discarded
// unconditionally; callers must have arranged for it to carry nothing the
// result depends on.
func narrow(w xmm.M128) M64 {
	return M64(w.Uint64s()[0])
}

// via widens both operands, applies a two-operand xmm primitive, and narrows
// the result. Every bridged operation routes through here so the
// zero-extension and truncation logic exists exactly once.
func via(op func(a, b xmm.M128) xmm.M128, a, b M64) M64 {
	return narrow(op(widen(a), widen(b)))
}

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

// Bitwise operations act on the full 128 bits; lane width is irrelevant.

// And returns the bitwise AND of a and b.
func And(a, b M128) M128 {
	return M128{lo: a.lo & b.lo, hi: a.hi & b.hi}
}

// AndNot returns ^a & b, the AND of b with the complement of a.
func AndNot(a, b M128) M128 {
	return M128{lo: ^a.lo & b.lo, hi: ^a.hi & b.hi}
}

// Or returns the bitwise OR of a and b.
func Or(a, b M128) M128 {
	return M128{lo: a.lo | b.lo, hi: a.hi | b.hi}
}

// Xor returns the bitwise XOR of a and b.
func Xor(a, b M128) M128 {
	return M128{lo: a.lo ^ b.lo, hi: a.hi ^ b.hi}
}

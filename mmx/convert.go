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

// Scalar transfer. These move bit patterns between scalar registers and the
// vector container; no numeric conversion, rounding or sign logic happens
// beyond what the declared widths imply.

// Cvtsi64M64 copies a 64-bit scalar into a vector (movq).
func Cvtsi64M64(a int64) M64 {
	return M64(uint64(a))
}

// Cvtm64Si64 copies a vector out as a 64-bit scalar (movq).
func Cvtm64Si64(a M64) int64 {
	return a.Int64()
}

// Cvtsi32Si64 copies a 32-bit scalar into the low lane, zeroing the upper
// half (movd).
func Cvtsi32Si64(a int32) M64 {
	return M64(uint32(a))
}

// Cvtsi64Si32 extracts the low 32-bit lane (movd).
func Cvtsi64Si32(a M64) int32 {
	return a.Int32s()[0]
}

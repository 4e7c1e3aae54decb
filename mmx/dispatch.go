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

// Substrate identifies the vector hardware backing the host. It is purely
// informational: results are bit-identical on every substrate, and picking a
// code path based on it is the surrounding toolchain's business, never this
// package's.
type Substrate int

const (
	// SubstratePortable means no relevant vector hardware was detected;
	// the emulation runs on plain integer code.
	SubstratePortable Substrate = iota

	// SubstrateSSE2 means the host natively implements the 128-bit engine
	// the narrow instruction family is bridged onto.
	SubstrateSSE2

	// SubstrateNEON means the host carries an equivalent 128-bit engine
	// under a different instruction encoding.
	SubstrateNEON
)

// String returns a human-readable name for the substrate.
func (s Substrate) String() string {
	switch s {
	case SubstratePortable:
		return "portable"
	case SubstrateSSE2:
		return "sse2"
	case SubstrateNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentSubstrate is detected once at startup by init() in host_*.go.
var currentSubstrate Substrate

// HostSubstrate reports the vector hardware detected on this host.
func HostSubstrate() Substrate {
	return currentSubstrate
}

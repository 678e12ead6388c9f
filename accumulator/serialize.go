// Copyright © 2024 Accumulator Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package accumulator

import (
	"encoding/binary"

	"github.com/amis-tech/accumulator/bigint"
)

// minBytes is the fixed-size portion of the wire format: g (1F) + V (2F)
// + n (2F) + a 4-byte member count, before the variable-length member list.
const minBytes = 5*FactorSize + 4

// ToBytes serializes the accumulator per §6: g (FactorSize) ‖ V (2*FactorSize)
// ‖ n (2*FactorSize) ‖ |M| (uint32 big-endian) ‖ members (MemberSize each,
// ascending order).
func (a *Accumulator) ToBytes() []byte {
	out := make([]byte, minBytes+MemberSize*len(a.m))
	off := 0
	off += copy(out[off:], a.g.FixedBytes(FactorSize))
	off += copy(out[off:], a.v.FixedBytes(2*FactorSize))
	off += copy(out[off:], a.n.FixedBytes(2*FactorSize))
	binary.BigEndian.PutUint32(out[off:], uint32(len(a.m)))
	off += 4
	for _, x := range a.m {
		off += copy(out[off:], x.FixedBytes(MemberSize))
	}
	return out
}

// FromBytes deserializes an accumulator previously produced by ToBytes.
// It fails with SerializationError iff the byte length is wrong;
// otherwise it trusts field boundaries, per §6.
func FromBytes(b []byte) (*Accumulator, error) {
	if len(b) < minBytes {
		return nil, newError(SerializationError, "buffer shorter than the fixed accumulator header")
	}
	off := 0
	g := bigint.FromBytes(b[off : off+FactorSize])
	off += FactorSize
	v := bigint.FromBytes(b[off : off+2*FactorSize])
	off += 2 * FactorSize
	n := bigint.FromBytes(b[off : off+2*FactorSize])
	off += 2 * FactorSize
	count := binary.BigEndian.Uint32(b[off : off+4])
	off += 4

	if len(b) != minBytes+MemberSize*int(count) {
		return nil, newError(SerializationError, "buffer length does not match declared member count")
	}

	members := make([]*bigint.Int, count)
	for i := range members {
		members[i] = bigint.FromBytes(b[off : off+MemberSize])
		off += MemberSize
	}

	return &Accumulator{g: g, n: n, v: v, m: members}, nil
}

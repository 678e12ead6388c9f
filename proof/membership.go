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

package proof

import (
	"github.com/amis-tech/accumulator/accumulator"
	"github.com/amis-tech/accumulator/witness"
)

// Membership is a PoKE2 proof specialized to g^x = V via a membership
// witness: u := witness.U, w := accumulator.Value(), prover's x := witness.X.
type Membership struct {
	inner *poke2
}

// NewMembership builds a membership proof binding w to acc's current
// value and the given nonce.
func NewMembership(w *witness.Membership, acc *accumulator.Accumulator, nonce []byte) *Membership {
	return &Membership{inner: provePoke2(w.X, w.U, acc.Value(), acc, nonce)}
}

// Verify checks the proof against acc's current value and the given
// nonce; a different value, a different nonce, or a tampered proof all
// verify to false.
func (p *Membership) Verify(acc *accumulator.Accumulator, nonce []byte) bool {
	return p.inner.verify(acc, nonce, acc.Value())
}

// ToBytes serializes the proof; layout is identical to a bare PoKE2 proof.
func (p *Membership) ToBytes() []byte {
	return p.inner.toBytes()
}

// MembershipFromBytes deserializes a membership proof produced by ToBytes.
func MembershipFromBytes(b []byte) (*Membership, error) {
	inner, err := poke2FromBytes(b)
	if err != nil {
		return nil, err
	}
	return &Membership{inner: inner}, nil
}

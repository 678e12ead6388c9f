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
	"errors"

	"github.com/amis-tech/accumulator/accumulator"
	"github.com/amis-tech/accumulator/bigint"
	"github.com/amis-tech/accumulator/field"
	"github.com/amis-tech/accumulator/witness"
)

// NonMembership composes two PoKE2 instances over a non-membership
// witness (a, b̂, x): one proving knowledge of a mapping V -> V^a, the
// other proving b̂^x ≡ g*V^-a (§4.10).
type NonMembership struct {
	va  *bigint.Int
	piV *poke2
	piG *poke2
}

// NewNonMembership builds a non-membership proof binding w to acc's
// current value and the given nonce.
func NewNonMembership(w *witness.NonMembership, acc *accumulator.Accumulator, nonce []byte) *NonMembership {
	f := field.New(acc.Modulus())
	va := f.Exp(acc.Value(), w.A)
	gv := f.Mul(acc.Generator(), f.Inv(va))

	piV := provePoke2(w.A, acc.Value(), va, acc, nonce)
	piG := provePoke2(w.X, w.Bhat, gv, acc, nonce)

	return &NonMembership{va: va, piV: piV, piG: piG}
}

// Verify recomputes V^-a and g*V^-a from the current accumulator state
// and checks both composed PoKE2 instances, rebinding π_v's u to the
// accumulator's current value so that any mutation invalidates the
// proof (§4.10 verify step 2, invariant #10).
func (p *NonMembership) Verify(acc *accumulator.Accumulator, nonce []byte) bool {
	f := field.New(acc.Modulus())
	// Field.Inv panics on a non-invertible value; p.va comes from an
	// untrusted, possibly adversarial proof, so the fallible form is used
	// here instead (unlike NewNonMembership, where va is always a unit).
	vaInv, ok := bigint.ModInverse(p.va, f.Modulus())
	if !ok {
		return false
	}
	gv := f.Mul(acc.Generator(), vaInv)

	piV := &poke2{u: acc.Value(), z: p.piV.z, q: p.piV.q, r: p.piV.r}
	if !piV.verify(acc, nonce, p.va) {
		return false
	}
	return p.piG.verify(acc, nonce, gv)
}

// nonMembershipWireSize is V^a (2F) + π_v (6F+MemberSize) + π_g (6F+MemberSize).
const nonMembershipWireSize = 2*accumulator.FactorSize + 2*poke2WireSize

// ToBytes serializes the proof per §6: V^a followed by both composed
// PoKE2 instances in full (π_v's u field is present on the wire but
// ignored and reconstructed at verification time).
func (p *NonMembership) ToBytes() []byte {
	out := make([]byte, nonMembershipWireSize)
	off := copy(out, p.va.FixedBytes(2*accumulator.FactorSize))
	off += copy(out[off:], p.piV.toBytes())
	copy(out[off:], p.piG.toBytes())
	return out
}

// NonMembershipFromBytes deserializes a non-membership proof produced by ToBytes.
func NonMembershipFromBytes(b []byte) (*NonMembership, error) {
	if len(b) != nonMembershipWireSize {
		return nil, errors.New("proof: malformed non-membership proof length")
	}
	off := 2 * accumulator.FactorSize
	va := bigint.FromBytes(b[:off])
	piV, err := poke2FromBytes(b[off : off+poke2WireSize])
	if err != nil {
		return nil, err
	}
	off += poke2WireSize
	piG, err := poke2FromBytes(b[off : off+poke2WireSize])
	if err != nil {
		return nil, err
	}
	return &NonMembership{va: va, piV: piV, piG: piG}, nil
}

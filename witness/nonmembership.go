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

package witness

import (
	"errors"

	"github.com/amis-tech/accumulator/accumulator"
	"github.com/amis-tech/accumulator/bigint"
	"github.com/amis-tech/accumulator/hashprime"
	"github.com/amis-tech/accumulator/parallel"
)

// ErrIsMember is returned when a non-membership witness is requested for
// an element that is, in fact, already in the accumulator's member set.
// Its kind is accumulator.InvalidMemberSupplied.
var ErrIsMember error = &accumulator.Error{Kind: accumulator.InvalidMemberSupplied, Message: "witness: element is already a member of the accumulator"}

// NonMembership is (a, b̂, x): Bezout coefficients binding x to the
// product of the accumulator's members, with b pre-exponentiated as
// b̂ = g^b mod n so its sign never needs to cross the wire. Invariant:
// V^a * b̂^x ≡ g (mod n) (§4.7).
type NonMembership struct {
	A    *bigint.Int
	Bhat *bigint.Int
	X    *bigint.Int
}

// New builds a non-membership witness for e against acc: x :=
// hash_to_prime(e); s := product of acc's members; extended_gcd(s, x)
// yields (1, a, b) with s*a + x*b = 1, since x is prime and distinct from
// every member; b is stored only after exponentiation.
func New(acc *accumulator.Accumulator, e []byte) (*NonMembership, error) {
	x := hashprime.ToPrime(e)
	if acc.Contains(x) {
		return nil, ErrIsMember
	}

	s := parallel.Product(acc.Members())
	g, a, b := bigint.ExtendedGCD(s, x)
	if !g.Equal(bigint.New(1)) {
		return nil, errors.New("witness: non-membership element is not coprime to the member product")
	}

	bhat := bigint.ModExp(acc.Generator(), b, acc.Modulus())
	return &NonMembership{A: a, Bhat: bhat, X: x}, nil
}

// Verify reports whether V^a * b̂^x ≡ g (mod n).
func (w *NonMembership) Verify(n, g, v *bigint.Int) bool {
	lhs := bigint.MulMod(bigint.ModExp(v, w.A, n), bigint.ModExp(w.Bhat, w.X, n), n)
	return lhs.Equal(g)
}

// nonMembershipWireSize is a (2*FactorSize, signed) ‖ b̂ (2*FactorSize) ‖
// x (MemberSize): 4*FactorSize + MemberSize, per §6.
const nonMembershipWireSize = 4*accumulator.FactorSize + accumulator.MemberSize

// ToBytes serializes the witness per §6's non-membership-witness layout.
func (w *NonMembership) ToBytes() []byte {
	out := make([]byte, nonMembershipWireSize)
	off := copy(out, w.A.FixedBytesSigned(2*accumulator.FactorSize))
	off += copy(out[off:], w.Bhat.FixedBytes(2*accumulator.FactorSize))
	copy(out[off:], w.X.FixedBytes(accumulator.MemberSize))
	return out
}

// FromBytes deserializes a non-membership witness produced by ToBytes.
func FromBytes(b []byte) (*NonMembership, error) {
	if len(b) != nonMembershipWireSize {
		return nil, errors.New("witness: malformed non-membership witness length")
	}
	a := bigint.FromFixedBytesSigned(b[:2*accumulator.FactorSize])
	bhat := bigint.FromBytes(b[2*accumulator.FactorSize : 4*accumulator.FactorSize])
	x := bigint.FromBytes(b[4*accumulator.FactorSize:])
	return &NonMembership{A: a, Bhat: bhat, X: x}, nil
}

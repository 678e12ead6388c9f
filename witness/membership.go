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

// Package witness builds membership and non-membership witnesses (C6,
// C7): the auxiliary data that lets a holder of one accumulator element
// produce an efficient proof about it, without needing the full member
// set or the secret key at proof time.
package witness

import (
	"errors"

	"github.com/amis-tech/accumulator/accumulator"
	"github.com/amis-tech/accumulator/bigint"
	"github.com/amis-tech/accumulator/hashprime"
	"github.com/amis-tech/accumulator/key"
	"github.com/amis-tech/accumulator/parallel"
)

// ErrNotMember is returned when a membership witness is requested for an
// element that is not, in fact, in the accumulator's member set. Its kind
// is accumulator.InvalidMemberSupplied.
var ErrNotMember error = &accumulator.Error{Kind: accumulator.InvalidMemberSupplied, Message: "witness: element is not a member of the accumulator"}

// Membership is (u, x) with u^x ≡ V (mod n). It is valid only while the
// accumulator's V is unchanged; the caller must regenerate it after any
// mutation (§4.6, and the open question on witness "update" in §9 — this
// library does not implement an update routine).
type Membership struct {
	U *bigint.Int
	X *bigint.Int
}

// NewMembership builds a membership witness for e against acc, without
// using a secret key: u is g raised to the product of every other member,
// with that product used as the exponent directly.
func NewMembership(acc *accumulator.Accumulator, e []byte) (*Membership, error) {
	return buildMembership(acc, e, nil)
}

// NewMembershipWithKey is NewMembership's efficient form: the combined
// exponent is reduced modulo φ(n) before exponentiating.
func NewMembershipWithKey(sk *key.SecretKey, acc *accumulator.Accumulator, e []byte) (*Membership, error) {
	return buildMembership(acc, e, sk)
}

func buildMembership(acc *accumulator.Accumulator, e []byte, sk *key.SecretKey) (*Membership, error) {
	return buildMembershipForPrime(acc, hashprime.ToPrime(e), sk)
}

// NewMembershipForPrime builds a membership witness for a member that is
// already a prime (the element was added via WithPrimeMembers rather than
// hashed from a byte string), skipping the hash-to-prime step.
func NewMembershipForPrime(acc *accumulator.Accumulator, x *bigint.Int) (*Membership, error) {
	return buildMembershipForPrime(acc, x, nil)
}

// NewMembershipForPrimeWithKey is NewMembershipForPrime's efficient form.
func NewMembershipForPrimeWithKey(sk *key.SecretKey, acc *accumulator.Accumulator, x *bigint.Int) (*Membership, error) {
	return buildMembershipForPrime(acc, x, sk)
}

func buildMembershipForPrime(acc *accumulator.Accumulator, x *bigint.Int, sk *key.SecretKey) (*Membership, error) {
	if !acc.Contains(x) {
		return nil, ErrNotMember
	}

	others := make([]*bigint.Int, 0, len(acc.Members())-1)
	for _, y := range acc.Members() {
		if !y.Equal(x) {
			others = append(others, y)
		}
	}

	var exponent *bigint.Int
	if sk != nil {
		exponent = parallel.ProductMod(others, sk.Totient())
	} else {
		exponent = parallel.Product(others)
	}

	u := bigint.ModExp(acc.Generator(), exponent, acc.Modulus())
	return &Membership{U: u, X: x}, nil
}

// Verify reports whether u^x ≡ v (mod n), the invariant a membership
// witness must satisfy against an accumulator's current modulus/value.
func (w *Membership) Verify(n, v *bigint.Int) bool {
	return bigint.ModExp(w.U, w.X, n).Equal(v)
}

// membershipWireSize is u (2*FactorSize) ‖ x (MemberSize); the membership
// witness has no wire layout in the accumulator's own external-interface
// table, but since every other protocol object is a fixed-width
// big-endian record, witnesses follow the same convention for callers
// that need to persist or transmit one.
const membershipWireSize = 2*accumulator.FactorSize + accumulator.MemberSize

// ToBytes serializes the witness as u (2*FactorSize) ‖ x (MemberSize).
func (w *Membership) ToBytes() []byte {
	out := make([]byte, membershipWireSize)
	off := copy(out, w.U.FixedBytes(2*accumulator.FactorSize))
	copy(out[off:], w.X.FixedBytes(accumulator.MemberSize))
	return out
}

// MembershipFromBytes deserializes a witness produced by ToBytes.
func MembershipFromBytes(b []byte) (*Membership, error) {
	if len(b) != membershipWireSize {
		return nil, errors.New("witness: malformed membership witness length")
	}
	u := bigint.FromBytes(b[:2*accumulator.FactorSize])
	x := bigint.FromBytes(b[2*accumulator.FactorSize:])
	return &Membership{U: u, X: x}, nil
}

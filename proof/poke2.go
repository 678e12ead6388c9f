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

// Package proof implements the PoKE2 non-interactive proof of knowledge
// of exponent (C8), and its two specializations, membership (C9) and
// non-membership (C10) proofs, following section 3.2 of Boneh-Bunz-Fisch
// (https://eprint.iacr.org/2018/1188.pdf), made non-interactive via
// Fiat-Shamir.
package proof

import (
	"errors"

	"github.com/amis-tech/accumulator/accumulator"
	"github.com/amis-tech/accumulator/bigint"
	"github.com/amis-tech/accumulator/field"
	"github.com/amis-tech/accumulator/hashprime"
)

// poke2 is a proof that the prover knows x such that u^x ≡ w (mod n),
// for public (u, w) where w is some value embedded in the accumulator
// state. It is never constructed or verified standalone by a caller:
// Membership and NonMembership are the public surface.
type poke2 struct {
	u, z, q, r *bigint.Int
}

// poke2WireSize is u (2F) ‖ z (2F) ‖ Q (2F) ‖ r (MemberSize): 6F+MemberSize.
const poke2WireSize = 6*accumulator.FactorSize + accumulator.MemberSize

func provePoke2(x, u, w *bigint.Int, acc *accumulator.Accumulator, nonce []byte) *poke2 {
	f := field.New(acc.Modulus())
	n := f.Modulus()
	gPrime := f.Exp(acc.Generator(), bigint.FromBytes(nonce))
	z := f.Exp(gPrime, x)

	l := poke2Challenge(gPrime, n, w, u, z, nonce)
	alpha := poke2FiatShamir(gPrime, n, w, u, z, nonce, l)

	quotient, r := bigint.DivRem(x, l)
	uq := f.Exp(u, quotient)
	gq := f.Exp(gPrime, bigint.Mul(alpha, quotient))
	q := f.Mul(uq, gq)

	return &poke2{u: u, z: z, q: q, r: r}
}

func (p *poke2) verify(acc *accumulator.Accumulator, nonce []byte, w *bigint.Int) bool {
	f := field.New(acc.Modulus())
	n := f.Modulus()
	gPrime := f.Exp(acc.Generator(), bigint.FromBytes(nonce))

	l := poke2Challenge(gPrime, n, w, p.u, p.z, nonce)
	alpha := poke2FiatShamir(gPrime, n, w, p.u, p.z, nonce, l)

	ql := f.Exp(p.q, l)
	ur := f.Exp(p.u, p.r)
	gr := f.Exp(gPrime, bigint.Mul(alpha, p.r))
	left := f.Mul(ql, f.Mul(ur, gr))

	right := f.Mul(w, f.Exp(p.z, alpha))
	return left.Equal(right)
}

// poke2Challenge is l := hash_to_prime(g' || n || w || u || z || nonce), §4.8 step 2.
func poke2Challenge(gPrime, n, w, u, z *bigint.Int, nonce []byte) *bigint.Int {
	return hashprime.Challenge(gPrime.Bytes(), n.Bytes(), w.Bytes(), u.Bytes(), z.Bytes(), nonce)
}

// poke2FiatShamir is alpha := H(g' || n || w || u || z || nonce || l),
// interpreted as a 512-bit integer, §4.8 step 3.
func poke2FiatShamir(gPrime, n, w, u, z *bigint.Int, nonce []byte, l *bigint.Int) *bigint.Int {
	digest := hashprime.H(gPrime.Bytes(), n.Bytes(), w.Bytes(), u.Bytes(), z.Bytes(), nonce, l.Bytes())
	return bigint.FromBytes(digest[:])
}

// toBytes serializes the proof as u (2F) ‖ z (2F) ‖ Q (2F) ‖ r (MemberSize).
func (p *poke2) toBytes() []byte {
	out := make([]byte, poke2WireSize)
	off := 0
	off += copy(out[off:], p.u.FixedBytes(2*accumulator.FactorSize))
	off += copy(out[off:], p.z.FixedBytes(2*accumulator.FactorSize))
	off += copy(out[off:], p.q.FixedBytes(2*accumulator.FactorSize))
	copy(out[off:], p.r.FixedBytes(accumulator.MemberSize))
	return out
}

func poke2FromBytes(b []byte) (*poke2, error) {
	if len(b) != poke2WireSize {
		return nil, errors.New("proof: malformed poke2 proof length")
	}
	f := 2 * accumulator.FactorSize
	u := bigint.FromBytes(b[0*f : 1*f])
	z := bigint.FromBytes(b[1*f : 2*f])
	q := bigint.FromBytes(b[2*f : 3*f])
	r := bigint.FromBytes(b[3*f:])
	return &poke2{u: u, z: z, q: q, r: r}, nil
}

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

// Package accumulator implements the dynamic universal RSA accumulator
// (C5): a constant-size commitment (g, n, V, M) to a set of elements,
// supporting insertion and deletion with and without knowledge of the
// secret factorization.
package accumulator

import (
	"crypto/rand"

	"github.com/amis-tech/accumulator/bigint"
	"github.com/amis-tech/accumulator/hashprime"
	"github.com/amis-tech/accumulator/key"
	"github.com/amis-tech/accumulator/logger"
	"github.com/amis-tech/accumulator/parallel"
)

// Wire-level constants from §6.
const (
	// MinSizePrime is the minimum bit length of a safe-prime factor.
	MinSizePrime = 1024
	// FactorSize is the byte width reserved for one safe-prime factor.
	FactorSize = 128
	// MemberSize is the byte width reserved for one hashed-prime member.
	MemberSize = 32
)

// Accumulator holds (g, n, V, M): the generator, modulus, current
// commitment value, and the ordered set of prime exponents mixed into V.
type Accumulator struct {
	g, n, v *bigint.Int
	m       []*bigint.Int
}

// New constructs an empty accumulator for the modulus held by sk: a
// freshly sampled generator g, V := g, M := ∅.
func New(sk *key.SecretKey) (*Accumulator, error) {
	g, err := generateGenerator()
	if err != nil {
		return nil, err
	}
	return &Accumulator{
		g: g,
		n: sk.Modulus(),
		v: g.Clone(),
		m: nil,
	}, nil
}

// Default builds an accumulator from a freshly generated secret key,
// exercising the same construction path as New with no caller-supplied
// material. It exists for callers (and tests) that just need a
// syntactically valid, empty accumulator.
func Default() (*Accumulator, error) {
	sk, err := key.Generate(MinSizePrime)
	if err != nil {
		return nil, err
	}
	return New(sk)
}

func generateGenerator() (*bigint.Int, error) {
	sp, err := bigint.GenerateSafePrime(rand.Reader, MinSizePrime)
	if err != nil {
		return nil, err
	}
	return sp.P, nil
}

// WithMembers builds an accumulator seeded with the hash-to-prime image
// of each element, using sk to reduce the combined exponent modulo φ(n).
func WithMembers(sk *key.SecretKey, elements [][]byte) (*Accumulator, error) {
	primes := make([]*bigint.Int, len(elements))
	for i, e := range elements {
		primes[i] = hashprime.ToPrime(e)
	}
	return WithPrimeMembers(sk, primes)
}

// WithPrimeMembers builds an accumulator seeded with already-hashed prime
// members; every entry must independently pass a probable-primality check
// or InvalidType is returned.
func WithPrimeMembers(sk *key.SecretKey, primes []*bigint.Int) (*Accumulator, error) {
	for _, x := range primes {
		if !x.IsProbablePrime(15) {
			return nil, newError(InvalidType, "member is not a probable prime")
		}
	}

	g, err := generateGenerator()
	if err != nil {
		return nil, err
	}
	n := sk.Modulus()

	members := cloneMembers(primes)
	sortMembers(members)
	members = dedupeSorted(members)

	logger.Component("accumulator").Debug("constructing accumulator with members", "count", len(members))

	phi := sk.Totient()
	exponent := parallel.ProductMod(members, phi)
	v := bigint.ModExp(g, exponent, n)

	return &Accumulator{g: g, n: n, v: v, m: members}, nil
}

// Clone returns a deep, independently mutable copy.
func (a *Accumulator) Clone() *Accumulator {
	return &Accumulator{
		g: a.g.Clone(),
		n: a.n.Clone(),
		v: a.v.Clone(),
		m: cloneMembers(a.m),
	}
}

// Generator returns g.
func (a *Accumulator) Generator() *bigint.Int { return a.g }

// Modulus returns n.
func (a *Accumulator) Modulus() *bigint.Int { return a.n }

// Value returns the current commitment V.
func (a *Accumulator) Value() *bigint.Int { return a.v }

// Members returns a copy of the ordered member set M.
func (a *Accumulator) Members() []*bigint.Int { return cloneMembers(a.m) }

// Contains reports whether x (already hashed to a prime) is a member.
func (a *Accumulator) Contains(x *bigint.Int) bool {
	return containsMember(a.m, x)
}

// Equal reports whether a and o have equal g, n, V and M, per §3's
// equality contract.
func (a *Accumulator) Equal(o *Accumulator) bool {
	if !a.g.Equal(o.g) || !a.n.Equal(o.n) || !a.v.Equal(o.v) {
		return false
	}
	if len(a.m) != len(o.m) {
		return false
	}
	for i := range a.m {
		if !a.m[i].Equal(o.m[i]) {
			return false
		}
	}
	return true
}

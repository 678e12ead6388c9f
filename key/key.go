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

// Package key holds the RSA secret key (two safe primes) that backs an
// accumulator's efficient (secret-key-aware) operations, C4 in the
// engine's component breakdown.
package key

import (
	"crypto/rand"
	"errors"

	"github.com/amis-tech/accumulator/bigint"
	"github.com/amis-tech/accumulator/logger"
)

// MinPrimeBits is the minimum bit length of each safe-prime factor,
// MIN_SIZE_PRIME in the wire contract.
const MinPrimeBits = 1024

// ErrEqualFactors is returned if freshly sampled p and q collide, which
// cryptographically never happens but is checked defensively the way the
// teacher's key-generation paths re-roll on a zero-probability collision.
var ErrEqualFactors = errors.New("key: sampled p and q are equal")

// SecretKey is the pair of safe primes (p, q) behind an RSA modulus.
// Its totient φ(n) = (p-1)(q-1) lets an accumulator holder reduce
// exponents and invert them, which is what makes insert/remove/witness
// construction fast; the public n alone supports none of that.
type SecretKey struct {
	p, q *bigint.Int
}

// maxEqualFactorRetries bounds the p != q re-roll loop in Generate. The
// two primes colliding has cryptographically negligible probability at
// MinPrimeBits and up; this only guards against a broken entropy source
// spinning forever.
const maxEqualFactorRetries = 10

// Generate samples two independent safe primes, each of at least
// MinPrimeBits bits, per §4.4.
func Generate(bits int) (*SecretKey, error) {
	if bits < MinPrimeBits {
		bits = MinPrimeBits
	}
	logger.Component("key").Debug("generating secret key", "bits", bits)

	p, err := generateSafePrimeFactor(bits)
	if err != nil {
		return nil, err
	}
	for i := 0; i < maxEqualFactorRetries; i++ {
		q, err := generateSafePrimeFactor(bits)
		if err != nil {
			return nil, err
		}
		if !p.Equal(q) {
			return &SecretKey{p: p, q: q}, nil
		}
	}
	return nil, ErrEqualFactors
}

// FromFactors reconstructs a SecretKey from its two safe-prime factors,
// for callers loading a previously generated and persisted key.
func FromFactors(p, q *bigint.Int) *SecretKey {
	return &SecretKey{p: p, q: q}
}

func generateSafePrimeFactor(bits int) (*bigint.Int, error) {
	sp, err := bigint.GenerateSafePrime(rand.Reader, bits)
	if err != nil {
		return nil, err
	}
	return sp.P, nil
}

// Modulus returns n = p*q.
func (k *SecretKey) Modulus() *bigint.Int {
	return bigint.Mul(k.p, k.q)
}

// Totient returns φ(n) = (p-1)*(q-1).
func (k *SecretKey) Totient() *bigint.Int {
	one := bigint.New(1)
	return bigint.Mul(bigint.Sub(k.p, one), bigint.Sub(k.q, one))
}

// Factors returns the two safe-prime factors (p, q).
func (k *SecretKey) Factors() (*bigint.Int, *bigint.Int) {
	return k.p, k.q
}

// Destroy zeroes the in-memory representation of the factors. Callers
// are responsible for calling this once a key is no longer needed; the
// library does not track key lifetime itself (key management lifecycle
// is out of scope).
func (k *SecretKey) Destroy() {
	k.p = bigint.New(0)
	k.q = bigint.New(0)
}

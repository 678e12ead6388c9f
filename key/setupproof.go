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

package key

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/amis-tech/accumulator/bigint"
	"golang.org/x/crypto/blake2b"
)

// SetupProof is a zero-knowledge proof that a published modulus n is
// genuinely a product of two primes, without revealing them. It lets a
// secret-key holder publish n auditable by anyone, a supplement to the
// core accumulator protocol (an accumulator never requires one). It
// follows "Short Proofs of Knowledge for Factoring": the prover picks
// r in [1, n-2] and z coprime to n, sets x = z^r mod n, derives a
// challenge e from (x, z, n), and folds the totient into
// y = r + (n - phi(n))*e.
type SetupProof struct {
	Salt []byte
	X, Y, Z *bigint.Int
}

const (
	safeModulusBits = 2048
	maxProveRetries = 100
)

var (
	// ErrSmallModulus is returned when n is below the minimum size this
	// proof is calibrated for.
	ErrSmallModulus = errors.New("key: modulus too small for a setup proof")
	// ErrSetupVerifyFailed is returned when a setup proof fails to verify.
	ErrSetupVerifyFailed = errors.New("key: setup proof verification failed")
	// ErrNotCoprime is returned when z is not a unit modulo n.
	ErrNotCoprime = errors.New("key: z is not coprime to n")
)

// Prove builds a SetupProof for the modulus n = p*q held by sk.
func Prove(sk *SecretKey) (*SetupProof, error) {
	n := sk.Modulus()
	if n.BitLen() < safeModulusBits {
		return nil, ErrSmallModulus
	}
	phi := sk.Totient()

	for attempt := 0; attempt < maxProveRetries; attempt++ {
		a := bigint.Sub(n, bigint.New(1)) // A = n-1
		r, err := bigint.RandomPositiveInt(a)
		if err != nil {
			return nil, err
		}
		z, err := bigint.RandomCoprimeInt(n)
		if err != nil {
			return nil, err
		}
		x := bigint.ModExp(z, r, n)

		salt, err := bigint.GenRandomBytes(blake2b.Size256)
		if err != nil {
			return nil, err
		}
		e := setupChallenge(salt, x, z, n)

		y := bigint.Add(r, bigint.Mul(bigint.Sub(n, phi), e))

		proof := &SetupProof{Salt: salt, X: x, Y: y, Z: z}
		if err := proof.Verify(n); err == nil {
			return proof, nil
		}
	}
	return nil, errors.New("key: exceeded max retries building setup proof")
}

// Verify checks the proof against the claimed modulus n.
func (p *SetupProof) Verify(n *bigint.Int) error {
	one := bigint.New(1)
	if !bigint.InRange(p.X, one, n) {
		return ErrSetupVerifyFailed
	}
	a := bigint.Sub(n, one)
	if !bigint.InRange(p.Y, bigint.New(0), a) {
		return ErrSetupVerifyFailed
	}
	gcd, _, _ := bigint.ExtendedGCD(p.Z, n)
	if !gcd.Equal(one) {
		return ErrNotCoprime
	}

	e := setupChallenge(p.Salt, p.X, p.Z, n)
	exponent := bigint.Sub(p.Y, bigint.Mul(n, e))
	expected := bigint.ModExp(p.Z, exponent, n)
	if !expected.Equal(p.X) {
		return ErrSetupVerifyFailed
	}
	return nil
}

// setupChallenge derives e = H(salt, challengeBound, x, z, n) mod B, where
// B = 2^1024 is the bound named "B" in the reference protocol. Inputs are
// length-prefixed before hashing so there is no ambiguity between, say,
// x="1"||z="23" and x="12"||z="3".
func setupChallenge(salt []byte, x, z, n *bigint.Int) *bigint.Int {
	h, _ := blake2b.New256(nil)
	h.Write(salt)
	writeLenPrefixed(h, boundBytes())
	writeLenPrefixed(h, x.Bytes())
	writeLenPrefixed(h, z.Bytes())
	writeLenPrefixed(h, n.Bytes())
	return bigint.FromBytes(h.Sum(nil))
}

var challengeBound = new(big.Int).Lsh(big.NewInt(1), safeModulusBits/2)

func boundBytes() []byte {
	return challengeBound.Bytes()
}

func writeLenPrefixed(w interface{ Write([]byte) (int, error) }, b []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	w.Write(lenBuf[:])
	w.Write(b)
}

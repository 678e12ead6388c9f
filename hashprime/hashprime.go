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

// Package hashprime implements the deterministic map from an arbitrary
// byte string to an odd ~256-bit prime (C3), the exponent domain every
// accumulator member and every PoKE2 challenge is drawn from.
package hashprime

import (
	"encoding/binary"

	"github.com/amis-tech/accumulator/bigint"
	"golang.org/x/crypto/blake2b"
)

// primeTestRounds is the number of Miller-Rabin rounds layered on top of
// Go's built-in Baillie-PSW pass, per §4.3 step 5 ("is_probable_prime(x, 15)").
const primeTestRounds = 15

// ToPrime deterministically maps m to an odd prime x with
// 2^255 <= x < 2^256, by hashing m concatenated with an incrementing
// 8-byte counter until the low 32 bytes of the Blake2b-512 digest (with
// its low bit forced to 1) are probably prime.
func ToPrime(m []byte) *bigint.Int {
	buf := make([]byte, len(m)+8)
	copy(buf, m)
	counter := buf[len(m):]

	for i := uint64(1); ; i++ {
		binary.BigEndian.PutUint64(counter, i)
		h := blake2b.Sum512(buf)
		h[63] |= 0x01
		h[32] |= 0x80
		x := bigint.FromBytes(h[32:64])
		if x.IsProbablePrime(primeTestRounds) {
			return x
		}
	}
}

// H is the 512-bit random oracle used directly (not composed with the
// prime search) by the PoKE2 challenge derivation in §4.8 step 3.
func H(parts ...[]byte) [64]byte {
	h, _ := blake2b.New512(nil)
	for _, p := range parts {
		h.Write(p)
	}
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Challenge is hash_to_prime applied to the concatenation of parts,
// exactly as used for the PoKE2 challenge l in §4.8 step 2.
func Challenge(parts ...[]byte) *bigint.Int {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	joined := make([]byte, 0, total)
	for _, p := range parts {
		joined = append(joined, p...)
	}
	return ToPrime(joined)
}

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

// Package bigint wraps math/big.Int with the fixed-width, sign-aware codec
// and the small set of cryptographic operations (modular exponentiation
// with signed exponents, extended gcd, safe-prime generation) the
// accumulator engine needs. It plays the role of the "BigInt library"
// collaborator: a single seam where the arbitrary-precision backend could
// be swapped out without touching the rest of the engine.
package bigint

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// Int is an arbitrary-precision signed integer.
type Int struct {
	v *big.Int
}

// New wraps an int64.
func New(x int64) *Int {
	return &Int{v: big.NewInt(x)}
}

// FromBigInt wraps a *big.Int, copying it so the caller can keep mutating
// their own value.
func FromBigInt(x *big.Int) *Int {
	return &Int{v: new(big.Int).Set(x)}
}

// FromBytes interprets b as an unsigned big-endian integer.
func FromBytes(b []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(b)}
}

// FromString parses a base-10 signed decimal string.
func FromString(s string) (*Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("bigint: invalid decimal string %q", s)
	}
	return &Int{v: v}, nil
}

// BigInt returns a copy of the underlying *big.Int, so callers cannot
// mutate i through the returned value.
func (i *Int) BigInt() *big.Int {
	return new(big.Int).Set(i.v)
}

// Clone returns a deep copy.
func (i *Int) Clone() *Int {
	return &Int{v: new(big.Int).Set(i.v)}
}

// Sign returns -1, 0 or 1.
func (i *Int) Sign() int {
	return i.v.Sign()
}

// IsOdd reports whether the absolute value is odd.
func (i *Int) IsOdd() bool {
	return i.v.Bit(0) == 1
}

// BitLen returns the length of the absolute value in bits; zero for 0.
func (i *Int) BitLen() int {
	return i.v.BitLen()
}

// Cmp is the usual three-way comparison.
func (i *Int) Cmp(o *Int) int {
	return i.v.Cmp(o.v)
}

// Equal reports whether i and o represent the same integer.
func (i *Int) Equal(o *Int) bool {
	if i == nil || o == nil {
		return i == o
	}
	return i.v.Cmp(o.v) == 0
}

// String formats the integer in base 10.
func (i *Int) String() string {
	return i.v.String()
}

// Add returns a+b.
func Add(a, b *Int) *Int {
	return &Int{v: new(big.Int).Add(a.v, b.v)}
}

// Sub returns a-b.
func Sub(a, b *Int) *Int {
	return &Int{v: new(big.Int).Sub(a.v, b.v)}
}

// Mul returns a*b, with no modular reduction.
func Mul(a, b *Int) *Int {
	return &Int{v: new(big.Int).Mul(a.v, b.v)}
}

// DivRem returns (q, r) such that a = q*b + r, with 0 <= r < |b|, per the
// §4.1 contract (a Euclidean/floor division, not Go's truncating one).
func DivRem(a, b *Int) (q, r *Int) {
	qq, rr := new(big.Int), new(big.Int)
	qq.DivMod(a.v, b.v, rr)
	return &Int{v: qq}, &Int{v: rr}
}

// MulMod returns a*b mod n.
func MulMod(a, b, n *Int) *Int {
	r := new(big.Int).Mul(a.v, b.v)
	r.Mod(r, n.v)
	return &Int{v: r}
}

// ModExp returns base^exp mod n. n must be positive. A negative exp is
// interpreted as exponentiation of the modular inverse of base, per §4.1;
// base must then be invertible mod n.
func ModExp(base, exp, n *Int) *Int {
	return &Int{v: new(big.Int).Exp(base.v, exp.v, n.v)}
}

// ModInverse returns a^-1 mod n and true, or (nil, false) if gcd(a,n) != 1.
func ModInverse(a, n *Int) (*Int, bool) {
	inv := new(big.Int).ModInverse(a.v, n.v)
	if inv == nil {
		return nil, false
	}
	return &Int{v: inv}, true
}

// ExtendedGCD returns (g, x, y) with g = a*x + b*y, g >= 0.
func ExtendedGCD(a, b *Int) (g, x, y *Int) {
	gg, xx, yy := new(big.Int), new(big.Int), new(big.Int)
	gg.GCD(xx, yy, a.v, b.v)
	return &Int{v: gg}, &Int{v: xx}, &Int{v: yy}
}

// IsProbablePrime runs a Baillie-PSW style strong primality check (Go's
// big.Int.ProbablyPrime always performs a Baillie-PSW pass, plus n rounds
// of Miller-Rabin with random bases).
func (i *Int) IsProbablePrime(rounds int) bool {
	return i.v.ProbablyPrime(rounds)
}

// GeneratePrime samples a probable prime uniformly from [2^(bits-1), 2^bits).
func GeneratePrime(bits int) (*Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("bigint: prime size must be at least 2 bits, got %d", bits)
	}
	low := new(big.Int).Lsh(big1, uint(bits-1))
	for {
		p, err := rand.Int(rand.Reader, low)
		if err != nil {
			return nil, err
		}
		p.Add(p, low)
		if p.ProbablyPrime(20) {
			return &Int{v: p}, nil
		}
	}
}

// Bytes returns the minimal unsigned big-endian encoding of the absolute
// value (no leading zero byte, no sign).
func (i *Int) Bytes() []byte {
	return i.v.Bytes()
}

// FixedBytes returns the unsigned big-endian encoding of the absolute
// value, left-zero-padded to size bytes. It panics if the value doesn't
// fit, the same programmer-error contract as the teacher's b2fa helper:
// callers only ever call this with sizes the protocol guarantees are
// large enough.
func (i *Int) FixedBytes(size int) []byte {
	b := i.v.Bytes()
	if len(b) > size {
		panic(fmt.Sprintf("bigint: value does not fit in %d bytes (needs %d)", size, len(b)))
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

// FixedBytesSigned encodes a signed value into size bytes: the top bit of
// the field is a sign flag (1 = negative) and the remaining size*8-1 bits
// hold the magnitude, big-endian. This is the wire convention this module
// uses for the one signed quantity that crosses a protocol boundary (the
// non-membership witness's Bezout coefficient `a`, see §4.7/§6); every
// other wire field is a non-negative group element or residue and uses
// FixedBytes instead.
func (i *Int) FixedBytesSigned(size int) []byte {
	mag := i.v.Bytes()
	if len(mag) > size || (len(mag) == size && mag[0]&0x80 != 0) {
		panic(fmt.Sprintf("bigint: signed value does not fit in %d bytes", size))
	}
	out := make([]byte, size)
	copy(out[size-len(mag):], mag)
	if i.v.Sign() < 0 {
		out[0] |= 0x80
	}
	return out
}

// FromFixedBytesSigned decodes a value encoded by FixedBytesSigned.
func FromFixedBytesSigned(b []byte) *Int {
	negative := len(b) > 0 && b[0]&0x80 != 0
	mag := make([]byte, len(b))
	copy(mag, b)
	mag[0] &^= 0x80
	v := new(big.Int).SetBytes(mag)
	if negative {
		v.Neg(v)
	}
	return &Int{v: v}
}

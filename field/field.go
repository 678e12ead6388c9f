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

// Package field provides a stateless view of arithmetic in Z/nZ for a
// fixed modulus n, the modular-field collaborator named in C2.
package field

import "github.com/amis-tech/accumulator/bigint"

// Field is arithmetic modulo a fixed n. It carries no other state and is
// safe for concurrent use by many goroutines, since every operation
// allocates a fresh result.
type Field struct {
	n *bigint.Int
}

// New returns the field Z/nZ. n must be positive; its caller (the proof
// package) only ever constructs a Field from an accumulator's modulus, so
// New does not itself validate n.
func New(n *bigint.Int) *Field {
	return &Field{n: n}
}

// Modulus returns the field's modulus.
func (f *Field) Modulus() *bigint.Int {
	return f.n
}

// Mul returns a*b mod n.
func (f *Field) Mul(a, b *bigint.Int) *bigint.Int {
	return bigint.MulMod(a, b, f.n)
}

// Exp returns a^k mod n. k may be negative, in which case it is
// interpreted as exponentiating the modular inverse of a (a must then be
// invertible mod n).
func (f *Field) Exp(a, k *bigint.Int) *bigint.Int {
	return bigint.ModExp(a, k, f.n)
}

// Inv returns a^-1 mod n. It panics if a is not invertible: upstream
// invariants (a is a unit built from coprime prime exponents) preclude
// that case, so a failure here is a programmer error, not a runtime
// condition, per §4.2.
func (f *Field) Inv(a *bigint.Int) *bigint.Int {
	inv, ok := bigint.ModInverse(a, f.n)
	if !ok {
		panic("field: value has no inverse modulo n")
	}
	return inv
}

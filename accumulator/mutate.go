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

package accumulator

import (
	"github.com/amis-tech/accumulator/bigint"
	"github.com/amis-tech/accumulator/hashprime"
	"github.com/amis-tech/accumulator/key"
	"github.com/amis-tech/accumulator/parallel"
)

// Insert mixes e into the accumulator in place, without using a secret
// key: V := V^x mod n where x = hash_to_prime(e). Re-inserting an
// already-present element is a no-op (§4.5 idempotence, invariant #3).
func (a *Accumulator) Insert(e []byte) {
	x := hashprime.ToPrime(e)
	a.insertPrime(x, nil)
}

// InsertWithKey is Insert's efficient form: the exponent is reduced
// modulo φ(n) before exponentiating.
func (a *Accumulator) InsertWithKey(sk *key.SecretKey, e []byte) {
	x := hashprime.ToPrime(e)
	a.insertPrime(x, sk)
}

// Inserted is Insert's functional form: it returns a new accumulator,
// leaving the receiver untouched.
func (a *Accumulator) Inserted(e []byte) *Accumulator {
	out := a.Clone()
	out.Insert(e)
	return out
}

// InsertedWithKey is InsertWithKey's functional form.
func (a *Accumulator) InsertedWithKey(sk *key.SecretKey, e []byte) *Accumulator {
	out := a.Clone()
	out.InsertWithKey(sk, e)
	return out
}

func (a *Accumulator) insertPrime(x *bigint.Int, sk *key.SecretKey) {
	members, added := insertMember(a.m, x)
	if !added {
		return
	}
	exp := x
	if sk != nil {
		_, exp = bigint.DivRem(x, sk.Totient())
	}
	a.v = bigint.ModExp(a.v, exp, a.n)
	a.m = members
}

// Remove requires the secret key: x := hash_to_prime(e); if x is not a
// member, InvalidMemberSupplied is returned and the accumulator is
// untouched; otherwise V := V^(x^-1 mod φ) mod n.
func (a *Accumulator) Remove(sk *key.SecretKey, e []byte) error {
	x := hashprime.ToPrime(e)
	return a.removePrime(sk, x)
}

// Removed is Remove's functional form.
func (a *Accumulator) Removed(sk *key.SecretKey, e []byte) (*Accumulator, error) {
	out := a.Clone()
	if err := out.Remove(sk, e); err != nil {
		return nil, err
	}
	return out, nil
}

// RemovePrime removes a member that is already a prime (added via
// WithPrimeMembers rather than hashed from a byte string), skipping the
// hash-to-prime step.
func (a *Accumulator) RemovePrime(sk *key.SecretKey, x *bigint.Int) error {
	return a.removePrime(sk, x)
}

func (a *Accumulator) removePrime(sk *key.SecretKey, x *bigint.Int) error {
	if !containsMember(a.m, x) {
		return newError(InvalidMemberSupplied, "element is not a member of the accumulator")
	}
	phi := sk.Totient()
	xInv, ok := bigint.ModInverse(x, phi)
	if !ok {
		return newError(InvalidType, "member exponent is not invertible modulo φ(n)")
	}
	members, _ := removeMember(a.m, x)
	a.v = bigint.ModExp(a.v, xInv, a.n)
	a.m = members
	return nil
}

// AddBatch mixes every element of es into the accumulator in a single
// operation, without a secret key: duplicates (within the batch, or
// already present) are silently skipped, and the combined exponent is
// the product of the newly added primes.
func (a *Accumulator) AddBatch(es [][]byte) {
	a.addBatch(es, nil)
}

// AddBatchWithKey is AddBatch's efficient form, reducing the combined
// exponent modulo φ(n) before exponentiating.
func (a *Accumulator) AddBatchWithKey(sk *key.SecretKey, es [][]byte) {
	a.addBatch(es, sk)
}

// AddedBatch is AddBatch's functional form.
func (a *Accumulator) AddedBatch(es [][]byte) *Accumulator {
	out := a.Clone()
	out.AddBatch(es)
	return out
}

// AddedBatchWithKey is AddBatchWithKey's functional form.
func (a *Accumulator) AddedBatchWithKey(sk *key.SecretKey, es [][]byte) *Accumulator {
	out := a.Clone()
	out.AddBatchWithKey(sk, es)
	return out
}

func (a *Accumulator) addBatch(es [][]byte, sk *key.SecretKey) {
	primes := make([]*bigint.Int, len(es))
	for i, e := range es {
		primes[i] = hashprime.ToPrime(e)
	}
	sortMembers(primes)
	primes = dedupeSorted(primes)

	fresh := make([]*bigint.Int, 0, len(primes))
	members := a.m
	for _, x := range primes {
		var added bool
		members, added = insertMember(members, x)
		if added {
			fresh = append(fresh, x)
		}
	}
	if len(fresh) == 0 {
		a.m = members
		return
	}

	var exponent *bigint.Int
	if sk != nil {
		exponent = parallel.ProductMod(fresh, sk.Totient())
	} else {
		exponent = parallel.Product(fresh)
	}
	a.v = bigint.ModExp(a.v, exponent, a.n)
	a.m = members
}

// RemoveBatch requires the secret key and removes every element of es
// atomically: if any element is absent, the whole operation fails and
// the accumulator is left completely unchanged (§4.5).
func (a *Accumulator) RemoveBatch(sk *key.SecretKey, es [][]byte) error {
	primes := make([]*bigint.Int, len(es))
	for i, e := range es {
		primes[i] = hashprime.ToPrime(e)
	}
	sortMembers(primes)
	primes = dedupeSorted(primes)

	for _, x := range primes {
		if !containsMember(a.m, x) {
			return newError(InvalidMemberSupplied, "batch contains an element that is not a member")
		}
	}

	phi := sk.Totient()
	combined := parallel.ProductMod(primes, phi)
	combinedInv, ok := bigint.ModInverse(combined, phi)
	if !ok {
		return newError(InvalidType, "batch exponent is not invertible modulo φ(n)")
	}

	members := a.m
	for _, x := range primes {
		members, _ = removeMember(members, x)
	}
	a.v = bigint.ModExp(a.v, combinedInv, a.n)
	a.m = members
	return nil
}

// RemovedBatch is RemoveBatch's functional form.
func (a *Accumulator) RemovedBatch(sk *key.SecretKey, es [][]byte) (*Accumulator, error) {
	out := a.Clone()
	if err := out.RemoveBatch(sk, es); err != nil {
		return nil, err
	}
	return out, nil
}

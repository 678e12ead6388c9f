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

package bigint

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// ErrExceedMaxRetry is returned when a rejection-sampling loop fails to
// land a suitable candidate within its retry budget.
var ErrExceedMaxRetry = errors.New("bigint: exceeded max retries")

const maxRetrySample = 100

// RandomInt returns a uniform value in [0, n).
func RandomInt(n *Int) (*Int, error) {
	v, err := rand.Int(rand.Reader, n.v)
	if err != nil {
		return nil, err
	}
	return &Int{v: v}, nil
}

// RandomPositiveInt returns a uniform value in [1, n).
func RandomPositiveInt(n *Int) (*Int, error) {
	x, err := RandomInt(Sub(n, big1Int()))
	if err != nil {
		return nil, err
	}
	return Add(x, big1Int()), nil
}

// RandomCoprimeInt samples a uniform value in [2, n) that is coprime to n.
func RandomCoprimeInt(n *Int) (*Int, error) {
	for i := 0; i < maxRetrySample; i++ {
		r, err := RandomInt(n)
		if err != nil {
			return nil, err
		}
		if r.v.Cmp(big1) <= 0 {
			continue
		}
		g, _, _ := ExtendedGCD(r, n)
		if g.v.Cmp(big1) == 0 {
			return r, nil
		}
	}
	return nil, ErrExceedMaxRetry
}

// InRange reports whether floor <= x < ceil.
func InRange(x, floor, ceil *Int) bool {
	return x.v.Cmp(floor.v) >= 0 && x.v.Cmp(ceil.v) < 0
}

// GenRandomBytes returns size cryptographically random bytes.
func GenRandomBytes(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

func big1Int() *Int { return &Int{v: big.NewInt(1)} }

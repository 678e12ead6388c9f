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

// Package parallel folds large products of big integers across a worker
// pool. It is the Go stand-in for the reference implementation's
// rayon-based par_iter().reduce(): big-integer multiplication is
// associative and commutative, so any chunking of the input produces the
// same result (§5, §9 "Determinism vs parallelism").
package parallel

import (
	"runtime"
	"sync"

	"github.com/amis-tech/accumulator/bigint"
)

// Product returns the product of xs. An empty slice yields 1, the
// multiplicative identity.
func Product(xs []*bigint.Int) *bigint.Int {
	return fold(xs, nil)
}

// ProductMod returns the product of xs, reduced modulo m at every
// intermediate step to keep the partial products small.
func ProductMod(xs []*bigint.Int, m *bigint.Int) *bigint.Int {
	return fold(xs, m)
}

func fold(xs []*bigint.Int, m *bigint.Int) *bigint.Int {
	if len(xs) == 0 {
		return bigint.New(1)
	}
	if len(xs) == 1 {
		if m != nil {
			_, r := bigint.DivRem(xs[0], m)
			return r
		}
		return xs[0].Clone()
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(xs) {
		workers = len(xs)
	}
	if workers < 1 {
		workers = 1
	}
	chunkSize := (len(xs) + workers - 1) / workers

	partials := make([]*bigint.Int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= len(xs) {
			partials[w] = bigint.New(1)
			continue
		}
		end := start + chunkSize
		if end > len(xs) {
			end = len(xs)
		}
		wg.Add(1)
		go func(idx, start, end int) {
			defer wg.Done()
			partials[idx] = chunkProduct(xs[start:end], m)
		}(w, start, end)
	}
	wg.Wait()

	return chunkProduct(partials, m)
}

func chunkProduct(xs []*bigint.Int, m *bigint.Int) *bigint.Int {
	acc := xs[0].Clone()
	for _, x := range xs[1:] {
		if m != nil {
			acc = bigint.MulMod(acc, x, m)
		} else {
			acc = bigint.Mul(acc, x)
		}
	}
	return acc
}

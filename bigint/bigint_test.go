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
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestBigint(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Bigint Suite")
}

var _ = Describe("fixed-width codec", func() {
	It("round-trips an unsigned value", func() {
		x := New(12345)
		b := x.FixedBytes(32)
		Expect(len(b)).Should(Equal(32))
		Expect(FromBytes(b).Equal(x)).Should(BeTrue())
	})

	It("panics when the value does not fit", func() {
		x := New(1)
		x.v.Lsh(x.v, 300)
		Expect(func() { x.FixedBytes(32) }).Should(Panic())
	})

	DescribeTable("round-trips signed values through the sign-bit encoding", func(val int64) {
		x := New(val)
		b := x.FixedBytesSigned(64)
		Expect(len(b)).Should(Equal(64))
		got := FromFixedBytesSigned(b)
		Expect(got.Equal(x)).Should(BeTrue())
	},
		Entry("positive", int64(42)),
		Entry("negative", int64(-42)),
		Entry("zero", int64(0)),
	)
})

var _ = Describe("modular arithmetic", func() {
	It("supports negative exponents as modular-inverse exponentiation", func() {
		base := New(7)
		n := New(143) // 11*13
		inv, ok := ModInverse(base, n)
		Expect(ok).Should(BeTrue())
		Expect(ModExp(base, New(-1), n).Equal(inv)).Should(BeTrue())
	})

	It("computes Bezout coefficients satisfying g = a*x + b*y", func() {
		a, b := New(240), New(46)
		g, x, y := ExtendedGCD(a, b)
		lhs := Add(Mul(a, x), Mul(b, y))
		Expect(lhs.Equal(g)).Should(BeTrue())
		Expect(g.Cmp(New(2))).Should(Equal(0))
	})
})

var _ = Describe("SafePrime", func() {
	DescribeTable("generates a safe prime of the requested size", func(size int) {
		sp, err := GenerateSafePrime(rand.Reader, size)
		Expect(err).Should(BeNil())
		Expect(sp.P.IsProbablePrime(20)).Should(BeTrue())
		Expect(sp.Q.IsProbablePrime(20)).Should(BeTrue())
		Expect(sp.P.BitLen()).Should(Equal(size))
	},
		Entry("size = 37", 37),
		Entry("size = 128", 128),
	)

	It("rejects a request that is too small", func() {
		sp, err := GenerateSafePrime(rand.Reader, 2)
		Expect(sp).Should(BeNil())
		Expect(err).Should(Equal(ErrSmallSafePrime))
	})
})

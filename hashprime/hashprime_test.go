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

package hashprime

import (
	"encoding/binary"
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestHashPrime(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Hashprime Suite")
}

func be(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

var lowerBound = new(big.Int).Lsh(big.NewInt(1), 255)
var upperBound = new(big.Int).Lsh(big.NewInt(1), 256)

var _ = Describe("ToPrime", func() {
	DescribeTable("produces an odd, ~256-bit probable prime", func(n uint64) {
		x := ToPrime(be(n))
		Expect(x.IsOdd()).Should(BeTrue())
		Expect(x.IsProbablePrime(20)).Should(BeTrue())
		bi := x.BigInt()
		Expect(bi.Cmp(lowerBound)).Should(BeNumerically(">=", 0))
		Expect(bi.Cmp(upperBound)).Should(BeNumerically("<", 0))
	},
		Entry("3", uint64(3)),
		Entry("7", uint64(7)),
		Entry("11", uint64(11)),
		Entry("13", uint64(13)),
		Entry("17", uint64(17)),
	)

	It("is deterministic", func() {
		Expect(ToPrime([]byte("proof_test")).Equal(ToPrime([]byte("proof_test")))).Should(BeTrue())
	})

	It("distinguishes different inputs", func() {
		Expect(ToPrime(be(3)).Equal(ToPrime(be(7)))).Should(BeFalse())
	})
})

var _ = Describe("Challenge", func() {
	It("is equivalent to ToPrime on the concatenation", func() {
		a, b, c := []byte("a"), []byte("bb"), []byte("ccc")
		joined := append(append(append([]byte{}, a...), b...), c...)
		Expect(Challenge(a, b, c).Equal(ToPrime(joined))).Should(BeTrue())
	})
})

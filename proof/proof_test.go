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

package proof

import (
	"encoding/binary"
	"testing"

	"github.com/amis-tech/accumulator/accumulator"
	"github.com/amis-tech/accumulator/bigint"
	"github.com/amis-tech/accumulator/key"
	"github.com/amis-tech/accumulator/witness"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestProof(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Proof Suite")
}

func be(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

var _ = Describe("Membership proof", func() {
	var (
		sk  *key.SecretKey
		acc *accumulator.Accumulator
	)

	BeforeEach(func() {
		var err error
		sk, err = key.Generate(key.MinPrimeBits)
		Expect(err).Should(BeNil())
		acc, err = accumulator.WithMembers(sk, [][]byte{be(3), be(7), be(11), be(13)})
		Expect(err).Should(BeNil())
	})

	It("verifies a freshly built proof (S1, invariant #9)", func() {
		w, err := witness.NewMembershipWithKey(sk, acc, be(3))
		Expect(err).Should(BeNil())
		p := NewMembership(w, acc, []byte("proof_test"))
		Expect(p.Verify(acc, []byte("proof_test"))).Should(BeTrue())
	})

	It("stops verifying after the accumulator changes (S2, invariant #10)", func() {
		w, err := witness.NewMembershipWithKey(sk, acc, be(3))
		Expect(err).Should(BeNil())
		p := NewMembership(w, acc, []byte("proof_test"))

		Expect(acc.Remove(sk, be(3))).Should(BeNil())
		Expect(p.Verify(acc, []byte("proof_test"))).Should(BeFalse())
	})

	It("rejects a different nonce than the one used to prove (invariant #11)", func() {
		w, err := witness.NewMembershipWithKey(sk, acc, be(3))
		Expect(err).Should(BeNil())
		p := NewMembership(w, acc, []byte("proof_test"))
		Expect(p.Verify(acc, []byte("different_nonce"))).Should(BeFalse())
	})

	It("round-trips through ToBytes/FromBytes", func() {
		w, err := witness.NewMembershipWithKey(sk, acc, be(3))
		Expect(err).Should(BeNil())
		p := NewMembership(w, acc, []byte("proof_test"))
		p2, err := MembershipFromBytes(p.ToBytes())
		Expect(err).Should(BeNil())
		Expect(p2.Verify(acc, []byte("proof_test"))).Should(BeTrue())
	})

	It("holds for a larger accumulator of random prime members (S5)", func() {
		primes := make([]*bigint.Int, 1000)
		for i := range primes {
			p, err := bigint.GeneratePrime(256)
			Expect(err).Should(BeNil())
			primes[i] = p
		}
		big, err := accumulator.WithPrimeMembers(sk, primes)
		Expect(err).Should(BeNil())

		w, err := witness.NewMembershipForPrimeWithKey(sk, big, primes[0])
		Expect(err).Should(BeNil())
		p := NewMembership(w, big, []byte("s5"))
		Expect(p.Verify(big, []byte("s5"))).Should(BeTrue())

		Expect(big.RemovePrime(sk, primes[0])).Should(BeNil())
		Expect(p.Verify(big, []byte("s5"))).Should(BeFalse())
	})
})

var _ = Describe("Non-membership proof", func() {
	var (
		sk  *key.SecretKey
		acc *accumulator.Accumulator
	)

	BeforeEach(func() {
		var err error
		sk, err = key.Generate(key.MinPrimeBits)
		Expect(err).Should(BeNil())
		acc, err = accumulator.WithMembers(sk, [][]byte{be(3), be(7), be(11), be(13)})
		Expect(err).Should(BeNil())
	})

	It("verifies a freshly built proof (S4)", func() {
		w, err := witness.New(acc, be(17))
		Expect(err).Should(BeNil())
		p := NewNonMembership(w, acc, []byte("proof_test"))
		Expect(p.Verify(acc, []byte("proof_test"))).Should(BeTrue())
	})

	It("stops verifying once the element is inserted (S4)", func() {
		w, err := witness.New(acc, be(17))
		Expect(err).Should(BeNil())
		p := NewNonMembership(w, acc, []byte("proof_test"))

		acc.InsertWithKey(sk, be(17))
		Expect(p.Verify(acc, []byte("proof_test"))).Should(BeFalse())
	})

	It("round-trips through ToBytes/FromBytes", func() {
		w, err := witness.New(acc, be(17))
		Expect(err).Should(BeNil())
		p := NewNonMembership(w, acc, []byte("proof_test"))
		p2, err := NonMembershipFromBytes(p.ToBytes())
		Expect(err).Should(BeNil())
		Expect(p2.Verify(acc, []byte("proof_test"))).Should(BeTrue())
	})
})

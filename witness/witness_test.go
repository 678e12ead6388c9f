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

package witness

import (
	"encoding/binary"
	"testing"

	"github.com/amis-tech/accumulator/accumulator"
	"github.com/amis-tech/accumulator/key"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestWitness(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Witness Suite")
}

func be(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

var _ = Describe("Membership witness", func() {
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

	It("satisfies u^x == V (invariant #7)", func() {
		w, err := NewMembershipWithKey(sk, acc, be(3))
		Expect(err).Should(BeNil())
		Expect(w.Verify(acc.Modulus(), acc.Value())).Should(BeTrue())
	})

	It("agrees between the public and secret-key construction paths", func() {
		w1, err := NewMembership(acc, be(7))
		Expect(err).Should(BeNil())
		w2, err := NewMembershipWithKey(sk, acc, be(7))
		Expect(err).Should(BeNil())
		Expect(w1.U.Equal(w2.U)).Should(BeTrue())
	})

	It("fails for an absent element", func() {
		_, err := NewMembership(acc, be(999))
		Expect(err).Should(Equal(ErrNotMember))
	})

	It("round-trips through ToBytes/FromBytes", func() {
		w, err := NewMembershipWithKey(sk, acc, be(3))
		Expect(err).Should(BeNil())
		b, err := MembershipFromBytes(w.ToBytes())
		Expect(err).Should(BeNil())
		Expect(b.U.Equal(w.U)).Should(BeTrue())
		Expect(b.X.Equal(w.X)).Should(BeTrue())
	})
})

var _ = Describe("Non-membership witness", func() {
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

	It("satisfies V^a * b^x == g (invariant #8)", func() {
		w, err := New(acc, be(17))
		Expect(err).Should(BeNil())
		Expect(w.Verify(acc.Modulus(), acc.Generator(), acc.Value())).Should(BeTrue())
	})

	It("serializes to exactly 4*FactorSize + MemberSize bytes (S3)", func() {
		w, err := New(acc, be(17))
		Expect(err).Should(BeNil())
		Expect(len(w.ToBytes())).Should(Equal(4*accumulator.FactorSize + accumulator.MemberSize))
	})

	It("round-trips a negative Bezout coefficient through the wire format", func() {
		w, err := New(acc, be(17))
		Expect(err).Should(BeNil())
		b, err := FromBytes(w.ToBytes())
		Expect(err).Should(BeNil())
		Expect(b.A.Equal(w.A)).Should(BeTrue())
		Expect(b.Bhat.Equal(w.Bhat)).Should(BeTrue())
		Expect(b.X.Equal(w.X)).Should(BeTrue())
	})

	It("fails for a present element", func() {
		_, err := New(acc, be(3))
		Expect(err).Should(Equal(ErrIsMember))
	})
})

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
	"encoding/binary"
	"testing"

	"github.com/amis-tech/accumulator/key"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestAccumulator(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Accumulator Suite")
}

func be(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

var _ = Describe("Accumulator", func() {
	var sk *key.SecretKey

	BeforeEach(func() {
		var err error
		sk, err = key.Generate(key.MinPrimeBits)
		Expect(err).Should(BeNil())
	})

	It("starts empty with V == g", func() {
		a, err := New(sk)
		Expect(err).Should(BeNil())
		Expect(a.Value().Equal(a.Generator())).Should(BeTrue())
		Expect(a.Members()).Should(BeEmpty())
	})

	It("is idempotent under repeated insertion (invariant #3)", func() {
		a, err := New(sk)
		Expect(err).Should(BeNil())
		a.InsertWithKey(sk, be(3))
		once := a.Value()
		a.InsertWithKey(sk, be(3))
		Expect(a.Value().Equal(once)).Should(BeTrue())
		Expect(len(a.Members())).Should(Equal(1))
	})

	It("round-trips insert then remove (invariant #4)", func() {
		a, err := New(sk)
		Expect(err).Should(BeNil())
		before := a.Clone()
		a.InsertWithKey(sk, be(3))
		Expect(a.Remove(sk, be(3))).Should(BeNil())
		Expect(a.Equal(before)).Should(BeTrue())
	})

	It("is order-independent when built WithMembers (invariant #5)", func() {
		a1, err := WithMembers(sk, [][]byte{be(3), be(7), be(11), be(13)})
		Expect(err).Should(BeNil())
		a2, err := WithMembers(sk, [][]byte{be(13), be(3), be(11), be(7)})
		Expect(err).Should(BeNil())
		Expect(a1.Value().Equal(a2.Value())).Should(BeTrue())
	})

	It("round-trips through ToBytes/FromBytes (invariant #6)", func() {
		a, err := WithMembers(sk, [][]byte{be(3), be(7)})
		Expect(err).Should(BeNil())
		b, err := FromBytes(a.ToBytes())
		Expect(err).Should(BeNil())
		Expect(b.Equal(a)).Should(BeTrue())
	})

	It("rejects malformed serialized bytes", func() {
		_, err := FromBytes([]byte{1, 2, 3})
		Expect(err).ShouldNot(BeNil())
		accErr, ok := err.(*Error)
		Expect(ok).Should(BeTrue())
		Expect(accErr.Kind).Should(Equal(SerializationError))
	})

	It("fails to remove an absent member", func() {
		a, err := New(sk)
		Expect(err).Should(BeNil())
		err = a.Remove(sk, be(42))
		Expect(err).ShouldNot(BeNil())
		accErr, ok := err.(*Error)
		Expect(ok).Should(BeTrue())
		Expect(accErr.Kind).Should(Equal(InvalidMemberSupplied))
	})

	It("fails a batch removal atomically when one element is absent", func() {
		a, err := WithMembers(sk, [][]byte{be(3), be(7)})
		Expect(err).Should(BeNil())
		before := a.Clone()
		err = a.RemoveBatch(sk, [][]byte{be(3), be(999)})
		Expect(err).ShouldNot(BeNil())
		Expect(a.Equal(before)).Should(BeTrue())
	})

	It("agrees between the public and secret-key insertion paths", func() {
		a1, err := New(sk)
		Expect(err).Should(BeNil())
		a2 := a1.Clone()

		a1.Insert(be(5))
		a2.InsertWithKey(sk, be(5))

		Expect(a1.Value().Equal(a2.Value())).Should(BeTrue())
	})

	It("combines batch insertion identically to sequential inserts", func() {
		a1, err := New(sk)
		Expect(err).Should(BeNil())
		a2 := a1.Clone()

		a1.AddBatchWithKey(sk, [][]byte{be(3), be(7), be(11)})
		a2.InsertWithKey(sk, be(3))
		a2.InsertWithKey(sk, be(7))
		a2.InsertWithKey(sk, be(11))

		Expect(a1.Value().Equal(a2.Value())).Should(BeTrue())
		Expect(len(a1.Members())).Should(Equal(len(a2.Members())))
	})
})

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

package parallel

import (
	"testing"

	"github.com/amis-tech/accumulator/bigint"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestParallel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Parallel Suite")
}

var _ = Describe("Product", func() {
	It("returns 1 for an empty slice", func() {
		Expect(Product(nil).Equal(bigint.New(1))).Should(BeTrue())
	})

	It("multiplies a large number of values regardless of chunking", func() {
		xs := make([]*bigint.Int, 0, 5000)
		expected := bigint.New(1)
		for i := int64(2); i < 5002; i++ {
			xs = append(xs, bigint.New(i))
			expected = bigint.Mul(expected, bigint.New(i))
		}
		Expect(Product(xs).Equal(expected)).Should(BeTrue())
	})
})

var _ = Describe("ProductMod", func() {
	It("matches Product reduced mod m afterward", func() {
		m := bigint.New(1_000_003)
		xs := []*bigint.Int{bigint.New(123), bigint.New(456), bigint.New(789), bigint.New(1011)}
		full := Product(xs)
		_, r := bigint.DivRem(full, m)
		Expect(ProductMod(xs, m).Equal(r)).Should(BeTrue())
	})
})

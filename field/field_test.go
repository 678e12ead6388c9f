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

package field

import (
	"testing"

	"github.com/amis-tech/accumulator/bigint"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestField(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Field Suite")
}

var _ = Describe("Field", func() {
	f := New(bigint.New(143)) // 11*13

	It("multiplies modulo n", func() {
		Expect(f.Mul(bigint.New(10), bigint.New(20)).Equal(bigint.New(200 % 143))).Should(BeTrue())
	})

	It("exponentiates modulo n", func() {
		Expect(f.Exp(bigint.New(2), bigint.New(10)).Equal(bigint.New(1024 % 143))).Should(BeTrue())
	})

	It("inverts a unit", func() {
		a := bigint.New(7)
		inv := f.Inv(a)
		Expect(f.Mul(a, inv).Equal(bigint.New(1))).Should(BeTrue())
	})

	It("panics inverting a non-unit", func() {
		Expect(func() { f.Inv(bigint.New(11)) }).Should(Panic())
	})

	It("supports negative exponents as inverse exponentiation", func() {
		a := bigint.New(7)
		inv := f.Inv(a)
		Expect(f.Exp(a, bigint.New(-1)).Equal(inv)).Should(BeTrue())
	})
})

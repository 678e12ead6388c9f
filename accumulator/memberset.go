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
	"sort"

	"github.com/amis-tech/accumulator/bigint"
)

// sortMembers orders M by magnitude, the ordering §3/§6 requires for
// deterministic serialization.
func sortMembers(xs []*bigint.Int) {
	sort.Slice(xs, func(i, j int) bool { return xs[i].Cmp(xs[j]) < 0 })
}

// containsMember reports whether x is present in the (already sorted) set.
func containsMember(xs []*bigint.Int, x *bigint.Int) bool {
	i := sort.Search(len(xs), func(i int) bool { return xs[i].Cmp(x) >= 0 })
	return i < len(xs) && xs[i].Equal(x)
}

// insertMember returns a new sorted, deduplicated set with x inserted; the
// second value reports whether x was newly added (false means it was
// already present, the no-op path of §4.5).
func insertMember(xs []*bigint.Int, x *bigint.Int) ([]*bigint.Int, bool) {
	if containsMember(xs, x) {
		return xs, false
	}
	out := make([]*bigint.Int, len(xs)+1)
	copy(out, xs)
	out[len(xs)] = x
	sortMembers(out)
	return out, true
}

// removeMember returns a new set with x removed, and whether x was present.
func removeMember(xs []*bigint.Int, x *bigint.Int) ([]*bigint.Int, bool) {
	if !containsMember(xs, x) {
		return xs, false
	}
	out := make([]*bigint.Int, 0, len(xs)-1)
	for _, y := range xs {
		if !y.Equal(x) {
			out = append(out, y)
		}
	}
	return out, true
}

// dedupeSorted removes duplicates from a set that is already sorted by Cmp.
func dedupeSorted(xs []*bigint.Int) []*bigint.Int {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if !out[len(out)-1].Equal(x) {
			out = append(out, x)
		}
	}
	return out
}

func cloneMembers(xs []*bigint.Int) []*bigint.Int {
	out := make([]*bigint.Int, len(xs))
	for i, x := range xs {
		out[i] = x.Clone()
	}
	return out
}

// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package isea

// ipow does integer exponentiation by squaring. Used for aperture^resolution,
// which stays small enough for plain int64 arithmetic at the resolutions
// this package supports.
func ipow(base, exp int) int {
	result := 1
	for exp > 0 {
		if exp&1 > 0 {
			result *= base
		}
		exp >>= 1
		base *= base
	}
	return result
}

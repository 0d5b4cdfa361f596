// Copyright 2025 go-fastfloat Authors
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

// Package reduce provides sums and dot products over Fast values that use
// the reassociation Fast opts into.
//
// Sum and Dot split the chain of additions across independent accumulators
// so consecutive additions do not wait on each other, then combine the
// accumulators pairwise. The result can differ from a left-to-right fold
// (RegularSum) in the last bits; for integer-valued inputs whose partial
// sums are exact the results are equal.
package reduce

//go:generate go run ../../../cmd/fastgen --pkg reduce --lanes 4 --output z_unrolled.gen.go

import "github.com/ajroetker/go-fastfloat/fast"

// Sum returns the sum of xs, reassociated across unrollLanes accumulators.
//
// Returns 0 if xs is empty.
//
// Example:
//
//	xs := fast.Wrap([]float64{1, 2, 3, 4})
//	total := reduce.Sum(xs) // 10
func Sum[F fast.Floats](xs []fast.Fast[F]) fast.Fast[F] {
	sum, i := sumUnrolled(xs)
	for ; i < len(xs); i++ {
		sum = sum.Add(xs[i])
	}
	return sum
}

// Dot returns the dot product Σ(a[i] * b[i]), reassociated across
// unrollLanes accumulators with each step contracted through MulAdd.
//
// If the slices have different lengths, the computation uses the minimum
// length. Returns 0 if either slice is empty.
func Dot[F fast.Floats](a, b []fast.Fast[F]) fast.Fast[F] {
	n := min(len(a), len(b))
	sum, i := dotUnrolled(a[:n], b[:n])
	for ; i < n; i++ {
		sum = a[i].MulAdd(b[i], sum)
	}
	return sum
}

// SumRaw is Sum over raw floats. The slice is viewed in place, not copied.
func SumRaw[F fast.Floats](xs []F) F {
	return Sum(fast.Wrap(xs)).Raw()
}

// DotRaw is Dot over raw floats. The slices are viewed in place, not copied.
func DotRaw[F fast.Floats](a, b []F) F {
	return Dot(fast.Wrap(a), fast.Wrap(b)).Raw()
}

// RegularSum returns the strict left-to-right sum of xs.
func RegularSum[F fast.Floats](xs []F) F {
	var sum F
	for _, x := range xs {
		sum += x
	}
	return sum
}

// RegularDot returns the strict left-to-right dot product of a and b,
// rounding each product before it is added.
func RegularDot[F fast.Floats](a, b []F) F {
	n := min(len(a), len(b))
	var sum F
	for i := range n {
		sum += F(a[i] * b[i])
	}
	return sum
}

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

package reduce

import (
	"github.com/ajroetker/go-fastfloat/fast"
	"github.com/ajroetker/go-fastfloat/fast/contrib/workerpool"
)

// MinParallelLen is the input length below which the parallel reductions
// run on the caller. Smaller inputs do not amortize the hand-off to the
// pool.
const MinParallelLen = 1 << 14

// ParallelSum returns the sum of xs, split into one chunk per pool worker.
// Each chunk is reduced with Sum and the partial sums are combined with Sum.
// A nil pool or an input shorter than MinParallelLen runs Sum directly.
func ParallelSum[F fast.Floats](pool *workerpool.Pool, xs []fast.Fast[F]) fast.Fast[F] {
	if pool == nil || len(xs) < MinParallelLen {
		return Sum(xs)
	}

	chunks := pool.NumWorkers()
	size := (len(xs) + chunks - 1) / chunks
	partials := make([]fast.Fast[F], chunks)
	pool.ParallelForAtomic(chunks, func(c int) {
		start := c * size
		end := min(start+size, len(xs))
		if start < end {
			partials[c] = Sum(xs[start:end])
		}
	})
	return Sum(partials)
}

// ParallelDot returns the dot product of a and b, split into one chunk per
// pool worker. Like Dot it uses the minimum of the two lengths.
// A nil pool or an input shorter than MinParallelLen runs Dot directly.
func ParallelDot[F fast.Floats](pool *workerpool.Pool, a, b []fast.Fast[F]) fast.Fast[F] {
	n := min(len(a), len(b))
	if pool == nil || n < MinParallelLen {
		return Dot(a, b)
	}

	chunks := pool.NumWorkers()
	size := (n + chunks - 1) / chunks
	partials := make([]fast.Fast[F], chunks)
	pool.ParallelFor(chunks, func(first, last int) {
		for c := first; c < last; c++ {
			start := c * size
			end := min(start+size, n)
			if start < end {
				partials[c] = Dot(a[start:end], b[start:end])
			}
		}
	})
	return Sum(partials)
}

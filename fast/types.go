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

// Package fast provides "fast-math" wrappers for float32 and float64.
//
// A Fast value marks a float as eligible for relaxed arithmetic: its
// operations may assume that operands and results are never NaN or
// infinite, that the sign of zero does not matter, and that chained
// operations may be reassociated or contracted into fused instructions.
// The opt-in is per value. Code that uses plain floats is unaffected.
//
// In Go the relaxation is expressed as follows:
//
//   - Add, Sub, Mul, Div and Rem never round their result through an
//     explicit conversion, so a chain of Fast operations stays eligible
//     for FMA fusion by the compiler.
//   - MulAdd contracts x*b + c into a hardware fused multiply-add when the
//     CPU has one (see HasFMA and Contracting).
//   - The reductions in package reduce reassociate sums across independent
//     accumulators.
//
// An isolated operation on two finite operands returns exactly the
// IEEE-754 result of the same operation on the raw floats.
//
// The no-NaN and no-Inf assumptions are the caller's obligation. Nothing
// in this package checks them. Feeding non-finite values to an arithmetic
// method yields whatever the platform produces, which need not be the
// IEEE-754 answer; it never panics.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-fastfloat/fast"
//
//	acc := fast.Zero[float64]()
//	for _, x := range fast.Wrap(data) {
//		acc = acc.Add(x)
//	}
//	total := acc.Raw()
package fast

import "unsafe"

// Floats is a constraint for the floating-point types a Fast value can wrap.
type Floats interface {
	~float32 | ~float64
}

// Fast is a "fast-math" wrapper for a float32 or float64.
//
// Fast enforces no invariant and can hold any value, NaN and infinities
// included. It has the same size and layout as F.
type Fast[F Floats] struct {
	v F
}

// F32 is the fast-math wrapper for float32.
type F32 = Fast[float32]

// F64 is the fast-math wrapper for float64.
type F64 = Fast[float64]

// New wraps v. The value is stored verbatim.
func New[F Floats](v F) Fast[F] {
	return Fast[F]{v: v}
}

// Raw returns the wrapped value verbatim.
func (x Fast[F]) Raw() F {
	return x.v
}

// Zero returns a wrapped positive zero.
func Zero[F Floats]() Fast[F] {
	return Fast[F]{}
}

// One returns a wrapped 1.0.
func One[F Floats]() Fast[F] {
	return Fast[F]{v: 1}
}

// Wrap reinterprets s as a slice of Fast values without copying.
// Both slices share the same backing array.
func Wrap[F Floats](s []F) []Fast[F] {
	return unsafe.Slice((*Fast[F])(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// Unwrap reinterprets s as a slice of raw floats without copying.
// Both slices share the same backing array.
func Unwrap[F Floats](s []Fast[F]) []F {
	return unsafe.Slice((*F)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// is32 reports whether F is a 4-byte float.
func is32[F Floats]() bool {
	var dummy F
	return unsafe.Sizeof(dummy) == 4
}

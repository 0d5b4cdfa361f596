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

package fast

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// Everything in this file reads the raw value as stored. None of it goes
// through the relaxed arithmetic above.

// Float32 converts x to float32.
func (x Fast[F]) Float32() float32 {
	return float32(x.v)
}

// Float64 converts x to float64.
func (x Fast[F]) Float64() float64 {
	return float64(x.v)
}

// Bits returns the IEEE-754 bit pattern of x. For 4-byte floats the
// pattern occupies the low 32 bits.
func (x Fast[F]) Bits() uint64 {
	if is32[F]() {
		return uint64(math.Float32bits(float32(x.v)))
	}
	return math.Float64bits(float64(x.v))
}

// FromBits returns the Fast value with the given IEEE-754 bit pattern.
// For 4-byte floats only the low 32 bits are used.
func FromBits[F Floats](b uint64) Fast[F] {
	if is32[F]() {
		return Fast[F]{v: F(math.Float32frombits(uint32(b)))}
	}
	return Fast[F]{v: F(math.Float64frombits(b))}
}

// IsNaN reports whether x is a NaN.
func (x Fast[F]) IsNaN() bool {
	return math.IsNaN(float64(x.v))
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func (x Fast[F]) IsInf(sign int) bool {
	return math.IsInf(float64(x.v), sign)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func (x Fast[F]) IsFinite() bool {
	return !x.IsNaN() && !x.IsInf(0)
}

// Signbit reports whether x is negative or negative zero.
func (x Fast[F]) Signbit() bool {
	return math.Signbit(float64(x.v))
}

// Equal reports whether x == y under IEEE-754 comparison, so NaN is not
// equal to itself and -0 equals +0.
func (x Fast[F]) Equal(y Fast[F]) bool {
	return x.v == y.v
}

// Less reports whether x < y.
func (x Fast[F]) Less(y Fast[F]) bool {
	return x.v < y.v
}

// Compare returns -1, 0 or +1 the way cmp.Compare does for the raw values.
// A NaN is considered less than any non-NaN.
func (x Fast[F]) Compare(y Fast[F]) int {
	return cmp.Compare(x.v, y.v)
}

// Abs returns the absolute value of x.
func (x Fast[F]) Abs() Fast[F] {
	if is32[F]() {
		return Fast[F]{v: F(math32.Abs(float32(x.v)))}
	}
	return Fast[F]{v: F(math.Abs(float64(x.v)))}
}

// Sqrt returns the square root of x.
func (x Fast[F]) Sqrt() Fast[F] {
	if is32[F]() {
		return Fast[F]{v: F(math32.Sqrt(float32(x.v)))}
	}
	return Fast[F]{v: F(math.Sqrt(float64(x.v)))}
}

// Sin returns the sine of the radian argument x.
func (x Fast[F]) Sin() Fast[F] {
	if is32[F]() {
		return Fast[F]{v: F(math32.Sin(float32(x.v)))}
	}
	return Fast[F]{v: F(math.Sin(float64(x.v)))}
}

// Cos returns the cosine of the radian argument x.
func (x Fast[F]) Cos() Fast[F] {
	if is32[F]() {
		return Fast[F]{v: F(math32.Cos(float32(x.v)))}
	}
	return Fast[F]{v: F(math.Cos(float64(x.v)))}
}

// Exp returns e**x.
func (x Fast[F]) Exp() Fast[F] {
	if is32[F]() {
		return Fast[F]{v: F(math32.Exp(float32(x.v)))}
	}
	return Fast[F]{v: F(math.Exp(float64(x.v)))}
}

// Log returns the natural logarithm of x.
func (x Fast[F]) Log() Fast[F] {
	if is32[F]() {
		return Fast[F]{v: F(math32.Log(float32(x.v)))}
	}
	return Fast[F]{v: F(math.Log(float64(x.v)))}
}

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

import "math"

// Add, Sub, Mul and Div must not wrap their results in an explicit F(...)
// conversion. A conversion rounds and stops the compiler from fusing a Mul
// into a following Add, which is the contraction Fast opts into.

// Add returns x + y.
func (x Fast[F]) Add(y Fast[F]) Fast[F] {
	return Fast[F]{v: x.v + y.v}
}

// Sub returns x - y.
func (x Fast[F]) Sub(y Fast[F]) Fast[F] {
	return Fast[F]{v: x.v - y.v}
}

// Mul returns x * y.
func (x Fast[F]) Mul(y Fast[F]) Fast[F] {
	return Fast[F]{v: x.v * y.v}
}

// Div returns x / y.
//
// Dividing by zero returns whatever the platform produces. Callers must not
// rely on the result being an infinity.
func (x Fast[F]) Div(y Fast[F]) Fast[F] {
	return Fast[F]{v: x.v / y.v}
}

// Rem returns the remainder of x / y, truncated toward zero.
// The result has the sign of x, so -5 rem 3 is -2.
func (x Fast[F]) Rem(y Fast[F]) Fast[F] {
	// fmod is exact, so the float64 result is representable in F.
	return Fast[F]{v: F(math.Mod(float64(x.v), float64(y.v)))}
}

// AddRaw returns x + y for a raw right operand.
func (x Fast[F]) AddRaw(y F) Fast[F] {
	return x.Add(Fast[F]{v: y})
}

// SubRaw returns x - y for a raw right operand.
func (x Fast[F]) SubRaw(y F) Fast[F] {
	return x.Sub(Fast[F]{v: y})
}

// MulRaw returns x * y for a raw right operand.
func (x Fast[F]) MulRaw(y F) Fast[F] {
	return x.Mul(Fast[F]{v: y})
}

// DivRaw returns x / y for a raw right operand.
func (x Fast[F]) DivRaw(y F) Fast[F] {
	return x.Div(Fast[F]{v: y})
}

// RemRaw returns x rem y for a raw right operand.
func (x Fast[F]) RemRaw(y F) Fast[F] {
	return x.Rem(Fast[F]{v: y})
}

// MulAdd returns x*y + z, contracted into a single fused multiply-add when
// Contracting reports true. Otherwise the product is computed and added
// separately, which the compiler may still fuse on some architectures.
//
// For float32 the fused path rounds through float64, so the result may
// differ from a true single-precision FMA in the last bit.
func (x Fast[F]) MulAdd(y, z Fast[F]) Fast[F] {
	if contracting {
		return Fast[F]{v: F(math.FMA(float64(x.v), float64(y.v), float64(z.v)))}
	}
	return Fast[F]{v: x.v*y.v + z.v}
}

// Neg returns -x.
func (x Fast[F]) Neg() Fast[F] {
	return Fast[F]{v: -x.v}
}

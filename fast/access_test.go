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
	"testing"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip tests that New followed by Raw preserves every bit,
// including special values no operation is allowed to assume away.
func TestRoundTrip(t *testing.T) {
	values := []float64{
		0, math.Copysign(0, -1), 1, -1, math.Pi, math.MaxFloat64,
		math.SmallestNonzeroFloat64, math.NaN(), math.Inf(1), math.Inf(-1),
	}

	for _, v := range values {
		assert.Equal(t, math.Float64bits(v), math.Float64bits(New(v).Raw()), "float64 %v", v)
		v32 := float32(v)
		assert.Equal(t, math.Float32bits(v32), math.Float32bits(New(v32).Raw()), "float32 %v", v32)
	}
}

// TestLayout verifies Fast has the size of the raw type.
func TestLayout(t *testing.T) {
	assert.EqualValues(t, 4, unsafe.Sizeof(F32{}))
	assert.EqualValues(t, 8, unsafe.Sizeof(F64{}))
}

// TestWrapUnwrap tests the zero-copy slice views.
func TestWrapUnwrap(t *testing.T) {
	data := []float32{1, 2, 3}
	xs := Wrap(data)
	require.Len(t, xs, len(data))
	for i := range xs {
		assert.Equal(t, data[i], xs[i].Raw(), "xs[%d]", i)
	}

	// The views share storage.
	xs[1] = xs[1].MulRaw(10)
	assert.Equal(t, float32(20), data[1])
	raw := Unwrap(xs)
	raw[2] = 7
	assert.Equal(t, float32(7), xs[2].Raw())

	assert.Nil(t, Wrap[float64](nil))
	assert.Nil(t, Unwrap[float64](nil))
}

// TestClassification tests that predicates observe the raw value exactly.
func TestClassification(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		isNaN    bool
		isPosInf bool
		isNegInf bool
		finite   bool
		signbit  bool
	}{
		{"Zero", 0, false, false, false, true, false},
		{"NegZero", math.Copysign(0, -1), false, false, false, true, true},
		{"One", 1, false, false, false, true, false},
		{"NegOne", -1, false, false, false, true, true},
		{"NaN", math.NaN(), true, false, false, false, false},
		{"PosInf", math.Inf(1), false, true, false, false, false},
		{"NegInf", math.Inf(-1), false, false, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range []interface {
				IsNaN() bool
				IsInf(int) bool
				IsFinite() bool
				Signbit() bool
			}{New(tt.value), New(float32(tt.value))} {
				assert.Equal(t, tt.isNaN, x.IsNaN(), "%T IsNaN", x)
				assert.Equal(t, tt.isPosInf, x.IsInf(1), "%T IsInf(1)", x)
				assert.Equal(t, tt.isNegInf, x.IsInf(-1), "%T IsInf(-1)", x)
				assert.Equal(t, tt.isPosInf || tt.isNegInf, x.IsInf(0), "%T IsInf(0)", x)
				assert.Equal(t, tt.finite, x.IsFinite(), "%T IsFinite", x)
				assert.Equal(t, tt.signbit, x.Signbit(), "%T Signbit", x)
			}
		})
	}
}

// TestBits tests bit inspection for both widths.
func TestBits(t *testing.T) {
	assert.Equal(t, uint64(0x3FF0000000000000), New(1.0).Bits())
	assert.Equal(t, uint64(0x3F800000), New[float32](1).Bits())
	assert.Equal(t, float32(1), FromBits[float32](0x3F800000).Raw())
	assert.Equal(t, -2.5, FromBits[float64](math.Float64bits(-2.5)).Raw())
}

// TestComparison tests that comparisons match the raw type.
func TestComparison(t *testing.T) {
	values := []float64{-2, -0.5, 0, 0.5, 2, math.NaN()}
	for _, a := range values {
		for _, b := range values {
			fa, fb := New(a), New(b)
			assert.Equal(t, a == b, fa.Equal(fb), "Equal(%v, %v)", a, b)
			assert.Equal(t, a == b, fa == fb, "%v == %v", a, b)
			assert.Equal(t, a < b, fa.Less(fb), "Less(%v, %v)", a, b)
			assert.Equal(t, cmp.Compare(a, b), fa.Compare(fb), "Compare(%v, %v)", a, b)
		}
	}

	assert.True(t, New(0.0).Equal(New(math.Copysign(0, -1))), "+0 should equal -0")
}

// TestMathPassthrough tests that math methods match the raw functions.
func TestMathPassthrough(t *testing.T) {
	bits64 := math.Float64bits
	bits32 := math.Float32bits
	inputs := []float64{0.25, 0.5, 1, 2, 3.75, 10}
	for _, v := range inputs {
		x := New(v)
		assert.Equal(t, bits64(math.Abs(-v)), bits64(x.Neg().Abs().Raw()), "Abs(%v)", v)
		assert.Equal(t, bits64(math.Sqrt(v)), bits64(x.Sqrt().Raw()), "Sqrt(%v)", v)
		assert.Equal(t, bits64(math.Sin(v)), bits64(x.Sin().Raw()), "Sin(%v)", v)
		assert.Equal(t, bits64(math.Cos(v)), bits64(x.Cos().Raw()), "Cos(%v)", v)
		assert.Equal(t, bits64(math.Exp(v)), bits64(x.Exp().Raw()), "Exp(%v)", v)
		assert.Equal(t, bits64(math.Log(v)), bits64(x.Log().Raw()), "Log(%v)", v)

		v32 := float32(v)
		y := New(v32)
		assert.Equal(t, bits32(math32.Abs(-v32)), bits32(y.Neg().Abs().Raw()), "Abs(%v)", v32)
		assert.Equal(t, bits32(math32.Sqrt(v32)), bits32(y.Sqrt().Raw()), "Sqrt(%v)", v32)
		assert.Equal(t, bits32(math32.Sin(v32)), bits32(y.Sin().Raw()), "Sin(%v)", v32)
		assert.Equal(t, bits32(math32.Cos(v32)), bits32(y.Cos().Raw()), "Cos(%v)", v32)
		assert.Equal(t, bits32(math32.Exp(v32)), bits32(y.Exp().Raw()), "Exp(%v)", v32)
		assert.Equal(t, bits32(math32.Log(v32)), bits32(y.Log().Raw()), "Log(%v)", v32)
	}

	assert.Equal(t, 2.0, New[float32](2).Float64())
	assert.Equal(t, float32(2.5), New(2.5).Float32())
}

// celsius checks that named float types work as F.
type celsius float64

func TestNamedFloat(t *testing.T) {
	got := New(celsius(20)).Add(New(celsius(1.5))).Raw()
	assert.Equal(t, celsius(21.5), got)
}

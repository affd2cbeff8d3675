// Copyright 2025 go-accel Authors
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

package vdsp

import (
	"fmt"
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ajroetker/go-accel/accel"
)

// identical compares bit patterns so that NaNs produced by an unstable
// filter still compare equal to themselves.
func identical[T accel.Floats](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if stdmath.Float64bits(float64(a[i])) != stdmath.Float64bits(float64(b[i])) {
			return false
		}
	}
	return true
}

// referenceDeq22 evaluates the difference equation directly from the
// buffers, without the kernel's rolling registers.
func referenceDeq22[T accel.Floats](x []T, c Coefficients[T]) []T {
	y := make([]T, len(x))
	for k := 2; k < len(x); k++ {
		y[k] = T(x[k]*c.B0) + T(x[k-1]*c.B1) + T(x[k-2]*c.B2) - T(y[k-1]*c.A1) - T(y[k-2]*c.A2)
	}
	return y
}

func sizeStr(n int) string {
	if n >= 1024 {
		return fmt.Sprintf("%dK", n/1024)
	}
	return fmt.Sprintf("%d", n)
}

var squareWaveCoeffs = []float64{0.0, 0.1, 0.2, 0.4, 0.8}

func testDifferenceEquation[T accel.Floats](t *testing.T) {
	const n = 256
	source := SquareWave[T](n, 0.05)

	b := make([]T, len(squareWaveCoeffs))
	for i, v := range squareWaveCoeffs {
		b[i] = T(v)
	}
	coeffs, err := CoefficientsFromSlice(b)
	require.NoError(t, err)

	result := make([]T, n)
	require.NoError(t, TwoPoleTwoZeroFilter(source, coeffs, result))

	legacy := make([]T, n)
	for i := range legacy {
		legacy[i] = -1
	}
	legacy[0], legacy[1] = 0, 0
	Deq22(source, 1, b, legacy, 1, n-2)

	if !identical(result, legacy) {
		for i := range result {
			if result[i] != legacy[i] {
				t.Fatalf("first mismatch at %d: high-level %v, legacy %v", i, result[i], legacy[i])
			}
		}
	}
	assert.Equal(t, T(0), result[0])
	assert.Equal(t, T(0), result[1])
	assert.True(t, identical(result, referenceDeq22(source, coeffs)), "kernel disagrees with direct evaluation")
}

func TestDifferenceEquationSinglePrecision(t *testing.T) {
	testDifferenceEquation[float32](t)
}

func TestDifferenceEquationDoublePrecision(t *testing.T) {
	testDifferenceEquation[float64](t)
}

func TestSquareWave(t *testing.T) {
	w := SquareWave[float64](130, 0.05)
	require.Len(t, w, 130)
	assert.Equal(t, 1.0, w[0], "sin(0) is +0")
	assert.Equal(t, 1.0, w[62])   // sin(3.10) > 0
	assert.Equal(t, -1.0, w[63])  // sin(3.15) < 0
	assert.Equal(t, -1.0, w[125]) // sin(6.25) < 0
	assert.Equal(t, 1.0, w[126])  // sin(6.30) > 0
	for i, v := range w {
		if v != 1 && v != -1 {
			t.Fatalf("w[%d] = %v, want ±1", i, v)
		}
	}
}

// checkFilterMatchesDeq22 fails t unless the high-level filter and Deq22
// produce bit-identical output for x and the taps b.
func checkFilterMatchesDeq22[T accel.Floats](t *rapid.T, x, b []T) {
	n := len(x)
	coeffs, _ := CoefficientsFromSlice(b)

	result := make([]T, n)
	if err := TwoPoleTwoZeroFilter(x, coeffs, result); err != nil {
		t.Fatal(err)
	}
	legacy := make([]T, n)
	Deq22(x, 1, b, legacy, 1, n-2)

	if result[0] != 0 || result[1] != 0 {
		t.Fatalf("priming outputs = %v, %v, want 0, 0", result[0], result[1])
	}
	if !identical(result, legacy) {
		t.Fatalf("high-level and legacy outputs differ")
	}
}

func TestTwoPoleTwoZeroFilterMatchesDeq22Property(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			n := rapid.IntRange(2, 300).Draw(t, "n")
			x := rapid.SliceOfN(rapid.Float32Range(-100, 100), n, n).Draw(t, "x")
			b := rapid.SliceOfN(rapid.Float32Range(-2, 2), 5, 5).Draw(t, "b")
			checkFilterMatchesDeq22(t, x, b)
		})
	})
	t.Run("float64", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			n := rapid.IntRange(2, 300).Draw(t, "n")
			x := rapid.SliceOfN(rapid.Float64Range(-100, 100), n, n).Draw(t, "x")
			b := rapid.SliceOfN(rapid.Float64Range(-2, 2), 5, 5).Draw(t, "b")
			checkFilterMatchesDeq22(t, x, b)
		})
	})
}

func TestTwoPoleTwoZeroFilterShort(t *testing.T) {
	c := Coefficients[float32]{B0: 1, B1: 1, B2: 1, A1: 0.5, A2: 0.5}
	for _, n := range []int{0, 1, 2} {
		result := make([]float32, n)
		for i := range result {
			result[i] = 7
		}
		require.NoError(t, TwoPoleTwoZeroFilter(make([]float32, n), c, result))
		for i, v := range result {
			assert.Equal(t, float32(0), v, "n=%d result[%d]", n, i)
		}
	}
}

func TestTwoPoleTwoZeroFilterErrors(t *testing.T) {
	c := Coefficients[float64]{B0: 1}
	err := TwoPoleTwoZeroFilter(make([]float64, 4), c, make([]float64, 3))
	assert.ErrorIs(t, err, accel.ErrInvalidArgument)

	t.Setenv(accel.RevisionEnv, "1")
	err = TwoPoleTwoZeroFilter(make([]float64, 4), c, make([]float64, 4))
	assert.ErrorIs(t, err, accel.ErrUnavailable)
}

func TestDeq22Strided(t *testing.T) {
	const n = 40
	x := Ramp[float64](n, -3, 0.37)
	b := []float64{0.3, -0.2, 0.1, 0.25, -0.125}

	unit := make([]float64, n)
	Deq22(x, 1, b, unit, 1, n-2)

	const ia, ic = 3, 2
	xs := make([]float64, (n-1)*ia+1)
	for i, v := range x {
		xs[i*ia] = v
	}
	ys := make([]float64, (n-1)*ic+1)
	for i := range ys {
		ys[i] = 99 // interleaved slots must be left alone
	}
	ys[0], ys[ic] = 0, 0
	Deq22(xs, ia, b, ys, ic, n-2)

	for i := range n {
		if ys[i*ic] != unit[i] {
			t.Errorf("strided output %d = %v, want %v", i, ys[i*ic], unit[i])
		}
	}
	for i := 1; i < len(ys); i += ic {
		if ys[i] != 99 {
			t.Errorf("ys[%d] = %v, was overwritten", i, ys[i])
		}
	}
}

func TestDeq22UsesPrimingValues(t *testing.T) {
	x := []float32{1, 2, 3}
	b := []float32{0, 0, 0, -1, 0} // y[k] = y[k-1]
	c := []float32{5, 6, 0}
	Deq22(x, 1, b, c, 1, 1)
	assert.Equal(t, []float32{5, 6, 6}, c)
}

func TestDeq22Faults(t *testing.T) {
	b := []float64{1, 0, 0, 0, 0}
	tests := []struct {
		name string
		fn   func()
	}{
		{"negative count", func() { Deq22(make([]float64, 4), 1, b, make([]float64, 4), 1, -1) }},
		{"zero input stride", func() { Deq22(make([]float64, 4), 0, b, make([]float64, 4), 1, 2) }},
		{"zero output stride", func() { Deq22(make([]float64, 4), 1, b, make([]float64, 4), 0, 2) }},
		{"short coefficients", func() { Deq22(make([]float64, 4), 1, b[:4], make([]float64, 4), 1, 2) }},
		{"short input", func() { Deq22(make([]float64, 3), 1, b, make([]float64, 4), 1, 2) }},
		{"short output", func() { Deq22(make([]float64, 4), 1, b, make([]float64, 3), 1, 2) }},
		{"short strided input", func() { Deq22(make([]float64, 6), 2, b, make([]float64, 4), 1, 2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := accel.CatchFault(tt.fn)
			require.NotNil(t, f)
			assert.Equal(t, "vdsp.Deq22", f.Op)
		})
	}

	assert.Nil(t, accel.CatchFault(func() { Deq22[float64](nil, 1, b, nil, 1, 0) }), "n=0 is a no-op")
}

func TestDeq22StateMatchesOneShotProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 200).Draw(t, "n")
		x := rapid.SliceOfN(rapid.Float32Range(-10, 10), n, n).Draw(t, "x")
		b := rapid.SliceOfN(rapid.Float32Range(-1, 1), 5, 5).Draw(t, "b")
		coeffs, _ := CoefficientsFromSlice(b)

		want := make([]float32, n)
		if err := TwoPoleTwoZeroFilter(x, coeffs, want); err != nil {
			t.Fatal(err)
		}

		s := NewDeq22State(coeffs)
		got := make([]float32, n)
		for pos := 0; pos < n; {
			size := rapid.IntRange(0, n-pos).Draw(t, "block")
			if err := s.Process(x[pos:pos+size], got[pos:pos+size]); err != nil {
				t.Fatal(err)
			}
			pos += size
			if size == 0 && pos < n {
				// Guarantee progress.
				if err := s.Process(x[pos:pos+1], got[pos:pos+1]); err != nil {
					t.Fatal(err)
				}
				pos++
			}
		}
		if s.Seen() != n {
			t.Fatalf("Seen() = %d, want %d", s.Seen(), n)
		}
		if !identical(got, want) {
			t.Fatalf("block output differs from one-shot output")
		}
	})
}

func TestDeq22StateReset(t *testing.T) {
	coeffs := Coefficients[float64]{B0: 0.5, B1: 0.25, B2: 0.125, A1: -0.5, A2: 0.25}
	x := Ramp[float64](16, 1, 1)
	first := make([]float64, len(x))
	second := make([]float64, len(x))

	s := NewDeq22State(coeffs)
	require.NoError(t, s.Process(x, first))
	s.Reset()
	assert.Equal(t, 0, s.Seen())
	require.NoError(t, s.Process(x, second))
	assert.Equal(t, first, second)

	err := s.Process(x, second[:3])
	assert.ErrorIs(t, err, accel.ErrInvalidArgument)
}

func TestCoefficients(t *testing.T) {
	c := Coefficients[float32]{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	assert.Equal(t, []float32{1, 2, 3, 4, 5}, c.Slice())

	back, err := CoefficientsFromSlice([]float32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, c, back)

	_, err = CoefficientsFromSlice([]float32{1, 2})
	assert.ErrorIs(t, err, accel.ErrLength)
}

func BenchmarkTwoPoleTwoZeroFilter(b *testing.B) {
	coeffs := Coefficients[float32]{B0: 0, B1: 0.1, B2: 0.2, A1: 0.4, A2: 0.8}
	for _, n := range []int{256, 1024, 4096} {
		b.Run(sizeStr(n), func(b *testing.B) {
			src := SquareWave[float32](n, 0.05)
			dst := make([]float32, n)
			b.ReportAllocs()
			b.SetBytes(int64(n * 4))
			for b.Loop() {
				_ = TwoPoleTwoZeroFilter(src, coeffs, dst)
			}
		})
	}
}

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

import "github.com/ajroetker/go-accel/accel"

// Deq22 is the legacy two-pole two-zero difference equation.
//
//	c[k*ic] = a[k*ia]*b[0] + a[(k-1)*ia]*b[1] + a[(k-2)*ia]*b[2]
//	        - c[(k-1)*ic]*b[3] - c[(k-2)*ic]*b[4]      for k in [2, n+2)
//
// a must hold n+2 strided inputs and c n+2 strided outputs. c[0] and c[ic]
// are read as priming values and left untouched; callers normally zero them.
// n == 0 is a no-op.
//
// Deq22 panics with an *accel.Fault on a non-positive stride, fewer than
// five coefficients, or buffers too short for n.
func Deq22[T accel.Floats](a []T, ia int, b []T, c []T, ic int, n int) {
	const op = "vdsp.Deq22"
	if n < 0 {
		accel.Faultf(op, "negative count %d", n)
	}
	if ia <= 0 || ic <= 0 {
		accel.Faultf(op, "strides must be positive, got ia=%d ic=%d", ia, ic)
	}
	coeffs, err := CoefficientsFromSlice(b)
	accel.FaultOn(op, err)
	if n == 0 {
		return
	}
	if need := (n+1)*ia + 1; len(a) < need {
		accel.Faultf(op, "input has %d elements, need %d for %d outputs at stride %d", len(a), need, n, ia)
	}
	if need := (n+1)*ic + 1; len(c) < need {
		accel.Faultf(op, "output has %d elements, need %d for %d outputs at stride %d", len(c), need, n, ic)
	}
	deq22Kernel(a, ia, coeffs, c, ic, n)
}

// Desamp is the legacy decimating FIR filter.
//
//	c[i] = sum_{j<p} a[i*df+j] * f[j]      for i < n
//
// a must hold (n-1)*df + p elements, f at least p taps and c at least n
// outputs. n == 0 is a no-op.
//
// Desamp panics with an *accel.Fault on a non-positive decimation factor or
// filter length, or buffers too short for n.
func Desamp[T accel.Floats](a []T, df int, f []T, c []T, n int, p int) {
	const op = "vdsp.Desamp"
	if n < 0 {
		accel.Faultf(op, "negative count %d", n)
	}
	if df <= 0 {
		accel.Faultf(op, "decimation factor must be positive, got %d", df)
	}
	if p <= 0 {
		accel.Faultf(op, "filter length must be positive, got %d", p)
	}
	if len(f) < p {
		accel.Faultf(op, "filter has %d taps, need %d", len(f), p)
	}
	if n == 0 {
		return
	}
	if need := (n-1)*df + p; len(a) < need {
		accel.Faultf(op, "input has %d elements, need %d for %d outputs", len(a), need, n)
	}
	if len(c) < n {
		accel.Faultf(op, "output has %d elements, need %d", len(c), n)
	}
	desampKernel(a, df, f, c, n, p)
}

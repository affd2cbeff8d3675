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

// The kernels below are the only place the arithmetic happens. Every public
// entry point validates its arguments and then calls one of them, so the
// legacy and high-level generations cannot drift apart.
//
// Each product is wrapped in an explicit T conversion: that forces rounding
// to T before the add, so the compiler may not contract into FMA and results
// are identical on every architecture.

// deq22Kernel computes c[k*ic] for k in [2, n+2). Bounds are checked by the
// caller.
func deq22Kernel[T accel.Floats](a []T, ia int, c Coefficients[T], out []T, ic int, n int) {
	b0, b1, b2, a1, a2 := c.B0, c.B1, c.B2, c.A1, c.A2
	x2, x1 := a[0], a[ia]
	y2, y1 := out[0], out[ic]
	for k := 2; k < n+2; k++ {
		x0 := a[k*ia]
		y0 := T(x0*b0) + T(x1*b1) + T(x2*b2) - T(y1*a1) - T(y2*a2)
		out[k*ic] = y0
		x2, x1 = x1, x0
		y2, y1 = y1, y0
	}
}

// desampKernel computes out[i] = sum_{j<p} a[i*df+j]*f[j] for i < n. Bounds
// are checked by the caller.
func desampKernel[T accel.Floats](a []T, df int, f []T, out []T, n int, p int) {
	f = f[:p]
	for i := range n {
		window := a[i*df : i*df+p]
		var sum T
		for j, tap := range f {
			sum += T(window[j] * tap)
		}
		out[i] = sum
	}
}

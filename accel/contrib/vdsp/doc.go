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

// Package vdsp provides digital signal processing routines in two API
// generations that share one kernel per routine:
//
//   - Legacy: C-style signatures with explicit strides and element counts
//     (Deq22, Desamp). Out-of-range arguments panic with an *accel.Fault.
//   - High-level: slice-based signatures that derive counts from slice
//     lengths and return errors (TwoPoleTwoZeroFilter, Downsample). These
//     require accel.Revision2.
//
// Because both generations run the same kernel, their outputs are
// bit-identical for the same inputs; the conformance package checks this
// with exact equality.
//
// # Two-Pole Two-Zero Filter
//
// With coefficients [b0 b1 b2 a1 a2], for k >= 2:
//
//	y[k] = x[k]*b0 + x[k-1]*b1 + x[k-2]*b2 - y[k-1]*a1 - y[k-2]*a2
//
// y[0] and y[1] are priming values. The legacy routine reads them from the
// output buffer and never writes them; the high-level routine sets them to 0.
//
// # Downsampling
//
// Desamp/Downsample apply an FIR filter of length F and keep every D-th
// output:
//
//	y[i] = sum_{j<F} x[i*D+j] * f[j],   0 <= i < n,   n = (L-F)/D + 1
//
// # Example
//
//	filter := vdsp.UniformFilter[float32](2)       // [0.5 0.5]
//	n := vdsp.DownsampleLength(len(signal), len(filter), 2)
//	out := make([]float32, n)
//	if err := vdsp.Downsample(signal, 2, filter, out); err != nil {
//	    return err
//	}
package vdsp

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

// Package accel holds the pieces shared by the go-accel numerical packages:
// element type constraints, runtime CPU dispatch detection, API revision
// gating, structured errors, fatal faults and the package logger.
//
// The numerical routines themselves live under contrib/:
//
//   - contrib/bnns: neural-network primitive descriptors (image stacks,
//     vectors, layer data, activations) with strict data type validation.
//   - contrib/vdsp: signal-processing routines. Every routine has a
//     high-level form that takes Go slices and a legacy form with explicit
//     strides and counts. Both forms run the same kernel.
//   - contrib/conformance: a small named-case harness that checks the two
//     API generations against each other.
//   - contrib/workerpool: a persistent worker pool used by the batch APIs.
//
// # Revisions
//
// Newer routines are gated behind an API revision. Callers (and the
// conformance harness) ask [Available] once before using a group of
// routines:
//
//	if accel.Available(accel.Revision2) {
//	    vdsp.Downsample(signal, 2, filter, result)
//	}
//
// Setting ACCEL_REVISION in the environment lowers the reported revision,
// which is how older platforms are emulated in tests.
//
// # Faults
//
// Contract violations that a C library would treat as undefined behavior
// (a palette data type without a lookup table, a buffer shorter than the
// requested count) panic with a *[Fault]. Use [CatchFault] to convert such a
// panic back into a value.
package accel

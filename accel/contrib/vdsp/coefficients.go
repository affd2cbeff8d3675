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

// Coefficients are the five taps of a two-pole two-zero filter. B0..B2 weigh
// the current and two previous inputs; A1 and A2 weigh the two previous
// outputs and are subtracted.
type Coefficients[T accel.Floats] struct {
	B0, B1, B2 T
	A1, A2     T
}

// Slice returns the taps in legacy order: [b0 b1 b2 a1 a2].
func (c Coefficients[T]) Slice() []T {
	return []T{c.B0, c.B1, c.B2, c.A1, c.A2}
}

// CoefficientsFromSlice reads taps in legacy order. Extra elements are
// ignored.
func CoefficientsFromSlice[T accel.Floats](b []T) (Coefficients[T], error) {
	if len(b) < 5 {
		return Coefficients[T]{}, accel.NewLengthError("vdsp.CoefficientsFromSlice", len(b), 5, "coefficients")
	}
	return Coefficients[T]{B0: b[0], B1: b[1], B2: b[2], A1: b[3], A2: b[4]}, nil
}

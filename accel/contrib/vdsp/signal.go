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
	stdmath "math"

	"github.com/samber/lo"

	"github.com/ajroetker/go-accel/accel"
)

// SquareWave returns n samples of a ±1 square wave: sample i is -1 where
// sin(i*step) is negative and +1 otherwise.
func SquareWave[T accel.Floats](n int, step float64) []T {
	return lo.Times(n, func(i int) T {
		if stdmath.Signbit(stdmath.Sin(float64(T(i) * T(step)))) {
			return -1
		}
		return 1
	})
}

// UniformFilter returns a moving-average filter of length taps, each 1/length.
func UniformFilter[T accel.Floats](length int) []T {
	if length <= 0 {
		return nil
	}
	tap := 1 / T(length)
	return lo.Times(length, func(int) T { return tap })
}

// Ramp returns n samples start, start+step, start+2*step, ...
func Ramp[T accel.Floats](n int, start, step T) []T {
	return lo.Times(n, func(i int) T { return start + T(i)*step })
}

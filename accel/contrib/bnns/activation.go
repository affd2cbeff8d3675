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

package bnns

import (
	"fmt"
	stdmath "math"

	"github.com/ajroetker/go-accel/accel"
)

// ActivationFunction selects the function an Activation applies.
type ActivationFunction int

const (
	Identity ActivationFunction = iota
	RectifiedLinear
	LeakyRectifiedLinear
	Sigmoid
	Tanh
	ScaledTanh
	Abs
)

// String returns the function name.
func (f ActivationFunction) String() string {
	switch f {
	case Identity:
		return "Identity"
	case RectifiedLinear:
		return "RectifiedLinear"
	case LeakyRectifiedLinear:
		return "LeakyRectifiedLinear"
	case Sigmoid:
		return "Sigmoid"
	case Tanh:
		return "Tanh"
	case ScaledTanh:
		return "ScaledTanh"
	case Abs:
		return "Abs"
	default:
		return fmt.Sprintf("ActivationFunction(%d)", int(f))
	}
}

// UsesAlpha reports whether f reads the Alpha parameter.
func (f ActivationFunction) UsesAlpha() bool {
	return f == LeakyRectifiedLinear || f == ScaledTanh
}

// UsesBeta reports whether f reads the Beta parameter.
func (f ActivationFunction) UsesBeta() bool {
	return f == ScaledTanh
}

// Activation is an activation function plus its parameters.
//
//	LeakyRectifiedLinear: x < 0 ? Alpha*x : x
//	ScaledTanh:           Alpha * tanh(Beta*x)
//
// Parameters a function does not read are NaN.
type Activation struct {
	Function ActivationFunction
	Alpha    float32
	Beta     float32
}

// ActivationIdentity passes its input through unchanged.
var ActivationIdentity = NewActivation(Identity)

// NewActivation returns an activation with both parameters unset (NaN).
func NewActivation(fn ActivationFunction) Activation {
	nan := float32(stdmath.NaN())
	return Activation{Function: fn, Alpha: nan, Beta: nan}
}

// NewActivationWithParams returns an activation with the given parameters.
// Parameters fn does not read are stored as NaN regardless of the argument.
func NewActivationWithParams(fn ActivationFunction, alpha, beta float32) Activation {
	a := NewActivation(fn)
	if fn.UsesAlpha() {
		a.Alpha = alpha
	}
	if fn.UsesBeta() {
		a.Beta = beta
	}
	return a
}

// Apply evaluates the activation element-wise: output[i] = f(input[i]) for
// i < min(len(input), len(output)).
func Apply[T accel.Floats](a Activation, input, output []T) {
	size := min(len(input), len(output))
	alpha, beta := float64(a.Alpha), float64(a.Beta)

	for i := range size {
		x := float64(input[i])
		var y float64
		switch a.Function {
		case Identity:
			y = x
		case RectifiedLinear:
			y = max(x, 0)
		case LeakyRectifiedLinear:
			y = x
			if x < 0 {
				y = alpha * x
			}
		case Sigmoid:
			y = 1.0 / (1.0 + stdmath.Exp(-x))
		case Tanh:
			y = stdmath.Tanh(x)
		case ScaledTanh:
			y = alpha * stdmath.Tanh(beta*x)
		case Abs:
			y = stdmath.Abs(x)
		default:
			y = stdmath.NaN()
		}
		output[i] = T(y)
	}
}

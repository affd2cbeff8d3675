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

// Package bnns provides the descriptor value types passed to neural-network
// primitives: how a buffer is laid out and how its elements are encoded,
// never the buffer's lifetime.
//
// # Descriptors
//
//   - ImageStackDescriptor - width x height x channels, with row and image
//     strides in elements
//   - VectorDescriptor - a flat vector of Size elements
//   - LayerData - a raw parameter buffer (weights, biases) plus its encoding
//   - Activation - an activation function with its two parameters
//
// # Data Types
//
// DataType uses a class/width encoding: the high bits select float, signed
// int, unsigned int or indexed, and the low bits give the width in bits.
// Indexed8 stores 8-bit indices into a float32 lookup table. It is only
// meaningful for LayerData, and only when a table is supplied.
//
// # Scale and Bias
//
// Integer elements are converted to float as scale*x + bias. When no scale
// or bias option is given the descriptor carries DefaultDataScale (1) and
// DefaultDataBias (0):
//
//	v := bnns.NewVectorDescriptor(256, bnns.Int8)                                    // scale 1, bias 0
//	q := bnns.NewVectorDescriptor(256, bnns.Int8, bnns.WithDataScale(0.5), bnns.WithDataBias(0.5))
//
// # Faults
//
// The New* constructors panic with an *accel.Fault when the data type is
// outside the descriptor's allowed set. The Validate* functions report the
// same conditions as errors without panicking.
package bnns

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

// Defaults applied when a constructor receives no scale or bias option.
const (
	DefaultDataScale float32 = 1
	DefaultDataBias  float32 = 0
)

// Option customizes a descriptor constructor.
type Option func(*config)

type config struct {
	scale float32
	bias  float32
	table []float32
}

func newConfig(opts []Option) config {
	c := config{scale: DefaultDataScale, bias: DefaultDataBias}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithDataScale sets the integer-to-float scale.
func WithDataScale(scale float32) Option {
	return func(c *config) { c.scale = scale }
}

// WithDataBias sets the integer-to-float bias.
func WithDataBias(bias float32) Option {
	return func(c *config) { c.bias = bias }
}

// WithDataTable sets the lookup table for Indexed8 layer data. It is ignored
// by image stack and vector descriptors.
func WithDataTable(table []float32) Option {
	return func(c *config) { c.table = table }
}

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

// TwoPoleTwoZeroFilter filters source into result, which must have the same
// length. result[0] and result[1] are set to 0; every later element follows
// the difference equation described in the package documentation.
//
// The output equals calling Deq22(source, 1, coeffs.Slice(), result, 1,
// len(source)-2) on a result whose first two elements are zero.
func TwoPoleTwoZeroFilter[T accel.Floats](source []T, coeffs Coefficients[T], result []T) error {
	const op = "vdsp.TwoPoleTwoZeroFilter"
	if !accel.Available(accel.Revision2) {
		return accel.NewUnavailableError(op, accel.Revision2)
	}
	if len(result) != len(source) {
		return accel.NewInvalidArgError(op, "result has %d elements, source has %d", len(result), len(source))
	}
	filterPrimed(source, coeffs, result)
	return nil
}

// filterPrimed runs the recursion over a validated pair of equal-length
// buffers.
func filterPrimed[T accel.Floats](source []T, coeffs Coefficients[T], result []T) {
	n := len(source)
	for i := range min(n, 2) {
		result[i] = 0
	}
	if n > 2 {
		deq22Kernel(source, 1, coeffs, result, 1, n-2)
	}
}

// Deq22State filters a signal delivered in blocks. Feeding the blocks of a
// signal through Process produces exactly the output TwoPoleTwoZeroFilter
// would produce for the whole signal at once.
//
// A Deq22State is not safe for concurrent use.
type Deq22State[T accel.Floats] struct {
	coeffs Coefficients[T]
	x2, x1 T   // last two inputs
	y2, y1 T   // last two outputs
	seen   int // samples processed since creation or Reset
	in     []T
	out    []T
}

// NewDeq22State returns a filter state at the start of a signal.
func NewDeq22State[T accel.Floats](coeffs Coefficients[T]) *Deq22State[T] {
	return &Deq22State[T]{coeffs: coeffs}
}

// Reset returns the state to the start of a signal.
func (s *Deq22State[T]) Reset() {
	var zero T
	s.x2, s.x1, s.y2, s.y1 = zero, zero, zero, zero
	s.seen = 0
}

// Seen returns the number of samples processed since the last Reset.
func (s *Deq22State[T]) Seen() int {
	return s.seen
}

// Process filters the next block of the signal. dst must have the same
// length as src.
func (s *Deq22State[T]) Process(src, dst []T) error {
	const op = "vdsp.Deq22State.Process"
	if len(dst) != len(src) {
		return accel.NewInvalidArgError(op, "dst has %d elements, src has %d", len(dst), len(src))
	}
	n := len(src)
	if n == 0 {
		return nil
	}

	// Extended buffers: two samples of history followed by the block.
	s.in = append(s.in[:0], s.x2, s.x1)
	s.in = append(s.in, src...)
	s.out = append(s.out[:0], s.y2, s.y1)
	for range n {
		var zero T
		s.out = append(s.out, zero)
	}

	// The first two samples of a signal are priming outputs fixed at 0.
	// Starting the kernel at skip also keeps it from reading history that
	// does not exist yet.
	skip := min(max(2-s.seen, 0), n)
	if count := n - skip; count > 0 {
		deq22Kernel(s.in[skip:], 1, s.coeffs, s.out[skip:], 1, count)
	}
	copy(dst, s.out[2:])

	last := len(s.in) - 1
	s.x2, s.x1 = s.in[last-1], s.in[last]
	s.y2, s.y1 = s.out[last-1], s.out[last]
	s.seen += n
	return nil
}

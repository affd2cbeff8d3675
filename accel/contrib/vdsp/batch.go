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
	"fmt"

	"github.com/ajroetker/go-accel/accel"
	"github.com/ajroetker/go-accel/accel/contrib/workerpool"
)

// FilterChannels applies TwoPoleTwoZeroFilter to every channel, spreading
// channels across pool. results[i] receives the output for sources[i].
// All channels are validated before any work starts, so on error no result
// has been written. pool may be nil.
func FilterChannels[T accel.Floats](pool *workerpool.Pool, sources [][]T, coeffs Coefficients[T], results [][]T) error {
	const op = "vdsp.FilterChannels"
	if !accel.Available(accel.Revision2) {
		return accel.NewUnavailableError(op, accel.Revision2)
	}
	if len(results) != len(sources) {
		return accel.NewInvalidArgError(op, "%d result channels for %d sources", len(results), len(sources))
	}
	for i := range sources {
		if len(results[i]) != len(sources[i]) {
			return accel.NewInvalidArgError(op, "channel %d: result has %d elements, source has %d",
				i, len(results[i]), len(sources[i]))
		}
	}

	poolFor[T](pool, totalLength(sources)).ParallelForAtomic(len(sources), func(i int) {
		filterPrimed(sources[i], coeffs, results[i])
	})
	return nil
}

// DownsampleChannels applies Downsample to every channel, spreading channels
// across pool. Each results[i] may have its own length. All channels are
// validated before any work starts. pool may be nil.
func DownsampleChannels[T accel.Floats](pool *workerpool.Pool, sources [][]T, decimationFactor int, filter []T, results [][]T) error {
	const op = "vdsp.DownsampleChannels"
	if !accel.Available(accel.Revision2) {
		return accel.NewUnavailableError(op, accel.Revision2)
	}
	if len(results) != len(sources) {
		return accel.NewInvalidArgError(op, "%d result channels for %d sources", len(results), len(sources))
	}
	for i := range sources {
		chOp := fmt.Sprintf("%s[%d]", op, i)
		if err := checkDownsample(chOp, len(sources[i]), decimationFactor, len(filter), len(results[i])); err != nil {
			return err
		}
	}

	poolFor[T](pool, totalLength(results)*len(filter)).ParallelForAtomic(len(sources), func(i int) {
		if n := len(results[i]); n > 0 {
			desampKernel(sources[i], decimationFactor, filter, results[i], n, len(filter))
		}
	})
	return nil
}

// minParallelVectors is the smallest batch, in full-width vectors of the
// element type, that is handed to the pool.
const minParallelVectors = 256

// poolFor returns pool, or nil to run on the calling goroutine when the
// batch of the given number of multiply-adds is too small to be worth
// handing to the workers.
func poolFor[T accel.Floats](pool *workerpool.Pool, work int) *workerpool.Pool {
	if work < minParallelVectors*accel.MaxLanes[T]() {
		return nil
	}
	return pool
}

func totalLength[T any](channels [][]T) int {
	total := 0
	for _, ch := range channels {
		total += len(ch)
	}
	return total
}

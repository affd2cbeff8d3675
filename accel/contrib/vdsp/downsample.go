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

// DownsampleLength returns how many outputs a decimating filter of
// filterLength taps produces from inputLength samples at the given factor:
// floor((inputLength-filterLength)/decimationFactor) + 1. It returns 0 when
// the input is shorter than the filter or either length or the factor is
// not positive.
func DownsampleLength(inputLength, filterLength, decimationFactor int) int {
	if decimationFactor <= 0 || filterLength <= 0 || inputLength < filterLength {
		return 0
	}
	return (inputLength-filterLength)/decimationFactor + 1
}

// Downsample filters source with filter and keeps every decimationFactor-th
// output, writing len(result) outputs. len(result) may be anything up to
// DownsampleLength(len(source), len(filter), decimationFactor).
//
// The output equals calling Desamp(source, decimationFactor, filter, result,
// len(result), len(filter)).
func Downsample[T accel.Floats](source []T, decimationFactor int, filter []T, result []T) error {
	const op = "vdsp.Downsample"
	if !accel.Available(accel.Revision2) {
		return accel.NewUnavailableError(op, accel.Revision2)
	}
	if err := checkDownsample(op, len(source), decimationFactor, len(filter), len(result)); err != nil {
		return err
	}
	if len(result) > 0 {
		desampKernel(source, decimationFactor, filter, result, len(result), len(filter))
	}
	return nil
}

// Downsampled is Downsample with a freshly allocated result of the maximum
// length.
func Downsampled[T accel.Floats](source []T, decimationFactor int, filter []T) ([]T, error) {
	result := make([]T, DownsampleLength(len(source), len(filter), decimationFactor))
	if err := Downsample(source, decimationFactor, filter, result); err != nil {
		return nil, err
	}
	return result, nil
}

func checkDownsample(op string, inputLength, decimationFactor, filterLength, resultLength int) error {
	if decimationFactor <= 0 {
		return accel.NewInvalidArgError(op, "decimation factor must be positive, got %d", decimationFactor)
	}
	if filterLength == 0 {
		return accel.NewInvalidArgError(op, "filter is empty")
	}
	if resultLength == 0 {
		return nil
	}
	if need := (resultLength-1)*decimationFactor + filterLength; inputLength < need {
		return accel.NewLengthError(op, inputLength, need, "source")
	}
	return nil
}

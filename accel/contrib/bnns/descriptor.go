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
	"slices"

	"github.com/ajroetker/go-accel/accel"
)

// ImageStackDescriptor describes a stack of Channels images of
// Width x Height elements. RowStride is the distance in elements between
// rows, ImageStride the distance in elements between channels.
type ImageStackDescriptor struct {
	Width       int
	Height      int
	Channels    int
	RowStride   int
	ImageStride int
	DataType    DataType
	DataScale   float32
	DataBias    float32
}

// NewImageStackDescriptor returns an image stack descriptor. Scale and bias
// default to DefaultDataScale and DefaultDataBias.
//
// It panics with an *accel.Fault when dt is not in ImageStackDataTypes.
func NewImageStackDescriptor(width, height, channels, rowStride, imageStride int, dt DataType, opts ...Option) ImageStackDescriptor {
	c := newConfig(opts)
	d := ImageStackDescriptor{
		Width:       width,
		Height:      height,
		Channels:    channels,
		RowStride:   rowStride,
		ImageStride: imageStride,
		DataType:    dt,
		DataScale:   c.scale,
		DataBias:    c.bias,
	}
	accel.FaultOn("bnns.NewImageStackDescriptor", ValidateImageStack(d))
	return d
}

// ValidateImageStack reports whether d uses an allowed data type.
func ValidateImageStack(d ImageStackDescriptor) error {
	if !slices.Contains(ImageStackDataTypes, d.DataType) {
		return accel.NewInvalidArgError("bnns.ImageStackDescriptor",
			"%s is not an image stack data type", d.DataType)
	}
	return nil
}

// ByteSize returns the number of bytes spanned by the stack.
func (d ImageStackDescriptor) ByteSize() int {
	return d.Channels * d.ImageStride * d.DataType.Size()
}

// VectorDescriptor describes a flat vector of Size elements.
type VectorDescriptor struct {
	Size      int
	DataType  DataType
	DataScale float32
	DataBias  float32
}

// NewVectorDescriptor returns a vector descriptor. Scale and bias default to
// DefaultDataScale and DefaultDataBias.
//
// It panics with an *accel.Fault when dt is not in VectorDataTypes.
func NewVectorDescriptor(size int, dt DataType, opts ...Option) VectorDescriptor {
	c := newConfig(opts)
	d := VectorDescriptor{
		Size:      size,
		DataType:  dt,
		DataScale: c.scale,
		DataBias:  c.bias,
	}
	accel.FaultOn("bnns.NewVectorDescriptor", ValidateVector(d))
	return d
}

// ValidateVector reports whether d uses an allowed data type.
func ValidateVector(d VectorDescriptor) error {
	if !slices.Contains(VectorDataTypes, d.DataType) {
		return accel.NewInvalidArgError("bnns.VectorDescriptor",
			"%s is not a vector data type", d.DataType)
	}
	return nil
}

// ByteSize returns the number of bytes spanned by the vector.
func (d VectorDescriptor) ByteSize() int {
	return d.Size * d.DataType.Size()
}

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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ajroetker/go-accel/accel"
)

func TestImageStackDescriptor(t *testing.T) {
	d := NewImageStackDescriptor(0, 0, 0, 0, 0, Int8)
	assert.Equal(t, float32(1), d.DataScale)
	assert.Equal(t, float32(0), d.DataBias)

	d = NewImageStackDescriptor(0, 0, 0, 0, 0, Int16, WithDataScale(0.5), WithDataBias(0.5))
	assert.Equal(t, float32(0.5), d.DataScale)
	assert.Equal(t, float32(0.5), d.DataBias)

	f := accel.CatchFault(func() {
		NewImageStackDescriptor(0, 0, 0, 0, 0, Indexed8)
	})
	require.NotNil(t, f, "Indexed8 image stack must fault")
	assert.Equal(t, "bnns.NewImageStackDescriptor", f.Op)
	assert.ErrorIs(t, f, accel.ErrInvalidArgument)
}

func TestImageStackDescriptorByteSize(t *testing.T) {
	d := NewImageStackDescriptor(7, 5, 3, 8, 40, Float32)
	assert.Equal(t, 3*40*4, d.ByteSize())
	d = NewImageStackDescriptor(7, 5, 3, 8, 40, Float16)
	assert.Equal(t, 3*40*2, d.ByteSize())
}

func TestVectorDescriptor(t *testing.T) {
	v := NewVectorDescriptor(0, Int8)
	assert.Equal(t, DefaultDataScale, v.DataScale)
	assert.Equal(t, DefaultDataBias, v.DataBias)

	v = NewVectorDescriptor(0, Int8, WithDataScale(0.5), WithDataBias(0.5))
	assert.Equal(t, float32(0.5), v.DataScale)
	assert.Equal(t, float32(0.5), v.DataBias)
	assert.Equal(t, 0, v.ByteSize())

	f := accel.CatchFault(func() { NewVectorDescriptor(0, Indexed8) })
	require.NotNil(t, f, "Indexed8 vector must fault")
	assert.Equal(t, "bnns.NewVectorDescriptor", f.Op)

	assert.Equal(t, 12, NewVectorDescriptor(3, UInt32).ByteSize())
}

func TestValidateReportsWithoutPanicking(t *testing.T) {
	err := ValidateImageStack(ImageStackDescriptor{DataType: Indexed8})
	assert.ErrorIs(t, err, accel.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "Indexed8 is not an image stack data type")

	err = ValidateVector(VectorDescriptor{DataType: DataType(0x99)})
	assert.ErrorIs(t, err, accel.ErrInvalidArgument)

	assert.NoError(t, ValidateVector(VectorDescriptor{DataType: Float32}))
	assert.NoError(t, ValidateImageStack(ImageStackDescriptor{DataType: UInt16}))
}

func TestDescriptorDefaultsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dt := rapid.SampledFrom(ImageStackDataTypes).Draw(t, "dt")
		w := rapid.IntRange(0, 4096).Draw(t, "width")
		h := rapid.IntRange(0, 4096).Draw(t, "height")
		c := rapid.IntRange(0, 64).Draw(t, "channels")

		d := NewImageStackDescriptor(w, h, c, w, w*h, dt)
		if d.DataScale != 1 || d.DataBias != 0 {
			t.Fatalf("%s image stack: scale=%v bias=%v, want 1, 0", dt, d.DataScale, d.DataBias)
		}
		v := NewVectorDescriptor(w, dt)
		if v.DataScale != 1 || v.DataBias != 0 {
			t.Fatalf("%s vector: scale=%v bias=%v, want 1, 0", dt, v.DataScale, v.DataBias)
		}

		ldt := rapid.SampledFrom(LayerDataTypes).Draw(t, "layer dt")
		ld := NewLayerData(nil, ldt, WithDataTable([]float32{}))
		if ld.DataScale != 1 || ld.DataBias != 0 {
			t.Fatalf("%s layer data: scale=%v bias=%v, want 1, 0", ldt, ld.DataScale, ld.DataBias)
		}
	})
}

func TestDescriptorExplicitScaleBiasProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dt := rapid.SampledFrom(VectorDataTypes).Draw(t, "dt")
		s := rapid.Float32Range(-1e6, 1e6).Draw(t, "scale")
		b := rapid.Float32Range(-1e6, 1e6).Draw(t, "bias")
		opts := []Option{WithDataScale(s), WithDataBias(b)}

		d := NewImageStackDescriptor(1, 1, 1, 1, 1, dt, opts...)
		v := NewVectorDescriptor(1, dt, opts...)
		ld := NewLayerData(nil, dt, opts...)
		for _, got := range [][2]float32{
			{d.DataScale, d.DataBias},
			{v.DataScale, v.DataBias},
			{ld.DataScale, ld.DataBias},
		} {
			if got[0] != s || got[1] != b {
				t.Fatalf("%s: got scale=%v bias=%v, want %v, %v", dt, got[0], got[1], s, b)
			}
		}
	})
}

func TestIndexed8AlwaysFaultsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(-8, 1<<20).Draw(t, "width")
		s := rapid.Float32Range(-10, 10).Draw(t, "scale")

		if accel.CatchFault(func() {
			NewImageStackDescriptor(w, w, w, w, w, Indexed8, WithDataScale(s))
		}) == nil {
			t.Fatalf("image stack with Indexed8 did not fault (width=%d)", w)
		}
		if accel.CatchFault(func() {
			NewVectorDescriptor(w, Indexed8, WithDataScale(s), WithDataTable([]float32{1}))
		}) == nil {
			t.Fatalf("vector with Indexed8 did not fault (size=%d)", w)
		}
	})
}

func TestDataTypeProperties(t *testing.T) {
	tests := []struct {
		dt                           DataType
		name                         string
		bits                         int
		float, signed, uint, indexed bool
	}{
		{Float16, "Float16", 16, true, false, false, false},
		{Float32, "Float32", 32, true, false, false, false},
		{Int8, "Int8", 8, false, true, false, false},
		{Int16, "Int16", 16, false, true, false, false},
		{Int32, "Int32", 32, false, true, false, false},
		{UInt8, "UInt8", 8, false, false, true, false},
		{UInt16, "UInt16", 16, false, false, true, false},
		{UInt32, "UInt32", 32, false, false, true, false},
		{Indexed8, "Indexed8", 8, false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.dt.Valid())
			assert.Equal(t, tt.name, tt.dt.String())
			assert.Equal(t, tt.bits, tt.dt.Bits())
			assert.Equal(t, tt.bits/8, tt.dt.Size())
			assert.Equal(t, tt.float, tt.dt.IsFloat())
			assert.Equal(t, tt.signed, tt.dt.IsSigned())
			assert.Equal(t, tt.uint, tt.dt.IsUnsigned())
			assert.Equal(t, tt.indexed, tt.dt.IsIndexed())
		})
	}
	assert.False(t, DataType(0x10040).Valid())
	assert.Equal(t, "DataType(0x10040)", DataType(0x10040).String())
}

func TestErrorsAsFault(t *testing.T) {
	f := accel.CatchFault(func() { NewVectorDescriptor(4, Indexed8) })
	require.NotNil(t, f)
	var e *accel.Error
	require.True(t, errors.As(f, &e))
	assert.Equal(t, accel.KindInvalidArgument, e.Kind)
}

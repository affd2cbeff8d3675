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

package conformance

import (
	"github.com/ajroetker/go-accel/accel"
	"github.com/ajroetker/go-accel/accel/contrib/bnns"
	"github.com/ajroetker/go-accel/accel/contrib/vdsp"
)

// AccelerateSuite returns the descriptor and filter equivalence cases.
// Descriptor cases need accel.Revision1; the vdsp cases need
// accel.Revision2.
func AccelerateSuite() *Suite {
	s := NewSuite("Accelerate")

	s.Group(accel.Revision1, func(g *Group) {
		g.Test("BNNS/ImageStackDescriptor", imageStackDescriptorCase)
		g.Test("BNNS/VectorDescriptor", vectorDescriptorCase)
		g.Test("BNNS/LayerData", layerDataCase)
		g.Test("BNNS/Activation", activationCase)
	})

	s.Group(accel.Revision2, func(g *Group) {
		g.Test("vDSP/DifferenceEquationSinglePrecision", differenceEquationCase[float32])
		g.Test("vDSP/DifferenceEquationDoublePrecision", differenceEquationCase[float64])
		g.Test("vDSP/DownsampleSinglePrecision", downsampleCase[float32])
		g.Test("vDSP/DownsampleDoublePrecision", downsampleCase[float64])
	})

	return s
}

func imageStackDescriptorCase(t *T) {
	d := bnns.NewImageStackDescriptor(0, 0, 0, 0, 0, bnns.Int8)
	t.ExpectEqual(d.DataScale, float32(1))
	t.ExpectEqual(d.DataBias, float32(0))

	d = bnns.NewImageStackDescriptor(0, 0, 0, 0, 0, bnns.Int16,
		bnns.WithDataScale(0.5), bnns.WithDataBias(0.5))
	t.ExpectEqual(d.DataScale, float32(0.5))
	t.ExpectEqual(d.DataBias, float32(0.5))

	// Indexed8 is not an image stack data type.
	t.ExpectFault(func() {
		bnns.NewImageStackDescriptor(0, 0, 0, 0, 0, bnns.Indexed8)
	})
}

func vectorDescriptorCase(t *T) {
	v := bnns.NewVectorDescriptor(0, bnns.Int8)
	t.ExpectEqual(v.DataScale, float32(1))
	t.ExpectEqual(v.DataBias, float32(0))

	v = bnns.NewVectorDescriptor(0, bnns.Int8, bnns.WithDataScale(0.5), bnns.WithDataBias(0.5))
	t.ExpectEqual(v.DataScale, float32(0.5))
	t.ExpectEqual(v.DataBias, float32(0.5))

	// Indexed8 is not a vector data type.
	t.ExpectFault(func() {
		bnns.NewVectorDescriptor(0, bnns.Indexed8)
	})
}

func layerDataCase(t *T) {
	t.ExpectTrue(bnns.LayerDataZero.Data == nil, "zero layer data has nil data")

	ld := bnns.NewLayerData(nil, bnns.Int8)
	t.ExpectEqual(ld.DataScale, float32(1))
	t.ExpectEqual(ld.DataBias, float32(0))

	ld = bnns.NewLayerData(nil, bnns.Int8, bnns.WithDataScale(0.5), bnns.WithDataBias(0.5),
		bnns.WithDataTable(nil))
	t.ExpectEqual(ld.DataScale, float32(0.5))
	t.ExpectEqual(ld.DataBias, float32(0.5))

	table := []float32{1.0}
	ld = bnns.NewIndexed8LayerData(nil, table)
	t.ExpectEqual(ld.DataType, bnns.Indexed8)

	// Indexed8 requires a non-nil data table.
	t.ExpectFault(func() {
		bnns.NewLayerData(nil, bnns.Indexed8)
	})
}

func activationCase(t *T) {
	t.ExpectEqual(bnns.ActivationIdentity.Function, bnns.Identity)
	id := bnns.NewActivation(bnns.Identity)
	t.ExpectNaN(float64(id.Alpha), "alpha")
	t.ExpectNaN(float64(id.Beta), "beta")
}

func differenceEquationCase[F accel.Floats](t *T) {
	const n = 256
	source := vdsp.SquareWave[F](n, 0.05)
	result := make([]F, n)
	legacy := make([]F, n)
	for i := range legacy {
		legacy[i] = -1
	}
	b := []F{0.0, 0.1, 0.2, 0.4, 0.8}
	coeffs, err := vdsp.CoefficientsFromSlice(b)
	if !t.ExpectNoError(err) {
		return
	}

	t.ExpectNoError(vdsp.TwoPoleTwoZeroFilter(source, coeffs, result))

	legacy[0], legacy[1] = 0, 0
	vdsp.Deq22(source, 1, b, legacy, 1, n-2)

	t.ExpectEqual(result, legacy, "high-level vs legacy")
}

func downsampleCase[F accel.Floats](t *T) {
	const decimationFactor = 2
	const filterLength = 2
	filter := vdsp.UniformFilter[F](filterLength)
	signal := []F{10, 15, 20, 25, 50, 25, 20, 15, 10, 10, 15, 20, 25, 50, 25, 20, 15, 10}

	n := (len(signal)-filterLength)/decimationFactor + 1
	t.ExpectEqual(vdsp.DownsampleLength(len(signal), filterLength, decimationFactor), n)

	result := make([]F, n)
	t.ExpectNoError(vdsp.Downsample(signal, decimationFactor, filter, result))

	legacy := make([]F, n)
	for i := range legacy {
		legacy[i] = -1
	}
	vdsp.Desamp(signal, decimationFactor, filter, legacy, n, filterLength)

	t.ExpectEqual(result, legacy, "high-level vs legacy")
}

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
	"encoding/binary"
	"math"
	"slices"

	"github.com/ajroetker/go-accel/accel"
)

// LayerData references a layer parameter buffer and describes its encoding.
// Data is little-endian. DataTable is only used by Indexed8.
type LayerData struct {
	Data      []byte
	DataType  DataType
	DataScale float32
	DataBias  float32
	DataTable []float32
}

// LayerDataZero is the empty layer data. Its Data is nil.
var LayerDataZero = LayerData{
	DataType:  Float32,
	DataScale: DefaultDataScale,
	DataBias:  DefaultDataBias,
}

// NewLayerData returns layer data over data. Scale and bias default to
// DefaultDataScale and DefaultDataBias; WithDataTable supplies the lookup
// table for Indexed8.
//
// It panics with an *accel.Fault when dt is not in LayerDataTypes, or when
// dt is Indexed8 and no table was given.
func NewLayerData(data []byte, dt DataType, opts ...Option) LayerData {
	c := newConfig(opts)
	ld := LayerData{
		Data:      data,
		DataType:  dt,
		DataScale: c.scale,
		DataBias:  c.bias,
		DataTable: c.table,
	}
	accel.FaultOn("bnns.NewLayerData", ValidateLayerData(ld))
	return ld
}

// NewIndexed8LayerData returns Indexed8 layer data whose elements index into
// table. It panics with an *accel.Fault when table is nil.
func NewIndexed8LayerData(data []byte, table []float32) LayerData {
	return NewLayerData(data, Indexed8, WithDataTable(table))
}

// ValidateLayerData reports whether ld uses an allowed data type and, for
// Indexed8, carries a lookup table.
func ValidateLayerData(ld LayerData) error {
	if !slices.Contains(LayerDataTypes, ld.DataType) {
		return accel.NewInvalidArgError("bnns.LayerData",
			"%s is not a layer data type", ld.DataType)
	}
	if ld.DataType.IsIndexed() && ld.DataTable == nil {
		return accel.NewInvalidArgError("bnns.LayerData",
			"%s requires a non-nil data table", ld.DataType)
	}
	return nil
}

// Values decodes the first n elements of Data to float32.
//
// Float types are decoded as-is. Integer types are converted with
// DataScale*x + DataBias. Indexed8 elements are looked up in DataTable.
func (ld LayerData) Values(n int) ([]float32, error) {
	const op = "bnns.LayerData.Values"
	if err := ValidateLayerData(ld); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, accel.NewInvalidArgError(op, "negative element count %d", n)
	}
	size := ld.DataType.Size()
	if need := n * size; len(ld.Data) < need {
		return nil, accel.NewLengthError(op, len(ld.Data), need, "data")
	}

	out := make([]float32, n)
	le := binary.LittleEndian
	for i := range n {
		b := ld.Data[i*size:]
		switch ld.DataType {
		case Float16:
			out[i] = accel.Float16(le.Uint16(b)).Float32()
		case Float32:
			out[i] = math.Float32frombits(le.Uint32(b))
		case Int8:
			out[i] = ld.scaled(float32(int8(b[0])))
		case Int16:
			out[i] = ld.scaled(float32(int16(le.Uint16(b))))
		case Int32:
			out[i] = ld.scaled(float32(int32(le.Uint32(b))))
		case UInt8:
			out[i] = ld.scaled(float32(b[0]))
		case UInt16:
			out[i] = ld.scaled(float32(le.Uint16(b)))
		case UInt32:
			out[i] = ld.scaled(float32(le.Uint32(b)))
		case Indexed8:
			idx := int(b[0])
			if idx >= len(ld.DataTable) {
				return nil, accel.NewInvalidArgError(op,
					"index %d at element %d outside table of %d entries", idx, i, len(ld.DataTable))
			}
			out[i] = ld.DataTable[idx]
		}
	}
	return out, nil
}

func (ld LayerData) scaled(x float32) float32 {
	return ld.DataScale*x + ld.DataBias
}

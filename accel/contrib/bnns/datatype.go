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
	"slices"
)

// DataType describes how a single element is encoded.
type DataType uint32

// Data type classes occupy the high 16 bits.
const (
	classFloat   DataType = 0x10000
	classInt     DataType = 0x20000
	classIndexed DataType = 0x30000
	classUInt    DataType = 0x40000
	classMask    DataType = 0xFFFF0000
)

const (
	Float16  = classFloat | 16
	Float32  = classFloat | 32
	Int8     = classInt | 8
	Int16    = classInt | 16
	Int32    = classInt | 32
	UInt8    = classUInt | 8
	UInt16   = classUInt | 16
	UInt32   = classUInt | 32
	Indexed8 = classIndexed | 8
)

// AllDataTypes lists every defined data type.
var AllDataTypes = []DataType{Float16, Float32, Int8, Int16, Int32, UInt8, UInt16, UInt32, Indexed8}

// ImageStackDataTypes lists the element types allowed in an image stack.
var ImageStackDataTypes = []DataType{Float16, Float32, Int8, Int16, Int32, UInt8, UInt16, UInt32}

// VectorDataTypes lists the element types allowed in a vector.
var VectorDataTypes = []DataType{Float16, Float32, Int8, Int16, Int32, UInt8, UInt16, UInt32}

// LayerDataTypes lists the element types allowed in layer data. Indexed8
// additionally needs a lookup table.
var LayerDataTypes = AllDataTypes

// Valid reports whether dt is one of the defined data types.
func (dt DataType) Valid() bool {
	return slices.Contains(AllDataTypes, dt)
}

// Bits returns the element width in bits.
func (dt DataType) Bits() int {
	return int(dt &^ classMask)
}

// Size returns the element width in bytes.
func (dt DataType) Size() int {
	return dt.Bits() / 8
}

// IsFloat reports whether elements are IEEE floating point.
func (dt DataType) IsFloat() bool { return dt&classMask == classFloat }

// IsSigned reports whether elements are signed integers.
func (dt DataType) IsSigned() bool { return dt&classMask == classInt }

// IsUnsigned reports whether elements are unsigned integers.
func (dt DataType) IsUnsigned() bool { return dt&classMask == classUInt }

// IsIndexed reports whether elements are indices into a lookup table.
func (dt DataType) IsIndexed() bool { return dt&classMask == classIndexed }

// String returns the data type name, e.g. "Float32" or "Indexed8".
func (dt DataType) String() string {
	switch dt {
	case Float16:
		return "Float16"
	case Float32:
		return "Float32"
	case Int8:
		return "Int8"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case UInt8:
		return "UInt8"
	case UInt16:
		return "UInt16"
	case UInt32:
		return "UInt32"
	case Indexed8:
		return "Indexed8"
	default:
		return fmt.Sprintf("DataType(0x%x)", uint32(dt))
	}
}

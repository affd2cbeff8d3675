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

package accel

import "math"

// Float16 is an IEEE 754 binary16 value stored in its raw bit pattern.
//
//	S | EEEEE | MMMMMMMMMM
//
// Exponent bias is 15, largest finite value is 65504.
type Float16 uint16

// Float16 special values.
const (
	Float16Zero   Float16 = 0x0000
	Float16One    Float16 = 0x3C00
	Float16Max    Float16 = 0x7BFF
	Float16Inf    Float16 = 0x7C00
	Float16NegInf Float16 = 0xFC00
	Float16NaN    Float16 = 0x7E00
)

// Float16ToFloat32 widens h to float32. The conversion is exact.
func Float16ToFloat32(h Float16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	switch exp {
	case 0:
		// Zero or subnormal: mant * 2^-24.
		v := float32(mant) * (1.0 / (1 << 24))
		if sign != 0 {
			v = -v
		}
		return v
	case 0x1F:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7F800000)
		}
		return math.Float32frombits(sign | 0x7FC00000 | mant<<13)
	}
	return math.Float32frombits(sign | (exp+127-15)<<23 | mant<<13)
}

// Float32ToFloat16 narrows f with round-to-nearest-even. Values beyond the
// binary16 range become infinities; tiny values flush through subnormals
// to signed zero.
func Float32ToFloat16(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp := int(bits>>23) & 0xFF
	mant := bits & 0x7FFFFF

	if exp == 0xFF {
		if mant != 0 {
			return Float16(sign) | Float16NaN
		}
		return Float16(sign) | Float16Inf
	}

	e := exp - 127 + 15
	switch {
	case e >= 0x1F:
		return Float16(sign) | Float16Inf
	case e <= 0:
		if e < -10 {
			return Float16(sign)
		}
		m := mant | 0x800000
		shift := uint(14 - e)
		h := m >> shift
		rem := m & (1<<shift - 1)
		half := uint32(1) << (shift - 1)
		if rem > half || (rem == half && h&1 == 1) {
			h++
		}
		return Float16(sign | uint16(h))
	}

	h := uint32(e)<<10 | mant>>13
	rem := mant & 0x1FFF
	if rem > 0x1000 || (rem == 0x1000 && h&1 == 1) {
		h++ // a carry into the exponent rounds up to the next binade or to Inf
	}
	return Float16(sign | uint16(h))
}

// Float32 returns h widened to float32.
func (h Float16) Float32() float32 {
	return Float16ToFloat32(h)
}

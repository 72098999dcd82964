// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"math"
	"unsafe"

	"github.com/boschglobal/dse.s2s/pkg/byteorder"
	"golang.org/x/exp/constraints"
)

// toUint64 zero extends a host ordered vector. At most size bytes of
// significance are used.
func toUint64(b []byte, size int) uint64 {
	n := min(len(b), size, 8)
	var v uint64
	for i := range n {
		v |= uint64(b[hostIndex(i, len(b))]) << (8 * i)
	}
	return v
}

func fromUint64(v uint64, bitLength uint32) []byte {
	n := int(byteorder.ByteLength(bitLength))
	if bitLength < 64 {
		v &= (uint64(1) << bitLength) - 1
	}
	b := make([]byte, n)
	for i := range n {
		if i < 8 {
			b[hostIndex(i, n)] = uint8(v >> (8 * i))
		}
	}
	return b
}

func bitLengthOf(bitLength uint32, size int) uint32 {
	if bitLength == 0 || bitLength > uint32(size*8) {
		return uint32(size * 8)
	}
	return bitLength
}

// ConvertSigned interprets a host ordered vector as a two's complement value
// of bitLength bits and sign extends it to T.
func ConvertSigned[T constraints.Signed](b []byte, bitLength uint32) T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	bitLength = bitLengthOf(bitLength, size)
	v := toUint64(b, size)
	if bitLength < 64 {
		v &= (uint64(1) << bitLength) - 1
		if v&(uint64(1)<<(bitLength-1)) != 0 {
			v |= ^uint64(0) << (bitLength - 1)
		}
	}
	return T(int64(v))
}

// ConvertUnsigned interprets a host ordered vector as an unsigned value of
// bitLength bits.
func ConvertUnsigned[T constraints.Unsigned](b []byte, bitLength uint32) T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	bitLength = bitLengthOf(bitLength, size)
	v := toUint64(b, size)
	if bitLength < 64 {
		v &= (uint64(1) << bitLength) - 1
	}
	return T(v)
}

// EncodeSigned produces the host ordered vector of v truncated to bitLength.
func EncodeSigned(v int64, bitLength uint32) []byte {
	return fromUint64(uint64(v), bitLength)
}

// EncodeUnsigned produces the host ordered vector of v truncated to bitLength.
func EncodeUnsigned(v uint64, bitLength uint32) []byte {
	return fromUint64(v, bitLength)
}

func ConvertFloat32(b []byte) float32 {
	return math.Float32frombits(ConvertUnsigned[uint32](b, 32))
}

func ConvertFloat64(b []byte) float64 {
	return math.Float64frombits(ConvertUnsigned[uint64](b, 64))
}

func EncodeFloat32(v float32) []byte {
	return fromUint64(uint64(math.Float32bits(v)), 32)
}

func EncodeFloat64(v float64) []byte {
	return fromUint64(math.Float64bits(v), 64)
}

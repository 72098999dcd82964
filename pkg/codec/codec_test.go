// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"math"
	"testing"

	"github.com/boschglobal/dse.s2s/pkg/byteorder"
	"github.com/boschglobal/dse.s2s/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackSignal_Layout(t *testing.T) {
	tests := []struct {
		name   string
		order  byteorder.ByteOrder
		value  uint64
		length uint32
		want   []byte
	}{
		{name: "big endian", order: byteorder.MostSignificantByteFirst, value: 0x0a0b0c, length: 24,
			want: []byte{0xff, 0x0a, 0x0b, 0x0c, 0xff, 0xff}},
		{name: "little endian", order: byteorder.MostSignificantByteLast, value: 0x0a0b0c, length: 24,
			want: []byte{0xff, 0x0c, 0x0b, 0x0a, 0xff, 0xff}},
		{name: "12 bit big endian", order: byteorder.MostSignificantByteFirst, value: 0xabc, length: 12,
			want: []byte{0xff, 0x0a, 0xbc, 0xff, 0xff, 0xff}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pdu := bytes.Repeat([]byte{0xff}, 6)
			cfg := config.S2SSignalConfig{Name: "s", StartPosition: 8, Length: tc.length, PackingByteOrder: tc.order}
			require.NoError(t, PackSignal(pdu, EncodeUnsigned(tc.value, tc.length), cfg))
			assert.Equal(t, tc.want, pdu)

			b, err := UnpackSignal(pdu, cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.value, ConvertUnsigned[uint64](b, tc.length))
		})
	}
}

func TestPackSignal_Opaque(t *testing.T) {
	pdu := make([]byte, 6)
	cfg := config.S2SSignalConfig{Name: "vin", StartPosition: 16, Length: 24, PackingByteOrder: byteorder.Opaque}
	require.NoError(t, PackSignal(pdu, []byte{1, 2, 3}, cfg))
	assert.Equal(t, []byte{0, 0, 1, 2, 3, 0}, pdu)
	b, err := UnpackSignal(pdu, cfg)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
}

// fitsSigned reports whether v is representable in length bits.
func fitsSigned(v int64, length uint32) bool {
	if length >= 64 {
		return true
	}
	return v >= -(int64(1)<<(length-1)) && v < int64(1)<<(length-1)
}

func TestRoundTrip(t *testing.T) {
	orders := []byteorder.ByteOrder{
		byteorder.MostSignificantByteFirst,
		byteorder.MostSignificantByteLast,
		byteorder.Opaque,
	}
	for _, order := range orders {
		for _, length := range []uint32{1, 7, 12, 31, 64} {
			cfg := config.S2SSignalConfig{Name: "s", StartPosition: 8, Length: length, PackingByteOrder: order}
			values := []int64{
				0, 1, -1, -5, 42,
				-64, 63, -(1 << 30), 1<<30 - 1,
				math.MinInt64, math.MaxInt64,
			}
			for _, v := range values {
				pdu := make([]byte, 10)
				in := EncodeSigned(v, length)
				require.NoError(t, PackSignal(pdu, in, cfg))
				out, err := UnpackSignal(pdu, cfg)
				require.NoError(t, err)
				assert.Equal(t, in, out, "order=%s length=%d v=%d", order, length, v)
				if fitsSigned(v, length) {
					assert.Equal(t, v, ConvertSigned[int64](out, length), "order=%s length=%d v=%d", order, length, v)
				}
			}
		}
	}
}

func TestPackSignal_Errors(t *testing.T) {
	cfg := config.S2SSignalConfig{Name: "s", StartPosition: 32, Length: 16}
	pdu := make([]byte, 5)

	err := PackSignal(pdu, []byte{1, 2}, cfg)
	require.Error(t, err)
	assert.Equal(t, `codec: "signal \"s\" byte 5 outside pdu of length 5"`, err.Error())

	err = PackSignal(pdu, []byte{1}, cfg)
	require.Error(t, err)
	assert.Equal(t, `codec: "signal \"s\" has 1 bytes, expected 2"`, err.Error())

	_, err = UnpackSignal(pdu, cfg)
	assert.Error(t, err)
	assert.Equal(t, make([]byte, 5), pdu)
}

func TestConvertSigned(t *testing.T) {
	tests := []struct {
		name   string
		value  uint64
		length uint32
		want   int64
	}{
		{name: "12 bit -1", value: 0x0fff, length: 12, want: -1},
		{name: "12 bit max", value: 0x07ff, length: 12, want: 2047},
		{name: "12 bit min", value: 0x0800, length: 12, want: -2048},
		{name: "8 bit -128", value: 0x80, length: 8, want: -128},
		{name: "1 bit", value: 0x1, length: 1, want: -1},
		{name: "31 bit", value: 0x40000000, length: 31, want: -(1 << 30)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := EncodeUnsigned(tc.value, tc.length)
			assert.Equal(t, tc.want, ConvertSigned[int64](b, tc.length))
			assert.Equal(t, int32(tc.want), ConvertSigned[int32](b, tc.length))
		})
	}
	assert.Equal(t, int8(-1), ConvertSigned[int8](EncodeUnsigned(0xff, 8), 8))
	assert.Equal(t, int16(-2), ConvertSigned[int16](EncodeSigned(-2, 16), 16))
}

func TestConvertUnsigned(t *testing.T) {
	assert.Equal(t, uint16(0x0fff), ConvertUnsigned[uint16](EncodeUnsigned(0xffff, 12), 12))
	assert.Equal(t, uint8(0xff), ConvertUnsigned[uint8](EncodeUnsigned(0x1ff, 16), 16))
	assert.Equal(t, uint64(0x0102), ConvertUnsigned[uint64](EncodeUnsigned(0x0102, 16), 16))
	// Short vector, never read past its end.
	assert.Equal(t, uint32(0x7f), ConvertUnsigned[uint32]([]byte{0x7f}, 32))
	assert.Equal(t, uint32(0), ConvertUnsigned[uint32](nil, 32))
}

func TestConvertFloat(t *testing.T) {
	assert.Equal(t, float32(3.5), ConvertFloat32(EncodeFloat32(3.5)))
	assert.Equal(t, -1.25e10, ConvertFloat64(EncodeFloat64(-1.25e10)))
}

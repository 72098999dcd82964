// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package byteorder

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBigEndian(t *testing.T) {
	b := make([]byte, 4)
	binary.NativeEndian.PutUint32(b, 0x01020304)
	assert.Equal(t, b[0] == 0x01, IsBigEndian())
	if IsBigEndian() {
		assert.Equal(t, MostSignificantByteFirst, HostOrder())
	} else {
		assert.Equal(t, MostSignificantByteLast, HostOrder())
	}
}

func TestPositionOf(t *testing.T) {
	tests := []struct {
		offset uint32
		want   Position
	}{
		{offset: 0, want: Position{Byte: 0, Bit: 0}},
		{offset: 7, want: Position{Byte: 0, Bit: 7}},
		{offset: 8, want: Position{Byte: 1, Bit: 0}},
		{offset: 21, want: Position{Byte: 2, Bit: 5}},
	}
	for _, tc := range tests {
		p := PositionOf(tc.offset)
		assert.Equal(t, tc.want, p)
		assert.Equal(t, tc.offset, p.Offset())
	}
}

func TestByteLength(t *testing.T) {
	assert.Equal(t, uint32(0), ByteLength(0))
	assert.Equal(t, uint32(1), ByteLength(1))
	assert.Equal(t, uint32(1), ByteLength(8))
	assert.Equal(t, uint32(2), ByteLength(12))
	assert.Equal(t, uint32(4), ByteLength(31))
	assert.Equal(t, uint32(8), ByteLength(64))
}

func TestFieldRange(t *testing.T) {
	lo, hi := FieldRange(PositionOf(16), 12)
	assert.Equal(t, uint32(2), lo)
	assert.Equal(t, uint32(4), hi)
	for _, order := range []ByteOrder{MostSignificantByteFirst, MostSignificantByteLast, Opaque} {
		assert.Equal(t, Position{Byte: 4}, AdvancePosition(PositionOf(16), 12, order), order.String())
		assert.Equal(t, Position{Byte: 3}, AdvancePosition(PositionOf(16), 8, order), order.String())
	}
}

func TestFieldBytes(t *testing.T) {
	tests := []struct {
		name  string
		start uint32
		len   uint32
		order ByteOrder
		want  []int
	}{
		{name: "big", start: 8, len: 24, order: MostSignificantByteFirst, want: []int{3, 2, 1}},
		{name: "little", start: 8, len: 24, order: MostSignificantByteLast, want: []int{1, 2, 3}},
		{name: "opaque", start: 16, len: 16, order: Opaque, want: []int{2, 3}},
		{name: "single bit", start: 32, len: 1, order: MostSignificantByteFirst, want: []int{4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FieldBytes(PositionOf(tc.start), tc.len, tc.order))
		})
	}
}

func TestParseByteOrder(t *testing.T) {
	for _, o := range []ByteOrder{MostSignificantByteFirst, MostSignificantByteLast, Opaque} {
		got, err := ParseByteOrder(o.String())
		assert.NoError(t, err)
		assert.Equal(t, o, got)
	}
	got, err := ParseByteOrder("BIG")
	assert.NoError(t, err)
	assert.Equal(t, MostSignificantByteFirst, got)
	_, err = ParseByteOrder("middle")
	assert.Error(t, err)
}

// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package byteorder

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// ByteOrder is the packing order of a signal within a PDU.
type ByteOrder int

const (
	MostSignificantByteFirst ByteOrder = iota // big endian
	MostSignificantByteLast                   // little endian
	Opaque                                    // copied verbatim
)

func (o ByteOrder) String() string {
	switch o {
	case MostSignificantByteFirst:
		return "mostSignificantByteFirst"
	case MostSignificantByteLast:
		return "mostSignificantByteLast"
	case Opaque:
		return "opaque"
	}
	return fmt.Sprintf("ByteOrder(%d)", int(o))
}

// ParseByteOrder accepts the configuration names of a byte order, including
// the common aliases "big"/"little" (case insensitive).
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(s) {
	case "mostsignificantbytefirst", "big", "bigendian", "big_endian":
		return MostSignificantByteFirst, nil
	case "mostsignificantbytelast", "little", "littleendian", "little_endian":
		return MostSignificantByteLast, nil
	case "opaque":
		return Opaque, nil
	}
	return Opaque, fmt.Errorf("unknown byte order: %q", s)
}

// IsBigEndian reports the native byte order of the host.
func IsBigEndian() bool {
	return binary.NativeEndian.Uint16([]byte{0x00, 0x01}) == 0x0001
}

// HostOrder returns the packing order equal to the host native order.
func HostOrder() ByteOrder {
	if IsBigEndian() {
		return MostSignificantByteFirst
	}
	return MostSignificantByteLast
}

// Position is a byte index and a bit index within that byte.
type Position struct {
	Byte uint32
	Bit  uint32
}

// PositionOf converts a bit offset into a Position.
func PositionOf(offset uint32) Position {
	return Position{Byte: offset / 8, Bit: offset % 8}
}

func (p Position) Offset() uint32 {
	return p.Byte*8 + p.Bit
}

// ByteLength is the number of whole bytes needed to hold bits.
func ByteLength(bits uint32) uint32 {
	return (bits + 7) / 8
}

// AdvancePosition returns the position where a field following a field of
// length bits at start would begin. Fields occupy whole bytes, so the result
// is the same for every order.
func AdvancePosition(start Position, length uint32, order ByteOrder) Position {
	return Position{Byte: start.Byte + ByteLength(length)}
}

// FieldRange returns the half open byte range [lo, hi) occupied by a field.
func FieldRange(start Position, length uint32) (lo uint32, hi uint32) {
	return start.Byte, AdvancePosition(start, length, Opaque).Byte
}

// FieldBytes returns the PDU byte indices of a field ordered from the least
// significant byte to the most significant byte. Opaque fields are returned in
// PDU order.
func FieldBytes(start Position, length uint32, order ByteOrder) []int {
	n := int(ByteLength(length))
	base := int(start.Byte)
	idx := make([]int, n)
	for i := range n {
		if order == MostSignificantByteFirst {
			idx[i] = base + n - 1 - i
		} else {
			idx[i] = base + i
		}
	}
	return idx
}

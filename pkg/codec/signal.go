// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"github.com/boschglobal/dse.s2s/pkg/byteorder"
	"github.com/boschglobal/dse.s2s/pkg/config"
	"github.com/boschglobal/dse.s2s/pkg/errors"
)

// hostIndex returns the index, within a host ordered vector of n bytes, of the
// byte with significance i (0 = least significant).
func hostIndex(i int, n int) int {
	if byteorder.IsBigEndian() {
		return n - 1 - i
	}
	return i
}

func fieldBytes(pdu []byte, cfg config.S2SSignalConfig) ([]int, error) {
	idx := byteorder.FieldBytes(cfg.Start(), cfg.Length, cfg.PackingByteOrder)
	for _, i := range idx {
		if i >= len(pdu) {
			return nil, errors.ErrCodecOutOfBounds(cfg.Name, i, len(pdu))
		}
	}
	return idx, nil
}

// UnpackSignal extracts a signal from a PDU. The returned vector holds
// ceil(Length/8) bytes in host order, or in PDU order for opaque signals.
func UnpackSignal(pdu []byte, cfg config.S2SSignalConfig) ([]byte, error) {
	idx, err := fieldBytes(pdu, cfg)
	if err != nil {
		return nil, err
	}
	n := len(idx)
	signal := make([]byte, n)
	for i, p := range idx {
		if cfg.PackingByteOrder == byteorder.Opaque {
			signal[i] = pdu[p]
		} else {
			signal[hostIndex(i, n)] = pdu[p]
		}
	}
	return signal, nil
}

// PackSignal writes a signal into a PDU. It is the inverse of UnpackSignal.
func PackSignal(pdu []byte, signal []byte, cfg config.S2SSignalConfig) error {
	if uint32(len(signal)) != cfg.ByteLength() {
		return errors.ErrCodecSignalSize(cfg.Name, len(signal), cfg.ByteLength())
	}
	idx, err := fieldBytes(pdu, cfg)
	if err != nil {
		return err
	}
	n := len(idx)
	for i, p := range idx {
		if cfg.PackingByteOrder == byteorder.Opaque {
			pdu[p] = signal[i]
		} else {
			pdu[p] = signal[hostIndex(i, n)]
		}
	}
	return nil
}

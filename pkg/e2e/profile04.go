// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package e2e

import (
	"encoding/binary"
	"hash/crc32"
	"sync"
)

// Profile 04 header, big endian, at ProfileConfig.Offset:
//
//	0: length  uint16
//	2: counter uint16
//	4: data id uint32
//	8: crc     uint32 (CRC-32/P4 over the range excluding the crc field)
const p04HeaderLength = 12

var crc32P4 = crc32.MakeTable(0xc8df352f)

func crcP04(data []byte, offset uint32) uint32 {
	crc := crc32.Checksum(data[:offset+8], crc32P4)
	return crc32.Update(crc, crc32P4, data[offset+p04HeaderLength:])
}

type profile04 struct {
	cfg ProfileConfig
	mu  sync.Mutex

	// Protect side.
	counter uint16

	// Check side.
	sm          *StateMachine
	lastCounter uint16
	synced      bool
}

func newProfile04(cfg ProfileConfig) *profile04 {
	return &profile04{cfg: cfg, sm: NewStateMachine(cfg)}
}

func (p *profile04) Protect(data []byte) ProtectStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	off := p.cfg.Offset
	if len(data) < int(off)+p04HeaderLength || len(data) > 0xffff {
		return ProtectInputError
	}
	binary.BigEndian.PutUint16(data[off:], uint16(len(data)))
	binary.BigEndian.PutUint16(data[off+2:], p.counter)
	binary.BigEndian.PutUint32(data[off+4:], p.cfg.DataID)
	binary.BigEndian.PutUint32(data[off+8:], crcP04(data, off))
	p.counter++
	return ProtectOk
}

func (p *profile04) Check(data []byte) CheckResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	status := p.check(data)
	return CheckResult{Status: status, State: p.sm.Check(status)}
}

func (p *profile04) check(data []byte) ProfileCheckStatus {
	if data == nil {
		return CheckNoNewData
	}
	off := p.cfg.Offset
	if len(data) < int(off)+p04HeaderLength {
		return CheckError
	}
	length := binary.BigEndian.Uint16(data[off:])
	counter := binary.BigEndian.Uint16(data[off+2:])
	dataID := binary.BigEndian.Uint32(data[off+4:])
	crc := binary.BigEndian.Uint32(data[off+8:])
	if int(length) != len(data) || dataID != p.cfg.DataID || crc != crcP04(data, off) {
		return CheckError
	}

	if !p.synced {
		p.synced = true
		p.lastCounter = counter
		return CheckOk
	}
	delta := uint32(counter - p.lastCounter)
	switch {
	case delta == 0:
		return CheckRepeated
	case delta <= p.cfg.MaxDeltaCounter:
		p.lastCounter = counter
		return CheckOk
	default:
		p.lastCounter = counter
		return CheckWrongSequence
	}
}

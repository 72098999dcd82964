// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package e2e

import (
	"sync"

	"github.com/boschglobal/dse.s2s/pkg/errors"
	"github.com/sigurn/crc8"
)

// Profile 11 header:
//
//	byte 0:      crc (CRC-8/SAE-J1850)
//	byte 1 0..3: counter, 0..14
//	byte 1 4..7: high nibble of the data id (nibble mode)
const (
	p11HeaderLength = 2
	p11MaxCounter   = 0x0e
)

var crc8SAEJ1850 = crc8.MakeTable(crc8.Params{
	Poly:   0x1d,
	Init:   0xff,
	RefIn:  false,
	RefOut: false,
	XorOut: 0xff,
	Check:  0x4b,
	Name:   "CRC-8/SAE-J1850",
})

func validateProfile11(cfg ProfileConfig) error {
	switch cfg.DataIDMode {
	case DataIDModeBoth:
		if cfg.DataID > 0xffff {
			return errors.ErrE2EProfileConfig("profile 11 data id exceeds 16 bit")
		}
	case DataIDModeNibble:
		if cfg.DataID > 0x0fff {
			return errors.ErrE2EProfileConfig("profile 11 data id exceeds 12 bit in nibble mode")
		}
	default:
		return errors.ErrE2EProfileConfig("profile 11 unsupported data id mode")
	}
	if cfg.MaxDeltaCounter > p11MaxCounter {
		return errors.ErrE2EProfileConfig("profile 11 max delta counter exceeds 14")
	}
	return nil
}

type profile11 struct {
	cfg ProfileConfig
	mu  sync.Mutex

	counter uint8

	sm          *StateMachine
	lastCounter uint8
	synced      bool
}

func newProfile11(cfg ProfileConfig) *profile11 {
	return &profile11{cfg: cfg, sm: NewStateMachine(cfg)}
}

func (p *profile11) crc(data []byte) uint8 {
	id := []byte{uint8(p.cfg.DataID), uint8(p.cfg.DataID >> 8)}
	if p.cfg.DataIDMode == DataIDModeNibble {
		id[1] = 0
	}
	crc := crc8.Init(crc8SAEJ1850)
	crc = crc8.Update(crc, id, crc8SAEJ1850)
	crc = crc8.Update(crc, data[1:], crc8SAEJ1850)
	return crc8.Complete(crc, crc8SAEJ1850)
}

func (p *profile11) Protect(data []byte) ProtectStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(data) < p11HeaderLength {
		return ProtectInputError
	}
	data[1] = data[1]&0xf0 | p.counter&0x0f
	if p.cfg.DataIDMode == DataIDModeNibble {
		data[1] = data[1]&0x0f | uint8(p.cfg.DataID>>8)<<4
	}
	data[0] = p.crc(data)
	p.counter = (p.counter + 1) % (p11MaxCounter + 1)
	return ProtectOk
}

func (p *profile11) Check(data []byte) CheckResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	status := p.check(data)
	return CheckResult{Status: status, State: p.sm.Check(status)}
}

func (p *profile11) check(data []byte) ProfileCheckStatus {
	if data == nil {
		return CheckNoNewData
	}
	if len(data) < p11HeaderLength {
		return CheckError
	}
	if data[0] != p.crc(data) {
		return CheckError
	}
	if p.cfg.DataIDMode == DataIDModeNibble && data[1]>>4 != uint8(p.cfg.DataID>>8)&0x0f {
		return CheckError
	}
	counter := data[1] & 0x0f
	if counter > p11MaxCounter {
		return CheckError
	}

	if !p.synced {
		p.synced = true
		p.lastCounter = counter
		return CheckOk
	}
	delta := uint32((int(counter) - int(p.lastCounter) + p11MaxCounter + 1) % (p11MaxCounter + 1))
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

// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"log/slog"

	"github.com/boschglobal/dse.s2s/pkg/byteorder"
	"github.com/boschglobal/dse.s2s/pkg/errors"
)

// GetPdu returns the first PDU, in declaration order, which maps every one of
// the named signals.
func GetPdu(signals []string, pdus *PduTable) (IPdu, bool) {
	for _, pdu := range pdus.AllFromFront() {
		mapped := make(map[string]bool, len(pdu.Mappings))
		for _, m := range pdu.Mappings {
			mapped[m.Signal] = true
		}
		superset := true
		for _, s := range signals {
			if !mapped[s] {
				superset = false
				break
			}
		}
		if superset {
			return pdu, true
		}
	}
	return IPdu{}, false
}

type byteRange struct {
	name string
	lo   uint32
	hi   uint32
}

func (r byteRange) overlaps(o byteRange) bool {
	return r.lo < o.hi && o.lo < r.hi
}

// GetAndValidateEventConfig resolves the PDU layout of an event and validates
// it. On failure the returned config has IsConfigurationValid set to false and
// the error describes the first violation found.
func GetAndValidateEventConfig(serviceId uint16, instanceId uint16, eventId uint16,
	serviceInstances ServiceInstanceMap, signals SignalTable, signalGroups SignalGroupTable,
	pdus *PduTable) (S2SEventConfig, error) {
	key := EventKey{ServiceId: serviceId, InstanceId: instanceId, EventId: eventId}
	cfg := S2SEventConfig{}
	invalid := func(err error) (S2SEventConfig, error) {
		slog.Debug(fmt.Sprintf("Event %s: invalid configuration: %v", key, err))
		cfg.IsConfigurationValid = false
		return cfg, err
	}

	names, ok := serviceInstances[key]
	if !ok {
		return invalid(errors.ErrConfigUnknownEvent(key.String()))
	}
	if len(names) == 0 {
		return invalid(errors.ErrConfigNoSignals(key.String()))
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return invalid(errors.ErrConfigDuplicateSignal(n))
		}
		seen[n] = true
	}

	pdu, ok := GetPdu(names, pdus)
	if !ok {
		return invalid(errors.ErrConfigNoPdu(key.String()))
	}
	cfg.PduName = pdu.Name
	cfg.PduId = pdu.Id
	cfg.PduLength = pdu.Length
	cfg.UnusedBitPattern = pdu.UnusedBitPattern
	if pdu.Length == 0 {
		return invalid(errors.ErrConfigPduLength(pdu.Name))
	}

	ranges := make([]byteRange, 0, len(names))
	for _, n := range names {
		sig, ok := signals[n]
		if !ok {
			return invalid(errors.ErrConfigMissingSignal(n))
		}
		if sig.Length == 0 {
			return invalid(errors.ErrConfigSignalLength(n))
		}
		switch sig.Type {
		case Primitive:
			if sig.Length > 64 {
				return invalid(errors.ErrConfigSignalLength(n))
			}
		case Array:
			if sig.Length%8 != 0 {
				return invalid(errors.ErrConfigSignalLength(n))
			}
		}
		m, ok := pdu.Mapping(n)
		if !ok {
			return invalid(errors.ErrConfigMissingMapping(n, pdu.Name))
		}
		if m.StartPosition%8 != 0 {
			return invalid(errors.ErrConfigUnaligned(n, m.StartPosition))
		}
		lo, hi := byteorder.FieldRange(byteorder.PositionOf(m.StartPosition), sig.Length)
		ranges = append(ranges, byteRange{name: n, lo: lo, hi: hi})
		cfg.Signals = append(cfg.Signals, S2SSignalConfig{
			Name:             n,
			StartPosition:    m.StartPosition,
			Length:           sig.Length,
			PackingByteOrder: m.ByteOrder,
			Type:             sig.Type,
		})
	}

	for i := range ranges {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].overlaps(ranges[j]) {
				return invalid(errors.ErrConfigOverlap(ranges[i].name, ranges[j].name))
			}
		}
	}
	for _, r := range ranges {
		if r.hi > pdu.Length {
			return invalid(errors.ErrConfigOutOfBounds(r.name, uint64(r.hi), pdu.Length))
		}
	}

	for _, e := range pdu.E2EConfigs {
		if err := validateE2E(e, pdu.Length, signalGroups); err != nil {
			return invalid(err)
		}
		cfg.E2E = append(cfg.E2E, e)
	}

	cfg.IsConfigurationValid = true
	slog.Debug(fmt.Sprintf("Event %s: pdu=%s length=%d signals=%d e2e=%d",
		key, cfg.PduName, cfg.PduLength, len(cfg.Signals), len(cfg.E2E)))
	return cfg, nil
}

func validateE2E(e S2SE2EConfig, pduLength uint32, signalGroups SignalGroupTable) error {
	if _, ok := signalGroups[e.SignalGroup]; !ok {
		return errors.ErrConfigMissingSignalGroup(e.SignalGroup)
	}
	if e.Length == 0 {
		return errors.ErrConfigE2ERange(e.SignalGroup)
	}
	if end := uint64(e.StartPosition) + uint64(e.Length); end > uint64(pduLength) {
		return errors.ErrConfigOutOfBounds(e.SignalGroup, end, pduLength)
	}
	return nil
}

// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/boschglobal/dse.s2s/pkg/byteorder"
	"github.com/boschglobal/dse.s2s/pkg/e2e"
	"github.com/elliotchance/orderedmap/v3"
)

type TypeClassifier int

const (
	Primitive TypeClassifier = iota
	Array
)

func (t TypeClassifier) String() string {
	if t == Array {
		return "array"
	}
	return "primitive"
}

type DataTypePolicy int

const (
	Legacy DataTypePolicy = iota
	NetworkRepresentationFromComSpec
	Override
	TransformingISignal
)

func (p DataTypePolicy) String() string {
	switch p {
	case Legacy:
		return "legacy"
	case NetworkRepresentationFromComSpec:
		return "networkRepresentationFromComSpec"
	case Override:
		return "override"
	case TransformingISignal:
		return "transformingISignal"
	}
	return fmt.Sprintf("DataTypePolicy(%d)", int(p))
}

// ISignal describes a signal. Length is in bits.
type ISignal struct {
	Name   string
	Length uint32
	Type   TypeClassifier
	Policy DataTypePolicy
}

// SignalToPduMapping places a signal within a PDU. StartPosition is in bits.
type SignalToPduMapping struct {
	Signal        string
	ByteOrder     byteorder.ByteOrder
	StartPosition uint32
}

type SignalGroup struct {
	Name    string
	Signals []string
}

// S2SE2EConfig is an E2E protected byte range of a PDU. StartPosition and
// Length are in bytes.
type S2SE2EConfig struct {
	SignalGroup   string
	StartPosition uint32
	Length        uint32
	Profile       e2e.ProfileConfig
}

// IPdu describes a PDU. Length is in bytes.
type IPdu struct {
	Name             string
	Id               uint32
	Length           uint32
	UnusedBitPattern uint8
	E2EConfigs       []S2SE2EConfig
	Mappings         []SignalToPduMapping
}

func (p *IPdu) Mapping(signal string) (SignalToPduMapping, bool) {
	for _, m := range p.Mappings {
		if m.Signal == signal {
			return m, true
		}
	}
	return SignalToPduMapping{}, false
}

type EventKey struct {
	ServiceId  uint16
	InstanceId uint16
	EventId    uint16
}

func (k EventKey) String() string {
	return fmt.Sprintf("%04x:%04x:%04x", k.ServiceId, k.InstanceId, k.EventId)
}

type ServiceInstanceMap map[EventKey][]string
type SignalTable map[string]ISignal
type SignalGroupTable map[string]SignalGroup

// PduTable keeps PDUs in declaration order.
type PduTable = orderedmap.OrderedMap[string, IPdu]

func NewPduTable() *PduTable {
	return orderedmap.NewOrderedMap[string, IPdu]()
}

// Tables holds the static configuration. It is not modified after loading.
type Tables struct {
	ServiceInstances ServiceInstanceMap
	Signals          SignalTable
	SignalGroups     SignalGroupTable
	Pdus             *PduTable
}

func NewTables() *Tables {
	return &Tables{
		ServiceInstances: ServiceInstanceMap{},
		Signals:          SignalTable{},
		SignalGroups:     SignalGroupTable{},
		Pdus:             NewPduTable(),
	}
}

// EventConfig resolves and validates the configuration of one event.
func (t *Tables) EventConfig(key EventKey) (S2SEventConfig, error) {
	return GetAndValidateEventConfig(key.ServiceId, key.InstanceId, key.EventId,
		t.ServiceInstances, t.Signals, t.SignalGroups, t.Pdus)
}

// S2SSignalConfig is the flattened, per event view of a signal.
type S2SSignalConfig struct {
	Name             string
	StartPosition    uint32
	Length           uint32
	PackingByteOrder byteorder.ByteOrder
	Type             TypeClassifier
}

func (s S2SSignalConfig) Start() byteorder.Position {
	return byteorder.PositionOf(s.StartPosition)
}

func (s S2SSignalConfig) ByteOffset() uint32 {
	return s.StartPosition / 8
}

func (s S2SSignalConfig) ByteLength() uint32 {
	return byteorder.ByteLength(s.Length)
}

type S2SEventConfig struct {
	PduName              string
	PduId                uint32
	PduLength            uint32
	UnusedBitPattern     uint8
	Signals              []S2SSignalConfig
	E2E                  []S2SE2EConfig
	IsConfigurationValid bool
}

func (c *S2SEventConfig) Signal(name string) (S2SSignalConfig, bool) {
	for _, s := range c.Signals {
		if s.Name == name {
			return s, true
		}
	}
	return S2SSignalConfig{}, false
}

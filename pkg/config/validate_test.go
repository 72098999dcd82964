// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/boschglobal/dse.s2s/pkg/byteorder"
	"github.com/boschglobal/dse.s2s/pkg/e2e"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEvent = EventKey{ServiceId: 0x1234, InstanceId: 1, EventId: 0x8001}

func newTestTables() *Tables {
	t := NewTables()
	t.Signals["speed"] = ISignal{Name: "speed", Length: 16}
	t.Signals["gear"] = ISignal{Name: "gear", Length: 4}
	t.Signals["vin"] = ISignal{Name: "vin", Length: 64, Type: Array}
	t.SignalGroups["drive"] = SignalGroup{Name: "drive", Signals: []string{"speed", "gear"}}
	t.Pdus.Set("DrivePdu", IPdu{
		Name:             "DrivePdu",
		Id:               0x101,
		Length:           8,
		UnusedBitPattern: 0xff,
		Mappings: []SignalToPduMapping{
			{Signal: "speed", ByteOrder: byteorder.MostSignificantByteFirst, StartPosition: 16},
			{Signal: "gear", ByteOrder: byteorder.MostSignificantByteLast, StartPosition: 32},
		},
		E2EConfigs: []S2SE2EConfig{
			{SignalGroup: "drive", StartPosition: 0, Length: 8, Profile: e2e.ProfileConfig{Profile: e2e.Profile11}},
		},
	})
	t.ServiceInstances[testEvent] = []string{"speed", "gear"}
	return t
}

func TestGetPdu(t *testing.T) {
	pdus := NewPduTable()
	pdus.Set("P1", IPdu{Name: "P1", Length: 4, Mappings: []SignalToPduMapping{{Signal: "a"}}})
	pdus.Set("P2", IPdu{Name: "P2", Length: 8, Mappings: []SignalToPduMapping{{Signal: "a"}, {Signal: "b", StartPosition: 8}}})
	pdus.Set("P3", IPdu{Name: "P3", Length: 8, Mappings: []SignalToPduMapping{{Signal: "b"}, {Signal: "a", StartPosition: 8}}})

	tests := []struct {
		name    string
		signals []string
		want    string
		found   bool
	}{
		{name: "superset required", signals: []string{"a", "b"}, want: "P2", found: true},
		{name: "first match wins", signals: []string{"a"}, want: "P1", found: true},
		{name: "single b", signals: []string{"b"}, want: "P2", found: true},
		{name: "no match", signals: []string{"a", "c"}, found: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pdu, ok := GetPdu(tc.signals, pdus)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.want, pdu.Name)
			}
		})
	}
}

func TestGetAndValidateEventConfig(t *testing.T) {
	tables := newTestTables()
	cfg, err := tables.EventConfig(testEvent)
	require.NoError(t, err)

	want := S2SEventConfig{
		PduName:          "DrivePdu",
		PduId:            0x101,
		PduLength:        8,
		UnusedBitPattern: 0xff,
		Signals: []S2SSignalConfig{
			{Name: "speed", StartPosition: 16, Length: 16, PackingByteOrder: byteorder.MostSignificantByteFirst},
			{Name: "gear", StartPosition: 32, Length: 4, PackingByteOrder: byteorder.MostSignificantByteLast},
		},
		E2E: []S2SE2EConfig{
			{SignalGroup: "drive", StartPosition: 0, Length: 8, Profile: e2e.ProfileConfig{Profile: e2e.Profile11}},
		},
		IsConfigurationValid: true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("EventConfig mismatch (-want +got):\n%s", diff)
	}
	s, ok := cfg.Signal("speed")
	assert.True(t, ok)
	assert.Equal(t, uint32(2), s.ByteOffset())
	assert.Equal(t, uint32(2), s.ByteLength())
}

func TestGetAndValidateEventConfig_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(t *Tables)
		wantError string
	}{
		{
			name:      "unknown event",
			modify:    func(t *Tables) { delete(t.ServiceInstances, testEvent) },
			wantError: `config: "event not in service instance map: 1234:0001:8001"`,
		},
		{
			name:      "no signals",
			modify:    func(t *Tables) { t.ServiceInstances[testEvent] = []string{} },
			wantError: `config: "event has no signals: 1234:0001:8001"`,
		},
		{
			name:      "duplicate signal",
			modify:    func(t *Tables) { t.ServiceInstances[testEvent] = []string{"speed", "speed"} },
			wantError: `config: "duplicate signal: \"speed\""`,
		},
		{
			name:      "no pdu",
			modify:    func(t *Tables) { t.ServiceInstances[testEvent] = []string{"speed", "vin"} },
			wantError: `config: "no pdu maps all signals of event: 1234:0001:8001"`,
		},
		{
			name: "zero pdu length",
			modify: func(t *Tables) {
				p, _ := t.Pdus.Get("DrivePdu")
				p.Length = 0
				t.Pdus.Set("DrivePdu", p)
			},
			wantError: `config: "pdu has zero length: \"DrivePdu\""`,
		},
		{
			name:      "missing signal",
			modify:    func(t *Tables) { delete(t.Signals, "gear") },
			wantError: `config: "signal not in signal table: \"gear\""`,
		},
		{
			name:      "zero signal length",
			modify:    func(t *Tables) { t.Signals["gear"] = ISignal{Name: "gear", Length: 0} },
			wantError: `config: "signal has invalid length: \"gear\""`,
		},
		{
			name: "overlap",
			modify: func(t *Tables) {
				// speed [2,4) and gear [3,4)
				p, _ := t.Pdus.Get("DrivePdu")
				p.Mappings[1].StartPosition = 24
				t.Pdus.Set("DrivePdu", p)
			},
			wantError: `config: "ranges overlap: \"speed\" and \"gear\""`,
		},
		{
			name: "out of bounds",
			modify: func(t *Tables) {
				p, _ := t.Pdus.Get("DrivePdu")
				p.Mappings[1].StartPosition = 64
				t.Pdus.Set("DrivePdu", p)
			},
			wantError: `config: "range \"gear\" ends at byte 9 beyond pdu length 8"`,
		},
		{
			name: "unaligned",
			modify: func(t *Tables) {
				p, _ := t.Pdus.Get("DrivePdu")
				p.Mappings[1].StartPosition = 36
				t.Pdus.Set("DrivePdu", p)
			},
			wantError: `config: "signal \"gear\" start position not byte aligned: 36"`,
		},
		{
			name: "e2e range outside pdu",
			modify: func(t *Tables) {
				p, _ := t.Pdus.Get("DrivePdu")
				p.E2EConfigs[0].Length = 9
				t.Pdus.Set("DrivePdu", p)
			},
			wantError: `config: "range \"drive\" ends at byte 9 beyond pdu length 8"`,
		},
		{
			name: "e2e range wraps",
			modify: func(t *Tables) {
				p, _ := t.Pdus.Get("DrivePdu")
				p.E2EConfigs[0].StartPosition = 0xffffffff
				p.E2EConfigs[0].Length = 2
				t.Pdus.Set("DrivePdu", p)
			},
			wantError: `config: "range \"drive\" ends at byte 4294967297 beyond pdu length 8"`,
		},
		{
			name:      "e2e signal group missing",
			modify:    func(t *Tables) { delete(t.SignalGroups, "drive") },
			wantError: `config: "signal group not in signal group table: \"drive\""`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tables := newTestTables()
			tc.modify(tables)
			cfg, err := tables.EventConfig(testEvent)
			assert.False(t, cfg.IsConfigurationValid)
			require.Error(t, err)
			assert.Equal(t, tc.wantError, err.Error())
		})
	}
}

func TestGetAndValidateEventConfig_OverlapHalfOpen(t *testing.T) {
	// [0,4) and [2,6) overlap, [0,4) and [4,8) do not.
	tables := NewTables()
	tables.Signals["a"] = ISignal{Name: "a", Length: 32}
	tables.Signals["b"] = ISignal{Name: "b", Length: 32}
	tables.ServiceInstances[testEvent] = []string{"a", "b"}
	tables.Pdus.Set("P", IPdu{Name: "P", Length: 8, Mappings: []SignalToPduMapping{
		{Signal: "a", StartPosition: 0},
		{Signal: "b", StartPosition: 16},
	}})
	cfg, err := tables.EventConfig(testEvent)
	assert.Error(t, err)
	assert.False(t, cfg.IsConfigurationValid)

	tables.Pdus.Set("P", IPdu{Name: "P", Length: 8, Mappings: []SignalToPduMapping{
		{Signal: "a", StartPosition: 0},
		{Signal: "b", StartPosition: 32},
	}})
	cfg, err = tables.EventConfig(testEvent)
	assert.NoError(t, err)
	assert.True(t, cfg.IsConfigurationValid)
}

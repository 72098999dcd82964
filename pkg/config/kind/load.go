// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package kind

import (
	"fmt"
	"log/slog"
	"strings"

	schema "github.com/boschglobal/dse.schemas/code/go/dse/kind"
	"github.com/boschglobal/dse.s2s/pkg/byteorder"
	"github.com/boschglobal/dse.s2s/pkg/config"
	"github.com/boschglobal/dse.s2s/pkg/e2e"
	"github.com/boschglobal/dse.s2s/pkg/errors"
)

// Load parses the kind documents of all files and builds the configuration
// tables. PDUs keep the order in which they are declared across files.
func Load(files ...string) (*config.Tables, error) {
	docs := []KindDoc{}
	for _, f := range files {
		d, err := ParseFile(f)
		if err != nil {
			return nil, errors.ErrConfigLoad(err, f)
		}
		docs = append(docs, d...)
	}
	return Build(docs)
}

func Build(docs []KindDoc) (*config.Tables, error) {
	t := config.NewTables()
	for _, doc := range docs {
		name := doc.Metadata.Name
		var err error
		switch spec := doc.Spec.(type) {
		case *ISignalSpec:
			err = addSignal(t, name, spec)
		case *schema.SignalGroupSpec:
			sg := config.SignalGroup{Name: name}
			for _, s := range spec.Signals {
				sg.Signals = append(sg.Signals, s.Signal)
			}
			t.SignalGroups[name] = sg
		case *IPduSpec:
			err = addPdu(t, name, spec)
		case *ServiceInstanceSpec:
			for _, ev := range spec.Events {
				key := config.EventKey{ServiceId: spec.ServiceId, InstanceId: spec.InstanceId, EventId: ev.EventId}
				t.ServiceInstances[key] = ev.Signals
			}
		}
		if err != nil {
			return nil, errors.ErrConfigLoad(err, fmt.Sprintf("%s (%s/%s)", doc.File, doc.Kind, name))
		}
	}
	slog.Debug(fmt.Sprintf("Loaded: signals=%d groups=%d pdus=%d events=%d",
		len(t.Signals), len(t.SignalGroups), t.Pdus.Len(), len(t.ServiceInstances)))
	return t, nil
}

func addSignal(t *config.Tables, name string, spec *ISignalSpec) error {
	s := config.ISignal{Name: name, Length: spec.Length}
	switch strings.ToLower(spec.Type) {
	case "", "primitive":
		s.Type = config.Primitive
	case "array":
		s.Type = config.Array
	default:
		return fmt.Errorf("unknown type classifier: %q", spec.Type)
	}
	switch strings.ToLower(spec.Policy) {
	case "", "legacy":
		s.Policy = config.Legacy
	case "networkrepresentationfromcomspec":
		s.Policy = config.NetworkRepresentationFromComSpec
	case "override":
		s.Policy = config.Override
	case "transformingisignal":
		s.Policy = config.TransformingISignal
	default:
		return fmt.Errorf("unknown data type policy: %q", spec.Policy)
	}
	t.Signals[name] = s
	return nil
}

func addPdu(t *config.Tables, name string, spec *IPduSpec) error {
	if t.Pdus.Has(name) {
		return fmt.Errorf("duplicate pdu: %q", name)
	}
	pdu := config.IPdu{
		Name:             name,
		Id:               spec.Id,
		Length:           spec.Length,
		UnusedBitPattern: spec.UnusedBitPattern,
	}
	for _, m := range spec.Mappings {
		order := byteorder.Opaque
		if m.ByteOrder != "" {
			var err error
			if order, err = byteorder.ParseByteOrder(m.ByteOrder); err != nil {
				return err
			}
		}
		pdu.Mappings = append(pdu.Mappings, config.SignalToPduMapping{
			Signal:        m.Signal,
			ByteOrder:     order,
			StartPosition: m.StartPosition,
		})
	}
	for _, e := range spec.E2E {
		profile, err := profileConfig(e.Profile)
		if err != nil {
			return err
		}
		pdu.E2EConfigs = append(pdu.E2EConfigs, config.S2SE2EConfig{
			SignalGroup:   e.SignalGroup,
			StartPosition: e.StartPosition,
			Length:        e.Length,
			Profile:       profile,
		})
	}
	t.Pdus.Set(name, pdu)
	return nil
}

func profileConfig(spec ProfileSpec) (e2e.ProfileConfig, error) {
	cfg := e2e.ProfileConfig{
		DataID:               spec.DataID,
		Offset:               spec.Offset,
		MaxDeltaCounter:      spec.MaxDeltaCounter,
		Disabled:             spec.Disabled,
		WindowSize:           spec.WindowSize,
		MinOkStateInit:       spec.MinOkStateInit,
		MaxErrorStateInit:    spec.MaxErrorStateInit,
		MinOkStateValid:      spec.MinOkStateValid,
		MaxErrorStateValid:   spec.MaxErrorStateValid,
		MinOkStateInvalid:    spec.MinOkStateInvalid,
		MaxErrorStateInvalid: spec.MaxErrorStateInvalid,
	}
	if !spec.Disabled {
		p, err := e2e.ParseProfile(spec.Profile)
		if err != nil {
			return cfg, err
		}
		cfg.Profile = p
	}
	switch strings.ToLower(spec.Behavior) {
	case "", "r4_2", "r4-2":
		cfg.Behavior = e2e.BehaviorR4_2
	case "pre_r4_2", "pre-r4-2":
		cfg.Behavior = e2e.BehaviorPreR4_2
	default:
		return cfg, fmt.Errorf("unknown profile behavior: %q", spec.Behavior)
	}
	switch strings.ToLower(spec.DataIDMode) {
	case "", "both":
		cfg.DataIDMode = e2e.DataIDModeBoth
	case "nibble":
		cfg.DataIDMode = e2e.DataIDModeNibble
	default:
		return cfg, fmt.Errorf("unknown data id mode: %q", spec.DataIDMode)
	}
	return cfg, nil
}

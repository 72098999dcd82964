// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package kind

import (
	"bytes"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	schema "github.com/boschglobal/dse.schemas/code/go/dse/kind"
	"gopkg.in/yaml.v3"
)

type ISignalSpec struct {
	Length uint32 `yaml:"length"`
	Type   string `yaml:"type"`
	Policy string `yaml:"policy"`
}

type MappingSpec struct {
	Signal        string `yaml:"signal"`
	StartPosition uint32 `yaml:"startPosition"`
	ByteOrder     string `yaml:"byteOrder"`
}

type ProfileSpec struct {
	Profile              string `yaml:"profile"`
	Behavior             string `yaml:"behavior"`
	DataID               uint32 `yaml:"dataId"`
	DataIDMode           string `yaml:"dataIdMode"`
	Offset               uint32 `yaml:"offset"`
	MaxDeltaCounter      uint32 `yaml:"maxDeltaCounter"`
	Disabled             bool   `yaml:"disabled"`
	WindowSize           uint32 `yaml:"windowSize"`
	MinOkStateInit       uint32 `yaml:"minOkStateInit"`
	MaxErrorStateInit    uint32 `yaml:"maxErrorStateInit"`
	MinOkStateValid      uint32 `yaml:"minOkStateValid"`
	MaxErrorStateValid   uint32 `yaml:"maxErrorStateValid"`
	MinOkStateInvalid    uint32 `yaml:"minOkStateInvalid"`
	MaxErrorStateInvalid uint32 `yaml:"maxErrorStateInvalid"`
}

type E2ESpec struct {
	SignalGroup   string      `yaml:"signalGroup"`
	StartPosition uint32      `yaml:"startPosition"`
	Length        uint32      `yaml:"length"`
	Profile       ProfileSpec `yaml:"profile"`
}

type IPduSpec struct {
	Id               uint32        `yaml:"id"`
	Length           uint32        `yaml:"length"`
	UnusedBitPattern uint8         `yaml:"unusedBitPattern"`
	Mappings         []MappingSpec `yaml:"mappings"`
	E2E              []E2ESpec     `yaml:"e2e"`
}

type EventSpec struct {
	EventId uint16   `yaml:"eventId"`
	Signals []string `yaml:"signals"`
}

type ServiceInstanceSpec struct {
	ServiceId  uint16      `yaml:"serviceId"`
	InstanceId uint16      `yaml:"instanceId"`
	Events     []EventSpec `yaml:"events"`
}

type KindDoc struct {
	File     string
	Kind     string `yaml:"kind"`
	Metadata struct {
		Name        string                 `yaml:"name"`
		Annotations map[string]interface{} `yaml:"annotations"`
		Labels      map[string]string      `yaml:"labels"`
	} `yaml:"metadata"`
	Spec interface{} `yaml:"-"`
}

func SetSpec(kd *KindDoc) error {
	switch kd.Kind {
	case "ISignal":
		kd.Spec = new(ISignalSpec)
	case "SignalGroup":
		kd.Spec = new(schema.SignalGroupSpec)
	case "IPdu":
		kd.Spec = new(IPduSpec)
	case "ServiceInstance":
		kd.Spec = new(ServiceInstanceSpec)
	default:
		return fmt.Errorf("unknown kind: %s", kd.Kind)
	}
	return nil
}

func (kd *KindDoc) UnmarshalYAML(n *yaml.Node) error {
	type KD KindDoc
	type T struct {
		*KD  `yaml:",inline"`
		Spec yaml.Node `yaml:"spec"`
	}
	// Decode the outer document first, then the spec node into the type
	// selected by the kind.
	obj := &T{KD: (*KD)(kd)}
	if err := n.Decode(obj); err != nil {
		return err
	}
	if err := SetSpec(kd); err != nil {
		return err
	}
	return obj.Spec.Decode(kd.Spec)
}

// Decode reads all kind documents from r. Documents of unknown kinds are
// skipped. Documents of known kinds which fail to decode are skipped and
// reported in the returned error; a syntax error stops decoding.
func Decode(r io.Reader, file string) ([]KindDoc, error) {
	decoder := yaml.NewDecoder(r)
	docList := []KindDoc{}
	var errs []error
	for {
		var doc KindDoc
		if err := decoder.Decode(&doc); err != nil {
			if err == io.EOF {
				break
			}
			if strings.HasPrefix(err.Error(), "unknown kind") {
				slog.Debug(fmt.Sprintf("Decode skipped;  file=%s (%s)", file, err.Error()))
				continue
			}
			slog.Warn(fmt.Sprintf("Decode error;  file=%s kind=%s name=%s (%s)", file, doc.Kind, doc.Metadata.Name, err.Error()))
			errs = append(errs, fmt.Errorf("%s %q: %w", doc.Kind, doc.Metadata.Name, err))
			if _, ok := err.(*yaml.TypeError); !ok {
				break
			}
			continue
		}
		doc.File = file
		docList = append(docList, doc)
		slog.Debug(fmt.Sprintf("Handler:  yaml/kind=%s name=%s", doc.Kind, doc.Metadata.Name))
	}
	return docList, goerrors.Join(errs...)
}

func ParseFile(file string) ([]KindDoc, error) {
	slog.Debug(fmt.Sprintf("Parse file: %s ...", file))
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("unsupported file: %s", file)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data), file)
}

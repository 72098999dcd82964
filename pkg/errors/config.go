// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package errors

import "fmt"

var (
	ErrConfigurationInvalid = fmt.Errorf("configuration invalid")
	ErrConfigUnknownEvent   = func(key string) error {
		return NewConfigError(nil, fmt.Sprintf("event not in service instance map: %s", key))
	}
	ErrConfigNoSignals = func(key string) error {
		return NewConfigError(nil, fmt.Sprintf("event has no signals: %s", key))
	}
	ErrConfigDuplicateSignal = func(name string) error {
		return NewConfigError(nil, fmt.Sprintf("duplicate signal: %q", name))
	}
	ErrConfigNoPdu = func(key string) error {
		return NewConfigError(nil, fmt.Sprintf("no pdu maps all signals of event: %s", key))
	}
	ErrConfigPduLength = func(pdu string) error {
		return NewConfigError(nil, fmt.Sprintf("pdu has zero length: %q", pdu))
	}
	ErrConfigMissingSignal = func(name string) error {
		return NewConfigError(nil, fmt.Sprintf("signal not in signal table: %q", name))
	}
	ErrConfigSignalLength = func(name string) error {
		return NewConfigError(nil, fmt.Sprintf("signal has invalid length: %q", name))
	}
	ErrConfigMissingMapping = func(name string, pdu string) error {
		return NewConfigError(nil, fmt.Sprintf("signal %q not mapped in pdu %q", name, pdu))
	}
	ErrConfigUnaligned = func(name string, start uint32) error {
		return NewConfigError(nil, fmt.Sprintf("signal %q start position not byte aligned: %d", name, start))
	}
	ErrConfigOverlap = func(a string, b string) error {
		return NewConfigError(nil, fmt.Sprintf("ranges overlap: %q and %q", a, b))
	}
	ErrConfigOutOfBounds = func(name string, end uint64, length uint32) error {
		return NewConfigError(nil, fmt.Sprintf("range %q ends at byte %d beyond pdu length %d", name, end, length))
	}
	ErrConfigMissingSignalGroup = func(name string) error {
		return NewConfigError(nil, fmt.Sprintf("signal group not in signal group table: %q", name))
	}
	ErrConfigE2ERange = func(group string) error {
		return NewConfigError(nil, fmt.Sprintf("e2e range has zero length: %q", group))
	}
	ErrConfigLoad = func(e error, file string) error { return NewConfigError(e, fmt.Sprintf("load failed: %s", file)) }
)

type ConfigError struct {
	msg string
	err error
}

func NewConfigError(e error, msg string) *ConfigError {
	return &ConfigError{msg: msg, err: e}
}

func (e *ConfigError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("config: %q - %v", e.msg, e.err)
	} else {
		return fmt.Sprintf("config: %q", e.msg)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.err
}

// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package errors

import "fmt"

var (
	ErrCodecOutOfBounds = func(name string, index int, length int) error {
		return NewCodecError(nil, fmt.Sprintf("signal %q byte %d outside pdu of length %d", name, index, length))
	}
	ErrCodecSignalSize = func(name string, got int, want uint32) error {
		return NewCodecError(nil, fmt.Sprintf("signal %q has %d bytes, expected %d", name, got, want))
	}
	ErrCodecPduSize = func(got int, want uint32) error {
		return NewCodecError(nil, fmt.Sprintf("pdu has %d bytes, expected %d", got, want))
	}
	ErrCodecUnknownSignal = func(name string) error {
		return NewCodecError(nil, fmt.Sprintf("signal not part of event: %q", name))
	}
	ErrCodecEncode = func(e error) error { return NewCodecError(e, "sample encode failed") }
	ErrCodecDecode = func(e error) error { return NewCodecError(e, "sample decode failed") }
)

type CodecError struct {
	msg string
	err error
}

func NewCodecError(e error, msg string) *CodecError {
	return &CodecError{msg: msg, err: e}
}

func (e *CodecError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("codec: %q - %v", e.msg, e.err)
	} else {
		return fmt.Sprintf("codec: %q", e.msg)
	}
}

func (e *CodecError) Unwrap() error {
	return e.err
}

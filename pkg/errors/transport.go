// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package errors

import "fmt"

var (
	ErrNoMessage        = fmt.Errorf("no messages available")
	ErrTransportFull    = fmt.Errorf("transport queue full")
	ErrAllocationFailed = fmt.Errorf("buffer pool exhausted")
	ErrNotConnected     = fmt.Errorf("not connected")
	ErrTransportConnect = func(e error) error { return NewTransportError(e, "connect failed") }
	ErrTransportSend    = func(e error) error { return NewTransportError(e, "send failed") }
	ErrTransportReceive = func(e error) error { return NewTransportError(e, "receive failed") }
	ErrTransportDecode  = func(m string) error { return NewTransportError(nil, m) }
)

type TransportError struct {
	msg string
	err error
}

func NewTransportError(e error, msg string) *TransportError {
	return &TransportError{msg: msg, err: e}
}

func (e *TransportError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("transport: %q - %v", e.msg, e.err)
	} else {
		return fmt.Sprintf("transport: %q", e.msg)
	}
}

func (e *TransportError) Unwrap() error {
	return e.err
}

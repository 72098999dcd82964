// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"fmt"

	"github.com/boschglobal/dse.s2s/pkg/errors"
)

const DefaultMaxSampleSize = 4096

// Transport moves opaque PDU buffers. TryReceive does not block and returns
// errors.ErrNoMessage when nothing is available.
type Transport interface {
	MaxSampleSize() int
	Allocate(size int) ([]byte, error)
	Send(buf []byte) error
	TryReceive() ([]byte, error)
}

// StubTransport is an in-memory transport. With SendToStack set, sent
// buffers are queued on the Stack and can be received again.
type StubTransport struct {
	Stack       [][]byte
	Trace       [][]byte
	SendToStack bool
	// Slots limits the number of queued buffers, 0 is unlimited.
	Slots   int
	MaxSize int
}

func (s *StubTransport) MaxSampleSize() int {
	if s.MaxSize == 0 {
		return DefaultMaxSampleSize
	}
	return s.MaxSize
}

func (s *StubTransport) full() bool {
	return s.Slots > 0 && len(s.Stack) >= s.Slots
}

func (s *StubTransport) Allocate(size int) ([]byte, error) {
	if size > s.MaxSampleSize() {
		return nil, errors.NewTransportError(errors.ErrAllocationFailed,
			fmt.Sprintf("size %d exceeds %d", size, s.MaxSampleSize()))
	}
	if s.full() {
		return nil, errors.ErrAllocationFailed
	}
	return make([]byte, size), nil
}

func (s *StubTransport) Send(buf []byte) error {
	// Deep copy, the caller may reuse buf.
	_buf := make([]byte, len(buf))
	copy(_buf, buf)

	if s.SendToStack {
		if s.full() {
			return errors.ErrTransportFull
		}
		s.Stack = append(s.Stack, _buf)
	}
	s.Trace = append(s.Trace, _buf)
	return nil
}

func (s *StubTransport) TryReceive() ([]byte, error) {
	if len(s.Stack) > 0 {
		m := s.Stack[0]
		s.Stack = s.Stack[1:]
		return m, nil
	} else {
		return nil, errors.ErrNoMessage
	}
}

func (s *StubTransport) PushMessage(buf []byte) {
	_buf := make([]byte, len(buf))
	copy(_buf, buf)
	s.Stack = append(s.Stack, _buf)
}

func (s *StubTransport) TraceMessage(index int) ([]byte, error) {
	if len(s.Trace) > index {
		return s.Trace[index], nil
	} else {
		return nil, fmt.Errorf("no message at index (%d) available on transport Trace", index)
	}
}

func (s *StubTransport) Reset() {
	s.Stack = [][]byte{}
	s.Trace = [][]byte{}
}

//go:generate mockgen -destination=mock_transport/transport.go -package=mock_transport github.com/boschglobal/dse.s2s/pkg/transport Transport

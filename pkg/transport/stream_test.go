// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"bytes"
	"testing"

	"github.com/boschglobal/dse.s2s/pkg/errors"
	"github.com/boschglobal/dse.s2s/pkg/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordTrace struct {
	tx []message.PduMessage
	rx []message.PduMessage
}

func (r *recordTrace) TraceTX(msg message.PduMessage) { r.tx = append(r.tx, msg) }
func (r *recordTrace) TraceRX(msg message.PduMessage) { r.rx = append(r.rx, msg) }

func TestStreamTransport_Configure(t *testing.T) {
	_, err := NewStreamTransport(nil, 1, 1, 1)
	assert.Error(t, err)
}

func TestStreamTransport_Loopback(t *testing.T) {
	s := new([]byte)
	tx, err := NewStreamTransport(s, 0x101, 1, 5)
	require.NoError(t, err)
	rx, err := NewStreamTransport(s, 0x101, 2, 5)
	require.NoError(t, err)
	other, err := NewStreamTransport(s, 0x202, 3, 5)
	require.NoError(t, err)
	tr := &recordTrace{}
	tx.Trace = tr
	rx.Trace = tr

	_, err = rx.TryReceive()
	assert.Equal(t, errors.ErrNoMessage, err)

	require.NoError(t, tx.Send([]byte{1, 2}))
	require.NoError(t, other.Send([]byte{9}))
	require.NoError(t, tx.Send([]byte{3, 4}))

	// Own PDUs are not received.
	_, err = tx.TryReceive()
	assert.Equal(t, errors.ErrNoMessage, err)

	msg, err := rx.TryReceive()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, msg)
	msg, err = rx.TryReceive()
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4}, msg)
	_, err = rx.TryReceive()
	assert.Equal(t, errors.ErrNoMessage, err)

	// The other PDU remains on the stream.
	assert.NotEmpty(t, *s)
	otherRx, _ := NewStreamTransport(s, 0x202, 4, 5)
	msg, err = otherRx.TryReceive()
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, msg)
	assert.Empty(t, *s)

	require.Len(t, tr.tx, 2)
	assert.Equal(t, uint32(1), tr.tx[0].Swc_id)
	require.Len(t, tr.rx, 2)
	assert.Equal(t, uint32(5), tr.rx[1].Ecu_id)
}

func TestStreamTransport_SendCopies(t *testing.T) {
	s := new([]byte)
	tx, _ := NewStreamTransport(s, 1, 0, 0)
	buf := []byte{1, 2, 3}
	require.NoError(t, tx.Send(buf))
	buf[0] = 0xff
	msg, err := tx.TryReceive()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, msg)

	tx.MaxSize = 2
	assert.Error(t, tx.Send(bytes.Repeat([]byte{0}, 3)))
}

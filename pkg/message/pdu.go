// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package message

// PduMessage is a PDU as carried by a network stream.
type PduMessage struct {
	Id      uint32
	Payload []byte
	Swc_id  uint32
	Ecu_id  uint32
}

// Clone returns a deep copy of the message.
func (m PduMessage) Clone() PduMessage {
	_payload := make([]byte, len(m.Payload))
	copy(_payload, m.Payload)
	m.Payload = _payload
	return m
}

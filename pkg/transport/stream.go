// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"fmt"

	"github.com/boschglobal/dse.s2s/internal/schema/stream"
	"github.com/boschglobal/dse.s2s/pkg/errors"
	"github.com/boschglobal/dse.s2s/pkg/message"
	"github.com/boschglobal/dse.s2s/pkg/trace"
	flatbuffers "github.com/google/flatbuffers/go"
)

// StreamTransport carries PDUs in a size prefixed flatbuffers stream held in
// a shared buffer. Several endpoints may attach to the same buffer; an
// endpoint never receives PDUs sent with its own SwcId (when non zero).
type StreamTransport struct {
	PduId   uint32
	SwcId   uint32
	EcuId   uint32
	MaxSize int
	Trace   trace.Trace

	stream  *[]byte
	builder *flatbuffers.Builder
	rx      [][]byte
}

func NewStreamTransport(s *[]byte, pduId uint32, swcId uint32, ecuId uint32) (*StreamTransport, error) {
	if s == nil {
		return nil, fmt.Errorf("no stream provided")
	}
	return &StreamTransport{
		PduId:   pduId,
		SwcId:   swcId,
		EcuId:   ecuId,
		stream:  s,
		builder: flatbuffers.NewBuilder(1024),
	}, nil
}

func (t *StreamTransport) MaxSampleSize() int {
	if t.MaxSize == 0 {
		return DefaultMaxSampleSize
	}
	return t.MaxSize
}

func (t *StreamTransport) Allocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (t *StreamTransport) read() []message.PduMessage {
	var msgs []message.PduMessage
	if len(*t.stream) < 2*flatbuffers.SizeUint32 {
		return msgs
	}
	_stream := stream.GetSizePrefixedRootAsStream(*t.stream, 0)
	for i := range _stream.PdusLength() {
		obj := new(stream.Pdu)
		if !_stream.Pdus(obj, i) {
			break
		}
		msg := message.PduMessage{
			Id:      obj.Id(),
			Swc_id:  obj.SwcId(),
			Ecu_id:  obj.EcuId(),
			Payload: obj.PayloadBytes(),
		}
		msgs = append(msgs, msg.Clone())
	}
	return msgs
}

func (t *StreamTransport) write(msgs []message.PduMessage) {
	t.builder.Reset()
	pdus := make([]flatbuffers.UOffsetT, 0, len(msgs))
	for _, msg := range msgs {
		payload := t.builder.CreateByteVector(msg.Payload)
		stream.PduStart(t.builder)
		stream.PduAddId(t.builder, msg.Id)
		stream.PduAddPayload(t.builder, payload)
		stream.PduAddSwcId(t.builder, msg.Swc_id)
		stream.PduAddEcuId(t.builder, msg.Ecu_id)
		pdus = append(pdus, stream.PduEnd(t.builder))
	}
	stream.StreamStartPdusVector(t.builder, len(pdus))
	for i := len(pdus) - 1; i >= 0; i-- {
		t.builder.PrependUOffsetT(pdus[i])
	}
	pdusVec := t.builder.EndVector(len(pdus))
	stream.StreamStart(t.builder)
	stream.StreamAddPdus(t.builder, pdusVec)
	t.builder.FinishSizePrefixed(stream.StreamEnd(t.builder))

	buf := t.builder.FinishedBytes()
	_buf := make([]byte, len(buf))
	copy(_buf, buf)
	*t.stream = _buf
}

// Send appends the PDU to the stream.
func (t *StreamTransport) Send(buf []byte) error {
	if len(buf) > t.MaxSampleSize() {
		return errors.ErrTransportSend(fmt.Errorf("pdu size %d exceeds %d", len(buf), t.MaxSampleSize()))
	}
	msg := message.PduMessage{Id: t.PduId, Payload: buf, Swc_id: t.SwcId, Ecu_id: t.EcuId}.Clone()
	msgs := append(t.read(), msg)
	t.write(msgs)
	if t.Trace != nil {
		t.Trace.TraceTX(msg)
	}
	return nil
}

func (t *StreamTransport) own(msg message.PduMessage) bool {
	return t.SwcId != 0 && msg.Swc_id == t.SwcId
}

// TryReceive returns the next PDU addressed to this endpoint. Received PDUs
// are removed from the stream.
func (t *StreamTransport) TryReceive() ([]byte, error) {
	if len(t.rx) == 0 {
		var keep []message.PduMessage
		consumed := false
		for _, msg := range t.read() {
			if msg.Id != t.PduId || t.own(msg) {
				keep = append(keep, msg)
				continue
			}
			if t.Trace != nil {
				t.Trace.TraceRX(msg)
			}
			t.rx = append(t.rx, msg.Payload)
			consumed = true
		}
		if consumed {
			if len(keep) == 0 {
				t.Truncate()
			} else {
				t.write(keep)
			}
		}
	}
	if len(t.rx) == 0 {
		return nil, errors.ErrNoMessage
	}
	m := t.rx[0]
	t.rx = t.rx[1:]
	return m, nil
}

func (t *StreamTransport) Truncate() {
	t.builder.Reset()
	*t.stream = make([]byte, 0)
}

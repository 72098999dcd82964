// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package s2s

import (
	"fmt"
	"log/slog"

	"github.com/boschglobal/dse.s2s/pkg/config"
	"github.com/boschglobal/dse.s2s/pkg/errors"
	"github.com/boschglobal/dse.s2s/pkg/message"
	"github.com/boschglobal/dse.s2s/pkg/metrics"
	"github.com/boschglobal/dse.s2s/pkg/trace"
	"github.com/boschglobal/dse.s2s/pkg/transport"
)

// Publisher translates samples of T into PDUs and sends them.
type Publisher[T any] struct {
	cfg        config.S2SEventConfig
	transport  transport.Transport
	encoder    SampleEncoder[T]
	protectors []E2EProtectorConfig
	metrics    *metrics.Metrics
	trace      trace.Trace
}

// NewPublisher creates a publisher for a resolved event config. An invalid
// config is accepted; every Send then fails without using the transport.
func NewPublisher[T any](cfg config.S2SEventConfig, t transport.Transport, enc SampleEncoder[T], opts ...Option) (*Publisher[T], error) {
	o := newOptions(opts)
	p := &Publisher[T]{
		cfg:        cfg,
		transport:  t,
		encoder:    enc,
		protectors: o.protectors,
		metrics:    o.metrics,
		trace:      o.trace,
	}
	if cfg.IsConfigurationValid && !o.e2eSet {
		var err error
		if p.protectors, err = NewE2EProtectorConfigs(cfg); err != nil {
			return nil, err
		}
	}
	slog.Debug(fmt.Sprintf("Publisher: pdu=%s valid=%t protectors=%d", cfg.PduName, cfg.IsConfigurationValid, len(p.protectors)))
	return p, nil
}

func (p *Publisher[T]) fail(code errors.ComErrc, e error, msg string) error {
	if p.metrics != nil {
		p.metrics.SendErrorsTotal.WithLabelValues(p.cfg.PduName, code.String()).Inc()
	}
	slog.Debug(fmt.Sprintf("Publisher: pdu=%s send failed: %s: %v", p.cfg.PduName, msg, e))
	return errors.NewComError(code, e, msg)
}

// Send packs the sample into a newly allocated PDU, applies E2E protection
// and passes the PDU to the transport.
func (p *Publisher[T]) Send(sample T) error {
	if !p.cfg.IsConfigurationValid {
		return p.fail(errors.ComErrcCommunicationStackError, errors.ErrConfigurationInvalid, "send")
	}
	size := int(p.cfg.PduLength)
	if size > p.transport.MaxSampleSize() {
		return p.fail(errors.ComErrcMaxSampleSizeExceeded,
			fmt.Errorf("pdu length %d exceeds %d", size, p.transport.MaxSampleSize()), "allocate")
	}
	buf, err := p.transport.Allocate(size)
	if err != nil {
		return p.fail(errors.ComErrcSampleAllocationFailure, err, "allocate")
	}
	if len(buf) != size {
		return p.fail(errors.ComErrcSampleAllocationFailure, errors.ErrCodecPduSize(len(buf), p.cfg.PduLength), "allocate")
	}
	for i := range buf {
		buf[i] = p.cfg.UnusedBitPattern
	}

	w := newSignalWriter(&p.cfg)
	if err := p.encoder.EncodeSample(sample, w); err != nil {
		return p.fail(errors.ComErrcCommunicationStackError, errors.ErrCodecEncode(err), "encode")
	}
	if err := w.pack(buf); err != nil {
		return p.fail(errors.ComErrcCommunicationStackError, err, "pack")
	}
	if err := protectAll(buf, p.protectors); err != nil {
		return p.fail(errors.ComErrcCommunicationStackError, err, "protect")
	}

	if p.trace != nil {
		p.trace.TraceTX(message.PduMessage{Id: p.cfg.PduId, Payload: buf})
	}
	if err := p.transport.Send(buf); err != nil {
		return p.fail(errors.ComErrcCommunicationLinkError, err, "send")
	}
	if p.metrics != nil {
		p.metrics.SamplesSentTotal.WithLabelValues(p.cfg.PduName).Inc()
	}
	return nil
}

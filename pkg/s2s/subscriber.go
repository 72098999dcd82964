// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package s2s

import (
	goerrors "errors"
	"fmt"
	"log/slog"

	"github.com/boschglobal/dse.s2s/pkg/config"
	"github.com/boschglobal/dse.s2s/pkg/e2e"
	"github.com/boschglobal/dse.s2s/pkg/errors"
	"github.com/boschglobal/dse.s2s/pkg/message"
	"github.com/boschglobal/dse.s2s/pkg/metrics"
	"github.com/boschglobal/dse.s2s/pkg/trace"
	"github.com/boschglobal/dse.s2s/pkg/transport"
)

// Subscriber receives PDUs and translates them into samples of T.
type Subscriber[T any] struct {
	cfg       config.S2SEventConfig
	transport transport.Transport
	decoder   SampleDecoder[T]
	checkers  []E2ECheckerConfig
	pool      *SamplePool
	metrics   *metrics.Metrics
	trace     trace.Trace
}

// NewSubscriber creates a subscriber for a resolved event config. An invalid
// config is accepted; every receive then fails without using the transport.
func NewSubscriber[T any](cfg config.S2SEventConfig, t transport.Transport, dec SampleDecoder[T], opts ...Option) (*Subscriber[T], error) {
	o := newOptions(opts)
	s := &Subscriber[T]{
		cfg:       cfg,
		transport: t,
		decoder:   dec,
		checkers:  o.checkers,
		pool:      NewSamplePool(o.poolSize),
		metrics:   o.metrics,
		trace:     o.trace,
	}
	if cfg.IsConfigurationValid && !o.e2eSet {
		var err error
		if s.checkers, err = NewE2ECheckerConfigs(cfg); err != nil {
			return nil, err
		}
	}
	slog.Debug(fmt.Sprintf("Subscriber: pdu=%s valid=%t checkers=%d pool=%d",
		cfg.PduName, cfg.IsConfigurationValid, len(s.checkers), s.pool.Capacity()))
	return s, nil
}

func (s *Subscriber[T]) Pool() *SamplePool {
	return s.pool
}

func (s *Subscriber[T]) fail(code errors.ComErrc, e error, msg string) error {
	if s.metrics != nil {
		s.metrics.ReceiveErrorsTotal.WithLabelValues(s.cfg.PduName, code.String()).Inc()
	}
	slog.Debug(fmt.Sprintf("Subscriber: pdu=%s receive failed: %s: %v", s.cfg.PduName, msg, e))
	return errors.NewComError(code, e, msg)
}

// GetSample polls the transport once. When no PDU is available ok is false
// and err is nil. A PDU failing the E2E check is returned as a sample with
// the failing status and a zero Value.
func (s *Subscriber[T]) GetSample() (sample *SamplePtr[T], ok bool, err error) {
	if !s.cfg.IsConfigurationValid {
		return nil, false, s.fail(errors.ComErrcCommunicationStackError, errors.ErrConfigurationInvalid, "receive")
	}
	if s.pool.Exhausted() {
		return nil, false, s.fail(errors.ComErrcMaxSamplesReached, nil, "receive")
	}

	buf, err := s.transport.TryReceive()
	if goerrors.Is(err, errors.ErrNoMessage) {
		checkNoData(s.checkers)
		return nil, false, nil
	} else if err != nil {
		return nil, false, s.fail(errors.ComErrcCommunicationLinkError, err, "receive")
	}
	if s.trace != nil {
		s.trace.TraceRX(message.PduMessage{Id: s.cfg.PduId, Payload: buf})
	}
	if len(buf) != int(s.cfg.PduLength) {
		return nil, false, s.fail(errors.ComErrcCommunicationStackError, errors.ErrCodecPduSize(len(buf), s.cfg.PduLength), "receive")
	}

	result, results := checkAll(buf, s.checkers)
	if s.metrics != nil {
		for _, r := range results {
			s.metrics.E2EChecksTotal.WithLabelValues(s.cfg.PduName, r.Status.String()).Inc()
		}
	}

	var value T
	if result.Status == e2e.CheckOk || result.Status == e2e.CheckDisabled {
		r, err := unpackSignals(buf, &s.cfg)
		if err != nil {
			return nil, false, s.fail(errors.ComErrcCommunicationStackError, err, "unpack")
		}
		if value, err = s.decoder.DecodeSample(r); err != nil {
			return nil, false, s.fail(errors.ComErrcCommunicationStackError, errors.ErrCodecDecode(err), "decode")
		}
	} else {
		slog.Debug(fmt.Sprintf("Subscriber: pdu=%s e2e check failed: status=%s state=%s",
			s.cfg.PduName, result.Status, result.State))
	}

	if !s.pool.acquire() {
		return nil, false, s.fail(errors.ComErrcMaxSamplesReached, nil, "receive")
	}
	if s.metrics != nil {
		s.metrics.SamplesReceivedTotal.WithLabelValues(s.cfg.PduName).Inc()
	}
	return &SamplePtr[T]{
		Value:              value,
		ProfileCheckStatus: result.Status,
		SMState:            result.State,
		pool:               s.pool,
	}, true, nil
}

// GetNewSamples polls until no PDU is available or maxSamples samples were
// handed to f, and returns the number of samples handled.
func (s *Subscriber[T]) GetNewSamples(f func(*SamplePtr[T]), maxSamples int) (int, error) {
	n := 0
	for n < maxSamples {
		sample, ok, err := s.GetSample()
		if err != nil {
			return n, err
		}
		if !ok {
			break
		}
		f(sample)
		n++
	}
	return n, nil
}

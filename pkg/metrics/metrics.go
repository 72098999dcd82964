// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SamplesSentTotalMeta = MetricMeta{
		Name:   "s2s_samples_sent_total",
		Help:   "Total number of samples sent.",
		Labels: []string{"pdu"},
	}
	SendErrorsTotalMeta = MetricMeta{
		Name:   "s2s_send_errors_total",
		Help:   "Total number of failed sends.",
		Labels: []string{"pdu", "code"},
	}
	SamplesReceivedTotalMeta = MetricMeta{
		Name:   "s2s_samples_received_total",
		Help:   "Total number of samples received.",
		Labels: []string{"pdu"},
	}
	ReceiveErrorsTotalMeta = MetricMeta{
		Name:   "s2s_receive_errors_total",
		Help:   "Total number of failed receives.",
		Labels: []string{"pdu", "code"},
	}
	E2EChecksTotalMeta = MetricMeta{
		Name:   "s2s_e2e_checks_total",
		Help:   "Total number of E2E check results by status.",
		Labels: []string{"pdu", "status"},
	}
)

type MetricMeta struct {
	Name   string
	Help   string
	Labels []string
}

func (mm *MetricMeta) NewCounterVec(f promauto.Factory) *prometheus.CounterVec {
	return f.NewCounterVec(
		prometheus.CounterOpts{
			Name: mm.Name,
			Help: mm.Help,
		},
		mm.Labels,
	)
}

// Metrics defines the metrics exported by publishers and subscribers.
type Metrics struct {
	SamplesSentTotal     *prometheus.CounterVec
	SendErrorsTotal      *prometheus.CounterVec
	SamplesReceivedTotal *prometheus.CounterVec
	ReceiveErrorsTotal   *prometheus.CounterVec
	E2EChecksTotal       *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them with reg. A nil reg
// creates unregistered metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SamplesSentTotal:     SamplesSentTotalMeta.NewCounterVec(f),
		SendErrorsTotal:      SendErrorsTotalMeta.NewCounterVec(f),
		SamplesReceivedTotal: SamplesReceivedTotalMeta.NewCounterVec(f),
		ReceiveErrorsTotal:   ReceiveErrorsTotalMeta.NewCounterVec(f),
		E2EChecksTotal:       E2EChecksTotalMeta.NewCounterVec(f),
	}
}

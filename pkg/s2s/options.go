// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package s2s

import (
	"github.com/boschglobal/dse.s2s/pkg/metrics"
	"github.com/boschglobal/dse.s2s/pkg/trace"
)

type options struct {
	metrics    *metrics.Metrics
	trace      trace.Trace
	poolSize   int
	protectors []E2EProtectorConfig
	checkers   []E2ECheckerConfig
	e2eSet     bool
}

type Option func(*options)

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func WithTrace(t trace.Trace) Option {
	return func(o *options) { o.trace = t }
}

// WithPoolSize sets the number of samples a subscriber may hand out.
func WithPoolSize(n int) Option {
	return func(o *options) { o.poolSize = n }
}

// WithProtectors replaces the protectors created from the event config.
func WithProtectors(p []E2EProtectorConfig) Option {
	return func(o *options) {
		o.protectors = p
		o.e2eSet = true
	}
}

// WithCheckers replaces the checkers created from the event config.
func WithCheckers(c []E2ECheckerConfig) Option {
	return func(o *options) {
		o.checkers = c
		o.e2eSet = true
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package s2s

import (
	"sync"

	"github.com/boschglobal/dse.s2s/pkg/e2e"
)

const DefaultPoolSize = 8

// SamplePool bounds the number of samples held by the application.
type SamplePool struct {
	mu       sync.Mutex
	capacity int
	inUse    int
}

func NewSamplePool(capacity int) *SamplePool {
	if capacity <= 0 {
		capacity = DefaultPoolSize
	}
	return &SamplePool{capacity: capacity}
}

func (p *SamplePool) Capacity() int {
	return p.capacity
}

func (p *SamplePool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inUse
}

func (p *SamplePool) Exhausted() bool {
	return p.InUse() >= p.capacity
}

func (p *SamplePool) acquire() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inUse >= p.capacity {
		return false
	}
	p.inUse++
	return true
}

func (p *SamplePool) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inUse > 0 {
		p.inUse--
	}
}

// SamplePtr holds a received sample and its pool slot. Value is the zero
// value when the E2E check failed.
type SamplePtr[T any] struct {
	Value              T
	ProfileCheckStatus e2e.ProfileCheckStatus
	SMState            e2e.SMState

	pool *SamplePool
	once sync.Once
}

// Release returns the slot to the pool. Further calls have no effect.
func (s *SamplePtr[T]) Release() {
	s.once.Do(s.pool.release)
}

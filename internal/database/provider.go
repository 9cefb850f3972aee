// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"sync/atomic"

	"github.com/tomtom215/marquee/internal/metrics"
)

// Provider publishes the current MovieStore to request handlers. The
// connector service sets it once MongoDB is reachable and clears it on
// shutdown; handlers calling Store before that receive ErrNotReady.
//
// Safe for concurrent use.
type Provider struct {
	current atomic.Pointer[storeRef]
}

type storeRef struct {
	store MovieStore
}

// NewProvider returns an empty provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Set publishes store. A nil store is equivalent to Clear.
func (p *Provider) Set(store MovieStore) {
	if store == nil {
		p.Clear()
		return
	}
	p.current.Store(&storeRef{store: store})
	metrics.SetDBConnected(true)
}

// Clear withdraws the published store.
func (p *Provider) Clear() {
	p.current.Store(nil)
	metrics.SetDBConnected(false)
}

// Store returns the published store or ErrNotReady.
func (p *Provider) Store() (MovieStore, error) {
	ref := p.current.Load()
	if ref == nil {
		return nil, ErrNotReady
	}
	return ref.store, nil
}

// Ready reports whether a store is published.
func (p *Provider) Ready() bool {
	return p.current.Load() != nil
}

// CircuitState returns the breaker state of the published store, or "" when
// the store has no breaker or none is published.
func (p *Provider) CircuitState() string {
	ref := p.current.Load()
	if ref == nil {
		return ""
	}
	if s, ok := ref.store.(interface{ State() string }); ok {
		return s.State()
	}
	return ""
}

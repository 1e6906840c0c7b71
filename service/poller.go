package service

import (
	"context"
	"log"
	"sync"
	"time"
)

// Refresh cadences per entity group while the consuming screen is active.
const (
	CatalogPollInterval = 5 * time.Second
	OrdersPollInterval  = 30 * time.Second
	UsersPollInterval   = 60 * time.Second
)

// Poller runs one cancellable polling scope per entity group. Starting a
// scope for a group cancels the previous scope for that group, so two
// pollers for the same entity type never run side by side. Stopping a scope
// stops scheduling further cycles; it does not abort an in-flight pull, and
// overlapping pulls across a restart are tolerated (the later response just
// overwrites state again).
type Poller struct {
	mu     sync.Mutex
	scopes map[string]context.CancelFunc
}

// NewPoller creates an empty poller.
func NewPoller() *Poller {
	return &Poller{scopes: make(map[string]context.CancelFunc)}
}

// StartScope begins polling pull every interval under the given scope name.
// The pull receives the parent ctx, not the scope's, so cancelling the scope
// only stops the schedule.
func (p *Poller) StartScope(ctx context.Context, name string, interval time.Duration, pull func(ctx context.Context) error) {
	p.mu.Lock()
	if cancel, ok := p.scopes[name]; ok {
		cancel()
	}
	scopeCtx, cancel := context.WithCancel(context.Background())
	p.scopes[name] = cancel
	p.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-scopeCtx.Done():
				return
			case <-ticker.C:
				if err := pull(ctx); err != nil {
					log.Printf("⚠️ poll %s: %v", name, err)
				}
			}
		}
	}()
}

// StopScope cancels the scope with the given name, if any.
func (p *Poller) StopScope(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cancel, ok := p.scopes[name]; ok {
		cancel()
		delete(p.scopes, name)
	}
}

// StopAll cancels every active scope.
func (p *Poller) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for name, cancel := range p.scopes {
		cancel()
		delete(p.scopes, name)
	}
}

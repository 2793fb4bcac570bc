package revalidate

import (
	"context"
	"sync"

	"github.com/vfg2006/invoicing-dashboard/pkg/log"
)

// Revalidator marks the cached view rendered at a path as stale.
type Revalidator interface {
	Revalidate(ctx context.Context, path string)
}

// Listener is notified after path moved to version.
type Listener func(path string, version uint64)

// Hub keeps a version counter per path. Every Revalidate bumps the counter
// and notifies the listeners, so a renderer can compare the version it
// rendered against the current one.
type Hub struct {
	mu        sync.RWMutex
	versions  map[string]uint64
	listeners []Listener
}

func NewHub() *Hub {
	return &Hub{
		versions: make(map[string]uint64),
	}
}

func (h *Hub) Revalidate(ctx context.Context, path string) {
	h.mu.Lock()
	h.versions[path]++
	version := h.versions[path]
	listeners := make([]Listener, len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		"path":    path,
		"version": version,
	}).Debug("view revalidated")

	for _, listener := range listeners {
		listener(path, version)
	}
}

// Version returns the current version of path; zero means never revalidated.
func (h *Hub) Version(path string) uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.versions[path]
}

// Subscribe registers listener for every later revalidation.
func (h *Hub) Subscribe(listener Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.listeners = append(h.listeners, listener)
}

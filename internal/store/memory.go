// Package store keeps the currently loaded document in memory.
package store

import (
	"sync/atomic"

	"docqa/internal/domain"
)

// Memory holds one immutable document. Replacing it is a single pointer swap,
// so readers see either the previous document or the new one in full.
type Memory struct {
	current atomic.Pointer[domain.Document]
	loads   atomic.Uint64
}

func NewMemory() *Memory { return &Memory{} }

// Swap installs doc and returns the document it replaced, if any.
func (m *Memory) Swap(doc *domain.Document) *domain.Document {
	m.loads.Add(1)
	return m.current.Swap(doc)
}

// Current returns the installed document or nil.
func (m *Memory) Current() *domain.Document { return m.current.Load() }

// Loads reports how many documents have been installed.
func (m *Memory) Loads() uint64 { return m.loads.Load() }

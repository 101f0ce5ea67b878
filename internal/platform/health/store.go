package health

import (
	"sync/atomic"

	"github.com/jsamuelsen11/container-health/internal/domain"
	"github.com/jsamuelsen11/container-health/internal/ports"
)

// Compile-time interface check.
var _ ports.StatusStore = (*Store)(nil)

// Store holds the latest published snapshot behind an atomic pointer.
// Publish swaps the pointer to a freshly allocated copy, so a reader always
// sees one complete snapshot and neither side ever waits on the other.
type Store struct {
	current atomic.Pointer[domain.Snapshot]
}

// NewStore creates a Store seeded with the given snapshot.
func NewStore(initial domain.Snapshot) *Store {
	s := &Store{}
	s.Publish(initial)
	return s
}

// Publish replaces the visible snapshot.
func (s *Store) Publish(snapshot domain.Snapshot) {
	cp := snapshot
	s.current.Store(&cp)
}

// Read returns the latest published snapshot. On a Store that was never
// published to, it returns the zero Snapshot.
func (s *Store) Read() domain.Snapshot {
	if p := s.current.Load(); p != nil {
		return *p
	}
	return domain.Snapshot{}
}

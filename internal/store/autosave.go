package store

import (
	"time"

	"github.com/bankbook-dev/bankbook/internal/snapshot"
)

// scheduleSave arms (or re-arms) the debounce timer after a mutation.
// With a non-positive delay the snapshot is written synchronously. A
// failed write is logged and otherwise ignored; memory stays
// authoritative and the next mutation retries.
func (s *Store) scheduleSave() {
	s.mu.Lock()
	if s.delay <= 0 {
		g := s.graph()
		s.mu.Unlock()
		s.write(g)
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		g := s.graph()
		s.timer = nil
		s.mu.Unlock()
		s.write(g)
	})
	s.mu.Unlock()
}

// Flush cancels any pending debounce and writes the snapshot now.
func (s *Store) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	g := s.graph()
	path := s.path
	s.mu.Unlock()
	if err := snapshot.Save(path, g); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("snapshot write failed")
		return err
	}
	return nil
}

// Close flushes pending state. The Store is not usable afterwards.
func (s *Store) Close() error {
	return s.Flush()
}

func (s *Store) write(g snapshot.Graph) {
	if err := snapshot.Save(s.path, g); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("snapshot write failed")
	}
}

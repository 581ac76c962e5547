package store

import (
	"sync"
	"time"

	"github.com/invoizy/invoizy/pkg/logger"
)

// DebouncedSaver coalesces bursts of mutations into a single write. The
// pending write lives in one cell: each Schedule cancels the pending
// timer and arms a new one, so a continuous drag produces one snapshot
// write instead of hundreds. A failed write is logged and dropped; the
// in-memory document stays authoritative and the next mutation
// reschedules.
type DebouncedSaver struct {
	interval time.Duration
	save     func() error
	log      *logger.Logger

	mu      sync.Mutex
	pending *time.Timer
	closed  bool
}

func NewDebouncedSaver(interval time.Duration, save func() error, log *logger.Logger) *DebouncedSaver {
	return &DebouncedSaver{interval: interval, save: save, log: log}
}

// Schedule arms a save after the quiet interval, cancelling any save
// already pending.
func (s *DebouncedSaver) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.pending != nil {
		s.pending.Stop()
	}
	s.pending = time.AfterFunc(s.interval, s.fire)
}

func (s *DebouncedSaver) fire() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	s.mu.Unlock()
	if err := s.save(); err != nil {
		s.log.Warnf("snapshot write failed: %v", err)
	}
}

// Flush runs a pending save immediately, if there is one.
func (s *DebouncedSaver) Flush() {
	s.mu.Lock()
	had := s.pending != nil
	if had {
		s.pending.Stop()
		s.pending = nil
	}
	s.mu.Unlock()
	if had {
		if err := s.save(); err != nil {
			s.log.Warnf("snapshot write failed: %v", err)
		}
	}
}

// Cancel drops a pending save without writing.
func (s *DebouncedSaver) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// Close cancels any pending save and refuses further scheduling.
func (s *DebouncedSaver) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

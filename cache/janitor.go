package cache

import "time"

// sweeper periodically removes expired entries so keys that are never read
// again still get reclaimed. It runs until Close cancels the store context.
// Anything unexpected found during a pass is logged and the sweeper keeps
// going on its next tick; it never takes the process down.
func (s *Store[T]) sweeper() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := s.Cleanup(); removed > 0 {
				s.logger.Info("janitor removed expired entries", "removed", removed)
			}
			if n := s.Len(); n > s.capacity {
				// Put heals this on its next overflow insert.
				s.logger.Error("entry count exceeds capacity",
					"len", n, "capacity", s.capacity)
			}
		case <-s.ctx.Done():
			return
		}
	}
}

// Cleanup removes every expired entry and returns the number removed. The
// janitor calls it on each tick; it is also exposed so an operator can force
// an out-of-cycle pass.
//
// The scan is two-phase: stale keys are collected under the read lock, then
// re-checked and deleted under the write lock. The write lock is therefore
// held only in proportion to the number of expired entries, and an entry
// expiring mid-scan is caught either this pass or the next.
func (s *Store[T]) Cleanup() int {
	now := time.Now()

	s.mu.RLock()
	var stale []string
	for k, e := range s.entries {
		if !e.fresh(now) {
			stale = append(stale, k)
		}
	}
	s.mu.RUnlock()

	if len(stale) == 0 {
		return 0
	}

	removed := 0
	s.mu.Lock()
	for _, k := range stale {
		// An overwrite between the two phases makes the entry fresh again.
		if e, ok := s.entries[k]; ok && !e.fresh(now) {
			delete(s.entries, k)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		s.recordExpirations(removed)
	}
	return removed
}

package cache

import "time"

// selectVictim picks the entry to remove when the store is over capacity:
// the one with the oldest createdAt, with the lexicographically smallest key
// breaking ties at equal timestamps so eviction order is deterministic.
// Returns false only for an empty entry set.
//
// The scan is O(n) but runs only when an insert actually overflows, never on
// the Get/Put fast path.
func selectVictim[T any](entries map[string]*entry[T]) (string, bool) {
	var (
		victim string
		oldest time.Time
		found  bool
	)
	for k, e := range entries {
		switch {
		case !found:
			victim, oldest, found = k, e.createdAt, true
		case e.createdAt.Before(oldest):
			victim, oldest = k, e.createdAt
		case e.createdAt.Equal(oldest) && k < victim:
			victim = k
		}
	}
	return victim, found
}

package cache

import "time"

// entry holds one cached value together with its expiration metadata.
// Entries are never mutated after creation; an overwrite replaces the
// entry wholesale, so createdAt always reflects the latest Put.
type entry[T any] struct {
	value     T
	category  Category
	createdAt time.Time
	ttl       time.Duration
}

// fresh reports whether the entry is still within its TTL at now.
func (e *entry[T]) fresh(now time.Time) bool {
	return now.Sub(e.createdAt) < e.ttl
}

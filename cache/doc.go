// Package cache provides a bounded, TTL-aware in-memory store for upstream
// sports API responses. Entries belong to a closed set of categories, each
// mapped to a fixed TTL resolved when the store is created. A background
// janitor periodically sweeps expired entries; reads also remove stale
// entries lazily. When the store is full, inserting a new key evicts the
// oldest entry first.
package cache

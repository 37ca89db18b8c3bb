// Package admin exposes the store's operator surface over HTTP: view stats,
// clear, and force a cleanup pass. The bot command layer (or any other
// operator frontend) calls these endpoints; the cache itself stays unaware
// of who is asking.
package admin

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/goobiebot/respcache/cache"
	"github.com/goobiebot/respcache/metrics"
)

// Cache is the subset of the store the admin surface needs. Every
// cache.Store instantiation satisfies it regardless of its value type.
type Cache interface {
	Stats() cache.Snapshot
	Len() int
	Clear()
	ResetStats()
	Cleanup() int
}

// Register mounts the admin endpoints on mux.
func Register(mux *http.ServeMux, c Cache) {
	mux.HandleFunc("GET /stats", StatsHandler(c))
	mux.HandleFunc("POST /clear", ClearHandler(c))
	mux.HandleFunc("POST /cleanup", CleanupHandler(c))
}

type statsResponse struct {
	Hits        uint64  `json:"hits"`
	Misses      uint64  `json:"misses"`
	Evictions   uint64  `json:"evictions"`
	Expirations uint64  `json:"expirations"`
	HitRate     float64 `json:"hit_rate"`
	Entries     int     `json:"entries"`
}

// StatsHandler returns the accounting snapshot and entry count as JSON.
func StatsHandler(c Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.StatsCounter.Inc()
		snap := c.Stats()
		resp := statsResponse{
			Hits:        snap.Hits,
			Misses:      snap.Misses,
			Evictions:   snap.Evictions,
			Expirations: snap.Expirations,
			HitRate:     snap.HitRate(),
			Entries:     c.Len(),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("encode stats response", "error", err)
		}
	}
}

// ClearHandler drops all entries. With the "stats" query parameter set, the
// accounting counters are reset as well.
func ClearHandler(c Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.ClearCounter.Inc()
		c.Clear()
		resetStats := r.URL.Query().Get("stats") != ""
		if resetStats {
			c.ResetStats()
		}
		slog.Info("cache cleared by admin", "stats_reset", resetStats)
		w.WriteHeader(http.StatusNoContent)
	}
}

type cleanupResponse struct {
	Removed int `json:"removed"`
}

// CleanupHandler forces an out-of-cycle janitor pass and reports how many
// expired entries were removed.
func CleanupHandler(c Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.CleanupCounter.Inc()
		removed := c.Cleanup()
		slog.Info("forced cache cleanup", "removed", removed)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cleanupResponse{Removed: removed}); err != nil {
			slog.Error("encode cleanup response", "error", err)
		}
	}
}

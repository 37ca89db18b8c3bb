package cache

import (
	"fmt"
	"time"

	resperrors "github.com/goobiebot/respcache/errors"
)

// Category identifies a class of cached upstream data. Each category maps to
// one fixed TTL. The set is closed: adding a category is a code change, and
// the configured TTL table is validated against it when the store is created.
type Category string

const (
	// CategoryGameData covers schedules and scores, which change often.
	CategoryGameData Category = "game_data"
	// CategoryTeamLogos covers logo URLs, which almost never change.
	CategoryTeamLogos Category = "team_logos"
	// CategoryVenueData covers venue lookups.
	CategoryVenueData Category = "venue_data"
	// CategoryTeamMetadata covers team records, colors and similar details.
	CategoryTeamMetadata Category = "team_metadata"
	// CategoryTeamNames covers team name resolution.
	CategoryTeamNames Category = "team_names"
)

// Categories returns every declared category.
func Categories() []Category {
	return []Category{
		CategoryGameData,
		CategoryTeamLogos,
		CategoryVenueData,
		CategoryTeamMetadata,
		CategoryTeamNames,
	}
}

// Config holds the startup configuration for a Store.
type Config struct {
	// MaxEntries bounds the number of entries; must be positive.
	MaxEntries int
	// TTLs maps every declared category to a positive TTL.
	TTLs map[Category]time.Duration
	// SweepInterval is the janitor period. A zero or negative duration
	// disables the background janitor; expired entries are then only
	// removed lazily on Get or through Cleanup.
	SweepInterval time.Duration
}

// DefaultConfig returns the stock configuration: 100 entries, a five minute
// janitor period, and per-category TTLs matching how fast each upstream data
// class goes stale.
func DefaultConfig() Config {
	return Config{
		MaxEntries: 100,
		TTLs: map[Category]time.Duration{
			CategoryGameData:     30 * time.Minute,
			CategoryTeamLogos:    24 * time.Hour,
			CategoryVenueData:    24 * time.Hour,
			CategoryTeamMetadata: 2 * time.Hour,
			CategoryTeamNames:    24 * time.Hour,
		},
		SweepInterval: 5 * time.Minute,
	}
}

// validate fails fast on misconfiguration so a bad TTL table can never
// surface as a request-time error.
func (c Config) validate() error {
	if c.MaxEntries <= 0 {
		return fmt.Errorf("%w: got %d", resperrors.ErrInvalidCapacity, c.MaxEntries)
	}
	declared := make(map[Category]bool, len(Categories()))
	for _, cat := range Categories() {
		declared[cat] = true
		ttl, ok := c.TTLs[cat]
		if !ok {
			return fmt.Errorf("%w: %q", resperrors.ErrMissingTTL, cat)
		}
		if ttl <= 0 {
			return fmt.Errorf("%w: %q has %v", resperrors.ErrInvalidTTL, cat, ttl)
		}
	}
	for cat := range c.TTLs {
		if !declared[cat] {
			return fmt.Errorf("%w: %q", resperrors.ErrUnknownCategory, cat)
		}
	}
	return nil
}

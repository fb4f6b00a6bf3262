// Package cache provides the caching layer for rendered symbol artifacts.
//
// # Backends
//
//   - [FileCache]: one file per entry under a directory, for CLI usage
//   - [RedisCache]: shared cache for the HTTP service
//   - [NullCache]: never stores anything
//
// # Keys
//
// A [Keyer] derives cache keys from the content hash of a symbol and the
// options that influence its rendering. Two renders share a key only when
// both the symbol and every option that changes the output are equal.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey(cache.Hash(symbolJSON), cache.ArtifactKeyOpts{Format: "svg"})
package cache

import (
	"context"
	"time"
)

// ArtifactTTL bounds how long a rendered artifact is kept. Keys already
// change with the symbol content, so this only reclaims space.
const ArtifactTTL = 7 * 24 * time.Hour

// Cache stores opaque byte values with an optional expiry.
// A ttl of zero or less stores the value without expiry.
type Cache interface {
	// Get returns the value for key. The bool is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey returns the key for a rendered artifact of the symbol whose
	// content hash is symbolHash.
	ArtifactKey(symbolHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts lists every render option that changes an artifact.
type ArtifactKeyOpts struct {
	Format             string   `json:"format"`
	Stroke             string   `json:"stroke"`
	Fill               string   `json:"fill"`
	ShowSpecs          bool     `json:"show_specs"`
	UniformStrokeWidth *float64 `json:"uniform_stroke_width"`
	Scale              float64  `json:"scale,omitempty"`
	Detailed           bool     `json:"detailed,omitempty"`
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key generator.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(symbolHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", symbolHash, opts)
}

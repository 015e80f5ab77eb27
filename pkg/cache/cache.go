// Package cache remembers which documents have already been resolved.
//
// Batch runs over a directory of templates are the common case, and most
// files do not change between runs. The pipeline Runner keys an
// entry on the input content, the effective overrides and the output path,
// and stores the hash of the output it wrote. A later run with the same key
// whose output file still hashes to the stored value is skipped.
//
// Two implementations are provided: [FileCache] for the CLI (one JSON file
// per entry under the XDG cache directory) and [NullCache], which disables
// caching.
package cache

import (
	"context"
	"time"
)

// TTLResult is how long a resolution record stays valid.
const TTLResult = 30 * 24 * time.Hour

// Cache stores opaque values by key.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// ResultKeyOpts holds the inputs besides the document content that
// determine a resolution result.
type ResultKeyOpts struct {
	Output    string            `json:"output"`
	Overrides map[string]string `json:"overrides,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ResultKey returns the key for resolving a document whose content
	// hashes to contentHash.
	ResultKey(contentHash string, opts ResultKeyOpts) string
}

// DefaultKeyer hashes every key component.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey implements Keyer.
func (DefaultKeyer) ResultKey(contentHash string, opts ResultKeyOpts) string {
	return hashKey("result", contentHash, opts)
}

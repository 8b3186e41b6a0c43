// Package revoke tracks access tokens invalidated before their natural expiry.
//
// A token is identified by its jti claim. An entry lives in the registry from
// the moment of logout until the token's own expiry passes; after that the
// token is rejected by expiry checking alone and the entry is garbage.
package revoke

import (
	"context"
	"sync"
	"time"
)

// Store answers whether a token has been explicitly invalidated.
// Implementations must be safe for concurrent use.
type Store interface {
	// Revoke records the jti as invalid until expiresAt. Idempotent:
	// revoking the same jti again just overwrites the entry.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	// IsRevoked reports whether jti is currently revoked. A jti whose
	// expiry has passed is not revoked: the validator rejects it on
	// expiry grounds already.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Registry is the in-process Store. State is process-local: a restart
// forgets all revocations and a multi-replica deployment fragments them.
// Known trade-off of the design; use NewRedisStore for shared state.
type Registry struct {
	mu      sync.Mutex
	entries map[string]time.Time // jti -> token expiry
	now     func() time.Time
}

// NewRegistry constructs an empty in-memory registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]time.Time), now: time.Now}
}

// Revoke stores or overwrites the entry for jti. The expiry recorded is the
// token's own, not a fresh TTL, so an already-expired token leaves a
// prunable entry.
func (r *Registry) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[jti] = expiresAt
	return nil
}

// IsRevoked sweeps every expired entry and then reports whether jti remains.
// Cleanup-on-read: each check pays for pruning whatever went stale since the
// previous one, which bounds memory to revoked-but-unexpired tokens.
func (r *Registry) IsRevoked(_ context.Context, jti string) (bool, error) {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, exp := range r.entries {
		if !exp.After(now) {
			delete(r.entries, id)
		}
	}
	_, revoked := r.entries[jti]
	return revoked, nil
}

// Len reports the number of live entries. Diagnostics only.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

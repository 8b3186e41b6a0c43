package revoke

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

// newTestRegistry returns a registry on a controllable clock.
func newTestRegistry(start time.Time) (*Registry, *time.Time) {
	now := start
	r := NewRegistry()
	r.now = func() time.Time { return now }
	return r, &now
}

func TestRegistry_NeverRevoked(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	ctx := context.Background()

	revoked, err := r.IsRevoked(ctx, "unknown-jti")
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if revoked {
		t.Fatalf("jti never revoked reported as revoked")
	}
}

func TestRegistry_RevokedUntilExpiry(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r, now := newTestRegistry(start)
	ctx := context.Background()

	exp := start.Add(30 * time.Minute)
	if err := r.Revoke(ctx, "jti-1", exp); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	for _, offset := range []time.Duration{0, time.Minute, 29 * time.Minute} {
		*now = start.Add(offset)
		revoked, err := r.IsRevoked(ctx, "jti-1")
		if err != nil {
			t.Fatalf("IsRevoked at +%v: %v", offset, err)
		}
		if !revoked {
			t.Fatalf("token not revoked at +%v, expiry %v", offset, exp)
		}
	}

	// At and after expiry the entry is equivalent to "not revoked".
	for _, offset := range []time.Duration{30 * time.Minute, 31 * time.Minute, 24 * time.Hour} {
		*now = start.Add(offset)
		revoked, err := r.IsRevoked(ctx, "jti-1")
		if err != nil {
			t.Fatalf("IsRevoked at +%v: %v", offset, err)
		}
		if revoked {
			t.Fatalf("expired revocation still reported at +%v", offset)
		}
	}
}

func TestRegistry_SweepPrunesExpiredEntries(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r, now := newTestRegistry(start)
	ctx := context.Background()

	for i := range 10 {
		_ = r.Revoke(ctx, fmt.Sprintf("short-%d", i), start.Add(10*time.Minute))
	}
	_ = r.Revoke(ctx, "long", start.Add(2*time.Hour))
	if got := r.Len(); got != 11 {
		t.Fatalf("want 11 entries, got %d", got)
	}

	// One check past the short expiries reclaims all of them at once.
	*now = start.Add(time.Hour)
	revoked, err := r.IsRevoked(ctx, "long")
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if !revoked {
		t.Fatalf("long-lived revocation lost during sweep")
	}
	if got := r.Len(); got != 1 {
		t.Fatalf("sweep left %d entries, want 1", got)
	}
}

func TestRegistry_RevokeIdempotent(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r, _ := newTestRegistry(start)
	ctx := context.Background()

	exp := start.Add(time.Hour)
	_ = r.Revoke(ctx, "jti-1", exp)
	_ = r.Revoke(ctx, "jti-1", exp)

	if got := r.Len(); got != 1 {
		t.Fatalf("double revoke produced %d entries, want 1", got)
	}
	revoked, _ := r.IsRevoked(ctx, "jti-1")
	if !revoked {
		t.Fatalf("token not revoked after double logout")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := range 100 {
				_ = r.Revoke(ctx, fmt.Sprintf("jti-%d-%d", i, j), exp)
			}
		}()
		go func() {
			defer wg.Done()
			for j := range 100 {
				_, _ = r.IsRevoked(ctx, fmt.Sprintf("jti-%d-%d", i, j))
			}
		}()
	}
	wg.Wait()

	revoked, err := r.IsRevoked(ctx, "jti-0-0")
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if !revoked {
		t.Fatalf("entry lost under concurrent access")
	}
}

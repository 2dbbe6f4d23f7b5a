// Package cachex signals stale cached views to the storefront after an
// admin mutation. Invalidation is fire-and-forget: a Redis hiccup is
// logged and never fails the mutation that triggered it.
package cachex

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Global admin dashboard view: views:dashboard
	KeyDashboard = "views:dashboard"

	// Per-user storefront views (orders + registrations): views:user:{user_id}
	KeyUserViews = "views:user:%s"
)

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

type Invalidator struct {
	rdb *redis.Client
}

func NewInvalidator(rdb *redis.Client) *Invalidator {
	return &Invalidator{rdb: rdb}
}

// InvalidateViews drops the dashboard view and, when userID is set, the
// user's cached views.
func (i *Invalidator) InvalidateViews(ctx context.Context, userID string) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	keys := []string{KeyDashboard}
	if userID != "" {
		keys = append(keys, fmt.Sprintf(KeyUserViews, userID))
	}
	if err := i.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[cache] invalidate %v failed: %v", keys, err)
	}
}

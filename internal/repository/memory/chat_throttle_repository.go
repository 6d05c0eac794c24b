package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// ChatThrottleRepository counts chat messages per client in fixed windows.
// The counter for a client expires together with its window.
type ChatThrottleRepository struct {
	cache  *cache.Cache
	limit  int
	window time.Duration
}

// NewChatThrottleRepository allows limit messages per window. A limit of
// zero or less disables throttling.
func NewChatThrottleRepository(limit int, window time.Duration) *ChatThrottleRepository {
	return &ChatThrottleRepository{
		cache:  cache.New(window, 2*window),
		limit:  limit,
		window: window,
	}
}

// Allow records one message for clientID and reports whether it fits the limit.
func (r *ChatThrottleRepository) Allow(clientID string) bool {
	if r.limit <= 0 {
		return true
	}

	if err := r.cache.Add(clientID, 1, r.window); err == nil {
		return true
	}

	count, err := r.cache.IncrementInt(clientID, 1)
	if err != nil {
		// window expired between Add and Increment
		r.cache.Set(clientID, 1, r.window)
		return true
	}
	return count <= r.limit
}

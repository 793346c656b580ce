package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
)

const DefaultTTL = 30 * time.Minute

// Store maps session ids to their storefront view. A view that sits idle for
// longer than the TTL is evicted, which discards its cart.
type Store struct {
	log   *slog.Logger
	cache *ttlcache.Cache[string, *cartapp.Service]

	// serializes get-or-create so a burst of first requests yields one view
	mu sync.Mutex
}

func NewStore(log *slog.Logger, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = slog.Default()
	}

	cache := ttlcache.New[string, *cartapp.Service](
		ttlcache.WithTTL[string, *cartapp.Service](ttl),
	)
	cache.OnEviction(func(ctx context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *cartapp.Service]) {
		log.Debug("view discarded",
			slog.String("session", item.Key()),
			slog.Int("cart_len", len(item.Value().Snapshot().Cart)),
			slog.Any("reason", reason),
		)
	})

	return &Store{log: log, cache: cache}
}

// Start runs expiry until ctx is done. It blocks.
func (s *Store) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		s.cache.Stop()
	}()
	s.cache.Start()
}

// View returns the view for id, touching its TTL. An empty, unknown or expired
// id yields a fresh view under a new id; created reports that case.
func (s *Store) View(id string) (view *cartapp.Service, sessionID string, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if item := s.cache.Get(id); item != nil {
			return item.Value(), id, false
		}
	}

	sessionID = uuid.NewString()
	view = cartapp.NewService(s.log.With(slog.String("session", sessionID)))
	s.cache.Set(sessionID, view, ttlcache.DefaultTTL)
	return view, sessionID, true
}

// Len is the number of live views.
func (s *Store) Len() int {
	return s.cache.Len()
}

// Discard evicts a view immediately.
func (s *Store) Discard(id string) {
	s.cache.Delete(id)
}

package page

import (
	"fmt"
	"sync"
	"time"

	"stock-dashboard/config"
	"stock-dashboard/internal/metrics"
	"stock-dashboard/pkg/cache"
	"stock-dashboard/pkg/common"
)

// Store keeps one Page per session. Pages idle for longer than the
// configured expiration are evicted.
type Store struct {
	mu         sync.Mutex
	cache      cache.Cache
	expiration time.Duration
}

func NewStore(cfg *config.Config) *Store {
	return NewStoreWithCache(cache.NewCache(cfg.Session.IdleExpiration, cfg.Session.CleanupInterval), cfg.Session.IdleExpiration)
}

func NewStoreWithCache(c cache.Cache, expiration time.Duration) *Store {
	s := &Store{cache: c, expiration: expiration}
	c.OnEvicted(func(string, interface{}) {
		s.reportSessions()
	})
	return s
}

func (s *Store) reportSessions() {
	metrics.ActiveSessions.Set(float64(s.cache.ItemCount()))
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(common.KEY_SESSION_PAGE, sessionID)
}

// get returns the session page and restarts its idle timer.
func (s *Store) get(sessionID string) (*Page, bool) {
	key := sessionKey(sessionID)
	p, ok := cache.GetFromCache[*Page](s.cache, key)
	if !ok {
		return nil, false
	}
	s.cache.Touch(key, s.expiration)
	return p, true
}

// GetOrCreate returns the session page, creating an empty one when the
// session is new or has expired.
func (s *Store) GetOrCreate(sessionID string) *Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.get(sessionID); ok {
		return p
	}
	p := New()
	s.cache.Set(sessionKey(sessionID), p, s.expiration)
	s.reportSessions()
	return p
}

func (s *Store) Len() int {
	return s.cache.ItemCount()
}

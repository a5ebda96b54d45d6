package memory

import (
	"github.com/patrickmn/go-cache"

	"killchain-analyzer-be/internal/entity"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository builds an in-memory session store. Entries never
// expire on their own: lifecycle is owned by the explicit cleanup sweep,
// which also has to purge sessions whose creation timestamp no longer
// parses. A plain TTL cannot express that rule.
func NewSessionRepository() *SessionRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *entity.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*entity.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*entity.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) bool {
	if _, found := r.cache.Get(sessionID); !found {
		return false
	}
	r.cache.Delete(sessionID)
	return true
}

func (r *SessionRepository) All() map[string]*entity.Session {
	items := r.cache.Items()
	out := make(map[string]*entity.Session, len(items))
	for id, item := range items {
		out[id] = item.Object.(*entity.Session)
	}
	return out
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}

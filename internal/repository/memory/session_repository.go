package memory

import (
	"context"
	"time"

	"vehicle-diagnosis-be/pkg/diagnosis/engine"
	"vehicle-diagnosis-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps diagnosis sessions in process memory and expires them after a TTL.
// Stored values are copies so callers cannot mutate state outside the session lock.
type SessionRepository struct {
	cache *cache.Cache
}

var _ engine.SessionRepository = &SessionRepository{}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *SessionRepository) Create(_ context.Context, s *store.Session) error {
	r.cache.Set(s.ID, s.Clone(), cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Get(_ context.Context, id string) (*store.Session, error) {
	if x, found := r.cache.Get(id); found {
		return x.(*store.Session).Clone(), nil
	}
	return nil, nil
}

func (r *SessionRepository) Update(ctx context.Context, s *store.Session) error {
	return r.Create(ctx, s)
}

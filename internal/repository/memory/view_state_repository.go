package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"resumeforge-be/pkg/store"
)

type ViewStateRepository struct {
	cache *cache.Cache
}

func NewViewStateRepository() *ViewStateRepository {
	// Default expiration of 24 hours, expired entries purged every hour.
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &ViewStateRepository{
		cache: c,
	}
}

func (r *ViewStateRepository) Save(state *store.ViewState) {
	state.SchemaVersion = store.SchemaVersion
	r.cache.Set(state.UserID, state, cache.DefaultExpiration)
}

func (r *ViewStateRepository) Get(userID string) (*store.ViewState, bool) {
	x, found := r.cache.Get(userID)
	if !found {
		return nil, false
	}
	state := x.(*store.ViewState)
	if !state.Valid() {
		r.cache.Delete(userID)
		return nil, false
	}
	return state, true
}

func (r *ViewStateRepository) Delete(userID string) {
	r.cache.Delete(userID)
}

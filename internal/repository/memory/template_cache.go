package memory

import (
	"time"

	"ai-productivity-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const templatesKey = "templates:all"

// TemplateCache holds the seeded catalog. Templates are read-only after
// seeding, so entries only leave through expiry or Invalidate.
type TemplateCache struct {
	cache *cache.Cache
}

func NewTemplateCache(ttl time.Duration) *TemplateCache {
	// Expired items are purged every 10 minutes
	return &TemplateCache{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *TemplateCache) Save(templates []*entity.Template) {
	r.cache.Set(templatesKey, templates, cache.DefaultExpiration)
}

func (r *TemplateCache) Get() ([]*entity.Template, bool) {
	if x, found := r.cache.Get(templatesKey); found {
		return x.([]*entity.Template), true
	}
	return nil, false
}

func (r *TemplateCache) Invalidate() {
	r.cache.Delete(templatesKey)
}

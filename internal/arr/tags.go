package arr

import (
	"context"
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// TagAPI is the tag capability shared by Radarr and Sonarr.
type TagAPI interface {
	Tags(ctx context.Context) ([]Tag, error)
	CreateTag(ctx context.Context, label string) (Tag, error)
}

// TagCache resolves tag labels to IDs with an at-most-once fetch of the
// service's tag list. It is populated lazily before first use and is safe
// for concurrent readers afterwards.
type TagCache struct {
	api TagAPI

	mu     sync.Mutex
	loaded bool
	cache  *gocache.Cache
}

// NewTagCache creates a cache backed by the given tag API.
func NewTagCache(api TagAPI) *TagCache {
	return &TagCache{
		api:   api,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// load fetches the tag list once. Callers must hold mu.
func (c *TagCache) load(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	tags, err := c.api.Tags(ctx)
	if err != nil {
		return err
	}
	for _, t := range tags {
		c.cache.Set(t.Label, t.ID, gocache.NoExpiration)
	}
	c.loaded = true
	return nil
}

// IDs resolves labels to tag IDs. Labels unknown to the service are skipped;
// a blacklist tag that does not exist cannot match any entry.
func (c *TagCache) IDs(ctx context.Context, labels []string) ([]int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(labels))
	for _, label := range labels {
		if v, ok := c.cache.Get(label); ok {
			ids = append(ids, v.(int))
		}
	}
	return ids, nil
}

// GetOrCreate resolves labels to tag IDs, creating any that do not exist.
func (c *TagCache) GetOrCreate(ctx context.Context, labels []string) ([]int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(labels))
	for _, label := range labels {
		if v, ok := c.cache.Get(label); ok {
			ids = append(ids, v.(int))
			continue
		}
		tag, err := c.api.CreateTag(ctx, label)
		if err != nil {
			return nil, err
		}
		c.cache.Set(tag.Label, tag.ID, gocache.NoExpiration)
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

// Package browser serves page visits through a bounded LRU page cache,
// falling back to an origin store on a miss.
package browser

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pyropy/pagecache/core/model"
	"github.com/pyropy/pagecache/lib/concurrent_cache"
	"github.com/pyropy/pagecache/lib/hashtable"
	"go.uber.org/zap"
)

// Origin is where pages come from when they are not cached.
type Origin interface {
	Get(ctx context.Context, url model.URL) (*model.Page, error)
}

type Browser struct {
	ID uuid.UUID

	origin Origin
	cache  *concurrent_cache.Cache[string]
	log    *zap.SugaredLogger
}

func NewBrowser(capacity int, origin Origin, log *zap.SugaredLogger, opts ...hashtable.Option) *Browser {
	b := &Browser{
		ID:     uuid.New(),
		origin: origin,
		cache:  concurrent_cache.NewCache[string](capacity, opts...),
		log:    log,
	}

	b.cache.OnEvict(func(url string, _ string) {
		b.log.Debugw("cache", "event", "evict", "session", b.ID, "url", url)
	})

	return b
}

// Visit returns the contents of url and marks it as the most recently
// visited page.
func (b *Browser) Visit(ctx context.Context, url model.URL) (string, error) {
	contents, hit := b.cache.Peek(url)
	if !hit {
		page, err := b.origin.Get(ctx, url)
		if err != nil {
			return "", errors.Wrapf(err, "visit %s", url)
		}
		contents = page.Contents
	}

	b.cache.AccessPage(url, contents)
	b.log.Debugw("cache", "event", "access", "session", b.ID, "url", url, "hit", hit)

	return contents, nil
}

// History returns the cached URLs from most to least recently visited.
func (b *Browser) History() []string {
	return b.cache.GetPages()
}

func (b *Browser) Len() int {
	return b.cache.Len()
}

package api

import (
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/cespare/xxhash/v2"
)

const listingKey = "venues"

// listingCache keeps the serialized venue listing around for a short
// window so repeated listing calls do not hit the database. Entries age
// out on their own; the importer runs offline so staleness is bounded by
// the TTL, not by invalidation.
type listingCache struct {
	cache *bigcache.BigCache
}

func newListingCache() *listingCache {
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(30 * time.Second))
	return &listingCache{cache: cache}
}

func (l *listingCache) get() ([]byte, bool) {
	buf, err := l.cache.Get(listingKey)
	if err != nil {
		return nil, false
	}
	return buf, true
}

func (l *listingCache) put(payload []byte) {
	l.cache.Set(listingKey, payload)
}

func etagFor(payload []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(payload))
}

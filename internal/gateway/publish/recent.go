package publish

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultRecentEntries = 128

// RecentLog keeps the most recently published artifacts in a bounded
// in-process cache. Best effort only; a restart starts empty.
type RecentLog struct {
	cache *lru.Cache[string, Artifact]
}

func NewRecentLog(maxEntries int) *RecentLog {
	if maxEntries <= 0 {
		maxEntries = defaultRecentEntries
	}
	cache, err := lru.New[string, Artifact](maxEntries)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &RecentLog{cache: cache}
}

func (r *RecentLog) Record(a Artifact) {
	if r == nil || r.cache == nil {
		return
	}
	r.cache.Add(a.StorageKey, a)
}

// List returns the retained artifacts, newest first.
func (r *RecentLog) List() []Artifact {
	if r == nil || r.cache == nil {
		return nil
	}
	keys := r.cache.Keys() // oldest to newest
	out := make([]Artifact, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		if a, ok := r.cache.Peek(keys[i]); ok {
			out = append(out, a)
		}
	}
	return out
}

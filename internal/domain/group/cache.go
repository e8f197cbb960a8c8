package group

import "time"

// Cache is an optional read-through cache for group profiles. Implementations
// live under internal/repository; the default is a no-op.
type Cache interface {
	Get(groupID string) (*Group, bool)
	Set(groupID string, group *Group, ttl time.Duration)
	Delete(groupID string)
	Clear()
}

type noopCache struct{}

func (noopCache) Get(string) (*Group, bool) { return nil, false }

func (noopCache) Set(string, *Group, time.Duration) {}

func (noopCache) Delete(string) {}

func (noopCache) Clear() {}

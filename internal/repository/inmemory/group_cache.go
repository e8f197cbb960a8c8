package inmemory

import (
	"sync"
	"time"

	groupdomain "band-app-go/internal/domain/group"
)

type GroupCache struct {
	mu    sync.RWMutex
	items map[string]groupItem
}

type groupItem struct {
	value     groupdomain.Group
	expiresAt time.Time
}

func NewGroupCache() *GroupCache {
	return &GroupCache{items: make(map[string]groupItem)}
}

func (c *GroupCache) Get(groupID string) (*groupdomain.Group, bool) {
	now := time.Now()

	c.mu.RLock()
	item, ok := c.items[groupID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		if item, ok = c.items[groupID]; ok && !item.expiresAt.After(now) {
			delete(c.items, groupID)
		}
		c.mu.Unlock()
		return nil, false
	}

	value := item.value
	return &value, true
}

func (c *GroupCache) Set(groupID string, group *groupdomain.Group, ttl time.Duration) {
	if group == nil || ttl <= 0 {
		return
	}

	c.mu.Lock()
	c.items[groupID] = groupItem{value: *group, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

func (c *GroupCache) Delete(groupID string) {
	c.mu.Lock()
	delete(c.items, groupID)
	c.mu.Unlock()
}

func (c *GroupCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]groupItem)
	c.mu.Unlock()
}

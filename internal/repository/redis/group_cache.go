package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"band-app-go/internal/config"
	groupdomain "band-app-go/internal/domain/group"
	"band-app-go/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
)

const (
	groupKeyPrefix = "band:group:"
	opTimeout      = 200 * time.Millisecond
)

// GroupCache is a redis-backed group.Cache. Cache failures degrade to
// misses; they are logged and never propagated to the caller.
type GroupCache struct {
	rdb *goredis.Client
	log logger.Logger
}

func NewGroupCache(cfg config.CacheConfig, log logger.Logger) (*GroupCache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &GroupCache{rdb: rdb, log: log}, nil
}

func (c *GroupCache) Get(groupID string) (*groupdomain.Group, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := c.rdb.Get(ctx, groupKeyPrefix+groupID).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("cache: redis get failed", "group_id", groupID, "err", err)
		}
		return nil, false
	}

	var group groupdomain.Group
	if err := json.Unmarshal(raw, &group); err != nil {
		c.log.Warn("cache: corrupt group entry", "group_id", groupID, "err", err)
		return nil, false
	}
	return &group, true
}

func (c *GroupCache) Set(groupID string, group *groupdomain.Group, ttl time.Duration) {
	if group == nil || ttl <= 0 {
		return
	}

	raw, err := json.Marshal(group)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := c.rdb.Set(ctx, groupKeyPrefix+groupID, raw, ttl).Err(); err != nil {
		c.log.Warn("cache: redis set failed", "group_id", groupID, "err", err)
	}
}

func (c *GroupCache) Delete(groupID string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := c.rdb.Del(ctx, groupKeyPrefix+groupID).Err(); err != nil {
		c.log.Warn("cache: redis delete failed", "group_id", groupID, "err", err)
	}
}

func (c *GroupCache) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	iter := c.rdb.Scan(ctx, 0, groupKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("cache: redis clear failed", "key", iter.Val(), "err", err)
			return
		}
	}
}

func (c *GroupCache) Close() error {
	return c.rdb.Close()
}

// Package redis 提供 Redis 缓存操作的封装
// 本文件实现 CacheService 接口
package redis

import (
	"context"
	"errors"
	"time"

	"huddle_server/pkg/errorx"

	"github.com/redis/go-redis/v9"
)

// redisCache CacheService 的 Redis 实现
type redisCache struct {
	client *redis.Client
}

// NewRedisCache 创建 Redis 缓存服务实例
func NewRedisCache(client *redis.Client) CacheService {
	return &redisCache{client: client}
}

// Set 设置键值对并指定过期时间
func (r *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set key %s", key)
	}
	return nil
}

// Get 获取键对应的值
// 如果键不存在，返回空字符串和 nil（不视为错误）
func (r *redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil // 键不存在，返回空但不报错
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// GetOrError 获取键对应的值（键不存在视为 CodeNotFound 错误）
func (r *redisCache) GetOrError(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errorx.Wrapf(err, errorx.CodeNotFound, "redis key %s not found", key)
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// Delete 删除键（如果存在）
// 使用 UNLINK 异步删除，避免大 key 阻塞 Redis
func (r *redisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Unlink(ctx, key).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis unlink key %s", key)
	}
	return nil
}

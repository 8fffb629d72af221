package auth

import (
	"context"
	"time"

	"foodgram/internal/database"
	"foodgram/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis键前缀
const blacklistKeyPrefix = "jwt:blacklist:"

// RedisTokenBlacklist Redis令牌黑名单实现
type RedisTokenBlacklist struct {
	redis *redis.Client
	ctx   context.Context
}

func newRedisTokenBlacklist() *RedisTokenBlacklist {
	return &RedisTokenBlacklist{
		redis: database.GetRedis(),
		ctx:   context.Background(),
	}
}

// AddToBlacklist 将令牌添加到黑名单，过期后由Redis自动清理
func (b *RedisTokenBlacklist) AddToBlacklist(token string, expireAt time.Time) error {
	duration := time.Until(expireAt)
	if duration <= 0 {
		return nil // 已过期的令牌无需添加
	}

	key := blacklistKeyPrefix + token
	if err := b.redis.Set(b.ctx, key, "1", duration).Err(); err != nil {
		logger.Error("添加令牌到Redis黑名单失败", zap.Error(err))
		return err
	}
	return nil
}

// IsBlacklisted 检查令牌是否在黑名单中
func (b *RedisTokenBlacklist) IsBlacklisted(token string) bool {
	key := blacklistKeyPrefix + token
	result, err := b.redis.Exists(b.ctx, key).Result()
	if err != nil {
		logger.Error("检查Redis黑名单失败", zap.Error(err))
		return false
	}
	return result > 0
}

package auth

import (
	"sync"
	"time"

	"foodgram/internal/config"
)

// BlacklistInterface 黑名单接口
type BlacklistInterface interface {
	// AddToBlacklist 将令牌添加到黑名单
	AddToBlacklist(token string, expireAt time.Time) error
	// IsBlacklisted 检查令牌是否在黑名单中
	IsBlacklisted(token string) bool
}

var (
	activeBlacklist     BlacklistInterface
	activeBlacklistOnce sync.Once
)

// GetTokenBlacklist 获取当前使用的黑名单实例
// 配置了Redis时使用Redis实现，否则使用内存实现
func GetTokenBlacklist() BlacklistInterface {
	activeBlacklistOnce.Do(func() {
		if config.GlobalConfig != nil && config.GlobalConfig.Redis.Host != "" {
			activeBlacklist = newRedisTokenBlacklist()
		} else {
			activeBlacklist = newMemoryTokenBlacklist()
		}
	})
	return activeBlacklist
}

// UseBlacklist 注入黑名单实现，供测试使用
func UseBlacklist(b BlacklistInterface) {
	activeBlacklistOnce.Do(func() {})
	activeBlacklist = b
}

// MemoryTokenBlacklist 内存令牌黑名单
type MemoryTokenBlacklist struct {
	tokens map[string]time.Time // 令牌->过期时间映射
	mutex  sync.RWMutex
}

func newMemoryTokenBlacklist() *MemoryTokenBlacklist {
	b := &MemoryTokenBlacklist{
		tokens: make(map[string]time.Time),
	}
	// 定期清理过期令牌
	go b.cleanupTask()
	return b
}

// AddToBlacklist 将令牌添加到黑名单
func (b *MemoryTokenBlacklist) AddToBlacklist(token string, expireAt time.Time) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.tokens[token] = expireAt
	return nil
}

// IsBlacklisted 检查令牌是否在黑名单中
func (b *MemoryTokenBlacklist) IsBlacklisted(token string) bool {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	expireAt, exists := b.tokens[token]
	if !exists {
		return false
	}
	return time.Now().Before(expireAt)
}

// cleanupTask 定期清理过期的令牌
func (b *MemoryTokenBlacklist) cleanupTask() {
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		b.mutex.Lock()
		now := time.Now()
		for token, expireAt := range b.tokens {
			if now.After(expireAt) {
				delete(b.tokens, token)
			}
		}
		b.mutex.Unlock()
	}
}

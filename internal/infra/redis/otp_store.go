package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	otpKeyPrefix      = "otp:"
	cooldownKeyPrefix = "otp:cooldown:"
)

// OTPStore 基于 Redis 的验证码挑战存储
// 只保存 bcrypt 哈希，TTL 到期自动失效
type OTPStore struct {
	client *redis.Client
}

func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client}
}

// Put 写入验证码哈希，覆盖同邮箱的旧验证码
func (s *OTPStore) Put(ctx context.Context, email, codeHash string, ttl time.Duration) error {
	if err := s.client.Set(ctx, otpKeyPrefix+email, codeHash, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store otp challenge: %w", err)
	}
	return nil
}

// Get 读取验证码哈希，不存在或已过期时 found 为 false
func (s *OTPStore) Get(ctx context.Context, email string) (hash string, found bool, err error) {
	val, err := s.client.Get(ctx, otpKeyPrefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load otp challenge: %w", err)
	}
	return val, true, nil
}

// Delete 删除验证码（单次使用）
func (s *OTPStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, otpKeyPrefix+email).Err(); err != nil {
		return fmt.Errorf("failed to delete otp challenge: %w", err)
	}
	return nil
}

// SetCooldown 设置重发冷却标记
func (s *OTPStore) SetCooldown(ctx context.Context, email string, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, cooldownKeyPrefix+email, 1, d).Err(); err != nil {
		return fmt.Errorf("failed to set otp cooldown: %w", err)
	}
	return nil
}

// InCooldown 查询是否处于重发冷却期
func (s *OTPStore) InCooldown(ctx context.Context, email string) (bool, error) {
	n, err := s.client.Exists(ctx, cooldownKeyPrefix+email).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check otp cooldown: %w", err)
	}
	return n > 0, nil
}

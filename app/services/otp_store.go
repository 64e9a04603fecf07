package services

import (
	"context"
	"sync"
	"time"

	"github.com/shashiranjanraj/kashvi-admin/pkg/cache"
)

// OTPStore keeps one-time signup codes keyed by email. Verify consumes the
// code on success so it cannot be replayed.
type OTPStore interface {
	Save(ctx context.Context, email, code string, ttl time.Duration) error
	Verify(ctx context.Context, email, code string) (bool, error)
}

// RedisOTPStore keeps codes in Redis so they survive restarts and are
// shared across instances.
type RedisOTPStore struct{}

func NewRedisOTPStore() *RedisOTPStore { return &RedisOTPStore{} }

func otpKey(email string) string { return "otp:" + email }

func (s *RedisOTPStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	return cache.Set(otpKey(email), code, ttl)
}

func (s *RedisOTPStore) Verify(ctx context.Context, email, code string) (bool, error) {
	var stored string
	if !cache.Get(otpKey(email), &stored) {
		return false, nil
	}
	if stored != code {
		return false, nil
	}
	return true, cache.Del(otpKey(email))
}

// MemoryOTPStore is an in-process store used in tests and when Redis is
// not available.
type MemoryOTPStore struct {
	mu    sync.Mutex
	codes map[string]memoryOTP
}

type memoryOTP struct {
	code      string
	expiresAt time.Time
}

func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{codes: map[string]memoryOTP{}}
}

func (s *MemoryOTPStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = memoryOTP{code: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryOTPStore) Verify(ctx context.Context, email, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[email]
	if !ok || time.Now().After(entry.expiresAt) || entry.code != code {
		return false, nil
	}
	delete(s.codes, email)
	return true, nil
}

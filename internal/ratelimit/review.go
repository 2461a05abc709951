package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/tripveda/tripveda/internal/config"
)

const (
	keyReviewUser = "booking:review:user:%s"
	keyConfirm    = "booking:confirm:lock:%s"
)

var ErrRateLimited = errors.New("rate_limited")

// ReviewLimiter throttles pricing review calls per user and serializes
// booking confirmation. Disabled (nil-safe) when rate limiting is off.
type ReviewLimiter struct {
	enabled bool

	bucket *TokenBucket
	locker *Locker

	reviewRate  float64
	reviewBurst int
	lockTTL     time.Duration
}

func NewReviewLimiter(cfg config.Config) (*ReviewLimiter, error) {
	if !cfg.RateLimitEnabled {
		return nil, nil
	}

	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if cfg.ReviewRate <= 0 || cfg.ReviewBurst <= 0 {
		return nil, errors.New("review rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(cfg.RedisPassword),
		DB:       cfg.RedisDB,
	})

	return &ReviewLimiter{
		enabled:     true,
		bucket:      NewTokenBucket(client),
		locker:      NewLocker(client),
		reviewRate:  cfg.ReviewRate,
		reviewBurst: cfg.ReviewBurst,
		lockTTL:     time.Duration(cfg.ConfirmLockSeconds) * time.Second,
	}, nil
}

func (l *ReviewLimiter) Enabled() bool {
	return l != nil && l.enabled
}

func (l *ReviewLimiter) AllowReview(ctx context.Context, userID string) (Result, error) {
	if !l.Enabled() {
		return Result{Allowed: true}, nil
	}
	key := fmt.Sprintf(keyReviewUser, strings.TrimSpace(userID))
	return l.bucket.Allow(ctx, key, l.reviewRate, l.reviewBurst)
}

// LockConfirm guards a booking's draft-to-pending transition.
func (l *ReviewLimiter) LockConfirm(ctx context.Context, bookingID string) (func(), error) {
	if !l.Enabled() {
		return func() {}, nil
	}
	return l.locker.Acquire(ctx, fmt.Sprintf(keyConfirm, bookingID), l.lockTTL)
}

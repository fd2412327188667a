package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ViewCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Recorder interface {
	ObserveView(view string, d time.Duration, err error)
	CacheLookup(view string, hit bool)
}

type nopRecorder struct{}

func (nopRecorder) ObserveView(string, time.Duration, error) {}
func (nopRecorder) CacheLookup(string, bool)                 {}

// cachedView returns the cached value for key or builds, stores and returns
// it. Cache failures only cost a recompute.
func cachedView[T any](ctx context.Context, u *Dashboard, view View, key string, build func() T) T {
	var out T
	if u.cache == nil {
		return build()
	}

	hit, err := u.cache.GetJSON(ctx, key, &out)
	if err != nil {
		u.logger.Debug("view cache read failed", zap.String("view", string(view)), zap.Error(err))
	}
	u.metrics.CacheLookup(string(view), hit && err == nil)
	if hit && err == nil {
		return out
	}

	out = build()
	if err := u.cache.SetJSON(ctx, key, out, 0); err != nil {
		u.logger.Debug("view cache write failed", zap.String("view", string(view)), zap.Error(err))
	}
	return out
}

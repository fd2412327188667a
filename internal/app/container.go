package app

import (
	"context"
	"time"

	"skill-insight/internal/config"
	"skill-insight/internal/dataset"
	"skill-insight/internal/domain/ecosystem"
	"skill-insight/internal/infrastructure/cache"
	"skill-insight/internal/metrics"
	"skill-insight/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Container owns the process-wide dependencies. The table is loaded exactly
// once here and shared by reference with every view.
type Container struct {
	Config    config.Config
	Logger    *zap.Logger
	Table     *dataset.Table
	Cache     *cache.Redis
	Metrics   *metrics.Metrics
	Dashboard *usecase.Dashboard
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	table, err := dataset.NewLoader(logger).Load(cfg.Dataset.Path)
	if err != nil {
		return nil, errors.Wrap(err, "load dataset")
	}

	var rc *cache.Redis
	if cfg.Redis.Enabled {
		rc = cache.NewRedis(cfg.Redis, logger.Named("cache"))
		purgeStaleViews(rc, table.Fingerprint, logger)
	}

	return NewContainerWithTable(cfg, logger, table, rc), nil
}

func NewContainerWithTable(cfg config.Config, logger *zap.Logger, table *dataset.Table, rc *cache.Redis) *Container {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := metrics.New()
	m.SetPostings(table.Len())

	deps := usecase.DashboardDeps{
		Detector: ecosystem.NewLouvain(cfg.Analytics.Resolution),
		Metrics:  m,
		Logger:   logger.Named("dashboard"),
	}
	if rc != nil {
		deps.Cache = rc
	}

	dashboard := usecase.NewDashboard(table, usecase.DashboardOptions{
		TopSkills:     cfg.Analytics.TopSkills,
		ChartSkills:   cfg.Analytics.ChartSkills,
		RoadmapSkills: cfg.Analytics.RoadmapSkills,
		Resolution:    cfg.Analytics.Resolution,
	}, deps)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Table:     table,
		Cache:     rc,
		Metrics:   m,
		Dashboard: dashboard,
	}
}

// purgeStaleViews drops views cached for any other dataset fingerprint.
func purgeStaleViews(rc *cache.Redis, fingerprint string, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := rc.PurgeStale(ctx, usecase.ViewCachePattern, usecase.ViewCachePrefix(fingerprint))
	if err != nil {
		logger.Warn("purge stale views failed", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("purged stale views", zap.Int("keys", n))
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}

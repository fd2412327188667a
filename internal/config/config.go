package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	App       AppConfig       `envconfig:"APP"`
	Dataset   DatasetConfig   `envconfig:"DATASET"`
	Analytics AnalyticsConfig `envconfig:"ANALYTICS"`
	Redis     RedisConfig     `envconfig:"REDIS"`
}

// Keys are the parent prefix plus the split field name, e.g. APP_HTTP_PORT.
// Fields carry no envconfig tag of their own: envconfig falls back to the
// bare tag when the prefixed key is unset, so DATASET_PATH would read $PATH.
type AppConfig struct {
	Name     string `split_words:"true" default:"skill-insight"`
	Env      string `split_words:"true" default:"development"`
	HTTPPort string `split_words:"true" default:"8080"`
	LogLevel string `split_words:"true" default:"info"`
}

type DatasetConfig struct {
	Path string `split_words:"true" default:"data/ai_job_dataset.csv"`
}

type AnalyticsConfig struct {
	TopSkills     int     `split_words:"true" default:"20"`
	ChartSkills   int     `split_words:"true" default:"10"`
	RoadmapSkills int     `split_words:"true" default:"10"`
	Resolution    float64 `split_words:"true" default:"1.0"`
}

type RedisConfig struct {
	Enabled  bool          `split_words:"true" default:"false"`
	Host     string        `split_words:"true" default:"localhost"`
	Port     string        `split_words:"true" default:"6379"`
	Password string        `split_words:"true"`
	DB       int           `split_words:"true" default:"0"`
	TTL      time.Duration `split_words:"true" default:"600s"`
}

var errInvalidConfig = errors.New("invalid configuration")

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var invalid []string
	if strings.TrimSpace(c.Dataset.Path) == "" {
		invalid = append(invalid, "DATASET_PATH")
	}
	if c.Analytics.TopSkills <= 0 {
		invalid = append(invalid, "ANALYTICS_TOP_SKILLS")
	}
	if c.Analytics.ChartSkills <= 0 {
		invalid = append(invalid, "ANALYTICS_CHART_SKILLS")
	}
	if c.Analytics.RoadmapSkills <= 0 {
		invalid = append(invalid, "ANALYTICS_ROADMAP_SKILLS")
	}
	if c.Analytics.Resolution <= 0 {
		invalid = append(invalid, "ANALYTICS_RESOLUTION")
	}
	if c.Redis.Enabled && c.Redis.TTL <= 0 {
		invalid = append(invalid, "REDIS_TTL")
	}

	if len(invalid) > 0 {
		return fmt.Errorf("%w: %s", errInvalidConfig, strings.Join(invalid, ", "))
	}
	return nil
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

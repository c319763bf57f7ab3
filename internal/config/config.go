package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"english_edu_backend/internal/model"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Storage    StorageConfig    `mapstructure:"storage"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Assessment AssessmentConfig `mapstructure:"assessment"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool `mapstructure:"-"` // 强制执行数据库迁移
	MigrateOnly  bool `mapstructure:"-"` // 仅迁移模式（迁移后退出）
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// AssessmentConfig 评估引擎相关配置。Levels 可整体覆盖内置门槛表，
// 加载时校验单调性，校验不过直接拒绝启动
type AssessmentConfig struct {
	WindowDays      int                                       `mapstructure:"window_days"`
	CacheTTLMinutes int                                       `mapstructure:"cache_ttl_minutes"`
	Levels          map[string]map[string]model.LevelRequirement `mapstructure:"levels"`

	// 解析校验后的门槛表，只读
	Table model.LevelRequirementTable `mapstructure:"-"`
}

// CacheTTL 评估结果缓存时长
func (c AssessmentConfig) CacheTTL() time.Duration {
	minutes := c.CacheTTLMinutes
	if minutes <= 0 {
		minutes = 10
	}
	return time.Duration(minutes) * time.Minute
}

// Window 统计窗口长度
func (c AssessmentConfig) Window() time.Duration {
	days := c.WindowDays
	if days <= 0 {
		days = 30
	}
	return time.Duration(days) * 24 * time.Hour
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ENGLISH_EDU")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	table, err := buildLevelTable(cfg.Assessment.Levels)
	if err != nil {
		return nil, err
	}
	cfg.Assessment.Table = table

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}

// buildLevelTable 把配置中的门槛覆盖（可省略，省略项用内置默认值）
// 归一化成完整门槛表并做单调性校验。viper 会把键转成小写，
// 这里统一按大写等级、小写模块解析。
func buildLevelTable(overrides map[string]map[string]model.LevelRequirement) (model.LevelRequirementTable, error) {
	table := model.DefaultLevelRequirements()

	for rawLevel, row := range overrides {
		level := model.CEFRLevel(strings.ToUpper(rawLevel))
		if !level.Valid() {
			return nil, fmt.Errorf("level requirement config: unknown CEFR level %q", rawLevel)
		}
		for rawModule, req := range row {
			module := model.SkillModule(strings.ToLower(rawModule))
			if !module.Valid() || !module.Assessed() {
				return nil, fmt.Errorf("level requirement config: unknown module %q", rawModule)
			}
			table[level][module] = req
		}
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Package config загружает настройки сервера из флагов, переменных окружения,
// .env и конфигурационного файла.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения: PHRASESYNC_ADDR, PHRASESYNC_STORE_DRIVER, ...
const EnvPrefix = "PHRASESYNC"

// Драйверы Remote Store
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

// Config настройки сервера
type Config struct {
	Translate       TranslateConfig `mapstructure:"translate"`
	Log             LogConfig       `mapstructure:"log"`
	Store           StoreConfig     `mapstructure:"store"`
	Addr            string          `mapstructure:"addr"`
	RateLimit       RateLimitConfig `mapstructure:"ratelimit"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
}

// StoreConfig выбор и параметры backend-а Remote Store
type StoreConfig struct {
	Driver      string   `mapstructure:"driver"`
	SQLitePath  string   `mapstructure:"sqlite_path"`
	PostgresDSN string   `mapstructure:"postgres_dsn"`
	S3          S3Config `mapstructure:"s3"`
}

// S3Config параметры S3-совместимого хранилища
type S3Config struct {
	Bucket       string `mapstructure:"bucket"`
	Region       string `mapstructure:"region"`
	Endpoint     string `mapstructure:"endpoint"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	Prefix       string `mapstructure:"prefix"`
	UsePathStyle bool   `mapstructure:"use_path_style"`
}

// Limit окно rate limit
type Limit struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// RateLimitConfig лимиты по группам эндпоинтов
type RateLimitConfig struct {
	Phrases   Limit `mapstructure:"phrases"`
	Translate Limit `mapstructure:"translate"`
}

// TranslateConfig параметры сервиса перевода. Пустой ключ отключает /translate.
type TranslateConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// LogConfig параметры логирования
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// SetDefaults задает значения по умолчанию
func SetDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.sqlite_path", "phrasesync.db")
	v.SetDefault("store.postgres_dsn", "")
	v.SetDefault("store.s3.bucket", "")
	v.SetDefault("store.s3.region", "us-east-1")
	v.SetDefault("store.s3.endpoint", "")
	v.SetDefault("store.s3.access_key", "")
	v.SetDefault("store.s3.secret_key", "")
	v.SetDefault("store.s3.prefix", "")
	v.SetDefault("store.s3.use_path_style", false)

	v.SetDefault("ratelimit.phrases.requests", 60)
	v.SetDefault("ratelimit.phrases.window", 60*time.Second)
	v.SetDefault("ratelimit.translate.requests", 20)
	v.SetDefault("ratelimit.translate.window", 60*time.Second)

	v.SetDefault("translate.api_key", "")
	v.SetDefault("translate.model", "")
	v.SetDefault("translate.base_url", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
}

// RegisterFlags добавляет флаги сервера и связывает их с ключами viper
func RegisterFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String("addr", ":8080", "HTTP listen address")
	fs.String("store-driver", DriverSQLite, "remote store backend: sqlite, postgres or s3")
	fs.String("sqlite-path", "phrasesync.db", "SQLite database file")
	fs.String("postgres-dsn", "", "PostgreSQL connection string")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-format", "text", "log format: text or json")
	fs.String("log-file", "", "write logs to a rotating file instead of stderr")

	bindings := map[string]string{
		"addr":               "addr",
		"store.driver":       "store-driver",
		"store.sqlite_path":  "sqlite-path",
		"store.postgres_dsn": "postgres-dsn",
		"log.level":          "log-level",
		"log.format":         "log-format",
		"log.file":           "log-file",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	return nil
}

// New создает viper с окружением PHRASESYNC_* и значениями по умолчанию
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv загружает переменные из .env файлов, если они существуют.
// Уже заданные переменные окружения не перезаписываются.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	var errs []error
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to load %s: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

// Load читает конфигурационный файл (если задан) и собирает Config
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}

	switch c.Store.Driver {
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("store.sqlite_path is required for sqlite driver")
		}
	case DriverPostgres:
		if c.Store.PostgresDSN == "" {
			return errors.New("store.postgres_dsn is required for postgres driver")
		}
	case DriverS3:
		if c.Store.S3.Bucket == "" {
			return errors.New("store.s3.bucket is required for s3 driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	for name, l := range map[string]Limit{"phrases": c.RateLimit.Phrases, "translate": c.RateLimit.Translate} {
		if l.Requests <= 0 || l.Window <= 0 {
			return fmt.Errorf("ratelimit.%s must have positive requests and window", name)
		}
	}

	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be positive")
	}

	return nil
}

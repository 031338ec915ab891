// Package config загружает настройки CLI клиента.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения: PHRASESYNC_SERVER, PHRASESYNC_DB, ...
const EnvPrefix = "PHRASESYNC"

// Config настройки клиента
type Config struct {
	Server     string        `mapstructure:"server"`
	DBPath     string        `mapstructure:"db"`
	LogLevel   string        `mapstructure:"log_level"`
	LogFile    string        `mapstructure:"log_file"`
	Debounce   time.Duration `mapstructure:"debounce"`
	QuotaBytes int           `mapstructure:"quota_bytes"` // 0 - без ограничения
}

// SetDefaults задает значения по умолчанию
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server", "http://localhost:8080")
	v.SetDefault("db", "phrasesync-client.db")
	v.SetDefault("debounce", time.Second)
	v.SetDefault("quota_bytes", 5<<20)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
}

// RegisterFlags добавляет глобальные флаги клиента и связывает их с viper
func RegisterFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String("server", "http://localhost:8080", "sync server URL")
	fs.String("db", "phrasesync-client.db", "path to local cache database")
	fs.Duration("debounce", time.Second, "delay before pushing local changes to the server")
	fs.Int("quota-bytes", 5<<20, "max size of the cached collection in bytes, 0 for unlimited")
	fs.String("log-level", "warn", "log level: debug, info, warn, error")
	fs.String("log-file", "", "write logs to a rotating file instead of stderr")

	bindings := map[string]string{
		"server":      "server",
		"db":          "db",
		"debounce":    "debounce",
		"quota_bytes": "quota-bytes",
		"log_level":   "log-level",
		"log_file":    "log-file",
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

// Load собирает Config из viper
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Server = strings.TrimRight(cfg.Server, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет настройки
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid server URL %q", c.Server)
	}
	if c.DBPath == "" {
		return errors.New("db path is required")
	}
	if c.Debounce <= 0 {
		return errors.New("debounce must be positive")
	}
	if c.QuotaBytes < 0 {
		return errors.New("quota_bytes must not be negative")
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log   Logger     `mapstructure:"logger"`
	DB    Database   `mapstructure:"database"`
	API   API        `mapstructure:"api"`
	Auth  Auth       `mapstructure:"auth"`
	Cache Cache      `mapstructure:"cache"`
	Rate  RateLimits `mapstructure:"rate_limits"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port int `mapstructure:"port"`
}

type Auth struct {
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	BcryptCost      int           `mapstructure:"bcrypt_cost"`
	CleanupSchedule string        `mapstructure:"cleanup_schedule"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
	LedgerExpiration  time.Duration `mapstructure:"ledger_expiration"`
}

type RateLimits struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
	UserPerSecond     float64 `mapstructure:"user_per_second"`
	UserBurst         int     `mapstructure:"user_burst"`
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("auth.session_ttl", 24*time.Hour)
	viper.SetDefault("auth.bcrypt_cost", 12)
	viper.SetDefault("auth.cleanup_schedule", "0 * * * *")
	viper.SetDefault("cache.default_expiration", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
	viper.SetDefault("cache.ledger_expiration", 30*time.Minute)
	viper.SetDefault("rate_limits.requests_per_second", 10)
	viper.SetDefault("rate_limits.burst", 30)
	viper.SetDefault("rate_limits.user_per_second", 5)
	viper.SetDefault("rate_limits.user_burst", 15)
}

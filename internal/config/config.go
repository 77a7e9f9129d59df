package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `yaml:"app" mapstructure:"app"`
	API    APIConfig    `yaml:"api" mapstructure:"api"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Redis  RedisConfig  `yaml:"redis" mapstructure:"redis"`
	Poll   PollConfig   `yaml:"poll" mapstructure:"poll"`
}

type AppConfig struct {
	Environment string `yaml:"environment" mapstructure:"environment"`
	LogLevel    string `yaml:"log_level" mapstructure:"log_level"`
}

// APIConfig describes the backend metrics API this dashboard polls.
type APIConfig struct {
	BaseURL          string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSeconds   int     `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	Retries          int     `yaml:"retries" mapstructure:"retries"`
	BackoffFactor    float64 `yaml:"backoff_factor" mapstructure:"backoff_factor"`
	CacheTTLMinutes  int     `yaml:"cache_ttl_minutes" mapstructure:"cache_ttl_minutes"`
	HealthTTLSeconds int     `yaml:"health_ttl_seconds" mapstructure:"health_ttl_seconds"`
	TVLHistoryDays   int     `yaml:"tvl_history_days" mapstructure:"tvl_history_days"`
	TPSHistoryDays   int     `yaml:"tps_history_days" mapstructure:"tps_history_days"`
}

type ServerConfig struct {
	Host           string   `yaml:"host" mapstructure:"host"`
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// RedisConfig is optional. When Host is empty the dashboard uses the
// in-memory cache.
type RedisConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     string `yaml:"port" mapstructure:"port"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
}

type PollConfig struct {
	DataIntervalMinutes   int `yaml:"data_interval_minutes" mapstructure:"data_interval_minutes"`
	HealthIntervalMinutes int `yaml:"health_interval_minutes" mapstructure:"health_interval_minutes"`
}

func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.API.BaseURL = getEnv("API_BASE_URL", config.API.BaseURL)
	config.Redis.Password = getEnv("REDIS_PASSWORD", config.Redis.Password)

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("api.timeout_seconds", 30)
	viper.SetDefault("api.retries", 3)
	viper.SetDefault("api.backoff_factor", 2.0)
	viper.SetDefault("api.cache_ttl_minutes", 15)
	viper.SetDefault("api.health_ttl_seconds", 30)
	viper.SetDefault("api.tvl_history_days", 30)
	viper.SetDefault("api.tps_history_days", 30)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("poll.data_interval_minutes", 15)
	viper.SetDefault("poll.health_interval_minutes", 5)
}

// Validate rejects configurations no fetch could ever succeed under. A
// missing or malformed base URL is fatal at startup rather than degraded at
// runtime.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required (set API_BASE_URL)")
	}

	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL, got %q", c.API.BaseURL)
	}

	if c.API.Retries <= 0 {
		return fmt.Errorf("api.retries must be positive")
	}

	if c.API.BackoffFactor < 1 {
		return fmt.Errorf("api.backoff_factor must be >= 1")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port number")
	}

	return nil
}

func (c *Config) SafeString() string {
	return fmt.Sprintf(`Config:
		Environment: %s
		Log Level: %s

		API:
			Base URL: %s
			Timeout: %ds
			Retries: %d
			Backoff Factor: %.1f
			Cache TTL: %d min
			Health TTL: %ds

		Server:
			Listen: %s:%d
			Allowed Origins: %v

		Redis:
			Host: %s:%s
			Database: %d

		Poll:
			Data Interval: %d min
			Health Interval: %d min
		`,
		c.App.Environment,
		c.App.LogLevel,
		c.API.BaseURL,
		c.API.TimeoutSeconds,
		c.API.Retries,
		c.API.BackoffFactor,
		c.API.CacheTTLMinutes,
		c.API.HealthTTLSeconds,
		c.Server.Host,
		c.Server.Port,
		c.Server.AllowedOrigins,
		c.Redis.Host,
		c.Redis.Port,
		c.Redis.DB,
		c.Poll.DataIntervalMinutes,
		c.Poll.HealthIntervalMinutes,
	)
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	return value
}

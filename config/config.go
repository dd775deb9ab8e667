package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log       Logger    `mapstructure:"logger"`
	API       API       `mapstructure:"api"`
	Backend   Backend   `mapstructure:"backend"`
	Session   Session   `mapstructure:"session"`
	RateLimit RateLimit `mapstructure:"ratelimit"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Backend points at the analysis API the views are rendered from.
type Backend struct {
	BaseURL          string        `mapstructure:"base_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxRequestPerMin int           `mapstructure:"max_request_per_min"`
}

type Session struct {
	CookieName      string        `mapstructure:"cookie_name"`
	IdleExpiration  time.Duration `mapstructure:"idle_expiration"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type RateLimit struct {
	RequestPerSecond float64       `mapstructure:"request_per_second"`
	Burst            int           `mapstructure:"burst"`
	ExpiresIn        time.Duration `mapstructure:"expires_in"`
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.shutdown_timeout", 10*time.Second)
	viper.SetDefault("backend.base_url", "http://localhost:5000")
	viper.SetDefault("backend.timeout", 60*time.Second)
	viper.SetDefault("backend.max_request_per_min", 120)
	viper.SetDefault("session.cookie_name", "dashboard_session")
	viper.SetDefault("session.idle_expiration", 30*time.Minute)
	viper.SetDefault("session.cleanup_interval", 5*time.Minute)
	viper.SetDefault("ratelimit.request_per_second", 10)
	viper.SetDefault("ratelimit.burst", 30)
	viper.SetDefault("ratelimit.expires_in", 3*time.Minute)
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded:", err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required")
	}

	return &cfg, nil
}

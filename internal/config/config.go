package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Geocoding GeocodingConfig
	Weather   WeatherConfig
	Cache     CacheConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	ForecastDays int // Number of days to forecast
}

// GeocodingConfig holds settings for the Nominatim geocoding provider
type GeocodingConfig struct {
	BaseURL   string
	UserAgent string
}

// WeatherConfig holds settings for the OpenWeatherMap provider
type WeatherConfig struct {
	BaseURL string
	APIKey  string
	Units   string // imperial, metric, standard
	// Timeout bounds both concurrent weather calls together; zero leaves
	// only the HTTP client's own behavior.
	Timeout time.Duration
}

// CacheConfig holds cache store configuration
type CacheConfig struct {
	Backend         string // memory, redis
	TTL             time.Duration
	CleanupInterval time.Duration // memory backend janitor sweep; 0 disables
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.forecast-service")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("app.forecastDays", 4)
	viper.SetDefault("geocoding.baseURL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("geocoding.userAgent", "forecast-service/1.0")
	viper.SetDefault("weather.baseURL", "https://api.openweathermap.org")
	viper.SetDefault("weather.units", "imperial")
	viper.SetDefault("weather.timeout", time.Duration(0))
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.ttl", 30*time.Minute)
	viper.SetDefault("cache.cleanupInterval", 5*time.Minute)
	viper.SetDefault("cache.redisAddr", "localhost:6379")
	viper.SetDefault("cache.redisPassword", "")
	viper.SetDefault("cache.redisDB", 0)

	// Read from environment variables
	viper.SetEnvPrefix("FORECAST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

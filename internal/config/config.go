package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	// DefaultUserAgent is the User-Agent sent to TVMaze when none is configured.
	DefaultUserAgent = "ShowBrowser/2 (+https://github.com/Belphemur/ShowBrowser)"

	// DefaultTvMazeDomain is the public TVMaze REST API.
	DefaultTvMazeDomain = "https://api.tvmaze.com"

	// DefaultPlaceholderImageURL is shown for shows that have no poster.
	DefaultPlaceholderImageURL = "https://static.tvmaze.com/images/no-img/no-img-portrait-text.png"
)

type Config struct {
	TvMazeDomain          string `mapstructure:"tvmaze_domain"`
	PlaceholderImageURL   string `mapstructure:"placeholder_image_url"`
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string, empty means no timeout
	UserAgent             string `mapstructure:"user_agent"`
	RateLimit             struct {
		Requests int    `mapstructure:"requests"` // 0 disables the limiter
		Period   string `mapstructure:"period"`
	} `mapstructure:"rate_limit"`
	Server struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	LogLevel string `mapstructure:"log_level"`
	Session  struct {
		Provider string `mapstructure:"provider"` // "memory" or "redis"
		Size     int    `mapstructure:"size"`
		TTL      string `mapstructure:"ttl"`
		Redis    struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"session"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	level := zerolog.InfoLevel
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)

	logger.Debug().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("log_level", "LOG_LEVEL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.PlaceholderImageURL == "" {
		config.PlaceholderImageURL = DefaultPlaceholderImageURL
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tvmaze_domain", DefaultTvMazeDomain)
	v.SetDefault("placeholder_image_url", DefaultPlaceholderImageURL)
	v.SetDefault("client_timeout", "")
	v.SetDefault("rate_limit.requests", 20)
	v.SetDefault("rate_limit.period", "10s")
	v.SetDefault("server.address", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("session.provider", "memory")
	v.SetDefault("session.size", 10000)
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.redis.address", "localhost:6379")
	v.SetDefault("session.redis.db", 0)
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

func GetConfig() *Config {
	return globalConfig
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}

// ParseDuration parses a Go duration string from the config, falling back to
// def when the value is empty or invalid. Invalid values are logged.
func ParseDuration(field, value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Err(err).Str("field", field).Str("value", value).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}

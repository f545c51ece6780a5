// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string         `mapstructure:"env"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Speech   SpeechConfig   `mapstructure:"speech"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// AppConfig holds the trainer defaults.
type AppConfig struct {
	DefaultSessionSize int           `mapstructure:"default_session_size" validate:"min=1,max=100"`
	MaxSessionSize     int           `mapstructure:"max_session_size" validate:"min=1,max=100"`
	DefaultLevel       string        `mapstructure:"default_level" validate:"oneof=A1 B1 B2"`
	DefaultTense       string        `mapstructure:"default_tense" validate:"oneof=present past future"`
	GameSettleDelay    time.Duration `mapstructure:"game_settle_delay" validate:"gte=0"`
}

// CatalogConfig selects where verbs come from. RefreshInterval 0 disables
// periodic reloading.
type CatalogConfig struct {
	Source          string        `mapstructure:"source" validate:"oneof=builtin file http excel"`
	Location        string        `mapstructure:"location" validate:"required_unless=Source builtin"`
	Timeout         time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval" validate:"gte=0"`
}

type SpeechConfig struct {
	GoogleTTSEnabled bool    `mapstructure:"google_tts_enabled"`
	LanguageCode     string  `mapstructure:"language_code" validate:"required"`
	VoiceName        string  `mapstructure:"voice_name"`
	SpeakingRate     float64 `mapstructure:"speaking_rate" validate:"gt=0,lte=4"`
}

// IsDev reports whether the process runs in the dev environment.
func (c *Config) IsDev() bool {
	return strings.EqualFold(c.Env, "dev")
}

// LoadConfig reads config.yaml from path or the working directory, then
// applies a .env file and APP_-prefixed environment overrides.
// A missing config file is not an error.
func LoadConfig(path string) (*Config, error) {
	logger := slog.Default().With(slog.String("component", "config"))

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("Could not load .env file", slog.Any("error", err))
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("env", "APP_ENV")
	v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")
	v.BindEnv("speech.google_tts_enabled", "APP_SPEECH_GOOGLE_TTS_ENABLED", "GOOGLE_TTS_ENABLED")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.LoadConfig: read: %w", err)
		}
		logger.Warn("Config file not found, using defaults and environment")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.LoadConfig: unmarshal: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.App.DefaultLevel = strings.ToUpper(cfg.App.DefaultLevel)
	cfg.App.DefaultTense = strings.ToLower(cfg.App.DefaultTense)
	cfg.Catalog.Source = strings.ToLower(cfg.Catalog.Source)
	if cfg.App.DefaultSessionSize > cfg.App.MaxSessionSize {
		cfg.App.DefaultSessionSize = cfg.App.MaxSessionSize
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config.LoadConfig: invalid configuration: %w", err)
	}

	logger.Info("Config loaded",
		slog.String("port", cfg.Server.Port),
		slog.String("catalog_source", cfg.Catalog.Source),
		slog.Duration("catalog_refresh", cfg.Catalog.RefreshInterval),
		slog.Bool("google_tts", cfg.Speech.GoogleTTSEnabled),
	)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "")
	v.SetDefault("database.url", DefaultDatabaseURL)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.idle_timeout", DefaultIdleTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("server.request_timeout", DefaultRequestTimeout)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("app.default_session_size", DefaultSessionSize)
	v.SetDefault("app.max_session_size", DefaultMaxSessionSize)
	v.SetDefault("app.default_level", DefaultLevel)
	v.SetDefault("app.default_tense", DefaultTense)
	v.SetDefault("app.game_settle_delay", DefaultGameSettleDelay)
	v.SetDefault("catalog.source", DefaultCatalogSource)
	v.SetDefault("catalog.location", "")
	v.SetDefault("catalog.timeout", DefaultCatalogTimeout)
	v.SetDefault("catalog.refresh_interval", time.Duration(0))
	v.SetDefault("speech.google_tts_enabled", false)
	v.SetDefault("speech.language_code", DefaultSpeechLanguageCode)
	v.SetDefault("speech.voice_name", "")
	v.SetDefault("speech.speaking_rate", DefaultSpeechRate)
}

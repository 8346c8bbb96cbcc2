package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Voice assistant specifics
	Gemini    GeminiConfig
	Google    GoogleSpeechConfig
	Assistant AssistantConfig
	Database  DatabaseConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig configures the generative-language collaborator.
type GeminiConfig struct {
	APIKey         string
	Model          string
	FallbackModels []string
	Timeout        time.Duration
}

// GoogleSpeechConfig configures Cloud Text-to-Speech and Speech-to-Text.
type GoogleSpeechConfig struct {
	APIKey       string
	TTSVoice     string
	TTSRate      float64
	LanguageCode string
}

// AssistantConfig holds the session and rate-limit knobs for the
// command-dispatch engine.
type AssistantConfig struct {
	MaxRequestsPerMinute   int
	RateLimitWindowSeconds int
	RateLimitBurst         int
	MaxSessions            int
	SessionTimeoutSeconds  int
	MaxCommandLength       int
}

type DatabaseConfig struct {
	Path string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.FallbackModels = viper.GetStringSlice("gemini.fallback_models")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// Google speech services
	cfg.Google.APIKey = viper.GetString("google.api_key")
	cfg.Google.TTSVoice = viper.GetString("google.tts_voice")
	cfg.Google.TTSRate = viper.GetFloat64("google.tts_rate")
	cfg.Google.LanguageCode = viper.GetString("google.language_code")
	if key := viper.GetString("google_api_key"); key != "" {
		cfg.Google.APIKey = key
	}

	// Assistant engine
	cfg.Assistant.MaxRequestsPerMinute = viper.GetInt("assistant.max_requests_per_minute")
	cfg.Assistant.RateLimitWindowSeconds = viper.GetInt("assistant.rate_limit_window_seconds")
	cfg.Assistant.RateLimitBurst = viper.GetInt("assistant.rate_limit_burst")
	cfg.Assistant.MaxSessions = viper.GetInt("assistant.max_sessions")
	cfg.Assistant.SessionTimeoutSeconds = viper.GetInt("assistant.session_timeout_seconds")
	cfg.Assistant.MaxCommandLength = viper.GetInt("assistant.max_command_length")

	// Database
	cfg.Database.Path = viper.GetString("database.path")
	if path := viper.GetString("database_path"); path != "" {
		cfg.Database.Path = path
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.fallback_models", []string{"gemini-2.5-flash", "gemini-2.5-flash-lite"})
	viper.SetDefault("gemini.timeout", "30s")

	viper.SetDefault("google.tts_voice", "en-US-Neural2-A")
	viper.SetDefault("google.tts_rate", 1.0)
	viper.SetDefault("google.language_code", "en-US")

	viper.SetDefault("assistant.max_requests_per_minute", 30)
	viper.SetDefault("assistant.rate_limit_window_seconds", 60)
	viper.SetDefault("assistant.rate_limit_burst", 60)
	viper.SetDefault("assistant.max_sessions", 1000)
	viper.SetDefault("assistant.session_timeout_seconds", 3600)
	viper.SetDefault("assistant.max_command_length", 1000)

	viper.SetDefault("database.path", "voice_assistant.db")
}

// validate enforces startup invariants that cannot be recovered from later.
func (cfg *Config) validate() error {
	a := cfg.Assistant
	if a.MaxRequestsPerMinute <= 0 {
		return fmt.Errorf("assistant.max_requests_per_minute must be positive, got %d", a.MaxRequestsPerMinute)
	}
	if a.RateLimitWindowSeconds <= 0 {
		return fmt.Errorf("assistant.rate_limit_window_seconds must be positive, got %d", a.RateLimitWindowSeconds)
	}
	// The window queue must be able to hold at least one full threshold of
	// timestamps, otherwise the limiter can never reject.
	if a.RateLimitBurst < a.MaxRequestsPerMinute {
		return fmt.Errorf(
			"assistant.rate_limit_burst (%d) must be >= assistant.max_requests_per_minute (%d)",
			a.RateLimitBurst, a.MaxRequestsPerMinute,
		)
	}
	if a.MaxSessions <= 0 {
		return fmt.Errorf("assistant.max_sessions must be positive, got %d", a.MaxSessions)
	}
	if a.SessionTimeoutSeconds <= 0 {
		return fmt.Errorf("assistant.session_timeout_seconds must be positive, got %d", a.SessionTimeoutSeconds)
	}
	if a.MaxCommandLength <= 0 {
		return fmt.Errorf("assistant.max_command_length must be positive, got %d", a.MaxCommandLength)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`        // current application environment (local, dev, production etc)
	StorePath        string `mapstructure:"store_path"` // path to the JSON file holding the vocabulary
	TelegramAPIToken string `mapstructure:"-"`          // Telegram API token loaded from environment; empty disables the bot
	HTTP             HTTP   `mapstructure:"http"`       // HTTP server configuration section
	Quiz             Quiz   `mapstructure:"quiz"`       // quiz tuning section
}

// HTTP contains HTTP server configuration parameters.
type HTTP struct {
	Addr            string        `mapstructure:"addr"`             // listen address, e.g. ":8080"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`     // maximum duration for reading a request
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`    // maximum duration for writing a response
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"` // grace period on shutdown
}

// Quiz contains quiz-related tuning parameters.
type Quiz struct {
	QuestionsPerSession int `mapstructure:"questions_per_session"` // questions per practice session in the bot
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("store_path", "data/vocabulary.json")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", "10s")
	v.SetDefault("http.write_timeout", "10s")
	v.SetDefault("http.shutdown_timeout", "5s")
	v.SetDefault("quiz.questions_per_session", 5)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("store_path", "STORE_PATH")
	_ = v.BindEnv("http.addr", "HTTP_ADDR")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// The bot is optional: without a token only the HTTP API runs.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")

	return &cfg, nil
}

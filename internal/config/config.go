package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Display    DisplayConfig    `mapstructure:"display"`
	Quiz       QuizConfig       `mapstructure:"quiz"`
	Server     ServerConfig     `mapstructure:"server"`
}

type VocabularyConfig struct {
	// Endpoint is the base URL of the vocabulary service.
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`
	// Timeout aborts an in-flight fetch and triggers the fallback path.
	Timeout       time.Duration `mapstructure:"timeout" validate:"min=1ms"`
	RetryAttempts uint          `mapstructure:"retry_attempts"`
	// File, when set, replaces the remote service with a local YAML file.
	File string `mapstructure:"file"`
	// CachePath, when set, keeps the last good fetch in a SQLite file.
	CachePath string `mapstructure:"cache_path"`
}

type DisplayConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh_interval" validate:"min=1s"`
}

type QuizConfig struct {
	DistractorCount int `mapstructure:"distractor_count" validate:"min=1"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port" validate:"min=1,max=65535"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/japanese-word-display")
	}

	v.SetDefault("vocabulary.endpoint", "https://jlpt-vocab-api.vercel.app")
	v.SetDefault("vocabulary.timeout", "5s")
	v.SetDefault("vocabulary.retry_attempts", 2)
	v.SetDefault("display.refresh_interval", "3m")
	v.SetDefault("quiz.distractor_count", 3)
	v.SetDefault("server.port", 8765)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// The environment variable takes precedence over the config file value.
	if err := v.BindEnv("vocabulary.endpoint", "WORD_DISPLAY_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("failed to bind WORD_DISPLAY_ENDPOINT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable game and application parameters.
type Config struct {
	Game struct {
		QuestionsPerRound int `yaml:"questions_per_round"`
		RoundSeconds      int `yaml:"round_seconds"`
		CountdownSeconds  int `yaml:"countdown_seconds"`
		TickMillis        int `yaml:"tick_millis"`
	} `yaml:"game"`
	History struct {
		DatabasePath string `yaml:"database_path"`
		RecentLimit  int    `yaml:"recent_limit"`
	} `yaml:"history"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Game.QuestionsPerRound = 10
	cfg.Game.RoundSeconds = 60
	cfg.Game.CountdownSeconds = 3
	cfg.Game.TickMillis = 100
	cfg.History.DatabasePath = defaultDatabasePath()
	cfg.History.RecentLimit = 10
	return cfg
}

// Load reads the YAML config at path, falling back to defaults for missing
// values. A missing file is not an error; environment overrides are applied
// last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RoundDuration returns the playing-phase length as a duration.
func (c *Config) RoundDuration() time.Duration {
	return time.Duration(c.Game.RoundSeconds) * time.Second
}

// TickInterval returns the UI refresh tick interval.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Game.TickMillis) * time.Millisecond
}

func (c *Config) applyEnvOverrides() {
	c.Game.QuestionsPerRound = getEnvAsInt("QUICKMATH_QUESTIONS", c.Game.QuestionsPerRound)
	c.Game.RoundSeconds = getEnvAsInt("QUICKMATH_ROUND_SECONDS", c.Game.RoundSeconds)
	c.Game.CountdownSeconds = getEnvAsInt("QUICKMATH_COUNTDOWN_SECONDS", c.Game.CountdownSeconds)
	c.History.DatabasePath = getEnv("QUICKMATH_DB_PATH", c.History.DatabasePath)
}

func (c *Config) validate() error {
	if c.Game.QuestionsPerRound < 1 {
		return fmt.Errorf("invalid questions_per_round: %d", c.Game.QuestionsPerRound)
	}
	if c.Game.RoundSeconds < 1 {
		return fmt.Errorf("invalid round_seconds: %d", c.Game.RoundSeconds)
	}
	if c.Game.CountdownSeconds < 0 {
		return fmt.Errorf("invalid countdown_seconds: %d", c.Game.CountdownSeconds)
	}
	if c.Game.TickMillis < 10 {
		return fmt.Errorf("invalid tick_millis: %d", c.Game.TickMillis)
	}
	return nil
}

func defaultDatabasePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "quickmath.db"
	}
	return filepath.Join(configDir, "quickmath", "history.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

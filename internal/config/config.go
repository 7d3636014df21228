package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Address           string        `yaml:"address"`
	MaxPostLength     int           `yaml:"max_post_length"`     // runes, longer posts are rejected before moderation
	MaxResponseLength int           `yaml:"max_response_length"` // runes
	Model             string        `yaml:"model"`
	ModerationTimeout time.Duration `yaml:"moderation_timeout"`
	SuggestTimeout    time.Duration `yaml:"suggest_timeout"`
	ClusterTimeout    time.Duration `yaml:"cluster_timeout"`
	AllowedOrigins    []string      `yaml:"allowed_origins"`
	LogLevel          string        `yaml:"log_level"`
	LogJSON           bool          `yaml:"log_json"`
	SeedDemoData      bool          `yaml:"seed_demo_data"`
}

type Private struct {
	GeminiApiKey string `yaml:"gemini_api_key"`
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

// Default returns a config with reference-behavior limits, for tests and local runs.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.Address == "" {
		c.Public.Address = ":8080"
	}
	if c.Public.MaxPostLength == 0 {
		c.Public.MaxPostLength = 500
	}
	if c.Public.MaxResponseLength == 0 {
		c.Public.MaxResponseLength = 300
	}
	if c.Public.Model == "" {
		c.Public.Model = "gemini-2.0-flash"
	}
	if c.Public.ModerationTimeout == 0 {
		c.Public.ModerationTimeout = 15 * time.Second
	}
	if c.Public.SuggestTimeout == 0 {
		c.Public.SuggestTimeout = 20 * time.Second
	}
	if c.Public.ClusterTimeout == 0 {
		c.Public.ClusterTimeout = 45 * time.Second
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
}

// Package config loads application configuration from defaults, an
// optional TOML file, and INTERVIEWPREP_* environment variables, in
// that order. Command flags override on top where a command defines
// them. LLM API keys are read from the environment by the llm package
// and never live in the config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Content  ContentConfig
	Markdown MarkdownConfig
	LLM      LLMConfig
	Quiz     QuizConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// ContentConfig holds guide/challenge content settings.
type ContentConfig struct {
	// Dir overrides the embedded content with a directory on disk.
	// Empty means embedded content.
	Dir string
}

// MarkdownConfig holds terminal rendering settings.
type MarkdownConfig struct {
	// Style selects the glamour style: auto, dark, light, or notty.
	Style string
}

// LLMConfig holds provider selection. Empty provider means probe
// standard API key env vars and pick the first configured one.
type LLMConfig struct {
	Provider string
	Model    string
}

// QuizConfig holds drill settings.
type QuizConfig struct {
	DurationMins int
	// PreferLLM selects LLM generation when a provider is configured;
	// the curated bank is used otherwise and as the fallback.
	PreferLLM bool
}

// Load reads configuration from file and env. The path argument (from
// --config) wins over the INTERVIEWPREP_CONFIG env var; both win over
// the default search path ~/.config/interviewprep/config.toml.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", "")
	v.SetDefault("content.dir", "")
	v.SetDefault("markdown.style", "auto")
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("quiz.duration_mins", 10)
	v.SetDefault("quiz.prefer_llm", true)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("INTERVIEWPREP_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(configHome(), "interviewprep"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("INTERVIEWPREP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Absent config file is fine; defaults and env carry it.
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// configHome returns $XDG_CONFIG_HOME or ~/.config.
func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// Point the search path at an empty dir so a real user config
	// cannot leak into the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("INTERVIEWPREP_CONFIG", "")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Markdown.Style != "auto" {
		t.Errorf("markdown style = %q, want auto", c.Markdown.Style)
	}
	if c.Quiz.DurationMins != 10 {
		t.Errorf("quiz duration = %d, want 10", c.Quiz.DurationMins)
	}
	if !c.Quiz.PreferLLM {
		t.Error("prefer_llm should default to true")
	}
	if c.Database.Path != "" {
		t.Errorf("database path = %q, want empty", c.Database.Path)
	}
	if c.LLM.Provider != "" {
		t.Errorf("llm provider = %q, want empty", c.LLM.Provider)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfigFile(t, `
[database]
path = "/tmp/prep-test.db"

[markdown]
style = "light"

[quiz]
duration_mins = 15
prefer_llm = false
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Database.Path != "/tmp/prep-test.db" {
		t.Errorf("database path = %q, want /tmp/prep-test.db", c.Database.Path)
	}
	if c.Markdown.Style != "light" {
		t.Errorf("markdown style = %q, want light", c.Markdown.Style)
	}
	if c.Quiz.DurationMins != 15 {
		t.Errorf("quiz duration = %d, want 15", c.Quiz.DurationMins)
	}
	if c.Quiz.PreferLLM {
		t.Error("prefer_llm should be false from file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
[markdown]
style = "light"
`)
	t.Setenv("INTERVIEWPREP_MARKDOWN_STYLE", "dark")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Markdown.Style != "dark" {
		t.Errorf("markdown style = %q, want dark from env", c.Markdown.Style)
	}
}

func TestLoad_EnvConfigPath(t *testing.T) {
	path := writeConfigFile(t, `
[llm]
provider = "anthropic"
model = "claude-haiku-4-5"
`)
	t.Setenv("INTERVIEWPREP_CONFIG", path)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.LLM.Provider != "anthropic" {
		t.Errorf("llm provider = %q, want anthropic", c.LLM.Provider)
	}
	if c.LLM.Model != "claude-haiku-4-5" {
		t.Errorf("llm model = %q, want claude-haiku-4-5", c.LLM.Model)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Markdown.Style != "auto" {
		t.Errorf("markdown style = %q, want auto default", c.Markdown.Style)
	}
}

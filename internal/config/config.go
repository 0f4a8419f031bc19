// Package config loads tidy settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/raphaelgruber/tidy/internal/models"
)

// WorkFiles names the transient exchange files and the audit log.
type WorkFiles struct {
	Prompt string `yaml:"prompt"`
	Output string `yaml:"output"`
	DryRun string `yaml:"dry_run"`
	Log    string `yaml:"log"`
}

// Config holds all configuration values.
type Config struct {
	// Directory holding the work files. Defaults to the current directory,
	// where the user pastes the LLM reply.
	WorkDir string    `yaml:"work_dir"`
	Files   WorkFiles `yaml:"files"`

	// Extensions collected in files mode.
	VideoExtensions []string `yaml:"video_extensions"`

	// Diagnostics logging
	LogFile  string     `yaml:"log_file"`
	LogLevel slog.Level `yaml:"-"`
	Level    string     `yaml:"log_level"`

	// Clipboard handoff for prompt and reply.
	Clipboard bool `yaml:"clipboard"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WorkDir: ".",
		Files: WorkFiles{
			Prompt: "prompt.txt",
			Output: "output.txt",
			DryRun: "dry-run.txt",
			Log:    "log.log",
		},
		VideoExtensions: append([]string(nil), models.DefaultVideoExtensions...),
		LogFile:         filepath.Join(os.TempDir(), "tidy.log"),
		LogLevel:        slog.LevelInfo,
		Level:           "INFO",
	}
}

// Load reads the config file (if any) and applies environment overrides.
// A missing config file is not an error.
func Load() (Config, error) {
	cfg := Default()

	path := getEnv("TIDY_CONFIG", "")
	explicit := path != ""
	if !explicit {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "tidy", "config.yaml")
		}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Default(), err
			}
		}
	}

	cfg.applyEnv()
	cfg.LogLevel = parseLogLevel(cfg.Level)
	return cfg, cfg.Validate()
}

// loadFile merges the YAML file at path over cfg. Fields absent from the
// file keep their current values.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.WorkDir = getEnv("TIDY_WORK_DIR", c.WorkDir)
	c.LogFile = getEnv("TIDY_LOG_FILE", c.LogFile)
	c.Level = getEnv("TIDY_LOG_LEVEL", c.Level)
	if exts := getEnv("TIDY_VIDEO_EXTENSIONS", ""); exts != "" {
		c.VideoExtensions = splitList(exts)
	}
	c.Clipboard = getEnv("TIDY_CLIPBOARD", fmt.Sprint(c.Clipboard)) == "true"
}

// Validate rejects configurations the workflow cannot run with.
func (c *Config) Validate() error {
	if c.WorkDir == "" {
		return errors.New("work_dir must not be empty")
	}
	names := map[string]string{
		"prompt":  c.Files.Prompt,
		"output":  c.Files.Output,
		"dry_run": c.Files.DryRun,
		"log":     c.Files.Log,
	}
	seen := make(map[string]string, len(names))
	for key, name := range names {
		if name == "" {
			return fmt.Errorf("files.%s must not be empty", key)
		}
		if other, ok := seen[name]; ok {
			return fmt.Errorf("files.%s and files.%s both use %q", key, other, name)
		}
		seen[name] = key
	}
	if len(c.VideoExtensions) == 0 {
		return errors.New("video_extensions must list at least one extension")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Package conf loads tool-level configuration: built-in defaults overlaid
// with an optional podlink.toml at the project root. Project structure
// (targets, settings) lives in the manifest instead; this only covers how
// the tool itself behaves.
package conf

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the optional per-project configuration file.
const FileName = "podlink.toml"

//go:embed defaults.toml
var defaultConfig string

// Config is the resolved, immutable tool configuration.
type Config struct {
	// SandboxDir is the sandbox directory name relative to the project root.
	SandboxDir string
	// LogLevel controls slog diagnostics.
	LogLevel slog.Level
}

// update applies non-nil values from a configDTO layer.
func (c *Config) update(dto configDTO) {
	if dto.SandboxDir != nil {
		c.SandboxDir = *dto.SandboxDir
	}
	if dto.LogLevel != nil {
		switch *dto.LogLevel {
		case "DEBUG":
			c.LogLevel = slog.LevelDebug
		case "INFO":
			c.LogLevel = slog.LevelInfo
		case "WARN":
			c.LogLevel = slog.LevelWarn
		case "ERROR":
			c.LogLevel = slog.LevelError
		default:
			slog.Warn("ignoring unknown log-level", "value", *dto.LogLevel)
		}
	}
}

type configDTO struct {
	SandboxDir *string `toml:"sandbox-dir"`
	LogLevel   *string `toml:"log-level"`
}

func parseConfigDTO(data string) (configDTO, error) {
	var dto configDTO
	if err := toml.Unmarshal([]byte(data), &dto); err != nil {
		return dto, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return dto, nil
}

// Load resolves the configuration for the project at root: embedded defaults
// first, then podlink.toml when present. A missing file is fine; an existing
// but malformed file is an error rather than a silently ignored one.
func Load(root string) (Config, error) {
	var resolved Config

	dto, err := parseConfigDTO(defaultConfig)
	if err != nil {
		// The defaults ship inside the binary; failing to parse them is a
		// build defect, not a user error.
		panic(fmt.Sprintf("conf: embedded defaults are malformed: %v", err))
	}
	resolved.update(dto)

	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return resolved, nil
		}
		return resolved, fmt.Errorf("failed to load %s: %w", path, err)
	}

	fileDTO, err := parseConfigDTO(string(data))
	if err != nil {
		return resolved, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	resolved.update(fileDTO)

	return resolved, nil
}

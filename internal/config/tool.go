package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// EnvPath overrides the config file location.
const EnvPath = "MULTIBOARD_CONFIG"

// DefaultPath is used when EnvPath is not set.
const DefaultPath = "config/boardtool.yaml"

// Tool holds all configuration for the boardtool binary.
type Tool struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Scenario to load at startup. Relative board files inside it resolve
	// against BoardsDir when set, else against the scenario's directory.
	ScenarioPath string `yaml:"scenario_path"`
	BoardsDir    string `yaml:"boards_dir"`

	// Layout names a stored board layout to load instead of the scenario
	// boards when the database is enabled.
	Layout string `yaml:"layout"`

	Database DatabaseConfig `yaml:"database"`

	// DeployWorkers bounds the goroutines scanning boards for legal
	// deployment hexes (0 = GOMAXPROCS).
	DeployWorkers int `yaml:"deploy_workers"`
}

// DefaultTool returns Tool config with sensible defaults.
func DefaultTool() Tool {
	return Tool{
		LogLevel:      "info",
		ScenarioPath:  "scenario.yaml",
		Database:      DefaultDatabase(),
		DeployWorkers: 0,
	}
}

// LoadTool loads tool config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadTool(path string) (Tool, error) {
	cfg := DefaultTool()
	if err := load(path, &cfg); err != nil {
		return cfg, err
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// PathFromEnv returns the config path from EnvPath or DefaultPath.
func PathFromEnv() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// ParseLogLevel maps a config log level onto slog.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Package config handles loading todos.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/todos/internal/paths"
	"github.com/amonks/todos/internal/todoenv"
)

// ProjectFile is the name of the per-project config file.
const ProjectFile = "todos.toml"

// Config represents the todos.toml configuration file.
type Config struct {
	Store Store `toml:"store"`
	View  View  `toml:"view"`
	Log   Log   `toml:"log"`
}

// Store contains persistence configuration.
type Store struct {
	// Backend is "file", "sqlite", or "memory".
	Backend string `toml:"backend"`

	// Dir is the directory slots are stored in. Empty means the default
	// state directory.
	Dir string `toml:"dir"`
}

// View contains the defaults for derived views.
type View struct {
	// Locale collates titles when sorting by title.
	Locale string `toml:"locale"`

	SortKey string `toml:"sort-key"`
	SortDir string `toml:"sort-dir"`
}

// Log contains logging configuration.
type Log struct {
	Level string `toml:"level"`
}

// Defaults returns the configuration used when nothing is configured.
func Defaults() Config {
	return Config{
		Store: Store{Backend: "file"},
		View:  View{Locale: "ja", SortKey: "order", SortDir: "asc"},
		Log:   Log{Level: "info"},
	}
}

// Load loads configuration from the global config file and projectDir,
// project values taking precedence, and fills unset values from Defaults.
func Load(projectDir string) (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, _, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectDir, ProjectFile))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, projectMeta)
	merged.applyDefaults()
	return merged, nil
}

// ApplyEnv overrides configured values with any set in vars.
func (c *Config) ApplyEnv(vars todoenv.Vars) {
	if vars.DataDir != "" {
		c.Store.Dir = vars.DataDir
	}
	if vars.Backend != "" {
		c.Store.Backend = vars.Backend
	}
	if vars.LogLevel != "" {
		c.Log.Level = vars.LogLevel
	}
}

// StateDir returns the configured slot directory, or the default one.
func (c *Config) StateDir() (string, error) {
	if c.Store.Dir != "" {
		return expandHome(c.Store.Dir)
	}
	return paths.DefaultStateDir()
}

func (c *Config) applyDefaults() {
	defaults := Defaults()
	if c.Store.Backend == "" {
		c.Store.Backend = defaults.Store.Backend
	}
	if c.View.Locale == "" {
		c.View.Locale = defaults.View.Locale
	}
	if c.View.SortKey == "" {
		c.View.SortKey = defaults.View.SortKey
	}
	if c.View.SortDir == "" {
		c.View.SortDir = defaults.View.SortDir
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %s", path, undecoded[0])
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Store.Backend = mergeString(projectMeta.IsDefined("store", "backend"), projectCfg.Store.Backend, globalCfg.Store.Backend)
	merged.Store.Dir = mergeString(projectMeta.IsDefined("store", "dir"), projectCfg.Store.Dir, globalCfg.Store.Dir)
	merged.View.Locale = mergeString(projectMeta.IsDefined("view", "locale"), projectCfg.View.Locale, globalCfg.View.Locale)
	merged.View.SortKey = mergeString(projectMeta.IsDefined("view", "sort-key"), projectCfg.View.SortKey, globalCfg.View.SortKey)
	merged.View.SortDir = mergeString(projectMeta.IsDefined("view", "sort-dir"), projectCfg.View.SortDir, globalCfg.View.SortDir)
	merged.Log.Level = mergeString(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := paths.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

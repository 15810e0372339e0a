package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const fileMode = 0o600

// Sentinel errors.
var (
	ErrNotFound = errors.New("no studyflow data directory found")
	ErrInvalid  = errors.New("invalid config")
)

// Config represents the studyflow data directory configuration.
// Task and session data live next to it as JSON files; the config
// carries the enumerations and the id counters.
type Config struct {
	Version       int      `yaml:"version"`
	Subjects      []string `yaml:"subjects"`
	Priorities    []string `yaml:"priorities"`
	NextTaskID    int      `yaml:"next_task_id"`
	NextSessionID int      `yaml:"next_session_id"`

	// dir is the absolute path to the data directory (not serialized).
	dir string `yaml:"-"`
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		Version:       CurrentVersion,
		Subjects:      append([]string{}, DefaultSubjects...),
		Priorities:    append([]string{}, DefaultPriorities...),
		NextTaskID:    1,
		NextSessionID: 1,
	}
}

// Dir returns the absolute path to the data directory.
func (c *Config) Dir() string {
	return c.dir
}

// SetDir sets the data directory path on the config.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// ConfigPath returns the absolute path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if len(c.Subjects) < 1 {
		return fmt.Errorf("%w: at least 1 subject is required", ErrInvalid)
	}
	if hasDuplicates(c.Subjects) {
		return fmt.Errorf("%w: subjects contain duplicates", ErrInvalid)
	}
	if len(c.Priorities) < 1 {
		return fmt.Errorf("%w: at least 1 priority is required", ErrInvalid)
	}
	if hasDuplicates(c.Priorities) {
		return fmt.Errorf("%w: priorities contain duplicates", ErrInvalid)
	}
	if c.NextTaskID < 1 {
		return fmt.Errorf("%w: next_task_id must be >= 1", ErrInvalid)
	}
	if c.NextSessionID < 1 {
		return fmt.Errorf("%w: next_session_id must be >= 1", ErrInvalid)
	}
	return nil
}

// Save writes the config to its config file.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, fileMode)
}

// Load reads and validates a config from the given data directory.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	path := filepath.Join(absDir, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.dir = absDir

	// Migrate old config versions forward before validating.
	oldVersion := cfg.Version
	if err := migrate(&cfg); err != nil {
		return nil, err
	}

	// Persist migrated config so future loads skip re-migration.
	if cfg.Version != oldVersion {
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("saving migrated config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Init creates a new data directory with default settings.
func Init(dir string) (*Config, error) {
	const dirMode = 0o750

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg := NewDefault()
	cfg.SetDir(absDir)

	if err := os.MkdirAll(absDir, dirMode); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}

	return cfg, nil
}

// SubjectIndex returns the index of a subject in the configured order, or -1.
func (c *Config) SubjectIndex(subject string) int {
	return IndexOf(c.Subjects, subject)
}

// PriorityIndex returns the index of a priority in the configured order, or -1.
// Lower index means higher urgency.
func (c *Config) PriorityIndex(priority string) int {
	return IndexOf(c.Priorities, priority)
}

// HasSubject reports whether the subject is in the configured list.
func (c *Config) HasSubject(subject string) bool {
	return c.SubjectIndex(subject) >= 0
}

// HasPriority reports whether the priority is in the configured list.
func (c *Config) HasPriority(priority string) bool {
	return c.PriorityIndex(priority) >= 0
}

// IndexOf returns the index of item in slice, or -1 if not found.
func IndexOf(slice []string, item string) int {
	for i, s := range slice {
		if s == item {
			return i
		}
	}
	return -1
}

func hasDuplicates(slice []string) bool {
	seen := make(map[string]bool, len(slice))
	for _, s := range slice {
		if seen[s] {
			return true
		}
		seen[s] = true
	}
	return false
}

// Package store owns the persisted task, session, and settings state.
// Each store keeps its collection in memory, persists it synchronously
// on every mutation, and notifies subscribers so derived views can
// recompute.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const fileMode = 0o600

// Store keys. Each key maps to a single JSON file in the data directory.
const (
	KeyTasks    = "tasks"
	KeySessions = "sessions"
	KeySettings = "settings"
)

// Adapter reads and writes JSON values keyed by name in a data
// directory. It has no knowledge of the shapes it stores.
type Adapter struct {
	dir string
}

// NewAdapter creates an Adapter rooted at the given data directory.
func NewAdapter(dir string) *Adapter {
	return &Adapter{dir: dir}
}

// Dir returns the data directory the adapter writes into.
func (a *Adapter) Dir() string {
	return a.dir
}

// Path returns the file backing the given key.
func (a *Adapter) Path(key string) string {
	return filepath.Join(a.dir, key+".json")
}

// Save marshals value as indented JSON and fully overwrites the file
// for key. The write goes through a temp file and rename so a crash
// mid-write never leaves a half-written store behind.
func (a *Adapter) Save(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}

	path := a.Path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, fileMode); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", key, err)
	}
	return nil
}

// Load unmarshals the value stored under key into out. An absent file
// or malformed content leaves out untouched and returns ok=false: the
// stores fail open to their defaults rather than refuse to start.
func (a *Adapter) Load(key string, out any) (ok bool) {
	data, err := os.ReadFile(a.Path(key)) //nolint:gosec // data path from trusted directory
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Corrupt state is treated as absent. The next mutation
		// overwrites the file with a valid snapshot.
		return false
	}
	return true
}

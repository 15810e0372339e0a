package store

import (
	"github.com/muesli/termenv"

	"github.com/studyflowhq/studyflow/internal/clierr"
	"github.com/studyflowhq/studyflow/internal/config"
)

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SettingsData is the persisted user preferences record.
type SettingsData struct {
	Theme        string `json:"theme"`
	FocusMinutes int    `json:"focus_minutes"`
}

// DefaultSettings derives initial preferences: the theme follows the
// terminal background, focus duration starts at 25 minutes.
func DefaultSettings() SettingsData {
	theme := ThemeLight
	if termenv.HasDarkBackground() {
		theme = ThemeDark
	}
	return SettingsData{Theme: theme, FocusMinutes: config.DefaultFocusMinutes}
}

// Settings owns the user preferences.
type Settings struct {
	adapter  *Adapter
	data     SettingsData
	onChange []func()
}

// NewSettings loads preferences from the adapter, falling back to
// defaults when the settings file is missing or corrupt.
func NewSettings(adapter *Adapter) *Settings {
	s := &Settings{adapter: adapter, data: DefaultSettings()}
	var data SettingsData
	if adapter.Load(KeySettings, &data) {
		if data.Theme == ThemeLight || data.Theme == ThemeDark {
			s.data.Theme = data.Theme
		}
		if data.FocusMinutes > 0 {
			s.data.FocusMinutes = data.FocusMinutes
		}
	}
	return s
}

// Subscribe registers a callback fired after every successful mutation.
func (s *Settings) Subscribe(fn func()) {
	s.onChange = append(s.onChange, fn)
}

// Get returns the current preferences.
func (s *Settings) Get() SettingsData {
	return s.data
}

// Theme returns the current theme name.
func (s *Settings) Theme() string {
	return s.data.Theme
}

// FocusMinutes returns the configured focus duration in minutes.
func (s *Settings) FocusMinutes() int {
	return s.data.FocusMinutes
}

// SetTheme validates and persists the theme.
func (s *Settings) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return clierr.Newf(clierr.InvalidTheme, "invalid theme %q (light or dark)", theme).
			WithDetails(map[string]any{"theme": theme})
	}
	s.data.Theme = theme
	if err := s.persist(); err != nil {
		return err
	}

	s.notify()
	return nil
}

// SetFocusMinutes validates and persists the focus duration. The new
// value applies to future timer resets, never to a countdown already
// in progress.
func (s *Settings) SetFocusMinutes(minutes int) error {
	if minutes < 1 {
		return clierr.Newf(clierr.InvalidDuration, "focus duration must be at least 1 minute, got %d", minutes).
			WithDetails(map[string]any{"minutes": minutes})
	}
	s.data.FocusMinutes = minutes
	if err := s.persist(); err != nil {
		return err
	}

	s.notify()
	return nil
}

func (s *Settings) persist() error {
	return s.adapter.Save(KeySettings, s.data)
}

func (s *Settings) notify() {
	for _, fn := range s.onChange {
		fn()
	}
}

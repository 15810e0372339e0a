// Package config handles the studyflow data directory configuration.
package config

const (
	// DefaultDirName is the data directory name under ~/.config.
	DefaultDirName = ".config/studyflow"
	// DefaultSubject is assigned when a task is created with no subject.
	DefaultSubject = "general"
	// DefaultPriority is the default priority for new tasks.
	DefaultPriority = "medium"
	// DefaultFocusMinutes is the focus duration for a fresh install.
	DefaultFocusMinutes = 25

	// ConfigFileName is the name of the config file within the data directory.
	ConfigFileName = "config.yml"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 1
)

// Default slice values for a new install (slices cannot be const).
var (
	// DefaultSubjects is the subject enumeration used by the breakdown
	// views. "general" is the catch-all for untagged tasks.
	DefaultSubjects = []string{
		"math",
		"science",
		"english",
		"history",
		DefaultSubject,
	}

	// DefaultPriorities is the priority order, highest first. The rank
	// of a priority is its index in this list.
	DefaultPriorities = []string{
		"high",
		"medium",
		"low",
	}
)

package config

import (
	"github.com/arthur-debert/dohook/pkg/errors"
)

// Config is the complete dohook configuration
type Config struct {
	Registry Registry `koanf:"registry" toml:"registry" yaml:"registry"`
	Log      Log      `koanf:"log" toml:"log" yaml:"log"`
	Manager  Manager  `koanf:"manager" toml:"manager" yaml:"manager"`
}

// Registry configures the event registry
type Registry struct {
	// DefaultPriority applies to handlers registered without a priority
	DefaultPriority int `koanf:"default_priority" toml:"default_priority" yaml:"default_priority"`
	// Priority pins handlers to a priority by name
	Priority []PriorityOverride `koanf:"priority" toml:"priority,omitempty" yaml:"priority,omitempty"`
}

// PriorityOverride forces the priority of one handler. Handler names
// usually contain dots ("plugins.announceStartup"), which is why overrides
// are a list of tables rather than a map.
type PriorityOverride struct {
	Handler  string `koanf:"handler" toml:"handler" yaml:"handler"`
	Priority int    `koanf:"priority" toml:"priority" yaml:"priority"`
}

// Log configures logging
type Log struct {
	Verbosity int  `koanf:"verbosity" toml:"verbosity" yaml:"verbosity"`
	File      bool `koanf:"file" toml:"file" yaml:"file"`
}

// Manager configures the task manager
type Manager struct {
	// Tasks run when none are given on the command line
	Tasks []string `koanf:"tasks" toml:"tasks" yaml:"tasks"`
}

// PriorityOverrides returns the overrides keyed by handler name
func (r Registry) PriorityOverrides() map[string]int {
	overrides := make(map[string]int, len(r.Priority))
	for _, o := range r.Priority {
		overrides[o.Handler] = o.Priority
	}
	return overrides
}

// Validate checks the configuration for values dohook cannot use
func (c *Config) Validate() error {
	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "log.verbosity must not be negative, got %d", c.Log.Verbosity)
	}

	seen := make(map[string]bool, len(c.Registry.Priority))
	for i, o := range c.Registry.Priority {
		if o.Handler == "" {
			return errors.Newf(errors.ErrConfigValid, "registry.priority[%d] has no handler name", i)
		}
		if seen[o.Handler] {
			return errors.Newf(errors.ErrConfigValid, "registry.priority lists handler '%s' more than once", o.Handler).
				WithDetail("handler", o.Handler)
		}
		seen[o.Handler] = true
	}

	for i, task := range c.Manager.Tasks {
		if task == "" {
			return errors.Newf(errors.ErrConfigValid, "manager.tasks[%d] is empty", i)
		}
	}

	return nil
}

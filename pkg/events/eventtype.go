package events

import (
	"fmt"
	"sort"
)

// EventType identifies a category of event. It is implemented by Known
// and Custom only.
type EventType interface {
	// Key is the normalized registry key for the event type
	Key() string
	isEventType()
}

// Known enumerates the lifecycle events fired by the task manager.
type Known int

// Well-known event types
const (
	Forget Known = iota + 1
	ConfigRegister
	ManagerBeforeConfigLoad
	ManagerBeforeConfigValidate
	ManagerConfigUpdated
	ManagerDBCleanup
	ManagerDBVacuum
	ManagerInitialize
	ManagerUpgrade
	ManagerDBUpgraded
	ManagerStartup
	ManagerExecuteStarted
	ManagerExecuteCompleted
	ManagerDaemonStarted
	ManagerDaemonCompleted
	ManagerLockAcquired
	ManagerShutdownRequested
	ManagerShutdown
	ManagerSubcommandInject
	OptionsRegister
	PluginRegister
	TaskExecuteBeforePlugin
	TaskExecuteAfterPlugin
	TaskExecuteStarted
	TaskExecuteCompleted
)

var knownNames = map[Known]string{
	Forget:                      "forget",
	ConfigRegister:              "config.register",
	ManagerBeforeConfigLoad:     "manager.before_config_load",
	ManagerBeforeConfigValidate: "manager.before_config_validate",
	ManagerConfigUpdated:        "manager.config_updated",
	ManagerDBCleanup:            "manager.db_cleanup",
	ManagerDBVacuum:             "manager.db_vacuum",
	ManagerInitialize:           "manager.initialize",
	ManagerUpgrade:              "manager.upgrade",
	ManagerDBUpgraded:           "manager.db_upgraded",
	ManagerStartup:              "manager.startup",
	ManagerExecuteStarted:       "manager.execute.started",
	ManagerExecuteCompleted:     "manager.execute.completed",
	ManagerDaemonStarted:        "manager.daemon.started",
	ManagerDaemonCompleted:      "manager.daemon.completed",
	ManagerLockAcquired:         "manager.lock_acquired",
	ManagerShutdownRequested:    "manager.shutdown_requested",
	ManagerShutdown:             "manager.shutdown",
	ManagerSubcommandInject:     "manager.subcommand.inject",
	OptionsRegister:             "options.register",
	PluginRegister:              "plugin.register",
	TaskExecuteBeforePlugin:     "task.execute.before_plugin",
	TaskExecuteAfterPlugin:      "task.execute.after_plugin",
	TaskExecuteStarted:          "task.execute.started",
	TaskExecuteCompleted:        "task.execute.completed",
}

var knownByName = func() map[string]Known {
	m := make(map[string]Known, len(knownNames))
	for k, name := range knownNames {
		m[name] = k
	}
	return m
}()

// String returns the dotted name of the event type
func (k Known) String() string {
	if name, ok := knownNames[k]; ok {
		return name
	}
	return fmt.Sprintf("known(%d)", int(k))
}

// Key implements EventType
func (k Known) Key() string { return k.String() }

func (Known) isEventType() {}

// Custom is an ad-hoc event type identified by name.
type Custom string

// String returns the event name
func (c Custom) String() string { return string(c) }

// Key implements EventType
func (c Custom) Key() string { return string(c) }

func (Custom) isEventType() {}

// ParseEventType returns the Known event type for a well-known name and a
// Custom one otherwise.
func ParseEventType(name string) EventType {
	if k, ok := knownByName[name]; ok {
		return k
	}
	return Custom(name)
}

// KnownTypes returns all well-known event types in declaration order
func KnownTypes() []Known {
	types := make([]Known, 0, len(knownNames))
	for k := range knownNames {
		types = append(types, k)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

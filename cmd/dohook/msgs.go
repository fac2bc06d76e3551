package dohook

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Priority-ordered event hooks for a task manager"
	MsgRootLong     = "dohook runs a small task manager whose lifecycle is announced through a\npriority-ordered event registry. Built-in plugins hook into those events."
	MsgEventsShort  = "List the well-known event types"
	MsgConfigShort  = "Print the effective configuration"
	MsgRunShort     = "Run tasks with the selected plugins"
	MsgRunLong      = "Run executes the named tasks (or manager.tasks from the configuration)\nwith the selected built-in plugins hooked into the manager lifecycle."
	MsgPluginsShort = "List the built-in plugins"
	MsgVersionShort = "Print version information"

	// Status messages
	MsgVersionFormat = "dohook version %s\n  commit: %s\n  built:  %s\n"
	MsgRunSummary    = "\nSummary:"

	// Error messages
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrUnknownFormat = "unknown format '%s' (want toml or yaml)"
	MsgErrInstall       = "failed to install plugins: %w"
	MsgErrNoCommand     = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default: $DOHOOK_CONFIG, ./dohook.toml, $XDG_CONFIG_HOME/dohook/dohook.toml)"
	MsgFlagFormat  = "Output format: toml or yaml"
	MsgFlagPlugins = "Plugins to hook into the run, in order"
	MsgFlagFail    = "Make the named task fail to demonstrate task.abort"
)

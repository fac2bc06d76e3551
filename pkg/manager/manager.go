package manager

import (
	"sync"
	"time"

	"github.com/arthur-debert/dohook/pkg/errors"
	"github.com/arthur-debert/dohook/pkg/events"
	"github.com/arthur-debert/dohook/pkg/logging"
	"github.com/rs/zerolog"
)

// Manager executes tasks and fires lifecycle events on its registry
type Manager struct {
	events *events.Registry
	logger zerolog.Logger
	config map[string]any

	runLock sync.Mutex
}

// New creates a manager that fires its events on reg
func New(reg *events.Registry) *Manager {
	return &Manager{
		events: reg,
		logger: logging.GetLogger("manager"),
		config: map[string]any{},
	}
}

// Events returns the registry the manager fires on
func (m *Manager) Events() *events.Registry {
	return m.events
}

// Config returns the configuration accepted by the last LoadConfig
func (m *Manager) Config() map[string]any {
	return m.config
}

// Initialize lets plugins register their options, themselves and their
// config schema before the manager starts.
func (m *Manager) Initialize() error {
	defer logging.LogOperationStart(m.logger, "initialize")()

	for _, eventType := range []events.Known{
		events.OptionsRegister,
		events.PluginRegister,
		events.ConfigRegister,
		events.ManagerInitialize,
	} {
		if _, err := m.events.Fire(eventType, m); err != nil {
			return err
		}
	}
	return nil
}

// Startup fires manager.startup
func (m *Manager) Startup() error {
	_, err := m.events.Fire(events.ManagerStartup, m)
	return err
}

// LoadConfig passes raw through the before_config_load and
// before_config_validate handlers, each of which may return a replacement,
// and stores the result. manager.config_updated fires once the new
// configuration is in place.
func (m *Manager) LoadConfig(raw map[string]any) (map[string]any, error) {
	cfg := any(raw)
	for _, eventType := range []events.Known{events.ManagerBeforeConfigLoad, events.ManagerBeforeConfigValidate} {
		result, err := m.events.Fire(eventType, cfg, m)
		if err != nil {
			return nil, err
		}
		cfg = result
	}

	loaded, ok := cfg.(map[string]any)
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "config handlers returned %T, want map[string]any", cfg)
	}
	m.config = loaded

	if _, err := m.events.Fire(events.ManagerConfigUpdated, m); err != nil {
		return nil, err
	}
	m.logger.Debug().Int("keys", len(loaded)).Msg("Configuration loaded")
	return loaded, nil
}

// Execute runs tasks in order. A failing step aborts its task, fires
// task.abort and moves on to the next task. An error returned by an event
// handler stops execution altogether.
//
// Only one Execute runs at a time; manager.lock_acquired fires once the
// caller holds the run lock.
func (m *Manager) Execute(tasks []*Task) error {
	m.runLock.Lock()
	defer m.runLock.Unlock()

	if _, err := m.events.Fire(events.ManagerLockAcquired, m); err != nil {
		return err
	}
	if _, err := m.events.Fire(events.ManagerExecuteStarted, m, tasks); err != nil {
		return err
	}

	for _, task := range tasks {
		if err := m.executeTask(task); err != nil {
			return err
		}
	}

	_, err := m.events.Fire(events.ManagerExecuteCompleted, m, tasks)
	return err
}

func (m *Manager) executeTask(task *Task) error {
	start := time.Now()
	defer func() { task.Duration = time.Since(start) }()

	logger := m.logger.With().Str("task", task.Name).Logger()
	if _, err := m.events.Fire(events.TaskExecuteStarted, task, m); err != nil {
		return err
	}

	for _, step := range task.Steps {
		if _, err := m.events.Fire(events.TaskExecuteBeforePlugin, task, step.Plugin); err != nil {
			return err
		}

		if step.Run != nil {
			if runErr := step.Run(task); runErr != nil {
				task.Status = StatusAborted
				task.AbortReason = runErr.Error()
				logger.Info().Err(runErr).Str("plugin", step.Plugin).Msg("Task aborted")

				_, err := m.events.Fire(TaskAbort, task, errors.Wrapf(runErr, errors.ErrTaskAbort, "plugin %s failed", step.Plugin))
				return err
			}
		}

		if _, err := m.events.Fire(events.TaskExecuteAfterPlugin, task, step.Plugin); err != nil {
			return err
		}
	}

	task.Status = StatusCompleted
	_, err := m.events.Fire(events.TaskExecuteCompleted, task, m)
	return err
}

// Shutdown fires manager.shutdown_requested followed by manager.shutdown
func (m *Manager) Shutdown() error {
	if _, err := m.events.Fire(events.ManagerShutdownRequested, m); err != nil {
		return err
	}
	_, err := m.events.Fire(events.ManagerShutdown, m)
	return err
}

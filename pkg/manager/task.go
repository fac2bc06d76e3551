package manager

import (
	"time"

	"github.com/arthur-debert/dohook/pkg/events"
)

// TaskAbort fires with the task and the TASK_ABORT error when a step fails.
// It is not one of the well-known event types.
var TaskAbort = events.Custom("task.abort")

// Status of a task after execution
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusAborted   Status = "aborted"
)

// Step is one plugin invocation within a task
type Step struct {
	Plugin string
	Run    func(task *Task) error
}

// Task is a named sequence of plugin steps
type Task struct {
	Name  string
	Steps []Step

	Status      Status
	AbortReason string
	Duration    time.Duration
}

// NewTask creates a pending task
func NewTask(name string, steps ...Step) *Task {
	return &Task{Name: name, Steps: steps, Status: StatusPending}
}

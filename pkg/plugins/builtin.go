package plugins

import (
	"fmt"
	"io"
	"time"

	"github.com/arthur-debert/dohook/pkg/events"
	"github.com/arthur-debert/dohook/pkg/manager"
)

var now = time.Now

func taskArg(args events.Args) (*manager.Task, bool) {
	task, ok := args.First().(*manager.Task)
	return task, ok
}

func announceBindings(out io.Writer) *events.Bindings {
	return events.NewBindings().
		On(events.ManagerStartup, func(args events.Args) (any, error) {
			fmt.Fprintln(out, "manager started")
			return nil, nil
		}, events.WithName("announce.startup")).
		On(events.TaskExecuteStarted, func(args events.Args) (any, error) {
			if task, ok := taskArg(args); ok {
				fmt.Fprintf(out, "task %s started\n", task.Name)
			}
			return nil, nil
		}, events.WithName("announce.task_started"), events.WithPriority(200)).
		On(events.TaskExecuteCompleted, func(args events.Args) (any, error) {
			if task, ok := taskArg(args); ok {
				fmt.Fprintf(out, "task %s completed\n", task.Name)
			}
			return nil, nil
		}, events.WithName("announce.task_completed")).
		On(manager.TaskAbort, func(args events.Args) (any, error) {
			if task, ok := taskArg(args); ok {
				fmt.Fprintf(out, "task %s aborted: %s\n", task.Name, task.AbortReason)
			}
			return nil, nil
		}, events.WithName("announce.task_abort")).
		On(events.ManagerShutdown, func(args events.Args) (any, error) {
			fmt.Fprintln(out, "manager stopped")
			return nil, nil
		}, events.WithName("announce.shutdown"))
}

// DefaultConfig holds the keys the defaults plugin fills in
var DefaultConfig = map[string]any{
	"tasks":   []string{"default"},
	"verbose": false,
}

func defaultsBindings(out io.Writer) *events.Bindings {
	return events.NewBindings().
		On(events.ManagerBeforeConfigLoad, func(args events.Args) (any, error) {
			cfg, _ := args.First().(map[string]any)
			merged := make(map[string]any, len(cfg)+len(DefaultConfig))
			for k, v := range DefaultConfig {
				merged[k] = v
			}
			for k, v := range cfg {
				merged[k] = v
			}
			return merged, nil
		}, events.WithName("defaults.config"), events.WithPriority(255))
}

func timingBindings(out io.Writer) *events.Bindings {
	started := make(map[string]time.Time)
	key := func(args events.Args) (string, bool) {
		task, ok := taskArg(args)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%s/%v", task.Name, args.At(1)), true
	}

	return events.NewBindings().
		On(events.TaskExecuteBeforePlugin, func(args events.Args) (any, error) {
			if k, ok := key(args); ok {
				started[k] = now()
			}
			return nil, nil
		}, events.WithName("timing.before_plugin")).
		On(events.TaskExecuteAfterPlugin, func(args events.Args) (any, error) {
			k, ok := key(args)
			if !ok {
				return nil, nil
			}
			if start, seen := started[k]; seen {
				fmt.Fprintf(out, "%s took %s\n", k, now().Sub(start))
				delete(started, k)
			}
			return nil, nil
		}, events.WithName("timing.after_plugin"))
}

func traceBindings(out io.Writer) *events.Bindings {
	bindings := events.NewBindings()
	for _, eventType := range events.KnownTypes() {
		name := eventType.Key()
		bindings.On(eventType, func(args events.Args) (any, error) {
			fmt.Fprintf(out, "· %s\n", name)
			return nil, nil
		}, events.WithName("trace."+name), events.WithPriority(0))
	}
	return bindings
}

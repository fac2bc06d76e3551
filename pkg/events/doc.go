// Package events implements a priority-ordered, in-process event registry.
//
// Components announce lifecycle moments (startup, configuration changes,
// task phases) by firing an event type; every handler registered for that
// type runs synchronously, highest priority first. A handler may return a
// replacement for the first positional argument, which is then passed to
// the handlers that follow:
//
//	reg := events.NewRegistry()
//	_, _ = reg.Register(events.ManagerBeforeConfigLoad, func(args events.Args) (any, error) {
//		cfg := args.First().(map[string]any)
//		cfg["tasks"] = []string{"nightly"}
//		return cfg, nil
//	}, events.WithPriority(200))
//
//	cfg, err := reg.Fire(events.ManagerBeforeConfigLoad, map[string]any{}, manager)
//
// Event types are either a well-known Known value or an ad-hoc Custom name.
// Both forms normalize to the same key, so Custom("manager.startup") and
// ManagerStartup address the same handlers.
//
// Firing an event nobody listens to is not an error, but asking for the
// sorted handlers of a type that was never registered is.
package events

// Package plugins holds the built-in plugins used by the dohook CLI to
// demonstrate the event registry. Each plugin is nothing more than a set
// of event bindings.
package plugins

import (
	"io"

	"github.com/arthur-debert/dohook/pkg/events"
	"github.com/arthur-debert/dohook/pkg/registry"
)

// Plugin contributes event handlers writing their output to out
type Plugin struct {
	Name        string
	Description string
	Bindings    func(out io.Writer) *events.Bindings
}

// Catalog returns a fresh catalog of the built-in plugins
func Catalog() *registry.Registry[Plugin] {
	catalog := registry.New[Plugin]()
	for _, p := range []Plugin{
		{Name: "announce", Description: "Reports manager and task lifecycle", Bindings: announceBindings},
		{Name: "defaults", Description: "Fills in missing configuration keys", Bindings: defaultsBindings},
		{Name: "timing", Description: "Reports how long each plugin step took", Bindings: timingBindings},
		{Name: "trace", Description: "Prints every well-known event as it fires", Bindings: traceBindings},
	} {
		registry.MustRegister(catalog, p.Name, p)
	}
	return catalog
}

// Install binds the named plugins from catalog into reg, in the order
// given. Unknown names fail before anything is installed.
func Install(reg *events.Registry, catalog *registry.Registry[Plugin], names []string, out io.Writer) error {
	selected, err := catalog.Lookup(names)
	if err != nil {
		return err
	}

	bindings := events.NewBindings()
	for _, p := range selected {
		bindings.Merge(p.Bindings(out))
	}
	_, err = bindings.Install(reg)
	return err
}

package events

import "fmt"

type binding struct {
	eventType EventType
	handler   Handler
	opts      []HandlerOption
}

// Bindings collects handler registrations during an initialization phase
// so they can be installed into a Registry in one step:
//
//	events.NewBindings().
//		On(events.ManagerStartup, announce).
//		On(events.ManagerDBCleanup, vacuum, events.WithPriority(255)).
//		MustInstall(reg)
type Bindings struct {
	entries []binding
}

// NewBindings creates an empty set of bindings
func NewBindings() *Bindings {
	return &Bindings{}
}

// On records a handler for eventType and returns the bindings for chaining
func (b *Bindings) On(eventType EventType, handler Handler, opts ...HandlerOption) *Bindings {
	b.entries = append(b.entries, binding{eventType: eventType, handler: handler, opts: opts})
	return b
}

// Merge appends the bindings recorded in other
func (b *Bindings) Merge(other *Bindings) *Bindings {
	if other != nil {
		b.entries = append(b.entries, other.entries...)
	}
	return b
}

// Len returns the number of recorded bindings
func (b *Bindings) Len() int {
	return len(b.entries)
}

// Install registers every binding in the order it was recorded. If one
// registration fails, the bindings installed before it are removed again,
// event types they introduced are forgotten, and the error is returned.
func (b *Bindings) Install(reg *Registry) ([]*HandlerRecord, error) {
	records := make([]*HandlerRecord, 0, len(b.entries))
	var created []EventType
	for _, e := range b.entries {
		isNew := e.eventType != nil && !reg.HasEventType(e.eventType)
		record, err := reg.Register(e.eventType, e.handler, e.opts...)
		if err != nil {
			for _, installed := range records {
				reg.RemoveRecord(installed)
			}
			for _, eventType := range created {
				if reg.Count(eventType) == 0 {
					reg.RemoveAllHandlers(eventType)
				}
			}
			return nil, err
		}
		if isNew {
			created = append(created, e.eventType)
		}
		records = append(records, record)
	}
	return records, nil
}

// MustInstall installs the bindings and panics if installation fails.
// Registration errors at startup are programming errors.
func (b *Bindings) MustInstall(reg *Registry) []*HandlerRecord {
	records, err := b.Install(reg)
	if err != nil {
		panic(fmt.Sprintf("failed to install event bindings: %v", err))
	}
	return records
}

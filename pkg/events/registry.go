package events

import (
	"sort"
	"sync"

	"github.com/arthur-debert/dohook/pkg/errors"
	"github.com/arthur-debert/dohook/pkg/logging"
	"github.com/rs/zerolog"
)

// Registry maps event types to their handlers. It is safe for concurrent
// use; handlers may register or remove handlers while an event is firing.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]*HandlerRecord

	logger          zerolog.Logger
	defaultPriority int
	overrides       map[string]int
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used for registry diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithDefaultPriority changes the priority given to handlers registered
// without WithPriority.
func WithDefaultPriority(priority int) Option {
	return func(r *Registry) {
		r.defaultPriority = priority
	}
}

// WithPriorityOverrides forces the priority of handlers by name, taking
// precedence over the priority requested at registration.
func WithPriorityOverrides(overrides map[string]int) Option {
	return func(r *Registry) {
		for name, p := range overrides {
			r.overrides[name] = p
		}
	}
}

// NewRegistry creates an empty Registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		handlers:        make(map[string][]*HandlerRecord),
		logger:          logging.GetLogger("events"),
		defaultPriority: DefaultPriority,
		overrides:       make(map[string]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type handlerOptions struct {
	priority    int
	hasPriority bool
	name        string
}

// HandlerOption configures a single registration
type HandlerOption func(*handlerOptions)

// WithPriority sets the handler priority. Higher priorities run first.
func WithPriority(priority int) HandlerOption {
	return func(o *handlerOptions) {
		o.priority = priority
		o.hasPriority = true
	}
}

// WithName sets the diagnostic name of the handler instead of the name of
// its function symbol.
func WithName(name string) HandlerOption {
	return func(o *handlerOptions) {
		o.name = name
	}
}

// Register adds a handler for eventType. Registering the same handler
// twice for one event type fails with ErrDuplicateRegistration.
func (r *Registry) Register(eventType EventType, handler Handler, opts ...HandlerOption) (*HandlerRecord, error) {
	if eventType == nil {
		return nil, errors.New(errors.ErrInvalidInput, "event type cannot be nil")
	}
	if handler == nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "handler for '%s' cannot be nil", eventType.Key())
	}

	var o handlerOptions
	for _, opt := range opts {
		opt(&o)
	}

	id := handlerID(handler)
	if o.name == "" {
		o.name = handlerName(handler)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	priority := r.defaultPriority
	if o.hasPriority {
		priority = o.priority
	}
	if p, ok := r.overrides[o.name]; ok {
		priority = p
	}

	key := eventType.Key()
	for _, existing := range r.handlers[key] {
		if existing.id == id {
			return nil, errors.Newf(errors.ErrDuplicateRegistration,
				"cannot register %s for event '%s': already registered", o.name, key).
				WithDetail("handler", o.name).
				WithDetail("event", key)
		}
	}

	record := &HandlerRecord{
		EventType: eventType,
		Name:      o.name,
		Handler:   handler,
		Priority:  priority,
		id:        id,
	}
	r.handlers[key] = append(r.handlers[key], record)

	r.logger.Trace().
		Str("handler", record.Name).
		Str("event", key).
		Int("priority", priority).
		Msg("Registered event handler")

	return record, nil
}

// SortedHandlers returns the handlers for eventType by descending
// priority. Handlers of equal priority keep their registration order.
// An event type that was never registered fails with ErrUnknownEventType.
func (r *Registry) SortedHandlers(eventType EventType) ([]*HandlerRecord, error) {
	if eventType == nil {
		return nil, errors.New(errors.ErrInvalidInput, "event type cannot be nil")
	}

	r.mu.RLock()
	list, exists := r.handlers[eventType.Key()]
	sorted := make([]*HandlerRecord, len(list))
	copy(sorted, list)
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Newf(errors.ErrUnknownEventType, "event type '%s' is not registered", eventType.Key()).
			WithDetail("event", eventType.Key())
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Less(sorted[i])
	})
	return sorted, nil
}

// RemoveHandler removes handler from eventType. Unknown handlers and event
// types are ignored. The event type stays registered even when its last
// handler is removed.
//
// A method value is a new func value each time it is evaluated, so it can
// only be removed through the value that was registered; keep that value
// or use RemoveRecord.
func (r *Registry) RemoveHandler(eventType EventType, handler Handler) {
	if eventType == nil || handler == nil {
		return
	}
	id := handlerID(handler)
	r.remove(eventType.Key(), func(record *HandlerRecord) bool { return record.id == id })
}

// RemoveRecord removes the registration returned by Register
func (r *Registry) RemoveRecord(record *HandlerRecord) {
	if record == nil || record.EventType == nil {
		return
	}
	r.remove(record.EventType.Key(), func(candidate *HandlerRecord) bool { return candidate == record })
}

func (r *Registry) remove(key string, match func(*HandlerRecord) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, exists := r.handlers[key]
	if !exists {
		return
	}
	for i, record := range list {
		if !match(record) {
			continue
		}
		// Copy so snapshots taken by in-flight fires are untouched
		remaining := make([]*HandlerRecord, 0, len(list)-1)
		remaining = append(remaining, list[:i]...)
		remaining = append(remaining, list[i+1:]...)
		r.handlers[key] = remaining

		r.logger.Trace().
			Str("handler", record.Name).
			Str("event", key).
			Msg("Removed event handler")
		return
	}
}

// RemoveAllHandlers forgets eventType together with all of its handlers
func (r *Registry) RemoveAllHandlers(eventType EventType) {
	if eventType == nil {
		return
	}
	key := eventType.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[key]; !exists {
		return
	}
	delete(r.handlers, key)
	r.logger.Trace().Str("event", key).Msg("Removed all event handlers")
}

// HasEventType reports whether eventType is registered, even with no
// remaining handlers.
func (r *Registry) HasEventType(eventType EventType) bool {
	if eventType == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.handlers[eventType.Key()]
	return exists
}

// Count returns the number of handlers registered for eventType
func (r *Registry) Count(eventType EventType) int {
	if eventType == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers[eventType.Key()])
}

// EventTypes returns the keys of all registered event types in sorted order
func (r *Registry) EventTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.handlers))
	for key := range r.handlers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

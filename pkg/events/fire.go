package events

import (
	"github.com/arthur-debert/dohook/pkg/errors"
)

// Fire invokes the handlers of eventType with the given positional
// arguments. See FireArgs.
func (r *Registry) Fire(eventType EventType, args ...any) (any, error) {
	return r.FireArgs(eventType, Args{Positional: args})
}

// FireArgs invokes every handler of eventType in priority order. Each
// non-nil handler result replaces the first positional argument seen by
// the handlers after it. FireArgs returns the final first positional
// argument, or nil when there is none. A result returned while no
// positional argument was given becomes the first argument.
//
// Firing an unregistered event type returns the first argument unchanged.
// A handler error is returned as is and stops the remaining handlers.
func (r *Registry) FireArgs(eventType EventType, args Args) (any, error) {
	handlers, err := r.SortedHandlers(eventType)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrUnknownEventType) {
			return args.First(), nil
		}
		return nil, err
	}

	current := Args{Keyword: args.Keyword}
	if len(args.Positional) > 0 {
		current.Positional = make([]any, len(args.Positional))
		copy(current.Positional, args.Positional)
	}

	key := eventType.Key()
	r.logger.Debug().
		Str("event", key).
		Int("handlers", len(handlers)).
		Msg("Firing event")

	for _, record := range handlers {
		r.logger.Trace().
			Str("event", key).
			Str("handler", record.Name).
			Int("priority", record.Priority).
			Msg("Invoking event handler")

		result, err := record.Handler(current)
		if err != nil {
			r.logger.Debug().
				Err(err).
				Str("event", key).
				Str("handler", record.Name).
				Msg("Event handler failed")
			return nil, err
		}
		if result == nil {
			continue
		}
		if len(current.Positional) == 0 {
			current.Positional = []any{result}
		} else {
			current.Positional[0] = result
		}
	}

	return current.First(), nil
}

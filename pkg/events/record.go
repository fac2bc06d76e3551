package events

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"unsafe"

	"github.com/spaolacci/murmur3"
)

// DefaultPriority is the priority given to handlers registered without one
const DefaultPriority = 128

// Args carries the arguments of a fire call. Only the first positional
// argument is replaced by handler return values; the remaining positional
// arguments and the keyword arguments are passed through untouched.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// First returns the first positional argument, or nil if there is none
func (a Args) First() any {
	if len(a.Positional) == 0 {
		return nil
	}
	return a.Positional[0]
}

// At returns the positional argument at index i, or nil if out of range
func (a Args) At(i int) any {
	if i < 0 || i >= len(a.Positional) {
		return nil
	}
	return a.Positional[i]
}

// Kw returns a keyword argument
func (a Args) Kw(name string) (any, bool) {
	v, ok := a.Keyword[name]
	return v, ok
}

// Handler is invoked when its event type fires. A non-nil return value
// replaces the first positional argument for every handler after it;
// returning nil leaves the arguments unchanged.
type Handler func(args Args) (any, error)

// HandlerRecord is one registered handler.
type HandlerRecord struct {
	EventType EventType
	// Name labels the handler in logs and error messages
	Name     string
	Handler  Handler
	Priority int

	id uintptr
}

// Less orders records by priority alone
func (r *HandlerRecord) Less(other *HandlerRecord) bool {
	return r.Priority < other.Priority
}

// Equal reports whether two records share a priority. Records with equal
// priority are equal for ordering purposes even when they wrap different
// handlers.
func (r *HandlerRecord) Equal(other *HandlerRecord) bool {
	return r.Priority == other.Priority
}

// Hash returns a stable hash of the event type, handler identity and
// priority.
func (r *HandlerRecord) Hash() uint64 {
	buf := make([]byte, 0, len(r.EventType.Key())+17)
	buf = append(buf, r.EventType.Key()...)
	buf = append(buf, 0)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(r.id))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(r.Priority)))
	return murmur3.Sum64(buf)
}

func (r *HandlerRecord) String() string {
	return fmt.Sprintf("<HandlerRecord(event=%s,name=%s,priority=%d)>", r.EventType.Key(), r.Name, r.Priority)
}

// handlerID identifies a func value by the closure object it points to.
// A top-level function has one static closure object, so every reference
// to it is the same handler. Each closure instance and each evaluated
// method value (a.Handle) gets its own object and therefore its own
// identity, even when they share code.
func handlerID(h Handler) uintptr {
	return uintptr(*(*unsafe.Pointer)(unsafe.Pointer(&h)))
}

// handlerName derives a diagnostic label from the function symbol, e.g.
// "plugins.announceStartup".
func handlerName(h Handler) string {
	pc := reflect.ValueOf(h).Pointer()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return fmt.Sprintf("handler@%#x", pc)
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

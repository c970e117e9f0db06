package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/lesson-console/internal/logging/events"
	"github.com/atomicstack/lesson-console/internal/mount"
)

// ID identifies a registered view.
type ID string

const (
	Lesson1 ID = "lesson1"
	Lesson2 ID = "lesson2"
	Lesson3 ID = "lesson3"
)

// View is a mountable tree with a stable identity.
type View interface {
	mount.Tree
	ID() ID
}

// Constructor builds a fresh view instance per lookup.
type Constructor func() View

// Entry describes one registered view.
type Entry struct {
	ID          ID
	Title       string
	Description string
	New         Constructor
}

// ErrNotFound is matched by every LookupError.
var ErrNotFound = errors.New("no such view")

// LookupError reports a key that the registry cannot resolve.
type LookupError struct {
	ID ID
}

func (e *LookupError) Error() string {
	if strings.TrimSpace(string(e.ID)) == "" {
		return "no such view: empty key"
	}
	return fmt.Sprintf("no such view %q", string(e.ID))
}

// Is allows errors.Is(err, ErrNotFound).
func (e *LookupError) Is(target error) bool {
	return target == ErrNotFound
}

// Registry maps view IDs to constructors. It is immutable once built.
type Registry struct {
	order   []ID
	entries map[ID]Entry
}

// NewRegistry validates entries and builds the registry. Every constructor is
// invoked once to confirm it produces a view carrying its own key.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		order:   make([]ID, 0, len(entries)),
		entries: make(map[ID]Entry, len(entries)),
	}
	for _, entry := range entries {
		if strings.TrimSpace(string(entry.ID)) == "" {
			return nil, fmt.Errorf("register view: empty key")
		}
		if entry.New == nil {
			return nil, fmt.Errorf("register view %q: nil constructor", entry.ID)
		}
		if _, dup := r.entries[entry.ID]; dup {
			return nil, fmt.Errorf("register view %q: duplicate key", entry.ID)
		}
		probe := entry.New()
		if probe == nil {
			return nil, fmt.Errorf("register view %q: constructor returned nil", entry.ID)
		}
		if probe.ID() != entry.ID {
			return nil, fmt.Errorf("register view %q: constructor built %q", entry.ID, probe.ID())
		}
		r.order = append(r.order, entry.ID)
		r.entries[entry.ID] = entry
	}
	return r, nil
}

// BuildRegistry constructs the registry of built-in lessons.
func BuildRegistry() *Registry {
	r, err := NewRegistry(Lessons()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve returns a fresh instance of the view registered under id.
func (r *Registry) Resolve(id ID) (View, error) {
	if r == nil || strings.TrimSpace(string(id)) == "" {
		return nil, &LookupError{ID: id}
	}
	entry, ok := r.entries[id]
	if !ok {
		return nil, &LookupError{ID: id}
	}
	events.View.Resolve(string(id))
	return entry.New(), nil
}

// Find returns the entry registered under id.
func (r *Registry) Find(id ID) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	entry, ok := r.entries[id]
	return entry, ok
}

// IDs lists the registered keys in registration order.
func (r *Registry) IDs() []ID {
	if r == nil {
		return nil
	}
	ids := make([]ID, len(r.order))
	copy(ids, r.order)
	return ids
}

// Entries lists the registered entries in registration order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// ParseID normalises user input into a registered ID.
func (r *Registry) ParseID(raw string) (ID, bool) {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := r.Find(id)
	return id, ok
}

// Package lesson provides the controls that mount a lesson view onto the
// shared surface.
package lesson

import (
	"fmt"

	"github.com/atomicstack/lesson-console/internal/format/table"
	"github.com/atomicstack/lesson-console/internal/logging/events"
	"github.com/atomicstack/lesson-console/internal/mount"
	"github.com/atomicstack/lesson-console/internal/theme"
	"github.com/atomicstack/lesson-console/internal/view"
)

// Resolver looks up a view by key.
type Resolver interface {
	Resolve(view.ID) (view.View, error)
}

// Selector is a labelled control bound to one view key. Triggering it
// mounts the view; the selector itself holds no mutable state.
type Selector struct {
	key         view.ID
	label       string
	description string
	resolver    Resolver
	surface     mount.Surface
}

// NewSelector binds key to surface via resolver.
func NewSelector(key view.ID, label string, resolver Resolver, surface mount.Surface) *Selector {
	return &Selector{key: key, label: label, resolver: resolver, surface: surface}
}

// WithDescription returns a copy of s carrying a description line.
func (s *Selector) WithDescription(description string) *Selector {
	clone := *s
	clone.description = description
	return &clone
}

// Key returns the view key the selector mounts.
func (s *Selector) Key() view.ID { return s.key }

// Label returns the control text.
func (s *Selector) Label() string { return s.label }

// Description returns the line shown beside the control.
func (s *Selector) Description() string { return s.description }

// Trigger resolves the bound key and replaces the surface content with the
// result. A failed lookup leaves the surface untouched and is returned.
func (s *Selector) Trigger() error {
	if s.resolver == nil {
		return &view.LookupError{ID: s.key}
	}
	v, err := s.resolver.Resolve(s.key)
	if err != nil {
		return err
	}
	if s.surface == nil {
		return fmt.Errorf("trigger %s: no surface", s.key)
	}
	events.UI.Activate(string(s.key), s.label)
	s.surface.Replace(v)
	return nil
}

// Button renders the control text.
func (s *Selector) Button() string {
	return "[ " + s.label + " ]"
}

// Render draws the control with its description beside it.
func (s *Selector) Render(focused bool) string {
	selected := -1
	if focused {
		selected = 0
	}
	return RenderAll([]*Selector{s}, selected)[0]
}

// RenderAll draws each selector as a control followed by its description,
// with descriptions aligned in one column. The row at index selected is
// drawn focused; pass -1 for none.
func RenderAll(selectors []*Selector, selected int) []string {
	styles := theme.Default()
	rows := make([][]string, len(selectors))
	for i, s := range selectors {
		style := styles.Item
		if i == selected {
			style = styles.SelectedItem
		}
		row := []string{theme.Render(style, s.Button())}
		if s.description != "" {
			row = append(row, theme.Render(styles.Description, s.description))
		}
		rows[i] = row
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
}

// SelectorsFor builds one selector per registered view, in registry order.
func SelectorsFor(registry *view.Registry, surface mount.Surface) []*Selector {
	entries := registry.Entries()
	out := make([]*Selector, 0, len(entries))
	for _, entry := range entries {
		sel := NewSelector(entry.ID, entry.Title, registry, surface).WithDescription(entry.Description)
		out = append(out, sel)
	}
	return out
}

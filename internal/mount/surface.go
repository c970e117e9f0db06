// Package mount owns the single attachment point of the terminal UI. Exactly
// one top-level tree is mounted at a time; replacing it discards the previous
// tree entirely.
package mount

import (
	"fmt"

	"github.com/atomicstack/lesson-console/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Tree is a renderable unit that can be mounted. It follows Bubble Tea's
// Init/Update/View contract, returning itself (or a successor) from Update.
type Tree interface {
	Init() tea.Cmd
	Update(tea.Msg) (Tree, tea.Cmd)
	View() string
}

// Surface is the capability consumed by components that mount content.
type Surface interface {
	Replace(Tree)
}

// Named trees report a stable name for trace output.
type Named interface {
	MountName() string
}

// Root is the concrete Surface held by the program model.
type Root struct {
	current    Tree
	generation uint64
}

// NewRoot returns an empty surface.
func NewRoot() *Root {
	return &Root{}
}

// Replace discards whatever is mounted and mounts t. A nil tree clears the
// surface.
func (r *Root) Replace(t Tree) {
	r.current = t
	r.generation++
	events.UI.Mount(Name(t))
}

// Mount replaces the surface content and returns the new tree's Init command.
func (r *Root) Mount(t Tree) tea.Cmd {
	r.Replace(t)
	if t == nil {
		return nil
	}
	return t.Init()
}

// Current returns the mounted tree, or nil.
func (r *Root) Current() Tree {
	return r.current
}

// Generation increments on every Replace.
func (r *Root) Generation() uint64 {
	return r.generation
}

// Update forwards msg to the mounted tree. When the tree replaces the surface
// while handling msg, the replacement wins and is initialised.
func (r *Root) Update(msg tea.Msg) tea.Cmd {
	if r.current == nil {
		return nil
	}
	before := r.generation
	next, cmd := r.current.Update(msg)
	if r.generation == before {
		r.current = next
		return cmd
	}
	if r.current == nil {
		return cmd
	}
	return tea.Batch(cmd, r.current.Init())
}

// View renders the mounted tree.
func (r *Root) View() string {
	if r.current == nil {
		return ""
	}
	return r.current.View()
}

// Name describes t for trace output.
func Name(t Tree) string {
	if t == nil {
		return "<empty>"
	}
	if named, ok := t.(Named); ok {
		return named.MountName()
	}
	return fmt.Sprintf("%T", t)
}

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/atomicstack/lesson-console/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates one asynchronous invocation.
type Request struct {
	ID    string
	Label string
	Run   func(context.Context) tea.Msg
}

// Bus turns requests into Bubble Tea commands, bounding each with a timeout
// derived from a shared base context.
type Bus struct {
	ctx     context.Context
	timeout time.Duration
}

// Option customises a Bus.
type Option func(*Bus)

// WithContext sets the parent context for every request.
func WithContext(ctx context.Context) Option {
	return func(b *Bus) {
		if ctx != nil {
			b.ctx = ctx
		}
	}
}

// WithTimeout bounds each request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(b *Bus) {
		if d >= 0 {
			b.timeout = d
		}
	}
}

// New initialises a command bus instance.
func New(opts ...Option) *Bus {
	b := &Bus{ctx: context.Background()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Execute wraps req into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		ctx, cancel := b.context()
		defer cancel()
		msg := req.Run(ctx)
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

func (b *Bus) context() (context.Context, context.CancelFunc) {
	if b.timeout > 0 {
		return context.WithTimeout(b.ctx, b.timeout)
	}
	return context.WithCancel(b.ctx)
}

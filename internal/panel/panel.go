// Package panel implements the remote call panel: two controls that each
// invoke one API operation, and the text of whichever response was handled
// most recently.
package panel

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atomicstack/lesson-console/internal/logging/events"
	"github.com/atomicstack/lesson-console/internal/remote"
	"github.com/atomicstack/lesson-console/internal/theme"
	"github.com/atomicstack/lesson-console/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// Action names a panel control.
type Action string

const (
	HealthCheck Action = "api:healthcheck"
	HelloWorld  Action = "api:helloworld"

	Heading = "API List"
)

// Actions lists the controls in display order.
func Actions() []Action {
	return []Action{HealthCheck, HelloWorld}
}

// Label returns the control text for a.
func (a Action) Label() string {
	switch a {
	case HealthCheck:
		return "Call HealthCheck"
	case HelloWorld:
		return "Call HelloWorld"
	}
	return string(a)
}

var errNoCaller = errors.New("panel has no remote caller")

// Caller performs the remote operations.
type Caller interface {
	HealthCheck(context.Context) (remote.HealthCheckResponse, error)
	HelloWorld(context.Context) (remote.HelloReply, error)
}

// Reporter receives failures. It is the panel's only diagnostic channel.
type Reporter func(endpoint string, err error)

// Panel holds the last result and issues calls through a command bus.
type Panel struct {
	caller Caller
	bus    *command.Bus
	report Reporter
	state  State
}

// Option customises a Panel.
type Option func(*Panel)

// WithReporter overrides the failure reporter.
func WithReporter(r Reporter) Option {
	return func(p *Panel) {
		if r != nil {
			p.report = r
		}
	}
}

// WithBus overrides the command bus.
func WithBus(b *command.Bus) Option {
	return func(p *Panel) {
		if b != nil {
			p.bus = b
		}
	}
}

// WithTimeout bounds each call.
func WithTimeout(d time.Duration) Option {
	return func(p *Panel) {
		p.bus = command.New(command.WithTimeout(d))
	}
}

// New returns a panel with an empty result.
func New(caller Caller, opts ...Option) *Panel {
	p := &Panel{
		caller: caller,
		bus:    command.New(),
		report: events.Remote.Failure,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns a copy of the current state.
func (p *Panel) State() State {
	return p.state
}

// InvokeHealthCheck starts one health-check call. The result arrives as a
// HealthCheckResultMsg.
func (p *Panel) InvokeHealthCheck() tea.Cmd {
	caller := p.caller
	return p.bus.Execute(command.Request{
		ID:    string(HealthCheck),
		Label: HealthCheck.Label(),
		Run: func(ctx context.Context) tea.Msg {
			if caller == nil {
				return HealthCheckResultMsg{Err: errNoCaller}
			}
			resp, err := caller.HealthCheck(ctx)
			return HealthCheckResultMsg{Response: resp, Err: err}
		},
	})
}

// InvokeHelloWorld starts one hello-world call. The result arrives as a
// HelloWorldResultMsg.
func (p *Panel) InvokeHelloWorld() tea.Cmd {
	caller := p.caller
	return p.bus.Execute(command.Request{
		ID:    string(HelloWorld),
		Label: HelloWorld.Label(),
		Run: func(ctx context.Context) tea.Msg {
			if caller == nil {
				return HelloWorldResultMsg{Err: errNoCaller}
			}
			reply, err := caller.HelloWorld(ctx)
			return HelloWorldResultMsg{Reply: reply, Err: err}
		},
	})
}

// Invoke dispatches a by name. Unknown actions yield nil.
func (p *Panel) Invoke(a Action) tea.Cmd {
	switch a {
	case HealthCheck:
		events.UI.Activate(string(a), a.Label())
		return p.InvokeHealthCheck()
	case HelloWorld:
		events.UI.Activate(string(a), a.Label())
		return p.InvokeHelloWorld()
	}
	return nil
}

// Handle applies a result message. Every result overwrites the previous one
// in the order handled, regardless of which call was issued first. It
// reports whether msg belonged to the panel.
func (p *Panel) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case HealthCheckResultMsg:
		if msg.Err != nil {
			p.fail(remote.EndpointHealthCheck, msg.Err)
			return true
		}
		p.state = p.state.ApplyHealthCheck(msg.Response)
		events.Remote.Applied(remote.EndpointHealthCheck, p.state.LastResult)
		return true
	case HelloWorldResultMsg:
		if msg.Err != nil {
			p.fail(remote.EndpointHelloWorld, msg.Err)
			return true
		}
		p.state = p.state.ApplyHelloWorld(msg.Reply)
		events.Remote.Applied(remote.EndpointHelloWorld, p.state.LastResult)
		return true
	}
	return false
}

func (p *Panel) fail(endpoint string, err error) {
	p.state = p.state.ApplyFailure(err)
	p.report(endpoint, err)
}

var styles = theme.Default()

// RenderHeading renders the section heading.
func RenderHeading() string {
	return theme.Render(styles.Section, Heading)
}

// RenderControl renders one control as a button.
func RenderControl(a Action, focused bool) string {
	text := "[ " + a.Label() + " ]"
	if focused {
		return theme.Render(styles.SelectedItem, text)
	}
	return theme.Render(styles.Item, text)
}

// RenderResult renders the last result line. It is blank until a call
// succeeds.
func (p *Panel) RenderResult() string {
	return theme.Render(styles.Result, p.state.LastResult)
}

// RenderLines returns the heading, the row of controls and the last result
// as separate lines. focused names the control holding focus, if any. mark,
// when set, wraps each rendered control.
func (p *Panel) RenderLines(focused Action, mark func(Action, string) string) []string {
	controls := make([]string, 0, len(Actions()))
	for _, a := range Actions() {
		control := RenderControl(a, a == focused)
		if mark != nil {
			control = mark(a, control)
		}
		controls = append(controls, control)
	}
	return []string{
		RenderHeading(),
		strings.Join(controls, "  "),
		p.RenderResult(),
	}
}

// Render draws the heading, both controls and the last result.
func (p *Panel) Render(focused Action) string {
	return strings.Join(p.RenderLines(focused, nil), "\n")
}

// Package ui contains the Bubble Tea program behind the lesson console.
// The Model type owns the single mount point and routes messages; the home
// tree owns the lesson list, its filter and the API panel.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. A typed handler
//     registry picks a focused function per tea.Msg (keys, resizes, mouse
//     clicks, API results).
//   - Messages without a handler are forwarded to whatever tree is mounted.
//     When that tree replaces the surface while handling the message, the
//     replacement is initialised and sized before the next frame.
//   - API results always reach the panel, even while a lesson is mounted, so
//     the last handled response is what the home screen shows on return.
//
// State ownership:
//   - internal/mount.Root holds the mounted tree. Lesson selectors replace it;
//     Esc remounts the home tree, which keeps its filter and panel state.
//   - internal/ui/state.List tracks the lesson rows, filter and cursor.
//   - internal/panel holds the last result text and issues calls through the
//     command bus in internal/ui/command.
package ui

package editor

import (
	"go.uber.org/zap"

	"github.com/cozy/listedit-go/transform"
)

// Command is a named editor operation with an enabled state. Commands never
// fail at execution time: when their preconditions do not hold they report
// themselves disabled instead.
type Command interface {
	// Enabled reports whether the command may execute for the given state.
	Enabled(s *State) bool

	// Execute records the command's changes on the given transform. It is
	// only called when Enabled returns true.
	Execute(s *State, tr *transform.Transform)
}

// Register adds a command under the given name, replacing any previous
// command with that name.
func (e *Editor) Register(name string, cmd Command) {
	e.commands[name] = cmd
}

// Enabled reports whether the named command exists and is enabled for the
// current state.
func (e *Editor) Enabled(name string) bool {
	cmd, ok := e.commands[name]
	return ok && cmd.Enabled(&e.state)
}

// Execute runs the named command inside a fresh transform and applies it.
// It reports whether the command ran; an unknown or disabled command is a
// silent no-op.
func (e *Editor) Execute(name string) bool {
	cmd, ok := e.commands[name]
	if !ok || !cmd.Enabled(&e.state) {
		return false
	}
	tr := transform.NewTransform(e.state.Doc)
	cmd.Execute(&e.state, tr)
	e.log.Debug("command executed",
		zap.String("command", name), zap.Int("steps", len(tr.Steps)))
	e.Apply(tr)
	return true
}

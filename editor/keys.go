package editor

// Key identifies a keyboard key the editor cares about.
type Key string

// The keys dispatched through the handler pipeline.
const (
	KeyEnter     Key = "enter"
	KeyBackspace Key = "backspace"
	KeyDelete    Key = "delete"
	KeyTab       Key = "tab"
)

// Direction is the deletion direction of a delete-like key.
type Direction string

// Deletion directions.
const (
	DirBackward Direction = "backward"
	DirForward  Direction = "forward"
)

// KeyEvent is one keyboard event travelling through the handler pipeline.
// Handlers that act on an event must call PreventDefault to suppress the
// host's default action and StopPropagation to keep later handlers from also
// acting on it.
type KeyEvent struct {
	Key       Key
	Shift     bool
	Direction Direction

	prevented bool
	stopped   bool
}

// PreventDefault suppresses the host's default action for this key.
func (ev *KeyEvent) PreventDefault() { ev.prevented = true }

// Prevented reports whether a handler suppressed the default action.
func (ev *KeyEvent) Prevented() bool { return ev.prevented }

// StopPropagation keeps the remaining pipeline stages from seeing the event.
func (ev *KeyEvent) StopPropagation() { ev.stopped = true }

// Stopped reports whether propagation was stopped.
func (ev *KeyEvent) Stopped() bool { return ev.stopped }

// KeyHandler is one stage of the key pipeline.
type KeyHandler interface {
	HandleKey(e *Editor, ev *KeyEvent)
}

// KeyHandlerFunc adapts a function to the KeyHandler interface.
type KeyHandlerFunc func(e *Editor, ev *KeyEvent)

// HandleKey is a method of the KeyHandler interface.
func (f KeyHandlerFunc) HandleKey(e *Editor, ev *KeyEvent) { f(e, ev) }

type binding struct {
	key   Key
	shift bool
}

// AddKeyHandler appends a stage to the key pipeline. Handlers run in
// registration order.
func (e *Editor) AddKeyHandler(h KeyHandler) {
	e.handlers = append(e.handlers, h)
}

// Bind maps a key (with an optional shift modifier) to a command. When no
// pipeline handler claims the event, the bound command executes if it is
// enabled, consuming the key.
func (e *Editor) Bind(key Key, shift bool, command string) {
	e.bindings[binding{key: key, shift: shift}] = command
}

// HandleKey runs the event through the handler pipeline in registration
// order, short-circuiting once a handler stops propagation, then falls back
// to the keymap. It reports whether the default action was prevented.
func (e *Editor) HandleKey(ev *KeyEvent) bool {
	for _, h := range e.handlers {
		if ev.Stopped() {
			break
		}
		h.HandleKey(e, ev)
	}
	if !ev.Prevented() {
		if name, ok := e.bindings[binding{key: ev.Key, shift: ev.Shift}]; ok {
			if e.Execute(name) {
				ev.PreventDefault()
				ev.StopPropagation()
			}
		}
	}
	return ev.Prevented()
}

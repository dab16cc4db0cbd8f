// Package editor provides the minimal plugin host that feature packages
// register against: a command registry, an ordered key-handler pipeline, and
// transaction application with repair passes and change notification. It
// stands in for the narrow interfaces a full editing framework exposes to
// its feature plugins.
package editor

import (
	"go.uber.org/zap"

	"github.com/cozy/listedit-go/model"
	"github.com/cozy/listedit-go/transform"
)

// State is the mutable editing state of an editor: the current document and
// the current selection.
type State struct {
	Doc       *model.Document
	Selection model.Selection
}

// Fixer is a post-mutation repair pass. It inspects the transform's current
// document and appends normalization steps to the same transform, so its
// rewrites are part of the same indivisible update.
type Fixer func(tr *transform.Transform)

// ChangeListener is notified once per applied transform with the final
// document and the indexes of the blocks in the changed region.
type ChangeListener func(doc *model.Document, changed []int)

// Editor hosts feature plugins. All operations run synchronously on the
// caller's goroutine; the editor performs no locking of its own.
type Editor struct {
	state     State
	commands  map[string]Command
	handlers  []KeyHandler
	bindings  map[binding]string
	fixers    []Fixer
	listeners []ChangeListener
	ids       model.IDGenerator
	log       *zap.Logger
}

// Option configures an editor.
type Option func(*Editor)

// WithIDGenerator replaces the default UUID-backed identity generator.
func WithIDGenerator(ids model.IDGenerator) Option {
	return func(e *Editor) { e.ids = ids }
}

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Editor) { e.log = log }
}

// New creates an editor over the given document, with a collapsed selection
// at the start of the first block.
func New(doc *model.Document, opts ...Option) *Editor {
	e := &Editor{
		state:    State{Doc: doc},
		commands: map[string]Command{},
		bindings: map[binding]string{},
		ids:      model.UUIDGenerator{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Doc returns the current document.
func (e *Editor) Doc() *model.Document {
	return e.state.Doc
}

// Selection returns the current selection.
func (e *Editor) Selection() model.Selection {
	return e.state.Selection
}

// SetSelection moves the selection. Panics when the selection does not point
// inside the current document.
func (e *Editor) SetSelection(sel model.Selection) {
	if !sel.Valid(e.state.Doc) {
		panic("selection out of range for the current document")
	}
	e.state.Selection = sel
}

// IDs returns the identity generator plugins should use for fresh item and
// marker identifiers.
func (e *Editor) IDs() model.IDGenerator {
	return e.ids
}

// AddFixer registers a repair pass, run in registration order after every
// transform before it is committed.
func (e *Editor) AddFixer(f Fixer) {
	e.fixers = append(e.fixers, f)
}

// OnChange registers a document-change listener.
func (e *Editor) OnChange(fn ChangeListener) {
	e.listeners = append(e.listeners, fn)
}

// Apply runs the repair passes on the transform and commits its resulting
// document, notifying change listeners exactly once. A transform without
// steps is a no-op.
func (e *Editor) Apply(tr *transform.Transform) {
	if !tr.DocChanged() {
		return
	}
	for _, fix := range e.fixers {
		before := len(tr.Steps)
		fix(tr)
		if rewrites := len(tr.Steps) - before; rewrites > 0 {
			e.log.Debug("repair pass rewrote blocks", zap.Int("steps", rewrites))
		}
	}
	old := e.state.Doc
	e.state.Doc = tr.Doc
	e.state.Selection = clampSelection(e.state.Selection, tr.Doc)
	changed := model.ChangedBlocks(old, tr.Doc)
	for _, fn := range e.listeners {
		fn(tr.Doc, changed)
	}
}

// clampSelection keeps a selection inside the document after blocks were
// removed or shortened.
func clampSelection(sel model.Selection, doc *model.Document) model.Selection {
	return model.Selection{
		Anchor: clampPosition(sel.Anchor, doc),
		Head:   clampPosition(sel.Head, doc),
	}
}

func clampPosition(p model.Position, doc *model.Document) model.Position {
	if doc.ChildCount() == 0 {
		return model.Position{}
	}
	if p.Block >= doc.ChildCount() {
		p.Block = doc.ChildCount() - 1
		p.Offset = len(doc.Block(p.Block).Text)
		return p
	}
	if max := len(doc.Block(p.Block).Text); p.Offset > max {
		p.Offset = max
	}
	return p
}

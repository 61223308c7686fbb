package engine_test

import (
	"github.com/cssflow/layout/engine"
	"github.com/cssflow/layout/style"
)

// fakeHost is a minimal in-memory engine.Host used by the engine tests:
// nodes are slice indices, assigned in the order Add is called.
type fakeHost struct {
	styles   []style.Style
	children [][]engine.NodeID
}

func newFakeHost() *fakeHost {
	return &fakeHost{}
}

// Add registers a new node with s and returns its NodeID.
func (h *fakeHost) Add(s style.Style, children ...engine.NodeID) engine.NodeID {
	id := engine.NodeID(len(h.styles))
	h.styles = append(h.styles, s)
	h.children = append(h.children, children)
	return id
}

func (h *fakeHost) Style(id engine.NodeID) style.Style { return h.styles[id] }

func (h *fakeHost) Children(id engine.NodeID) []engine.NodeID { return h.children[id] }

func (h *fakeHost) IsText(engine.NodeID) bool { return false }

func (h *fakeHost) IsReplaced(engine.NodeID) bool { return false }

func (h *fakeHost) IntrinsicSize(engine.NodeID) engine.Size { return engine.Size{} }

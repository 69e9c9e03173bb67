// Package action defines the tagged set of moves the solver emits as an
// audit trail between consecutive solution steps. Action carries no
// behaviour of its own: it is a plain tagged record, and every consumer
// (the solver's own dedup, the renderer's captioning, test oracles)
// switches on its Kind to decide which payload fields apply.
package action

import (
	"fmt"

	"github.com/alphabeth/splice/strand"
)

// Kind tags which variant an Action holds.
type Kind uint8

const (
	ChangeParent Kind = iota
	SwapChildren
	Mutate
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case ChangeParent:
		return "ChangeParent"
	case SwapChildren:
		return "SwapChildren"
	case Mutate:
		return "Mutate"
	}
	return "UNKNOWN ACTION KIND"
}

// Action is a tagged record describing one transition. Only the fields
// relevant to Kind are meaningful.
type Action struct {
	Kind Kind

	// ChangeParent payload.
	Node      strand.NodeID
	OldParent strand.NodeID
	NewParent strand.NodeID

	// SwapChildren payload.
	Parent strand.NodeID

	// Mutate payload: the cells that mutated in one pass, ascending
	// handle order.
	Nodes []strand.NodeID
}

// NewChangeParent builds a ChangeParent action.
func NewChangeParent(node, oldParent, newParent strand.NodeID) Action {
	return Action{Kind: ChangeParent, Node: node, OldParent: oldParent, NewParent: newParent}
}

// NewSwapChildren builds a SwapChildren action.
func NewSwapChildren(parent strand.NodeID) Action {
	return Action{Kind: SwapChildren, Parent: parent}
}

// NewMutate builds a Mutate action.
func NewMutate(nodes []strand.NodeID) Action {
	return Action{Kind: Mutate, Nodes: nodes}
}

// Equal reports whether a and other have the same tag and payload.
func (a Action) Equal(other Action) bool {
	if a.Kind != other.Kind {
		return false
	}
	switch a.Kind {
	case ChangeParent:
		return a.Node == other.Node && a.OldParent == other.OldParent && a.NewParent == other.NewParent
	case SwapChildren:
		return a.Parent == other.Parent
	case Mutate:
		if len(a.Nodes) != len(other.Nodes) {
			return false
		}
		for i := range a.Nodes {
			if a.Nodes[i] != other.Nodes[i] {
				return false
			}
		}
		return true
	}
	return false
}

// Key returns a string uniquely determined by a's tag and payload,
// suitable as a map key where Action itself cannot be one (its Nodes
// slice is not comparable).
func (a Action) Key() string {
	switch a.Kind {
	case ChangeParent:
		return fmt.Sprintf("C:%d:%d:%d", a.Node, a.OldParent, a.NewParent)
	case SwapChildren:
		return fmt.Sprintf("S:%d", a.Parent)
	case Mutate:
		return fmt.Sprintf("M:%v", a.Nodes)
	}
	return "?"
}

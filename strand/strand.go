// Package strand implements the Splice puzzle's tree data model: an
// ordered binary tree of typed cells, the edits the solver is allowed to
// make to it, and the automatic mutation pass special cells trigger.
//
// Nodes are identified by small integer handles stable for the lifetime
// of one Strand, stored in a flat slice rather than as a pointer tree.
// Handles stay valid across edits - moving or erasing a node never
// renumbers its siblings - and a tombstoned node's slot is simply marked
// dead rather than compacted away.
package strand

import (
	"fmt"
	"hash/fnv"
)

// NodeID is a handle into a Strand's node slots. It is stable for the
// lifetime of a Strand but carries no meaning across different Strand
// values - structural equality never compares handles.
type NodeID int32

// NilNode is the handle used where no node is present, e.g. the parent
// of the root.
const NilNode NodeID = -1

// Valid reports whether n could name a real node (it does not check
// liveness or bounds against any particular Strand).
func (n NodeID) Valid() bool {
	return n >= 0
}

// CellKind is the type of a strand cell.
type CellKind uint8

const (
	Normal CellKind = iota
	Doubler
	Extender
	Eraser
)

// String returns the cell kind's name.
func (k CellKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case Doubler:
		return "Doubler"
	case Extender:
		return "Extender"
	case Eraser:
		return "Eraser"
	}
	return "UNKNOWN CELL KIND"
}

// Edge is a parent-to-child relationship.
type Edge struct {
	Parent NodeID
	Child  NodeID
}

// Mutable assigns a non-default cell kind to a node at construction time.
type Mutable struct {
	Node NodeID
	Kind CellKind
}

type node struct {
	kind     CellKind
	parent   NodeID
	children []NodeID
	alive    bool
}

// Strand is a rooted ordered binary tree of cells. The zero value is not
// usable; construct one with New.
type Strand struct {
	nodes []node
}

// New allocates nodeCount live Normal slots, wires edges as parent->child
// links, then assigns the listed nodes' cell kinds. It panics if an edge
// would violate the tree invariants (duplicate child link, more than two
// children, a node given two parents).
func New(nodeCount int, edges []Edge, mutables []Mutable) *Strand {
	s := &Strand{nodes: make([]node, nodeCount)}
	for i := range s.nodes {
		s.nodes[i] = node{kind: Normal, parent: NilNode, alive: true}
	}
	for _, e := range edges {
		s.connect(e.Parent, e.Child)
	}
	for _, m := range mutables {
		s.requireLive(m.Node)
		s.nodes[m.Node].kind = m.Kind
	}
	return s
}

// Root returns the conventional root handle, always 0. No splice gives
// the root a parent (ChangeParent panics on a parentless node). Mutate
// tombstones the root only when the root cell itself is an Eraser, which
// no catalogue level has; Root still returns 0 afterwards.
func (s *Strand) Root() NodeID {
	return 0
}

// ParentID returns the parent of n, or NilNode if n is the root.
func (s *Strand) ParentID(n NodeID) NodeID {
	s.requireLive(n)
	return s.nodes[n].parent
}

// ChildIDs returns a copy of n's ordered children (length 0, 1, or 2).
func (s *Strand) ChildIDs(n NodeID) []NodeID {
	s.requireLive(n)
	out := make([]NodeID, len(s.nodes[n].children))
	copy(out, s.nodes[n].children)
	return out
}

// ChildCount returns the number of children n has.
func (s *Strand) ChildCount(n NodeID) int {
	s.requireLive(n)
	return len(s.nodes[n].children)
}

// CellKind returns the kind of cell n is.
func (s *Strand) CellKind(n NodeID) CellKind {
	s.requireLive(n)
	return s.nodes[n].kind
}

// CollectNodeIDs returns every live node reachable from the root, in
// left-to-right DFS order.
func (s *Strand) CollectNodeIDs() []NodeID {
	return s.dfsFrom(s.Root())
}

// CollectEdges returns the parent->child pairs reachable from the root,
// in the DFS order CollectNodeIDs would visit the child in. The root
// itself contributes no edge.
func (s *Strand) CollectEdges() []Edge {
	ids := s.dfsFrom(s.Root())
	edges := make([]Edge, 0, len(ids))
	root := s.Root()
	for _, id := range ids {
		if id == root {
			continue
		}
		edges = append(edges, Edge{Parent: s.nodes[id].parent, Child: id})
	}
	return edges
}

// LiveNodeIDs returns every live node in ascending handle order,
// regardless of reachability from the root. The solver's candidate-new-
// parent search uses this ordering, distinct from the DFS order
// CollectNodeIDs uses for visiting splice sources.
func (s *Strand) LiveNodeIDs() []NodeID {
	var out []NodeID
	for id := NodeID(0); int(id) < len(s.nodes); id++ {
		if s.nodes[id].alive {
			out = append(out, id)
		}
	}
	return out
}

// Subtree returns n and all of its descendants, in left-to-right DFS
// order starting at n.
func (s *Strand) Subtree(n NodeID) []NodeID {
	s.requireLive(n)
	return s.dfsFrom(n)
}

// ChangeParent moves child from its current parent to newParent. It
// panics if child's current parent is already newParent, or if
// newParent already has two children.
func (s *Strand) ChangeParent(child, newParent NodeID) {
	s.requireLive(child)
	s.requireLive(newParent)
	oldParent := s.nodes[child].parent
	if oldParent == newParent {
		panic(fmt.Sprintf("strand: node %d is already a child of %d", child, newParent))
	}
	if len(s.nodes[newParent].children) >= 2 {
		panic(fmt.Sprintf("strand: node %d already has two children", newParent))
	}
	s.removeChild(oldParent, child)
	s.nodes[child].parent = NilNode
	s.connect(newParent, child)
}

// SwapChildren reverses the order of n's two children. It panics if n
// does not have exactly two children.
func (s *Strand) SwapChildren(n NodeID) {
	s.requireLive(n)
	if len(s.nodes[n].children) != 2 {
		panic(fmt.Sprintf("strand: node %d does not have exactly two children", n))
	}
	s.nodes[n].children[0], s.nodes[n].children[1] = s.nodes[n].children[1], s.nodes[n].children[0]
}

// Mutate applies one automatic mutation pass: every non-Normal live cell
// at the shallowest such depth fires its effect, in ascending handle
// order. It returns the handles that mutated, or nil if no non-Normal
// cell exists.
func (s *Strand) Mutate() []NodeID {
	var candidates []NodeID
	for id := NodeID(0); int(id) < len(s.nodes); id++ {
		if s.nodes[id].alive && s.nodes[id].kind != Normal {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	depths := make(map[NodeID]int, len(candidates))
	minDepth := -1
	for _, id := range candidates {
		d := s.depth(id)
		depths[id] = d
		if minDepth == -1 || d < minDepth {
			minDepth = d
		}
	}

	var mutating []NodeID
	for _, id := range candidates {
		if depths[id] == minDepth {
			mutating = append(mutating, id)
		}
	}

	for _, id := range mutating {
		switch s.nodes[id].kind {
		case Doubler:
			s.mutateDoubler(id)
		case Extender:
			s.mutateExtender(id)
		case Eraser:
			s.mutateEraser(id)
		default:
			panic(fmt.Sprintf("strand: cannot mutate a %v cell with id %d", s.nodes[id].kind, id))
		}
	}
	return mutating
}

// Equal reports whether s and other have the same shape: a synchronous
// DFS from each root visits the same number of nodes, and at every step
// the two currently visited nodes have the same child count and the same
// cell kind. Handles are irrelevant.
func (s *Strand) Equal(other *Strand) bool {
	a := s.dfsFrom(s.Root())
	b := other.dfsFrom(other.Root())
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		na, nb := a[i], b[i]
		if len(s.nodes[na].children) != len(other.nodes[nb].children) {
			return false
		}
		if s.nodes[na].kind != other.nodes[nb].kind {
			return false
		}
	}
	return true
}

// Hash returns a structural hash consistent with Equal: it hashes the
// (childCount, cellKind) sequence emitted by the same left-to-right DFS
// Equal uses, so any two strands that compare equal hash equal.
func (s *Strand) Hash() uint64 {
	h := fnv.New64a()
	for _, id := range s.dfsFrom(s.Root()) {
		h.Write([]byte{byte(len(s.nodes[id].children)), byte(s.nodes[id].kind)})
	}
	return h.Sum64()
}

// Clone returns a deep copy. Edits on the clone never perturb s.
func (s *Strand) Clone() *Strand {
	out := &Strand{nodes: make([]node, len(s.nodes))}
	for i, n := range s.nodes {
		var children []NodeID
		if n.children != nil {
			children = make([]NodeID, len(n.children))
			copy(children, n.children)
		}
		out.nodes[i] = node{kind: n.kind, parent: n.parent, children: children, alive: n.alive}
	}
	return out
}

// private

func (s *Strand) requireLive(n NodeID) {
	if n < 0 || int(n) >= len(s.nodes) || !s.nodes[n].alive {
		panic(fmt.Sprintf("strand: node %d is not a live handle", n))
	}
}

func (s *Strand) connect(parent, child NodeID) {
	s.requireLive(parent)
	s.requireLive(child)
	if len(s.nodes[parent].children) >= 2 {
		panic(fmt.Sprintf("strand: node %d already has two children", parent))
	}
	for _, c := range s.nodes[parent].children {
		if c == child {
			panic(fmt.Sprintf("strand: node %d is already a child of %d", child, parent))
		}
	}
	if s.nodes[child].parent != NilNode {
		panic(fmt.Sprintf("strand: node %d already has a parent", child))
	}
	s.nodes[parent].children = append(s.nodes[parent].children, child)
	s.nodes[child].parent = parent
}

func (s *Strand) removeChild(parent, child NodeID) {
	children := s.nodes[parent].children
	for i, c := range children {
		if c == child {
			s.nodes[parent].children = append(children[:i], children[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("strand: node %d is not a child of %d", child, parent))
}

func (s *Strand) dfsFrom(root NodeID) []NodeID {
	var out []NodeID
	var visit func(NodeID)
	visit = func(n NodeID) {
		out = append(out, n)
		for _, c := range s.nodes[n].children {
			visit(c)
		}
	}
	visit(root)
	return out
}

func (s *Strand) depth(n NodeID) int {
	d := 0
	for s.nodes[n].parent != NilNode {
		n = s.nodes[n].parent
		d++
	}
	return d
}

// mutateDoubler implements the Doubler effect: the subtree rooted at d is
// duplicated into freshly allocated slots, the copy is attached as a
// second child of d's parent, and d itself reverts to Normal. Non-root
// copies keep their original cell kind so cascades of specials stay
// reactive in later passes; the copy's root becomes Normal since it
// represents the Doubler being consumed.
func (s *Strand) mutateDoubler(d NodeID) {
	p := s.nodes[d].parent
	if p == NilNode || len(s.nodes[p].children) != 1 {
		panic(fmt.Sprintf("strand: doubler %d's parent does not have exactly one child", d))
	}

	subtree := s.dfsFrom(d)
	base := NodeID(len(s.nodes))
	oldToNew := make(map[NodeID]NodeID, len(subtree))
	for i, old := range subtree {
		oldToNew[old] = base + NodeID(i)
	}

	for _, old := range subtree {
		kind := s.nodes[old].kind
		if old == d {
			kind = Normal
		}
		children := make([]NodeID, len(s.nodes[old].children))
		for j, c := range s.nodes[old].children {
			children[j] = oldToNew[c]
		}
		var parent NodeID
		if old == d {
			parent = p
		} else {
			parent = oldToNew[s.nodes[old].parent]
		}
		s.nodes = append(s.nodes, node{kind: kind, parent: parent, children: children, alive: true})
	}

	s.nodes[p].children = append(s.nodes[p].children, base)
	s.nodes[d].kind = Normal
}

// mutateExtender implements the Extender effect: a fresh Normal node is
// spliced in between e and its (0, 1, or 2) children, and e reverts to
// Normal.
func (s *Strand) mutateExtender(e NodeID) {
	oldChildren := append([]NodeID{}, s.nodes[e].children...)
	x := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, node{kind: Normal, parent: e, children: oldChildren, alive: true})
	for _, c := range oldChildren {
		s.nodes[c].parent = x
	}
	s.nodes[e].children = []NodeID{x}
	s.nodes[e].kind = Normal
}

// mutateEraser implements the Eraser effect: r is detached from its
// parent and every node in the subtree rooted at r, including r, is
// tombstoned.
func (s *Strand) mutateEraser(r NodeID) {
	p := s.nodes[r].parent
	if p != NilNode {
		s.removeChild(p, r)
	}
	for _, id := range s.dfsFrom(r) {
		s.nodes[id] = node{kind: Normal, parent: NilNode, children: nil, alive: false}
	}
}

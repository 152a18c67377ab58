// Package graph provides the rooted directed graph and the dominance
// analyses used by SSA construction: depth-first spanning trees, the
// Lengauer-Tarjan dominator tree, and dominance frontiers.
package graph

import (
	"errors"
	"fmt"
)

// ErrNoRoot is returned when an analysis requires a rooted graph.
var ErrNoRoot = errors.New("graph: root not set")

// Key identifies a node, typically a basic block address.
type Key uint64

// Node is a vertex of a Directed graph. Successor and predecessor
// lists preserve edge insertion order.
type Node struct {
	Key Key

	succs []*Node
	preds []*Node

	// Pre-order rank; assigned when the node belongs to a SpanningTree
	// or a DominatorTree.
	dfnum int

	// Immediate dominator; assigned when the node belongs to a
	// DominatorTree. Nil for the root.
	idom *Node

	// Memoized dominance frontier.
	df     []Key
	dfDone bool
}

// Succs returns n's successors in edge insertion order.
func (n *Node) Succs() []*Node { return n.succs }

// Preds returns n's predecessors in edge insertion order.
func (n *Node) Preds() []*Node { return n.preds }

// DFNum returns n's pre-order rank within its spanning tree.
func (n *Node) DFNum() int { return n.dfnum }

// Idom returns n's immediate dominator within its dominator tree,
// or nil for the root.
func (n *Node) Idom() *Node { return n.idom }

// String returns the string representation of the node.
func (n *Node) String() string { return fmt.Sprintf("node<%d>", n.Key) }

// Directed is a rooted directed graph over keyed nodes.
type Directed struct {
	nodes map[Key]*Node
	order []*Node
	root  *Node
}

// NewDirected returns an empty graph.
func NewDirected() *Directed {
	return &Directed{nodes: make(map[Key]*Node)}
}

// FromEdges builds a graph over keys with the given edges, rooted at
// root.
func FromEdges(keys []Key, edges [][2]Key, root Key) *Directed {
	g := NewDirected()
	for _, k := range keys {
		g.AddNode(k)
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	g.SetRoot(root)
	return g
}

// AddNode adds a node for key and returns it. Adding a key already in
// the graph returns the existing node unchanged.
func (g *Directed) AddNode(key Key) *Node {
	if n, ok := g.nodes[key]; ok {
		return n
	}
	n := &Node{Key: key}
	g.nodes[key] = n
	g.order = append(g.order, n)
	return n
}

// AddEdge adds the edge src -> dst. Both endpoints must already be in
// the graph. Parallel edges are preserved.
func (g *Directed) AddEdge(src, dst Key) {
	s, ok := g.nodes[src]
	assert(ok, "add edge: unknown source key: %d", src)
	d, ok := g.nodes[dst]
	assert(ok, "add edge: unknown destination key: %d", dst)

	s.succs = append(s.succs, d)
	d.preds = append(d.preds, s)
}

// Node returns the node for key, or nil.
func (g *Directed) Node(key Key) *Node { return g.nodes[key] }

// SetRoot marks the node for key as the graph's root. The node must
// already be in the graph.
func (g *Directed) SetRoot(key Key) {
	n, ok := g.nodes[key]
	assert(ok, "set root: unknown key: %d", key)
	g.root = n
}

// Root returns the graph's root, or nil.
func (g *Directed) Root() *Node { return g.root }

// Nodes returns the graph's nodes in insertion order.
func (g *Directed) Nodes() []*Node { return g.order }

// Len returns the number of nodes in the graph.
func (g *Directed) Len() int { return len(g.order) }

// assert panics if condition is false.
func assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("graph: "+format, args...))
	}
}

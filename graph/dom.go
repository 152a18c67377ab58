package graph

import "golang.org/x/tools/container/intsets"

// DominatorTree encodes the immediate-dominator relation of a rooted
// graph: the same keys as the source graph, with an edge from each
// node's immediate dominator to the node.
type DominatorTree struct {
	Directed

	cfg    *Directed
	byRank []*Node // tree nodes indexed by dfnum
}

// NewDominatorTree computes the dominator tree of g with the
// Lengauer-Tarjan algorithm. g must be rooted; nodes unreachable from
// the root are omitted and have no dominator.
func NewDominatorTree(g *Directed) (*DominatorTree, error) {
	t, err := NewSpanningTree(g)
	if err != nil {
		return nil, err
	}

	nodes := t.Nodes() // DFS pre-order
	n := len(nodes)

	// Construction scratch, indexed by dfnum. Kept out of Node so the
	// public type carries only the finished idom.
	semi := make([]*Node, n)
	ancestor := make([]*Node, n)
	best := make([]*Node, n)
	samedom := make([]*Node, n)
	idom := make([]*Node, n)
	bucket := make([][]*Node, n)

	// ancestorWithLowestSemi returns the linked ancestor of v whose
	// semidominator has the lowest rank, compressing the path as it
	// goes.
	var ancestorWithLowestSemi func(v *Node) *Node
	ancestorWithLowestSemi = func(v *Node) *Node {
		a := ancestor[v.dfnum]
		if ancestor[a.dfnum] != nil {
			b := ancestorWithLowestSemi(a)
			ancestor[v.dfnum] = ancestor[a.dfnum]
			if semi[b.dfnum].dfnum < semi[best[v.dfnum].dfnum].dfnum {
				best[v.dfnum] = b
			}
		}
		return best[v.dfnum]
	}

	// Semidominator pass, in reverse DFS order.
	for i := n - 1; i >= 1; i-- {
		w := nodes[i]
		p := t.Parent(w)
		s := p

		// The semidominator candidate is the lowest-ranked node
		// reaching w: a predecessor directly, or the best semi found
		// through an already-processed subtree.
		for _, pred := range g.Node(w.Key).preds {
			v := t.Node(pred.Key)
			if v == nil { // unreachable predecessor
				continue
			}
			var cand *Node
			if v.dfnum <= w.dfnum {
				cand = v
			} else {
				cand = semi[ancestorWithLowestSemi(v).dfnum]
			}
			if cand.dfnum < s.dfnum {
				s = cand
			}
		}
		semi[w.dfnum] = s
		bucket[s.dfnum] = appendNode(bucket[s.dfnum], w)

		// Link w under its tree parent.
		ancestor[w.dfnum] = p
		best[w.dfnum] = w

		// p's subtree is fully linked; resolve the nodes whose
		// semidominator is p. A node whose lowest-semi ancestor shares
		// its semidominator is immediately dominated by p; the others
		// are deferred to the second pass through samedom.
		for _, v := range bucket[p.dfnum] {
			y := ancestorWithLowestSemi(v)
			if semi[y.dfnum] == semi[v.dfnum] {
				idom[v.dfnum] = p
			} else {
				samedom[v.dfnum] = y
			}
		}
		bucket[p.dfnum] = nil
	}

	// Second pass, in DFS order: deferred nodes share their
	// representative's dominator.
	for i := 1; i < n; i++ {
		if samedom[i] != nil {
			idom[i] = idom[samedom[i].dfnum]
		}
	}

	dt := &DominatorTree{
		Directed: *NewDirected(),
		cfg:      g,
		byRank:   make([]*Node, n),
	}
	for i, w := range nodes {
		dn := dt.AddNode(w.Key)
		dn.dfnum = w.dfnum
		dt.byRank[i] = dn
	}
	for i := 1; i < n; i++ {
		w := nodes[i]
		dt.AddEdge(idom[i].Key, w.Key)
		dt.Node(w.Key).idom = dt.Node(idom[i].Key)
	}
	dt.SetRoot(g.Root().Key)
	return dt, nil
}

// appendNode appends n to a unless already present.
func appendNode(a []*Node, n *Node) []*Node {
	for _, x := range a {
		if x == n {
			return a
		}
	}
	return append(a, n)
}

// Idom returns the immediate dominator of k, or nil for the root and
// for keys not reachable in the source graph.
func (dt *DominatorTree) Idom(k Key) *Node {
	n := dt.Node(k)
	if n == nil {
		return nil
	}
	return n.idom
}

// Dominates reports whether v dominates u. Every node dominates
// itself. Keys not reachable in the source graph dominate nothing and
// are dominated by nothing.
func (dt *DominatorTree) Dominates(v, u Key) bool {
	un := dt.Node(u)
	if dt.Node(v) == nil || un == nil {
		return false
	}
	for n := un; n != nil; n = n.idom {
		if n.Key == v {
			return true
		}
	}
	return false
}

// StrictlyDominates reports whether v dominates u and v != u.
func (dt *DominatorTree) StrictlyDominates(v, u Key) bool {
	return v != u && dt.Dominates(v, u)
}

// Frontier returns the dominance frontier of k: the nodes where k's
// dominance ends. The result is deduplicated, ordered by DFS rank, and
// memoized on first use. Keys not reachable in the source graph have a
// nil frontier.
func (dt *DominatorTree) Frontier(k Key) []Key {
	n := dt.Node(k)
	if n == nil {
		return nil
	}
	return dt.frontier(n)
}

func (dt *DominatorTree) frontier(n *Node) []Key {
	if n.dfDone {
		return n.df
	}

	var set intsets.Sparse

	// DF-local: CFG successors not immediately dominated by n.
	for _, s := range dt.cfg.Node(n.Key).succs {
		y := dt.Node(s.Key)
		if y.idom != n {
			set.Insert(y.dfnum)
		}
	}

	// DF-up: frontier members of dominated children that n itself does
	// not strictly dominate.
	for _, c := range n.succs {
		for _, wk := range dt.frontier(c) {
			w := dt.Node(wk)
			if w.Key == n.Key || !dt.Dominates(n.Key, w.Key) {
				set.Insert(w.dfnum)
			}
		}
	}

	df := make([]Key, 0, set.Len())
	for _, r := range set.AppendTo(nil) {
		df = append(df, dt.byRank[r].Key)
	}
	n.df = df
	n.dfDone = true
	return df
}

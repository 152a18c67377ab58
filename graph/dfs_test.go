package graph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/opforge/decir/graph"
)

// diamond returns the graph A(1) -> B(2), A -> C(3), B -> D(4), C -> D.
func diamond() *graph.Directed {
	return graph.FromEdges(
		[]graph.Key{1, 2, 3, 4},
		[][2]graph.Key{{1, 2}, {1, 3}, {2, 4}, {3, 4}},
		1,
	)
}

func TestSpanningTree(t *testing.T) {
	t.Run("NoRoot", func(t *testing.T) {
		g := graph.NewDirected()
		g.AddNode(1)
		if _, err := graph.NewSpanningTree(g); err != graph.ErrNoRoot {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Diamond", func(t *testing.T) {
		tr, err := graph.NewSpanningTree(diamond())
		if err != nil {
			t.Fatal(err)
		}

		// DFS explores 1, 2, 4 before backtracking to 3; the edge
		// 3 -> 4 is not a tree edge.
		var order []graph.Key
		for _, n := range tr.Nodes() {
			order = append(order, n.Key)
		}
		if diff := cmp.Diff([]graph.Key{1, 2, 4, 3}, order); diff != "" {
			t.Fatalf("unexpected dfs order (-want +got):\n%s", diff)
		}

		for i, n := range tr.Nodes() {
			if n.DFNum() != i {
				t.Fatalf("unexpected dfnum for %v: %d", n, n.DFNum())
			}
		}

		for _, tt := range []struct {
			key    graph.Key
			parent graph.Key
		}{
			{2, 1}, {4, 2}, {3, 1},
		} {
			if p := tr.Parent(tr.Node(tt.key)); p == nil || p.Key != tt.parent {
				t.Fatalf("unexpected parent of %d: %v", tt.key, p)
			}
		}
		if p := tr.Parent(tr.Node(1)); p != nil {
			t.Fatalf("unexpected parent of root: %v", p)
		}
	})

	t.Run("Unreachable", func(t *testing.T) {
		g := graph.FromEdges(
			[]graph.Key{1, 2, 3},
			[][2]graph.Key{{1, 2}, {3, 2}},
			1,
		)
		tr, err := graph.NewSpanningTree(g)
		if err != nil {
			t.Fatal(err)
		}
		if tr.Len() != 2 {
			t.Fatalf("unexpected node count: %d", tr.Len())
		}
		if tr.Node(3) != nil {
			t.Fatalf("expected unreachable node to be omitted")
		}
	})

	t.Run("Cycle", func(t *testing.T) {
		g := graph.FromEdges(
			[]graph.Key{1, 2, 3},
			[][2]graph.Key{{1, 2}, {2, 3}, {3, 1}},
			1,
		)
		tr, err := graph.NewSpanningTree(g)
		if err != nil {
			t.Fatal(err)
		}
		var order []graph.Key
		for _, n := range tr.Nodes() {
			order = append(order, n.Key)
		}
		if diff := cmp.Diff([]graph.Key{1, 2, 3}, order); diff != "" {
			t.Fatalf("unexpected dfs order (-want +got):\n%s", diff)
		}
		// The back edge 3 -> 1 contributes no tree edge.
		if n := len(tr.Node(1).Preds()); n != 0 {
			t.Fatalf("unexpected root predecessors: %d", n)
		}
	})

	t.Run("SuccessorOrder", func(t *testing.T) {
		// Reversing edge insertion reverses the exploration.
		g := graph.FromEdges(
			[]graph.Key{1, 2, 3, 4},
			[][2]graph.Key{{1, 3}, {1, 2}, {2, 4}, {3, 4}},
			1,
		)
		tr, err := graph.NewSpanningTree(g)
		if err != nil {
			t.Fatal(err)
		}
		var order []graph.Key
		for _, n := range tr.Nodes() {
			order = append(order, n.Key)
		}
		if diff := cmp.Diff([]graph.Key{1, 3, 4, 2}, order); diff != "" {
			t.Fatalf("unexpected dfs order (-want +got):\n%s", diff)
		}
	})
}

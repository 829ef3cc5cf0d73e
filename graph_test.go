package aoc

import "testing"

func TestCountPaths(t *testing.T) {
	// a -> b -> d
	// a -> c -> d -> e
	//           d -> f
	var g Graph[string]
	g.AddArc("a", "b", 1)
	g.AddArc("a", "c", 1)
	g.AddArc("b", "d", 1)
	g.AddArc("c", "d", 1)
	g.AddArc("d", "e", 1)
	g.AddArc("d", "f", 1)

	tests := []struct {
		start string
		want  int
	}{
		{"a", 4},
		{"b", 2},
		{"d", 2},
		{"e", 1},
	}
	for _, tt := range tests {
		if got := g.CountPaths(tt.start); got != tt.want {
			t.Errorf("CountPaths(%q) = %d; want %d", tt.start, got, tt.want)
		}
	}
}

func TestCountPathsLongChain(t *testing.T) {
	// A ladder of n rungs doubles the path count at every rung.
	var g Graph[int]
	const n = 40
	for i := range n {
		g.AddArc(2*i, 2*i+2, 1)
		g.AddArc(2*i, 2*i+1, 1)
		g.AddArc(2*i+1, 2*i+2, 1)
	}
	if got, want := g.CountPaths(0), 1<<n; got != want {
		t.Errorf("CountPaths = %d; want %d", got, want)
	}
}

func TestReachableNodes(t *testing.T) {
	var g Graph[int]
	g.AddEdge(1, 2, 1)
	g.AddArc(2, 3, 1)
	g.AddArc(4, 1, 1)
	g.AddNode(5)

	got := g.ReachableNodes(1)
	for _, n := range []int{1, 2, 3} {
		if !got.Contains(n) {
			t.Errorf("node %d not reachable from 1", n)
		}
	}
	if got.Len() != 3 {
		t.Errorf("reached %d nodes; want 3", got.Len())
	}
	if from3 := g.ReachableNodes(3); from3.Len() != 1 {
		t.Errorf("reached %d nodes from 3; want 1", from3.Len())
	}
}

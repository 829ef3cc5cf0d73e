package aoc

import "tailscale.com/util/set"

// Graph is a weighted graph. Edges added with AddEdge go both ways; arcs
// added with AddArc go one way only.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddArc adds a directed edge from a to b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddArc(a, b, dist)
	g.AddArc(b, a, dist)
}

// ReachableNodes returns every node reachable from a, a included.
func (g *Graph[K]) ReachableNodes(a K) set.Set[K] {
	visited := make(set.Set[K])
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited.Contains(v) {
			return true
		}
		visited.Add(v)
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// CountPaths returns the number of distinct paths from start to any node
// without outgoing arcs. The graph must be acyclic.
//
// It walks the graph with an explicit stack so deep graphs don't grow the
// goroutine stack, and memoizes the count of every node it finishes.
func (g *Graph[K]) CountPaths(start K) int {
	type frame struct {
		k        K
		expanded bool
	}
	memo := make(map[K]int)
	var st Stack[frame]
	st.Push(frame{k: start})
	st.While(func(f frame) bool {
		if _, ok := memo[f.k]; ok {
			return true
		}
		out := g.Edges[f.k]
		if len(out) == 0 {
			memo[f.k] = 1
			return true
		}
		if f.expanded {
			n := 0
			for k := range out {
				n += memo[k]
			}
			memo[f.k] = n
			return true
		}
		st.Push(frame{k: f.k, expanded: true})
		for k := range out {
			if _, ok := memo[k]; !ok {
				st.Push(frame{k: k})
			}
		}
		return true
	})
	return memo[start]
}

// Edge is an unordered pair of nodes.
type Edge[T comparable] struct {
	A, B T
}

package Graphs

import (
	"github.com/g-m-twostay/go-collections/Heaps"
	"github.com/g-m-twostay/go-collections/Queues"
)

// BFS visits every vertex reachable from start in breadth-first order.
// Vertices at the same depth come out in no particular order among
// themselves. Empty if start is absent.
// Time: O(V+E)
func (u *Graph[V]) BFS(start V) []V {
	if !u.HasVertex(start) {
		return nil
	}
	seen := map[V]struct{}{start: {}}
	q := Queues.MakeArrayQueue[V](u.VertexCount())
	q.Push(start)
	out := make([]V, 0, u.VertexCount())
	for !q.Empty() {
		v, _ := q.Pop()
		out = append(out, v)
		for w := range u.adj[v] {
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				q.Push(w)
			}
		}
	}
	return out
}

// DFS visits every vertex reachable from start in depth-first preorder.
// Empty if start is absent.
// Time: O(V+E); Space: O(V) recursion.
func (u *Graph[V]) DFS(start V) []V {
	if !u.HasVertex(start) {
		return nil
	}
	seen := make(map[V]struct{}, len(u.adj))
	var out []V
	var walk func(V)
	walk = func(v V) {
		seen[v] = struct{}{}
		out = append(out, v)
		for w := range u.adj[v] {
			if _, ok := seen[w]; !ok {
				walk(w)
			}
		}
	}
	walk(start)
	return out
}

// HasPath reports whether b is reachable from a along edges.
// Time: O(V+E)
func (u *Graph[V]) HasPath(a, b V) bool {
	_, ok := u.ShortestPath(a, b)
	return ok
}

// ShortestPath from a to b by edge count, found with a breadth-first sweep.
// The path includes both endpoints; a path from a vertex to itself is [a].
// Returns false if b is unreachable or either endpoint is absent.
// Time: O(V+E)
func (u *Graph[V]) ShortestPath(a, b V) ([]V, bool) {
	if !u.HasVertex(a) || !u.HasVertex(b) {
		return nil, false
	}
	if a == b {
		return []V{a}, true
	}
	parent := map[V]V{a: a}
	q := Queues.MakeArrayQueue[V](u.VertexCount())
	q.Push(a)
	for !q.Empty() {
		v, _ := q.Pop()
		for w := range u.adj[v] {
			if _, ok := parent[w]; ok {
				continue
			}
			parent[w] = v
			if w == b {
				var path []V
				for cur := b; cur != a; cur = parent[cur] {
					path = append(path, cur)
				}
				path = append(path, a)
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path, true
			}
			q.Push(w)
		}
	}
	return nil, false
}

// Components of an Undirected graph as groups of mutually reachable vertices.
// Order within and among groups is unspecified.
// Time: O(V+E)
func (u *Graph[V]) Components() [][]V {
	seen := make(map[V]struct{}, len(u.adj))
	var out [][]V
	st := Queues.MakeStack[V](16)
	for v := range u.adj {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		st.Push(v)
		var comp []V
		for !st.Empty() {
			c, _ := st.Pop()
			comp = append(comp, c)
			for w := range u.adj[c] {
				if _, ok := seen[w]; !ok {
					seen[w] = struct{}{}
					st.Push(w)
				}
			}
		}
		out = append(out, comp)
	}
	return out
}

// Cyclic reports whether the graph contains a cycle. Directed graphs use a
// back-edge check on the active recursion path; Undirected graphs ignore the
// edge back to the immediate parent but count self-loops and parallel paths.
// Time: O(V+E)
func (u *Graph[V]) Cyclic() bool {
	if u.kind == Directed {
		const (
			white = iota //untouched
			gray         //on the active path
			black        //fully explored
		)
		color := make(map[V]int, len(u.adj))
		var walk func(V) bool
		walk = func(v V) bool {
			color[v] = gray
			for w := range u.adj[v] {
				switch color[w] {
				case gray:
					return true
				case white:
					if walk(w) {
						return true
					}
				}
			}
			color[v] = black
			return false
		}
		for v := range u.adj {
			if color[v] == white && walk(v) {
				return true
			}
		}
		return false
	}
	seen := make(map[V]struct{}, len(u.adj))
	var walk func(v, from V) bool
	walk = func(v, from V) bool {
		seen[v] = struct{}{}
		for w := range u.adj[v] {
			if w == v {
				return true
			}
			if _, ok := seen[w]; !ok {
				if walk(w, v) {
					return true
				}
			} else if w != from {
				return true
			}
		}
		return false
	}
	for v := range u.adj {
		if _, ok := seen[v]; !ok && walk(v, v) {
			return true
		}
	}
	return false
}

// Dijkstra computes the cheapest distance from src to every reachable vertex.
// Weights must be non-negative; a negative weight gives meaningless results.
// Absent src gives an empty map.
// Time: O((V+E) log V)
func (u *WeightedGraph[V, W]) Dijkstra(src V) map[V]W {
	dist := make(map[V]W)
	if !u.HasVertex(src) {
		return dist
	}
	dist[src] = 0
	pq := Heaps.MinPQ[V, W]()
	pq.Push(src, 0)
	for !pq.Empty() {
		d, _ := pq.PeekPriority()
		v, _ := pq.Pop()
		if d > dist[v] { //stale entry superseded by a cheaper relaxation
			continue
		}
		for w, cost := range u.adj[v] {
			nd := d + cost
			if old, ok := dist[w]; !ok || nd < old {
				dist[w] = nd
				pq.Push(w, nd)
			}
		}
	}
	return dist
}

// ShortestPath from a to b by total weight, with the weight of that path.
// The path includes both endpoints. Returns false if b is unreachable.
// Time: O((V+E) log V)
func (u *WeightedGraph[V, W]) ShortestPath(a, b V) ([]V, W, bool) {
	if !u.HasVertex(a) || !u.HasVertex(b) {
		return nil, 0, false
	}
	dist := map[V]W{a: 0}
	parent := map[V]V{a: a}
	pq := Heaps.MinPQ[V, W]()
	pq.Push(a, 0)
	for !pq.Empty() {
		d, _ := pq.PeekPriority()
		v, _ := pq.Pop()
		if d > dist[v] {
			continue
		}
		if v == b {
			break
		}
		for w, cost := range u.adj[v] {
			nd := d + cost
			if old, ok := dist[w]; !ok || nd < old {
				dist[w], parent[w] = nd, v
				pq.Push(w, nd)
			}
		}
	}
	d, ok := dist[b]
	if !ok {
		return nil, 0, false
	}
	var path []V
	for cur := b; cur != a; cur = parent[cur] {
		path = append(path, cur)
	}
	path = append(path, a)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, d, true
}

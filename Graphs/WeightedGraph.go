package Graphs

import (
	"golang.org/x/exp/constraints"
)

// WeightedGraph attaches a weight to every edge. AddEdge overwrites the
// weight of an existing edge rather than rejecting it.
type WeightedGraph[V comparable, W constraints.Integer | constraints.Float] struct {
	kind  Kind
	adj   map[V]map[V]W
	edges uint
}

func NewWeighted[V comparable, W constraints.Integer | constraints.Float](kind Kind) *WeightedGraph[V, W] {
	return &WeightedGraph[V, W]{kind: kind, adj: make(map[V]map[V]W)}
}

// AddVertex inserts an isolated vertex; false if it already exists.
func (u *WeightedGraph[V, W]) AddVertex(v V) bool {
	if _, in := u.adj[v]; in {
		return false
	}
	u.adj[v] = make(map[V]W)
	return true
}

// AddEdge from a to b with weight w, creating either endpoint as needed.
// Returns false if the edge existed, in which case its weight is replaced.
// Time: O(1)
func (u *WeightedGraph[V, W]) AddEdge(a, b V, w W) bool {
	u.AddVertex(a)
	u.AddVertex(b)
	_, in := u.adj[a][b]
	u.adj[a][b] = w
	if u.kind == Undirected && a != b {
		u.adj[b][a] = w
	}
	if !in {
		u.edges++
	}
	return !in
}

// RemoveEdge from a to b; false if absent.
func (u *WeightedGraph[V, W]) RemoveEdge(a, b V) bool {
	if _, in := u.adj[a][b]; !in {
		return false
	}
	delete(u.adj[a], b)
	if u.kind == Undirected {
		delete(u.adj[b], a)
	}
	u.edges--
	return true
}

// RemoveVertex drops v and every edge touching it; false if absent.
func (u *WeightedGraph[V, W]) RemoveVertex(v V) bool {
	out, in := u.adj[v]
	if !in {
		return false
	}
	u.edges -= uint(len(out))
	delete(u.adj, v)
	if u.kind == Undirected {
		for w := range out {
			delete(u.adj[w], v)
		}
	} else {
		for _, nbrs := range u.adj {
			if _, ok := nbrs[v]; ok {
				delete(nbrs, v)
				u.edges--
			}
		}
	}
	return true
}

// HasVertex reports whether v is present.
func (u *WeightedGraph[V, W]) HasVertex(v V) bool {
	_, in := u.adj[v]
	return in
}

// HasEdge reports whether the edge a->b is present.
func (u *WeightedGraph[V, W]) HasEdge(a, b V) bool {
	_, in := u.adj[a][b]
	return in
}

// EdgeWeight of a->b. Returns false if the edge is absent.
func (u *WeightedGraph[V, W]) EdgeWeight(a, b V) (W, bool) {
	w, in := u.adj[a][b]
	return w, in
}

// Neighbors of v, in no particular order; nil if v is absent.
func (u *WeightedGraph[V, W]) Neighbors(v V) []V {
	nbrs, in := u.adj[v]
	if !in {
		return nil
	}
	out := make([]V, 0, len(nbrs))
	for w := range nbrs {
		out = append(out, w)
	}
	return out
}

// Vertices in no particular order.
func (u *WeightedGraph[V, W]) Vertices() []V {
	out := make([]V, 0, len(u.adj))
	for v := range u.adj {
		out = append(out, v)
	}
	return out
}

// Edges as [from, to] pairs, in no particular order. An Undirected edge
// appears once, oriented arbitrarily.
func (u *WeightedGraph[V, W]) Edges() [][2]V {
	out := make([][2]V, 0, u.edges)
	seen := make(map[[2]V]struct{}, u.edges)
	for a, nbrs := range u.adj {
		for b := range nbrs {
			if u.kind == Undirected {
				if _, dup := seen[[2]V{b, a}]; dup {
					continue
				}
				seen[[2]V{a, b}] = struct{}{}
			}
			out = append(out, [2]V{a, b})
		}
	}
	return out
}

// VertexCount of the graph.
func (u *WeightedGraph[V, W]) VertexCount() uint {
	return uint(len(u.adj))
}

// EdgeCount of the graph; an undirected edge counts once.
func (u *WeightedGraph[V, W]) EdgeCount() uint {
	return u.edges
}

// Clear discards every vertex and edge, keeping the Kind.
func (u *WeightedGraph[V, W]) Clear() {
	u.adj, u.edges = make(map[V]map[V]W), 0
}

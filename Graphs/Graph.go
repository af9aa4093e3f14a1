package Graphs

// Kind selects whether edges are one-way or mirrored.
type Kind byte

const (
	Directed Kind = iota
	Undirected
)

// Graph is an unweighted adjacency-list graph over comparable vertices. For an
// Undirected graph every AddEdge stores both directions but counts one edge.
type Graph[V comparable] struct {
	kind  Kind
	adj   map[V]map[V]struct{}
	edges uint
}

func New[V comparable](kind Kind) *Graph[V] {
	return &Graph[V]{kind: kind, adj: make(map[V]map[V]struct{})}
}

// AddVertex inserts an isolated vertex; false if it already exists.
// Time: O(1)
func (u *Graph[V]) AddVertex(v V) bool {
	if _, in := u.adj[v]; in {
		return false
	}
	u.adj[v] = make(map[V]struct{})
	return true
}

// AddEdge from a to b, creating either endpoint as needed; false if the edge
// already exists. Self-loops are stored once even when Undirected.
// Time: O(1)
func (u *Graph[V]) AddEdge(a, b V) bool {
	u.AddVertex(a)
	u.AddVertex(b)
	if _, in := u.adj[a][b]; in {
		return false
	}
	u.adj[a][b] = struct{}{}
	if u.kind == Undirected && a != b {
		u.adj[b][a] = struct{}{}
	}
	u.edges++
	return true
}

// RemoveEdge from a to b; false if absent.
// Time: O(1)
func (u *Graph[V]) RemoveEdge(a, b V) bool {
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
// Time: O(V) for Directed, O(deg) for Undirected.
func (u *Graph[V]) RemoveVertex(v V) bool {
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
func (u *Graph[V]) HasVertex(v V) bool {
	_, in := u.adj[v]
	return in
}

// HasEdge reports whether the edge a->b is present.
func (u *Graph[V]) HasEdge(a, b V) bool {
	_, in := u.adj[a][b]
	return in
}

// Neighbors of v, in no particular order; nil if v is absent.
func (u *Graph[V]) Neighbors(v V) []V {
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
func (u *Graph[V]) Vertices() []V {
	out := make([]V, 0, len(u.adj))
	for v := range u.adj {
		out = append(out, v)
	}
	return out
}

// Edges as [from, to] pairs, in no particular order. An Undirected edge
// appears once, oriented arbitrarily.
func (u *Graph[V]) Edges() [][2]V {
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

// Degree of v: out-degree for Directed graphs. -1 if v is absent.
func (u *Graph[V]) Degree(v V) int {
	nbrs, in := u.adj[v]
	if !in {
		return -1
	}
	return len(nbrs)
}

// InDegree of v: edges arriving at v. Equal to Degree when Undirected.
// Time: O(V) for Directed.
func (u *Graph[V]) InDegree(v V) int {
	if !u.HasVertex(v) {
		return -1
	}
	if u.kind == Undirected {
		return len(u.adj[v])
	}
	n := 0
	for _, nbrs := range u.adj {
		if _, ok := nbrs[v]; ok {
			n++
		}
	}
	return n
}

// VertexCount of the graph.
func (u *Graph[V]) VertexCount() uint {
	return uint(len(u.adj))
}

// EdgeCount of the graph; an undirected edge counts once.
func (u *Graph[V]) EdgeCount() uint {
	return u.edges
}

// Clear discards every vertex and edge, keeping the Kind.
func (u *Graph[V]) Clear() {
	u.adj, u.edges = make(map[V]map[V]struct{}), 0
}

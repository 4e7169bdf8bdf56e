package graph

import (
	"errors"
	"sort"
)

// DefaultWeightAttribute is the edge attribute used by AddWeightedEdge and
// by every consumer that does not override the attribute name.
const DefaultWeightAttribute = "weight"

// Sentinel errors for graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrUnknownVertex indicates an operation referenced a vertex that does
	// not exist in the graph.
	ErrUnknownVertex = errors.New("graph: unknown vertex id")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// Edge is a connection between two vertices carrying named float64
// attributes. For undirected graphs From/To reflect insertion order and
// carry no orientation meaning.
type Edge struct {
	From, To string

	// Attrs holds named numeric edge attributes (e.g. "weight").
	// Never nil on an edge returned by a Graph.
	Attrs map[string]float64
}

// Weight returns the value of the named attribute and whether it is set.
func (e *Edge) Weight(attr string) (float64, bool) {
	w, ok := e.Attrs[attr]
	return w, ok
}

// SetWeight sets the named attribute on the edge.
func (e *Edge) SetWeight(attr string, w float64) {
	e.Attrs[attr] = w
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected makes every edge of the new graph directed.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// Graph is a simple weighted graph with string vertex IDs.
//
// The zero value is not usable; construct with New.
type Graph struct {
	directed bool

	vertices map[string]struct{}

	// adjacency[from][to] points at the single edge between from and to.
	// Undirected graphs store the same *Edge under both orientations;
	// self-loops are stored once.
	adjacency map[string]map[string]*Edge

	// predecessors[to][from] mirrors adjacency for directed graphs so
	// that in-degree queries stay O(deg). Nil for undirected graphs.
	predecessors map[string]map[string]*Edge
}

// New creates an empty Graph. Undirected unless WithDirected is given.
func New(opts ...Option) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.predecessors = make(map[string]map[string]*Edge)
	}

	return g
}

// IsDirected reports whether edges carry orientation.
func (g *Graph) IsDirected() bool { return g.directed }

// AddVertex inserts a vertex; adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) {
	g.vertices[id] = struct{}{}
}

// HasVertex reports whether the vertex exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// AddEdge inserts (or replaces) the edge between from and to, creating
// missing endpoints. attrs may be nil for an attribute-less edge; the
// map is copied, not retained. Returns the stored edge.
func (g *Graph) AddEdge(from, to string, attrs map[string]float64) *Edge {
	g.AddVertex(from)
	g.AddVertex(to)

	e := &Edge{From: from, To: to, Attrs: make(map[string]float64, len(attrs))}
	for k, v := range attrs {
		e.Attrs[k] = v
	}

	g.link(from, to, e)
	if g.directed {
		row, ok := g.predecessors[to]
		if !ok {
			row = make(map[string]*Edge)
			g.predecessors[to] = row
		}
		row[from] = e
	} else if from != to {
		g.link(to, from, e)
	}

	return e
}

// AddWeightedEdge inserts an edge carrying DefaultWeightAttribute=w.
func (g *Graph) AddWeightedEdge(from, to string, w float64) *Edge {
	return g.AddEdge(from, to, map[string]float64{DefaultWeightAttribute: w})
}

func (g *Graph) link(from, to string, e *Edge) {
	row, ok := g.adjacency[from]
	if !ok {
		row = make(map[string]*Edge)
		g.adjacency[from] = row
	}
	row[to] = e
}

// Edge returns the edge from→to (either orientation for undirected
// graphs) and whether it exists.
func (g *Graph) Edge(from, to string) (*Edge, bool) {
	e, ok := g.adjacency[from][to]
	return e, ok
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.adjacency[from][to]
	return ok
}

// RemoveEdge deletes the edge from→to. Returns ErrEdgeNotFound if absent.
func (g *Graph) RemoveEdge(from, to string) error {
	if _, ok := g.adjacency[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[from], to)
	if g.directed {
		delete(g.predecessors[to], from)
	} else if from != to {
		delete(g.adjacency[to], from)
	}

	return nil
}

// EdgeCount returns |E|; undirected edges are counted once.
func (g *Graph) EdgeCount() int {
	return len(g.Edges())
}

// Edges returns every edge exactly once, sorted by (From, To).
// Undirected edges appear under their insertion orientation.
func (g *Graph) Edges() []*Edge {
	seen := make(map[*Edge]struct{})
	var edges []*Edge
	for _, row := range g.adjacency {
		for _, e := range row {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// Neighbors returns the IDs adjacent to v (successors for directed
// graphs) in ascending order.
func (g *Graph) Neighbors(v string) []string {
	row := g.adjacency[v]
	ids := make([]string, 0, len(row))
	for to := range row {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids
}

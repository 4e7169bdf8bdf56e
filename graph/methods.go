package graph

// Weighted degree queries. An edge whose named attribute is missing
// contributes 1, so unweighted edges behave as unit-weight edges.

// Degree returns the weighted degree of v: the sum of the named
// attribute over all incident edges. Self-loops contribute twice for
// undirected graphs, once each to in- and out-degree for directed ones.
// For directed graphs Degree is InDegree+OutDegree.
func (g *Graph) Degree(v, attr string) (float64, error) {
	if !g.HasVertex(v) {
		return 0, ErrUnknownVertex
	}
	if g.directed {
		in, _ := g.InDegree(v, attr)
		out, _ := g.OutDegree(v, attr)
		return in + out, nil
	}

	var total float64
	for to, e := range g.adjacency[v] {
		w := attrOrUnit(e, attr)
		total += w
		if to == v {
			total += w // self-loop counts twice
		}
	}

	return total, nil
}

// OutDegree returns the sum of the named attribute over edges leaving v.
// For undirected graphs it equals Degree.
func (g *Graph) OutDegree(v, attr string) (float64, error) {
	if !g.HasVertex(v) {
		return 0, ErrUnknownVertex
	}
	if !g.directed {
		return g.Degree(v, attr)
	}

	var total float64
	for _, e := range g.adjacency[v] {
		total += attrOrUnit(e, attr)
	}

	return total, nil
}

// InDegree returns the sum of the named attribute over edges entering v.
// For undirected graphs it equals Degree.
func (g *Graph) InDegree(v, attr string) (float64, error) {
	if !g.HasVertex(v) {
		return 0, ErrUnknownVertex
	}
	if !g.directed {
		return g.Degree(v, attr)
	}

	var total float64
	for _, e := range g.predecessors[v] {
		total += attrOrUnit(e, attr)
	}

	return total, nil
}

func attrOrUnit(e *Edge, attr string) float64 {
	if w, ok := e.Attrs[attr]; ok {
		return w
	}
	return 1
}

// Clone returns a fully independent deep copy: vertices, edges and all
// edge attributes. Complexity O(V + E).
func (g *Graph) Clone() *Graph {
	clone := New()
	clone.directed = g.directed
	if g.directed {
		clone.predecessors = make(map[string]map[string]*Edge)
	}
	for id := range g.vertices {
		clone.AddVertex(id)
	}
	for _, e := range g.Edges() {
		clone.AddEdge(e.From, e.To, e.Attrs)
	}

	return clone
}

// Subgraph returns the induced subgraph over the given vertex IDs as a
// deep copy. IDs absent from g are ignored.
func (g *Graph) Subgraph(ids []string) *Graph {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if g.HasVertex(id) {
			keep[id] = struct{}{}
		}
	}

	sub := New()
	sub.directed = g.directed
	if g.directed {
		sub.predecessors = make(map[string]map[string]*Edge)
	}
	for id := range keep {
		sub.AddVertex(id)
	}
	for _, e := range g.Edges() {
		if _, okFrom := keep[e.From]; !okFrom {
			continue
		}
		if _, okTo := keep[e.To]; !okTo {
			continue
		}
		sub.AddEdge(e.From, e.To, e.Attrs)
	}

	return sub
}

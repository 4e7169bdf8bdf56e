package embed

import (
	"encoding/json"

	"gonum.org/v1/gonum/mat"
)

// Container is the immutable result of an embedding call: an n×d
// embedding matrix and the n vertex labels, positionally correlated so
// that row i of the matrix is the vector for label i.
//
// A Container holds no reference to the source graph and serializes to
// JSON losslessly (float64 values survive the round trip exactly).
type Container struct {
	embedding *mat.Dense
	labels    []string
}

// NewContainer wraps an embedding matrix and its vertex labels. Both are
// copied. Returns ErrLabelMismatch when row and label counts differ.
func NewContainer(embedding *mat.Dense, labels []string) (*Container, error) {
	if embedding == nil {
		return nil, ErrLabelMismatch
	}
	r, _ := embedding.Dims()
	if r != len(labels) {
		return nil, ErrLabelMismatch
	}

	c := &Container{
		embedding: mat.DenseCopyOf(embedding),
		labels:    make([]string, len(labels)),
	}
	copy(c.labels, labels)

	return c, nil
}

// Len returns the number of embedded vertices.
func (c *Container) Len() int { return len(c.labels) }

// Dimensions returns the embedding width d.
func (c *Container) Dimensions() int {
	_, d := c.embedding.Dims()
	return d
}

// Labels returns a copy of the vertex labels in row order.
func (c *Container) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Embedding returns a copy of the n×d embedding matrix.
func (c *Container) Embedding() *mat.Dense {
	return mat.DenseCopyOf(c.embedding)
}

// Vector returns a copy of row i of the embedding.
func (c *Container) Vector(i int) []float64 {
	return mat.Row(nil, i, c.embedding)
}

// ToMap reconstructs the label→vector mapping.
func (c *Container) ToMap() map[string][]float64 {
	out := make(map[string][]float64, len(c.labels))
	for i, label := range c.labels {
		out[label] = mat.Row(nil, i, c.embedding)
	}
	return out
}

// containerJSON is the wire form of a Container.
type containerJSON struct {
	VertexLabels []string    `json:"vertex_labels"`
	Embedding    [][]float64 `json:"embedding"`
}

// MarshalJSON implements json.Marshaler.
func (c *Container) MarshalJSON() ([]byte, error) {
	rows := make([][]float64, len(c.labels))
	for i := range c.labels {
		rows[i] = mat.Row(nil, i, c.embedding)
	}

	return json.Marshal(containerJSON{VertexLabels: c.Labels(), Embedding: rows})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Container) UnmarshalJSON(data []byte) error {
	var wire containerJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if len(wire.Embedding) != len(wire.VertexLabels) {
		return ErrLabelMismatch
	}

	var d int
	if len(wire.Embedding) > 0 {
		d = len(wire.Embedding[0])
	}
	embedding := mat.NewDense(max(len(wire.Embedding), 1), max(d, 1), nil)
	for i, row := range wire.Embedding {
		if len(row) != d {
			return ErrDimensionMismatch
		}
		embedding.SetRow(i, row)
	}

	c.labels = wire.VertexLabels
	c.embedding = embedding

	return nil
}

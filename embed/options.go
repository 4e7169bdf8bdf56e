package embed

import (
	"github.com/charmbracelet/log"

	"github.com/vertexlab/spectral/graph"
)

// Defaults applied by gatherOptions when no option overrides them.
const (
	// DefaultMaxDimensions caps the embedding width before any
	// directed-graph doubling.
	DefaultMaxDimensions = 100

	// DefaultElbowCut selects the first elbow of the scree plot.
	DefaultElbowCut = 1

	// DefaultNumIterations is the SVD power-iteration count.
	DefaultNumIterations = 5

	// DefaultNumOversamples is the extra random vectors sampled beyond
	// the requested components to condition the range finder.
	DefaultNumOversamples = 10
)

// Normalizer names the per-iteration normalization applied during SVD
// power iterations.
type Normalizer string

// Recognized power-iteration normalizers.
const (
	// NormalizerQR re-orthonormalizes with a QR factorization each step:
	// slowest, most accurate. The default.
	NormalizerQR Normalizer = "QR"

	// NormalizerLU normalizes with a pivoted LU factorization:
	// numerically stable, slightly less accurate than QR.
	NormalizerLU Normalizer = "LU"

	// NormalizerNone applies no normalization: fastest, unstable for
	// large iteration counts.
	NormalizerNone Normalizer = "none"

	// NormalizerAuto applies no normalization when NumIterations ≤ 2 and
	// LU otherwise.
	NormalizerAuto Normalizer = "auto"
)

// Method selects which matrix the omnibus embedder decomposes.
type Method int

// Recognized embedding methods.
const (
	// MethodLaplacian embeds the degree-normalized Laplacian matrix.
	// The default.
	MethodLaplacian Method = iota

	// MethodAdjacency embeds the augmented adjacency matrix directly.
	MethodAdjacency
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodLaplacian:
		return "laplacian"
	case MethodAdjacency:
		return "adjacency"
	default:
		return "unknown"
	}
}

// Option configures an embedding call. Safe to apply repeatedly;
// last-writer-wins.
type Option func(*options)

type options struct {
	maxDimensions  int
	elbowCut       int // 0 disables elbow truncation
	weightAttr     string
	seed           uint64
	hasSeed        bool
	numIterations  int
	normalizer     Normalizer
	numOversamples int
	method         Method
	logger         *log.Logger
}

// WithMaxDimensions caps the embedding width before directed doubling.
// Panics if n < 1 (programmer error).
func WithMaxDimensions(n int) Option {
	if n < 1 {
		panic("embed: WithMaxDimensions: n must be >= 1")
	}
	return func(o *options) { o.maxDimensions = n }
}

// WithElbowCut selects which elbow of the scree plot bounds the
// embedding dimension. Panics if cut < 1; use WithoutElbowCut to
// disable truncation.
func WithElbowCut(cut int) Option {
	if cut < 1 {
		panic("embed: WithElbowCut: cut must be >= 1")
	}
	return func(o *options) { o.elbowCut = cut }
}

// WithoutElbowCut disables elbow truncation; the embedding uses the full
// MaxDimensions width (bounded by the matrix size).
func WithoutElbowCut() Option {
	return func(o *options) { o.elbowCut = 0 }
}

// WithWeightAttribute names the edge attribute holding weights.
func WithWeightAttribute(attr string) Option {
	return func(o *options) { o.weightAttr = attr }
}

// WithSVDSeed fixes the randomized SVD's seed, making results
// reproducible between executions over the same graph.
func WithSVDSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithNumIterations sets the SVD power-iteration count. Panics if
// n < 0.
func WithNumIterations(n int) Option {
	if n < 0 {
		panic("embed: WithNumIterations: n must be >= 0")
	}
	return func(o *options) { o.numIterations = n }
}

// WithPowerIterationNormalizer selects the power-iteration
// normalization. Unrecognized values surface as ErrUnknownNormalizer at
// call time.
func WithPowerIterationNormalizer(n Normalizer) Option {
	return func(o *options) { o.normalizer = n }
}

// WithNumOversamples sets the extra random vectors used by the range
// finder. Panics if n < 0.
func WithNumOversamples(n int) Option {
	if n < 0 {
		panic("embed: WithNumOversamples: n must be >= 0")
	}
	return func(o *options) { o.numOversamples = n }
}

// WithMethod selects the matrix decomposed by OmnibusEmbedding.
// Single-graph embedders ignore it. Unrecognized values surface as
// ErrUnknownMethod at call time.
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithLogger routes pipeline debug logging to the given logger. The
// package default logs nothing unless the default charmbracelet logger
// is set to debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions resolves option setters against documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		maxDimensions:  DefaultMaxDimensions,
		elbowCut:       DefaultElbowCut,
		weightAttr:     graph.DefaultWeightAttribute,
		numIterations:  DefaultNumIterations,
		normalizer:     NormalizerQR,
		numOversamples: DefaultNumOversamples,
		method:         MethodLaplacian,
		logger:         log.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// validate rejects enum values no branch recognizes.
func (o *options) validate() error {
	switch o.normalizer {
	case NormalizerQR, NormalizerLU, NormalizerNone, NormalizerAuto:
	default:
		return ErrUnknownNormalizer
	}
	switch o.method {
	case MethodLaplacian, MethodAdjacency:
	default:
		return ErrUnknownMethod
	}

	return nil
}

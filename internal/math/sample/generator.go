package sample

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/drakos74/clustering/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// sequence distinguishes generators seeded within the same clock tick.
var sequence uint64

// Option configures a Generator.
type Option func(g *Generator)

// WithSeed makes the generator deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.src = rand.NewSource(seed)
	}
}

// WithSource sets the random source of the generator.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// Generator draws gaussian samples from its own random source.
// It is safe for concurrent use, calls are serialised on the source.
type Generator struct {
	mutex *sync.Mutex
	src   rand.Source
}

// NewGenerator creates a new generator.
// Without any options the source is seeded from the current time.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		mutex: new(sync.Mutex),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		seed := uint64(time.Now().UnixNano()) + atomic.AddUint64(&sequence, 1)
		g.src = rand.NewSource(seed)
	}
	return g
}

// GenerateSixClusters generates a new dataset for the six clusters layout
// with a freshly seeded generator.
func GenerateSixClusters() *Dataset {
	return NewGenerator().SixClusters()
}

// SixClusters generates a dataset for the six clusters layout.
func (g *Generator) SixClusters() *Dataset {
	ds, err := g.Generate(SixClusters())
	if err != nil {
		panic(fmt.Sprintf("could not generate six clusters: %s", err.Error()))
	}
	return ds
}

// Generate draws the points for each cluster of the layout
// and stacks them in layout order.
func (g *Generator) Generate(layout Layout) (*Dataset, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	dim := layout.Dim()
	offsets := layout.Offsets()
	data := mat.NewDense(layout.Size(), dim, nil)
	for i, c := range layout.Clusters {
		normal, ok := distmv.NewNormal(c.Mean, c.Cov, g.src)
		if !ok {
			log.Error().
				Str("layout", layout.Name).
				Int("cluster", i).
				Floats64("mean", c.Mean).
				Msg("could not factorize covariance")
			return nil, fmt.Errorf("cluster %d: %w", i, ErrNotPositiveDefinite)
		}
		for j := offsets[i]; j < offsets[i+1]; j++ {
			normal.Rand(data.RawRowView(j))
		}
	}

	ds := &Dataset{
		id:      uuid.New().String(),
		layout:  layout.Name,
		data:    data,
		offsets: offsets,
	}

	for i, c := range layout.Clusters {
		metrics.Observer.Samples(layout.Name, i, c.Count)
	}
	metrics.Observer.Dataset(layout.Name)

	log.Debug().
		Str("id", ds.id).
		Str("layout", layout.Name).
		Int("points", ds.Len()).
		Int("dim", dim).
		Ints("offsets", offsets).
		Msg("generated dataset")

	return ds, nil
}

// Package sample generates gaussian point clouds used as input for clustering algorithms.
package sample

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SixClustersName is the layout name of the built-in six cluster layout.
const SixClustersName = "six-clusters"

var (
	// ErrInvalidLayout is returned when a layout cannot be sampled.
	ErrInvalidLayout = errors.New("invalid layout")
	// ErrNotPositiveDefinite is returned when a cluster covariance cannot be factorized.
	ErrNotPositiveDefinite = errors.New("covariance is not positive definite")
)

// Cluster defines a gaussian cluster of points.
type Cluster struct {
	// Mean is the centre of the cluster.
	Mean []float64 `json:"mean"`
	// Cov is the covariance matrix of the cluster, it must match the dimension of the mean.
	Cov *mat.SymDense `json:"-"`
	// Count is the number of points drawn for the cluster.
	Count int `json:"count"`
}

// NewCluster creates a new cluster spec.
func NewCluster(count int, cov *mat.SymDense, mean ...float64) Cluster {
	return Cluster{
		Mean:  mean,
		Cov:   cov,
		Count: count,
	}
}

// Identity returns the identity covariance of the given dimension.
func Identity(dim int) *mat.SymDense {
	id := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		id.SetSym(i, i, 1)
	}
	return id
}

// Layout is an ordered collection of clusters.
// Points are generated in blocks following the order of the clusters.
type Layout struct {
	Name     string    `json:"name"`
	Clusters []Cluster `json:"clusters"`
}

// SixClusters returns the six unit-variance clusters layout.
//
//	mean     count
//	(10,10)  300
//	(5,0)    200
//	(5,10)   200
//	(10,0)   100
//	(15,0)   200
//	(15,10)  200
func SixClusters() Layout {
	return Layout{
		Name: SixClustersName,
		Clusters: []Cluster{
			NewCluster(300, Identity(2), 10, 10),
			NewCluster(200, Identity(2), 5, 0),
			NewCluster(200, Identity(2), 5, 10),
			NewCluster(100, Identity(2), 10, 0),
			NewCluster(200, Identity(2), 15, 0),
			NewCluster(200, Identity(2), 15, 10),
		},
	}
}

// Validate checks that all clusters are consistent with each other.
func (l Layout) Validate() error {
	if len(l.Clusters) == 0 {
		return fmt.Errorf("%w: no clusters", ErrInvalidLayout)
	}
	dim := len(l.Clusters[0].Mean)
	if dim == 0 {
		return fmt.Errorf("%w: cluster 0 has an empty mean", ErrInvalidLayout)
	}
	for i, c := range l.Clusters {
		if len(c.Mean) != dim {
			return fmt.Errorf("%w: cluster %d has dimension %d instead of %d", ErrInvalidLayout, i, len(c.Mean), dim)
		}
		if c.Cov == nil {
			return fmt.Errorf("%w: cluster %d has no covariance", ErrInvalidLayout, i)
		}
		if r, _ := c.Cov.Dims(); r != dim {
			return fmt.Errorf("%w: cluster %d has covariance of size %d for dimension %d", ErrInvalidLayout, i, r, dim)
		}
		if c.Count <= 0 {
			return fmt.Errorf("%w: cluster %d has count %d", ErrInvalidLayout, i, c.Count)
		}
	}
	return nil
}

// Dim returns the dimension of the points.
func (l Layout) Dim() int {
	if len(l.Clusters) == 0 {
		return 0
	}
	return len(l.Clusters[0].Mean)
}

// Size returns the total number of points for the layout.
func (l Layout) Size() int {
	n := 0
	for _, c := range l.Clusters {
		n += c.Count
	}
	return n
}

// Offsets returns the block boundaries of the clusters,
// starting at 0 and ending at Size.
func (l Layout) Offsets() []int {
	offsets := make([]int, len(l.Clusters)+1)
	for i, c := range l.Clusters {
		offsets[i+1] = offsets[i] + c.Count
	}
	return offsets
}

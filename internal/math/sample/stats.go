package sample

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// BlockStats holds the empirical statistics of a cluster block.
type BlockStats struct {
	Index  int
	Offset int
	Count  int
	Mean   []float64
	// Cov is the sample covariance of the block.
	Cov *mat.SymDense
}

// Describe calculates the empirical mean and covariance of each block of the dataset.
func Describe(ds *Dataset) []BlockStats {
	stats := make([]BlockStats, ds.Blocks())
	for k := range stats {
		block := ds.Block(k)
		n, dim := block.Dims()
		cols := make([][]float64, dim)
		mean := make([]float64, dim)
		for j := 0; j < dim; j++ {
			cols[j] = mat.Col(nil, j, block)
			mean[j] = stat.Mean(cols[j], nil)
		}
		cov := mat.NewSymDense(dim, nil)
		if n > 1 {
			for i := 0; i < dim; i++ {
				for j := i; j < dim; j++ {
					cov.SetSym(i, j, stat.Covariance(cols[i], cols[j], nil))
				}
			}
		}
		stats[k] = BlockStats{
			Index:  k,
			Offset: ds.offsets[k],
			Count:  n,
			Mean:   mean,
			Cov:    cov,
		}
	}
	return stats
}

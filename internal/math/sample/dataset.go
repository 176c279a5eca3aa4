package sample

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dataset is a generated set of points, grouped in contiguous cluster blocks.
type Dataset struct {
	id      string
	layout  string
	data    *mat.Dense
	offsets []int
}

// ID returns the unique id of the dataset.
func (ds *Dataset) ID() string {
	return ds.id
}

// Layout returns the name of the layout the dataset was generated from.
func (ds *Dataset) Layout() string {
	return ds.layout
}

// Len returns the number of points.
func (ds *Dataset) Len() int {
	r, _ := ds.data.Dims()
	return r
}

// Dim returns the dimension of the points.
func (ds *Dataset) Dim() int {
	_, c := ds.data.Dims()
	return c
}

// Point returns a copy of the i-th point.
func (ds *Dataset) Point(i int) []float64 {
	return mat.Row(nil, i, ds.data)
}

// Points returns a copy of all points as rows.
func (ds *Dataset) Points() [][]float64 {
	pp := make([][]float64, ds.Len())
	for i := range pp {
		pp[i] = ds.Point(i)
	}
	return pp
}

// Matrix returns the points as a read-only n x dim matrix.
func (ds *Dataset) Matrix() mat.Matrix {
	return ds.data
}

// Blocks returns the number of cluster blocks.
func (ds *Dataset) Blocks() int {
	return len(ds.offsets) - 1
}

// Offsets returns the block boundaries of the dataset.
func (ds *Dataset) Offsets() []int {
	offsets := make([]int, len(ds.offsets))
	copy(offsets, ds.offsets)
	return offsets
}

// Block returns a view on the points of the k-th cluster block.
func (ds *Dataset) Block(k int) mat.Matrix {
	if k < 0 || k >= ds.Blocks() {
		panic(fmt.Sprintf("block %d out of range [0,%d)", k, ds.Blocks()))
	}
	return ds.data.Slice(ds.offsets[k], ds.offsets[k+1], 0, ds.Dim())
}

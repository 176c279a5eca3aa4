package sample_test

import (
	"fmt"

	"github.com/drakos74/clustering/internal/math/sample"
)

func ExampleGenerator_SixClusters() {
	ds := sample.NewGenerator(sample.WithSeed(42)).SixClusters()

	fmt.Println(ds.Len())
	fmt.Println(ds.Offsets())
	// Output:
	// 1200
	// [0 300 500 700 800 1000 1200]
}

func ExampleGenerator_Generate() {
	layout := sample.Layout{
		Name: "two-clusters",
		Clusters: []sample.Cluster{
			sample.NewCluster(10, sample.Identity(2), -5, -5),
			sample.NewCluster(5, sample.Identity(2), 5, 5),
		},
	}

	ds, err := sample.NewGenerator(sample.WithSeed(1)).Generate(layout)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, s := range sample.Describe(ds) {
		fmt.Printf("block %d: offset %d count %d\n", s.Index, s.Offset, s.Count)
	}
	// Output:
	// block 0: offset 0 count 10
	// block 1: offset 10 count 5
}

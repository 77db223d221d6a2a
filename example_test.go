package geocluster_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/geocluster"
	"github.com/hupe1980/geocluster/dataset"
	"github.com/hupe1980/geocluster/model"
)

func Example() {
	tbl, err := dataset.New([]model.Record{
		{Key: "01001", Loc: model.Point{X: 0, Y: 0}, Population: 100},
		{Key: "01003", Loc: model.Point{X: 10, Y: 0}, Population: 300},
		{Key: "01005", Loc: model.Point{X: 0, Y: 50}, Population: 200},
	})
	if err != nil {
		log.Fatal(err)
	}

	gc, err := geocluster.New(tbl)
	if err != nil {
		log.Fatal(err)
	}

	clusters, err := gc.Hierarchical(2)
	if err != nil {
		log.Fatal(err)
	}

	d, err := gc.Distortion(clusters)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("clusters: %d\n", len(clusters))
	fmt.Printf("distortion: %.0f\n", d)
	// Output:
	// clusters: 2
	// distortion: 7500
}

func ExampleGeoCluster_Sweep() {
	tbl, err := dataset.New([]model.Record{
		{Key: "01001", Loc: model.Point{X: 0, Y: 0}, Population: 100},
		{Key: "01003", Loc: model.Point{X: 10, Y: 0}, Population: 300},
		{Key: "01005", Loc: model.Point{X: 0, Y: 50}, Population: 200},
	})
	if err != nil {
		log.Fatal(err)
	}

	gc, err := geocluster.New(tbl)
	if err != nil {
		log.Fatal(err)
	}

	comparison, err := gc.Sweep(2, 3, 1)
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range comparison.Hierarchical {
		fmt.Printf("k=%d distortion=%.0f\n", p.Clusters, p.Distortion)
	}
	// Output:
	// k=2 distortion=7500
	// k=3 distortion=0
}

package tmfg_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/planfilt/matrix"
	"github.com/katalvlaran/planfilt/tmfg"
)

// ExampleConstruct builds the TMFG of a five-node proximity matrix. The four
// best-connected nodes form the seed tetrahedron; the fifth node is inserted
// into its highest-gain open face {0,1,2}, so the zero-weight relation (3,4)
// never becomes an edge.
func ExampleConstruct() {
	data := [][]float64{
		{0, 20, 20, 20, 10},
		{20, 0, 20, 20, 10},
		{20, 20, 0, 20, 10},
		{20, 20, 20, 0, 0},
		{10, 10, 10, 0, 0},
	}
	m, err := matrix.New(data)
	if err != nil {
		log.Fatal(err)
	}

	g, err := tmfg.Construct(m)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("edges:", g.Size())
	fmt.Println("node 4 tied to face {0,1,2}:", g.HasEdge(0, 4), g.HasEdge(1, 4), g.HasEdge(2, 4))
	fmt.Println("edge 3-4 kept:", g.HasEdge(3, 4))
	// Output:
	// edges: 9
	// node 4 tied to face {0,1,2}: true true true
	// edge 3-4 kept: false
}

// ExampleConstruct_batched shows that batching and parallel gain scans select
// exactly the same edges as the sequential scan.
func ExampleConstruct_batched() {
	const n = 12
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := 1.0 / float64(1+(i*31+j*17)%97)
			data[i][j] = w
			data[j][i] = w
		}
	}
	m, err := matrix.New(data)
	if err != nil {
		log.Fatal(err)
	}

	plain, err := tmfg.Construct(m)
	if err != nil {
		log.Fatal(err)
	}
	fanned, err := tmfg.Construct(m, tmfg.WithBatchSize(3), tmfg.WithParallelism(4))
	if err != nil {
		log.Fatal(err)
	}

	a, b := plain.SortedEdges(), fanned.SortedEdges()
	same := len(a) == len(b)
	for i := 0; same && i < len(a); i++ {
		same = a[i] == b[i]
	}
	fmt.Println("edges:", len(a))
	fmt.Println("identical:", same)
	// Output:
	// edges: 30
	// identical: true
}

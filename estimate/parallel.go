package estimate

import (
	"math"
	"runtime"
)

// runGenes executes fn for every gene index. Gene fits are independent,
// so the loop is chunked over goroutines when cores allows it: 0 runs
// in series, -1 uses every CPU, any other value caps the number of
// concurrent goroutines. fn must write only to row i of its outputs.
func runGenes(n, cores int, fn func(i int)) {
	if cores == 0 || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	if cores < 0 {
		cores = runtime.NumCPU()
	}

	i := 0
	ch := make(chan int, cores)
	for i < n {
		todo := int(math.Min(float64(n-i), float64(cores)))

		for j := 0; j < todo; j++ {
			go func(g int) {
				fn(g)
				ch <- g
			}(i + j)
		}

		for j := 0; j < todo; j++ {
			<-ch
		}
		i += todo
	}
}

package sorting

import (
	"fmt"
	"time"
)

// generatorFunc sorts r.a in place while recording snapshots on r.
type generatorFunc func(r *recorder)

var generators = map[Algorithm]generatorFunc{
	Bubble:    bubbleSort,
	Selection: selectionSort,
	Insertion: insertionSort,
	Merge:     mergeSort,
	Quick:     quickSort,
	Heap:      heapSort,
	Shell:     shellSort,
	Counting:  countingSort,
	Radix:     radixSort,
	Bucket:    bucketSort,
}

// Generate sorts a copy of input with alg and returns the recorded trace and
// statistics. The input slice is never modified. Inputs with fewer than two
// elements yield only the start and complete snapshots.
func Generate(alg Algorithm, input []int) (Trace, Stats, error) {
	gen, ok := generators[alg]
	if !ok {
		return nil, Stats{}, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}

	begin := time.Now()
	r := newRecorder(input)
	r.start(alg)
	if len(r.a) > 1 {
		gen(r)
	}
	r.complete(alg)
	r.stats.Time = time.Since(begin)

	return r.trace, r.stats, nil
}

// GenerateByName is Generate for a textual identifier.
func GenerateByName(name string, input []int) (Trace, Stats, error) {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return nil, Stats{}, err
	}
	return Generate(alg, input)
}

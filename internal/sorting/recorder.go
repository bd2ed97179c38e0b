package sorting

import "fmt"

// recorder accumulates snapshots and counters for a single generation run.
type recorder struct {
	a     []int
	trace Trace
	stats Stats
}

func newRecorder(input []int) *recorder {
	a := make([]int, len(input))
	copy(a, input)
	return &recorder{a: a, trace: make(Trace, 0, 4*len(input)+2)}
}

func (r *recorder) push(op Op, comparing, swapped []int, format string, args ...any) {
	arr := make([]int, len(r.a))
	copy(arr, r.a)
	if comparing == nil {
		comparing = []int{}
	}
	if swapped == nil {
		swapped = []int{}
	}
	r.trace = append(r.trace, Snapshot{
		Array:       arr,
		Comparing:   comparing,
		Swapped:     swapped,
		Description: fmt.Sprintf(format, args...),
		Op:          op,
	})
}

func (r *recorder) start(alg Algorithm) { r.push(OpStart, nil, nil, "start %s sort", alg) }

func (r *recorder) complete(alg Algorithm) { r.push(OpComplete, nil, nil, "%s sort complete", alg) }

// compare records a comparison between the given positions. The array is
// captured before the caller acts on the outcome.
func (r *recorder) compare(idx []int, format string, args ...any) {
	r.stats.Comparisons++
	r.push(OpCompare, idx, nil, format, args...)
}

// moved records one element relocation already applied to r.a.
func (r *recorder) moved(idx []int, format string, args ...any) {
	r.stats.Swaps++
	r.push(OpSwap, nil, idx, format, args...)
}

func (r *recorder) mark(comparing, swapped []int, format string, args ...any) {
	r.push(OpMark, comparing, swapped, format, args...)
}

// swap exchanges a[i] and a[j] and records it as one relocation.
func (r *recorder) swap(i, j int, format string, args ...any) {
	r.a[i], r.a[j] = r.a[j], r.a[i]
	r.moved([]int{i, j}, format, args...)
}

func minMax(a []int) (lo, hi int) {
	lo, hi = a[0], a[0]
	for _, v := range a[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

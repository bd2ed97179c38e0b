package sorting

import (
	"math"
	"slices"
)

// denseCountLimit caps the histogram length; wider ranges count over the
// distinct values instead.
const denseCountLimit = 1 << 16

// span returns hi-lo as an unsigned distance, exact for any pair of ints
// with lo <= hi.
func span(lo, hi int) uint64 { return uint64(hi) - uint64(lo) }

// countingSort places elements back-to-front into a buffer for stability and
// then copies the buffer over the array. Both passes count one swap per
// element.
func countingSort(r *recorder) {
	a := r.a
	lo, hi := minMax(a)
	var slot slots
	if span(lo, hi) < denseCountLimit {
		slot = denseSlots(lo, hi)
	} else {
		slot = sparseSlots(a)
	}

	count := make([]int, slot.size)
	output := make([]int, len(a))

	for i, v := range a {
		count[slot.of(v)]++
		r.mark([]int{i}, nil, "count %d", v)
	}

	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]
	}

	for i := len(a) - 1; i >= 0; i-- {
		v := a[i]
		k := slot.of(v)
		count[k]--
		pos := count[k]
		output[pos] = v
		r.moved([]int{i}, "place %d at output position %d", v, pos)
	}

	for i, v := range output {
		a[i] = v
		r.moved([]int{i}, "copy %d back to position %d", v, i)
	}
}

// slots maps a value to its histogram index.
type slots struct {
	size int
	of   func(v int) int
}

func denseSlots(lo, hi int) slots {
	return slots{
		size: int(span(lo, hi)) + 1,
		of:   func(v int) int { return int(span(lo, v)) },
	}
}

// sparseSlots indexes the distinct values of a in ascending order.
func sparseSlots(a []int) slots {
	keys := slices.Clone(a)
	slices.Sort(keys)
	keys = slices.Compact(keys)
	index := make(map[int]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}
	return slots{
		size: len(keys),
		of:   func(v int) int { return index[v] },
	}
}

// radixSort is an LSD base-10 sort. Negative inputs are shifted by -min so
// digit extraction only sees non-negative keys; keys are unsigned so the
// shift cannot overflow.
func radixSort(r *recorder) {
	a := r.a
	lo, hi := minMax(a)
	offset := min(lo, 0)
	passes := decimalDigits(span(offset, hi))

	buckets := make([][]int, 10)
	place := uint64(1)
	for pass := 0; pass < passes; pass++ {
		r.mark(nil, nil, "distribute by digit %d", pass+1)
		for d := range buckets {
			buckets[d] = buckets[d][:0]
		}

		for i, v := range a {
			d := int(span(offset, v) / place % 10)
			buckets[d] = append(buckets[d], v)
			r.mark([]int{i}, nil, "put %d in bucket %d", v, d)
		}

		idx := 0
		for d, bucket := range buckets {
			for _, v := range bucket {
				a[idx] = v
				r.moved([]int{idx}, "take %d from bucket %d", v, d)
				idx++
			}
		}
		if pass < passes-1 {
			place *= 10
		}
	}
}

// decimalDigits is floor(log10(v))+1, with zero taking one digit.
func decimalDigits(v uint64) int {
	digits := 1
	for v >= 10 {
		v /= 10
		digits++
	}
	return digits
}

// bucketSort spreads values over floor(sqrt(n)) buckets by their position in
// [min, max], insertion-sorts each bucket and concatenates them. Bucket
// comparisons are highlighted at the positions the bucket will occupy.
func bucketSort(r *recorder) {
	a := r.a
	lo, hi := minMax(a)
	k := int(math.Sqrt(float64(len(a))))
	if k < 1 {
		k = 1
	}
	buckets := make([][]int, k)

	for i, v := range a {
		b := 0
		if hi > lo {
			b = int(math.Floor(float64(span(lo, v)) / float64(span(lo, hi)) * float64(k-1)))
			b = max(0, min(k-1, b))
		}
		buckets[b] = append(buckets[b], v)
		r.mark([]int{i}, nil, "put %d in bucket %d", v, b+1)
	}

	idx := 0
	for b, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		r.mark(nil, nil, "sort bucket %d", b+1)
		for i := 1; i < len(bucket); i++ {
			held := bucket[i]
			j := i - 1
			for j >= 0 {
				r.compare([]int{idx + j, idx + j + 1}, "compare %d and %d in bucket %d", bucket[j], held, b+1)
				if bucket[j] <= held {
					break
				}
				bucket[j+1] = bucket[j]
				j--
			}
			bucket[j+1] = held
		}

		for _, v := range bucket {
			a[idx] = v
			r.moved([]int{idx}, "take %d from bucket %d", v, b+1)
			idx++
		}
	}
}

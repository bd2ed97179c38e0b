package sorting

// mergeSort splits at len/2 and merges halves back into the shared array.
// Ties take from the left half, which keeps the sort stable.
func mergeSort(r *recorder) {
	a := r.a

	merge := func(lo, mid, hi int) {
		left := append([]int(nil), a[lo:mid]...)
		right := append([]int(nil), a[mid:hi]...)
		merged := make([]int, 0, hi-lo)

		i, j := 0, 0
		for i < len(left) && j < len(right) {
			r.compare([]int{lo + i, mid + j}, "compare %d and %d", left[i], right[j])
			if left[i] <= right[j] {
				merged = append(merged, left[i])
				i++
			} else {
				merged = append(merged, right[j])
				j++
			}
		}
		merged = append(merged, left[i:]...)
		merged = append(merged, right[j:]...)

		for k, v := range merged {
			a[lo+k] = v
			r.moved([]int{lo + k}, "write %d to position %d", v, lo+k)
		}
	}

	var sort func(lo, hi int)
	sort = func(lo, hi int) {
		if hi-lo <= 1 {
			return
		}
		mid := lo + (hi-lo)/2
		sort(lo, mid)
		sort(mid, hi)
		merge(lo, mid, hi)
	}

	sort(0, len(a))
}

package sorting

// selectionSort swaps at most once per position; a position that already
// holds the minimum gets its scan comparisons but no swap.
func selectionSort(r *recorder) {
	a := r.a
	n := len(a)
	for i := 0; i < n-1; i++ {
		minIdx := i
		r.mark([]int{i}, nil, "select position %d", i)

		for j := i + 1; j < n; j++ {
			r.compare([]int{minIdx, j}, "compare %d and %d", a[minIdx], a[j])
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}

		if minIdx != i {
			r.swap(i, minIdx, "move minimum %d to position %d", a[minIdx], i)
		}
	}
}

func heapSort(r *recorder) {
	a := r.a

	var siftDown func(n, i int)
	siftDown = func(n, i int) {
		largest := i
		left, right := 2*i+1, 2*i+2

		if left < n {
			r.compare([]int{largest, left}, "compare %d and %d", a[largest], a[left])
			if a[left] > a[largest] {
				largest = left
			}
		}
		if right < n {
			r.compare([]int{largest, right}, "compare %d and %d", a[largest], a[right])
			if a[right] > a[largest] {
				largest = right
			}
		}

		if largest != i {
			r.swap(i, largest, "swap %d and %d", a[i], a[largest])
			siftDown(n, largest)
		}
	}

	for i := len(a)/2 - 1; i >= 0; i-- {
		siftDown(len(a), i)
	}

	for end := len(a) - 1; end > 0; end-- {
		r.swap(0, end, "move max %d to position %d", a[0], end)
		siftDown(end, 0)
	}
}

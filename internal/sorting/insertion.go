package sorting

func insertionSort(r *recorder) {
	a := r.a
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		r.mark([]int{i}, nil, "hold %d for insertion", key)

		for j >= 0 {
			r.compare([]int{j, j + 1}, "compare %d and %d", a[j], key)
			if a[j] <= key {
				break
			}
			a[j+1] = a[j]
			r.moved([]int{j, j + 1}, "shift %d right", a[j])
			j--
		}

		a[j+1] = key
		r.mark(nil, []int{j + 1}, "insert %d at position %d", key, j+1)
	}
}

// shellSort runs gapped insertion sort over gaps n/2, n/4, ..., 1.
func shellSort(r *recorder) {
	a := r.a
	n := len(a)
	for gap := n / 2; gap > 0; gap /= 2 {
		r.mark(nil, nil, "insertion sort with gap %d", gap)

		for i := gap; i < n; i++ {
			held := a[i]
			j := i
			for ; j >= gap; j -= gap {
				r.compare([]int{j - gap, j}, "compare %d and %d", a[j-gap], held)
				if a[j-gap] <= held {
					break
				}
				a[j] = a[j-gap]
				r.moved([]int{j, j - gap}, "move %d to position %d", a[j-gap], j)
			}

			a[j] = held
			if j != i {
				r.mark(nil, []int{j}, "insert %d at position %d", held, j)
			}
		}
	}
}

package sorting

func bubbleSort(r *recorder) {
	a := r.a
	n := len(a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			r.compare([]int{j, j + 1}, "compare %d and %d", a[j], a[j+1])
			if a[j] > a[j+1] {
				r.swap(j, j+1, "swap %d and %d", a[j], a[j+1])
			}
		}
	}
}

// quickSort uses the Lomuto scheme with the last element as pivot.
func quickSort(r *recorder) {
	a := r.a

	partition := func(low, high int) int {
		pivot := a[high]
		r.mark([]int{high}, nil, "pick pivot %d", pivot)

		i := low - 1
		for j := low; j < high; j++ {
			r.compare([]int{j, high}, "compare %d with pivot %d", a[j], pivot)
			if a[j] <= pivot {
				i++
				if i != j {
					r.swap(i, j, "swap %d and %d", a[i], a[j])
				}
			}
		}
		r.swap(i+1, high, "move pivot %d to position %d", pivot, i+1)
		return i + 1
	}

	var sort func(low, high int)
	sort = func(low, high int) {
		if low < high {
			p := partition(low, high)
			sort(low, p-1)
			sort(p+1, high)
		}
	}

	sort(0, len(a)-1)
}

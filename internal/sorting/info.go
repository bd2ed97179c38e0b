package sorting

// Complexity lists asymptotic running time for the three usual cases.
type Complexity struct {
	Best    string `json:"best" yaml:"best"`
	Average string `json:"average" yaml:"average"`
	Worst   string `json:"worst" yaml:"worst"`
}

// AlgorithmInfo describes an algorithm for display.
type AlgorithmInfo struct {
	Name        string     `json:"name" yaml:"name"`
	Time        Complexity `json:"time" yaml:"time"`
	Space       string     `json:"space" yaml:"space"`
	Stable      bool       `json:"stable" yaml:"stable"`
	Description string     `json:"description" yaml:"description"`
}

var infoTable = map[Algorithm]AlgorithmInfo{
	Bubble: {
		Name: "Bubble Sort", Time: Complexity{"O(n)", "O(n²)", "O(n²)"}, Space: "O(1)", Stable: true,
		Description: "repeatedly walks the array swapping adjacent out-of-order pairs",
	},
	Selection: {
		Name: "Selection Sort", Time: Complexity{"O(n²)", "O(n²)", "O(n²)"}, Space: "O(1)",
		Description: "moves the minimum of the unsorted suffix to its front on each pass",
	},
	Insertion: {
		Name: "Insertion Sort", Time: Complexity{"O(n)", "O(n²)", "O(n²)"}, Space: "O(1)", Stable: true,
		Description: "grows a sorted prefix by shifting larger elements right",
	},
	Merge: {
		Name: "Merge Sort", Time: Complexity{"O(n log n)", "O(n log n)", "O(n log n)"}, Space: "O(n)", Stable: true,
		Description: "splits in half, sorts each half and merges them",
	},
	Quick: {
		Name: "Quick Sort", Time: Complexity{"O(n log n)", "O(n log n)", "O(n²)"}, Space: "O(log n)",
		Description: "partitions around a pivot and recurses on both sides",
	},
	Heap: {
		Name: "Heap Sort", Time: Complexity{"O(n log n)", "O(n log n)", "O(n log n)"}, Space: "O(1)",
		Description: "builds a max-heap and repeatedly extracts the root",
	},
	Shell: {
		Name: "Shell Sort", Time: Complexity{"O(n log n)", "O(n log² n)", "O(n²)"}, Space: "O(1)",
		Description: "insertion sort over shrinking gaps down to one",
	},
	Counting: {
		Name: "Counting Sort", Time: Complexity{"O(n + k)", "O(n + k)", "O(n + k)"}, Space: "O(k)", Stable: true,
		Description: "counts occurrences of each value and places them by prefix sums",
	},
	Radix: {
		Name: "Radix Sort", Time: Complexity{"O(nk)", "O(nk)", "O(nk)"}, Space: "O(n + k)", Stable: true,
		Description: "distributes by decimal digit from least to most significant",
	},
	Bucket: {
		Name: "Bucket Sort", Time: Complexity{"O(n + k)", "O(n + k)", "O(n²)"}, Space: "O(n + k)", Stable: true,
		Description: "spreads values over range buckets and sorts each bucket",
	},
}

// Info returns the display information for alg. The boolean is false for an
// unsupported algorithm.
func Info(alg Algorithm) (AlgorithmInfo, bool) {
	info, ok := infoTable[alg]
	return info, ok
}

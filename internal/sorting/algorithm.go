package sorting

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the supported sorting algorithms.
type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
	Merge
	Quick
	Heap
	Shell
	Counting
	Radix
	Bucket

	numAlgorithms
)

var algorithmNames = [numAlgorithms]string{
	Bubble:    "bubble",
	Selection: "selection",
	Insertion: "insertion",
	Merge:     "merge",
	Quick:     "quick",
	Heap:      "heap",
	Shell:     "shell",
	Counting:  "counting",
	Radix:     "radix",
	Bucket:    "bucket",
}

// All returns every algorithm in display order.
func All() []Algorithm {
	algs := make([]Algorithm, numAlgorithms)
	for i := range algs {
		algs[i] = Algorithm(i)
	}
	return algs
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool { return a >= 0 && a < numAlgorithms }

func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlgorithm maps an identifier such as "quick" to its Algorithm.
// Matching ignores case and an optional "sort" suffix ("QuickSort").
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(strings.TrimSuffix(key, "sort"), "_")
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// Names returns the identifiers of all algorithms in display order.
func Names() []string {
	names := make([]string, numAlgorithms)
	copy(names, algorithmNames[:])
	return names
}

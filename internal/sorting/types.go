package sorting

import (
	"fmt"
	"time"
)

// Op tags what a Snapshot records.
type Op uint8

const (
	OpStart Op = iota
	OpCompare
	OpSwap
	OpMark
	OpComplete
)

var opNames = [...]string{"start", "compare", "swap", "mark", "complete"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Op) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Snapshot is the observable array state at one recorded instant.
// Array is the state after a swap and before a comparison.
type Snapshot struct {
	Array       []int  `json:"array"`
	Comparing   []int  `json:"comparing"`
	Swapped     []int  `json:"swapped"`
	Description string `json:"description"`
	Op          Op     `json:"op"`
}

// Trace is the ordered list of snapshots produced by one generation.
type Trace []Snapshot

// Final returns the last snapshot, or a zero Snapshot for an empty trace.
func (t Trace) Final() Snapshot {
	if len(t) == 0 {
		return Snapshot{}
	}
	return t[len(t)-1]
}

// Counts tallies compare and swap snapshots.
func (t Trace) Counts() (comparisons, swaps int) {
	for _, s := range t {
		switch s.Op {
		case OpCompare:
			comparisons++
		case OpSwap:
			swaps++
		}
	}
	return comparisons, swaps
}

// Stats aggregates the work done while generating a trace.
type Stats struct {
	Comparisons int           `json:"comparisons"`
	Swaps       int           `json:"swaps"`
	Time        time.Duration `json:"time_ns"`
}

// Millis returns the generation time in fractional milliseconds.
func (s Stats) Millis() float64 {
	return float64(s.Time) / float64(time.Millisecond)
}

// IsSorted reports whether a is in non-decreasing order.
func IsSorted(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}
	return true
}

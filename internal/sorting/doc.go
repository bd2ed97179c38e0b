// Package sorting generates step traces for classic array sorting algorithms.
//
// Each algorithm is instrumented to record an ordered sequence of [Snapshot]
// values while it sorts a private copy of the input:
//
//   - [Generate]: run an [Algorithm] over an input and return its [Trace] and [Stats]
//   - [Algorithm]: closed set of the ten supported algorithms
//   - [Info]: complexity table used by the CLI and TUI
//
// # Example
//
//	trace, stats, err := sorting.Generate(sorting.Bubble, []int{5, 3, 4, 1, 2})
//	final := trace.Final().Array // [1 2 3 4 5]
//
// # Counting
//
// Every comparison is recorded as an [OpCompare] snapshot and every element
// relocation as an [OpSwap] snapshot, so Stats.Comparisons and Stats.Swaps
// always equal the number of snapshots carrying those ops.
package sorting

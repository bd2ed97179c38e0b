// Package playback drives recorded sorting traces.
//
// A [Player] is the state machine for one algorithm: it owns a trace, its
// stats and a step cursor. A [Controller] holds one Player per algorithm,
// generates traces on demand and advances running players from a
// [Scheduler] at base/speed intervals.
//
// # Phases
//
//	Idle -> Stopped (trace loaded) -> Running <-> Paused
//	Running -> Complete (cursor reached the last snapshot)
//	any -> Idle (reset, or a new input array)
//
// # Thread Safety
//
// Player is not safe for concurrent use. Controller serializes all access
// to its players, including scheduler ticks, behind one mutex.
package playback

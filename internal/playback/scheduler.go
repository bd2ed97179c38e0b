package playback

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs fn every d until the returned cancel func is called.
// Cancel must be safe to call more than once and from inside fn.
type Scheduler interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// TickerScheduler backs each schedule with a time.Ticker and a goroutine.
type TickerScheduler struct{}

func (TickerScheduler) Every(d time.Duration, fn func()) func() {
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }
}

// ManualScheduler fires schedules only when Tick is called.
type ManualScheduler struct {
	mu   sync.Mutex
	next int
	jobs map[int]manualJob
}

type manualJob struct {
	interval time.Duration
	fn       func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{jobs: make(map[int]manualJob)}
}

func (m *ManualScheduler) Every(d time.Duration, fn func()) func() {
	m.mu.Lock()
	id := m.next
	m.next++
	m.jobs[id] = manualJob{interval: d, fn: fn}
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.jobs, id)
		m.mu.Unlock()
	}
}

// Tick fires every live schedule once, in creation order.
func (m *ManualScheduler) Tick() {
	for _, fn := range m.snapshot() {
		fn()
	}
}

// TickN calls Tick n times.
func (m *ManualScheduler) TickN(n int) {
	for i := 0; i < n; i++ {
		m.Tick()
	}
}

// Capture returns the fns of the live schedules. Calling them after their
// schedule was cancelled mimics a ticker goroutine delivering a late tick.
func (m *ManualScheduler) Capture() []func() { return m.snapshot() }

// Active returns the number of live schedules.
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs)
}

// Intervals returns the interval of every live schedule.
func (m *ManualScheduler) Intervals() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, 0, len(m.jobs))
	for _, id := range m.ids() {
		out = append(out, m.jobs[id].interval)
	}
	return out
}

func (m *ManualScheduler) snapshot() []func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	fns := make([]func(), 0, len(m.jobs))
	for _, id := range m.ids() {
		fns = append(fns, m.jobs[id].fn)
	}
	return fns
}

func (m *ManualScheduler) ids() []int {
	ids := make([]int, 0, len(m.jobs))
	for id := range m.jobs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

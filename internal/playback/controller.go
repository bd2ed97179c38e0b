package playback

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	MinSpeed            = 0.1
	MaxSpeed            = 5.0
	DefaultSpeed        = 1.0
	DefaultBaseInterval = time.Second
)

// ClampSpeed limits s to [MinSpeed, MaxSpeed]. NaN maps to DefaultSpeed.
func ClampSpeed(s float64) float64 {
	if math.IsNaN(s) {
		return DefaultSpeed
	}
	if s < MinSpeed {
		return MinSpeed
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}

// Options configures a Controller. Zero values select defaults.
type Options struct {
	Algorithms   []sorting.Algorithm
	Speed        float64
	BaseInterval time.Duration
	Scheduler    Scheduler
	Logger       *slog.Logger
	// OnChange is called, outside the controller lock, after a tick moved or
	// stopped a player.
	OnChange func(alg sorting.Algorithm)
}

// Status is a read-only view of one player. Snapshot slices alias the
// immutable trace and must not be modified.
type Status struct {
	Algorithm sorting.Algorithm
	Phase     Phase
	Snapshot  sorting.Snapshot
	Stats     sorting.Stats
	Step      int
	Total     int
	Running   bool
	Paused    bool
}

// Progress renders the one-based cursor position, e.g. "12/87".
func (s Status) Progress() string {
	if s.Total == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", s.Step+1, s.Total)
}

type timer struct {
	epoch  uint64
	cancel func()
}

// Controller owns one Player per algorithm and the input array they share.
type Controller struct {
	mu       sync.Mutex
	order    []sorting.Algorithm
	players  map[sorting.Algorithm]*Player
	timers   map[sorting.Algorithm]timer
	array    []int
	speed    float64
	base     time.Duration
	sched    Scheduler
	log      *slog.Logger
	epoch    uint64
	onChange func(sorting.Algorithm)
}

func New(array []int, opts Options) *Controller {
	order := opts.Algorithms
	if len(order) == 0 {
		order = sorting.All()
	}
	if opts.Speed == 0 {
		opts.Speed = DefaultSpeed
	}
	if opts.BaseInterval <= 0 {
		opts.BaseInterval = DefaultBaseInterval
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TickerScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Controller{
		order:    append([]sorting.Algorithm(nil), order...),
		players:  make(map[sorting.Algorithm]*Player, len(order)),
		timers:   make(map[sorting.Algorithm]timer),
		array:    append([]int(nil), array...),
		speed:    ClampSpeed(opts.Speed),
		base:     opts.BaseInterval,
		sched:    opts.Scheduler,
		log:      opts.Logger,
		onChange: opts.OnChange,
	}
	for _, alg := range c.order {
		c.players[alg] = &Player{}
	}
	return c
}

// Algorithms returns the managed algorithms in display order.
func (c *Controller) Algorithms() []sorting.Algorithm {
	return append([]sorting.Algorithm(nil), c.order...)
}

// Start generates a trace for alg if it has none and begins auto-advance.
func (c *Controller) Start(alg sorting.Algorithm) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.start(alg)
}

func (c *Controller) start(alg sorting.Algorithm) error {
	p, err := c.player(alg)
	if err != nil {
		return err
	}

	if !p.HasTrace() {
		trace, stats, err := sorting.Generate(alg, c.array)
		if err != nil {
			return err
		}
		p.Load(trace, stats)
		c.log.Debug("trace generated",
			"algorithm", alg,
			"steps", len(trace),
			"comparisons", stats.Comparisons,
			"swaps", stats.Swaps,
			"elapsed", stats.Time,
		)
	}

	p.Start()
	c.schedule(alg)
	c.log.Debug("playback started", "algorithm", alg, "interval", c.interval())
	return nil
}

// Pause stops auto-advance for alg and keeps its cursor.
func (c *Controller) Pause(alg sorting.Algorithm) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pause(alg)
}

func (c *Controller) pause(alg sorting.Algorithm) error {
	p, err := c.player(alg)
	if err != nil {
		return err
	}
	c.stopTimer(alg)
	p.Pause()
	c.log.Debug("playback paused", "algorithm", alg)
	return nil
}

// Reset discards the trace and stats of alg.
func (c *Controller) Reset(alg sorting.Algorithm) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reset(alg)
}

func (c *Controller) reset(alg sorting.Algorithm) error {
	p, err := c.player(alg)
	if err != nil {
		return err
	}
	c.stopTimer(alg)
	p.Reset()
	return nil
}

// StepForward moves alg one snapshot ahead. It reports whether the cursor moved.
func (c *Controller) StepForward(alg sorting.Algorithm) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, err := c.player(alg)
	if err != nil {
		return false, err
	}
	return p.StepForward(), nil
}

// StepBackward moves alg one snapshot back. It reports whether the cursor moved.
func (c *Controller) StepBackward(alg sorting.Algorithm) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, err := c.player(alg)
	if err != nil {
		return false, err
	}
	return p.StepBackward(), nil
}

// StartAll starts every managed algorithm independently.
func (c *Controller) StartAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var errs []error
	for _, alg := range c.order {
		if err := c.start(alg); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", alg, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Controller) PauseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, alg := range c.order {
		_ = c.pause(alg)
	}
}

func (c *Controller) ResetAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAll()
}

func (c *Controller) resetAll() {
	for _, alg := range c.order {
		_ = c.reset(alg)
	}
}

// SetArray replaces the input array and resets every player in one critical
// section, so no trace generated for the old array survives.
func (c *Controller) SetArray(array []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.array = append([]int(nil), array...)
	c.resetAll()
	c.log.Debug("input array replaced", "length", len(array))
}

// Array returns a copy of the current input array.
func (c *Controller) Array() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.array...)
}

// SetSpeed clamps and applies a speed multiplier, rescheduling running
// players at the new interval. It returns the applied speed.
func (c *Controller) SetSpeed(speed float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = ClampSpeed(speed)
	for _, alg := range c.order {
		if _, ok := c.timers[alg]; ok {
			c.schedule(alg)
		}
	}
	return c.speed
}

func (c *Controller) Speed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// Interval is the auto-advance period, base / speed.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval()
}

func (c *Controller) interval() time.Duration {
	return time.Duration(float64(c.base) / c.speed)
}

// Status returns a view of the player for alg.
func (c *Controller) Status(alg sorting.Algorithm) (Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, err := c.player(alg)
	if err != nil {
		return Status{}, err
	}
	return statusOf(alg, p), nil
}

// Statuses returns views of all players in display order.
func (c *Controller) Statuses() []Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Status, 0, len(c.order))
	for _, alg := range c.order {
		out = append(out, statusOf(alg, c.players[alg]))
	}
	return out
}

// AnyRunning reports whether at least one player is auto-advancing.
func (c *Controller) AnyRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.players {
		if p.Running() {
			return true
		}
	}
	return false
}

// Close cancels every outstanding schedule.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for alg := range c.timers {
		c.stopTimer(alg)
	}
}

func statusOf(alg sorting.Algorithm, p *Player) Status {
	step, total := p.Position()
	return Status{
		Algorithm: alg,
		Phase:     p.Phase(),
		Snapshot:  p.Current(),
		Stats:     p.Stats(),
		Step:      step,
		Total:     total,
		Running:   p.Running(),
		Paused:    p.Paused(),
	}
}

func (c *Controller) player(alg sorting.Algorithm) (*Player, error) {
	p, ok := c.players[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
	return p, nil
}

// schedule replaces any schedule for alg with a fresh one at the current
// interval. Ticks carry the epoch they were created with.
func (c *Controller) schedule(alg sorting.Algorithm) {
	c.stopTimer(alg)
	c.epoch++
	epoch := c.epoch
	cancel := c.sched.Every(c.interval(), func() { c.tick(alg, epoch) })
	c.timers[alg] = timer{epoch: epoch, cancel: cancel}
}

func (c *Controller) stopTimer(alg sorting.Algorithm) {
	if t, ok := c.timers[alg]; ok {
		t.cancel()
		delete(c.timers, alg)
	}
}

// tick advances alg once. Ticks from a cancelled or replaced schedule are
// dropped.
func (c *Controller) tick(alg sorting.Algorithm, epoch uint64) {
	c.mu.Lock()
	t, ok := c.timers[alg]
	if !ok || t.epoch != epoch {
		c.mu.Unlock()
		return
	}
	if !c.players[alg].Advance() {
		c.stopTimer(alg)
		c.log.Debug("playback finished", "algorithm", alg)
	}
	notify := c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify(alg)
	}
}

package playback_test

import (
	"math"
	"strconv"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

var _ = Describe("Controller", func() {
	var (
		sched *playback.ManualScheduler
		ctrl  *playback.Controller
		input []int
	)

	status := func(alg sorting.Algorithm) playback.Status {
		st, err := ctrl.Status(alg)
		Expect(err).NotTo(HaveOccurred())
		return st
	}

	BeforeEach(func() {
		input = []int{5, 3, 4, 1, 2}
		sched = playback.NewManualScheduler()
		ctrl = playback.New(input, playback.Options{Scheduler: sched})
	})

	AfterEach(func() {
		ctrl.Close()
	})

	It("manages all ten algorithms by default", func() {
		Expect(ctrl.Algorithms()).To(Equal(sorting.All()))
		for _, st := range ctrl.Statuses() {
			Expect(st.Phase).To(Equal(playback.PhaseIdle))
			Expect(st.Progress()).To(Equal("0/0"))
		}
	})

	It("generates on start and advances once per tick", func() {
		Expect(ctrl.Start(sorting.Bubble)).To(Succeed())
		st := status(sorting.Bubble)
		Expect(st.Phase).To(Equal(playback.PhaseRunning))
		Expect(st.Stats.Comparisons).To(Equal(10))
		Expect(st.Step).To(Equal(0))
		Expect(sched.Active()).To(Equal(1))

		sched.TickN(3)
		Expect(status(sorting.Bubble).Step).To(Equal(3))
		Expect(status(sorting.Bubble).Progress()).To(Equal("4/" + strconv.Itoa(st.Total)))
	})

	It("releases the schedule when the trace is exhausted", func() {
		Expect(ctrl.Start(sorting.Insertion)).To(Succeed())
		total := status(sorting.Insertion).Total

		sched.TickN(total - 1)
		Expect(status(sorting.Insertion).Phase).To(Equal(playback.PhaseRunning))
		Expect(sched.Active()).To(Equal(1))

		sched.Tick()
		st := status(sorting.Insertion)
		Expect(st.Phase).To(Equal(playback.PhaseComplete))
		Expect(st.Snapshot.Array).To(Equal([]int{1, 2, 3, 4, 5}))
		Expect(sched.Active()).To(BeZero())
	})

	It("reuses the trace when resuming after pause", func() {
		Expect(ctrl.Start(sorting.Quick)).To(Succeed())
		sched.TickN(2)
		Expect(ctrl.Pause(sorting.Quick)).To(Succeed())
		Expect(sched.Active()).To(BeZero())

		before := status(sorting.Quick)
		Expect(before.Phase).To(Equal(playback.PhasePaused))
		Expect(before.Step).To(Equal(2))

		Expect(ctrl.Start(sorting.Quick)).To(Succeed())
		after := status(sorting.Quick)
		Expect(after.Step).To(Equal(2))
		Expect(after.Stats.Time).To(Equal(before.Stats.Time))
	})

	It("drops a late tick from a cancelled schedule", func() {
		Expect(ctrl.Start(sorting.Heap)).To(Succeed())
		late := sched.Capture()
		Expect(ctrl.Reset(sorting.Heap)).To(Succeed())

		for _, fn := range late {
			fn()
		}
		Expect(status(sorting.Heap).Phase).To(Equal(playback.PhaseIdle))

		Expect(ctrl.Start(sorting.Heap)).To(Succeed())
		for _, fn := range late {
			fn()
		}
		Expect(status(sorting.Heap).Step).To(Equal(0))
	})

	It("steps manually in both directions", func() {
		Expect(ctrl.Start(sorting.Selection)).To(Succeed())
		Expect(ctrl.Pause(sorting.Selection)).To(Succeed())

		moved, err := ctrl.StepBackward(sorting.Selection)
		Expect(err).NotTo(HaveOccurred())
		Expect(moved).To(BeFalse())

		moved, err = ctrl.StepForward(sorting.Selection)
		Expect(err).NotTo(HaveOccurred())
		Expect(moved).To(BeTrue())
		Expect(status(sorting.Selection).Step).To(Equal(1))
	})

	It("starts, pauses and resets every algorithm independently", func() {
		Expect(ctrl.StartAll()).To(Succeed())
		Expect(sched.Active()).To(Equal(10))
		Expect(ctrl.AnyRunning()).To(BeTrue())

		sched.Tick()
		for _, st := range ctrl.Statuses() {
			Expect(st.Step).To(Equal(1), st.Algorithm.String())
		}

		ctrl.PauseAll()
		Expect(sched.Active()).To(BeZero())
		for _, st := range ctrl.Statuses() {
			Expect(st.Phase).To(Equal(playback.PhasePaused))
		}

		ctrl.ResetAll()
		for _, st := range ctrl.Statuses() {
			Expect(st.Phase).To(Equal(playback.PhaseIdle))
		}
	})

	It("invalidates every trace when the input array changes", func() {
		Expect(ctrl.StartAll()).To(Succeed())
		sched.TickN(2)
		late := sched.Capture()

		ctrl.SetArray([]int{9, 8, 7})
		Expect(sched.Active()).To(BeZero())
		for _, fn := range late {
			fn()
		}
		for _, st := range ctrl.Statuses() {
			Expect(st.Phase).To(Equal(playback.PhaseIdle))
		}
		Expect(ctrl.Array()).To(Equal([]int{9, 8, 7}))

		Expect(ctrl.Start(sorting.Counting)).To(Succeed())
		st := status(sorting.Counting)
		Expect(st.Snapshot.Array).To(Equal([]int{9, 8, 7}))
	})

	It("does not alias the caller's array", func() {
		input[0] = 100
		Expect(ctrl.Array()).To(Equal([]int{5, 3, 4, 1, 2}))
	})

	It("scales the interval by speed and reschedules running players", func() {
		Expect(ctrl.Interval()).To(Equal(time.Second))
		Expect(ctrl.Start(sorting.Merge)).To(Succeed())

		Expect(ctrl.SetSpeed(2)).To(Equal(2.0))
		Expect(ctrl.Interval()).To(Equal(500 * time.Millisecond))
		Expect(sched.Intervals()).To(Equal([]time.Duration{500 * time.Millisecond}))

		Expect(ctrl.SetSpeed(50)).To(Equal(playback.MaxSpeed))
		Expect(ctrl.SetSpeed(0)).To(Equal(playback.MinSpeed))
		Expect(ctrl.Interval()).To(Equal(10 * time.Second))
	})

	It("treats a NaN speed as the default", func() {
		Expect(playback.ClampSpeed(math.NaN())).To(Equal(playback.DefaultSpeed))
		Expect(ctrl.SetSpeed(math.NaN())).To(Equal(playback.DefaultSpeed))
		Expect(ctrl.Interval()).To(Equal(time.Second))

		nan := playback.New(input, playback.Options{Speed: math.NaN(), Scheduler: sched})
		defer nan.Close()
		Expect(nan.Interval()).To(Equal(time.Second))
		Expect(nan.Start(sorting.Bubble)).To(Succeed())
		Expect(sched.Intervals()).To(ConsistOf(time.Second))
	})

	It("rejects algorithms it does not manage", func() {
		only := playback.New(input, playback.Options{
			Algorithms: []sorting.Algorithm{sorting.Bubble},
			Scheduler:  sched,
		})
		Expect(only.Start(sorting.Radix)).To(MatchError(playback.ErrUnknownAlgorithm))
		_, err := only.Status(sorting.Radix)
		Expect(err).To(MatchError(playback.ErrUnknownAlgorithm))
	})

	It("notifies after each tick", func() {
		var calls atomic.Int32
		notified := playback.New(input, playback.Options{
			Scheduler: sched,
			OnChange:  func(sorting.Algorithm) { calls.Add(1) },
		})
		defer notified.Close()

		Expect(notified.Start(sorting.Bucket)).To(Succeed())
		sched.TickN(2)
		Expect(calls.Load()).To(Equal(int32(2)))
	})

	It("drives real tickers until completion", func() {
		live := playback.New([]int{2, 1}, playback.Options{
			Algorithms:   []sorting.Algorithm{sorting.Bubble},
			BaseInterval: 5 * time.Millisecond,
		})
		defer live.Close()

		Expect(live.Start(sorting.Bubble)).To(Succeed())
		Eventually(func() playback.Phase {
			st, _ := live.Status(sorting.Bubble)
			return st.Phase
		}).WithTimeout(2 * time.Second).Should(Equal(playback.PhaseComplete))
	})
})

package playback_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

func loadedPlayer(alg sorting.Algorithm, input []int) *playback.Player {
	trace, stats, err := sorting.Generate(alg, input)
	Expect(err).NotTo(HaveOccurred())
	p := &playback.Player{}
	p.Load(trace, stats)
	return p
}

var _ = Describe("Player", func() {
	It("starts idle with an empty snapshot", func() {
		p := &playback.Player{}
		Expect(p.Phase()).To(Equal(playback.PhaseIdle))
		Expect(p.HasTrace()).To(BeFalse())
		Expect(p.Start()).To(BeFalse())
		Expect(p.Current().Array).To(BeNil())
		step, total := p.Position()
		Expect(step).To(Equal(0))
		Expect(total).To(Equal(0))
	})

	It("is stopped at step zero after a trace is loaded", func() {
		p := loadedPlayer(sorting.Bubble, []int{5, 3, 4, 1, 2})
		Expect(p.Phase()).To(Equal(playback.PhaseStopped))
		Expect(p.Current().Op).To(Equal(sorting.OpStart))
	})

	It("steps forward to the end and then no-ops", func() {
		p := loadedPlayer(sorting.Bubble, []int{5, 3, 4, 1, 2})
		_, total := p.Position()

		for i := 0; i < total-1; i++ {
			Expect(p.StepForward()).To(BeTrue())
		}
		step, _ := p.Position()
		Expect(step).To(Equal(total - 1))
		Expect(p.StepForward()).To(BeFalse())
		Expect(p.Current().Array).To(Equal([]int{1, 2, 3, 4, 5}))
		Expect(p.Phase()).To(Equal(playback.PhaseComplete))
	})

	It("does not step backward past zero", func() {
		p := loadedPlayer(sorting.Quick, []int{2, 1})
		Expect(p.StepBackward()).To(BeFalse())
		Expect(p.StepForward()).To(BeTrue())
		Expect(p.StepBackward()).To(BeTrue())
		step, _ := p.Position()
		Expect(step).To(Equal(0))
	})

	It("keeps the cursor on pause and resumes from it", func() {
		p := loadedPlayer(sorting.Merge, []int{4, 2, 3, 1})
		Expect(p.Start()).To(BeTrue())
		Expect(p.Advance()).To(BeTrue())
		Expect(p.Advance()).To(BeTrue())

		p.Pause()
		Expect(p.Phase()).To(Equal(playback.PhasePaused))
		Expect(p.Advance()).To(BeFalse())
		step, _ := p.Position()
		Expect(step).To(Equal(2))

		Expect(p.Start()).To(BeTrue())
		Expect(p.Phase()).To(Equal(playback.PhaseRunning))
		step, _ = p.Position()
		Expect(step).To(Equal(2))
	})

	It("stops on the first tick that finds the trace exhausted", func() {
		p := loadedPlayer(sorting.Selection, []int{42})
		Expect(p.Start()).To(BeTrue())
		Expect(p.Advance()).To(BeTrue())
		Expect(p.Phase()).To(Equal(playback.PhaseRunning))
		Expect(p.Advance()).To(BeFalse())
		Expect(p.Phase()).To(Equal(playback.PhaseComplete))
		Expect(p.Running()).To(BeFalse())
		Expect(p.Paused()).To(BeFalse())
	})

	It("replays a complete trace from the beginning", func() {
		p := loadedPlayer(sorting.Heap, []int{1})
		p.StepForward()
		Expect(p.Phase()).To(Equal(playback.PhaseComplete))
		Expect(p.Start()).To(BeTrue())
		step, _ := p.Position()
		Expect(step).To(Equal(0))
	})

	It("returns to idle on reset", func() {
		p := loadedPlayer(sorting.Shell, []int{3, 1, 2})
		p.Start()
		p.Advance()
		p.Reset()
		Expect(p.Phase()).To(Equal(playback.PhaseIdle))
		Expect(p.Stats()).To(Equal(sorting.Stats{}))
		Expect(p.Running()).To(BeFalse())
	})
})

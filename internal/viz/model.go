package viz

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	refreshRate  = time.Second / 30
	speedStep    = 0.25
	barRows      = 6
	cardWidth    = 40
	defaultWidth = 120
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refreshRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Options configures the interactive view.
type Options struct {
	Presets []config.Preset
	// Preset names the catalog entry the controller array came from; empty
	// for a custom array.
	Preset string
	Theme  Theme
	Logger *slog.Logger
}

// Model is the bubbletea model for the algorithm grid.
type Model struct {
	ctrl     *playback.Controller
	presets  []config.Preset
	preset   int
	selected int
	theme    Theme
	keys     keyMap
	help     help.Model
	input    textinput.Model
	editing  bool
	status   string
	failed   bool
	log      *slog.Logger
	width    int
	height   int
}

func NewModel(ctrl *playback.Controller, opts Options) Model {
	if opts.Theme.Name == "" {
		opts.Theme = ThemeCyberpunk
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Prompt = "array> "
	ti.Placeholder = "5, 3, 8, 1"
	ti.CharLimit = 512
	ti.Width = 60

	preset := -1
	for i, p := range opts.Presets {
		if p.Name == opts.Preset {
			preset = i
			break
		}
	}

	return Model{
		ctrl:    ctrl,
		presets: opts.Presets,
		preset:  preset,
		theme:   opts.Theme,
		keys:    keys,
		help:    help.New(),
		input:   ti,
		log:     opts.Logger,
		width:   defaultWidth,
	}
}

func (m Model) Init() tea.Cmd { return tick() }

// Update handles key presses and the refresh tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m, tick()
	case tea.KeyMsg:
		if m.editing {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	algs := m.ctrl.Algorithms()
	alg := algs[m.selected]

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if m.ctrl.AnyRunning() {
			m.ctrl.PauseAll()
			m.note("paused all")
		} else {
			m.setErr(m.ctrl.StartAll())
		}
	case key.Matches(msg, m.keys.Start):
		m.setErr(m.ctrl.Start(alg))
	case key.Matches(msg, m.keys.Pause):
		m.setErr(m.ctrl.Pause(alg))
	case key.Matches(msg, m.keys.ResetOne):
		m.setErr(m.ctrl.Reset(alg))
	case key.Matches(msg, m.keys.ResetAll):
		m.ctrl.ResetAll()
		m.note("reset all")
	case key.Matches(msg, m.keys.StepBack):
		_, err := m.ctrl.StepBackward(alg)
		m.setErr(err)
	case key.Matches(msg, m.keys.StepFwd):
		_, err := m.ctrl.StepForward(alg)
		m.setErr(err)
	case key.Matches(msg, m.keys.Faster):
		m.ctrl.SetSpeed(m.ctrl.Speed() + speedStep)
	case key.Matches(msg, m.keys.Slower):
		m.ctrl.SetSpeed(m.ctrl.Speed() - speedStep)
	case key.Matches(msg, m.keys.Next):
		m.selected = (m.selected + 1) % len(algs)
	case key.Matches(msg, m.keys.Prev):
		m.selected = (m.selected + len(algs) - 1) % len(algs)
	case key.Matches(msg, m.keys.Preset):
		if len(m.presets) > 0 {
			m.preset = (m.preset + 1) % len(m.presets)
			p := m.presets[m.preset]
			m.ctrl.SetArray(p.Array)
			m.note("preset " + p.Name)
		}
	case key.Matches(msg, m.keys.Custom):
		m.editing = true
		m.note("")
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme.Name)
		m.note("theme " + m.theme.Name)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		text := m.input.Value()
		if values, ok := config.ParseArray(text); ok {
			m.ctrl.SetArray(values)
			m.preset = -1
			m.note(fmt.Sprintf("custom array, %d values", len(values)))
		} else {
			m.log.Warn("ignoring array input without integers", "input", text)
			m.fail("no integers found, array unchanged")
		}
		m.stopEditing()
		return m, nil
	case tea.KeyEsc:
		m.stopEditing()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) setErr(err error) {
	if err != nil {
		m.log.Error("controller operation failed", "error", err)
		m.fail(err.Error())
		return
	}
	m.note("")
}

func (m *Model) note(s string) { m.status, m.failed = s, false }

func (m *Model) fail(s string) { m.status, m.failed = s, true }

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewGrid())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	preset := "custom"
	if m.preset >= 0 {
		preset = m.presets[m.preset].Name
	}
	parts := []string{
		GradientText("SORTVIZ", m.theme.Title, m.theme.Bar),
		MetricLabel.Render("speed ") + MetricValue.Render(fmt.Sprintf("%.2fx", m.ctrl.Speed())),
		MetricLabel.Render("tick ") + MetricValue.Render(m.ctrl.Interval().String()),
		MetricLabel.Render("preset ") + MetricValue.Render(preset),
		MetricLabel.Render("n ") + MetricValue.Render(fmt.Sprint(len(m.ctrl.Array()))),
	}
	return strings.Join(parts, "   ") + "\n" + Separator(min(m.width, 100))
}

func (m Model) viewGrid() string {
	cols := max(1, m.width/(cardWidth+4))
	array := m.ctrl.Array()

	var rows, row []string
	for i, st := range m.ctrl.Statuses() {
		row = append(row, m.viewCard(st, array, i == m.selected))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewCard(st playback.Status, array []int, selected bool) string {
	info, _ := sorting.Info(st.Algorithm)
	inner := cardWidth - 2

	snap := st.Snapshot
	desc := snap.Description
	if st.Total == 0 {
		snap = sorting.Snapshot{Array: array}
		desc = info.Description
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Title).Render(info.Name)
	head := title + "  " + PhaseLabel(st.Phase)

	frac := 0.0
	if st.Total > 1 {
		frac = float64(st.Step) / float64(st.Total-1)
	}
	progress := ProgressBar(frac, inner-10) + " " + Subtle.Render(st.Progress())

	bars := RenderBars(snap, barRows, ColumnWidth(len(snap.Array), inner), m.theme, st.Phase == playback.PhaseComplete)

	stats := Subtle.Render("not generated")
	if st.Total > 0 {
		stats = MetricLabel.Render("cmp ") + MetricValue.Render(fmt.Sprint(st.Stats.Comparisons)) +
			MetricLabel.Render("  swp ") + MetricValue.Render(fmt.Sprint(st.Stats.Swaps)) +
			MetricLabel.Render("  gen ") + MetricValue.Render(fmt.Sprintf("%.3fms", st.Stats.Millis()))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		head,
		progress,
		bars,
		stats,
		lipgloss.NewStyle().Foreground(m.theme.Muted).MaxWidth(inner).Render(desc),
	)
	return cardStyle(m.theme, selected, cardWidth).Render(body)
}

func (m Model) viewFooter() string {
	var b strings.Builder

	alg := m.ctrl.Algorithms()[m.selected]
	if info, ok := sorting.Info(alg); ok {
		stable := "unstable"
		if info.Stable {
			stable = "stable"
		}
		b.WriteString(Subtle.Render(fmt.Sprintf("%s  best %s  avg %s  worst %s  space %s  %s",
			info.Name, info.Time.Best, info.Time.Average, info.Time.Worst, info.Space, stable)))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else if m.status != "" {
		style := Subtle
		if m.failed {
			style = ErrorText
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the interactive view on the alternate screen and blocks until
// the user quits.
func Run(ctrl *playback.Controller, opts Options) error {
	_, err := tea.NewProgram(NewModel(ctrl, opts), tea.WithAltScreen()).Run()
	return err
}

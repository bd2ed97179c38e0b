package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	configFile string
	speed      float64
	presetName string
	arrayText  string
	seed       int64
	algorithms []string
	logLevel   string
	logFile    string
	themeName  string
	// export-svg
	outFile string
	step    int
	width   int
	height  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "step through sorting algorithms in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.Float64Var(&speed, "speed", config.DefaultSpeed, "playback speed multiplier (0.1-5.0)")
	pf.StringVar(&presetName, "preset", config.DefaultPreset, "input preset")
	pf.StringVar(&arrayText, "array", "", "comma-separated input array, overrides --preset")
	pf.Int64Var(&seed, "seed", config.DefaultSeed, "seed for generated presets")
	pf.StringSliceVar(&algorithms, "algorithms", nil, "algorithms to show (default all)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.StringVar(&themeName, "theme", "", "color theme: "+strings.Join(viz.ThemeNames(), ", "))

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive grid of all algorithms",
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm...]",
		Short: "play traces back in the terminal without the interactive view",
		RunE:  runPlayback,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "print every snapshot of a trace",
		Args:  cobra.ExactArgs(1),
		RunE:  printTrace,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare comparison and swap counts across presets",
		RunE:  benchPresets,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot cumulative comparisons and swaps per step",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrace,
	}

	infoCmd := &cobra.Command{
		Use:   "info [algorithm]",
		Short: "show complexity and stability of algorithms",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showInfo,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available input presets",
		RunE:  listPresets,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [algorithm]",
		Short: "export a trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [algorithm]",
		Short: "export a trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [algorithm]",
		Short: "render one snapshot, or the count curves, as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&step, "step", -1, "snapshot index (-1 for the final snapshot, -2 for count curves)")
	exportSVGCmd.Flags().IntVar(&width, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&height, "height", 300, "image height")

	for _, c := range []*cobra.Command{exportJSONCmd, exportCSVCmd, exportSVGCmd} {
		c.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	}

	rootCmd.AddCommand(tuiCmd, runCmd, traceCmd, benchCmd, plotCmd, infoCmd, presetsCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// settings is the merged result of the config file and command line flags.
type settings struct {
	cfg    *config.Config
	algs   []sorting.Algorithm
	array  []int
	log    *slog.Logger
	closer func()
}

// loadSettings reads --config, lets explicitly set flags override it and
// builds the logger. quiet discards logs unless --log-file is set.
func loadSettings(cmd *cobra.Command, quiet bool) (*settings, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("preset") {
		cfg.Preset = presetName
		cfg.Array = nil
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("algorithms") {
		cfg.Algorithms = algorithms
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}

	log, closer, err := newLogger(cfg.LogLevel, logFile, quiet)
	if err != nil {
		return nil, err
	}

	if flags.Changed("array") {
		if values, ok := config.ParseArray(arrayText); ok {
			cfg.Array = values
		} else {
			log.Warn("no integers in --array, keeping configured input", "array", arrayText)
		}
	}

	if err := cfg.Validate(); err != nil {
		closer()
		return nil, err
	}
	algs, err := cfg.GetAlgorithms()
	if err != nil {
		closer()
		return nil, err
	}
	array, err := cfg.GetArray()
	if err != nil {
		closer()
		return nil, err
	}

	return &settings{cfg: cfg, algs: algs, array: array, log: log, closer: closer}, nil
}

func (s *settings) controller(opts playback.Options) *playback.Controller {
	opts.Speed = s.cfg.Speed
	opts.BaseInterval = time.Duration(s.cfg.BaseIntervalMs) * time.Millisecond
	opts.Logger = s.log
	if opts.Algorithms == nil {
		opts.Algorithms = s.algs
	}
	return playback.New(s.array, opts)
}

func newLogger(level, path string, quiet bool) (*slog.Logger, func(), error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closer, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, true)
	if err != nil {
		return err
	}
	defer s.closer()

	ctrl := s.controller(playback.Options{})
	defer ctrl.Close()

	preset := s.cfg.Preset
	if len(s.cfg.Array) > 0 {
		preset = ""
	}
	s.log.Info("starting interactive view", "algorithms", len(s.algs), "length", len(s.array), "preset", preset)

	return viz.Run(ctrl, viz.Options{
		Presets: s.cfg.Catalog(),
		Preset:  preset,
		Theme:   viz.GetTheme(s.cfg.Theme),
		Logger:  s.log,
	})
}

func runPlayback(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, false)
	if err != nil {
		return err
	}
	defer s.closer()

	algs := s.algs
	if len(args) > 0 {
		algs = make([]sorting.Algorithm, 0, len(args))
		for _, name := range args {
			alg, err := sorting.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			algs = append(algs, alg)
		}
	}

	changed := make(chan struct{}, 1)
	ctrl := s.controller(playback.Options{
		Algorithms: algs,
		OnChange: func(sorting.Algorithm) {
			select {
			case changed <- struct{}{}:
			default:
			}
		},
	})
	defer ctrl.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := ctrl.StartAll(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	theme := viz.GetTheme(s.cfg.Theme)
	renderFrame(out, ctrl, theme)
	for ctrl.AnyRunning() {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			renderFrame(out, ctrl, theme)
		}
	}
	renderFrame(out, ctrl, theme)
	return nil
}

func renderFrame(w io.Writer, ctrl *playback.Controller, theme viz.Theme) {
	var b strings.Builder
	b.WriteString("\033[H\033[2J")
	for _, st := range ctrl.Statuses() {
		info, _ := sorting.Info(st.Algorithm)
		fmt.Fprintf(&b, "%s  %s  %s  cmp %d  swp %d\n",
			info.Name, viz.PhaseLabel(st.Phase), st.Progress(), st.Stats.Comparisons, st.Stats.Swaps)
		b.WriteString(viz.RenderBars(st.Snapshot, 6, viz.ColumnWidth(len(st.Snapshot.Array), 60), theme, st.Phase == playback.PhaseComplete))
		fmt.Fprintf(&b, "\n%s\n\n", viz.Subtle.Render(st.Snapshot.Description))
	}
	fmt.Fprint(w, b.String())
}

// generate runs one algorithm over the configured input.
func generate(cmd *cobra.Command, name string) (*settings, sorting.Algorithm, sorting.Trace, sorting.Stats, error) {
	s, err := loadSettings(cmd, false)
	if err != nil {
		return nil, 0, nil, sorting.Stats{}, err
	}
	alg, err := sorting.ParseAlgorithm(name)
	if err != nil {
		s.closer()
		return nil, 0, nil, sorting.Stats{}, err
	}
	trace, stats, err := sorting.Generate(alg, s.array)
	if err != nil {
		s.closer()
		return nil, 0, nil, sorting.Stats{}, err
	}
	s.log.Debug("trace generated", "algorithm", alg, "steps", len(trace), "elapsed", stats.Time)
	return s, alg, trace, stats, nil
}

func printTrace(cmd *cobra.Command, args []string) error {
	s, alg, trace, stats, err := generate(cmd, args[0])
	if err != nil {
		return err
	}
	defer s.closer()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s on %v\n\n", alg, s.array)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOP\tARRAY\tCOMPARING\tSWAPPED\tDESCRIPTION")
	for i, snap := range trace {
		fmt.Fprintf(w, "%d\t%s\t%v\t%v\t%v\t%s\n", i, snap.Op, snap.Array, snap.Comparing, snap.Swapped, snap.Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\ncomparisons: %d  swaps: %d  steps: %d  time: %.3fms\n",
		stats.Comparisons, stats.Swaps, len(trace), stats.Millis())
	return nil
}

func benchPresets(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, false)
	if err != nil {
		return err
	}
	defer s.closer()

	var jobs []sorting.Job
	for _, p := range s.cfg.Catalog() {
		for _, alg := range s.algs {
			jobs = append(jobs, sorting.Job{Algorithm: alg, Input: p.Array, Label: p.Name})
		}
	}

	start := time.Now()
	results, err := sorting.GenerateBatch(cmd.Context(), jobs)
	if err != nil {
		return err
	}
	s.log.Debug("batch generated", "jobs", len(jobs), "elapsed", time.Since(start))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tALGORITHM\tN\tCOMPARISONS\tSWAPS\tSTEPS\tTIME")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%v\n",
			r.Label, r.Algorithm, len(r.Input), r.Stats.Comparisons, r.Stats.Swaps, len(r.Trace), r.Stats.Time)
	}

	return w.Flush()
}

func plotTrace(cmd *cobra.Command, args []string) error {
	s, alg, trace, stats, err := generate(cmd, args[0])
	if err != nil {
		return err
	}
	defer s.closer()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "algorithm: %s\n", alg)
	fmt.Fprintf(out, "steps: %d\n\n", len(trace))

	comparisons, swaps := export.Cumulative(trace)
	series := []struct {
		data    []float64
		caption string
	}{
		{comparisons, fmt.Sprintf("comparisons (total %d)", stats.Comparisons)},
		{swaps, fmt.Sprintf("swaps (total %d)", stats.Swaps)},
	}
	for _, sr := range series {
		graph := asciigraph.Plot(sr.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(sr.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func showInfo(cmd *cobra.Command, args []string) error {
	algs := sorting.All()
	if len(args) == 1 {
		alg, err := sorting.ParseAlgorithm(args[0])
		if err != nil {
			return err
		}
		algs = []sorting.Algorithm{alg}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tBEST\tAVERAGE\tWORST\tSPACE\tSTABLE\tDESCRIPTION")
	for _, alg := range algs {
		info, ok := sorting.Info(alg)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\t%s\n",
			info.Name, info.Time.Best, info.Time.Average, info.Time.Worst, info.Space, info.Stable, info.Description)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, false)
	if err != nil {
		return err
	}
	defer s.closer()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tARRAY")
	for _, p := range s.cfg.Catalog() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Description, config.FormatArray(p.Array))
	}
	return w.Flush()
}

// output opens --out, or returns stdout with a no-op close.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	s, alg, trace, stats, err := generate(cmd, args[0])
	if err != nil {
		return err
	}
	defer s.closer()

	w, closeOut, err := output(cmd)
	if err != nil {
		return err
	}
	doc := export.NewDocument(alg, s.array, trace, stats)
	if err := export.WriteJSON(w, doc); err != nil {
		closeOut()
		return err
	}
	s.log.Info("exported trace", "id", doc.ID, "format", "json", "steps", doc.Steps)
	return closeOut()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	s, _, trace, _, err := generate(cmd, args[0])
	if err != nil {
		return err
	}
	defer s.closer()

	w, closeOut, err := output(cmd)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(w, trace); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	s, _, trace, _, err := generate(cmd, args[0])
	if err != nil {
		return err
	}
	defer s.closer()

	var svg string
	switch {
	case step == -2:
		svg = export.ProgressToSVG(trace, width, height)
	case step == -1:
		svg = export.SnapshotToSVG(trace.Final(), width, height)
	case step >= 0 && step < len(trace):
		svg = export.SnapshotToSVG(trace[step], width, height)
	default:
		return fmt.Errorf("step %d out of range [0, %d)", step, len(trace))
	}

	w, closeOut, err := output(cmd)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, svg); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

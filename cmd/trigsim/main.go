package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"slices"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trigsim/internal/analysis"
	"github.com/san-kum/trigsim/internal/anim"
	"github.com/san-kum/trigsim/internal/config"
	"github.com/san-kum/trigsim/internal/export"
	"github.com/san-kum/trigsim/internal/logging"
	"github.com/san-kum/trigsim/internal/metrics"
	"github.com/san-kum/trigsim/internal/rotation"
	"github.com/san-kum/trigsim/internal/scene"
	"github.com/san-kum/trigsim/internal/storage"
	"github.com/san-kum/trigsim/internal/system"
	"github.com/san-kum/trigsim/internal/theme"
	"github.com/san-kum/trigsim/internal/trig"
	"github.com/san-kum/trigsim/internal/tui"
	"github.com/san-kum/trigsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	verbose bool
	// Config file
	configFile string
	frameRate  int
	themeName  string
	rateName   string
	// Outputs
	svgDir   string
	pngDir   string
	gifPath  string
	gifEvery int
	mp4Path  string
	watch    bool
	noStore  bool
	jsonOut  string
	// frame command
	theta    float64
	frameSVG string
)

const defaultPreset = "sine"

// main registers commands and flags and executes the root command. It
// exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "trigsim",
		Short: "unit circle trigonometry animations",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetLogger(logging.NewText(os.Stderr, verbose))
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".trigsim", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "render a script",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScript,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().StringVar(&svgDir, "svg", "", "write numbered SVG frames to this directory")
	runCmd.Flags().StringVar(&pngDir, "png", "", "write numbered PNG frames to this directory")
	runCmd.Flags().StringVar(&gifPath, "gif", "", "write an animated GIF")
	runCmd.Flags().IntVar(&gifEvery, "gif-every", 2, "keep one frame in n for the GIF")
	runCmd.Flags().StringVar(&mp4Path, "mp4", "", "write an MP4 video (needs ffmpeg)")
	runCmd.Flags().BoolVar(&watch, "watch", false, "draw frames in the terminal while rendering")
	runCmd.Flags().BoolVar(&noStore, "no-store", false, "do not save the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&jsonOut, "out", "o", "", "output file (default stdout)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "play a script in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)

	frameCmd := &cobra.Command{
		Use:   "frame [variant]",
		Short: "print the geometry and annotation of one angle",
		Args:  cobra.ExactArgs(1),
		RunE:  printFrame,
	}
	frameCmd.Flags().Float64Var(&theta, "theta", 0.5, "angle in radians")
	frameCmd.Flags().StringVar(&frameSVG, "svg", "", "also write the frame as SVG")
	frameCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tSTEPS\tDURATION")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				script, err := cfg.Script()
				if err != nil {
					fmt.Fprintf(w, "%s\t%d\tinvalid: %v\n", name, len(cfg.Steps), err)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%v\n", name, stepSummary(script), script.Duration())
			}
			w.Flush()
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range theme.Names() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportJSONCmd, analyzeCmd, liveCmd, frameCmd, presetsCmd, themesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().StringVar(&rateName, "rate", config.DefaultRate, "rate function ("+fmt.Sprint(anim.RateNames())+")")
}

// loadConfig resolves the preset, then the config file, then flags that
// were set explicitly.
func loadConfig(cmd *cobra.Command, args []string) (string, *config.Config, error) {
	name := defaultPreset
	if len(args) > 0 {
		name = args[0]
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return "", nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return "", nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
		if len(args) == 0 {
			name = "custom"
		}
	}

	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if cmd.Flags().Changed("theme") {
		if !slices.Contains(theme.Names(), themeName) {
			return "", nil, fmt.Errorf("unknown theme: %s (available: %v)", themeName, theme.Names())
		}
		cfg.Theme = themeName
	}
	if cmd.Flags().Changed("rate") {
		cfg.Rate = rateName
	}
	if err := cfg.Validate(); err != nil {
		return "", nil, err
	}
	return name, cfg, nil
}

// newPlayer builds a scene for cfg and a player over it with the default
// metrics attached.
func newPlayer(cfg *config.Config) (*anim.Player, *anim.Script, error) {
	m, err := cfg.Mapper()
	if err != nil {
		return nil, nil, err
	}
	sc, err := scene.New(scene.Options{
		Mapper:       m,
		InitialAngle: cfg.InitialAngle,
		Buff:         cfg.Buff,
		Theme:        cfg.GetTheme(),
	})
	if err != nil {
		return nil, nil, err
	}
	p, err := anim.NewPlayer(sc, cfg.FPS)
	if err != nil {
		return nil, nil, err
	}
	rate, err := cfg.RateFunc()
	if err != nil {
		return nil, nil, err
	}
	p.SetRate(rate)
	for _, mt := range metrics.Defaults() {
		p.AddMetric(mt)
	}
	script, err := cfg.Script()
	if err != nil {
		return nil, nil, err
	}
	return p, script, nil
}

func runScript(cmd *cobra.Command, args []string) error {
	preset, cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	p, script, err := newPlayer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	th := cfg.GetTheme()
	var closers []io.Closer
	closeAll := func() error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c.Close())
		}
		closers = nil
		return errors.Join(errs...)
	}
	defer closeAll()

	rec := storage.NewRecorder()
	p.AddObserver(rec)

	if svgDir != "" {
		fw, err := export.NewFrameWriter(ctx, svgDir, export.FormatSVG, th, cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		p.AddObserver(fw)
		closers = append(closers, fw)
	}
	if pngDir != "" {
		fw, err := export.NewFrameWriter(ctx, pngDir, export.FormatPNG, th, cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		p.AddObserver(fw)
		closers = append(closers, fw)
	}
	if gifPath != "" {
		gw := export.NewGIFWriter(gifPath, th, cfg.Width, cfg.Height, cfg.FPS, gifEvery)
		p.AddObserver(gw)
		closers = append(closers, gw)
	}
	if mp4Path != "" {
		vw, err := export.NewVideoWriter(ctx, mp4Path, th, cfg.Width, cfg.Height, cfg.FPS)
		if err != nil {
			return err
		}
		p.AddObserver(vw)
		closers = append(closers, vw)
	}
	if watch {
		lr := tui.NewLiveRenderer(os.Stdout, th, 15)
		lr.Start()
		defer lr.Stop()
		p.AddObserver(lr)
	}

	fmt.Printf("running %s (%d steps, %v)...\n", preset, len(script.Steps), script.Duration())
	logging.Logger().Info("run", "preset", preset, "workers", system.Workers(), "fps", cfg.FPS, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	start := time.Now()

	if err := script.Run(ctx, p); err != nil {
		if cerr := closeAll(); cerr != nil {
			logging.Logger().Warn("close outputs", "err", cerr)
		}
		return err
	}
	if err := closeAll(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("frames: %d\n", p.Frames())

	if !noStore {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		steps := make([]string, len(script.Steps))
		for i, s := range script.Steps {
			steps[i] = s.Name()
		}
		runID, err := st.Save(storage.Run{
			Preset:  preset,
			Theme:   th.Name,
			FPS:     cfg.FPS,
			Steps:   steps,
			Metrics: p.Metrics(),
			Samples: rec.Samples(),
		})
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	fmt.Println("\nmetrics:")
	printMetrics(p.Metrics())
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

func stepSummary(s *anim.Script) string {
	out := ""
	for i, st := range s.Steps {
		if i > 0 {
			out += ","
		}
		out += st.Name()
	}
	return out
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tTHEME\tFPS\tFRAMES\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Theme,
			run.FPS,
			run.Frames,
			len(run.Steps),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	values := storage.Values(samples)
	if len(values) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(samples))

	thetas := make([]float64, 0, len(values))
	for _, s := range samples {
		if s.Variant != "" {
			thetas = append(thetas, s.Theta)
		}
	}

	for _, series := range []struct {
		caption string
		data    []float64
	}{
		{"value (clipped to ±5)", clip(values, 5)},
		{"theta (radians)", thetas},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func clip(data []float64, limit float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = math.Max(-limit, math.Min(limit, v))
	}
	return out
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if jsonOut == "" {
		return st.WriteJSON(args[0], os.Stdout)
	}
	if err := st.ExportJSON(args[0], jsonOut); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", jsonOut)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	var data []float64
	for _, s := range samples {
		if s.Variant != "" && s.Defined {
			data = append(data, s.Value)
		}
	}
	if len(data) < 2 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("preset: %s\n\n", meta.Preset)

	ps := analysis.PowerSpectrum(data)
	plotData := ps
	if len(ps) > 8 {
		plotData = ps[:len(ps)/4]
	}

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (value)"),
	)
	fmt.Println(graph)
	fmt.Println()

	sum := analysis.Summarize(data)
	fmt.Printf("dominant cycles: %d\n", analysis.DominantCycles(data))
	fmt.Printf("samples: %d\n", sum.Count)
	fmt.Printf("min: %.4f  max: %.4f  mean: %.4f  rms: %.4f\n", sum.Min, sum.Max, sum.Mean, sum.RMS)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	// Logs would tear the alternate screen.
	logging.SetLogger(nil)

	src := func() (*anim.Player, *anim.Script, error) { return newPlayer(cfg) }
	m := viz.NewModel(src, cfg.GetTheme(), cfg.FPS)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func printFrame(cmd *cobra.Command, args []string) error {
	v, err := trig.ParseVariant(args[0])
	if err != nil {
		return err
	}
	cfg := config.DefaultConfig()
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	m, err := cfg.Mapper()
	if err != nil {
		return err
	}

	d := rotation.Describe(v)
	fp := trig.Compute(theta, v, m)
	// Any progress past the start may carry a brace.
	spec := d.Annotate(1, fp, m.Unit(), cfg.Buff)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "variant\t%s (%s)\n", v, v.Short())
	fmt.Fprintf(w, "theta\t%.6f rad (%.2f°)\n", fp.Theta, fp.Theta*180/math.Pi)
	fmt.Fprintf(w, "x, y\t%.6f, %.6f\n", fp.X, fp.Y)
	fmt.Fprintf(w, "circle point\t%.4f, %.4f\n", fp.Circle.X, fp.Circle.Y)
	fmt.Fprintf(w, "x foot\t%.4f, %.4f\n", fp.FootX.X, fp.FootX.Y)
	fmt.Fprintf(w, "y foot\t%.4f, %.4f\n", fp.FootY.X, fp.FootY.Y)
	if fp.HasIntercept {
		fmt.Fprintf(w, "intercept\t%.4f, %.4f\n", fp.Intercept.X, fp.Intercept.Y)
	}
	if fp.Defined {
		fmt.Fprintf(w, "value\t%.6f\n", fp.Value)
	} else {
		fmt.Fprintf(w, "value\tundefined\n")
	}
	if spec != nil {
		fmt.Fprintf(w, "brace\t%.4f, %.4f -> %.4f, %.4f\n", spec.From.X, spec.From.Y, spec.To.X, spec.To.Y)
		fmt.Fprintf(w, "direction\t%.4f, %.4f\n", spec.Direction.X, spec.Direction.Y)
		fmt.Fprintf(w, "buff\t%.4f\n", spec.Buff)
		fmt.Fprintf(w, "label\t%s\n", spec.Label)
	} else {
		fmt.Fprintf(w, "brace\tnone\n")
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if frameSVG == "" {
		return nil
	}
	sc, err := scene.New(scene.Options{Mapper: m, InitialAngle: theta, Buff: cfg.Buff, Theme: cfg.GetTheme()})
	if err != nil {
		return err
	}
	if err := sc.AddShapes(v, d.NewSlots(fp)); err != nil {
		return err
	}
	if spec != nil {
		sc.SetAnnotation(spec.Brace(m.Unit() * 0.12))
	}
	svg := export.SVG(sc.Snapshot(), cfg.GetTheme(), cfg.Width, cfg.Height)
	if err := os.WriteFile(frameSVG, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", frameSVG)
	return nil
}

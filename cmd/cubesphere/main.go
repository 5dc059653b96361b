package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/cubesphere/internal/automation"
	"github.com/san-kum/cubesphere/internal/config"
	"github.com/san-kum/cubesphere/internal/export"
	"github.com/san-kum/cubesphere/internal/gui"
	"github.com/san-kum/cubesphere/internal/sketch"
	"github.com/san-kum/cubesphere/internal/storage"
	"github.com/san-kum/cubesphere/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	logLevel   string
	logFile    string
	// Per-command frame counts
	frameCount  int
	svgFrames   int
	gifFrames   int
	benchFrames int
	format      string
	// Output
	svgOut    string
	gifOut    string
	outWidth  int
	outHeight int
	cols      int
	rows      int
	theme     string
	gifPath   string
	// Scripted triggers for headless runs
	scenarioFile string
	// Captures
	recordFrames int
	plotColumns  []string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "cubesphere",
})

// main registers the commands and runs the window backend when no
// subcommand is given. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "cubesphere",
		Short:         "animated sphere of colored cubes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return setupLogger(os.Stderr)
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".cubesphere", "data directory for captures")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 uses the config seed or the clock)")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a window",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (default: discard)")
	tuiCmd.Flags().StringVar(&theme, "theme", "blossom", "panel theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	tuiCmd.Flags().StringVar(&gifPath, "gif", "cubesphere.gif", "path for GIF recordings")

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "generate frames headless and print the last one",
		RunE:  runFrame,
	}
	frameCmd.Flags().IntVar(&frameCount, "frames", 1, "number of frames to generate")
	frameCmd.Flags().StringVar(&format, "format", "table", "output format (table, json, csv)")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "write an SVG still",
		RunE:  runSVG,
	}
	svgCmd.Flags().IntVar(&svgFrames, "frames", 1, "number of frames to generate")
	svgCmd.Flags().StringVar(&svgOut, "out", "cubesphere.svg", "output file")
	svgCmd.Flags().IntVar(&outWidth, "width", 800, "image width")
	svgCmd.Flags().IntVar(&outHeight, "height", 800, "image height")

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "render frames to an animated GIF",
		RunE:  runGIF,
	}
	gifCmd.Flags().IntVar(&gifFrames, "frames", 120, "number of frames to record")
	gifCmd.Flags().StringVar(&gifOut, "out", "cubesphere.gif", "output file")
	gifCmd.Flags().IntVar(&cols, "cols", 80, "canvas columns")
	gifCmd.Flags().IntVar(&rows, "rows", 40, "canvas rows")
	gifCmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario file of scheme/resize triggers (yaml)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s scheme=%-6s size=%-4g radius=%-4g step=%g\n",
					name, p.Scheme, p.CubeSize, p.Radius, p.PhaseStep)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame generation",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 10000, "frames per pass")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "generate frames headless and store their trace",
		RunE:  recordCapture,
	}
	recordCmd.Flags().IntVar(&recordFrames, "frames", 720, "number of frames to record")
	recordCmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario file of scheme/resize triggers (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list captures",
		RunE:  listCaptures,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [capture_id]",
		Short: "plot a capture trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotCapture,
	}
	plotCmd.Flags().StringSliceVar(&plotColumns, "columns", []string{"hue", "saturation", "brightness"},
		"trace columns to plot ("+strings.Join(storage.Columns()[1:], ", ")+")")

	rootCmd.AddCommand(guiCmd, tuiCmd, frameCmd, svgCmd, gifCmd, presetsCmd, configCmd, benchCmd,
		recordCmd, listCmd, plotCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// setupLogger points the logger at w and applies --log-level.
func setupLogger(w io.Writer) error {
	logger.SetOutput(w)
	if logLevel == "" {
		return nil
	}
	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", logLevel, err)
	}
	logger.SetLevel(lvl)
	return nil
}

// loadConfig resolves settings: defaults, then preset, then config file,
// then flags.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" && !config.ApplyPreset(cfg, preset) {
		return nil, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(config.ListPresets(), ", "))
	}
	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logLevel == "" && cfg.LogLevel != "" {
		lvl, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: log_level %q", config.ErrInvalidConfig, cfg.LogLevel)
		}
		logger.SetLevel(lvl)
	}
	return cfg, nil
}

// resolveSeed returns the configured seed, or one from the clock when unset.
func resolveSeed(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// newGenerator builds the sketch state from a validated config.
func newGenerator(cfg *config.Config) (*sketch.Generator, error) {
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	s := resolveSeed(cfg)
	cfg.Seed = s
	logger.Debug("sketch ready", "seed", s, "scheme", params.Scheme, "cube_size", params.CubeSize)
	return sketch.NewGenerator(sketch.NewState(params, rand.New(rand.NewSource(s)))), nil
}

func setup() (*config.Config, *sketch.Generator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	gen, err := newGenerator(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, gen, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, gen, err := setup()
	if err != nil {
		return err
	}
	gui.Run(gen, gui.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		FPS:    cfg.FPS,
		Logger: logger,
	})
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	// The alt screen owns stderr while the program runs.
	logger.SetOutput(out)
	defer logger.SetOutput(os.Stderr)

	cfg, gen, err := setup()
	if err != nil {
		return err
	}
	return viz.Run(gen, viz.Options{
		FPS:     cfg.FPS,
		GIFPath: gifPath,
		Theme:   theme,
		Logger:  logger,
	})
}

// generate advances the generator n times and returns the last frame.
func generate(gen *sketch.Generator, n int) (sketch.Frame, error) {
	if n < 1 {
		return sketch.Frame{}, fmt.Errorf("frames must be at least 1, got %d", n)
	}
	var f sketch.Frame
	for i := 0; i < n; i++ {
		f = gen.Generate()
	}
	return f, nil
}

func runFrame(cmd *cobra.Command, args []string) error {
	_, gen, err := setup()
	if err != nil {
		return err
	}
	f, err := generate(gen, frameCount)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return export.WriteFrameJSON(os.Stdout, f)
	case "csv":
		return export.WriteFrameCSV(os.Stdout, f)
	case "table":
		return printFrame(os.Stdout, f)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func printFrame(w io.Writer, f sketch.Frame) error {
	s := f.State
	fmt.Fprintf(w, "frame %d  phase %.1f  scheme %s  base hue %.1f  cube size %.1f  filled %d/%d\n\n",
		f.Index, s.Phase, s.Scheme, s.BaseHue, s.CubeSize, f.FilledCount(), len(f.Cubes))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OUTER\tINNER\tHUE\tSAT\tBRI\tFILLED\tX\tY\tZ")
	for _, c := range f.Cubes {
		p := c.Center()
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.2f\t%.2f\t%v\t%.1f\t%.1f\t%.1f\n",
			c.Cell.Outer, c.Cell.Inner, c.Color.H, c.Color.S, c.Color.B, c.Filled, p.X(), p.Y(), p.Z())
	}
	return tw.Flush()
}

func runSVG(cmd *cobra.Command, args []string) error {
	_, gen, err := setup()
	if err != nil {
		return err
	}
	f, err := generate(gen, svgFrames)
	if err != nil {
		return err
	}

	out, err := os.Create(svgOut)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := export.FrameSVG(out, f, viz.NewCamera(nil), outWidth, outHeight); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	logger.Info("svg written", "path", svgOut, "frame", f.Index, "width", outWidth, "height", outHeight)
	return nil
}

// scriptedFrames generates n frames, firing the --scenario triggers if one
// was given.
func scriptedFrames(ctx context.Context, gen *sketch.Generator, n int) ([]sketch.Frame, error) {
	var sc *automation.Scenario
	if scenarioFile != "" {
		var err error
		if sc, err = automation.LoadScenario(scenarioFile); err != nil {
			return nil, fmt.Errorf("load scenario: %w", err)
		}
		logger.Info("scenario loaded", "name", sc.Name, "steps", len(sc.Steps))
	}
	return automation.RunScenario(ctx, sc, gen, n)
}

func runGIF(cmd *cobra.Command, args []string) error {
	cfg, gen, err := setup()
	if err != nil {
		return err
	}
	if cols < 1 || rows < 1 {
		return fmt.Errorf("%w: %dx%d", export.ErrBadSize, cols, rows)
	}

	frames, err := scriptedFrames(cmd.Context(), gen, gifFrames)
	if err != nil {
		return err
	}
	canvases, err := viz.RenderBatch(cmd.Context(), frames, viz.NewCamera(nil), cols, rows)
	if err != nil {
		return err
	}
	rec := viz.NewGIFRecorder(gen.State().Params().Background.RGBA(), cfg.FPS)
	for _, c := range canvases {
		rec.Capture(c)
	}
	if err := rec.Save(gifOut); err != nil {
		return fmt.Errorf("write gif: %w", err)
	}
	logger.Info("gif written", "path", gifOut, "frames", rec.Len())
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "cubesphere.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	cfg := config.DefaultConfig()
	if preset != "" && !config.ApplyPreset(cfg, preset) {
		return fmt.Errorf("unknown preset %q", preset)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	logger.Info("config written", "path", path)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	_, gen, err := setup()
	if err != nil {
		return err
	}
	if benchFrames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", benchFrames)
	}

	fmt.Printf("benchmarking %d frames per pass\n\n", benchFrames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PASS\tFRAMES\tTIME\tFRAMES/SEC\tCUBES/SEC")

	for pass := 1; pass <= 3; pass++ {
		start := time.Now()
		cubes := 0
		for i := 0; i < benchFrames; i++ {
			cubes += len(gen.Generate().Cubes)
		}
		elapsed := time.Since(start)
		fps := float64(benchFrames) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\t%.0f\n", pass, benchFrames, elapsed.Round(time.Microsecond), fps, float64(cubes)/elapsed.Seconds())
	}
	return w.Flush()
}

func recordCapture(cmd *cobra.Command, args []string) error {
	cfg, gen, err := setup()
	if err != nil {
		return err
	}
	frames, err := scriptedFrames(cmd.Context(), gen, recordFrames)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(cfg.Seed, frames)
	if err != nil {
		return fmt.Errorf("save capture: %w", err)
	}
	logger.Info("capture saved", "id", id, "frames", len(frames), "dir", dataDir)
	fmt.Println(id)
	return nil
}

func listCaptures(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	captures, err := st.List()
	if err != nil {
		return err
	}

	if len(captures) == 0 {
		fmt.Println("no captures found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSCHEME\tFRAMES\tSIZE\tSTEP\tSEED")
	for _, c := range captures {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f\t%g\t%d\n",
			c.ID,
			c.Timestamp.Format("2006-01-02 15:04:05"),
			c.Scheme,
			c.Frames,
			c.CubeSize,
			c.PhaseStep,
			c.Seed,
		)
	}
	return w.Flush()
}

func plotCapture(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(id)
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("capture: %s\n", meta.ID)
	fmt.Printf("scheme: %s\n", meta.Scheme)
	fmt.Printf("frames: %d\n\n", len(trace))

	for _, col := range plotColumns {
		data, err := storage.Column(trace, col)
		if err != nil {
			return err
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption(col+" vs frame"),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/spinlab/internal/analysis"
	"github.com/san-kum/spinlab/internal/anneal"
	"github.com/san-kum/spinlab/internal/config"
	"github.com/san-kum/spinlab/internal/export"
	"github.com/san-kum/spinlab/internal/observe"
	"github.com/san-kum/spinlab/internal/render"
	"github.com/san-kum/spinlab/internal/schedule"
	"github.com/san-kum/spinlab/internal/storage"
	"github.com/san-kum/spinlab/internal/tui"
	"github.com/san-kum/spinlab/internal/zn"
)

var (
	dataDir string
	verbose bool

	size        int
	states      int
	field       float64
	seed        uint64
	schedKind   string
	tempFrom    float64
	tempTo      float64
	steps       int
	replicas    int
	verifyEvery int

	configFile string
	preset     string

	gifPath    string
	videoPath  string
	framePath  string
	frameEvery int
	cellSize   int
	fps        int

	outDir  string
	withSVG bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spinlab",
		Short: "Zn clock model Monte Carlo lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDir, "run storage directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "anneal a lattice over a temperature schedule",
		RunE:  runAnneal,
	}
	addModelFlags(runCmd)
	runCmd.Flags().IntVar(&replicas, "replicas", 1, "independent replicas")
	runCmd.Flags().IntVar(&verifyEvery, "verify-every", config.DefaultVerifyEvery, "sweeps between consistency checks (0 disables)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&gifPath, "gif", "", "record the run as an animated gif")
	runCmd.Flags().StringVar(&videoPath, "video", "", "record the run as an mjpeg avi")
	runCmd.Flags().StringVar(&framePath, "frame", "", "save the final lattice as a png")
	runCmd.Flags().IntVar(&frameEvery, "frame-every", 1, "sweeps between recorded frames")
	runCmd.Flags().IntVar(&cellSize, "cell-size", config.DefaultCellSize, "pixels per lattice cell")
	runCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "animation frame rate")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "anneal with live terminal visualization",
		RunE:  runLive,
	}
	addModelFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().StringVar(&gifPath, "gif", "spinlab.gif", "gif path for in-view recording")
	liveCmd.Flags().IntVar(&cellSize, "cell-size", config.DefaultCellSize, "pixels per recorded cell")
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "sweeps per second")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run observables in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "render run observables as png charts",
		Args:  cobra.ExactArgs(1),
		RunE:  chartRun,
	}
	chartCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	chartCmd.Flags().BoolVar(&withSVG, "svg", false, "also write svg response curves")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spectral analysis of the magnetization series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [schedule1] [schedule2] ...",
		Short: "race schedule shapes on identical parameters",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareSchedules,
	}
	addModelFlags(compareCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure sweep throughput over lattice sizes",
		RunE:  benchSweeps,
	}
	benchCmd.Flags().IntVar(&states, "states", config.DefaultStates, "clock states")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run observables to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, chartCmd, analyzeCmd,
		compareCmd, benchCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "lattice side length")
	cmd.Flags().IntVar(&states, "states", config.DefaultStates, "clock states")
	cmd.Flags().Float64Var(&field, "field", 0, "external field coupling to state 1")
	cmd.Flags().Uint64Var(&seed, "seed", config.DefaultSeed, "random seed")
	cmd.Flags().StringVar(&schedKind, "schedule", "linear", "schedule kind (linear, geometric, constant)")
	cmd.Flags().Float64Var(&tempFrom, "from", config.DefaultFrom, "initial temperature")
	cmd.Flags().Float64Var(&tempTo, "to", config.DefaultTo, "final temperature")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "schedule length in sweeps")
}

func newLogger() *log.Logger {
	logger := log.New(os.Stderr)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// resolveConfig layers preset, config file and changed flags, in that
// order, onto the defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("size") {
		cfg.Lattice.Size = size
	}
	if cmd.Flags().Changed("states") {
		cfg.Lattice.States = states
	}
	if cmd.Flags().Changed("field") {
		cfg.Lattice.Field = field
	}
	if cmd.Flags().Changed("seed") {
		cfg.Lattice.Seed = seed
	}
	if cmd.Flags().Changed("schedule") {
		cfg.Schedule.Kind = schedKind
	}
	if cmd.Flags().Changed("from") {
		cfg.Schedule.From = tempFrom
	}
	if cmd.Flags().Changed("to") {
		cfg.Schedule.To = tempTo
	}
	if cmd.Flags().Changed("steps") {
		cfg.Schedule.Steps = steps
	}
	if cmd.Flags().Changed("replicas") {
		cfg.Run.Replicas = replicas
	}
	if cmd.Flags().Changed("verify-every") {
		cfg.Run.VerifyEvery = verifyEvery
	}
	if cmd.Flags().Changed("gif") {
		cfg.Output.GIF = gifPath
	}
	if cmd.Flags().Changed("video") {
		cfg.Output.Video = videoPath
	}
	if cmd.Flags().Changed("frame-every") {
		cfg.Output.FrameEvery = frameEvery
	}
	if cmd.Flags().Changed("cell-size") {
		cfg.Output.CellSize = cellSize
	}
	if cmd.Flags().Changed("fps") {
		cfg.Output.FPS = fps
	}
	return cfg, nil
}

func runAnneal(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Run.Replicas > 1 {
		return runEnsemble(cfg)
	}

	model, sched, err := cfg.Build()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	acc := observe.NewAccumulator(model.Sites())
	runner := anneal.New(model, acc, anneal.Config{VerifyEvery: cfg.Run.VerifyEvery}, newLogger())

	if cfg.Output.GIF != "" {
		rec := render.NewGIFRecorder(cfg.Lattice.States, cfg.Output.CellSize, cfg.Output.FrameEvery, cfg.Output.FPS)
		runner.AddObserver(rec)
		defer func() {
			if rec.Frames() > 0 {
				if err := rec.Save(cfg.Output.GIF); err != nil {
					fmt.Fprintf(os.Stderr, "gif save failed: %v\n", err)
				} else {
					fmt.Printf("gif: %s\n", cfg.Output.GIF)
				}
			}
		}()
	}
	if cfg.Output.Video != "" {
		rec, err := render.NewVideoRecorder(cfg.Output.Video,
			cfg.Lattice.Size, cfg.Lattice.States, cfg.Output.CellSize, cfg.Output.FrameEvery, cfg.Output.FPS)
		if err != nil {
			return err
		}
		runner.AddObserver(rec)
		defer func() {
			if err := rec.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "video close failed: %v\n", err)
			} else {
				fmt.Printf("video: %s\n", cfg.Output.Video)
			}
		}()
	}

	fmt.Printf("annealing %dx%d z%d lattice over %d sweeps...\n",
		cfg.Lattice.Size, cfg.Lattice.Size, cfg.Lattice.States, len(sched))

	result, err := runner.Run(context.Background(), sched)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg.Lattice.Size, cfg.Lattice.States, cfg.Lattice.Field, cfg.Lattice.Seed, result)
	if err != nil {
		return err
	}

	if framePath != "" {
		if err := render.WritePNG(framePath, result.Final, cfg.Output.CellSize, render.Palette(cfg.Lattice.States)); err != nil {
			return err
		}
		fmt.Printf("frame: %s\n", framePath)
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("sweeps: %d\n", result.Sweeps)
	fmt.Printf("accept ratio: %.3f\n", result.AcceptRatio)
	if n := len(result.Energies); n > 0 {
		fmt.Printf("final energy: %.2f\n", result.Energies[n-1])
		fmt.Printf("final magnetization: %.0f\n", result.Magnetizations[n-1])
	}
	if n := len(result.SpecificHeats); n > 0 {
		fmt.Printf("specific heat: %.6g\n", result.SpecificHeats[n-1])
		fmt.Printf("susceptibility: %.6g\n", result.Susceptibilities[n-1])
	}

	return nil
}

func runEnsemble(cfg *config.Config) error {
	sched, err := cfg.BuildSchedule()
	if err != nil {
		return err
	}

	ens := anneal.Ensemble{
		Params: zn.Params{
			Size:   cfg.Lattice.Size,
			States: cfg.Lattice.States,
			Field:  cfg.Lattice.Field,
			Temp:   sched[0],
			Seed:   cfg.Lattice.Seed,
		},
		Replicas: cfg.Run.Replicas,
		Config:   anneal.Config{VerifyEvery: cfg.Run.VerifyEvery},
	}

	fmt.Printf("annealing %d replicas of a %dx%d z%d lattice over %d sweeps...\n",
		cfg.Run.Replicas, cfg.Lattice.Size, cfg.Lattice.Size, cfg.Lattice.States, len(sched))

	start := time.Now()
	results, err := ens.Run(context.Background(), sched)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REPLICA\tSEED\tFINAL_E\tFINAL_M\tSPEC_HEAT\tSUSCEPT\tACCEPT")
	for i, res := range results {
		n := len(res.Energies)
		if n == 0 {
			continue
		}
		heat, susc := "-", "-"
		if k := len(res.SpecificHeats); k > 0 {
			heat = fmt.Sprintf("%.4g", res.SpecificHeats[k-1])
			susc = fmt.Sprintf("%.4g", res.Susceptibilities[k-1])
		}
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%.0f\t%s\t%s\t%.3f\n",
			i, cfg.Lattice.Seed+uint64(i), res.Energies[n-1], res.Magnetizations[n-1], heat, susc, res.AcceptRatio)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sched, err := cfg.BuildSchedule()
	if err != nil {
		return err
	}

	m, err := tui.NewModel(zn.Params{
		Size:   cfg.Lattice.Size,
		States: cfg.Lattice.States,
		Field:  cfg.Lattice.Field,
		Temp:   sched[0],
		Seed:   cfg.Lattice.Seed,
	}, sched, cfg.Output.CellSize, cfg.Output.FPS, gifPath)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
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
	fmt.Fprintln(w, "ID\tSIZE\tSTATES\tFIELD\tSWEEPS\tACCEPT\tFINAL_E\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%d\t%.3f\t%.2f\t%s\n",
			run.ID,
			run.Size,
			run.States,
			run.Field,
			run.Sweeps,
			run.AcceptRatio,
			run.FinalEnergy,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
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
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series.Energies) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("lattice: %dx%d, %d states\n", meta.Size, meta.Size, meta.States)
	fmt.Printf("samples: %d\n\n", len(series.Energies))

	curves := []struct {
		name string
		data []float64
	}{
		{"energy", series.Energies},
		{"magnetization", series.Magnetizations},
		{"specific heat", series.SpecificHeats},
		{"susceptibility", series.Susceptibilities},
	}
	for _, c := range curves {
		if len(c.data) < 2 {
			continue
		}
		graph := asciigraph.Plot(c.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(c.name+" vs sweep"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func chartRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series.Energies) < 2 {
		return fmt.Errorf("not enough data to chart")
	}

	sweeps := make([]float64, len(series.Sweeps))
	for i, s := range series.Sweeps {
		sweeps[i] = float64(s)
	}

	obsPath := filepath.Join(outDir, runID+"_observables.png")
	if err := export.WriteChartPNG(obsPath, "observables", "sweep", "",
		export.Curve{Name: "energy", Xs: sweeps, Ys: series.Energies, Color: export.ColorEnergy},
		export.Curve{Name: "magnetization", Xs: sweeps, Ys: series.Magnetizations, Color: export.ColorMagnetization},
	); err != nil {
		return err
	}
	fmt.Printf("chart: %s\n", obsPath)

	// Responses are defined from the second sweep on; align them with the
	// temperature tail.
	if len(series.SpecificHeats) > 1 {
		temps := series.Temperatures[len(series.Temperatures)-len(series.SpecificHeats):]
		respPath := filepath.Join(outDir, runID+"_responses.png")
		if err := export.WriteChartPNG(respPath, "response functions", "temperature", "",
			export.Curve{Name: "specific heat", Xs: temps, Ys: series.SpecificHeats, Color: export.ColorSpecificHeat},
			export.Curve{Name: "susceptibility", Xs: temps, Ys: series.Susceptibilities, Color: export.ColorSusceptibility},
		); err != nil {
			return err
		}
		fmt.Printf("chart: %s\n", respPath)

		if withSVG {
			heatPath := filepath.Join(outDir, runID+"_specific_heat.svg")
			if err := export.WriteCurveSVG(heatPath, temps, series.SpecificHeats, 800, 400, "#ffa500"); err != nil {
				return err
			}
			suscPath := filepath.Join(outDir, runID+"_susceptibility.svg")
			if err := export.WriteCurveSVG(suscPath, temps, series.Susceptibilities, 800, 400, "#00b300"); err != nil {
				return err
			}
			fmt.Printf("svg: %s\nsvg: %s\n", heatPath, suscPath)
		}
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series.Magnetizations) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("spectral analysis: %s\n", meta.ID)
	fmt.Printf("lattice: %dx%d, %d states\n\n", meta.Size, meta.Size, meta.States)

	ps := analysis.PowerSpectrum(series.Magnetizations)
	plotData := ps[:len(ps)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("magnetization power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	if period, ok := analysis.DominantPeriod(series.Magnetizations); ok {
		fmt.Printf("dominant period: %.1f sweeps\n", period)
	} else {
		fmt.Println("no dominant oscillation found")
	}

	return nil
}

func compareSchedules(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("comparing schedules on a %dx%d z%d lattice (%.2f -> %.2f, %d sweeps)\n\n",
		cfg.Lattice.Size, cfg.Lattice.Size, cfg.Lattice.States,
		cfg.Schedule.From, cfg.Schedule.To, cfg.Schedule.Steps)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEDULE\tFINAL_E\tFINAL_M\tSPEC_HEAT\tSUSCEPT\tACCEPT\tTIME")

	for _, kind := range args {
		var sched schedule.Schedule
		switch kind {
		case "linear":
			sched = schedule.Linear(cfg.Schedule.From, cfg.Schedule.To, cfg.Schedule.Steps)
		case "geometric":
			sched = schedule.Geometric(cfg.Schedule.From, cfg.Schedule.To, cfg.Schedule.Steps)
		case "constant":
			sched = schedule.Constant(cfg.Schedule.From, cfg.Schedule.Steps)
		default:
			fmt.Fprintf(w, "%s\terror: unknown schedule kind\n", kind)
			continue
		}
		if err := sched.Validate(); err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", kind, err)
			continue
		}

		model, err := zn.New(zn.Params{
			Size:   cfg.Lattice.Size,
			States: cfg.Lattice.States,
			Field:  cfg.Lattice.Field,
			Temp:   sched[0],
			Seed:   cfg.Lattice.Seed,
		})
		if err != nil {
			return err
		}
		acc := observe.NewAccumulator(model.Sites())
		runner := anneal.New(model, acc, anneal.Config{VerifyEvery: cfg.Run.VerifyEvery}, nil)

		start := time.Now()
		result, err := runner.Run(context.Background(), sched)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", kind, err)
			continue
		}

		n := len(result.Energies)
		heat, susc := "-", "-"
		if k := len(result.SpecificHeats); k > 0 {
			heat = fmt.Sprintf("%.4g", result.SpecificHeats[k-1])
			susc = fmt.Sprintf("%.4g", result.Susceptibilities[k-1])
		}
		fmt.Fprintf(w, "%s\t%.2f\t%.0f\t%s\t%s\t%.3f\t%v\n",
			kind, result.Energies[n-1], result.Magnetizations[n-1], heat, susc, result.AcceptRatio, elapsed)
	}

	return w.Flush()
}

func benchSweeps(cmd *cobra.Command, args []string) error {
	sizes := []int{16, 32, 64, 128}
	const sweeps = 50

	fmt.Printf("benchmarking z%d sweeps\n\n", states)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tSITES\tSWEEPS\tTIME\tSWEEPS/SEC\tTRIALS/SEC")

	for _, L := range sizes {
		model, err := zn.New(zn.Params{Size: L, States: states, Temp: 2.0, Seed: 42})
		if err != nil {
			return err
		}

		start := time.Now()
		for i := 0; i < sweeps; i++ {
			model.Sweep()
		}
		elapsed := time.Since(start)

		sweepsPerSec := float64(sweeps) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.1f\t%.0f\n",
			L, L*L, sweeps, elapsed, sweepsPerSec, sweepsPerSec*float64(L*L))
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series.Energies) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"sweep", "temperature", "energy", "magnetization", "specific_heat", "susceptibility"}
	if err := w.Write(header); err != nil {
		return err
	}

	lag := len(series.Energies) - len(series.SpecificHeats)
	for i := range series.Energies {
		row := []string{
			strconv.Itoa(series.Sweeps[i]),
			strconv.FormatFloat(series.Temperatures[i], 'f', 6, 64),
			strconv.FormatFloat(series.Energies[i], 'f', 6, 64),
			strconv.FormatFloat(series.Magnetizations[i], 'f', 0, 64),
		}
		if i < lag {
			row = append(row, "", "")
		} else {
			row = append(row,
				strconv.FormatFloat(series.SpecificHeats[i-lag], 'g', -1, 64),
				strconv.FormatFloat(series.Susceptibilities[i-lag], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	return export.ExportJSONStdout(meta, series)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tSTATES\tFIELD\tSCHEDULE\tSWEEPS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%s %.2f->%.2f\t%d\n",
			name, p.Lattice.Size, p.Lattice.States, p.Lattice.Field,
			p.Schedule.Kind, p.Schedule.From, p.Schedule.To, p.Schedule.Steps)
	}
	return w.Flush()
}

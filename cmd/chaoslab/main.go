package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/jsperk/chaoslab/internal/clock"
	"github.com/jsperk/chaoslab/internal/config"
	"github.com/jsperk/chaoslab/internal/dynamo"
	"github.com/jsperk/chaoslab/internal/integrators"
	"github.com/jsperk/chaoslab/internal/logistic"
	"github.com/jsperk/chaoslab/internal/physics"
	"github.com/jsperk/chaoslab/internal/store"
	"github.com/jsperk/chaoslab/internal/trace"
	"github.com/jsperk/chaoslab/internal/viz"
)

var (
	dataDir string

	dt      float64
	speed   float64
	steps   int
	trail   int
	stepper string

	sigma float64
	rho   float64
	beta  float64
	aConc float64
	bConc float64
	k1    float64
	k2    float64
	k3    float64
	k4    float64

	growthRate float64
	capacity   float64
	initialPop float64
	years      int

	minR       float64
	maxR       float64
	settle     int
	sample     int
	resolution int

	configFile string
	preset     string
	frameRate  int
	axis       int
	noSave     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chaoslab",
		Short: "chaotic and oscillatory system lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chaoslab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "run a system headless and store the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runSystem,
	}
	addSystemFlags(runCmd)
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "tick count")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip storing the run")

	logisticCmd := &cobra.Command{
		Use:   "logistic",
		Short: "run the logistic map year by year",
		RunE:  runLogistic,
	}
	logisticCmd.Flags().Float64Var(&growthRate, "r", config.DefaultGrowthRate, "growth rate")
	logisticCmd.Flags().Float64Var(&capacity, "k", config.DefaultCarryingCapacity, "carrying capacity")
	logisticCmd.Flags().Float64Var(&initialPop, "p0", config.DefaultInitialPop, "initial population")
	logisticCmd.Flags().IntVar(&years, "years", config.DefaultYears, "generations to run")
	logisticCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation",
		Short: "sweep the logistic growth rate and plot the attractor",
		RunE:  runBifurcation,
	}
	bifurcationCmd.Flags().Float64Var(&minR, "min-r", 0.0, "sweep start")
	bifurcationCmd.Flags().Float64Var(&maxR, "max-r", 4.0, "sweep end")
	bifurcationCmd.Flags().Float64Var(&capacity, "k", config.DefaultCarryingCapacity, "carrying capacity")
	bifurcationCmd.Flags().Float64Var(&initialPop, "p0", config.DefaultInitialPop, "initial population")
	bifurcationCmd.Flags().IntVar(&settle, "settle", 1000, "settling generations per rate")
	bifurcationCmd.Flags().IntVar(&sample, "sample", 100, "sampled generations per rate")
	bifurcationCmd.Flags().IntVar(&resolution, "resolution", 1000, "growth-rate slices")
	bifurcationCmd.Flags().BoolVar(&noSave, "no-save", false, "skip storing the sweep")

	liveCmd := &cobra.Command{
		Use:   "live [system]",
		Short: "watch a system evolve in a live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSystemFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&axis, "axis", 0, "state component to plot (trajectory runs)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a stored run's CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(dataDir)
			if err != nil {
				return err
			}
			defer st.Close()
			return st.ExportCSV(args[0], os.Stdout)
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a stored run as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(dataDir)
			if err != nil {
				return err
			}
			defer st.Close()
			return st.ExportJSON(args[0], os.Stdout)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for system: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, logisticCmd, bifurcationCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSystemFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "base timestep")
	cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "step multiplier")
	cmd.Flags().IntVar(&trail, "trail", 0, "trail capacity (0 = system default)")
	cmd.Flags().StringVar(&stepper, "stepper", "", "integrator (default: system's preferred)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	cmd.Flags().Float64Var(&sigma, "sigma", 10.0, "lorenz sigma")
	cmd.Flags().Float64Var(&rho, "rho", 28.0, "lorenz rho")
	cmd.Flags().Float64Var(&beta, "beta", 8.0/3.0, "lorenz beta")
	cmd.Flags().Float64Var(&aConc, "a", 1.0, "brusselator feed concentration A")
	cmd.Flags().Float64Var(&bConc, "b", 3.0, "brusselator feed concentration B")
	cmd.Flags().Float64Var(&k1, "k1", 1.0, "brusselator rate k1")
	cmd.Flags().Float64Var(&k2, "k2", 1.0, "brusselator rate k2")
	cmd.Flags().Float64Var(&k3, "k3", 1.0, "brusselator rate k3")
	cmd.Flags().Float64Var(&k4, "k4", 1.0, "brusselator rate k4")
	cmd.Flags().Float64Var(&growthRate, "r", config.DefaultGrowthRate, "logistic growth rate")
	cmd.Flags().Float64Var(&capacity, "k", config.DefaultCarryingCapacity, "logistic carrying capacity")
	cmd.Flags().Float64Var(&initialPop, "p0", config.DefaultInitialPop, "logistic initial population")
}

// preferredStepper is implemented by systems that declare their scheme.
type preferredStepper interface {
	PreferredStepper() string
}

// buildClock assembles system, stepper and trail from flags, preset and
// config file. CLI flags that were explicitly set win over both.
func buildClock(cmd *cobra.Command, system string) (*clock.Clock, string, error) {
	if preset != "" {
		cfg := config.GetPreset(system, preset)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(system))
		}
		applyRunConfig(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("load config: %w", err)
		}
		applyRunConfig(cmd, cfg)
	}

	var sys dynamo.System
	if system == "logistic" {
		ls, err := logistic.NewSystem(growthRate, capacity, initialPop)
		if err != nil {
			return nil, "", err
		}
		sys = ls
		// One tick is one generation unless the caller insists otherwise.
		if !cmd.Flags().Changed("dt") {
			dt = 1.0
		}
	} else {
		ps, err := physics.ForName(system)
		if err != nil {
			return nil, "", fmt.Errorf("%w (available: %v, logistic)", err, physics.Names())
		}
		sys = ps
	}

	applySystemParams(sys)

	stepperName := stepper
	if stepperName == "" {
		stepperName = "euler"
		if p, ok := sys.(preferredStepper); ok {
			stepperName = p.PreferredStepper()
		}
	}
	integ, err := integrators.ForName(stepperName)
	if err != nil {
		return nil, "", err
	}

	trailCap := trail
	if trailCap <= 0 {
		trailCap = config.DefaultTrail(system)
	}
	buf, err := trace.New(trailCap)
	if err != nil {
		return nil, "", err
	}

	clk, err := clock.New(sys, integ, buf, dt)
	if err != nil {
		return nil, "", err
	}
	clk.SetSpeed(speed)

	return clk, stepperName, nil
}

func applyRunConfig(cmd *cobra.Command, cfg *config.Config) {
	if cfg.Dt > 0 && !cmd.Flags().Changed("dt") {
		dt = cfg.Dt
	}
	if cfg.Speed > 0 && !cmd.Flags().Changed("speed") {
		speed = cfg.Speed
	}
	if cfg.Steps > 0 && !cmd.Flags().Changed("steps") && cmd.Flags().Lookup("steps") != nil {
		steps = cfg.Steps
	}
	if cfg.Trail > 0 && !cmd.Flags().Changed("trail") {
		trail = cfg.Trail
	}
	if cfg.Stepper != "" && !cmd.Flags().Changed("stepper") {
		stepper = cfg.Stepper
	}
	if cfg.Logistic.K > 0 {
		if !cmd.Flags().Changed("r") {
			growthRate = cfg.Logistic.R
		}
		if !cmd.Flags().Changed("k") {
			capacity = cfg.Logistic.K
		}
		if !cmd.Flags().Changed("p0") {
			initialPop = cfg.Logistic.P0
		}
	}
	for name, v := range cfg.Params {
		switch name {
		case "sigma":
			if !cmd.Flags().Changed("sigma") {
				sigma = v
			}
		case "rho":
			if !cmd.Flags().Changed("rho") {
				rho = v
			}
		case "beta":
			if !cmd.Flags().Changed("beta") {
				beta = v
			}
		case "a":
			if !cmd.Flags().Changed("a") {
				aConc = v
			}
		case "b":
			if !cmd.Flags().Changed("b") {
				bConc = v
			}
		case "k1":
			if !cmd.Flags().Changed("k1") {
				k1 = v
			}
		case "k2":
			if !cmd.Flags().Changed("k2") {
				k2 = v
			}
		case "k3":
			if !cmd.Flags().Changed("k3") {
				k3 = v
			}
		case "k4":
			if !cmd.Flags().Changed("k4") {
				k4 = v
			}
		}
	}
}

func applySystemParams(sys dynamo.System) {
	cfg, ok := sys.(dynamo.Configurable)
	if !ok {
		return
	}
	for name, v := range map[string]float64{
		"sigma": sigma, "rho": rho, "beta": beta,
		"a": aConc, "b": bConc,
		"k1": k1, "k2": k2, "k3": k3, "k4": k4,
	} {
		// Only push values the system actually exposes.
		if _, exposed := cfg.GetParams()[name]; exposed {
			cfg.SetParam(name, v)
		}
	}
}

func runSystem(cmd *cobra.Command, args []string) error {
	system := args[0]

	clk, stepperName, err := buildClock(cmd, system)
	if err != nil {
		return err
	}

	fmt.Printf("running %s (%s, dt=%.4g, speed=%.2gx, %d steps)...\n", system, stepperName, dt, speed, steps)
	start := time.Now()

	times := make([]float64, 0, steps+1)
	states := make([]dynamo.State, 0, steps+1)
	times = append(times, clk.T())
	states = append(states, clk.State())

	for i := 0; i < steps; i++ {
		clk.Tick()
		times = append(times, clk.T())
		states = append(states, clk.State())
	}

	elapsed := time.Since(start)
	final := clk.State()

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("final state: %v\n", []float64(final))
	if !final.IsValid() {
		fmt.Println("warning: trajectory diverged to a non-finite state")
	}

	if noSave {
		return nil
	}

	st, err := store.Open(dataDir)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.SaveRun(system, stepperName, dt, speed, times, states)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", id)
	return nil
}

func runLogistic(cmd *cobra.Command, args []string) error {
	if preset != "" {
		cfg := config.GetPreset("logistic", preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets("logistic"))
		}
		if !cmd.Flags().Changed("r") {
			growthRate = cfg.Logistic.R
		}
		if !cmd.Flags().Changed("k") {
			capacity = cfg.Logistic.K
		}
		if !cmd.Flags().Changed("p0") {
			initialPop = cfg.Logistic.P0
		}
		if !cmd.Flags().Changed("years") && cfg.Logistic.Years > 0 {
			years = cfg.Logistic.Years
		}
	}

	m, err := logistic.New(growthRate, capacity, initialPop)
	if err != nil {
		return err
	}

	series := m.Series(years)

	fmt.Printf("logistic map: r=%.3f K=%.0f P0=%.0f\n\n", m.R, m.K, m.P0)
	fmt.Println(asciigraph.Plot(series, asciigraph.Height(12), asciigraph.Width(60), asciigraph.Caption("population per generation")))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tPOPULATION")
	for i, p := range series {
		fmt.Fprintf(w, "%d\t%.4f\n", i, p)
	}
	return w.Flush()
}

func runBifurcation(cmd *cobra.Command, args []string) error {
	cfg := logistic.SweepConfig{
		MinR:       minR,
		MaxR:       maxR,
		K:          capacity,
		P0:         initialPop,
		Settle:     settle,
		Sample:     sample,
		Resolution: resolution,
	}

	fmt.Printf("sweeping r in [%.3f, %.3f] over %d slices...\n", cfg.MinR, cfg.MaxR, cfg.Resolution)
	start := time.Now()

	points, err := logistic.Sweep(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%d points in %v\n\n", len(points), time.Since(start))
	fmt.Println(viz.BifurcationASCII(points, 100, 28))

	if noSave || len(points) == 0 {
		return nil
	}

	st, err := store.Open(dataDir)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.SaveSweep(cfg, points)
	if err != nil {
		return err
	}
	fmt.Printf("sweep id: %s\n", id)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	clk, _, err := buildClock(cmd, args[0])
	if err != nil {
		return err
	}
	return viz.Run(clk, args[0], frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := store.Open(dataDir)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSYSTEM\tSTEPPER\tDT\tROWS\tAGE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.4g\t%d\t%s\n",
			run.ID, run.Kind, run.System, run.Stepper, run.Dt, run.Rows,
			humanize.Time(run.CreatedAt))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st, err := store.Open(dataDir)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	if meta.Kind == store.KindSweep {
		points, err := st.LoadPoints(meta.ID)
		if err != nil {
			return err
		}
		fmt.Println(viz.BifurcationASCII(points, 100, 28))
		return nil
	}

	states, _, err := st.LoadStates(meta.ID)
	if err != nil {
		return err
	}

	series := make([]float64, 0, len(states))
	for _, s := range states {
		if axis < len(s) {
			series = append(series, s[axis])
		}
	}
	if len(series) < 2 {
		return fmt.Errorf("no data for component %d", axis)
	}

	fmt.Println(asciigraph.Plot(series, asciigraph.Height(16), asciigraph.Width(100),
		asciigraph.Caption(fmt.Sprintf("%s x%d", meta.System, axis))))
	return nil
}

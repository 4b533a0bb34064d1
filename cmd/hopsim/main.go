package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/san-kum/hopsim/internal/analysis"
	"github.com/san-kum/hopsim/internal/config"
	"github.com/san-kum/hopsim/internal/experiment"
	"github.com/san-kum/hopsim/internal/export"
	"github.com/san-kum/hopsim/internal/lattice"
	"github.com/san-kum/hopsim/internal/sim"
	"github.com/san-kum/hopsim/internal/solver"
	"github.com/san-kum/hopsim/internal/storage"
	"github.com/san-kum/hopsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	sites      int
	steps      int
	rate       float64
	dt         float64
	stepper    string
	initType   string
	initSite   int
	snapshots  []int
	configFile string
	preset     string
	frameRate  int
	svgOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hopsim",
		Short: "1D diffusion master equation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".hopsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate a hopping run and plot snapshots",
		RunE:  runSimulation,
	}
	addModelFlags(runCmd)
	runCmd.Flags().IntSliceVar(&snapshots, "snapshots", nil, "time indices to plot")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "re-plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntSliceVar(&snapshots, "snapshots", nil, "time indices to plot")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	svgCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export snapshot profiles as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().IntSliceVar(&snapshots, "snapshots", nil, "time indices to render")
	svgCmd.Flags().StringVar(&svgOut, "out", "profiles.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate a run in the terminal",
		RunE:  runLive,
	}
	addModelFlags(liveCmd)
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark steppers across lattice sizes",
		RunE:  benchSteppers,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, svgCmd, presetsCmd, liveCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&sites, "sites", config.DefaultSites, "number of lattice sites")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time points")
	cmd.Flags().Float64Var(&rate, "rate", config.DefaultRate, "hop rate k (1/time)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().StringVar(&stepper, "stepper", "euler", "stepper (euler, parallel)")
	cmd.Flags().StringVar(&initType, "init", "delta", "initial condition (delta, uniform)")
	cmd.Flags().IntVar(&initSite, "site", -1, "delta site (default: middle)")
}

// buildConfig merges preset, config file, and flags, in increasing priority.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
	}

	if cmd.Flags().Changed("sites") {
		cfg.Sites = sites
		cfg.Init.Site = sites/2 - 1
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("rate") {
		cfg.Rate = rate
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("stepper") {
		cfg.Stepper = stepper
	}
	if cmd.Flags().Changed("init") {
		cfg.Init.Type = initType
	}
	if cmd.Flags().Changed("site") {
		cfg.Init.Site = initSite
	}
	if cmd.Flags().Changed("snapshots") {
		cfg.Snapshots = snapshots
	}

	if !solver.IsStable(cfg.Rate, cfg.Dt) {
		fmt.Fprintf(os.Stderr, "warning: k*dt = %.3f exceeds the stability bound 0.5; "+
			"expect negative probabilities (dt <= %.4f is safe)\n",
			cfg.Rate*cfg.Dt, solver.StabilityLimit(cfg.Rate))
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return err
	}

	fmt.Printf("integrating %d sites x %d steps (k=%.3f, dt=%.4f)...\n",
		cfg.Sites, cfg.Steps, cfg.Rate, cfg.Dt)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Rate, cfg.Dt, cfg.Stepper, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("diagnostic: %s\n", result.Diagnostic)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if mix := analysis.MixingStep(result.Field, 0.05); mix >= 0 {
		fmt.Printf("  mixed to uniform (L1 < 0.05) at step %d\n", mix)
	}

	fmt.Println()
	fmt.Print(viz.Snapshots(result.Field, cfg.SnapshotIndices(), cfg.Dt))

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
	fmt.Fprintln(w, "ID\tTIME\tSITES\tSTEPS\tRATE\tDT\tSTEPPER")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3f\t%.4f\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Sites,
			run.Steps,
			run.Rate,
			run.Dt,
			run.Stepper,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	f, _, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	indices := snapshots
	if len(indices) == 0 {
		indices = []int{0, f.Steps() / 2, f.Steps() - 1}
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("sites: %d  steps: %d  k: %.3f  dt: %.4f\n\n",
		meta.Sites, meta.Steps, meta.Rate, meta.Dt)
	fmt.Print(viz.Snapshots(f, indices, meta.Dt))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	f, times, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	result := &sim.Result{Field: f, Times: times, Metrics: meta.Metrics}
	return storage.ExportJSON(os.Stdout, meta.Rate, meta.Dt, meta.Stepper, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	f, _, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	indices := snapshots
	if len(indices) == 0 {
		indices = []int{0, f.Steps() / 2, f.Steps() - 1}
	}

	svg := export.SnapshotsToSVG(f, indices, meta.Dt, 800, 200)
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	s, err := registry.GetStepper(cfg.Stepper)
	if err != nil {
		return err
	}

	init, err := cfg.InitialDistribution()
	if err != nil {
		return err
	}

	return viz.RunLive(s, init, cfg.Rate, cfg.Dt, cfg.Steps, frameRate)
}

func benchSteppers(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	sizes := []int{100, 1000, 10000, 100000}
	names := []string{"euler", "parallel"}
	const benchSteps = 500

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPPER\tSITES\tSTEPS\tTIME\tCOLS/SEC")

	for _, name := range names {
		s, err := registry.GetStepper(name)
		if err != nil {
			return err
		}
		for _, n := range sizes {
			init, err := lattice.Delta(n, n/2)
			if err != nil {
				return err
			}
			f, err := lattice.NewField(init, benchSteps)
			if err != nil {
				return err
			}

			start := time.Now()
			if _, err := solver.Integrate(f, s, 5.0, solver.StabilityLimit(5.0)); err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%.0f\n",
				name, n, benchSteps, elapsed,
				float64(benchSteps)/elapsed.Seconds())
		}
	}
	return w.Flush()
}

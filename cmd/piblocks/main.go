package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/piblocks/internal/config"
	"github.com/san-kum/piblocks/internal/metrics"
	"github.com/san-kum/piblocks/internal/sim"
	"github.com/san-kum/piblocks/internal/viz"
	"github.com/spf13/cobra"
)

var (
	mass       float64
	velocity   float64
	dt         float64
	duration   float64
	frameRate  int
	configFile string
	preset     string
	plot       bool
	digits     int
)

// main registers the CLI commands. Running without a subcommand launches the
// live terminal view, mirroring how the original demo opened straight into
// its animation window.
func main() {
	rootCmd := &cobra.Command{
		Use:   "piblocks",
		Short: "colliding blocks pi simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}
	addRunFlags(rootCmd)
	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation headless and print the collision count",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot position/velocity traces")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run the pi-digit ladder of mass ratios",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&digits, "digits", 3, "number of mass ratios (100^0..100^(n-1))")
	sweepCmd.Flags().Float64Var(&velocity, "velocity", -50.0, "initial velocity of the large block")
	sweepCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named configurations",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Printf("%-10s mass=%.0f velocity=%.1f\n", name, cfg.MassLarge, cfg.VelocityLarge)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, sweepCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "mass of the large block")
	cmd.Flags().Float64Var(&velocity, "velocity", config.DefaultVelocity, "initial velocity of the large block")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "max duration")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file, and CLI flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
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
		cfg = loaded
	}

	if cmd.Flags().Changed("mass") {
		cfg.MassLarge = mass
	}
	if cmd.Flags().Changed("velocity") {
		cfg.VelocityLarge = velocity
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	drv, err := sim.NewDriver(sim.Config{
		Mass:         cfg.MassLarge,
		Velocity:     cfg.VelocityLarge,
		Dt:           cfg.Dt,
		Duration:     cfg.Duration,
		StopOnFinish: cfg.StopOnFinish,
	})
	if err != nil {
		return err
	}
	drv.AddMetric(metrics.NewEnergyDrift())
	drv.AddMetric(metrics.NewCollisionRate())
	drv.AddMetric(metrics.NewWallApproach())

	fmt.Printf("running mass=%.0f velocity=%.1f...\n", cfg.MassLarge, cfg.VelocityLarge)
	start := time.Now()

	result, err := drv.Run(context.Background())
	if err != nil {
		return err
	}

	final := result.Final()
	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Printf("collisions: %d\n", final.Collisions)
	fmt.Printf("theoretical: %d\n", sim.TheoreticalCount(cfg.MassLarge))
	fmt.Printf("finished: %v\n", final.Finished)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if plot {
		plotResult(result)
	}
	return nil
}

func plotResult(result *sim.Result) {
	traces := []struct {
		name    string
		extract func(i int) float64
	}{
		{"small block position", func(i int) float64 { return result.Snapshots[i].PositionSmall }},
		{"large block position", func(i int) float64 { return result.Snapshots[i].PositionLarge }},
		{"small block velocity", func(i int) float64 { return result.Snapshots[i].VelocitySmall }},
		{"large block velocity", func(i int) float64 { return result.Snapshots[i].VelocityLarge }},
	}

	for _, tr := range traces {
		data := make([]float64, len(result.Snapshots))
		for i := range result.Snapshots {
			data[i] = tr.extract(i)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(tr.name),
		)
		fmt.Println()
		fmt.Println(graph)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	if digits < 1 {
		return fmt.Errorf("digits must be at least 1, got %d", digits)
	}

	sweep := &sim.Sweep{
		Digits:      digits,
		Velocity:    velocity,
		Dt:          dt,
		MaxDuration: 600.0,
	}

	fmt.Printf("sweeping %d mass ratios...\n\n", digits)
	start := time.Now()

	results, err := sweep.Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MASS\tCOLLISIONS\tTHEORY\tMATCH")
	for _, r := range results {
		match := "yes"
		if !r.Match() {
			match = "NO"
		}
		fmt.Fprintf(w, "%.0f\t%d\t%d\t%s\n", r.Mass, r.Collisions, r.Theoretical, match)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ncompleted in %v\n", time.Since(start))
	return nil
}

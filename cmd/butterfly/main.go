package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/butterfly/internal/analysis"
	"github.com/san-kum/butterfly/internal/config"
	"github.com/san-kum/butterfly/internal/export"
	"github.com/san-kum/butterfly/internal/server"
	"github.com/san-kum/butterfly/internal/solver"
	"github.com/san-kum/butterfly/internal/viz"
	"github.com/spf13/cobra"
)

var (
	t0 float64
	tf float64
	dt float64
	// Path A parameters and initial state
	sigmaA float64
	rhoA   float64
	betaA  float64
	x0A    float64
	y0A    float64
	z0A    float64
	// Path B parameters and initial state
	sigmaB float64
	rhoB   float64
	betaB  float64
	x0B    float64
	y0B    float64
	z0B    float64
	// Animation strides per view
	strideTime     int
	stridePlane    int
	stridePortrait int
	// Config file and preset
	configFile string
	preset     string
	// Output
	outFile string
	width   int
	// Frame rate for animate
	frameRate int
	// Server
	addr    string
	verbose bool
)

// main registers the butterfly commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "butterfly",
		Short: "chaotic trajectory comparison pipeline",
	}

	composeCmd := &cobra.Command{
		Use:   "compose",
		Short: "integrate both paths and print the composed views as JSON",
		RunE:  runCompose,
	}
	addRunFlags(composeCmd)
	composeCmd.Flags().StringVarP(&outFile, "out", "o", "", "write JSON to file instead of stdout")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "render all views in the terminal, fully revealed",
		RunE:  runPlot,
	}
	addRunFlags(plotCmd)
	plotCmd.Flags().IntVar(&width, "width", 80, "chart width in columns")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "animate the progressive reveal in the terminal",
		RunE:  runAnimate,
	}
	addRunFlags(animateCmd)
	animateCmd.Flags().IntVar(&frameRate, "fps", 10, "frames per second")

	divergenceCmd := &cobra.Command{
		Use:   "divergence",
		Short: "plot the separation between the two paths over time",
		RunE:  runDivergence,
	}
	addRunFlags(divergenceCmd)
	divergenceCmd.Flags().IntVar(&width, "width", 80, "chart width in columns")

	svgCmd := &cobra.Command{
		Use:   "export-svg [dir]",
		Short: "write every 2-D panel as an SVG file into dir",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}
	addRunFlags(svgCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the pipeline over HTTP",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	serveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(composeCmd, plotCmd, animateCmd, divergenceCmd, svgCmd, presetsCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&t0, "t0", config.DefaultT0, "start time")
	cmd.Flags().Float64Var(&tf, "tf", config.DefaultTf, "end time (exclusive)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "sample spacing")
	cmd.Flags().Float64Var(&sigmaA, "sigma-a", config.DefaultSigma, "path A sigma")
	cmd.Flags().Float64Var(&rhoA, "rho-a", config.DefaultRho, "path A rho")
	cmd.Flags().Float64Var(&betaA, "beta-a", config.DefaultBeta, "path A beta")
	cmd.Flags().Float64Var(&x0A, "x0-a", 0, "path A initial x")
	cmd.Flags().Float64Var(&y0A, "y0-a", 1, "path A initial y")
	cmd.Flags().Float64Var(&z0A, "z0-a", 0, "path A initial z")
	cmd.Flags().Float64Var(&sigmaB, "sigma-b", config.DefaultSigma, "path B sigma")
	cmd.Flags().Float64Var(&rhoB, "rho-b", config.DefaultRho, "path B rho")
	cmd.Flags().Float64Var(&betaB, "beta-b", config.DefaultBeta, "path B beta")
	cmd.Flags().Float64Var(&x0B, "x0-b", 1, "path B initial x")
	cmd.Flags().Float64Var(&y0B, "y0-b", 0, "path B initial y")
	cmd.Flags().Float64Var(&z0B, "z0-b", 1, "path B initial z")
	cmd.Flags().IntVar(&strideTime, "stride-time", 40, "time view reveal stride")
	cmd.Flags().IntVar(&stridePlane, "stride-plane", 15, "phase plane reveal stride")
	cmd.Flags().IntVar(&stridePortrait, "stride-portrait", 10, "phase portrait reveal stride")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves the run configuration: preset, then config file,
// then CLI flags on top of whichever base won.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
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

	flagPairs := []struct {
		name string
		dst  *float64
		src  float64
	}{
		{"t0", &cfg.T0, t0},
		{"tf", &cfg.Tf, tf},
		{"dt", &cfg.Dt, dt},
		{"sigma-a", &cfg.PathA.Sigma, sigmaA},
		{"rho-a", &cfg.PathA.Rho, rhoA},
		{"beta-a", &cfg.PathA.Beta, betaA},
		{"x0-a", &cfg.PathA.X0, x0A},
		{"y0-a", &cfg.PathA.Y0, y0A},
		{"z0-a", &cfg.PathA.Z0, z0A},
		{"sigma-b", &cfg.PathB.Sigma, sigmaB},
		{"rho-b", &cfg.PathB.Rho, rhoB},
		{"beta-b", &cfg.PathB.Beta, betaB},
		{"x0-b", &cfg.PathB.X0, x0B},
		{"y0-b", &cfg.PathB.Y0, y0B},
		{"z0-b", &cfg.PathB.Z0, z0B},
	}
	for _, fp := range flagPairs {
		if cmd.Flags().Changed(fp.name) {
			*fp.dst = fp.src
		}
	}
	if cmd.Flags().Changed("stride-time") {
		cfg.Strides.Time = strideTime
	}
	if cmd.Flags().Changed("stride-plane") {
		cfg.Strides.Plane = stridePlane
	}
	if cmd.Flags().Changed("stride-portrait") {
		cfg.Strides.Portrait = stridePortrait
	}

	return cfg, nil
}

func runCompose(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	views, n, err := server.Generate(cfg)
	if err != nil {
		return err
	}

	if outFile != "" {
		return export.SaveJSON(outFile, n, views)
	}
	return export.WriteJSON(os.Stdout, n, views)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	views, n, err := server.Generate(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("samples: %d\n\n", n)
	fmt.Print(viz.RenderViews(views, width))
	return nil
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	views, _, err := server.Generate(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(views, frameRate))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runDivergence(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	grid := cfg.Grid()
	a, err := solver.Integrate(cfg.PathA.Params(), cfg.PathA.Initial(), grid)
	if err != nil {
		return err
	}
	b, err := solver.Integrate(cfg.PathB.Params(), cfg.PathB.Initial(), grid)
	if err != nil {
		return err
	}

	sep := analysis.Separation(a, b)

	graph := asciigraph.Plot(sep,
		asciigraph.Height(15),
		asciigraph.Width(width),
		asciigraph.Caption("separation |A - B| vs time"),
	)
	fmt.Println(graph)
	fmt.Println()

	maxSep, maxIdx := analysis.MaxSeparation(sep)
	fmt.Printf("initial separation: %.6f\n", sep[0])
	fmt.Printf("max separation: %.4f at t=%.2f\n", maxSep, a.Times[maxIdx])
	fmt.Printf("mean log growth rate: %.4f /s\n", analysis.GrowthRate(sep, grid.Dt))
	return nil
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	views, _, err := server.Generate(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	panels := append(views.Time.Panels, views.Plane.Panels...)
	for i, p := range panels {
		path := fmt.Sprintf("%s/panel_%02d.svg", dir, i)
		if err := os.WriteFile(path, []byte(export.PanelSVG(p, 800, 500)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%s)\n", path, p.Title)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := server.NewLogger(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	srv := server.New(addr, logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}
	logger.Info("server stopped", "uptime", time.Since(start).Round(time.Second))
	return nil
}

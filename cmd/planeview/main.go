package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/planeview/internal/config"
	"github.com/san-kum/planeview/internal/feed"
	"github.com/san-kum/planeview/internal/log"
	"github.com/san-kum/planeview/internal/stream"
	"github.com/san-kum/planeview/internal/viz"
)

var (
	plain    bool
	logLevel string
	theme    string
	// stream flags
	configFile string
	preset     string
	steps      int
	dt         float64
	interval   time.Duration
	normal     string
	offset     float64
)

// main registers the commands and exits with status 1 when the selected
// command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "planeview",
		Short:         "live 3D view of a plane and two points read from stdin",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runView,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", log.DefaultLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "plain ANSI output instead of the interactive view")
	rootCmd.Flags().StringVar(&theme, "theme", viz.CurrentTheme.Name, fmt.Sprintf("colour theme %v", viz.ThemeNames()))

	streamCmd := &cobra.Command{
		Use:   "stream",
		Short: "write a synthetic plane query feed to stdout",
		Args:  cobra.NoArgs,
		RunE:  runStream,
	}
	streamCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	streamCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	streamCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of samples, 0 runs until interrupted")
	streamCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "time between samples on the path")
	streamCmd.Flags().DurationVar(&interval, "interval", config.DefaultInterval, "pause between lines")
	streamCmd.Flags().StringVar(&normal, "normal", "0,1,0", "plane normal x,y,z")
	streamCmd.Flags().Float64Var(&offset, "offset", config.DefaultOffset, "plane offset along the normal")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list stream presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("stream presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(streamCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "planeview: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() log.Logger {
	lg, err := log.NewLogrusLogger(logLevel, os.Stderr)
	if err != nil {
		lg.Warnf("%v, using %s", err, log.DefaultLevel)
	}
	return lg
}

func runView(cmd *cobra.Command, args []string) error {
	lg := newLogger()
	viz.CurrentTheme = viz.GetTheme(theme)

	if plain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		surface := viz.NewPlain(os.Stdout)
		if err := surface.Start(); err != nil {
			return err
		}
		loop := feed.New(surface, feed.WithLogger(lg))
		err := loop.Run(ctx, os.Stdin)
		if serr := surface.Stop(); err == nil {
			err = serr
		}
		st := loop.Stats()
		lg.Infof("frames=%d skipped=%d lines=%d", st.Frames, st.Skipped, st.Lines)
		return err
	}

	// stdin carries the feed, so keys come from the controlling terminal
	// when there is one.
	var opts []tea.ProgramOption
	if tty, err := os.Open("/dev/tty"); err == nil {
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	} else {
		lg.Debugf("no controlling terminal, keyboard disabled: %v", err)
		opts = append(opts, tea.WithInput(nil))
	}

	final, err := tea.NewProgram(viz.NewLiveModel(os.Stdin, lg), opts...).Run()
	if errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error running live view: %w", err)
	}
	m, ok := final.(viz.LiveModel)
	if !ok {
		return nil
	}
	st := m.Stats()
	lg.Infof("frames=%d skipped=%d lines=%d", st.Frames, st.Skipped, st.Lines)
	return m.Err()
}

func runStream(cmd *cobra.Command, args []string) error {
	lg := newLogger()

	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// explicit flags override both
	flags := cmd.Flags()
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Changed("normal") {
		n, err := parseVec(normal)
		if err != nil {
			return fmt.Errorf("invalid --normal: %w", err)
		}
		cfg.Plane.Normal = n
	}
	if flags.Changed("offset") {
		cfg.Plane.Offset = offset
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	n, err := stream.New(cfg, lg).Run(ctx, os.Stdout)
	lg.Infof("stream: %d lines", n)
	return err
}

func parseVec(s string) ([3]float64, error) {
	var v [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("want x,y,z, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

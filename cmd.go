package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/soocke/screen-watch-go/app"
	"github.com/soocke/screen-watch-go/config"
	"github.com/soocke/screen-watch-go/domain/region"
	"github.com/spf13/cobra"
)

const envFile = ".env"

var (
	cfgFile    string
	debugFlag  bool
	threshold  int
	intervalMS int
	regionFlag string
)

var rootCmd = &cobra.Command{
	Use:   "screen-watch",
	Short: "Watch a screen region for visual changes",
	Long:  `Screen Watch - select a region of the screen and count how often its content changes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		app.NewApp("Screen Watch", cfg, cfgFile, logger).Start()
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run change detection without a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		r := app.RegionFromConfig(cfg)
		if regionFlag != "" {
			if r, err = region.ParseList(regionFlag); err != nil {
				return fmt.Errorf("--region: %w", err)
			}
		}
		if r.Empty() {
			return fmt.Errorf("region %s has no area", r)
		}
		return runWatch(cfg, r, logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "screen-watch.json", "config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&threshold, "threshold", 0, "grayscale difference threshold (0-255)")
	rootCmd.PersistentFlags().IntVar(&intervalMS, "interval", 0, "capture interval in milliseconds")
	watchCmd.Flags().StringVar(&regionFlag, "region", "", "region as x,y,w,h (default: saved region)")

	rootCmd.AddCommand(watchCmd)
}

// loadConfig layers file, environment and flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config %s: %w", cfgFile, err)
	}
	cfg.ApplyEnv(envFile)
	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = debugFlag
	}
	if flags.Changed("threshold") {
		cfg.Threshold = threshold
	}
	if flags.Changed("interval") {
		cfg.IntervalMS = intervalMS
	}
	_ = cfg.Validate()
	return cfg, NewLogger(levelFor(cfg.Debug)), nil
}

func runWatch(cfg *config.Config, r region.Region, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, svc := app.NewMonitor(cfg, region.NewStore(r), logger)
	logger.Info("watching",
		"region", r.String(),
		"threshold", cfg.Threshold,
		"interval", cfg.Interval(),
		"backend", cfg.CaptureBackend,
	)
	err := svc.Run(ctx)
	st := svc.Stats()
	logger.Info("watch stopped",
		"changes", st.Changes,
		"captures", st.Captures,
		"failures", st.Failures,
	)
	return err
}

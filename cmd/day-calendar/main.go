package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/username/day-calendar/internal/calendar"
	"github.com/username/day-calendar/internal/config"
	"github.com/username/day-calendar/internal/schedule"
	"github.com/username/day-calendar/pkg/clocktime"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "day-calendar",
		Short:         "Day-slot event calendar",
		Long:          "Build a calendar of named, time-stamped events from a config file and report on it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log settings
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.GetLevel())
				if err != nil {
					logger = initLogger("info") // Fallback to console
				}
			} else if err == nil {
				logger = initLogger(cfg.Log.GetLevel())
			} else {
				logger = initLogger("info") // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(findCmd())
	rootCmd.AddCommand(infoCmd())

	return rootCmd
}

func reportCmd() *cobra.Command {
	var summary bool
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print every event, day by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cal, result, err := buildCalendar()
			if err != nil {
				return err
			}
			defer cal.Destroy()

			if !cmd.Flags().Changed("summary") {
				summary = cfg.Report.Summary
			}
			if !cmd.Flags().Changed("output") {
				output = cfg.Report.Output
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
					return fmt.Errorf("failed to create output path: %w", err)
				}
				f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := cal.Print(w, summary); err != nil {
				return fmt.Errorf("failed to print calendar: %w", err)
			}

			for _, outcome := range result.Outcomes {
				if !outcome.Added {
					fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  Skipped %q (day %d): %s\n",
						outcome.Name, outcome.Day, outcome.Reason)
				}
			}

			logger.Info("Report written",
				zap.String("calendar", cal.Name()),
				zap.Int("total_events", cal.TotalEvents()),
				zap.Bool("summary", summary),
				zap.String("output", output))

			return nil
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", true, "Include calendar name, day count and total events")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

func findCmd() *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:   "find <name>",
		Short: "Show the first event with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cal, _, err := buildCalendar()
			if err != nil {
				return err
			}
			defer cal.Destroy()

			var ev *calendar.Event[string]
			if day > 0 {
				ev, err = cal.FindInDay(args[0], day)
			} else {
				ev, err = cal.Find(args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s, Ends: %s\n", ev, clocktime.Format(ev.End()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&day, "day", "d", 0, "Restrict the search to one day (1-based)")

	return cmd
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <name>",
		Short: "Show the note attached to an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cal, _, err := buildCalendar()
			if err != nil {
				return err
			}
			defer cal.Destroy()

			note, found := cal.LookupInfo(args[0])
			if !found {
				return fmt.Errorf("event %q %w", args[0], calendar.ErrNotFound)
			}
			if note == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "(no info)")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), *note)
			return nil
		},
	}
}

func buildCalendar() (*config.Config, *calendar.Calendar[string], *schedule.Result, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()

	cal, result, err := schedule.NewBuilder(cfg, logger).Build()
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, cal, result, nil
}

func initLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return l
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}

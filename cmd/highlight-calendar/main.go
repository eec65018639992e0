package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/username/highlight-calendar/internal/calendar"
	"github.com/username/highlight-calendar/internal/config"
	"github.com/username/highlight-calendar/internal/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "highlight-calendar",
		Short: "Render a highlighted calendar to PDF",
		Long:  "Render a printable calendar from a TOML file of highlight styles and dated entries",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := config.LoadEnv(".env"); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}

			// Load settings to get log file path and level
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				logger = initLogger("info")
				return
			}
			if cfg.Log.File != "" {
				logger = initFileLogger(cfg.Log.File, cfg.Log.Level)
			} else {
				logger = initLogger(cfg.Log.Level)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultCalendarFile, "Calendar file path")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (rotated)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.Flags().StringP("output", "o", config.DefaultOutputFile, "Output PDF file")
	rootCmd.Flags().String("layout", render.LayoutMonth, "Page layout: month (one page per month) or year (one page per year)")
	rootCmd.Flags().String("title", "Calendar", "Document title")
	rootCmd.Flags().String("page-size", "A4", "Page size: A3, A4, A5, Letter or Legal")
	rootCmd.Flags().BoolP("quiet", "q", false, "Do not show a progress bar")

	rootCmd.AddCommand(generateDaysCmd())
	rootCmd.AddCommand(previewCmd())

	return rootCmd
}

func runRender(cmd *cobra.Command) error {
	// The calendar is loaded first so that a malformed file is reported
	// as such rather than as a settings problem.
	cal, err := calendar.NewLoader(configPath, logger).Load()
	if err != nil {
		return fmt.Errorf("failed to load calendar: %w", err)
	}

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	renderer := render.NewPDFRenderer(render.Options{
		Title:    cfg.Render.Title,
		Layout:   cfg.Render.Layout,
		PageSize: cfg.Render.PageSize,
	}, logger)

	if !cfg.Render.Quiet {
		pages, err := renderer.PageCount(cal)
		if err != nil {
			return fmt.Errorf("failed to lay out calendar: %w", err)
		}
		bar := progressbar.NewOptions(pages,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Rendering pages..."),
			progressbar.OptionSetWidth(20),
			progressbar.OptionShowCount(),
		)
		defer bar.Close()
		renderer.SetProgress(bar)
	}

	logger.Info("Rendering calendar",
		zap.String("output", cfg.Render.Output),
		zap.String("layout", cfg.Render.Layout),
		zap.String("page_size", cfg.Render.PageSize))

	if err := renderer.RenderFile(cal, cfg.Render.Output); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

func initLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	l, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return l
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}

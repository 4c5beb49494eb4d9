// Package main provides the CLI entry point for dirplot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dirplot-go/pkg/dirplot"
	"github.com/ukaji3/dirplot-go/pkg/dirplot/config"
	"github.com/ukaji3/dirplot-go/pkg/dirplot/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath      string
	continueOnError bool
	includeXLSX     bool
	skipHeader      bool
	dryRun          bool
	verbose         bool
	force           bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := runCLI(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// runCLI executes cmd and flushes the logger whether or not it failed;
// cobra skips PersistentPostRun when RunE returns an error.
func runCLI(cmd *cobra.Command) error {
	err := cmd.Execute()
	syncLogger()
	return err
}

var syncLogger = func() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dirplot [dir]",
		Short: "Render directivity CSV files as polar plots",
		Long: `dirplot reads every *.csv file in a directory (default: the working
directory), takes the middle row of each measurement grid as the horizontal
plane and writes a polar plot of it to a PDF next to the input.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: run,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", config.DefaultPath, "Config file (YAML); missing file means defaults")
	flags.BoolVar(&continueOnError, "continue-on-error", false, "Log and skip failing files instead of stopping")
	flags.BoolVar(&includeXLSX, "include-xlsx", false, "Also process *.xlsx workbooks (first sheet)")
	flags.BoolVar(&skipHeader, "skip-header", false, "Treat the first row of each file as a header")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and plot in memory without writing PDFs")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "watch [dir]",
		Short: "Render existing files, then re-render inputs as they change",
		Args:  cobra.MaximumNArgs(1),
		RunE:  watch,
	})

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the dirplot config file",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  configInit,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)

	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig(cmd)
	if err != nil {
		return err
	}

	level, _ := cfg.Level()
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("continue-on-error") {
		c.ContinueOnError = continueOnError
	}
	if flags.Changed("include-xlsx") {
		c.IncludeXLSX = includeXLSX
	}
	if flags.Changed("skip-header") {
		c.SkipHeader = skipHeader
	}
	return c, nil
}

func inputDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Dir
}

func run(cmd *cobra.Command, args []string) error {
	opts := cfg.Options()
	opts.Logger = logger
	if dryRun {
		opts.Renderer = render.NewRecorder()
	}

	artifacts, err := dirplot.New(opts).Run(inputDir(args))
	for _, a := range artifacts {
		msg := "wrote plot"
		if dryRun {
			msg = "would write plot"
		}
		logger.Info(msg,
			zap.String("input", a.Source),
			zap.String("output", a.Output),
			zap.Int("row", a.Row),
			zap.Int("points", a.Points))
	}
	return err
}

func watch(cmd *cobra.Command, args []string) error {
	debounce, _ := cfg.Debounce()

	opts := cfg.Options()
	opts.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := dirplot.NewWatcher(dirplot.New(opts), inputDir(args), debounce)
	return w.Run(ctx)
}

func configInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logger.Info("wrote config", zap.String("path", path))
	return nil
}

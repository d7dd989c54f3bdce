package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/internal/session"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	logFormat := loggingConfig.Format
	if logFormat == "" {
		logFormat = "console"
	}

	var zapConfig zap.Config
	switch logFormat {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.DisableStacktrace = true
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", logFormat)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// app carries the state shared by every command once the configuration has
// been loaded.
type app struct {
	conf      *config.Configuration
	logger    *zap.Logger
	engine    *mortgage.Engine
	formatter *format.Formatter
}

func (a *app) load(cmd *cobra.Command) error {
	flags := cmd.Flags()
	configLocation, _ := flags.GetString("config")
	logLevel, _ := flags.GetString("log-level")

	conf, err := config.LoadConfiguration(configLocation)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
	}

	// CLI overrides take precedence over the config file.
	if v, _ := flags.GetString("output-format"); v != "" {
		conf.Output.Format = v
	}
	if v, _ := flags.GetString("locale"); v != "" {
		conf.Display.Locale = v
	}
	if v, _ := flags.GetString("currency"); v != "" {
		conf.Display.Currency = v
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	engine, err := conf.Engine(logger)
	if err != nil {
		return err
	}
	formatter, err := conf.Formatter()
	if err != nil {
		return err
	}

	a.conf = conf
	a.logger = logger
	a.engine = engine
	a.formatter = formatter
	return nil
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mortgage-calculator",
		Short:         "Fixed-rate mortgage payments and amortization schedules",
		Long:          "Prompts for a principal, annual interest rate and term, then prints the\nmonthly payment, total interest and optionally the amortization schedule.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := session.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.engine, a.formatter, session.Settings{
				Bounds:        a.conf.Bounds(),
				PreviewMonths: a.conf.Output.PreviewMonths,
			}, a.logger)
			return s.Run()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", constants.DefaultConfigFile, "path to configuration file")
	flags.String("log-level", "", "log level override (debug, info, warn, error)")
	flags.String("output-format", "", "type of output override: "+strings.Join(validation.SupportedOutputFormats, ", "))
	flags.String("locale", "", "locale used to format currency, e.g. en-US")
	flags.String("currency", "", "ISO 4217 currency code, e.g. USD")

	rootCmd.AddCommand(newPaymentCommand(a))
	rootCmd.AddCommand(newScheduleCommand(a))
	rootCmd.AddCommand(newCompareCommand(a))
	return rootCmd
}

func execute(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{}
	rootCmd := newRootCommand(a)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.Execute()
	a.sync()
	if err != nil {
		fmt.Fprintf(errOut, "An error occurred: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

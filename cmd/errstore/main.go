package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"errstore/internal/cli"
	"errstore/pkg/errx"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	debug   = false
)

// The logger exists before flags are parsed; --debug lowers this level
// afterwards.
var logLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)

func main() {
	logger, err := newConsoleLogger(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	initCommands(logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "errstore",
	Short:         "Error catalog CLI",
	Long:          longHelp(),
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetDebugMode(debug)
		if debug {
			logLevel.SetLevel(zap.DebugLevel)
		}
	},
}

func longHelp() string {
	var b strings.Builder
	b.WriteString(`errstore loads YAML error catalogs into an error registry and provides commands to:
- Export the client error contract (errorMetaMap, errorCodes)
- Resolve a single error code
- List registered descriptors
- Check catalogs for duplicate codes and names

Failures carry one of these category codes:
`)
	for _, c := range errx.Categories() {
		fmt.Fprintf(&b, "  %s  %s\n", c.Code, c.Description)
	}
	return b.String()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug output and print failures with their full errx chain")
}

func initCommands(logger *zap.Logger) {
	rootCmd.AddCommand(cli.NewExportCmd(logger))
	rootCmd.AddCommand(cli.NewLookupCmd(logger))
	rootCmd.AddCommand(cli.NewListCmd(logger))
	rootCmd.AddCommand(cli.NewCheckCmd(logger))
}

// newConsoleLogger builds a colored console logger writing to stderr;
// stdout is reserved for command output.
func newConsoleLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = level
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}

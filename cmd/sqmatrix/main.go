// SPDX-License-Identifier: MIT

// Command sqmatrix reads two square matrices from a file and walks through the
// matrix operations: addition, multiplication, diagonal sum, then row swap,
// column swap and element update driven by answers typed on stdin.
//
// Usage:
//
//	sqmatrix [--verbose] [--width 8] [--precision 6] <input_file>
//
// Exit status is 0 on success and 1 on any failure (missing file, bad type
// flag, out-of-range index, dimension mismatch, unreadable input).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sqmatrix/internal/config"
	"github.com/katalvlaran/sqmatrix/internal/demo"
	"github.com/katalvlaran/sqmatrix/matrix"
)

const (
	exitOK   = 0
	exitFail = 1
)

// cliFlags are the command-line overrides of config.Config.
type cliFlags struct {
	verbose   bool
	width     int
	precision int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the root command and maps its outcome to an exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFail
	}

	return exitOK
}

// newRootCmd builds the sqmatrix command. Environment values (see
// internal/config) are the defaults; explicitly set flags win.
func newRootCmd() *cobra.Command {
	var (
		flags  cliFlags
		cfg    config.Config
		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "sqmatrix <input_file>",
		Short: "Demonstrate square-matrix operations on two matrices read from a file",
		Long: `sqmatrix reads "N typeFlag" followed by two N×N matrices (typeFlag 0 = int,
1 = double), prints their sum, product and the combined diagonal sum of the
first matrix, then asks for rows to swap, columns to swap and one element to
update in the first matrix.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			applyFlags(cmd, flags, &cfg)
			if err = cfg.Validate(); err != nil {
				return err
			}

			level := zapcore.InfoLevel
			if cfg.Verbose {
				level = zapcore.DebugLevel
			}
			logger = newLogger(cmd.ErrOrStderr(), level)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening file %s: %w", path, err)
			}
			defer f.Close()

			logger.Debug("starting demo", zap.String("input", path),
				zap.Int("field_width", cfg.FieldWidth), zap.Int("precision", cfg.Precision))

			dcfg := demo.Config{
				Logger: logger,
				Render: []matrix.Option{
					matrix.WithFieldWidth(cfg.FieldWidth),
					matrix.WithPrecision(cfg.Precision),
				},
			}
			if err = demo.Run(dcfg, f, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				logger.Error("demo failed", zap.String("input", path), zap.Error(err))
				return err
			}

			return nil
		},
	}

	fs := cmd.Flags()
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	fs.IntVar(&flags.width, "width", matrix.DefaultFieldWidth, "minimum width of each printed cell")
	fs.IntVar(&flags.precision, "precision", matrix.DefaultPrecision, "significant digits for floating matrices")

	return cmd
}

// applyFlags copies only the flags the user actually set onto cfg.
func applyFlags(cmd *cobra.Command, flags cliFlags, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("verbose") {
		cfg.Verbose = flags.verbose
	}
	if fs.Changed("width") {
		cfg.FieldWidth = flags.width
	}
	if fs.Changed("precision") {
		cfg.Precision = flags.precision
	}
}

// newLogger writes JSON entries in the zap production encoding to w.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

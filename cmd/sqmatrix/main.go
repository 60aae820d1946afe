// SPDX-License-Identifier: MIT

// sqmatrix loads two N×N matrices from a text file and walks through the
// square-matrix operations on them: sum, product, diagonal sum, then a row
// swap, a column swap and an element update driven by answers on stdin.
//
// Input file layout:
//
//	N kind        (kind 0 = integer, 1 = float)
//	N*N tokens    matrix 1, row-major
//	N*N tokens    matrix 2, row-major
//
// Without --file the program asks for the file name first.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/sqmatrix/config"
	"github.com/katalvlaran/sqmatrix/loader"
	"github.com/katalvlaran/sqmatrix/matrix"
	"github.com/katalvlaran/sqmatrix/session"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

// stdinPath selects standard input as the data file.
const stdinPath = "-"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// flags holds the parsed command line.
type flags struct {
	file       string
	configPath string
	width      int
	precision  int
	debug      bool
	logFormat  string
	prompts    bool
	version    bool
	help       bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var f flags
	flagSet := pflag.NewFlagSet("sqmatrix", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&f.file, "file", "f", "", `input file ("-" for stdin; prompted for when empty)`)
	flagSet.StringVar(&f.configPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")
	flagSet.IntVar(&f.width, "width", matrix.DefaultCellWidth, "cell width for printed matrices")
	flagSet.IntVar(&f.precision, "precision", matrix.DefaultPrecision, "significant digits for float cells")
	flagSet.BoolVar(&f.debug, "debug", false, "enable debug logging")
	flagSet.StringVar(&f.logFormat, "log-format", config.FormatAuto, "log format: auto, text or json")
	flagSet.BoolVar(&f.prompts, "prompts", false, "write prompts even when stdin is not a terminal")
	flagSet.BoolVar(&f.version, "version", false, "print version and exit")
	flagSet.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if f.help {
		printHelp(stderr, flagSet)
		return nil
	}
	if f.version {
		fmt.Fprintf(stdout, "sqmatrix %s\n", version)
		return nil
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flagSet.Args())
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, flagSet, &f)
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cfg.Log.Format, level)

	interactive := f.prompts || isTerminal(stdin)
	answers := matrix.NewTokenizer(stdin)

	path := f.file
	if path == "" {
		if interactive {
			fmt.Fprint(stdout, "Enter input file name: ")
		}
		if path, err = answers.Next(); err != nil {
			return fmt.Errorf("reading input file name: %w", err)
		}
	}

	ds, err := load(path, answers)
	if err != nil {
		return err
	}
	logger.Debug("input loaded",
		"path", path,
		"dimension", ds.Header.Dimension,
		"kind", ds.Header.Kind.String(),
	)

	s := session.NewWithSource(answers, stdout, session.Options{
		Interactive: interactive,
		Styled:      isTerminal(stdout),
		CellWidth:   cfg.Render.CellWidth,
		Precision:   cfg.Render.Precision,
		Logger:      logger.With("path", path),
	})

	return s.Run(ds)
}

// load reads the dataset from path, or from the shared stdin stream for "-".
func load(path string, stdin matrix.TokenSource) (*loader.Dataset, error) {
	if path == stdinPath {
		ds, err := loader.Scan(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return ds, nil
	}

	return loader.Load(path)
}

// applyFlags copies explicitly set flags over the configuration.
func applyFlags(cfg *config.Config, flagSet *pflag.FlagSet, f *flags) {
	if flagSet.Changed("width") {
		cfg.Render.CellWidth = f.width
	}
	if flagSet.Changed("precision") {
		cfg.Render.Precision = f.precision
	}
	if flagSet.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `sqmatrix: square matrix operations on two matrices read from a file.

Usage:
  sqmatrix [flags]

Examples:
  # Ask for the file name, then for the swap and update indices
  sqmatrix

  # Read data and answers from one stream
  printf '2 0\n1 2 3 4\n5 6 7 8\n0 1 0 1 1 1 9\n' | sqmatrix -f -

  # Replay answers from a file with the full prompt transcript
  sqmatrix --prompts < answers.txt

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}

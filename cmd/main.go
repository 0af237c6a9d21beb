// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"pii-recognition/internal/config"
	"pii-recognition/internal/core"
	"pii-recognition/internal/corpus"
	"pii-recognition/internal/detector"
	"pii-recognition/internal/formatters"
	"pii-recognition/internal/formatters/json"
	"pii-recognition/internal/help"
	"pii-recognition/internal/observability"
	"pii-recognition/internal/preprocessors"
	"pii-recognition/internal/tagger"
	"pii-recognition/internal/validators/phone"
	"pii-recognition/internal/version"

	// Import formatters to register them
	_ "pii-recognition/internal/formatters/csv"
	_ "pii-recognition/internal/formatters/text"
	_ "pii-recognition/internal/formatters/yaml"
)

// scanFlags holds the values of the root command's flags
type scanFlags struct {
	file       string
	text       string
	output     string
	format     string
	checks     string
	workers    int
	configFile string
	areaCodes  string
	debug      bool
	noColor    bool
	logFormat  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pii_recognition error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &scanFlags{}

	rootCmd := &cobra.Command{
		Use:   "pii-recognition",
		Short: "Find personally identifiable information in text",
		Long: "pii-recognition scans text line by line for personally identifiable information\n" +
			"(names, contact details, payment cards, national identifiers and more) and\n" +
			"reports every confirmed finding with its character span and context.",
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, flags)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&flags.file, "file", "f", "", "Path to the input file (text, PDF or JPEG/TIFF image)")
	f.StringVarP(&flags.text, "text", "t", "", "Literal text to scan")
	f.StringVarP(&flags.output, "output", "o", "", "Write findings to this JSON file (must end in .json)")
	f.StringVar(&flags.format, "format", "text", "Format for findings printed to stdout: "+strings.Join(formatters.List(), ", "))
	f.StringVar(&flags.checks, "checks", "", "Comma-separated checks to run, or 'all' (default from config: all)")
	f.IntVar(&flags.workers, "workers", 0, "Number of rows scanned concurrently (default from config: 4)")
	f.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	f.StringVar(&flags.areaCodes, "area-codes", "", "File of valid US area codes, one per line (default: built-in list)")
	f.BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	f.StringVar(&flags.logFormat, "log-format", "", "Log format: console or json")

	rootCmd.AddCommand(newChecksCmd(), newVersionCmd())
	return rootCmd
}

func newChecksCmd() *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "checks [name]",
		Short: "List the available checks, or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			h := help.NewSystem(corpus.Default(corpus.Options{Tagger: tagger.New()}), noColor || !isTerminal(out))
			if len(args) == 1 {
				return h.ShowCheckHelp(out, args[0])
			}
			h.ShowChecksList(out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}

// runScan validates the flags, builds the pipeline and runs the scan. Input
// and output arguments are checked before anything is read.
func runScan(cmd *cobra.Command, flags *scanFlags) error {
	textGiven := cmd.Flags().Changed("text")
	switch {
	case flags.file == "" && !textGiven:
		return detector.NewInputError("no input given: use --file or --text", "", nil)
	case flags.file != "" && textGiven:
		return detector.NewInputError("--file and --text cannot be used together", "", nil)
	}
	if flags.output != "" && !strings.HasSuffix(flags.output, ".json") {
		return detector.NewOutputError("output file must end in .json", flags.output, nil)
	}

	cfg, err := loadConfiguration(cmd, flags)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(observability.LogConfig{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}, cmd.ErrOrStderr())
	if err != nil {
		return detector.NewConfigError("cannot set up logging", "", err)
	}
	defer func() { _ = logger.Sync() }()
	observer := observability.NewStandardObserver(logger)

	c, err := buildCorpus(cfg, flags)
	if err != nil {
		return err
	}

	maxBytes, err := cfg.MaxInputBytes()
	if err != nil {
		return detector.NewConfigError("invalid input.max_size", "", err)
	}
	var source preprocessors.Source = preprocessors.TextSource{Text: flags.text}
	if flags.file != "" {
		manager := preprocessors.NewPreprocessorManager(preprocessors.Options{
			MaxBytes:    maxBytes,
			MaxPDFPages: cfg.Input.MaxPDFPages,
		}, observer)
		source = preprocessors.FileSource{Path: flags.file, Manager: manager}
	}

	out := cmd.OutOrStdout()
	scanConfig := core.ScanConfig{
		Source:   source,
		Corpus:   c,
		Workers:  cfg.Defaults.Workers,
		Observer: observer,
	}

	var artifact *outputFile
	if flags.output != "" {
		artifact, err = createOutputFile(flags.output)
		if err != nil {
			return err
		}
		defer artifact.discard()
		scanConfig.Sink = json.NewStreamWriter(artifact.f)
	} else {
		sink, err := formatters.NewSink(flags.format, out, formatters.FormatterOptions{
			NoColor:     cfg.Defaults.NoColor || !isTerminal(out),
			ShowContext: true,
		})
		if err != nil {
			return detector.NewConfigError(err.Error(), "", nil)
		}
		scanConfig.Sink = sink
	}

	logger.Debug("starting scan",
		zap.String("run_id", observer.RunID()),
		zap.Int("categories", c.Len()),
		zap.Int("workers", cfg.Defaults.Workers))

	result, err := core.Scan(cmd.Context(), scanConfig)
	if err != nil {
		return err
	}

	if artifact != nil {
		if err := artifact.commit(); err != nil {
			return err
		}
		fmt.Fprintf(out, "%d finding(s) in %d row(s) written to %s\n", result.Findings(), result.RowsWithFindings, flags.output)
	}

	if n := len(result.Diagnostics); n > 0 {
		first := result.Diagnostics[0]
		return detector.NewScanError(detector.ErrorRow,
			fmt.Sprintf("%d fault(s) while scanning rows, first: %s", n, first.Message), "", nil)
	}
	return nil
}

// loadConfiguration reads the config file and applies flag overrides. An
// explicit --config must load; a discovered file that fails only warns.
func loadConfiguration(cmd *cobra.Command, flags *scanFlags) (*config.Config, error) {
	var cfg *config.Config
	if flags.configFile != "" {
		loaded, err := config.LoadConfig(flags.configFile)
		if err != nil {
			return nil, detector.NewConfigError("cannot load configuration", flags.configFile, err)
		}
		cfg = loaded
	} else {
		loaded, err := config.LoadConfigOrDefault("")
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Error loading config file: %v\nUsing default configuration\n", err)
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("checks") {
		cfg.Defaults.Checks = flags.checks
	}
	if fs.Changed("workers") {
		cfg.Defaults.Workers = flags.workers
	}
	if flags.noColor {
		cfg.Defaults.NoColor = true
	}
	if flags.areaCodes != "" {
		cfg.Phone.AreaCodesFile = flags.areaCodes
	}
	if flags.logFormat != "" {
		cfg.Logging.Format = flags.logFormat
	}
	if flags.debug {
		cfg.Logging.Level = "debug"
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, detector.NewConfigError("invalid configuration", flags.configFile, err)
	}
	return cfg, nil
}

// buildCorpus assembles the default categories with the configured area
// codes and keeps only the selected checks.
func buildCorpus(cfg *config.Config, flags *scanFlags) (*corpus.Corpus, error) {
	opts := corpus.Options{Tagger: tagger.New()}
	if path := cfg.Phone.AreaCodesFile; path != "" {
		codes, err := phone.LoadAreaCodesFile(path)
		if err != nil {
			return nil, detector.NewConfigError("cannot load area codes", path, err)
		}
		opts.AreaCodes = codes
	}

	c, err := corpus.Default(opts).Select(corpus.ParseNames(cfg.Defaults.Checks))
	if err != nil {
		return nil, detector.NewConfigError(err.Error(), "", nil)
	}
	return c, nil
}

// outputFile is the JSON artifact being written. It is written to a
// temporary file next to the destination and renamed on success, so a
// failed run never leaves a partial document behind.
type outputFile struct {
	f    *os.File
	path string
	done bool
}

func createOutputFile(path string) (*outputFile, error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".pii-recognition-*.json")
	if err != nil {
		return nil, detector.NewOutputError("cannot create output file", path, err)
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, detector.NewOutputError("cannot create output file", path, err)
	}
	return &outputFile{f: f, path: path}, nil
}

func (o *outputFile) commit() error {
	if err := o.f.Close(); err != nil {
		return detector.NewOutputError("cannot write output file", o.path, err)
	}
	if err := os.Rename(o.f.Name(), o.path); err != nil {
		return detector.NewOutputError("cannot write output file", o.path, err)
	}
	o.done = true
	return nil
}

func (o *outputFile) discard() {
	if o.done {
		return
	}
	_ = o.f.Close()
	if err := os.Remove(o.f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not remove %s: %v\n", o.f.Name(), err)
	}
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

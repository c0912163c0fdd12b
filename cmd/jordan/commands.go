// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/katalvlaran/jordan/catalog"
	"github.com/katalvlaran/jordan/jordan"
	"github.com/katalvlaran/jordan/report"
)

// errCheckFailed is returned under --strict when a verification fails.
var errCheckFailed = errors.New("verification failed")

// Color modes for --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type runOptions struct {
	example      string
	file         string
	all          bool
	lang         string
	verbose      bool
	independence string
	color        string
	logLevel     string
	strict       bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "jordan",
		Short: "Step-by-step Jordan normal form with exact arithmetic",
		Long: `jordan derives the Jordan normal form J of a square rational matrix A
the way it is done by hand: eigenvalues and multiplicities, block counts
from ranks of (A - λI)^k, root vectors, Jordan chains, the transition
matrix P, and finally checks P⁻¹AP against an independent decomposition.`,
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newRunCmd(stdout, stderr), newListCmd(stdout))

	return root
}

func newRunCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Print the derivation for one or more matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExamples(cmd, stdout, stderr, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.example, "example", "e", "ex1", "name of the example to run (see `jordan list`)")
	f.StringVarP(&opts.file, "file", "f", "", "YAML catalog to read matrices from instead of the built-in one")
	f.BoolVarP(&opts.all, "all", "a", false, "run every example of the catalog")
	f.StringVar(&opts.lang, "lang", "ru", "transcript language: ru or en")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "print powers of B and every candidate verdict")
	f.StringVar(&opts.independence, "independence", jordan.DefaultIndependence.String(), "candidate independence test: rank or weak")
	f.StringVar(&opts.color, "color", colorAuto, "styling: auto, always or never")
	f.StringVar(&opts.logLevel, "log-level", "warn", "diagnostic log level on stderr: debug, info, warn or error")
	f.BoolVar(&opts.strict, "strict", false, "exit with an error when a check fails")

	return cmd
}

func newListCmd(stdout io.Writer) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the example matrices",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog(file)
			if err != nil {
				return err
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "SIZE", "EXPECT", "TITLE")
			for _, ex := range cat.Examples {
				n := strconv.Itoa(len(ex.Matrix))
				t.Row(ex.Name, n+"×"+n, ex.Expect, ex.Title)
			}
			_, err = fmt.Fprintln(stdout, t.Render())

			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to list instead of the built-in one")

	return cmd
}

func runExamples(cmd *cobra.Command, stdout, stderr io.Writer, opts runOptions) error {
	logger, err := newLogger(stderr, opts.logLevel)
	if err != nil {
		return err
	}
	policy, err := jordan.ParseIndependence(opts.independence)
	if err != nil {
		return err
	}
	tag, err := language.Parse(opts.lang)
	if err != nil {
		return fmt.Errorf("--lang %q: %w", opts.lang, err)
	}
	styled, err := useColor(opts.color, stdout)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(opts.file)
	if err != nil {
		return err
	}
	examples := cat.Examples
	if !opts.all && (opts.file == "" || cmd.Flags().Changed("example")) {
		ex, err := cat.Lookup(opts.example)
		if err != nil {
			return err
		}
		examples = []catalog.Example{ex}
	}

	failed := 0
	for i, ex := range examples {
		if i > 0 {
			if _, err := fmt.Fprintln(stdout); err != nil {
				return err
			}
		}
		ok, err := runOne(stdout, logger, ex, policy, tag, opts.verbose, styled)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if opts.strict && failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(examples), errCheckFailed)
	}

	return nil
}

// runOne prints the transcript of one example and reports whether its check
// passed. Solver errors end up in the transcript; only write errors and
// invalid input are returned.
func runOne(w io.Writer, logger *slog.Logger, ex catalog.Example, policy jordan.Independence,
	tag language.Tag, verbose, styled bool) (bool, error) {
	a, err := ex.Dense()
	if err != nil {
		return false, fmt.Errorf("example %q: %w", ex.Name, err)
	}
	log := logger.With(slog.String("example", ex.Name))
	log.Info("solving", slog.Int("n", a.Rows()), slog.String("independence", policy.String()))

	s, err := jordan.NewSolver(a, jordan.WithIndependence(policy), jordan.WithLogger(log))
	if err != nil {
		return false, fmt.Errorf("example %q: %w", ex.Name, err)
	}
	res, runErr := s.Run()
	if runErr != nil {
		log.Warn("run stopped early", slog.Any("error", runErr))
	}

	header := ex.Name
	if ex.Title != "" {
		header += ": " + ex.Title
	}
	if _, err := fmt.Fprintf(w, "# %s\n", header); err != nil {
		return false, err
	}
	rep := report.New(w, report.WithLanguage(tag), report.WithVerbose(verbose), report.WithStyle(styled))
	if err := rep.Result(res, policy, runErr); err != nil {
		return false, err
	}

	if errors.Is(runErr, jordan.ErrNonRationalSpectrum) {
		// no check to fail
		return true, nil
	}

	return runErr == nil && res.Verification.Equal, nil
}

func loadCatalog(file string) (*catalog.Catalog, error) {
	if file == "" {
		return catalog.Default()
	}

	return catalog.LoadFile(file)
}

// newLogger builds the stderr text logger for --log-level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// useColor resolves --color; auto styles only a terminal.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto:
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}

		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("--color %q: want auto, always or never", mode)
	}
}

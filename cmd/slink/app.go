package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/katalvlaran/slink/config"
)

// app carries the I/O streams and the resolved configuration of one
// invocation.
type app struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	terminal func() bool

	flags  flagValues
	cfg    *config.Config
	logger *slog.Logger
	ask    *prompter
}

// flagValues receives the persistent and per-command flags.
type flagValues struct {
	configPath  string
	input       string
	k           int
	ks          []int
	method      string
	metric      string
	standardize bool
	workers     int
	output      string
	logLevel    string
	logFormat   string
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	a := &app{in: in, out: out, errOut: errOut}
	a.terminal = func() bool {
		f, ok := a.in.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}

	return a
}

func (a *app) root() *cobra.Command {
	defaults := config.Default()
	cmd := &cobra.Command{
		Use:   "slink",
		Short: "Single-link clustering of image segments",
		Long: `slink builds the complete graph over the records of an ARFF dataset,
computes its minimum spanning tree, cuts the k-1 heaviest tree edges and
scores the resulting k clusters by purity against the record classes.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.configure,
	}
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	fs := cmd.PersistentFlags()
	fs.StringVarP(&a.flags.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&a.flags.input, "input", "i", "", "ARFF dataset path")
	fs.StringVar(&a.flags.method, "method", defaults.Method, "MST algorithm: kruskal, prim or prim-dense")
	fs.StringVar(&a.flags.metric, "metric", defaults.Metric, "distance: euclidean, manhattan or cosine")
	fs.BoolVar(&a.flags.standardize, "standardize", defaults.Standardize, "z-score features before measuring distances")
	fs.IntVar(&a.flags.workers, "workers", defaults.Workers, "concurrent k values in a sweep (0 = GOMAXPROCS)")
	fs.StringVarP(&a.flags.output, "output", "o", defaults.Output, "output format: text or json")
	fs.StringVar(&a.flags.logLevel, "log-level", defaults.Log.Level, "log level: debug, info, warn or error")
	fs.StringVar(&a.flags.logFormat, "log-format", defaults.Log.Format, "log format: text or json")

	cmd.AddCommand(a.runCmd(), a.sweepCmd(), a.mstCmd())

	return cmd
}

// configure resolves defaults, file, environment and flags into a.cfg.
func (a *app) configure(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.flags.configPath != "" {
		loaded, err := config.Load(a.flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}
	applyFlags(cfg, cmd.Flags(), a.flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.Logger(a.errOut)

	return nil
}

// applyFlags copies every flag the user set onto cfg.
func applyFlags(cfg *config.Config, fs *pflag.FlagSet, v flagValues) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = v.input
		case "k":
			cfg.K = v.k
		case "ks":
			cfg.Sweep = v.ks
		case "method":
			cfg.Method = v.method
		case "metric":
			cfg.Metric = v.metric
		case "standardize":
			cfg.Standardize = v.standardize
		case "workers":
			cfg.Workers = v.workers
		case "output":
			cfg.Output = v.output
		case "log-level":
			cfg.Log.Level = v.logLevel
		case "log-format":
			cfg.Log.Format = v.logFormat
		}
	})
}

// requireInput returns cfg.Input, asking for it on a terminal.
func (a *app) requireInput() (string, error) {
	if a.cfg.Input != "" {
		return a.cfg.Input, nil
	}
	if !a.terminal() {
		return "", fmt.Errorf("no input file: pass --input or set input in the configuration")
	}

	return a.prompter().arffPath()
}

// prompter returns the shared prompter; one scanner must own stdin since it
// reads ahead.
func (a *app) prompter() *prompter {
	if a.ask == nil {
		a.ask = newPrompter(a.in, a.out)
	}

	return a.ask
}

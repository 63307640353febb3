// Package cli implements the randgraph command-line interface.
//
// # Commands
//
//   - gilbert: generate a connected Gilbert G(n,p) graph and report its statistics
//   - watts-strogatz (alias ws): same for a Watts-Strogatz small world
//
// # Configuration
//
// Settings come from config.Default, then the --config TOML file, then any
// flag given explicitly on the command line.
//
// # Logging
//
// Logs go to stderr (and --log-file when set). --verbose (-v) switches to
// debug level. Loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/randgraph/internal/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Called by main with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the randgraph CLI with os.Args, writing reports to stdout
// and logs to stderr.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// settings are the persistent flags plus the configuration resolved from them.
type settings struct {
	configPath  string
	seed        int64
	maxAttempts int
	sampleSize  int
	stats       string
	exact       bool
	format      string
	logFile     string
	metricsFile string
	verbose     bool

	cfg    config.Config
	logFh  io.Closer
	errOut io.Writer
}

// NewRootCommand builds the command tree. Reports go to out, logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	s := &settings{errOut: errOut}

	root := &cobra.Command{
		Use:           "randgraph",
		Short:         "randgraph generates connected random graphs and measures them",
		Long:          `randgraph draws connected Gilbert or Watts-Strogatz graphs and reports their average path length, clustering coefficient and average degree.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.resolve(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("randgraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	def := config.Default()
	flags := root.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "", "TOML configuration file")
	flags.Int64Var(&s.seed, "seed", 0, "RNG seed (default: time-derived, reported in the output)")
	flags.IntVar(&s.maxAttempts, "max-attempts", def.MaxAttempts, "generation attempts before giving up on connectivity")
	flags.IntVar(&s.sampleSize, "sample-size", def.SampleSize, "vertex pairs sampled for average path length")
	flags.StringVar(&s.stats, "stats", def.StatList(), "statistics to report: apl,cc,degree or all")
	flags.BoolVar(&s.exact, "exact", def.Exact, "average path length over every pair instead of a sample")
	flags.StringVar(&s.format, "format", def.Format, "output format: text, json or yaml")
	flags.StringVar(&s.logFile, "log-file", "", "also append logs to this file")
	flags.StringVar(&s.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGilbertCmd(s, out))
	root.AddCommand(newWattsStrogatzCmd(s, out))

	return root
}

// resolve merges defaults, the config file and explicit flags, then attaches
// the logger to the command context.
func (s *settings) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if s.configPath != "" {
		loaded, err := config.Load(s.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		seed := s.seed
		cfg.Seed = &seed
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = s.maxAttempts
	}
	if flags.Changed("sample-size") {
		cfg.SampleSize = s.sampleSize
	}
	if flags.Changed("stats") {
		cfg.Stats = []string{s.stats}
	}
	if flags.Changed("exact") {
		cfg.Exact = s.exact
	}
	if flags.Changed("format") {
		cfg.Format = s.format
	}
	if flags.Changed("log-file") {
		cfg.LogFile = s.logFile
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = s.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	if s.verbose {
		level = log.DebugLevel
	}
	w := s.errOut
	if cfg.LogFile != "" {
		fh, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		s.logFh = fh
		w = io.MultiWriter(s.errOut, fh)
	}

	s.cfg = cfg
	cmd.SetContext(withLogger(cmd.Context(), newLogger(w, level)))
	return nil
}

func (s *settings) closeLog() error {
	if s.logFh == nil {
		return nil
	}
	err := s.logFh.Close()
	s.logFh = nil
	return err
}

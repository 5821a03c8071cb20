package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vipcxj/rangekit/internal/config"
	"github.com/vipcxj/rangekit/internal/logging"
	"github.com/vipcxj/rangekit/internal/rangemodel"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	shortDesc = "Parse, validate and expand integer range lists"
	longDesc  = `rangekit works with lists of integer ranges such as "1:5,8,10:12".

Each comma separated component is N, N:M (inclusive), N: or :M. Every
component must lie inside the bound [--min, --max). With
--force-increasing each component must count upwards and end before the
next one starts.

Defaults come from RANGEKIT_* environment variables, optionally loaded
from a .env file.`
)

type rootOptions struct {
	envFile   string
	logLevel  string
	logFormat string

	cfg config.Config
}

// exitError ends the program with code without printing anything more.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs the command line in os.Args and returns the exit code.
func Execute() int {
	root := newRootCmd()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			return exit.code
		}
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "rangekit",
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with RANGEKIT_* defaults, skipped when missing")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error), overrides RANGEKIT_LOG_LEVEL")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format (pretty, json), overrides RANGEKIT_LOG_FORMAT")

	cmd.AddCommand(newExpandCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newNormalizeCmd(opts))
	cmd.AddCommand(newContainsCmd(opts))
	cmd.AddCommand(newPromptCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	o.cfg = cfg

	level, format := cfg.LogLevel, cfg.LogFormat
	if o.logLevel != "" {
		level = o.logLevel
	}
	if o.logFormat != "" {
		format = o.logFormat
	}
	if _, err := logging.Setup(cmd.ErrOrStderr(), level, format); err != nil {
		return err
	}
	log.Debug().Str("command", cmd.Name()).Interface("config", cfg).Msg("configuration loaded")
	return nil
}

// boundOptions are the flags shared by every command that parses a range
// list. Unset flags fall back to the config.
type boundOptions struct {
	min             int
	max             int
	forceIncreasing bool
}

func (b *boundOptions) register(fs *pflag.FlagSet) {
	fs.IntVar(&b.min, "min", config.DefaultMin, "lowest allowed value, inclusive (default from RANGEKIT_MIN)")
	fs.IntVar(&b.max, "max", config.DefaultMax, "upper limit, exclusive (default from RANGEKIT_MAX)")
	fs.BoolVarP(&b.forceIncreasing, "force-increasing", "i", false, "require components to count upwards without overlapping")
}

func (b *boundOptions) resolve(fs *pflag.FlagSet, cfg config.Config) {
	if !fs.Changed("min") {
		b.min = cfg.Min
	}
	if !fs.Changed("max") {
		b.max = cfg.Max
	}
	if !fs.Changed("force-increasing") {
		b.forceIncreasing = cfg.ForceIncreasing
	}
}

func (b *boundOptions) parse(spec string) (*rangemodel.DiscontinuousRange, error) {
	log.Debug().
		Str("spec", spec).
		Int("min", b.min).
		Int("max", b.max).
		Bool("forceIncreasing", b.forceIncreasing).
		Msg("parsing range list")
	return rangemodel.Parse(spec, b.min, b.max, b.forceIncreasing)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rangekit version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

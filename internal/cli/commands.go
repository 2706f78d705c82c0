package cli

import (
	"log/slog"

	"github.com/chainguard-dev/clog"
	"github.com/chainguard-dev/clog/slag"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fspath"
	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/fs/billy"
	"github.com/jmgilman/go/fspath/fs/core"
	"github.com/jmgilman/go/fspath/realpath"
)

// options holds the global flags after they have been merged with the
// configuration file.
type options struct {
	configFile  string
	grammarName string
	logLevel    slag.Level
	maxLinks    int
	workingDir  string
	quiet       bool
	verbose     int
	errorFormat string

	grammar fspath.Grammar

	// newFS opens the filesystem realpath reads links from.
	newFS func(workingDir string) core.LinkReader
}

func newOptions() *options {
	return &options{
		logLevel: slag.Level(slog.LevelInfo),
		maxLinks: realpath.DefaultMaxLinks,
		newFS: func(workingDir string) core.LinkReader {
			return billy.NewLocal(billy.WithWorkingDir(workingDir))
		},
	}
}

// New returns the fspath root command.
func New() *cobra.Command {
	return newRoot(newOptions())
}

func newRoot(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "fspath",
		Short:             "Manipulate and resolve filesystem paths",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.load(cmd); err != nil {
				return err
			}

			level := o.logLevel
			if o.quiet {
				level = slag.Level(slog.LevelError)
			} else if o.verbose > 0 {
				if o.verbose == 1 {
					level = slag.Level(slog.LevelDebug)
				} else {
					level = slag.Level(slog.LevelDebug - 1)
				}
			}

			slog.SetDefault(slog.New(charmlog.NewWithOptions(cmd.ErrOrStderr(), charmlog.Options{
				ReportTimestamp: true,
				Level:           charmlog.Level(level),
			})))

			log := clog.New(slog.Default().Handler()).With("grammar", o.grammar.Name)
			cmd.SetContext(clog.WithLogger(cmd.Context(), log))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&o.configFile, "config", "", "path to a YAML configuration file")
	cmd.PersistentFlags().StringVarP(&o.grammarName, "grammar", "g", "native", "path grammar: posix, darwin, windows or native")
	cmd.PersistentFlags().Var(&o.logLevel, "log-level", "log level")
	cmd.PersistentFlags().IntVar(&o.maxLinks, "max-links", realpath.DefaultMaxLinks, "maximum symbolic link substitutions per path")
	cmd.PersistentFlags().StringVarP(&o.workingDir, "working-dir", "C", "", "absolute directory relative paths are resolved against (default is the current directory)")
	cmd.PersistentFlags().BoolVarP(&o.quiet, "quiet", "q", false, "print errors only")
	cmd.PersistentFlags().CountVarP(&o.verbose, "verbose", "v", "print more information (can be specified twice)")
	cmd.PersistentFlags().StringVar(&o.errorFormat, "error-format", "text", "format of reported errors: text or json")

	cmd.AddCommand(lexicalCmds(o)...)
	cmd.AddCommand(realpathCmd(o))

	return cmd
}

// load merges the configuration file into every flag the user did not set
// and resolves the grammar.
func (o *options) load(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if o.configFile != "" {
		cfg, err := LoadConfig(o.configFile)
		if err != nil {
			return err
		}
		if cfg.Grammar != "" && !flags.Changed("grammar") {
			o.grammarName = cfg.Grammar
		}
		if cfg.LogLevel != "" && !flags.Changed("log-level") {
			// Validated by LoadConfig.
			o.logLevel, _ = parseLevel(cfg.LogLevel)
		}
		if cfg.MaxLinks != 0 && !flags.Changed("max-links") {
			o.maxLinks = cfg.MaxLinks
		}
		if cfg.WorkingDir != "" && !flags.Changed("working-dir") {
			o.workingDir = cfg.WorkingDir
		}
	}

	if o.errorFormat != "text" && o.errorFormat != "json" {
		return errors.Newf(errors.CodeInvalidInput, "unknown error format %q", o.errorFormat)
	}

	g, err := fspath.ParseGrammar(o.grammarName)
	if err != nil {
		return err
	}
	o.grammar = g

	if o.maxLinks < 1 {
		return errors.Newf(errors.CodeInvalidInput, "--max-links must be positive, got %d", o.maxLinks)
	}
	if o.workingDir != "" && !g.IsAbsolute(o.workingDir) {
		return errors.WithContext(
			errors.New(errors.CodeInvalidInput, "working directory must be absolute"),
			"working_dir", o.workingDir,
		)
	}
	return nil
}

func parseLevel(s string) (slag.Level, error) {
	var level slag.Level
	if err := level.Set(s); err != nil {
		return level, errors.Wrapf(err, errors.CodeInvalidConfig, "invalid log level %q", s)
	}
	return level, nil
}

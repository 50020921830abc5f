package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdb-cli/config"
	"github.com/s0up4200/tmdb-cli/tmdb"
)

// errUsage signals that usage was already printed and only the exit code remains
var errUsage = errors.New("usage")

// app holds state shared between the root command and its subcommands
type app struct {
	cfg       *config.Config
	logger    zerolog.Logger
	newLister func(cfg *config.Config, token string, logger zerolog.Logger) (tmdb.MovieLister, error)

	// Global flags
	cfgFile string
	envFile string
	verbose bool

	// List flags
	filterExpr string
	sortBy     string
	limit      int
	output     string
}

func init() {
	cobra.EnableCaseInsensitive = true
}

// newRootCmd builds the command tree writing to stdout and stderr
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return newRootCmdWithApp(&app{logger: zerolog.Nop(), newLister: newTMDBLister}, stdout, stderr)
}

func newRootCmdWithApp(a *app, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tmdb <command>",
		Short: "List movies from The Movie Database",
		Long: `tmdb fetches a movie list from The Movie Database (TMDB) and prints it
as a table.

The access token is read from TMDB_ACCESS_TOKEN, or from a .env file in the
current directory.`,
		Example: `  tmdb playing
  tmdb popular
  tmdb top --sort votes --limit 10
  tmdb upcoming --filter 'releasedAfter("2025-01-01")' -o json`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
				cmd.PrintErrf("Unknown command: '%s'\n\n", args[0])
			}
			_ = cmd.Usage()
			return errUsage
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "file to read TMDB_ACCESS_TOKEN from (default is ./.env)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	for _, verb := range verbs {
		rootCmd.AddCommand(a.newListCmd(verb))
	}
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI and exits with its status code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and maps the outcome to an exit code
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// initializeApp loads configuration and sets up the logger
func (a *app) initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	a.cfg, err = config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("env-file") {
		a.cfg.TMDB.EnvFile = a.envFile
	}

	a.logger = setupLogger(a.cfg.Logging, a.verbose, cmd.ErrOrStderr())

	a.logger.Debug().
		Str("base_url", a.cfg.TMDB.BaseURL).
		Str("language", a.cfg.TMDB.Language).
		Dur("timeout", a.cfg.TMDB.Timeout).
		Msg("Configuration loaded")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, verbose bool, out io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

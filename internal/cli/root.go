// Package cli wires configuration, the solver and the reports into the
// queensweep command.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hailam/queensweep/internal/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config

	out    io.Writer
	errOut io.Writer
}

// NewRootCommand builds the queensweep command tree. Reports go to out,
// logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      config.New(),
		out:    out,
		errOut: errOut,
	}

	root := &cobra.Command{
		Use:   "queensweep",
		Short: "Enumerate every way a queen can sweep the pawns off a board",
		Long: `queensweep searches every sequence of queen moves that captures all pawns
on an 8x8 board. The queen may only move onto the nearest pawn along one of
the eight directions, and every move must capture.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		RunE:              a.runSolve,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.String("layout", "", "layout YAML file (default: built-in puzzle)")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.Int("width", 0, "output width in columns (0: detect terminal)")
	pf.Bool("ascii", false, "draw boards with ASCII characters")

	bind(a.v, pf.Lookup("layout"), config.KeyLayout)
	bind(a.v, pf.Lookup("log-level"), config.KeyLogLevel)
	bind(a.v, pf.Lookup("width"), config.KeyWidth)
	bind(a.v, pf.Lookup("ascii"), config.KeyASCII)

	pf.Int("workers", 1, "number of workers splitting the search at the first move")
	pf.String("store", "memory", "solution store (memory, badger)")
	pf.Bool("boards", true, "print every intermediate board of each solution")
	pf.Int("limit", 0, "print at most this many solutions (0: all)")
	pf.Bool("histogram", true, "print the per-move branch histogram")
	pf.String("png-dir", "", "write one PNG per printed solution into this directory")
	pf.Bool("verify", false, "replay and validate every solution")

	bind(a.v, pf.Lookup("workers"), config.KeyWorkers)
	bind(a.v, pf.Lookup("store"), config.KeyStore)
	bind(a.v, pf.Lookup("boards"), config.KeyBoards)
	bind(a.v, pf.Lookup("limit"), config.KeyLimit)
	bind(a.v, pf.Lookup("histogram"), config.KeyHistogram)
	bind(a.v, pf.Lookup("png-dir"), config.KeyPNGDir)
	bind(a.v, pf.Lookup("verify"), config.KeyVerify)

	root.AddCommand(
		a.newSolveCommand(),
		a.newMovesCommand(),
		a.newLayoutCommand(),
	)
	return root
}

// load merges the config file, validates the settings and sets up logging.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		if err := config.ReadFile(a.v, a.cfgFile); err != nil {
			return err
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	SetupLogging(a.errOut, cfg.Level())
	log.Debug().Str("command", cmd.Name()).Interface("config", cfg).Msg("config-loaded")
	return nil
}

// SetupLogging points the global zerolog logger at a console writer on w.
func SetupLogging(w io.Writer, level zerolog.Level) {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
}

func bind(v *viper.Viper, f *pflag.Flag, key string) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	SetupLogging(os.Stderr, zerolog.InfoLevel)

	cmd := NewRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("queensweep failed")
		return 1
	}
	return 0
}

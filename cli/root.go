// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rectilinear/config"
	"github.com/katalvlaran/rectilinear/logging"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg      config.Config
	log      zerolog.Logger
	closeLog func() error
}

// NewRootCommand builds a fresh command tree. Each call is independent, so
// tests can run several trees side by side.
func NewRootCommand() *cobra.Command {
	a := &app{
		cfg:      config.Default(),
		log:      zerolog.Nop(),
		closeLog: func() error { return nil },
	}

	root := &cobra.Command{
		Use:   "rectilinear",
		Short: "Find the largest vertex-cornered rectangle inside an orthogonal polygon",
		Long: `rectilinear reads an orthogonal polygon as "x,y" lines and reports the
largest axis-aligned rectangle whose opposite corners are polygon vertices
and which lies entirely inside the polygon.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		"YAML config file (default ./"+config.DefaultFile+" if present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(a.solveCommand(), a.inspectCommand(), a.generateCommand())

	return root
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}

	return 0
}

// setup resolves configuration and builds the run logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logger, closeFn := logging.New(logging.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}, cmd.ErrOrStderr())
	a.log = logger.With().Str("run", uuid.NewString()).Logger()
	a.closeLog = closeFn

	a.log.Debug().Msg(logging.Banner(cmd.Name(), time.Now()))

	return nil
}

// runE wraps a subcommand body so the log file is released on every path.
func (a *app) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if cerr := a.closeLog(); err == nil {
			err = cerr
		}

		return err
	}
}

// Package cli implements the sorm command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgo/sorm/internal/config"
)

// RootOptions holds global flags and state shared by all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	Config *config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the sorm CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sorm",
		Short: "sorm - SurrealDB object mapping tools",
		Long:  "Generate entity contract code and check connectivity for sorm-backed applications.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if opts.Verbose {
				cfg.Log.Level = "debug"
			}
			opts.Config = cfg
			opts.Logger = newLogger(cmd.ErrOrStderr(), cfg.Log)
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewGenCommand(opts))
	cmd.AddCommand(NewPingCommand(opts))

	return cmd
}

// newLogger builds the structured logger described by cfg.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(w, handlerOpts))
	}
	return slog.New(slog.NewJSONHandler(w, handlerOpts))
}

// errorf logs err and returns it for cobra.
func (o *RootOptions) errorf(msg string, err error) error {
	o.Logger.Error(msg, slog.String("error", err.Error()))
	return fmt.Errorf("%s: %w", msg, err)
}

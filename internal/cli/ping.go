package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/forgo/sorm/pkg/database"
)

// PingOptions holds flags for the ping command.
type PingOptions struct {
	*RootOptions
	Timeout time.Duration

	// connect is replaced in tests.
	connect func(cfg database.Config, logger *slog.Logger) database.Database
}

// NewPingCommand creates the ping command.
func NewPingCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PingOptions{
		RootOptions: rootOpts,
		connect: func(cfg database.Config, logger *slog.Logger) database.Database {
			return database.NewSurrealDB(cfg, database.WithLogger(logger))
		},
	}

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the configured SurrealDB server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPing(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "connection timeout")

	return cmd
}

func runPing(ctx context.Context, opts *PingOptions, cmd *cobra.Command) error {
	if err := opts.Config.Validate(); err != nil {
		return opts.errorf("invalid configuration", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	db := opts.connect(opts.Config.DatabaseConfig(), opts.Logger)
	if err := db.Connect(ctx); err != nil {
		return opts.errorf("failed to connect to database", err)
	}
	defer func() { _ = db.Close() }()

	version, err := db.Version(ctx)
	if err != nil {
		return opts.errorf("ping failed", err)
	}

	opts.Logger.Info("database reachable",
		slog.String("endpoint", opts.Config.DatabaseConfig().Endpoint()),
		slog.String("version", version),
	)
	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}

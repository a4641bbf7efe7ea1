package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/surrealdb/surrealdb.go"
)

// SurrealDB implements the Database interface for SurrealDB
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
	logger *slog.Logger
}

// Option configures a SurrealDB handle.
type Option func(*SurrealDB)

// WithLogger sets the logger used for connection and statement logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *SurrealDB) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSurrealDB creates a new SurrealDB instance
func NewSurrealDB(cfg Config, opts ...Option) *SurrealDB {
	s := &SurrealDB{
		config: cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect establishes a connection to SurrealDB
func (s *SurrealDB) Connect(ctx context.Context) error {
	endpoint := s.config.Endpoint()

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	// Sign in as root user
	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	s.logger.Info("connected to surrealdb",
		slog.String("endpoint", endpoint),
		slog.String("namespace", s.config.Namespace),
		slog.String("database", s.config.Database),
	)
	return nil
}

// Close closes the database connection
func (s *SurrealDB) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping checks the database connection
func (s *SurrealDB) Ping(ctx context.Context) error {
	_, err := s.Version(ctx)
	return err
}

// Version returns the version string reported by the server
func (s *SurrealDB) Version(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", ErrConnection
	}
	v, err := s.db.Version(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return v.Version, nil
}

// Query executes a query and returns one result per statement
func (s *SurrealDB) Query(ctx context.Context, query string, vars map[string]any) ([]Result, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	started := time.Now()
	results, err := surrealdb.Query[cbor.RawMessage](ctx, s.db, query, vars)
	s.logger.Debug("surrealdb query",
		slog.String("query", query),
		slog.Int("vars", len(vars)),
		slog.Duration("duration", time.Since(started)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	if results == nil {
		return nil, nil
	}

	output := make([]Result, 0, len(*results))
	for _, r := range *results {
		if r.Status != StatusOK {
			if r.Error != nil {
				return nil, fmt.Errorf("%w: %s", ErrQuery, r.Error.Message)
			}
			return nil, fmt.Errorf("%w: statement status %s", ErrQuery, r.Status)
		}
		output = append(output, Result{
			Status: r.Status,
			Raw:    r.Result,
		})
	}

	return output, nil
}

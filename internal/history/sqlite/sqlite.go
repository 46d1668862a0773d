// Package sqlite is a history.Repository backed by a SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bartolsthoorn/gocopt/internal/history"
	"github.com/bartolsthoorn/gocopt/internal/history/sqlite/migrations"
	"github.com/bartolsthoorn/gocopt/internal/log"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "history.SQLite"})
	return nil
}

// Repository is a SQLite implementation of history.Repository.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

var _ history.Repository = (*Repository)(nil)

// NewRepository opens (creating if needed) the database and migrates it.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite history initialized at %s", cfg.DBPath)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

const runColumns = `
	id, source, status,
	mip, has_solution, objective,
	num_vars, num_constrs,
	elapsed_ns, error, created_at
`

// CreateRun stores a new run.
func (r *Repository) CreateRun(ctx context.Context, run history.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO runs (` + runColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(
		ctx,
		query,
		run.ID,
		run.Source,
		run.Status,
		run.MIP,
		run.HasSolution,
		run.Objective,
		run.NumVars,
		run.NumConstrs,
		run.Elapsed.Nanoseconds(),
		run.Error,
		run.CreatedAt.UnixMilli(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: runs.") {
			return fmt.Errorf("run %s: %w", run.ID, history.ErrAlreadyExists)
		}
		return fmt.Errorf("could not insert run: %w", err)
	}

	r.logger.Debugf("Created run in repository: %s", run.ID)
	return nil
}

// GetRun retrieves a run by ID.
func (r *Repository) GetRun(ctx context.Context, id string) (*history.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs WHERE id = ?`

	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run %s: %w", id, history.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs first.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]history.Run, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query runs: %w", err)
	}
	defer rows.Close()

	var runs []history.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate runs: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*history.Run, error) {
	var (
		run       history.Run
		elapsedNs int64
		createdAt int64
	)
	err := s.Scan(
		&run.ID,
		&run.Source,
		&run.Status,
		&run.MIP,
		&run.HasSolution,
		&run.Objective,
		&run.NumVars,
		&run.NumConstrs,
		&elapsedNs,
		&run.Error,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	run.Elapsed = time.Duration(elapsedNs)
	run.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &run, nil
}

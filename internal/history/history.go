// Package history records solve runs so they can be listed later.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	// ErrNotFound is returned when a run is not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a run already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned when a run is not valid.
	ErrNotValid = errors.New("not valid")
)

// Run is one finished solve.
type Run struct {
	ID string
	// Source is the model file that was solved.
	Source      string
	Status      string
	MIP         bool
	HasSolution bool
	Objective   float64
	NumVars     int
	NumConstrs  int
	Elapsed     time.Duration
	// Error is set when the solve failed.
	Error     string
	CreatedAt time.Time
}

// NewRunID returns a lexically sortable run ID for t. IDs made in the same
// millisecond still sort in creation order.
func NewRunID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}

// Validate checks the run can be stored.
func (r Run) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required: %w", ErrNotValid)
	}
	if _, err := ulid.ParseStrict(r.ID); err != nil {
		return fmt.Errorf("id %q: %w", r.ID, ErrNotValid)
	}
	if r.Source == "" {
		return fmt.Errorf("source is required: %w", ErrNotValid)
	}
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("creation time is required: %w", ErrNotValid)
	}
	return nil
}

// Repository is the interface for run persistence.
type Repository interface {
	CreateRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
	// ListRuns returns the most recent runs first. A limit of zero or less
	// returns every run.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

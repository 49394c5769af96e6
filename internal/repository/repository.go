package repository

import (
	"alcyxob/workout-planner/internal/domain"
	"context"
	"fmt"
	"log"
	"time"
)

// Gateway is the persistence contract shared by every backend (Postgres,
// MongoDB, local JSON files). Callers must not assume success: any call can
// fail with a *PersistenceError when the backend is unreachable or rejects
// the write.
//
// Save* operations are upserts (workouts by id, assignments by date).
// UpdateAssignmentDone and DeleteAssignment are no-ops for a date that has
// no assignment.
type Gateway interface {
	LoadWorkouts(ctx context.Context) ([]domain.Workout, error)
	SaveWorkouts(ctx context.Context, workouts []domain.Workout) error
	SaveWorkout(ctx context.Context, workout domain.Workout) error
	DeleteWorkout(ctx context.Context, workoutID string) error

	LoadAssignments(ctx context.Context) ([]domain.WorkoutAssignment, error)
	SaveAssignments(ctx context.Context, assignments []domain.WorkoutAssignment) error
	SaveAssignment(ctx context.Context, assignment domain.WorkoutAssignment) error
	UpdateAssignmentDone(ctx context.Context, date string, done bool) error
	DeleteAssignment(ctx context.Context, date string) error
	// DeleteAssignmentsByMonth removes every assignment whose date falls in
	// the given month (month is 1-12). Implementations bound the range as
	// [first of month, first of next month).
	DeleteAssignmentsByMonth(ctx context.Context, year int, month int) error
}

// PersistenceError wraps a failed gateway operation with a human-readable
// cause. Op names the operation, e.g. "save workouts".
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// WrapErr builds a *PersistenceError unless err is nil.
func WrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// MonthBounds returns the ISO dates bounding a calendar month as the
// half-open range [first of month, first of next month). String comparison
// on ISO dates is safe with these bounds for months of any length.
func MonthBounds(year int, month int) (lower, upper string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first.Format("2006-01-02"), first.AddDate(0, 1, 0).Format("2006-01-02")
}

// Migrate copies any workouts and assignments held in the local store into
// the remote backend, once, when the remote side has no matching rows yet.
// It is best-effort: failures are logged by the caller and never block
// startup, and existing remote data is never overwritten.
func Migrate(ctx context.Context, local, remote Gateway) error {
	workouts, err := local.LoadWorkouts(ctx)
	if err != nil {
		return err
	}
	if len(workouts) > 0 {
		remoteWorkouts, err := remote.LoadWorkouts(ctx)
		if err != nil {
			return err
		}
		if len(remoteWorkouts) == 0 {
			if err := remote.SaveWorkouts(ctx, workouts); err != nil {
				return err
			}
			log.Printf("Migrated %d workouts from local storage", len(workouts))
		}
	}

	assignments, err := local.LoadAssignments(ctx)
	if err != nil {
		return err
	}
	if len(assignments) > 0 {
		remoteAssignments, err := remote.LoadAssignments(ctx)
		if err != nil {
			return err
		}
		if len(remoteAssignments) == 0 {
			if err := remote.SaveAssignments(ctx, assignments); err != nil {
				return err
			}
			log.Printf("Migrated %d assignments from local storage", len(assignments))
		}
	}

	return nil
}

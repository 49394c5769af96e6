// Package postgres implements the persistence gateway on PostgreSQL via
// pgx. Workouts keep their exercise lists as a jsonb column; assignments
// are keyed by their ISO date.
package postgres

import (
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/repository"
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool and verifies the connection with a ping.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Gateway implements repository.Gateway on a pgx pool.
type Gateway struct {
	pool *pgxpool.Pool
}

// NewGateway constructs a Gateway.
func NewGateway(pool *pgxpool.Pool) *Gateway {
	return &Gateway{pool: pool}
}

// EnsureSchema creates the planner tables when they do not exist yet.
func (g *Gateway) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS workouts (
            id        text PRIMARY KEY,
            name      text NOT NULL,
            exercises jsonb NOT NULL DEFAULT '[]'::jsonb
        )`,
		`CREATE TABLE IF NOT EXISTS workout_assignments (
            date       text PRIMARY KEY,
            workout_id text NOT NULL,
            done       boolean NOT NULL DEFAULT false
        )`,
	}
	for _, stmt := range statements {
		if _, err := g.pool.Exec(ctx, stmt); err != nil {
			return repository.WrapErr("ensure schema", err)
		}
	}
	return nil
}

func (g *Gateway) LoadWorkouts(ctx context.Context) ([]domain.Workout, error) {
	const query = `SELECT id, name, exercises FROM workouts ORDER BY name`

	rows, err := g.pool.Query(ctx, query)
	if err != nil {
		return nil, repository.WrapErr("load workouts", err)
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		var w domain.Workout
		var exercises []byte
		if err := rows.Scan(&w.ID, &w.Name, &exercises); err != nil {
			return nil, repository.WrapErr("load workouts", err)
		}
		if err := json.Unmarshal(exercises, &w.Exercises); err != nil {
			return nil, repository.WrapErr("load workouts", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.WrapErr("load workouts", err)
	}
	return workouts, nil
}

const upsertWorkout = `INSERT INTO workouts (id, name, exercises) VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, exercises = EXCLUDED.exercises`

func (g *Gateway) SaveWorkouts(ctx context.Context, workouts []domain.Workout) error {
	tx, err := g.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return repository.WrapErr("save workouts", err)
	}
	defer tx.Rollback(ctx)

	for _, w := range workouts {
		exercises, err := json.Marshal(w.Exercises)
		if err != nil {
			return repository.WrapErr("save workouts", err)
		}
		if _, err := tx.Exec(ctx, upsertWorkout, w.ID, w.Name, exercises); err != nil {
			return repository.WrapErr("save workouts", err)
		}
	}
	return repository.WrapErr("save workouts", tx.Commit(ctx))
}

func (g *Gateway) SaveWorkout(ctx context.Context, workout domain.Workout) error {
	exercises, err := json.Marshal(workout.Exercises)
	if err != nil {
		return repository.WrapErr("save workout", err)
	}
	_, err = g.pool.Exec(ctx, upsertWorkout, workout.ID, workout.Name, exercises)
	return repository.WrapErr("save workout", err)
}

func (g *Gateway) DeleteWorkout(ctx context.Context, workoutID string) error {
	_, err := g.pool.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, workoutID)
	return repository.WrapErr("delete workout", err)
}

func (g *Gateway) LoadAssignments(ctx context.Context) ([]domain.WorkoutAssignment, error) {
	const query = `SELECT date, workout_id, done FROM workout_assignments ORDER BY date`

	rows, err := g.pool.Query(ctx, query)
	if err != nil {
		return nil, repository.WrapErr("load assignments", err)
	}
	defer rows.Close()

	var assignments []domain.WorkoutAssignment
	for rows.Next() {
		var a domain.WorkoutAssignment
		if err := rows.Scan(&a.Date, &a.WorkoutID, &a.Done); err != nil {
			return nil, repository.WrapErr("load assignments", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.WrapErr("load assignments", err)
	}
	return assignments, nil
}

const upsertAssignment = `INSERT INTO workout_assignments (date, workout_id, done) VALUES ($1, $2, $3)
        ON CONFLICT (date) DO UPDATE SET workout_id = EXCLUDED.workout_id, done = EXCLUDED.done`

func (g *Gateway) SaveAssignments(ctx context.Context, assignments []domain.WorkoutAssignment) error {
	tx, err := g.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return repository.WrapErr("save assignments", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		if _, err := tx.Exec(ctx, upsertAssignment, a.Date, a.WorkoutID, a.Done); err != nil {
			return repository.WrapErr("save assignments", err)
		}
	}
	return repository.WrapErr("save assignments", tx.Commit(ctx))
}

func (g *Gateway) SaveAssignment(ctx context.Context, assignment domain.WorkoutAssignment) error {
	_, err := g.pool.Exec(ctx, upsertAssignment, assignment.Date, assignment.WorkoutID, assignment.Done)
	return repository.WrapErr("save assignment", err)
}

func (g *Gateway) UpdateAssignmentDone(ctx context.Context, date string, done bool) error {
	// Updating a missing date affects zero rows, which is the contract's no-op.
	_, err := g.pool.Exec(ctx, `UPDATE workout_assignments SET done = $2 WHERE date = $1`, date, done)
	return repository.WrapErr("update assignment", err)
}

func (g *Gateway) DeleteAssignment(ctx context.Context, date string) error {
	_, err := g.pool.Exec(ctx, `DELETE FROM workout_assignments WHERE date = $1`, date)
	return repository.WrapErr("delete assignment", err)
}

func (g *Gateway) DeleteAssignmentsByMonth(ctx context.Context, year int, month int) error {
	lower, upper := repository.MonthBounds(year, month)
	_, err := g.pool.Exec(ctx,
		`DELETE FROM workout_assignments WHERE date >= $1 AND date < $2`, lower, upper)
	return repository.WrapErr("delete assignments for month", err)
}

var _ repository.Gateway = (*Gateway)(nil)

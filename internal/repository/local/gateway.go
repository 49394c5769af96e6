// Package local persists the planner's data as two flat JSON files under a
// directory, with full overwrite semantics. It is both the standalone
// backend when no remote credentials are configured and the fallback cache
// while a remote backend is active.
package local

import (
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/repository"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	workoutsFile    = "workouts.json"
	assignmentsFile = "assignments.json"
)

// Gateway implements repository.Gateway on top of the local filesystem.
type Gateway struct {
	dir string
}

// New creates a file-backed gateway rooted at dir, creating it if needed.
func New(dir string) (*Gateway, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, repository.WrapErr("create local storage directory", err)
	}
	return &Gateway{dir: dir}, nil
}

func (g *Gateway) readFile(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(g.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil // missing file reads as empty
		}
		return err
	}
	return json.Unmarshal(data, out)
}

func (g *Gateway) writeFile(name string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.dir, name), data, 0o644)
}

func (g *Gateway) LoadWorkouts(ctx context.Context) ([]domain.Workout, error) {
	var workouts []domain.Workout
	if err := g.readFile(workoutsFile, &workouts); err != nil {
		return nil, repository.WrapErr("load workouts", err)
	}
	return workouts, nil
}

func (g *Gateway) SaveWorkouts(ctx context.Context, workouts []domain.Workout) error {
	return repository.WrapErr("save workouts", g.writeFile(workoutsFile, workouts))
}

func (g *Gateway) SaveWorkout(ctx context.Context, workout domain.Workout) error {
	workouts, err := g.LoadWorkouts(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range workouts {
		if workouts[i].ID == workout.ID {
			workouts[i] = workout
			replaced = true
			break
		}
	}
	if !replaced {
		workouts = append(workouts, workout)
	}
	return repository.WrapErr("save workout", g.writeFile(workoutsFile, workouts))
}

func (g *Gateway) DeleteWorkout(ctx context.Context, workoutID string) error {
	workouts, err := g.LoadWorkouts(ctx)
	if err != nil {
		return err
	}
	kept := workouts[:0]
	for _, w := range workouts {
		if w.ID != workoutID {
			kept = append(kept, w)
		}
	}
	return repository.WrapErr("delete workout", g.writeFile(workoutsFile, kept))
}

func (g *Gateway) LoadAssignments(ctx context.Context) ([]domain.WorkoutAssignment, error) {
	var assignments []domain.WorkoutAssignment
	if err := g.readFile(assignmentsFile, &assignments); err != nil {
		return nil, repository.WrapErr("load assignments", err)
	}
	return assignments, nil
}

func (g *Gateway) SaveAssignments(ctx context.Context, assignments []domain.WorkoutAssignment) error {
	return repository.WrapErr("save assignments", g.writeFile(assignmentsFile, assignments))
}

func (g *Gateway) SaveAssignment(ctx context.Context, assignment domain.WorkoutAssignment) error {
	assignments, err := g.LoadAssignments(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range assignments {
		if assignments[i].Date == assignment.Date {
			assignments[i] = assignment
			replaced = true
			break
		}
	}
	if !replaced {
		assignments = append(assignments, assignment)
	}
	return repository.WrapErr("save assignment", g.writeFile(assignmentsFile, assignments))
}

func (g *Gateway) UpdateAssignmentDone(ctx context.Context, date string, done bool) error {
	assignments, err := g.LoadAssignments(ctx)
	if err != nil {
		return err
	}
	for i := range assignments {
		if assignments[i].Date == date {
			assignments[i].Done = done
			return repository.WrapErr("update assignment", g.writeFile(assignmentsFile, assignments))
		}
	}
	return nil
}

func (g *Gateway) DeleteAssignment(ctx context.Context, date string) error {
	assignments, err := g.LoadAssignments(ctx)
	if err != nil {
		return err
	}
	kept := assignments[:0]
	for _, a := range assignments {
		if a.Date != date {
			kept = append(kept, a)
		}
	}
	return repository.WrapErr("delete assignment", g.writeFile(assignmentsFile, kept))
}

func (g *Gateway) DeleteAssignmentsByMonth(ctx context.Context, year int, month int) error {
	assignments, err := g.LoadAssignments(ctx)
	if err != nil {
		return err
	}
	lower, upper := repository.MonthBounds(year, month)
	kept := assignments[:0]
	for _, a := range assignments {
		if a.Date < lower || a.Date >= upper {
			kept = append(kept, a)
		}
	}
	return repository.WrapErr("delete assignments for month", g.writeFile(assignmentsFile, kept))
}

var _ repository.Gateway = (*Gateway)(nil)

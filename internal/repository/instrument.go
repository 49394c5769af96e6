package repository

import (
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/observability"
	"context"
)

// Instrument wraps a Gateway so every operation is counted in Prometheus.
func Instrument(gw Gateway) Gateway {
	return &instrumentedGateway{next: gw}
}

type instrumentedGateway struct {
	next Gateway
}

func (g *instrumentedGateway) LoadWorkouts(ctx context.Context) ([]domain.Workout, error) {
	workouts, err := g.next.LoadWorkouts(ctx)
	observability.RecordGatewayOp("load_workouts", err)
	return workouts, err
}

func (g *instrumentedGateway) SaveWorkouts(ctx context.Context, workouts []domain.Workout) error {
	err := g.next.SaveWorkouts(ctx, workouts)
	observability.RecordGatewayOp("save_workouts", err)
	return err
}

func (g *instrumentedGateway) SaveWorkout(ctx context.Context, workout domain.Workout) error {
	err := g.next.SaveWorkout(ctx, workout)
	observability.RecordGatewayOp("save_workout", err)
	return err
}

func (g *instrumentedGateway) DeleteWorkout(ctx context.Context, workoutID string) error {
	err := g.next.DeleteWorkout(ctx, workoutID)
	observability.RecordGatewayOp("delete_workout", err)
	return err
}

func (g *instrumentedGateway) LoadAssignments(ctx context.Context) ([]domain.WorkoutAssignment, error) {
	assignments, err := g.next.LoadAssignments(ctx)
	observability.RecordGatewayOp("load_assignments", err)
	return assignments, err
}

func (g *instrumentedGateway) SaveAssignments(ctx context.Context, assignments []domain.WorkoutAssignment) error {
	err := g.next.SaveAssignments(ctx, assignments)
	observability.RecordGatewayOp("save_assignments", err)
	return err
}

func (g *instrumentedGateway) SaveAssignment(ctx context.Context, assignment domain.WorkoutAssignment) error {
	err := g.next.SaveAssignment(ctx, assignment)
	observability.RecordGatewayOp("save_assignment", err)
	return err
}

func (g *instrumentedGateway) UpdateAssignmentDone(ctx context.Context, date string, done bool) error {
	err := g.next.UpdateAssignmentDone(ctx, date, done)
	observability.RecordGatewayOp("update_assignment_done", err)
	return err
}

func (g *instrumentedGateway) DeleteAssignment(ctx context.Context, date string) error {
	err := g.next.DeleteAssignment(ctx, date)
	observability.RecordGatewayOp("delete_assignment", err)
	return err
}

func (g *instrumentedGateway) DeleteAssignmentsByMonth(ctx context.Context, year int, month int) error {
	err := g.next.DeleteAssignmentsByMonth(ctx, year, month)
	observability.RecordGatewayOp("delete_assignments_by_month", err)
	return err
}

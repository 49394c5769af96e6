package local

import (
	"alcyxob/workout-planner/internal/domain"
	"context"
	"testing"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	gw, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create gateway: %v", err)
	}
	return gw
}

func TestWorkoutRoundTrip(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()

	want := domain.DefaultWorkouts()
	if err := gw.SaveWorkouts(ctx, want); err != nil {
		t.Fatalf("save workouts: %v", err)
	}

	got, err := gw.LoadWorkouts(ctx)
	if err != nil {
		t.Fatalf("load workouts: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d workouts, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Name != want[i].Name {
			t.Errorf("workout %d mismatch: got %+v", i, got[i])
		}
		if len(got[i].Exercises) != len(want[i].Exercises) {
			t.Errorf("workout %s exercise count mismatch", want[i].ID)
		}
	}
}

func TestLoadFromEmptyDirectory(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()

	workouts, err := gw.LoadWorkouts(ctx)
	if err != nil {
		t.Fatalf("load workouts: %v", err)
	}
	if len(workouts) != 0 {
		t.Errorf("expected no workouts, got %d", len(workouts))
	}

	assignments, err := gw.LoadAssignments(ctx)
	if err != nil {
		t.Fatalf("load assignments: %v", err)
	}
	if len(assignments) != 0 {
		t.Errorf("expected no assignments, got %d", len(assignments))
	}
}

func TestSaveWorkoutUpsertsByID(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()

	if err := gw.SaveWorkout(ctx, domain.Workout{ID: "w1", Name: "Before"}); err != nil {
		t.Fatalf("save workout: %v", err)
	}
	if err := gw.SaveWorkout(ctx, domain.Workout{ID: "w1", Name: "After"}); err != nil {
		t.Fatalf("save workout: %v", err)
	}

	workouts, err := gw.LoadWorkouts(ctx)
	if err != nil {
		t.Fatalf("load workouts: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(workouts))
	}
	if workouts[0].Name != "After" {
		t.Errorf("expected upsert to replace, got name %q", workouts[0].Name)
	}
}

func TestSaveAssignmentUpsertsByDate(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()

	if err := gw.SaveAssignment(ctx, domain.WorkoutAssignment{Date: "2024-06-15", WorkoutID: "w1"}); err != nil {
		t.Fatalf("save assignment: %v", err)
	}
	if err := gw.SaveAssignment(ctx, domain.WorkoutAssignment{Date: "2024-06-15", WorkoutID: "w2"}); err != nil {
		t.Fatalf("save assignment: %v", err)
	}

	assignments, err := gw.LoadAssignments(ctx)
	if err != nil {
		t.Fatalf("load assignments: %v", err)
	}
	if len(assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(assignments))
	}
	if assignments[0].WorkoutID != "w2" {
		t.Errorf("expected workout w2, got %q", assignments[0].WorkoutID)
	}
}

func TestUpdateAssignmentDoneMissingDateIsNoop(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()

	if err := gw.UpdateAssignmentDone(ctx, "2024-06-15", true); err != nil {
		t.Fatalf("expected no-op, got error: %v", err)
	}

	assignments, err := gw.LoadAssignments(ctx)
	if err != nil {
		t.Fatalf("load assignments: %v", err)
	}
	if len(assignments) != 0 {
		t.Errorf("no-op update created assignments: %d", len(assignments))
	}
}

func TestDeleteAssignmentsByMonth(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()

	seed := []domain.WorkoutAssignment{
		{Date: "2024-01-31", WorkoutID: "w1"},
		{Date: "2024-02-01", WorkoutID: "w1"},
		{Date: "2024-02-29", WorkoutID: "w1"}, // leap day, past a naive "-28" bound
		{Date: "2024-03-01", WorkoutID: "w1"},
	}
	if err := gw.SaveAssignments(ctx, seed); err != nil {
		t.Fatalf("save assignments: %v", err)
	}

	if err := gw.DeleteAssignmentsByMonth(ctx, 2024, 2); err != nil {
		t.Fatalf("delete by month: %v", err)
	}

	assignments, err := gw.LoadAssignments(ctx)
	if err != nil {
		t.Fatalf("load assignments: %v", err)
	}
	if len(assignments) != 2 {
		t.Fatalf("expected 2 assignments left, got %d", len(assignments))
	}
	for _, a := range assignments {
		if a.Date == "2024-02-01" || a.Date == "2024-02-29" {
			t.Errorf("february assignment %s survived", a.Date)
		}
	}
}

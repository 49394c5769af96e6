package repository_test

import (
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/repository"
	"alcyxob/workout-planner/internal/repository/local"
	"context"
	"testing"
)

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		year         int
		month        int
		lower, upper string
	}{
		{2024, 2, "2024-02-01", "2024-03-01"},
		{2024, 6, "2024-06-01", "2024-07-01"},
		{2024, 12, "2024-12-01", "2025-01-01"},
	}
	for _, tc := range cases {
		lower, upper := repository.MonthBounds(tc.year, tc.month)
		if lower != tc.lower || upper != tc.upper {
			t.Errorf("MonthBounds(%d, %d) = %q..%q, want %q..%q",
				tc.year, tc.month, lower, upper, tc.lower, tc.upper)
		}
	}
}

func TestMigrateCopiesIntoEmptyRemote(t *testing.T) {
	ctx := context.Background()
	src, err := local.New(t.TempDir())
	if err != nil {
		t.Fatalf("local store: %v", err)
	}
	dst, err := local.New(t.TempDir())
	if err != nil {
		t.Fatalf("local store: %v", err)
	}

	if err := src.SaveWorkouts(ctx, domain.DefaultWorkouts()); err != nil {
		t.Fatalf("seed workouts: %v", err)
	}
	if err := src.SaveAssignments(ctx, []domain.WorkoutAssignment{{Date: "2024-06-15", WorkoutID: "legs-one"}}); err != nil {
		t.Fatalf("seed assignments: %v", err)
	}

	if err := repository.Migrate(ctx, src, dst); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	workouts, err := dst.LoadWorkouts(ctx)
	if err != nil {
		t.Fatalf("load workouts: %v", err)
	}
	if len(workouts) != 4 {
		t.Errorf("expected 4 migrated workouts, got %d", len(workouts))
	}
	assignments, err := dst.LoadAssignments(ctx)
	if err != nil {
		t.Fatalf("load assignments: %v", err)
	}
	if len(assignments) != 1 {
		t.Errorf("expected 1 migrated assignment, got %d", len(assignments))
	}
}

func TestMigrateNeverOverwritesExistingRemoteData(t *testing.T) {
	ctx := context.Background()
	src, err := local.New(t.TempDir())
	if err != nil {
		t.Fatalf("local store: %v", err)
	}
	dst, err := local.New(t.TempDir())
	if err != nil {
		t.Fatalf("local store: %v", err)
	}

	if err := src.SaveWorkouts(ctx, domain.DefaultWorkouts()); err != nil {
		t.Fatalf("seed source: %v", err)
	}
	existing := []domain.Workout{{ID: "remote-w", Name: "Remote Workout"}}
	if err := dst.SaveWorkouts(ctx, existing); err != nil {
		t.Fatalf("seed destination: %v", err)
	}

	if err := repository.Migrate(ctx, src, dst); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	workouts, err := dst.LoadWorkouts(ctx)
	if err != nil {
		t.Fatalf("load workouts: %v", err)
	}
	if len(workouts) != 1 || workouts[0].ID != "remote-w" {
		t.Errorf("remote data was overwritten: %+v", workouts)
	}
}

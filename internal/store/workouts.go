package store

import (
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/observability"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Editable exercise fields. Numeric fields are clamped to a minimum of 1
// when the value parses; free-form values like a weight of "body" pass
// through untouched.
const (
	FieldName    = "name"
	FieldSets    = "sets"
	FieldMinReps = "minReps"
	FieldMaxReps = "maxReps"
	FieldWeight  = "weight"
)

// UpdateExercise applies a single field edit to one exercise inside one
// workout. The change lands in memory immediately and is persisted
// asynchronously; a failed save is diverted to the local fallback store and
// never surfaced as an error.
//
// When minReps is raised above a valid positive maxReps, maxReps is raised
// to match. The reverse direction (max dropped below min) is only corrected
// at blur time by CorrectMaxReps.
func (s *Store) UpdateExercise(workoutID, exerciseID, field, value string) {
	processed := value
	switch field {
	case FieldSets, FieldMinReps, FieldMaxReps, FieldWeight:
		if f, err := strconv.ParseFloat(value, 64); err == nil && f < 1 {
			processed = "1"
		}
	case FieldName:
		// plain passthrough
	default:
		log.Printf("WARN: ignoring edit to unknown exercise field %q", field)
		return
	}

	s.mu.Lock()
	changed := false
	updated := cloneWorkouts(s.state.Workouts)
	for wi := range updated {
		if updated[wi].ID != workoutID {
			continue
		}
		for ei := range updated[wi].Exercises {
			ex := &updated[wi].Exercises[ei]
			if ex.ID != exerciseID {
				continue
			}
			previousMax := ex.MaxReps
			switch field {
			case FieldName:
				ex.Name = processed
			case FieldSets:
				ex.Sets = processed
			case FieldMinReps:
				ex.MinReps = processed
			case FieldMaxReps:
				ex.MaxReps = processed
			case FieldWeight:
				ex.Weight = processed
			}
			if field == FieldMinReps {
				minReps, minErr := strconv.Atoi(processed)
				maxReps, maxErr := strconv.Atoi(previousMax)
				if minErr == nil && maxErr == nil && minReps > maxReps && maxReps > 0 {
					ex.MaxReps = processed
				}
			}
			changed = true
		}
	}
	if !changed {
		s.mu.Unlock()
		return
	}

	s.state.Workouts = updated
	if s.state.SelectedWorkout != nil && s.state.SelectedWorkout.ID == workoutID {
		for i := range updated {
			if updated[i].ID == workoutID {
				w := cloneWorkout(updated[i])
				s.state.SelectedWorkout = &w
			}
		}
	}
	snapshot := cloneWorkouts(updated)
	s.mu.Unlock()

	// Fire-and-forget: the save is detached from the triggering request and
	// is never cancelled by it.
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx := context.Background()
		if err := s.gw.SaveWorkouts(ctx, snapshot); err != nil {
			log.Printf("ERROR: failed to save workouts: %v", err)
			observability.RecordFallbackWrite()
			if err := s.fallback.SaveWorkouts(ctx, snapshot); err != nil {
				log.Printf("WARN: local fallback write failed: %v", err)
			}
		}
	}()
}

// CorrectMaxReps is the blur-time correction pass for the max-reps field: if
// the entered value is below the exercise's minReps (and minReps is a valid
// positive number), maxReps is forced back to minReps.
func (s *Store) CorrectMaxReps(workoutID, exerciseID, value string) {
	s.mu.Lock()
	var minValue string
	for i := range s.state.Workouts {
		if s.state.Workouts[i].ID != workoutID {
			continue
		}
		if ex := s.state.Workouts[i].FindExercise(exerciseID); ex != nil {
			minValue = ex.MinReps
		}
	}
	s.mu.Unlock()
	if minValue == "" {
		return
	}

	minReps, minErr := strconv.Atoi(minValue)
	maxReps, maxErr := strconv.Atoi(value)
	if minErr == nil && maxErr == nil && maxReps < minReps && minReps > 0 {
		s.UpdateExercise(workoutID, exerciseID, FieldMaxReps, minValue)
	}
}

// SelectWorkout sets the workout being edited and opens the edit modal.
func (s *Store) SelectWorkout(workoutID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Workouts {
		if s.state.Workouts[i].ID == workoutID {
			w := cloneWorkout(s.state.Workouts[i])
			s.state.SelectedWorkout = &w
			s.state.IsModalOpen = true
			return
		}
	}
}

// CloseModal closes the edit modal without touching the selection.
func (s *Store) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsModalOpen = false
}

// SaveWorkoutChanges closes the edit modal and confirms the edit with a
// toast. The exercise edits themselves were already persisted field by
// field by UpdateExercise.
func (s *Store) SaveWorkoutChanges() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.SelectedDate == "" || s.state.SelectedWorkout == nil {
		return
	}
	s.state.IsModalOpen = false
	s.showToastLocked(fmt.Sprintf("%s edited for %s", s.state.SelectedWorkout.Name, FormatDate(s.state.SelectedDate)))
}

// AddWorkout creates a new empty workout and persists it.
func (s *Store) AddWorkout(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	workout := domain.Workout{
		ID:        uuid.NewString(),
		Name:      name,
		Exercises: []domain.Exercise{},
	}
	if err := s.gw.SaveWorkout(ctx, workout); err != nil {
		log.Printf("ERROR: failed to create workout: %v", err)
		s.setError("Failed to create workout")
		return
	}

	s.mu.Lock()
	s.state.Workouts = append(s.state.Workouts, workout)
	s.showToastLocked(fmt.Sprintf("%s created", name))
	s.mu.Unlock()
}

// DeleteWorkout removes a workout definition. A workout that is still
// assigned to any date is protected, mirroring the done-assignment guard.
func (s *Store) DeleteWorkout(ctx context.Context, workoutID string) {
	s.mu.Lock()
	var name string
	for i := range s.state.Workouts {
		if s.state.Workouts[i].ID == workoutID {
			name = s.state.Workouts[i].Name
		}
	}
	if name == "" {
		s.mu.Unlock()
		return
	}
	for _, a := range s.state.Assignments {
		if a.WorkoutID == workoutID {
			s.showToastLocked("Cannot delete a scheduled workout")
			s.mu.Unlock()
			return
		}
	}
	s.mu.Unlock()

	if err := s.gw.DeleteWorkout(ctx, workoutID); err != nil {
		log.Printf("ERROR: failed to delete workout: %v", err)
		s.setError("Failed to delete workout")
		return
	}

	s.mu.Lock()
	kept := s.state.Workouts[:0]
	for _, w := range s.state.Workouts {
		if w.ID != workoutID {
			kept = append(kept, w)
		}
	}
	s.state.Workouts = kept
	if s.state.SelectedWorkout != nil && s.state.SelectedWorkout.ID == workoutID {
		s.state.SelectedWorkout = nil
		s.state.IsModalOpen = false
	}
	s.showToastLocked(fmt.Sprintf("%s deleted", name))
	s.mu.Unlock()
}

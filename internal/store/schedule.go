package store

import (
	"alcyxob/workout-planner/internal/domain"
	"context"
	"fmt"
	"log"
	"time"
)

// SelectDate sets the selected calendar date. When an assignment exists for
// that date the assigned workout becomes the selected workout, otherwise the
// selection is cleared. Assignments are never touched.
func (s *Store) SelectDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SelectedDate = date
	s.state.SelectedWorkout = nil
	for _, a := range s.state.Assignments {
		if a.Date != date {
			continue
		}
		for i := range s.state.Workouts {
			if s.state.Workouts[i].ID == a.WorkoutID {
				w := cloneWorkout(s.state.Workouts[i])
				s.state.SelectedWorkout = &w
			}
		}
	}
}

// AssignWorkout binds the selected workout to the selected date, replacing
// any prior assignment for that date. The upsert is persisted first; on
// failure the in-memory assignments are left untouched and only the error
// flag is set (no optimistic update on this path).
func (s *Store) AssignWorkout(ctx context.Context) {
	s.mu.Lock()
	if s.state.SelectedDate == "" || s.state.SelectedWorkout == nil {
		s.mu.Unlock()
		return
	}
	date := s.state.SelectedDate
	workoutID := s.state.SelectedWorkout.ID
	workoutName := s.state.SelectedWorkout.Name
	hadPrior := false
	for _, a := range s.state.Assignments {
		if a.Date == date {
			hadPrior = true
		}
	}
	s.mu.Unlock()

	assignment := domain.WorkoutAssignment{Date: date, WorkoutID: workoutID}
	if err := s.gw.SaveAssignment(ctx, assignment); err != nil {
		log.Printf("ERROR: failed to assign workout: %v", err)
		s.setError("Failed to assign workout")
		return
	}

	s.mu.Lock()
	kept := s.state.Assignments[:0]
	for _, a := range s.state.Assignments {
		if a.Date != date {
			kept = append(kept, a)
		}
	}
	s.state.Assignments = append(kept, assignment)
	s.state.IsModalOpen = false
	action := "assigned to"
	if hadPrior {
		action = "replaced with"
	}
	s.showToastLocked(fmt.Sprintf("%s %s %s", workoutName, action, FormatDate(date)))
	s.mu.Unlock()
}

// RemoveWorkout removes the assignment for the selected date, clears the
// selection and closes the modal. Done assignments are protected: the
// removal is refused with a toast and the gateway is never called.
func (s *Store) RemoveWorkout(ctx context.Context) {
	s.mu.Lock()
	date := s.state.SelectedDate
	if date == "" {
		s.mu.Unlock()
		return
	}
	for _, a := range s.state.Assignments {
		if a.Date == date && a.Done {
			s.showToastLocked("Cannot delete completed workouts")
			s.mu.Unlock()
			return
		}
	}
	s.mu.Unlock()

	if err := s.gw.DeleteAssignment(ctx, date); err != nil {
		log.Printf("ERROR: failed to remove workout: %v", err)
		s.setError("Failed to remove workout")
		return
	}

	s.mu.Lock()
	s.removeAssignmentLocked(date)
	s.state.SelectedWorkout = nil
	s.state.IsModalOpen = false
	s.showToastLocked(fmt.Sprintf("Workout removed for %s", FormatDate(date)))
	s.mu.Unlock()
}

// RemoveWorkoutFromSchedule removes the assignment for an explicit date from
// a schedule view. Same done-guard as RemoveWorkout, but selection and modal
// state stay untouched and success emits no toast.
func (s *Store) RemoveWorkoutFromSchedule(ctx context.Context, date string) {
	s.mu.Lock()
	for _, a := range s.state.Assignments {
		if a.Date == date && a.Done {
			s.showToastLocked("Cannot delete completed workouts")
			s.mu.Unlock()
			return
		}
	}
	s.mu.Unlock()

	if err := s.gw.DeleteAssignment(ctx, date); err != nil {
		log.Printf("ERROR: failed to remove workout from schedule: %v", err)
		s.setError("Failed to remove workout")
		return
	}

	s.mu.Lock()
	s.removeAssignmentLocked(date)
	s.mu.Unlock()
}

// RemoveAllWorkoutsFromSchedule clears the currently viewed schedule month,
// preserving completed workouts. Deletions go one assignment at a time; the
// in-memory set is only pruned after every delete succeeded.
func (s *Store) RemoveAllWorkoutsFromSchedule(ctx context.Context) {
	s.mu.Lock()
	year, month := s.state.ScheduleMonth.Year(), s.state.ScheduleMonth.Month()
	monthName := FormatMonthYear(s.state.ScheduleMonth)

	var pending []domain.WorkoutAssignment
	completed := 0
	for _, a := range s.state.Assignments {
		if !inMonth(a.Date, year, month) {
			continue
		}
		if a.Done {
			completed++
		} else {
			pending = append(pending, a)
		}
	}

	if len(pending) == 0 {
		if completed > 0 {
			s.showToastLocked("No incomplete workouts to remove (completed workouts preserved)")
		} else {
			s.showToastLocked("No workouts to remove")
		}
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	for _, a := range pending {
		if err := s.gw.DeleteAssignment(ctx, a.Date); err != nil {
			log.Printf("ERROR: failed to remove workouts: %v", err)
			s.setError("Failed to remove workouts")
			return
		}
	}

	s.mu.Lock()
	kept := s.state.Assignments[:0]
	for _, a := range s.state.Assignments {
		if !inMonth(a.Date, year, month) || a.Done {
			kept = append(kept, a)
		}
	}
	s.state.Assignments = kept
	if completed > 0 {
		s.showToastLocked(fmt.Sprintf("%d incomplete workouts removed for %s (%d completed workouts preserved)",
			len(pending), monthName, completed))
	} else {
		s.showToastLocked(fmt.Sprintf("All %d workouts removed for %s", len(pending), monthName))
	}
	s.mu.Unlock()
}

// MarkWorkoutAsDone flips the completion flag for the assignment at date.
// Persist first; on failure memory stays unchanged and only the error flag
// is set.
func (s *Store) MarkWorkoutAsDone(ctx context.Context, date string, done bool) {
	if err := s.gw.UpdateAssignmentDone(ctx, date, done); err != nil {
		log.Printf("ERROR: failed to update workout status: %v", err)
		s.setError("Failed to update workout status")
		return
	}

	s.mu.Lock()
	for i := range s.state.Assignments {
		if s.state.Assignments[i].Date == date {
			s.state.Assignments[i].Done = done
		}
	}
	status := "not done"
	if done {
		status = "done"
	}
	s.showToastLocked(fmt.Sprintf("Workout marked as %s", status))
	s.mu.Unlock()
}

func (s *Store) removeAssignmentLocked(date string) {
	kept := s.state.Assignments[:0]
	for _, a := range s.state.Assignments {
		if a.Date != date {
			kept = append(kept, a)
		}
	}
	s.state.Assignments = kept
}

func inMonth(date string, year int, month time.Month) bool {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return t.Year() == year && t.Month() == month
}

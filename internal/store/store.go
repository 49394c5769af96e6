// Package store owns the whole application state. Every mutation goes
// through a named action method; persistence failures never escape an
// action, they land in the state's Error field (or divert to the local
// fallback store, depending on the action).
package store

import (
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/repository"
	"context"
	"log"
	"sync"
	"time"
)

// ToastDuration is how long the presentation layer should keep a toast
// visible before calling DismissToast. The store holds no timer itself.
const ToastDuration = 2 * time.Second

// ScheduleView selects the schedule layout.
type ScheduleView string

const (
	ScheduleViewWeekly  ScheduleView = "weekly"
	ScheduleViewMonthly ScheduleView = "monthly"
)

// Screen selects the top-level view.
type Screen string

const (
	ScreenCalendar Screen = "calendar"
	ScreenSchedule Screen = "schedule"
)

// Direction steps a calendar cursor backwards or forwards.
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// State is the single authoritative state value. Workouts and Assignments
// are the persisted data; everything else is transient UI state.
type State struct {
	Workouts    []domain.Workout           `json:"workouts"`
	Assignments []domain.WorkoutAssignment `json:"workoutAssignments"`

	SelectedDate    string          `json:"selectedDate"`
	SelectedWorkout *domain.Workout `json:"selectedWorkout"`
	CurrentMonth    time.Time       `json:"currentMonth"`
	ScheduleMonth   time.Time       `json:"scheduleMonth"`
	ScheduleWeek    time.Time       `json:"scheduleWeek"`
	ScheduleView    ScheduleView    `json:"scheduleView"`
	CurrentView     Screen          `json:"currentView"`

	IsLoading    bool   `json:"isLoading"`
	Error        string `json:"error,omitempty"`
	IsModalOpen  bool   `json:"isModalOpen"`
	ToastVisible bool   `json:"toastVisible"`
	ToastMessage string `json:"toastMessage"`
}

// Store is the single owner of application state.
//
// gw is the gateway selected at startup; fallback is always the local JSON
// store and doubles as the safety net for failed saves. When no remote
// backend is configured the two are the same instance and remote is false.
type Store struct {
	mu       sync.Mutex
	state    State
	gw       repository.Gateway
	fallback repository.Gateway
	remote   bool
	wg       sync.WaitGroup
}

// New builds a store with the seed workouts, today's date selected and all
// three calendar cursors on the current month/week.
func New(gw, fallback repository.Gateway, remote bool) *Store {
	now := time.Now()
	return &Store{
		gw:       gw,
		fallback: fallback,
		remote:   remote,
		state: State{
			Workouts:      domain.DefaultWorkouts(),
			Assignments:   []domain.WorkoutAssignment{},
			SelectedDate:  now.Format(dateLayout),
			CurrentMonth:  now,
			ScheduleMonth: now,
			ScheduleWeek:  now,
			ScheduleView:  ScheduleViewWeekly,
			CurrentView:   ScreenCalendar,
			IsLoading:     true,
		},
	}
}

// Snapshot returns a copy of the current state, safe to read and serialize
// while actions keep running.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Workouts = cloneWorkouts(s.state.Workouts)
	snap.Assignments = append([]domain.WorkoutAssignment(nil), s.state.Assignments...)
	if s.state.SelectedWorkout != nil {
		w := cloneWorkout(*s.state.SelectedWorkout)
		snap.SelectedWorkout = &w
	}
	return snap
}

// Wait blocks until in-flight asynchronous saves have drained. Called on
// shutdown and by tests.
func (s *Store) Wait() {
	s.wg.Wait()
}

// LoadData hydrates the store from the gateway: best-effort migration of
// local data to a freshly configured remote backend, then a concurrent load
// of workouts and assignments. On failure it flags the error and falls back
// to whatever the local cache holds. The loading flag is always cleared.
func (s *Store) LoadData(ctx context.Context) {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Error = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state.IsLoading = false
		s.mu.Unlock()
	}()

	if s.remote {
		if err := repository.Migrate(ctx, s.fallback, s.gw); err != nil {
			log.Printf("WARN: migration of local data skipped: %v", err)
		}
	}

	var (
		workouts    []domain.Workout
		assignments []domain.WorkoutAssignment
		wErr, aErr  error
		wg          sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		workouts, wErr = s.gw.LoadWorkouts(ctx)
	}()
	go func() {
		defer wg.Done()
		assignments, aErr = s.gw.LoadAssignments(ctx)
	}()
	wg.Wait()

	if wErr != nil || aErr != nil {
		err := wErr
		if err == nil {
			err = aErr
		}
		log.Printf("ERROR: failed to load data: %v", err)
		s.mu.Lock()
		s.state.Error = "Failed to load data from database"
		s.mu.Unlock()
		s.hydrateFromFallback(ctx)
		return
	}

	s.mu.Lock()
	if len(workouts) > 0 {
		s.state.Workouts = workouts
	} else {
		s.state.Workouts = domain.DefaultWorkouts()
	}
	if assignments == nil {
		assignments = []domain.WorkoutAssignment{}
	}
	s.state.Assignments = assignments
	s.mu.Unlock()
}

// hydrateFromFallback replaces in-memory data with the local cache, when the
// cache actually holds something. Seed defaults survive an empty cache.
func (s *Store) hydrateFromFallback(ctx context.Context) {
	workouts, err := s.fallback.LoadWorkouts(ctx)
	if err != nil {
		log.Printf("WARN: local fallback unavailable for workouts: %v", err)
	} else if len(workouts) > 0 {
		s.mu.Lock()
		s.state.Workouts = workouts
		s.mu.Unlock()
	}

	assignments, err := s.fallback.LoadAssignments(ctx)
	if err != nil {
		log.Printf("WARN: local fallback unavailable for assignments: %v", err)
	} else if len(assignments) > 0 {
		s.mu.Lock()
		s.state.Assignments = assignments
		s.mu.Unlock()
	}
}

// ShowToast sets the transient toast message and clears any pending error.
func (s *Store) ShowToast(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showToastLocked(message)
}

// DismissToast hides the toast. The presentation layer calls this after
// ToastDuration; the store never schedules the dismissal itself.
func (s *Store) DismissToast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ToastVisible = false
}

func (s *Store) showToastLocked(message string) {
	s.state.ToastMessage = message
	s.state.ToastVisible = true
	s.state.Error = ""
}

func (s *Store) setError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = message
}

func cloneWorkout(w domain.Workout) domain.Workout {
	w.Exercises = append([]domain.Exercise(nil), w.Exercises...)
	return w
}

func cloneWorkouts(workouts []domain.Workout) []domain.Workout {
	cloned := make([]domain.Workout, len(workouts))
	for i, w := range workouts {
		cloned[i] = cloneWorkout(w)
	}
	return cloned
}

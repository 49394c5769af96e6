package store

import "time"

// Navigation actions are pure state transitions over the three independent
// calendar cursors (planner month, schedule month, schedule week) and the
// view flags. Month steps use standard date arithmetic, so a cursor sitting
// on the 31st may roll over into the following month.

// ChangeMonth steps the planner calendar by one month.
func (s *Store) ChangeMonth(direction Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentMonth = stepMonth(s.state.CurrentMonth, direction)
}

// ChangeScheduleMonth steps the monthly schedule by one month.
func (s *Store) ChangeScheduleMonth(direction Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ScheduleMonth = stepMonth(s.state.ScheduleMonth, direction)
}

// ChangeScheduleWeek steps the weekly schedule by exactly seven days.
func (s *Store) ChangeScheduleWeek(direction Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	days := 7
	if direction == DirectionPrev {
		days = -7
	}
	s.state.ScheduleWeek = s.state.ScheduleWeek.AddDate(0, 0, days)
}

// GoToToday resets the planner calendar to the current month and selects
// today's date.
func (s *Store) GoToToday() {
	today := time.Now()
	s.mu.Lock()
	s.state.CurrentMonth = today
	s.mu.Unlock()
	s.SelectDate(today.Format(dateLayout))
}

// GoToTodaySchedule resets the monthly schedule to the current month.
func (s *Store) GoToTodaySchedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ScheduleMonth = time.Now()
}

// GoToTodayWeekSchedule resets the weekly schedule to the current week.
func (s *Store) GoToTodayWeekSchedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ScheduleWeek = time.Now()
}

// SetScheduleView switches between the weekly and monthly schedule layouts.
func (s *Store) SetScheduleView(view ScheduleView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ScheduleView = view
}

// SetCurrentView switches between the calendar and schedule screens.
func (s *Store) SetCurrentView(view Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentView = view
}

func stepMonth(t time.Time, direction Direction) time.Time {
	months := 1
	if direction == DirectionPrev {
		months = -1
	}
	return t.AddDate(0, months, 0)
}

package api

import (
	"alcyxob/workout-planner/internal/store"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PlannerHandler exposes the store's actions over HTTP. Every mutating
// endpoint answers with the fresh state snapshot, so the client can always
// re-render from the response.
type PlannerHandler struct {
	store *store.Store
}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler(st *store.Store) *PlannerHandler {
	return &PlannerHandler{store: st}
}

// --- DTOs ---

type updateExerciseRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type maxRepsBlurRequest struct {
	Value string `json:"value"`
}

type createWorkoutRequest struct {
	Name string `json:"name" binding:"required"`
}

type selectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type selectWorkoutRequest struct {
	WorkoutID string `json:"workoutId" binding:"required"`
}

type markDoneRequest struct {
	Done *bool `json:"done" binding:"required"`
}

type directionRequest struct {
	Direction store.Direction `json:"direction" binding:"required"`
}

type scheduleViewRequest struct {
	View store.ScheduleView `json:"view" binding:"required"`
}

type currentViewRequest struct {
	View store.Screen `json:"view" binding:"required"`
}

func (h *PlannerHandler) snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// --- Handler methods ---

// GetState returns the current state snapshot.
func (h *PlannerHandler) GetState(c *gin.Context) {
	h.snapshot(c)
}

// LoadData re-hydrates the store from persistence.
func (h *PlannerHandler) LoadData(c *gin.Context) {
	h.store.LoadData(c.Request.Context())
	h.snapshot(c)
}

// UpdateExercise applies a single field edit to an exercise.
func (h *PlannerHandler) UpdateExercise(c *gin.Context) {
	var req updateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.store.UpdateExercise(c.Param("workoutId"), c.Param("exerciseId"), req.Field, req.Value)
	h.snapshot(c)
}

// MaxRepsBlur runs the blur-time max-reps correction.
func (h *PlannerHandler) MaxRepsBlur(c *gin.Context) {
	var req maxRepsBlurRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.store.CorrectMaxReps(c.Param("workoutId"), c.Param("exerciseId"), req.Value)
	h.snapshot(c)
}

// CreateWorkout adds a new empty workout.
func (h *PlannerHandler) CreateWorkout(c *gin.Context) {
	var req createWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.store.AddWorkout(c.Request.Context(), req.Name)
	h.snapshot(c)
}

// DeleteWorkout removes a workout definition.
func (h *PlannerHandler) DeleteWorkout(c *gin.Context) {
	h.store.DeleteWorkout(c.Request.Context(), c.Param("workoutId"))
	h.snapshot(c)
}

// SelectDate selects a calendar date.
func (h *PlannerHandler) SelectDate(c *gin.Context) {
	var req selectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if !validDate(req.Date) {
		abortWithError(c, http.StatusBadRequest, "Date must be formatted YYYY-MM-DD")
		return
	}
	h.store.SelectDate(req.Date)
	h.snapshot(c)
}

// SelectWorkout selects a workout for editing and opens the modal.
func (h *PlannerHandler) SelectWorkout(c *gin.Context) {
	var req selectWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.store.SelectWorkout(req.WorkoutID)
	h.snapshot(c)
}

// CloseModal closes the edit modal.
func (h *PlannerHandler) CloseModal(c *gin.Context) {
	h.store.CloseModal()
	h.snapshot(c)
}

// SaveWorkoutChanges confirms the current edit session.
func (h *PlannerHandler) SaveWorkoutChanges(c *gin.Context) {
	h.store.SaveWorkoutChanges()
	h.snapshot(c)
}

// AssignWorkout assigns the selected workout to the selected date.
func (h *PlannerHandler) AssignWorkout(c *gin.Context) {
	h.store.AssignWorkout(c.Request.Context())
	h.snapshot(c)
}

// RemoveWorkout removes the assignment for the selected date.
func (h *PlannerHandler) RemoveWorkout(c *gin.Context) {
	h.store.RemoveWorkout(c.Request.Context())
	h.snapshot(c)
}

// RemoveFromSchedule removes the assignment for an explicit date.
func (h *PlannerHandler) RemoveFromSchedule(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		abortWithError(c, http.StatusBadRequest, "Date must be formatted YYYY-MM-DD")
		return
	}
	h.store.RemoveWorkoutFromSchedule(c.Request.Context(), date)
	h.snapshot(c)
}

// RemoveMonthFromSchedule clears the viewed schedule month, preserving
// completed workouts.
func (h *PlannerHandler) RemoveMonthFromSchedule(c *gin.Context) {
	h.store.RemoveAllWorkoutsFromSchedule(c.Request.Context())
	h.snapshot(c)
}

// MarkDone flips an assignment's completion flag.
func (h *PlannerHandler) MarkDone(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		abortWithError(c, http.StatusBadRequest, "Date must be formatted YYYY-MM-DD")
		return
	}
	var req markDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.store.MarkWorkoutAsDone(c.Request.Context(), date, *req.Done)
	h.snapshot(c)
}

// ChangeMonth steps the planner calendar.
func (h *PlannerHandler) ChangeMonth(c *gin.Context) {
	direction, ok := h.bindDirection(c)
	if !ok {
		return
	}
	h.store.ChangeMonth(direction)
	h.snapshot(c)
}

// ChangeScheduleMonth steps the monthly schedule.
func (h *PlannerHandler) ChangeScheduleMonth(c *gin.Context) {
	direction, ok := h.bindDirection(c)
	if !ok {
		return
	}
	h.store.ChangeScheduleMonth(direction)
	h.snapshot(c)
}

// ChangeScheduleWeek steps the weekly schedule.
func (h *PlannerHandler) ChangeScheduleWeek(c *gin.Context) {
	direction, ok := h.bindDirection(c)
	if !ok {
		return
	}
	h.store.ChangeScheduleWeek(direction)
	h.snapshot(c)
}

// GoToToday jumps the planner calendar to today.
func (h *PlannerHandler) GoToToday(c *gin.Context) {
	h.store.GoToToday()
	h.snapshot(c)
}

// GoToTodaySchedule jumps the monthly schedule to the current month.
func (h *PlannerHandler) GoToTodaySchedule(c *gin.Context) {
	h.store.GoToTodaySchedule()
	h.snapshot(c)
}

// GoToTodayWeekSchedule jumps the weekly schedule to the current week.
func (h *PlannerHandler) GoToTodayWeekSchedule(c *gin.Context) {
	h.store.GoToTodayWeekSchedule()
	h.snapshot(c)
}

// SetScheduleView toggles between weekly and monthly schedule layouts.
func (h *PlannerHandler) SetScheduleView(c *gin.Context) {
	var req scheduleViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.View != store.ScheduleViewWeekly && req.View != store.ScheduleViewMonthly {
		abortWithError(c, http.StatusBadRequest, "View must be weekly or monthly")
		return
	}
	h.store.SetScheduleView(req.View)
	h.snapshot(c)
}

// SetCurrentView switches between the calendar and schedule screens.
func (h *PlannerHandler) SetCurrentView(c *gin.Context) {
	var req currentViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.View != store.ScreenCalendar && req.View != store.ScreenSchedule {
		abortWithError(c, http.StatusBadRequest, "View must be calendar or schedule")
		return
	}
	h.store.SetCurrentView(req.View)
	h.snapshot(c)
}

// DismissToast hides the toast after the presentation timer fires.
func (h *PlannerHandler) DismissToast(c *gin.Context) {
	h.store.DismissToast()
	h.snapshot(c)
}

func (h *PlannerHandler) bindDirection(c *gin.Context) (store.Direction, bool) {
	var req directionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return "", false
	}
	if req.Direction != store.DirectionPrev && req.Direction != store.DirectionNext {
		abortWithError(c, http.StatusBadRequest, "Direction must be prev or next")
		return "", false
	}
	return req.Direction, true
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

package api

import (
	"alcyxob/workout-planner/internal/store"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes wires the planner endpoints. When authSecret is non-empty
// every /api/v1 route requires a bearer token signed with it; /ping and
// /metrics stay open either way.
func SetupRoutes(router *gin.Engine, authSecret string, st *store.Store) {
	handler := NewPlannerHandler(st)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	if authSecret != "" {
		apiV1.Use(AuthMiddleware(authSecret))
	}

	apiV1.GET("/state", handler.GetState)
	apiV1.POST("/load", handler.LoadData)

	workouts := apiV1.Group("/workouts")
	{
		workouts.POST("", handler.CreateWorkout)
		workouts.DELETE("/:workoutId", handler.DeleteWorkout)
		workouts.PUT("/:workoutId/exercises/:exerciseId", handler.UpdateExercise)
		workouts.POST("/:workoutId/exercises/:exerciseId/max-reps-blur", handler.MaxRepsBlur)
	}

	selection := apiV1.Group("/selection")
	{
		selection.POST("/date", handler.SelectDate)
		selection.POST("/workout", handler.SelectWorkout)
	}

	modal := apiV1.Group("/modal")
	{
		modal.POST("/save", handler.SaveWorkoutChanges)
		modal.POST("/close", handler.CloseModal)
	}

	schedule := apiV1.Group("/schedule")
	{
		schedule.POST("/assign", handler.AssignWorkout)
		schedule.POST("/remove", handler.RemoveWorkout)
		schedule.DELETE("", handler.RemoveMonthFromSchedule)
		schedule.DELETE("/:date", handler.RemoveFromSchedule)
		schedule.PUT("/:date/done", handler.MarkDone)
	}

	navigation := apiV1.Group("/navigation")
	{
		navigation.POST("/month", handler.ChangeMonth)
		navigation.POST("/schedule-month", handler.ChangeScheduleMonth)
		navigation.POST("/schedule-week", handler.ChangeScheduleWeek)
		navigation.POST("/today", handler.GoToToday)
		navigation.POST("/schedule-today", handler.GoToTodaySchedule)
		navigation.POST("/schedule-week-today", handler.GoToTodayWeekSchedule)
		navigation.POST("/schedule-view", handler.SetScheduleView)
		navigation.POST("/view", handler.SetCurrentView)
	}

	apiV1.POST("/toast/dismiss", handler.DismissToast)
}

package api

import (
	"alcyxob/fitness-tracker/internal/auth"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles the service layer for the router. Export may be nil,
// in which case the export route is not registered.
type Services struct {
	WorkoutPlans     service.WorkoutPlanService
	Weeks            service.WeekService
	Exercises        service.ExerciseService
	TrackingPeriods  service.TrackingPeriodService
	ExerciseLogs     service.ExerciseLogService
	TrackedExercises service.TrackedExerciseService
	Progress         service.ProgressService
	Export           service.ExportService
}

// RouterDeps is everything SetupRoutes wires together.
type RouterDeps struct {
	Resolver auth.Resolver
	Metrics  *metrics.Manager
	Gatherer prometheus.Gatherer // served on /metrics when set
	Services Services
}

func SetupRoutes(router *gin.Engine, deps RouterDeps) {
	planHandler := NewWorkoutPlanHandler(deps.Services.WorkoutPlans)
	weekHandler := NewWeekHandler(deps.Services.Weeks, deps.Services.Progress)
	exerciseHandler := NewExerciseHandler(deps.Services.Exercises)
	periodHandler := NewTrackingPeriodHandler(deps.Services.TrackingPeriods, deps.Services.ExerciseLogs, deps.Services.Progress)
	logHandler := NewExerciseLogHandler(deps.Services.ExerciseLogs)
	trackedHandler := NewTrackedExerciseHandler(deps.Services.TrackedExercises)

	router.Use(RequestLogger())
	if deps.Metrics != nil {
		router.Use(RequestMetrics(deps.Metrics))
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	apiV1.Use(IdentityMiddleware(deps.Resolver))
	{
		apiV1.GET("/me", func(c *gin.Context) {
			caller := callerFromContext(c)
			c.JSON(http.StatusOK, gin.H{"subject": caller.Subject, "authenticated": caller.Authenticated()})
		})

		// --- Workout plans & workouts ---
		plans := apiV1.Group("/plans")
		{
			plans.POST("", planHandler.CreateWorkoutPlan)
			plans.GET("", planHandler.ListWorkoutPlans)
			plans.GET("/:id", planHandler.GetWorkoutPlan)
			plans.PATCH("/:id", planHandler.UpdateWorkoutPlan)
			plans.DELETE("/:id", planHandler.DeleteWorkoutPlan)
			plans.POST("/:id/workouts", planHandler.CreateWorkout)
			plans.GET("/:id/workouts", planHandler.ListWorkouts)
		}
		workouts := apiV1.Group("/workouts")
		{
			workouts.GET("/:id", planHandler.GetWorkout)
			workouts.PATCH("/:id", planHandler.UpdateWorkout)
			workouts.DELETE("/:id", planHandler.DeleteWorkout)
		}

		// --- Weeks & daily weights ---
		weeks := apiV1.Group("/weeks")
		{
			weeks.POST("", weekHandler.CreateWeek)
			weeks.GET("", weekHandler.ListWeeks)
			weeks.GET("/:id", weekHandler.GetWeek)
			weeks.PATCH("/:id", weekHandler.UpdateWeek)
			weeks.DELETE("/:id", weekHandler.DeleteWeek)
			weeks.POST("/:id/weights", weekHandler.CreateDailyWeight)
			weeks.GET("/:id/weights", weekHandler.ListDailyWeights)
			weeks.GET("/:id/summary", weekHandler.WeekSummary)
		}
		weights := apiV1.Group("/weights")
		{
			weights.GET("/:id", weekHandler.GetDailyWeight)
			weights.PATCH("/:id", weekHandler.UpdateDailyWeight)
			weights.DELETE("/:id", weekHandler.DeleteDailyWeight)
		}

		// --- Exercises ---
		exercises := apiV1.Group("/exercises")
		{
			exercises.POST("", exerciseHandler.CreateExercise)
			exercises.GET("", exerciseHandler.ListExercises)
			exercises.GET("/:id", exerciseHandler.GetExercise)
			exercises.PATCH("/:id", exerciseHandler.UpdateExercise)
			exercises.DELETE("/:id", exerciseHandler.DeleteExercise)
		}

		// --- Tracking periods, logs & tracked exercises ---
		periods := apiV1.Group("/periods")
		{
			periods.POST("", periodHandler.CreateTrackingPeriod)
			periods.GET("", periodHandler.ListTrackingPeriods)
			periods.GET("/:id", periodHandler.GetTrackingPeriod)
			periods.PATCH("/:id", periodHandler.UpdateTrackingPeriod)
			periods.DELETE("/:id", periodHandler.DeleteTrackingPeriod)
			periods.GET("/:id/logs", periodHandler.ListPeriodLogs)
			periods.GET("/:id/progress", periodHandler.PeriodProgress)
		}
		logs := apiV1.Group("/logs")
		{
			logs.POST("", logHandler.CreateExerciseLog)
			logs.GET("", logHandler.ListExerciseLogs)
			logs.GET("/:id", logHandler.GetExerciseLog)
			logs.PATCH("/:id", logHandler.UpdateExerciseLog)
			logs.DELETE("/:id", logHandler.DeleteExerciseLog)
		}
		tracked := apiV1.Group("/tracked-exercises")
		{
			tracked.POST("", trackedHandler.CreateTrackedExercise)
			tracked.GET("", trackedHandler.ListTrackedExercises)
			tracked.GET("/:id", trackedHandler.GetTrackedExercise)
			tracked.PATCH("/:id", trackedHandler.UpdateTrackedExercise)
			tracked.DELETE("/:id", trackedHandler.DeleteTrackedExercise)
		}

		if deps.Services.Export != nil {
			apiV1.POST("/exports", NewExportHandler(deps.Services.Export).CreateExport)
		}
	}
}

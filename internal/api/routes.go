package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/service"
)

// SetupRoutes wires the HTTP surface onto the router. Signup, login and
// logout are public; everything else sits behind the auth middleware.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	workoutService service.WorkoutService,
) {
	authHandler := NewAuthHandler(authService)
	workoutHandler := NewWorkoutHandler(workoutService)

	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	protected := router.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		protected.GET("/workout", workoutHandler.ListWorkouts)
		protected.POST("/workout", workoutHandler.CreateWorkout)
		protected.PUT("/workout/:workoutId", workoutHandler.UpdateWorkout)
		protected.DELETE("/workout/:workoutId", workoutHandler.DeleteWorkout)
		protected.POST("/workout/:workoutId/schedule", workoutHandler.SetSchedule)
		protected.POST("/workout/:workoutId/comment", workoutHandler.AddComment)

		protected.DELETE("/user", workoutHandler.DeleteAccount)
	}
}

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/service"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request/Response Structs ---

type WorkoutRequest struct {
	Name      string                  `json:"name"`
	Exercises []service.ExerciseInput `json:"exercises"`
}

type ScheduleRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM:SS
}

type CommentRequest struct {
	Content string `json:"content"`
}

// WorkoutResponse is the workout summary returned by mutations.
type WorkoutResponse struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	UserID    uint              `json:"userId"`
	Exercises []domain.Exercise `json:"exercises,omitempty"`
	Schedule  *domain.Schedule  `json:"schedule,omitempty"`
	Comments  []domain.Comment  `json:"comments,omitempty"`
}

// --- Handler Methods ---

// CreateWorkout creates a workout together with its full exercise list.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to resolve user from token")
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required parameter")
		return
	}

	workout, err := h.workoutService.Create(c.Request.Context(), userID, req.Name, req.Exercises)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Workout created successfully", WorkoutResponse{
		ID:        workout.ID,
		Name:      workout.Name,
		UserID:    workout.UserID,
		Exercises: workout.Exercises,
	})
}

// UpdateWorkout renames a workout and replaces its exercise set wholesale.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to resolve user from token")
		return
	}
	workoutID, ok := parseWorkoutID(c)
	if !ok {
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required parameter")
		return
	}

	workout, err := h.workoutService.Update(c.Request.Context(), userID, workoutID, req.Name, req.Exercises)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Workout updated successfully", WorkoutResponse{
		ID:        workout.ID,
		Name:      workout.Name,
		UserID:    workout.UserID,
		Exercises: workout.Exercises,
	})
}

// DeleteWorkout removes a workout and everything attached to it.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to resolve user from token")
		return
	}
	workoutID, ok := parseWorkoutID(c)
	if !ok {
		return
	}

	if err := h.workoutService.Delete(c.Request.Context(), userID, workoutID); err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Workout deleted successfully", nil)
}

// ListWorkouts returns the caller's workouts with their dependents.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to resolve user from token")
		return
	}

	workouts, err := h.workoutService.List(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Workouts retrieved successfully", gin.H{"workouts": workouts})
}

// SetSchedule attaches a future schedule to a workout, replacing any
// existing one.
func (h *WorkoutHandler) SetSchedule(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to resolve user from token")
		return
	}
	workoutID, ok := parseWorkoutID(c)
	if !ok {
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required parameter")
		return
	}

	workout, schedule, err := h.workoutService.SetSchedule(c.Request.Context(), userID, workoutID, req.Date, req.Time)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Workout scheduled successfully", WorkoutResponse{
		ID:       workout.ID,
		Name:     workout.Name,
		UserID:   workout.UserID,
		Schedule: schedule,
	})
}

// AddComment appends a comment to any existing workout.
func (h *WorkoutHandler) AddComment(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to resolve user from token")
		return
	}
	workoutID, ok := parseWorkoutID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required parameter")
		return
	}

	workout, comments, err := h.workoutService.AddComment(c.Request.Context(), userID, workoutID, req.Content)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Comment added successfully", WorkoutResponse{
		ID:       workout.ID,
		Name:     workout.Name,
		UserID:   workout.UserID,
		Comments: comments,
	})
}

// DeleteAccount destroys the calling user and cascades to everything
// owned or authored by it.
func (h *WorkoutHandler) DeleteAccount(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to resolve user from token")
		return
	}

	if err := h.workoutService.DeleteAccount(c.Request.Context(), userID); err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "User deleted successfully", nil)
}

// --- Helpers ---

// parseWorkoutID parses the :workoutId path parameter; a malformed id is
// rejected before any store access.
func parseWorkoutID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("workoutId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid workout id")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps service errors onto the envelope taxonomy.
// Anything unclassified is reported generically as a 500 without leaking
// internals.
func (h *WorkoutHandler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingParameter):
		respondError(c, http.StatusBadRequest, "Missing required parameter")
	case errors.Is(err, service.ErrInvalidDate):
		respondError(c, http.StatusBadRequest, service.ErrInvalidDate.Error())
	case errors.Is(err, service.ErrWorkoutNotFound):
		respondError(c, http.StatusNotFound, service.ErrWorkoutNotFound.Error())
	default:
		respondError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

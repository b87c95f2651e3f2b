package service

import (
	"context"
	"errors"
	"time"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidDate      = errors.New("schedule date and time must be in the future")
	ErrWorkoutNotFound  = errors.New("workout not found")
)

// ExerciseInput is one entry of the exercise list supplied on workout
// create/update. The list is validated in order before any row is written.
type ExerciseInput struct {
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	NumberOfSets      int                `json:"numberOfSets"`
	RepetitionsPerSet int                `json:"repetitionsPerSet"`
	MuscleGroup       domain.MuscleGroup `json:"muscleGroup"`
}

// WorkoutService carries the workout aggregate through its lifecycle.
// All operations are scoped to the authenticated user except AddComment,
// which only requires the workout to exist.
type WorkoutService interface {
	Create(ctx context.Context, userID uint, name string, exercises []ExerciseInput) (*domain.Workout, error)
	Update(ctx context.Context, userID, workoutID uint, name string, exercises []ExerciseInput) (*domain.Workout, error)
	Delete(ctx context.Context, userID, workoutID uint) error
	List(ctx context.Context, userID uint) ([]domain.Workout, error)
	SetSchedule(ctx context.Context, userID, workoutID uint, date, timeOfDay string) (*domain.Workout, *domain.Schedule, error)
	AddComment(ctx context.Context, userID, workoutID uint, content string) (*domain.Workout, []domain.Comment, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, userRepo repository.UserRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// Create validates the name and the full exercise list up front, then
// persists the workout and all exercises in one transaction. A validation
// failure therefore leaves no partial rows behind.
func (s *workoutService) Create(ctx context.Context, userID uint, name string, exercises []ExerciseInput) (*domain.Workout, error) {
	if name == "" || len(exercises) == 0 {
		return nil, ErrMissingParameter
	}
	rows, err := validateExercises(exercises)
	if err != nil {
		return nil, err
	}

	workout := &domain.Workout{Name: name, UserID: userID}
	if err := s.workoutRepo.CreateWithExercises(ctx, workout, rows); err != nil {
		return nil, err
	}
	return workout, nil
}

// Update renames the workout and replaces its exercise set wholesale.
// Callers resend the complete desired list; nothing is diffed or merged.
func (s *workoutService) Update(ctx context.Context, userID, workoutID uint, name string, exercises []ExerciseInput) (*domain.Workout, error) {
	if name == "" || len(exercises) == 0 {
		return nil, ErrMissingParameter
	}
	rows, err := validateExercises(exercises)
	if err != nil {
		return nil, err
	}

	workout, err := s.ownedWorkout(ctx, workoutID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.workoutRepo.Replace(ctx, workout.ID, name, rows); err != nil {
		return nil, err
	}

	workout.Name = name
	workout.Exercises = rows
	return workout, nil
}

// Delete removes the workout and cascades to its exercises, schedule and
// comments.
func (s *workoutService) Delete(ctx context.Context, userID, workoutID uint) error {
	workout, err := s.ownedWorkout(ctx, workoutID, userID)
	if err != nil {
		return err
	}
	return s.workoutRepo.Delete(ctx, workout.ID)
}

// List returns the caller's workouts with exercises, schedule and
// comments attached.
func (s *workoutService) List(ctx context.Context, userID uint) ([]domain.Workout, error) {
	return s.workoutRepo.ListByUser(ctx, userID)
}

// SetSchedule attaches a schedule to the workout, replacing any existing
// one. The combined date+time is treated as UTC and must lie strictly in
// the future at the moment of the request.
func (s *workoutService) SetSchedule(ctx context.Context, userID, workoutID uint, date, timeOfDay string) (*domain.Workout, *domain.Schedule, error) {
	if date == "" || timeOfDay == "" {
		return nil, nil, ErrMissingParameter
	}
	at, err := domain.CombineDateTime(date, timeOfDay)
	if err != nil || !at.After(s.now().UTC()) {
		return nil, nil, ErrInvalidDate
	}

	workout, err := s.ownedWorkout(ctx, workoutID, userID)
	if err != nil {
		return nil, nil, err
	}

	schedule := &domain.Schedule{
		WorkoutID: workout.ID,
		UserID:    userID,
		Date:      date,
		Time:      timeOfDay,
	}
	if err := s.workoutRepo.ReplaceSchedule(ctx, schedule); err != nil {
		return nil, nil, err
	}
	return workout, schedule, nil
}

// AddComment appends a comment to the workout. Ownership is deliberately
// not required: any authenticated user may comment on any workout.
func (s *workoutService) AddComment(ctx context.Context, userID, workoutID uint, content string) (*domain.Workout, []domain.Comment, error) {
	if content == "" {
		return nil, nil, ErrMissingParameter
	}

	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrWorkoutNotFound
		}
		return nil, nil, err
	}

	comment := &domain.Comment{
		WorkoutID: workout.ID,
		UserID:    userID,
		Content:   content,
	}
	if err := s.workoutRepo.AddComment(ctx, comment); err != nil {
		return nil, nil, err
	}

	comments, err := s.workoutRepo.CommentsByWorkout(ctx, workout.ID)
	if err != nil {
		return nil, nil, err
	}
	return workout, comments, nil
}

// DeleteAccount destroys the user and cascades to everything the user
// owns or authored.
func (s *workoutService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.Delete(ctx, userID)
}

// ownedWorkout fetches a workout scoped by owner, so a caller cannot
// discover or mutate another user's workout by id.
func (s *workoutService) ownedWorkout(ctx context.Context, workoutID, userID uint) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByIDForUser(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// validateExercises checks every entry in order and fails fast on the
// first violation; no rows exist yet at that point.
func validateExercises(inputs []ExerciseInput) ([]domain.Exercise, error) {
	rows := make([]domain.Exercise, 0, len(inputs))
	for _, in := range inputs {
		if in.Name == "" || in.NumberOfSets <= 0 || in.RepetitionsPerSet <= 0 || !in.MuscleGroup.IsValid() {
			return nil, ErrMissingParameter
		}
		rows = append(rows, domain.Exercise{
			Name:              in.Name,
			Description:       in.Description,
			NumberOfSets:      in.NumberOfSets,
			RepetitionsPerSet: in.RepetitionsPerSet,
			MuscleGroup:       in.MuscleGroup,
		})
	}
	return rows, nil
}

package repository

import (
	"context"

	"workout-tracker/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound       = RepositoryError("not found")
	ErrDuplicateEmail = RepositoryError("email already registered")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (uint, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	// Delete removes the user and, in the same transaction, every comment
	// and schedule the user authored plus all of the user's workouts with
	// their dependents.
	Delete(ctx context.Context, id uint) error
}

// WorkoutRepository defines the interface for interacting with the workout
// aggregate (workout + exercises + schedule + comments). Every multi-row
// mutation runs inside a single transaction.
type WorkoutRepository interface {
	// CreateWithExercises persists the workout and all of its exercises
	// atomically; either everything is written or nothing is.
	CreateWithExercises(ctx context.Context, workout *domain.Workout, exercises []domain.Exercise) error

	// GetByIDForUser fetches a workout only if it is owned by userID, so
	// one user cannot discover another's workouts by id.
	GetByIDForUser(ctx context.Context, id, userID uint) (*domain.Workout, error)

	// GetByID fetches a workout regardless of owner (used for commenting).
	GetByID(ctx context.Context, id uint) (*domain.Workout, error)

	ListByUser(ctx context.Context, userID uint) ([]domain.Workout, error)

	// Replace renames the workout and swaps its full exercise set for the
	// supplied one, atomically.
	Replace(ctx context.Context, workoutID uint, name string, exercises []domain.Exercise) error

	// Delete removes the workout together with its exercises, schedule and
	// comments in one transaction.
	Delete(ctx context.Context, id uint) error

	// ReplaceSchedule removes any existing schedule for the workout and
	// inserts the given one, atomically.
	ReplaceSchedule(ctx context.Context, schedule *domain.Schedule) error

	AddComment(ctx context.Context, comment *domain.Comment) error
	CommentsByWorkout(ctx context.Context, workoutID uint) ([]domain.Comment, error)
}

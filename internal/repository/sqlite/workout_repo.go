package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// sqliteWorkoutRepository implements repository.WorkoutRepository on
// gorm/SQLite. Every multi-row mutation runs inside a single transaction
// so callers never observe a partially applied aggregate.
type sqliteWorkoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new workout repository backed by the given DB.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &sqliteWorkoutRepository{db: db}
}

// CreateWithExercises persists the workout and its exercises atomically.
func (r *sqliteWorkoutRepository) CreateWithExercises(ctx context.Context, workout *domain.Workout, exercises []domain.Exercise) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workout).Error; err != nil {
			return err
		}
		for i := range exercises {
			exercises[i].WorkoutID = workout.ID
		}
		if err := tx.Create(&exercises).Error; err != nil {
			return err
		}
		workout.Exercises = exercises
		return nil
	})
}

func (r *sqliteWorkoutRepository) GetByIDForUser(ctx context.Context, id, userID uint) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

func (r *sqliteWorkoutRepository) GetByID(ctx context.Context, id uint) (*domain.Workout, error) {
	var workout domain.Workout
	if err := r.db.WithContext(ctx).First(&workout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

func (r *sqliteWorkoutRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Workout, error) {
	var workouts []domain.Workout
	err := r.db.WithContext(ctx).
		Preload("Exercises").
		Preload("Schedule").
		Preload("Comments").
		Where("user_id = ?", userID).
		Order("id").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// Replace renames the workout and swaps its exercise set wholesale. Any
// error rolls the whole transaction back, leaving name and exercises as
// they were.
func (r *sqliteWorkoutRepository) Replace(ctx context.Context, workoutID uint, name string, exercises []domain.Exercise) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Workout{}).Where("id = ?", workoutID).Update("name", name).Error; err != nil {
			return err
		}
		if err := tx.Where("workout_id = ?", workoutID).Delete(&domain.Exercise{}).Error; err != nil {
			return err
		}
		for i := range exercises {
			exercises[i].ID = 0
			exercises[i].WorkoutID = workoutID
		}
		return tx.Create(&exercises).Error
	})
}

// Delete removes the workout and cascades to its exercises, schedule and
// comments within one transaction.
func (r *sqliteWorkoutRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", id).Delete(&domain.Exercise{}).Error; err != nil {
			return err
		}
		if err := tx.Where("workout_id = ?", id).Delete(&domain.Schedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("workout_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Workout{}, id).Error
	})
}

// ReplaceSchedule enforces the at-most-one-schedule invariant by deleting
// any existing schedule for the workout before inserting the new one,
// inside one transaction.
func (r *sqliteWorkoutRepository) ReplaceSchedule(ctx context.Context, schedule *domain.Schedule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", schedule.WorkoutID).Delete(&domain.Schedule{}).Error; err != nil {
			return err
		}
		return tx.Create(schedule).Error
	})
}

func (r *sqliteWorkoutRepository) AddComment(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *sqliteWorkoutRepository) CommentsByWorkout(ctx context.Context, workoutID uint) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := r.db.WithContext(ctx).
		Where("workout_id = ?", workoutID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

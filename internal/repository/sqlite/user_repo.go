package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// sqliteUserRepository implements repository.UserRepository on gorm/SQLite.
type sqliteUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository backed by the given DB.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &sqliteUserRepository{db: db}
}

// Create inserts a new user. A unique-index violation on the email column
// is reported as repository.ErrDuplicateEmail.
func (r *sqliteUserRepository) Create(ctx context.Context, user *domain.User) (uint, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, repository.ErrDuplicateEmail
		}
		return 0, err
	}
	return user.ID, nil
}

func (r *sqliteUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *sqliteUserRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Delete removes the user row together with everything attributed to the
// user: their comments and schedules anywhere, and each owned workout with
// its exercises, schedule and comments. All of it happens in one
// transaction so a failure leaves the account fully intact.
func (r *sqliteUserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user domain.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		var workoutIDs []uint
		if err := tx.Model(&domain.Workout{}).Where("user_id = ?", id).Pluck("id", &workoutIDs).Error; err != nil {
			return err
		}

		if len(workoutIDs) > 0 {
			if err := tx.Where("workout_id IN ?", workoutIDs).Delete(&domain.Exercise{}).Error; err != nil {
				return err
			}
			if err := tx.Where("workout_id IN ?", workoutIDs).Delete(&domain.Schedule{}).Error; err != nil {
				return err
			}
			if err := tx.Where("workout_id IN ?", workoutIDs).Delete(&domain.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&domain.Workout{}).Error; err != nil {
				return err
			}
		}

		// Comments and schedules the user left on other users' workouts.
		if err := tx.Where("user_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&domain.Schedule{}).Error; err != nil {
			return err
		}

		return tx.Delete(&domain.User{}, id).Error
	})
}

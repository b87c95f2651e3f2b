package domain

import (
	"time"
)

// Comment is an append-only note on a workout. Any authenticated user may
// comment, not just the workout's owner. Comments are never edited and are
// removed only when their workout or their author is removed.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WorkoutID uint      `gorm:"index;not null" json:"workoutId"`
	UserID    uint      `gorm:"index;not null" json:"userId"` // Author
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package domain

import (
	"time"
)

// User represents a registered account. A user owns zero or more workouts;
// comments and schedules also reference the user that created them.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	FirstName      string    `gorm:"not null" json:"firstName"`
	LastName       string    `gorm:"not null" json:"lastName"`
	HashedPassword string    `gorm:"not null" json:"-"` // Never expose this via JSON
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

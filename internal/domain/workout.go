package domain

import (
	"time"
)

// Workout is the aggregate root for exercises and the (at most one)
// schedule. Exercises and the schedule never outlive their workout;
// comments are attached to the workout but owned by their author.
type Workout struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	UserID    uint       `gorm:"index;not null" json:"userId"` // Owner, immutable after creation
	Exercises []Exercise `json:"exercises,omitempty"`
	Schedule  *Schedule  `json:"schedule,omitempty"`
	Comments  []Comment  `json:"comments,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

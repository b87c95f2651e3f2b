package domain

import (
	"time"
)

// Layouts for the schedule's calendar date and time of day.
const (
	ScheduleDateLayout = "2006-01-02"
	ScheduleTimeLayout = "15:04:05"
)

// Schedule is the (at most one) future booking attached to a workout.
// Adding a new schedule replaces any existing one.
type Schedule struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	WorkoutID uint   `gorm:"index;not null" json:"workoutId"`
	UserID    uint   `gorm:"index;not null" json:"userId"` // Who set it
	Date      string `gorm:"not null" json:"date"`         // YYYY-MM-DD
	Time      string `gorm:"not null" json:"time"`         // HH:MM:SS
}

// CombineDateTime parses a calendar date and a time of day into a single
// UTC instant. The combined value is what gets compared against "now"
// when deciding whether a schedule lies in the future.
func CombineDateTime(date, timeOfDay string) (time.Time, error) {
	return time.ParseInLocation(ScheduleDateLayout+" "+ScheduleTimeLayout, date+" "+timeOfDay, time.UTC)
}

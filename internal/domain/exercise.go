package domain

// MuscleGroup is the fixed set of body areas an exercise can target.
type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "chest"
	MuscleGroupBack      MuscleGroup = "back"
	MuscleGroupLegs      MuscleGroup = "legs"
	MuscleGroupShoulders MuscleGroup = "shoulders"
	MuscleGroupArms      MuscleGroup = "arms"
	MuscleGroupCore      MuscleGroup = "core"
)

// IsValid reports whether the muscle group is one of the enumerated values.
func (m MuscleGroup) IsValid() bool {
	switch m {
	case MuscleGroupChest, MuscleGroupBack, MuscleGroupLegs,
		MuscleGroupShoulders, MuscleGroupArms, MuscleGroupCore:
		return true
	}
	return false
}

// Exercise belongs to exactly one workout and has no independent
// lifecycle; it is created and destroyed only as part of a workout
// mutation.
type Exercise struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	WorkoutID         uint        `gorm:"index;not null" json:"workoutId"`
	Name              string      `gorm:"not null" json:"name"`
	Description       string      `json:"description,omitempty"`
	NumberOfSets      int         `gorm:"not null" json:"numberOfSets"`
	RepetitionsPerSet int         `gorm:"not null" json:"repetitionsPerSet"`
	MuscleGroup       MuscleGroup `gorm:"not null" json:"muscleGroup"`
}

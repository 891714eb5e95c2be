// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Module is an ordered unit of a course. Sequence establishes display order
// within the parent course and is unique per course.
type Module struct {
	ID          uuid.UUID // The unique identifier for the module.
	CourseID    uuid.UUID // The owning course.
	Sequence    int       // Display order within the course, starting at 1.
	Title       string    // Module title.
	Description string    // Module description, optional.
	Lessons     []Lesson  // Ordered lessons (owned, cascade delete).
	CreatedAt   time.Time // Timestamp of when this module was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this module.
}

// Lesson is an ordered unit of a module carrying the teaching content.
type Lesson struct {
	ID              uuid.UUID  // The unique identifier for the lesson.
	ModuleID        uuid.UUID  // The owning module.
	Sequence        int        // Display order within the module, starting at 1.
	Title           string     // Lesson title.
	Content         string     // Teaching content, optional.
	DurationMinutes int        // Estimated duration in minutes.
	Exercises       []Exercise // Ordered exercises (owned, cascade delete).
	CreatedAt       time.Time  // Timestamp of when this lesson was created.
	UpdatedAt       time.Time  // Timestamp of the last modification to this lesson.
}

// ExerciseType names the interaction style of an exercise.
type ExerciseType string

const (
	ExerciseTypeMultipleChoice ExerciseType = "multiple_choice"
	ExerciseTypeFillBlank      ExerciseType = "fill_blank"
	ExerciseTypeFreeText       ExerciseType = "free_text"
	ExerciseTypeSpeaking       ExerciseType = "speaking"
)

// String returns the string representation of the ExerciseType.
func (t ExerciseType) String() string {
	return string(t)
}

// IsValid checks if the ExerciseType is a valid value.
func (t ExerciseType) IsValid() bool {
	switch t {
	case ExerciseTypeMultipleChoice, ExerciseTypeFillBlank, ExerciseTypeFreeText, ExerciseTypeSpeaking:
		return true
	default:
		return false
	}
}

// Exercise is an ordered practice item within a lesson.
type Exercise struct {
	ID        uuid.UUID    // The unique identifier for the exercise.
	LessonID  uuid.UUID    // The owning lesson.
	Sequence  int          // Display order within the lesson, starting at 1.
	Prompt    string       // The task shown to the learner.
	Type      ExerciseType // Interaction style.
	AnswerKey string       // Expected answer or grading notes, optional.
	CreatedAt time.Time    // Timestamp of when this exercise was created.
	UpdatedAt time.Time    // Timestamp of the last modification to this exercise.
}

// Assessment is an ordered evaluation attached directly to a course.
type Assessment struct {
	ID           uuid.UUID // The unique identifier for the assessment.
	CourseID     uuid.UUID // The owning course.
	Sequence     int       // Display order within the course, starting at 1.
	Title        string    // Assessment title.
	Description  string    // Assessment description, optional.
	PassingScore int       // Minimum passing score, 0..100.
	CreatedAt    time.Time // Timestamp of when this assessment was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this assessment.
}

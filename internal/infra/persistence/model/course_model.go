package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModel mirrors the 'courses' table. A course is the root of the
// content hierarchy: course -> modules -> lessons -> exercises, plus
// course-level assessments.
type CourseModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title           string     `gorm:"type:varchar(255);not null"`
	Description     string     `gorm:"type:text"`
	Level           string     `gorm:"type:varchar(2);not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:'draft';index"`
	CreatedByID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ApprovedByID    *uuid.UUID `gorm:"type:uuid"`
	CourseRequestID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Modules     []ModuleModel       `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Assessments []AssessmentModel   `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Reviews     []CourseReviewModel `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

// ModuleModel mirrors the 'modules' table. Sequence is unique within a course.
type ModuleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_modules_course_sequence"`
	Sequence    int       `gorm:"not null;uniqueIndex:idx_modules_course_sequence"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lessons []LessonModel `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ModuleModel) TableName() string {
	return "modules"
}

// LessonModel mirrors the 'lessons' table. Sequence is unique within a module.
type LessonModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ModuleID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_lessons_module_sequence"`
	Sequence        int       `gorm:"not null;uniqueIndex:idx_lessons_module_sequence"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Content         string    `gorm:"type:text"`
	DurationMinutes int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Exercises []ExerciseModel `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (LessonModel) TableName() string {
	return "lessons"
}

// ExerciseModel mirrors the 'exercises' table. Sequence is unique within a lesson.
type ExerciseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LessonID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_exercises_lesson_sequence"`
	Sequence  int       `gorm:"not null;uniqueIndex:idx_exercises_lesson_sequence"`
	Prompt    string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:varchar(20);not null"`
	AnswerKey string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExerciseModel) TableName() string {
	return "exercises"
}

// AssessmentModel mirrors the 'assessments' table. Sequence is unique within a course.
type AssessmentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CourseID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assessments_course_sequence"`
	Sequence     int       `gorm:"not null;uniqueIndex:idx_assessments_course_sequence"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	PassingScore int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssessmentModel) TableName() string {
	return "assessments"
}

// CourseReviewModel mirrors the 'course_reviews' table. One row is appended
// for every review state change, forming the audit trail of a course.
type CourseReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null"`
	Action     string    `gorm:"type:varchar(20);not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourseReviewModel) TableName() string {
	return "course_reviews"
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"coursebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for course content persistence.
var (
	// ErrCourseNotFound is returned when a course is not found.
	ErrCourseNotFound = errors.New("course not found")
	// ErrModuleNotFound is returned when a module is not found.
	ErrModuleNotFound = errors.New("module not found")
	// ErrLessonNotFound is returned when a lesson is not found.
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrExerciseNotFound is returned when an exercise is not found.
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrAssessmentNotFound is returned when an assessment is not found.
	ErrAssessmentNotFound = errors.New("assessment not found")
	// ErrDuplicateSequence is returned when a sequence number is already taken
	// within the same parent.
	ErrDuplicateSequence = errors.New("sequence already in use within parent")
)

// CourseListFilter narrows and pages a course listing.
type CourseListFilter struct {
	Status  *entity.CourseStatus // Only courses in this status.
	Level   *entity.CEFRLevel    // Only courses targeting this level.
	Page    int                  // 1-based page number.
	PerPage int                  // Page size.
}

// CourseRepository defines persistence for the course content aggregate:
// the course row plus its modules, lessons, exercises, assessments and the
// review audit trail.
type CourseRepository interface {
	// Create persists a new course.
	Create(ctx context.Context, course *entity.Course) error

	// FindByID retrieves a course with its full content hierarchy preloaded,
	// children ordered by sequence.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// List retrieves courses matching the filter and the total match count.
	// Children are not preloaded on listings.
	List(ctx context.Context, filter CourseListFilter) ([]*entity.Course, int64, error)

	// Update modifies an existing course.
	Update(ctx context.Context, course *entity.Course) error

	// Delete removes a course and, by cascade, its whole content hierarchy.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateModule persists a new module.
	CreateModule(ctx context.Context, module *entity.Module) error

	// FindModuleByID retrieves a single module with its lessons preloaded.
	FindModuleByID(ctx context.Context, id uuid.UUID) (*entity.Module, error)

	// ListModulesByCourseID retrieves the modules of a course ordered by sequence.
	ListModulesByCourseID(ctx context.Context, courseID uuid.UUID) ([]*entity.Module, error)

	// UpdateModule modifies an existing module.
	UpdateModule(ctx context.Context, module *entity.Module) error

	// DeleteModule removes a module and, by cascade, its lessons and exercises.
	DeleteModule(ctx context.Context, id uuid.UUID) error

	// CreateLesson persists a new lesson.
	CreateLesson(ctx context.Context, lesson *entity.Lesson) error

	// FindLessonByID retrieves a single lesson with its exercises preloaded.
	FindLessonByID(ctx context.Context, id uuid.UUID) (*entity.Lesson, error)

	// UpdateLesson modifies an existing lesson.
	UpdateLesson(ctx context.Context, lesson *entity.Lesson) error

	// DeleteLesson removes a lesson and, by cascade, its exercises.
	DeleteLesson(ctx context.Context, id uuid.UUID) error

	// CreateExercise persists a new exercise.
	CreateExercise(ctx context.Context, exercise *entity.Exercise) error

	// FindExerciseByID retrieves a single exercise.
	FindExerciseByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)

	// UpdateExercise modifies an existing exercise.
	UpdateExercise(ctx context.Context, exercise *entity.Exercise) error

	// DeleteExercise removes an exercise.
	DeleteExercise(ctx context.Context, id uuid.UUID) error

	// CreateAssessment persists a new assessment.
	CreateAssessment(ctx context.Context, assessment *entity.Assessment) error

	// FindAssessmentByID retrieves a single assessment.
	FindAssessmentByID(ctx context.Context, id uuid.UUID) (*entity.Assessment, error)

	// UpdateAssessment modifies an existing assessment.
	UpdateAssessment(ctx context.Context, assessment *entity.Assessment) error

	// DeleteAssessment removes an assessment.
	DeleteAssessment(ctx context.Context, id uuid.UUID) error

	// CreateReview appends a review audit row. Called in the same transaction
	// as the course status change it records.
	CreateReview(ctx context.Context, review *entity.CourseReview) error

	// ListReviewsByCourseID retrieves the review trail of a course, newest first.
	ListReviewsByCourseID(ctx context.Context, courseID uuid.UUID) ([]*entity.CourseReview, error)
}

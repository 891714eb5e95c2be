// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"coursebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCourseInput defines the data required to create a new draft course.
type CreateCourseInput struct {
	Title           string
	Description     string
	Level           string
	CourseRequestID *uuid.UUID
}

// UpdateCourseInput defines the fields an editable course may change.
// Nil fields are left untouched.
type UpdateCourseInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Level       *string `json:"level,omitempty"`
}

// ListCoursesInput narrows and pages a course listing.
type ListCoursesInput struct {
	Status  string
	Level   string
	Page    int
	PerPage int
}

// RejectCourseInput carries the mandatory rejection comment.
type RejectCourseInput struct {
	Comment string
}

// CreateModuleInput defines the data required to add a module to a course.
type CreateModuleInput struct {
	Sequence    int
	Title       string
	Description string
}

// UpdateModuleInput defines the fields a module may change.
type UpdateModuleInput struct {
	Sequence    *int    `json:"sequence,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateLessonInput defines the data required to add a lesson to a module.
type CreateLessonInput struct {
	Sequence        int
	Title           string
	Content         string
	DurationMinutes int
}

// UpdateLessonInput defines the fields a lesson may change.
type UpdateLessonInput struct {
	Sequence        *int    `json:"sequence,omitempty"`
	Title           *string `json:"title,omitempty"`
	Content         *string `json:"content,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
}

// CreateExerciseInput defines the data required to add an exercise to a lesson.
type CreateExerciseInput struct {
	Sequence  int
	Prompt    string
	Type      string
	AnswerKey string
}

// UpdateExerciseInput defines the fields an exercise may change.
type UpdateExerciseInput struct {
	Sequence  *int    `json:"sequence,omitempty"`
	Prompt    *string `json:"prompt,omitempty"`
	Type      *string `json:"type,omitempty"`
	AnswerKey *string `json:"answer_key,omitempty"`
}

// CreateAssessmentInput defines the data required to add an assessment to a course.
type CreateAssessmentInput struct {
	Sequence     int
	Title        string
	Description  string
	PassingScore int
}

// UpdateAssessmentInput defines the fields an assessment may change.
type UpdateAssessmentInput struct {
	Sequence     *int    `json:"sequence,omitempty"`
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	PassingScore *int    `json:"passing_score,omitempty"`
}

// --- Output DTOs ---

// CourseListOutput returns one page of courses plus the total match count.
type CourseListOutput struct {
	Courses []*entity.Course
	Total   int64
	Page    int
	PerPage int
}

// CourseUsecase defines the interface for course content management: the
// course hierarchy (modules, lessons, exercises, assessments) and the review
// workflow. Content edits are only allowed while the course is editable
// (draft or rejected); every workflow transition appends an audit review row.
type CourseUsecase interface {
	CreateCourse(ctx context.Context, actor Actor, input *CreateCourseInput) (*entity.Course, error)
	GetCourse(ctx context.Context, courseID uuid.UUID) (*entity.Course, error)
	ListCourses(ctx context.Context, input *ListCoursesInput) (*CourseListOutput, error)
	UpdateCourse(ctx context.Context, courseID uuid.UUID, input *UpdateCourseInput) (*entity.Course, error)
	DeleteCourse(ctx context.Context, courseID uuid.UUID) error

	SubmitForReview(ctx context.Context, actor Actor, courseID uuid.UUID) (*entity.Course, error)
	ApproveCourse(ctx context.Context, actor Actor, courseID uuid.UUID) (*entity.Course, error)
	RejectCourse(ctx context.Context, actor Actor, courseID uuid.UUID, input *RejectCourseInput) (*entity.Course, error)
	ListReviews(ctx context.Context, courseID uuid.UUID) ([]*entity.CourseReview, error)

	CreateModule(ctx context.Context, courseID uuid.UUID, input *CreateModuleInput) (*entity.Module, error)
	ListModules(ctx context.Context, courseID uuid.UUID) ([]*entity.Module, error)
	UpdateModule(ctx context.Context, courseID, moduleID uuid.UUID, input *UpdateModuleInput) (*entity.Module, error)
	DeleteModule(ctx context.Context, courseID, moduleID uuid.UUID) error

	CreateLesson(ctx context.Context, moduleID uuid.UUID, input *CreateLessonInput) (*entity.Lesson, error)
	UpdateLesson(ctx context.Context, lessonID uuid.UUID, input *UpdateLessonInput) (*entity.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID uuid.UUID) error

	CreateExercise(ctx context.Context, lessonID uuid.UUID, input *CreateExerciseInput) (*entity.Exercise, error)
	UpdateExercise(ctx context.Context, exerciseID uuid.UUID, input *UpdateExerciseInput) (*entity.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID uuid.UUID) error

	CreateAssessment(ctx context.Context, courseID uuid.UUID, input *CreateAssessmentInput) (*entity.Assessment, error)
	UpdateAssessment(ctx context.Context, assessmentID uuid.UUID, input *UpdateAssessmentInput) (*entity.Assessment, error)
	DeleteAssessment(ctx context.Context, assessmentID uuid.UUID) error
}

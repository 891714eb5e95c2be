package handler

import (
	"log/slog"
	"net/http"

	"coursebridge/internal/delivery/http/middleware"
	"coursebridge/internal/delivery/http/response"
	"coursebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CourseHandler holds dependencies for the course content handlers.
type CourseHandler struct {
	uc     usecase.CourseUsecase
	logger *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler, injected by Fx.
func NewCourseHandler(uc usecase.CourseUsecase, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCourseRequest struct {
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description"`
	Level           string     `json:"level" validate:"required"`
	CourseRequestID *uuid.UUID `json:"course_request_id"`
}

type rejectCourseRequest struct {
	Comment string `json:"comment" validate:"required"`
}

type createModuleRequest struct {
	Sequence    int    `json:"sequence" validate:"required,min=1"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type createLessonRequest struct {
	Sequence        int    `json:"sequence" validate:"required,min=1"`
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content"`
	DurationMinutes int    `json:"duration_minutes" validate:"min=0"`
}

type createExerciseRequest struct {
	Sequence  int    `json:"sequence" validate:"required,min=1"`
	Prompt    string `json:"prompt" validate:"required"`
	Type      string `json:"type" validate:"required"`
	AnswerKey string `json:"answer_key"`
}

type createAssessmentRequest struct {
	Sequence     int    `json:"sequence" validate:"required,min=1"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	PassingScore int    `json:"passing_score" validate:"min=0,max=100"`
}

// CreateCourse opens a new draft course owned by the caller.
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	course, err := h.uc.CreateCourse(c.Request().Context(), actor, &usecase.CreateCourseInput{
		Title:           req.Title,
		Description:     req.Description,
		Level:           req.Level,
		CourseRequestID: req.CourseRequestID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCourseView(course))
}

// GetCourse returns a course with its full content hierarchy.
func (h *CourseHandler) GetCourse(c echo.Context) error {
	courseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	course, err := h.uc.GetCourse(c.Request().Context(), courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCourseView(course))
}

// ListCourses returns one page of courses, optionally filtered by status
// and level.
func (h *CourseHandler) ListCourses(c echo.Context) error {
	page, perPage := queryPagination(c)

	output, err := h.uc.ListCourses(c.Request().Context(), &usecase.ListCoursesInput{
		Status:  c.QueryParam("status"),
		Level:   c.QueryParam("level"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.PaginatedData{
		Items:   newCourseViews(output.Courses),
		Total:   output.Total,
		Page:    output.Page,
		PerPage: output.PerPage,
	})
}

// UpdateCourse applies partial changes to an editable course.
func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	courseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateCourseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}

	course, err := h.uc.UpdateCourse(c.Request().Context(), courseID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCourseView(course))
}

// DeleteCourse removes a draft course and its content hierarchy.
func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	courseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteCourse(c.Request().Context(), courseID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SubmitForReview moves a draft or rejected course into pending_review.
func (h *CourseHandler) SubmitForReview(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	courseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	course, err := h.uc.SubmitForReview(c.Request().Context(), actor, courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCourseView(course))
}

// ApproveCourse accepts a pending_review course.
func (h *CourseHandler) ApproveCourse(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	courseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	course, err := h.uc.ApproveCourse(c.Request().Context(), actor, courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCourseView(course))
}

// RejectCourse sends a pending_review course back for rework. The
// rejection comment is mandatory.
func (h *CourseHandler) RejectCourse(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	courseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req rejectCourseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	course, err := h.uc.RejectCourse(c.Request().Context(), actor, courseID, &usecase.RejectCourseInput{
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCourseView(course))
}

// ListReviews returns the course's review audit trail.
func (h *CourseHandler) ListReviews(c echo.Context) error {
	courseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	reviews, err := h.uc.ListReviews(c.Request().Context(), courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newReviewViews(reviews))
}

// CreateModule adds a module to a course.
func (h *CourseHandler) CreateModule(c echo.Context) error {
	courseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req createModuleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid module input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	module, err := h.uc.CreateModule(c.Request().Context(), courseID, &usecase.CreateModuleInput{
		Sequence:    req.Sequence,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newModuleView(module))
}

// ListModules returns a course's modules ordered by sequence.
func (h *CourseHandler) ListModules(c echo.Context) error {
	courseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	modules, err := h.uc.ListModules(c.Request().Context(), courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newModuleViews(modules))
}

// UpdateModule applies partial changes to a module.
func (h *CourseHandler) UpdateModule(c echo.Context) error {
	courseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	moduleID, err := pathUUID(c, "moduleId")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateModuleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid module input")
	}

	module, err := h.uc.UpdateModule(c.Request().Context(), courseID, moduleID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newModuleView(module))
}

// DeleteModule removes a module and its lessons.
func (h *CourseHandler) DeleteModule(c echo.Context) error {
	courseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	moduleID, err := pathUUID(c, "moduleId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteModule(c.Request().Context(), courseID, moduleID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateLesson adds a lesson to a module.
func (h *CourseHandler) CreateLesson(c echo.Context) error {
	moduleID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req createLessonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lesson input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	lesson, err := h.uc.CreateLesson(c.Request().Context(), moduleID, &usecase.CreateLessonInput{
		Sequence:        req.Sequence,
		Title:           req.Title,
		Content:         req.Content,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newLessonView(lesson))
}

// UpdateLesson applies partial changes to a lesson.
func (h *CourseHandler) UpdateLesson(c echo.Context) error {
	lessonID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateLessonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lesson input")
	}

	lesson, err := h.uc.UpdateLesson(c.Request().Context(), lessonID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLessonView(lesson))
}

// DeleteLesson removes a lesson and its exercises.
func (h *CourseHandler) DeleteLesson(c echo.Context) error {
	lessonID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteLesson(c.Request().Context(), lessonID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateExercise adds an exercise to a lesson.
func (h *CourseHandler) CreateExercise(c echo.Context) error {
	lessonID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req createExerciseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exercise input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	exercise, err := h.uc.CreateExercise(c.Request().Context(), lessonID, &usecase.CreateExerciseInput{
		Sequence:  req.Sequence,
		Prompt:    req.Prompt,
		Type:      req.Type,
		AnswerKey: req.AnswerKey,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newExerciseView(exercise))
}

// UpdateExercise applies partial changes to an exercise.
func (h *CourseHandler) UpdateExercise(c echo.Context) error {
	exerciseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateExerciseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exercise input")
	}

	exercise, err := h.uc.UpdateExercise(c.Request().Context(), exerciseID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newExerciseView(exercise))
}

// DeleteExercise removes an exercise.
func (h *CourseHandler) DeleteExercise(c echo.Context) error {
	exerciseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteExercise(c.Request().Context(), exerciseID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateAssessment adds an assessment to a course.
func (h *CourseHandler) CreateAssessment(c echo.Context) error {
	courseID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req createAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assessment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	assessment, err := h.uc.CreateAssessment(c.Request().Context(), courseID, &usecase.CreateAssessmentInput{
		Sequence:     req.Sequence,
		Title:        req.Title,
		Description:  req.Description,
		PassingScore: req.PassingScore,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAssessmentView(assessment))
}

// UpdateAssessment applies partial changes to an assessment.
func (h *CourseHandler) UpdateAssessment(c echo.Context) error {
	assessmentID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateAssessmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assessment input")
	}

	assessment, err := h.uc.UpdateAssessment(c.Request().Context(), assessmentID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAssessmentView(assessment))
}

// DeleteAssessment removes an assessment.
func (h *CourseHandler) DeleteAssessment(c echo.Context) error {
	assessmentID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteAssessment(c.Request().Context(), assessmentID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

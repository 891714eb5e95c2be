// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "coursebridge/internal/delivery/context"
	"coursebridge/internal/domain/constants"
	"coursebridge/internal/domain/entity"
	domainerrors "coursebridge/internal/domain/errors"
	"coursebridge/internal/domain/repository"
	"coursebridge/internal/domain/service"
	"coursebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Assessment passing score bounds.
const (
	passingScoreMin = 0
	passingScoreMax = 100
)

// courseService implements the CourseUsecase interface.
type courseService struct {
	txManager      repository.TransactionManager
	courseRepo     repository.CourseRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// CourseServiceParams holds dependencies for CourseService, injected by Fx.
type CourseServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CourseRepo     repository.CourseRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewCourseService is the constructor for courseService.
func NewCourseService(params CourseServiceParams) usecase.CourseUsecase {
	return &courseService{
		txManager:      params.TxManager,
		courseRepo:     params.CourseRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *courseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCourse creates a new draft course owned by the actor. When the course
// originates from a sales request, the back-reference is validated first.
func (srv *courseService) CreateCourse(ctx context.Context, actor usecase.Actor, input *usecase.CreateCourseInput) (*entity.Course, error) {
	srv.log(ctx).Info("Creating course", slog.String("title", input.Title), slog.Any("createdBy", actor.UserID))

	level, err := parseCEFRLevel(input.Level)
	if err != nil {
		return nil, err
	}

	course := &entity.Course{
		Title:           input.Title,
		Description:     input.Description,
		Level:           level,
		Status:          entity.CourseStatusDraft,
		CreatedByID:     actor.UserID,
		CourseRequestID: input.CourseRequestID,
	}

	if input.CourseRequestID == nil {
		// Single operation - use direct repository instance
		if err := srv.courseRepo.Create(ctx, course); err != nil {
			srv.log(ctx).Error("Failed to create course", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to create course")
		}

		return course, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.CourseRequestRepo().FindByID(ctx, *input.CourseRequestID); err != nil {
			if errors.Is(err, repository.ErrCourseRequestNotFound) {
				return errors.Wrap(domainerrors.ErrValidationFailed, "originating course request does not exist")
			}

			return errors.Wrap(err, "failed to find originating course request")
		}

		if err := repoFactory.CourseRepo().Create(ctx, course); err != nil {
			return errors.Wrap(err, "failed to create course")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute course creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute course creation transaction")
	}
	srv.log(ctx).Debug("Course created", slog.Any("courseID", course.ID))

	return course, nil
}

// GetCourse returns a course with its full content hierarchy preloaded.
func (srv *courseService) GetCourse(ctx context.Context, courseID uuid.UUID) (*entity.Course, error) {
	srv.log(ctx).Debug("Getting course", slog.Any("courseID", courseID))

	// Single operation - use direct repository instance
	return loadCourse(ctx, srv.courseRepo, courseID)
}

// ListCourses returns one page of courses without their content hierarchies.
func (srv *courseService) ListCourses(ctx context.Context, input *usecase.ListCoursesInput) (*usecase.CourseListOutput, error) {
	srv.log(ctx).Debug("Listing courses", slog.String("status", input.Status), slog.String("level", input.Level))

	filter := repository.CourseListFilter{
		Page:    input.Page,
		PerPage: input.PerPage,
	}

	if input.Status != "" {
		status := entity.CourseStatus(input.Status)
		if !status.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown status filter %q", input.Status)
		}
		filter.Status = &status
	}

	if input.Level != "" {
		level, err := parseCEFRLevel(input.Level)
		if err != nil {
			return nil, err
		}
		filter.Level = &level
	}

	courses, total, err := srv.courseRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list courses", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list courses")
	}

	return &usecase.CourseListOutput{
		Courses: courses,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

// UpdateCourse applies allow-listed field changes while the course is editable.
func (srv *courseService) UpdateCourse(ctx context.Context, courseID uuid.UUID, input *usecase.UpdateCourseInput) (*entity.Course, error) {
	srv.log(ctx).Info("Updating course", slog.Any("courseID", courseID))

	var updatedCourse *entity.Course

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		course, err := loadEditableCourse(ctx, courseRepo, courseID)
		if err != nil {
			return err
		}

		if input.Title != nil {
			course.Title = *input.Title
		}
		if input.Description != nil {
			course.Description = *input.Description
		}
		if input.Level != nil {
			level, err := parseCEFRLevel(*input.Level)
			if err != nil {
				return err
			}
			course.Level = level
		}

		if err := courseRepo.Update(ctx, course); err != nil {
			return errors.Wrap(err, "failed to update course")
		}

		updatedCourse = course

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute course update transaction", slog.Any("error", err), slog.Any("courseID", courseID))

		return nil, errors.Wrap(err, "failed to execute course update transaction")
	}

	return updatedCourse, nil
}

// DeleteCourse removes an editable course and its whole content hierarchy.
func (srv *courseService) DeleteCourse(ctx context.Context, courseID uuid.UUID) error {
	srv.log(ctx).Info("Deleting course", slog.Any("courseID", courseID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		if _, err := loadEditableCourse(ctx, courseRepo, courseID); err != nil {
			return err
		}

		if err := courseRepo.Delete(ctx, courseID); err != nil {
			return errors.Wrap(err, "failed to delete course")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute course delete transaction", slog.Any("error", err), slog.Any("courseID", courseID))

		return errors.Wrap(err, "failed to execute course delete transaction")
	}

	return nil
}

// SubmitForReview moves an editable course into pending_review and records
// the transition in the review trail.
func (srv *courseService) SubmitForReview(ctx context.Context, actor usecase.Actor, courseID uuid.UUID) (*entity.Course, error) {
	srv.log(ctx).Info("Submitting course for review", slog.Any("courseID", courseID))

	return srv.transitionCourse(ctx, courseID, func(course *entity.Course) error {
		return course.SubmitForReview()
	}, &entity.CourseReview{
		CourseID:   courseID,
		ReviewerID: actor.UserID,
		Action:     entity.ReviewActionSubmitted,
	}, "", actor)
}

// ApproveCourse accepts a pending course. The approval event fires after the
// transaction commits.
func (srv *courseService) ApproveCourse(ctx context.Context, actor usecase.Actor, courseID uuid.UUID) (*entity.Course, error) {
	srv.log(ctx).Info("Approving course", slog.Any("courseID", courseID), slog.Any("approverID", actor.UserID))

	return srv.transitionCourse(ctx, courseID, func(course *entity.Course) error {
		return course.Approve(actor.UserID)
	}, &entity.CourseReview{
		CourseID:   courseID,
		ReviewerID: actor.UserID,
		Action:     entity.ReviewActionApproved,
	}, constants.EventCourseApproved, actor)
}

// RejectCourse sends a pending course back for rework. A comment explaining
// the rejection is mandatory.
func (srv *courseService) RejectCourse(ctx context.Context, actor usecase.Actor, courseID uuid.UUID, input *usecase.RejectCourseInput) (*entity.Course, error) {
	srv.log(ctx).Info("Rejecting course", slog.Any("courseID", courseID), slog.Any("reviewerID", actor.UserID))

	if input.Comment == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a rejection comment is required")
	}

	return srv.transitionCourse(ctx, courseID, func(course *entity.Course) error {
		return course.Reject()
	}, &entity.CourseReview{
		CourseID:   courseID,
		ReviewerID: actor.UserID,
		Action:     entity.ReviewActionRejected,
		Comment:    input.Comment,
	}, constants.EventCourseRejected, actor)
}

// transitionCourse runs a review transition and its audit row in one
// transaction, so the status change and the trail entry commit together.
// When eventType is non-empty the event fires after the commit.
func (srv *courseService) transitionCourse(ctx context.Context, courseID uuid.UUID, transition func(*entity.Course) error, review *entity.CourseReview, eventType string, actor usecase.Actor) (*entity.Course, error) {
	var transitionedCourse *entity.Course

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		course, err := loadCourse(ctx, courseRepo, courseID)
		if err != nil {
			return err
		}

		if err := transition(course); err != nil {
			return err
		}

		if err := courseRepo.Update(ctx, course); err != nil {
			return errors.Wrap(err, "failed to update course")
		}

		if err := courseRepo.CreateReview(ctx, review); err != nil {
			return errors.Wrap(err, "failed to append course review")
		}

		transitionedCourse = course

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute course transition", slog.Any("error", err), slog.Any("courseID", courseID))

		return nil, errors.Wrap(err, "failed to execute course transition")
	}

	if eventType != "" {
		srv.publishCourseEvent(ctx, eventType, transitionedCourse, actor, review.Comment)
	}

	return transitionedCourse, nil
}

// ListReviews returns the review trail of a course, newest first.
func (srv *courseService) ListReviews(ctx context.Context, courseID uuid.UUID) ([]*entity.CourseReview, error) {
	srv.log(ctx).Debug("Listing course reviews", slog.Any("courseID", courseID))

	if _, err := loadCourse(ctx, srv.courseRepo, courseID); err != nil {
		return nil, err
	}

	reviews, err := srv.courseRepo.ListReviewsByCourseID(ctx, courseID)
	if err != nil {
		srv.log(ctx).Error("Failed to list course reviews", slog.Any("error", err), slog.Any("courseID", courseID))

		return nil, errors.Wrap(err, "failed to list course reviews")
	}

	return reviews, nil
}

// CreateModule adds a module to an editable course.
func (srv *courseService) CreateModule(ctx context.Context, courseID uuid.UUID, input *usecase.CreateModuleInput) (*entity.Module, error) {
	srv.log(ctx).Info("Creating module", slog.Any("courseID", courseID), slog.Int("sequence", input.Sequence))

	if err := validateSequence(input.Sequence); err != nil {
		return nil, err
	}

	var createdModule *entity.Module

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		if _, err := loadEditableCourse(ctx, courseRepo, courseID); err != nil {
			return err
		}

		module := &entity.Module{
			CourseID:    courseID,
			Sequence:    input.Sequence,
			Title:       input.Title,
			Description: input.Description,
		}

		if err := courseRepo.CreateModule(ctx, module); err != nil {
			return wrapSequenceConflict(err, "failed to create module")
		}

		createdModule = module

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute module creation transaction", slog.Any("error", err), slog.Any("courseID", courseID))

		return nil, errors.Wrap(err, "failed to execute module creation transaction")
	}

	return createdModule, nil
}

// ListModules returns the modules of a course ordered by sequence.
func (srv *courseService) ListModules(ctx context.Context, courseID uuid.UUID) ([]*entity.Module, error) {
	srv.log(ctx).Debug("Listing modules", slog.Any("courseID", courseID))

	if _, err := loadCourse(ctx, srv.courseRepo, courseID); err != nil {
		return nil, err
	}

	modules, err := srv.courseRepo.ListModulesByCourseID(ctx, courseID)
	if err != nil {
		srv.log(ctx).Error("Failed to list modules", slog.Any("error", err), slog.Any("courseID", courseID))

		return nil, errors.Wrap(err, "failed to list modules")
	}

	return modules, nil
}

// UpdateModule applies field changes to a module of an editable course.
func (srv *courseService) UpdateModule(ctx context.Context, courseID, moduleID uuid.UUID, input *usecase.UpdateModuleInput) (*entity.Module, error) {
	srv.log(ctx).Info("Updating module", slog.Any("moduleID", moduleID))

	if input.Sequence != nil {
		if err := validateSequence(*input.Sequence); err != nil {
			return nil, err
		}
	}

	var updatedModule *entity.Module

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		if _, err := loadEditableCourse(ctx, courseRepo, courseID); err != nil {
			return err
		}

		module, err := loadModule(ctx, courseRepo, moduleID)
		if err != nil {
			return err
		}

		if module.CourseID != courseID {
			return errors.Wrap(domainerrors.ErrModuleNotFound, "module belongs to another course")
		}

		if input.Sequence != nil {
			module.Sequence = *input.Sequence
		}
		if input.Title != nil {
			module.Title = *input.Title
		}
		if input.Description != nil {
			module.Description = *input.Description
		}

		if err := courseRepo.UpdateModule(ctx, module); err != nil {
			return wrapSequenceConflict(err, "failed to update module")
		}

		updatedModule = module

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute module update transaction", slog.Any("error", err), slog.Any("moduleID", moduleID))

		return nil, errors.Wrap(err, "failed to execute module update transaction")
	}

	return updatedModule, nil
}

// DeleteModule removes a module and its lessons from an editable course.
func (srv *courseService) DeleteModule(ctx context.Context, courseID, moduleID uuid.UUID) error {
	srv.log(ctx).Info("Deleting module", slog.Any("moduleID", moduleID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		if _, err := loadEditableCourse(ctx, courseRepo, courseID); err != nil {
			return err
		}

		module, err := loadModule(ctx, courseRepo, moduleID)
		if err != nil {
			return err
		}

		if module.CourseID != courseID {
			return errors.Wrap(domainerrors.ErrModuleNotFound, "module belongs to another course")
		}

		if err := courseRepo.DeleteModule(ctx, moduleID); err != nil {
			return errors.Wrap(err, "failed to delete module")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute module delete transaction", slog.Any("error", err), slog.Any("moduleID", moduleID))

		return errors.Wrap(err, "failed to execute module delete transaction")
	}

	return nil
}

// CreateLesson adds a lesson to a module, provided the owning course is editable.
func (srv *courseService) CreateLesson(ctx context.Context, moduleID uuid.UUID, input *usecase.CreateLessonInput) (*entity.Lesson, error) {
	srv.log(ctx).Info("Creating lesson", slog.Any("moduleID", moduleID), slog.Int("sequence", input.Sequence))

	if err := validateSequence(input.Sequence); err != nil {
		return nil, err
	}

	var createdLesson *entity.Lesson

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		module, err := loadModule(ctx, courseRepo, moduleID)
		if err != nil {
			return err
		}

		if _, err := loadEditableCourse(ctx, courseRepo, module.CourseID); err != nil {
			return err
		}

		lesson := &entity.Lesson{
			ModuleID:        moduleID,
			Sequence:        input.Sequence,
			Title:           input.Title,
			Content:         input.Content,
			DurationMinutes: input.DurationMinutes,
		}

		if err := courseRepo.CreateLesson(ctx, lesson); err != nil {
			return wrapSequenceConflict(err, "failed to create lesson")
		}

		createdLesson = lesson

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute lesson creation transaction", slog.Any("error", err), slog.Any("moduleID", moduleID))

		return nil, errors.Wrap(err, "failed to execute lesson creation transaction")
	}

	return createdLesson, nil
}

// UpdateLesson applies field changes to a lesson, provided the owning course
// is editable. The editability check walks lesson → module → course.
func (srv *courseService) UpdateLesson(ctx context.Context, lessonID uuid.UUID, input *usecase.UpdateLessonInput) (*entity.Lesson, error) {
	srv.log(ctx).Info("Updating lesson", slog.Any("lessonID", lessonID))

	if input.Sequence != nil {
		if err := validateSequence(*input.Sequence); err != nil {
			return nil, err
		}
	}

	var updatedLesson *entity.Lesson

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		lesson, err := loadLesson(ctx, courseRepo, lessonID)
		if err != nil {
			return err
		}

		if err := srv.requireEditableLessonParent(ctx, courseRepo, lesson); err != nil {
			return err
		}

		if input.Sequence != nil {
			lesson.Sequence = *input.Sequence
		}
		if input.Title != nil {
			lesson.Title = *input.Title
		}
		if input.Content != nil {
			lesson.Content = *input.Content
		}
		if input.DurationMinutes != nil {
			lesson.DurationMinutes = *input.DurationMinutes
		}

		if err := courseRepo.UpdateLesson(ctx, lesson); err != nil {
			return wrapSequenceConflict(err, "failed to update lesson")
		}

		updatedLesson = lesson

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute lesson update transaction", slog.Any("error", err), slog.Any("lessonID", lessonID))

		return nil, errors.Wrap(err, "failed to execute lesson update transaction")
	}

	return updatedLesson, nil
}

// DeleteLesson removes a lesson and its exercises, provided the owning course
// is editable.
func (srv *courseService) DeleteLesson(ctx context.Context, lessonID uuid.UUID) error {
	srv.log(ctx).Info("Deleting lesson", slog.Any("lessonID", lessonID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		lesson, err := loadLesson(ctx, courseRepo, lessonID)
		if err != nil {
			return err
		}

		if err := srv.requireEditableLessonParent(ctx, courseRepo, lesson); err != nil {
			return err
		}

		if err := courseRepo.DeleteLesson(ctx, lessonID); err != nil {
			return errors.Wrap(err, "failed to delete lesson")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute lesson delete transaction", slog.Any("error", err), slog.Any("lessonID", lessonID))

		return errors.Wrap(err, "failed to execute lesson delete transaction")
	}

	return nil
}

// requireEditableLessonParent walks lesson → module → course and checks the
// course is still editable.
func (srv *courseService) requireEditableLessonParent(ctx context.Context, courseRepo repository.CourseRepository, lesson *entity.Lesson) error {
	module, err := loadModule(ctx, courseRepo, lesson.ModuleID)
	if err != nil {
		return err
	}

	_, err = loadEditableCourse(ctx, courseRepo, module.CourseID)

	return err
}

// CreateExercise adds an exercise to a lesson, provided the owning course is editable.
func (srv *courseService) CreateExercise(ctx context.Context, lessonID uuid.UUID, input *usecase.CreateExerciseInput) (*entity.Exercise, error) {
	srv.log(ctx).Info("Creating exercise", slog.Any("lessonID", lessonID), slog.Int("sequence", input.Sequence))

	if err := validateSequence(input.Sequence); err != nil {
		return nil, err
	}

	exerciseType := entity.ExerciseType(input.Type)
	if !exerciseType.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown exercise type %q", input.Type)
	}

	var createdExercise *entity.Exercise

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		lesson, err := loadLesson(ctx, courseRepo, lessonID)
		if err != nil {
			return err
		}

		if err := srv.requireEditableLessonParent(ctx, courseRepo, lesson); err != nil {
			return err
		}

		exercise := &entity.Exercise{
			LessonID:  lessonID,
			Sequence:  input.Sequence,
			Prompt:    input.Prompt,
			Type:      exerciseType,
			AnswerKey: input.AnswerKey,
		}

		if err := courseRepo.CreateExercise(ctx, exercise); err != nil {
			return wrapSequenceConflict(err, "failed to create exercise")
		}

		createdExercise = exercise

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute exercise creation transaction", slog.Any("error", err), slog.Any("lessonID", lessonID))

		return nil, errors.Wrap(err, "failed to execute exercise creation transaction")
	}

	return createdExercise, nil
}

// UpdateExercise applies field changes to an exercise, provided the owning
// course is editable. The editability check walks exercise → lesson → module → course.
func (srv *courseService) UpdateExercise(ctx context.Context, exerciseID uuid.UUID, input *usecase.UpdateExerciseInput) (*entity.Exercise, error) {
	srv.log(ctx).Info("Updating exercise", slog.Any("exerciseID", exerciseID))

	if input.Sequence != nil {
		if err := validateSequence(*input.Sequence); err != nil {
			return nil, err
		}
	}

	var updatedExercise *entity.Exercise

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		exercise, err := loadExercise(ctx, courseRepo, exerciseID)
		if err != nil {
			return err
		}

		lesson, err := loadLesson(ctx, courseRepo, exercise.LessonID)
		if err != nil {
			return err
		}

		if err := srv.requireEditableLessonParent(ctx, courseRepo, lesson); err != nil {
			return err
		}

		if input.Sequence != nil {
			exercise.Sequence = *input.Sequence
		}
		if input.Prompt != nil {
			exercise.Prompt = *input.Prompt
		}
		if input.Type != nil {
			exerciseType := entity.ExerciseType(*input.Type)
			if !exerciseType.IsValid() {
				return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown exercise type %q", *input.Type)
			}
			exercise.Type = exerciseType
		}
		if input.AnswerKey != nil {
			exercise.AnswerKey = *input.AnswerKey
		}

		if err := courseRepo.UpdateExercise(ctx, exercise); err != nil {
			return wrapSequenceConflict(err, "failed to update exercise")
		}

		updatedExercise = exercise

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute exercise update transaction", slog.Any("error", err), slog.Any("exerciseID", exerciseID))

		return nil, errors.Wrap(err, "failed to execute exercise update transaction")
	}

	return updatedExercise, nil
}

// DeleteExercise removes an exercise, provided the owning course is editable.
func (srv *courseService) DeleteExercise(ctx context.Context, exerciseID uuid.UUID) error {
	srv.log(ctx).Info("Deleting exercise", slog.Any("exerciseID", exerciseID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		exercise, err := loadExercise(ctx, courseRepo, exerciseID)
		if err != nil {
			return err
		}

		lesson, err := loadLesson(ctx, courseRepo, exercise.LessonID)
		if err != nil {
			return err
		}

		if err := srv.requireEditableLessonParent(ctx, courseRepo, lesson); err != nil {
			return err
		}

		if err := courseRepo.DeleteExercise(ctx, exerciseID); err != nil {
			return errors.Wrap(err, "failed to delete exercise")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute exercise delete transaction", slog.Any("error", err), slog.Any("exerciseID", exerciseID))

		return errors.Wrap(err, "failed to execute exercise delete transaction")
	}

	return nil
}

// CreateAssessment adds an assessment to an editable course.
func (srv *courseService) CreateAssessment(ctx context.Context, courseID uuid.UUID, input *usecase.CreateAssessmentInput) (*entity.Assessment, error) {
	srv.log(ctx).Info("Creating assessment", slog.Any("courseID", courseID), slog.Int("sequence", input.Sequence))

	if err := validateSequence(input.Sequence); err != nil {
		return nil, err
	}

	if err := validatePassingScore(input.PassingScore); err != nil {
		return nil, err
	}

	var createdAssessment *entity.Assessment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		if _, err := loadEditableCourse(ctx, courseRepo, courseID); err != nil {
			return err
		}

		assessment := &entity.Assessment{
			CourseID:     courseID,
			Sequence:     input.Sequence,
			Title:        input.Title,
			Description:  input.Description,
			PassingScore: input.PassingScore,
		}

		if err := courseRepo.CreateAssessment(ctx, assessment); err != nil {
			return wrapSequenceConflict(err, "failed to create assessment")
		}

		createdAssessment = assessment

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute assessment creation transaction", slog.Any("error", err), slog.Any("courseID", courseID))

		return nil, errors.Wrap(err, "failed to execute assessment creation transaction")
	}

	return createdAssessment, nil
}

// UpdateAssessment applies field changes to an assessment of an editable course.
func (srv *courseService) UpdateAssessment(ctx context.Context, assessmentID uuid.UUID, input *usecase.UpdateAssessmentInput) (*entity.Assessment, error) {
	srv.log(ctx).Info("Updating assessment", slog.Any("assessmentID", assessmentID))

	if input.Sequence != nil {
		if err := validateSequence(*input.Sequence); err != nil {
			return nil, err
		}
	}

	if input.PassingScore != nil {
		if err := validatePassingScore(*input.PassingScore); err != nil {
			return nil, err
		}
	}

	var updatedAssessment *entity.Assessment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		assessment, err := loadAssessment(ctx, courseRepo, assessmentID)
		if err != nil {
			return err
		}

		if _, err := loadEditableCourse(ctx, courseRepo, assessment.CourseID); err != nil {
			return err
		}

		if input.Sequence != nil {
			assessment.Sequence = *input.Sequence
		}
		if input.Title != nil {
			assessment.Title = *input.Title
		}
		if input.Description != nil {
			assessment.Description = *input.Description
		}
		if input.PassingScore != nil {
			assessment.PassingScore = *input.PassingScore
		}

		if err := courseRepo.UpdateAssessment(ctx, assessment); err != nil {
			return wrapSequenceConflict(err, "failed to update assessment")
		}

		updatedAssessment = assessment

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute assessment update transaction", slog.Any("error", err), slog.Any("assessmentID", assessmentID))

		return nil, errors.Wrap(err, "failed to execute assessment update transaction")
	}

	return updatedAssessment, nil
}

// DeleteAssessment removes an assessment, provided the owning course is editable.
func (srv *courseService) DeleteAssessment(ctx context.Context, assessmentID uuid.UUID) error {
	srv.log(ctx).Info("Deleting assessment", slog.Any("assessmentID", assessmentID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		assessment, err := loadAssessment(ctx, courseRepo, assessmentID)
		if err != nil {
			return err
		}

		if _, err := loadEditableCourse(ctx, courseRepo, assessment.CourseID); err != nil {
			return err
		}

		if err := courseRepo.DeleteAssessment(ctx, assessmentID); err != nil {
			return errors.Wrap(err, "failed to delete assessment")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute assessment delete transaction", slog.Any("error", err), slog.Any("assessmentID", assessmentID))

		return errors.Wrap(err, "failed to execute assessment delete transaction")
	}

	return nil
}

// publishCourseEvent publishes a review workflow event. Events are best-effort
// and fire after the owning transaction has committed; failures are logged only.
func (srv *courseService) publishCourseEvent(ctx context.Context, eventType string, course *entity.Course, actor usecase.Actor, comment string) {
	attributes := map[string]string{
		"title": course.Title,
		"level": course.Level.String(),
	}
	if comment != "" {
		attributes["comment"] = comment
	}

	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		SubjectID:  course.ID.String(),
		ActorID:    actor.UserID.String(),
		OccurredAt: time.Now(),
		Attributes: attributes,
	}

	if err := srv.eventPublisher.PublishDomainEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish domain event", slog.String("eventType", eventType), slog.Any("error", err))
	}
}

// --- load helpers: map persistence sentinels onto domain errors ---

func loadCourse(ctx context.Context, courseRepo repository.CourseRepository, courseID uuid.UUID) (*entity.Course, error) {
	course, err := courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCourseNotFound, "course lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	return course, nil
}

// loadEditableCourse loads a course and rejects content edits once the course
// is under review or approved.
func loadEditableCourse(ctx context.Context, courseRepo repository.CourseRepository, courseID uuid.UUID) (*entity.Course, error) {
	course, err := loadCourse(ctx, courseRepo, courseID)
	if err != nil {
		return nil, err
	}

	if !course.CanModify() {
		return nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition, "course content is frozen from review onwards")
	}

	return course, nil
}

func loadModule(ctx context.Context, courseRepo repository.CourseRepository, moduleID uuid.UUID) (*entity.Module, error) {
	module, err := courseRepo.FindModuleByID(ctx, moduleID)
	if err != nil {
		if errors.Is(err, repository.ErrModuleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrModuleNotFound, "module lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find module")
	}

	return module, nil
}

func loadLesson(ctx context.Context, courseRepo repository.CourseRepository, lessonID uuid.UUID) (*entity.Lesson, error) {
	lesson, err := courseRepo.FindLessonByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, repository.ErrLessonNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLessonNotFound, "lesson lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find lesson")
	}

	return lesson, nil
}

func loadExercise(ctx context.Context, courseRepo repository.CourseRepository, exerciseID uuid.UUID) (*entity.Exercise, error) {
	exercise, err := courseRepo.FindExerciseByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrExerciseNotFound) {
			return nil, errors.Wrap(domainerrors.ErrExerciseNotFound, "exercise lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find exercise")
	}

	return exercise, nil
}

func loadAssessment(ctx context.Context, courseRepo repository.CourseRepository, assessmentID uuid.UUID) (*entity.Assessment, error) {
	assessment, err := courseRepo.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAssessmentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAssessmentNotFound, "assessment lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find assessment")
	}

	return assessment, nil
}

// wrapSequenceConflict maps the duplicate-sequence sentinel onto the conflict
// domain error and wraps everything else with the given message.
func wrapSequenceConflict(err error, message string) error {
	if errors.Is(err, repository.ErrDuplicateSequence) {
		return errors.Wrap(domainerrors.ErrConflict, "sequence already in use within parent")
	}

	return errors.Wrap(err, message)
}

// --- shared field validators ---

func validateSequence(sequence int) error {
	if sequence < 1 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "sequence must be at least 1")
	}

	return nil
}

func validatePassingScore(score int) error {
	if score < passingScoreMin || score > passingScoreMax {
		return errors.Wrapf(domainerrors.ErrValidationFailed,
			"passing score must be between %d and %d", passingScoreMin, passingScoreMax)
	}

	return nil
}

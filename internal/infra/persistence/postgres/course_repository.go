// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"coursebridge/internal/domain/entity"
	domainerrors "coursebridge/internal/domain/errors"
	"coursebridge/internal/domain/repository"
	"coursebridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// courseRepository implements the repository.CourseRepository interface.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{
		db: db,
	}
}

// sequenceAsc orders preloaded content children by their sequence number.
func sequenceAsc(db *gorm.DB) *gorm.DB {
	return db.Order("sequence ASC")
}

// Create persists a new course.
func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	if err := repo.db.WithContext(ctx).Create(courseM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid creator or request reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required course information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	// Update the entity with generated values
	course.ID = courseM.ID
	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// FindByID retrieves a course with its full content hierarchy preloaded,
// children ordered by sequence.
func (repo *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var courseM model.CourseModel

	if err := repo.db.WithContext(ctx).
		Preload("Modules", sequenceAsc).
		Preload("Modules.Lessons", sequenceAsc).
		Preload("Modules.Lessons.Exercises", sequenceAsc).
		Preload("Assessments", sequenceAsc).
		Where("id = ?", id).
		First(&courseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course by id")
	}

	return toCourseDomain(&courseM), nil
}

// List retrieves courses matching the filter and the total match count.
// Children are not preloaded on listings.
func (repo *courseRepository) List(ctx context.Context, filter repository.CourseListFilter) ([]*entity.Course, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CourseModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Level != nil {
		query = query.Where("level = ?", filter.Level.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count courses")
	}

	var courseModels []*model.CourseModel
	if err := query.
		Order("created_at DESC").
		Offset(pageOffset(filter.Page, filter.PerPage)).
		Limit(filter.PerPage).
		Find(&courseModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list courses")
	}

	courses := make([]*entity.Course, 0, len(courseModels))
	for _, courseM := range courseModels {
		courses = append(courses, toCourseDomain(courseM))
	}

	return courses, total, nil
}

// Update modifies the mutable columns of an existing course.
func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CourseModel{}).
		Where("id = ?", course.ID).
		Updates(map[string]any{
			"title":          course.Title,
			"description":    course.Description,
			"level":          course.Level.String(),
			"status":         course.Status.String(),
			"approved_by_id": course.ApprovedByID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update course")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course. The whole content hierarchy cascades at the database level.
func (repo *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CourseModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete course")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

// CreateModule persists a new module.
func (repo *courseRepository) CreateModule(ctx context.Context, module *entity.Module) error {
	moduleM := fromModuleDomain(module)

	if err := repo.db.WithContext(ctx).Create(moduleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSequence
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCourseNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required module information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create module")
	}

	module.ID = moduleM.ID
	module.CreatedAt = moduleM.CreatedAt
	module.UpdatedAt = moduleM.UpdatedAt

	return nil
}

// FindModuleByID retrieves a single module with its lessons preloaded.
func (repo *courseRepository) FindModuleByID(ctx context.Context, id uuid.UUID) (*entity.Module, error) {
	var moduleM model.ModuleModel

	if err := repo.db.WithContext(ctx).
		Preload("Lessons", sequenceAsc).
		Preload("Lessons.Exercises", sequenceAsc).
		Where("id = ?", id).
		First(&moduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrModuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find module by id")
	}

	return toModuleDomain(&moduleM), nil
}

// ListModulesByCourseID retrieves the modules of a course ordered by sequence.
func (repo *courseRepository) ListModulesByCourseID(ctx context.Context, courseID uuid.UUID) ([]*entity.Module, error) {
	var moduleModels []*model.ModuleModel

	if err := repo.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("sequence ASC").
		Find(&moduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list modules by course")
	}

	modules := make([]*entity.Module, 0, len(moduleModels))
	for _, moduleM := range moduleModels {
		modules = append(modules, toModuleDomain(moduleM))
	}

	return modules, nil
}

// UpdateModule modifies an existing module.
func (repo *courseRepository) UpdateModule(ctx context.Context, module *entity.Module) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ModuleModel{}).
		Where("id = ?", module.ID).
		Updates(map[string]any{
			"sequence":    module.Sequence,
			"title":       module.Title,
			"description": module.Description,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSequence
		}

		return errors.Wrap(result.Error, "failed to update module")
	}

	if result.RowsAffected == 0 {
		return repository.ErrModuleNotFound
	}

	return nil
}

// DeleteModule removes a module. Its lessons and exercises cascade.
func (repo *courseRepository) DeleteModule(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ModuleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete module")
	}

	if result.RowsAffected == 0 {
		return repository.ErrModuleNotFound
	}

	return nil
}

// CreateLesson persists a new lesson.
func (repo *courseRepository) CreateLesson(ctx context.Context, lesson *entity.Lesson) error {
	lessonM := fromLessonDomain(lesson)

	if err := repo.db.WithContext(ctx).Create(lessonM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSequence
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrModuleNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required lesson information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lesson")
	}

	lesson.ID = lessonM.ID
	lesson.CreatedAt = lessonM.CreatedAt
	lesson.UpdatedAt = lessonM.UpdatedAt

	return nil
}

// FindLessonByID retrieves a single lesson with its exercises preloaded.
func (repo *courseRepository) FindLessonByID(ctx context.Context, id uuid.UUID) (*entity.Lesson, error) {
	var lessonM model.LessonModel

	if err := repo.db.WithContext(ctx).
		Preload("Exercises", sequenceAsc).
		Where("id = ?", id).
		First(&lessonM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLessonNotFound
		}

		return nil, errors.Wrap(err, "failed to find lesson by id")
	}

	return toLessonDomain(&lessonM), nil
}

// UpdateLesson modifies an existing lesson.
func (repo *courseRepository) UpdateLesson(ctx context.Context, lesson *entity.Lesson) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LessonModel{}).
		Where("id = ?", lesson.ID).
		Updates(map[string]any{
			"sequence":         lesson.Sequence,
			"title":            lesson.Title,
			"content":          lesson.Content,
			"duration_minutes": lesson.DurationMinutes,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSequence
		}

		return errors.Wrap(result.Error, "failed to update lesson")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLessonNotFound
	}

	return nil
}

// DeleteLesson removes a lesson. Its exercises cascade.
func (repo *courseRepository) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LessonModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete lesson")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLessonNotFound
	}

	return nil
}

// CreateExercise persists a new exercise.
func (repo *courseRepository) CreateExercise(ctx context.Context, exercise *entity.Exercise) error {
	exerciseM := fromExerciseDomain(exercise)

	if err := repo.db.WithContext(ctx).Create(exerciseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSequence
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLessonNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required exercise information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create exercise")
	}

	exercise.ID = exerciseM.ID
	exercise.CreatedAt = exerciseM.CreatedAt
	exercise.UpdatedAt = exerciseM.UpdatedAt

	return nil
}

// FindExerciseByID retrieves a single exercise.
func (repo *courseRepository) FindExerciseByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	var exerciseM model.ExerciseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&exerciseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExerciseNotFound
		}

		return nil, errors.Wrap(err, "failed to find exercise by id")
	}

	return toExerciseDomain(&exerciseM), nil
}

// UpdateExercise modifies an existing exercise.
func (repo *courseRepository) UpdateExercise(ctx context.Context, exercise *entity.Exercise) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ExerciseModel{}).
		Where("id = ?", exercise.ID).
		Updates(map[string]any{
			"sequence":   exercise.Sequence,
			"prompt":     exercise.Prompt,
			"type":       exercise.Type.String(),
			"answer_key": exercise.AnswerKey,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSequence
		}

		return errors.Wrap(result.Error, "failed to update exercise")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExerciseNotFound
	}

	return nil
}

// DeleteExercise removes an exercise.
func (repo *courseRepository) DeleteExercise(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ExerciseModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete exercise")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExerciseNotFound
	}

	return nil
}

// CreateAssessment persists a new assessment.
func (repo *courseRepository) CreateAssessment(ctx context.Context, assessment *entity.Assessment) error {
	assessmentM := fromAssessmentDomain(assessment)

	if err := repo.db.WithContext(ctx).Create(assessmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSequence
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCourseNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required assessment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assessment")
	}

	assessment.ID = assessmentM.ID
	assessment.CreatedAt = assessmentM.CreatedAt
	assessment.UpdatedAt = assessmentM.UpdatedAt

	return nil
}

// FindAssessmentByID retrieves a single assessment.
func (repo *courseRepository) FindAssessmentByID(ctx context.Context, id uuid.UUID) (*entity.Assessment, error) {
	var assessmentM model.AssessmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assessmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssessmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find assessment by id")
	}

	return toAssessmentDomain(&assessmentM), nil
}

// UpdateAssessment modifies an existing assessment.
func (repo *courseRepository) UpdateAssessment(ctx context.Context, assessment *entity.Assessment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AssessmentModel{}).
		Where("id = ?", assessment.ID).
		Updates(map[string]any{
			"sequence":      assessment.Sequence,
			"title":         assessment.Title,
			"description":   assessment.Description,
			"passing_score": assessment.PassingScore,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSequence
		}

		return errors.Wrap(result.Error, "failed to update assessment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssessmentNotFound
	}

	return nil
}

// DeleteAssessment removes an assessment.
func (repo *courseRepository) DeleteAssessment(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AssessmentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete assessment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssessmentNotFound
	}

	return nil
}

// CreateReview appends a review audit row.
func (repo *courseRepository) CreateReview(ctx context.Context, review *entity.CourseReview) error {
	reviewM := fromCourseReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCourseNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create course review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// ListReviewsByCourseID retrieves the review trail of a course, newest first.
func (repo *courseRepository) ListReviewsByCourseID(ctx context.Context, courseID uuid.UUID) ([]*entity.CourseReview, error) {
	var reviewModels []*model.CourseReviewModel

	if err := repo.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by course")
	}

	reviews := make([]*entity.CourseReview, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toCourseReviewDomain(reviewM))
	}

	return reviews, nil
}

// --- Mapper Functions ---

// toCourseDomain converts a GORM CourseModel to a domain Course entity.
func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	modules := make([]entity.Module, 0, len(data.Modules))
	for i := range data.Modules {
		modules = append(modules, *toModuleDomain(&data.Modules[i]))
	}

	assessments := make([]entity.Assessment, 0, len(data.Assessments))
	for i := range data.Assessments {
		assessments = append(assessments, *toAssessmentDomain(&data.Assessments[i]))
	}

	return &entity.Course{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		Level:           entity.CEFRLevel(data.Level),
		Status:          entity.CourseStatus(data.Status),
		CreatedByID:     data.CreatedByID,
		ApprovedByID:    data.ApprovedByID,
		CourseRequestID: data.CourseRequestID,
		Modules:         modules,
		Assessments:     assessments,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromCourseDomain converts a domain Course entity to a GORM CourseModel.
// Content children are managed through their own operations.
func fromCourseDomain(data *entity.Course) *model.CourseModel {
	if data == nil {
		return nil
	}

	return &model.CourseModel{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		Level:           data.Level.String(),
		Status:          data.Status.String(),
		CreatedByID:     data.CreatedByID,
		ApprovedByID:    data.ApprovedByID,
		CourseRequestID: data.CourseRequestID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toModuleDomain converts a GORM ModuleModel to a domain Module entity.
func toModuleDomain(data *model.ModuleModel) *entity.Module {
	if data == nil {
		return nil
	}

	lessons := make([]entity.Lesson, 0, len(data.Lessons))
	for i := range data.Lessons {
		lessons = append(lessons, *toLessonDomain(&data.Lessons[i]))
	}

	return &entity.Module{
		ID:          data.ID,
		CourseID:    data.CourseID,
		Sequence:    data.Sequence,
		Title:       data.Title,
		Description: data.Description,
		Lessons:     lessons,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromModuleDomain converts a domain Module entity to a GORM ModuleModel.
func fromModuleDomain(data *entity.Module) *model.ModuleModel {
	if data == nil {
		return nil
	}

	return &model.ModuleModel{
		ID:          data.ID,
		CourseID:    data.CourseID,
		Sequence:    data.Sequence,
		Title:       data.Title,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toLessonDomain converts a GORM LessonModel to a domain Lesson entity.
func toLessonDomain(data *model.LessonModel) *entity.Lesson {
	if data == nil {
		return nil
	}

	exercises := make([]entity.Exercise, 0, len(data.Exercises))
	for i := range data.Exercises {
		exercises = append(exercises, *toExerciseDomain(&data.Exercises[i]))
	}

	return &entity.Lesson{
		ID:              data.ID,
		ModuleID:        data.ModuleID,
		Sequence:        data.Sequence,
		Title:           data.Title,
		Content:         data.Content,
		DurationMinutes: data.DurationMinutes,
		Exercises:       exercises,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromLessonDomain converts a domain Lesson entity to a GORM LessonModel.
func fromLessonDomain(data *entity.Lesson) *model.LessonModel {
	if data == nil {
		return nil
	}

	return &model.LessonModel{
		ID:              data.ID,
		ModuleID:        data.ModuleID,
		Sequence:        data.Sequence,
		Title:           data.Title,
		Content:         data.Content,
		DurationMinutes: data.DurationMinutes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toExerciseDomain converts a GORM ExerciseModel to a domain Exercise entity.
func toExerciseDomain(data *model.ExerciseModel) *entity.Exercise {
	if data == nil {
		return nil
	}

	return &entity.Exercise{
		ID:        data.ID,
		LessonID:  data.LessonID,
		Sequence:  data.Sequence,
		Prompt:    data.Prompt,
		Type:      entity.ExerciseType(data.Type),
		AnswerKey: data.AnswerKey,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromExerciseDomain converts a domain Exercise entity to a GORM ExerciseModel.
func fromExerciseDomain(data *entity.Exercise) *model.ExerciseModel {
	if data == nil {
		return nil
	}

	return &model.ExerciseModel{
		ID:        data.ID,
		LessonID:  data.LessonID,
		Sequence:  data.Sequence,
		Prompt:    data.Prompt,
		Type:      data.Type.String(),
		AnswerKey: data.AnswerKey,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toAssessmentDomain converts a GORM AssessmentModel to a domain Assessment entity.
func toAssessmentDomain(data *model.AssessmentModel) *entity.Assessment {
	if data == nil {
		return nil
	}

	return &entity.Assessment{
		ID:           data.ID,
		CourseID:     data.CourseID,
		Sequence:     data.Sequence,
		Title:        data.Title,
		Description:  data.Description,
		PassingScore: data.PassingScore,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAssessmentDomain converts a domain Assessment entity to a GORM AssessmentModel.
func fromAssessmentDomain(data *entity.Assessment) *model.AssessmentModel {
	if data == nil {
		return nil
	}

	return &model.AssessmentModel{
		ID:           data.ID,
		CourseID:     data.CourseID,
		Sequence:     data.Sequence,
		Title:        data.Title,
		Description:  data.Description,
		PassingScore: data.PassingScore,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toCourseReviewDomain converts a GORM CourseReviewModel to a domain CourseReview entity.
func toCourseReviewDomain(data *model.CourseReviewModel) *entity.CourseReview {
	if data == nil {
		return nil
	}

	return &entity.CourseReview{
		ID:         data.ID,
		CourseID:   data.CourseID,
		ReviewerID: data.ReviewerID,
		Action:     entity.ReviewAction(data.Action),
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}

// fromCourseReviewDomain converts a domain CourseReview entity to a GORM CourseReviewModel.
func fromCourseReviewDomain(data *entity.CourseReview) *model.CourseReviewModel {
	if data == nil {
		return nil
	}

	return &model.CourseReviewModel{
		ID:         data.ID,
		CourseID:   data.CourseID,
		ReviewerID: data.ReviewerID,
		Action:     data.Action.String(),
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}

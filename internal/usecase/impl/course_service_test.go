package impl

import (
	"context"
	"testing"

	"coursebridge/internal/domain/constants"
	"coursebridge/internal/domain/entity"
	domainerrors "coursebridge/internal/domain/errors"
	"coursebridge/internal/domain/repository"
	"coursebridge/internal/domain/service"
	mockRepo "coursebridge/internal/mocks/repository"
	mockSvc "coursebridge/internal/mocks/service"
	"coursebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type courseServiceFixtures struct {
	service        usecase.CourseUsecase
	txManager      *mockRepo.MockTransactionManager
	courseRepo     *mockRepo.MockCourseRepository
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestCourseService(t *testing.T) courseServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	courseRepo := mockRepo.NewMockCourseRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewCourseService(CourseServiceParams{
		TxManager:      txManager,
		CourseRepo:     courseRepo,
		EventPublisher: eventPublisher,
		Logger:         newDiscardLogger(),
	})

	return courseServiceFixtures{
		service:        svc,
		txManager:      txManager,
		courseRepo:     courseRepo,
		eventPublisher: eventPublisher,
	}
}

func newDraftCourse(createdByID uuid.UUID) *entity.Course {
	return &entity.Course{
		ID:          uuid.New(),
		Title:       "Business English for Logistics",
		Level:       entity.CEFRLevelB1,
		Status:      entity.CourseStatusDraft,
		CreatedByID: createdByID,
	}
}

// expectCourseTransition wires the transaction mock for a review transition,
// expecting Update plus a review trail row when the transition is legal.
func expectCourseTransition(t *testing.T, fx courseServiceFixtures, ctx context.Context, course *entity.Course, expectUpdate bool) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCourseRepo := mockRepo.NewMockCourseRepository(t)

			mockFactory.EXPECT().CourseRepo().Return(mockCourseRepo)
			mockCourseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
			if expectUpdate {
				mockCourseRepo.EXPECT().Update(ctx, course).Return(nil)
				mockCourseRepo.EXPECT().
					CreateReview(ctx, mock.AnythingOfType("*entity.CourseReview")).
					Return(nil)
			}

			return fn(mockFactory)
		})
}

func TestCourseService_CreateCourse_Standalone(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	actor := adminActor(uuid.New())

	fx.courseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Course")).
		Run(func(ctx context.Context, course *entity.Course) {
			course.ID = uuid.New()
		}).
		Return(nil)

	course, err := fx.service.CreateCourse(ctx, actor, &usecase.CreateCourseInput{
		Title: "Business English for Logistics",
		Level: "B1",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CourseStatusDraft, course.Status)
	assert.Equal(t, actor.UserID, course.CreatedByID)
	assert.Nil(t, course.CourseRequestID)
}

func TestCourseService_CreateCourse_MissingOriginRequest(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	requestID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRequestRepo := mockRepo.NewMockCourseRequestRepository(t)

			mockFactory.EXPECT().CourseRequestRepo().Return(mockRequestRepo)
			mockRequestRepo.EXPECT().
				FindByID(ctx, requestID).
				Return(nil, repository.ErrCourseRequestNotFound)

			return fn(mockFactory)
		})

	course, err := fx.service.CreateCourse(ctx, adminActor(uuid.New()), &usecase.CreateCourseInput{
		Title:           "Business English for Logistics",
		Level:           "B1",
		CourseRequestID: &requestID,
	})

	require.Error(t, err)
	assert.Nil(t, course)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCourseService_SubmitForReview_FromDraft(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	actor := adminActor(uuid.New())
	course := newDraftCourse(actor.UserID)

	expectCourseTransition(t, fx, ctx, course, true)

	submitted, err := fx.service.SubmitForReview(ctx, actor, course.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CourseStatusPendingReview, submitted.Status)
}

func TestCourseService_SubmitForReview_Resubmission(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	actor := adminActor(uuid.New())
	course := newDraftCourse(actor.UserID)
	course.Status = entity.CourseStatusRejected

	expectCourseTransition(t, fx, ctx, course, true)

	submitted, err := fx.service.SubmitForReview(ctx, actor, course.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CourseStatusPendingReview, submitted.Status)
}

func TestCourseService_ApproveCourse_Success(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	actor := adminActor(uuid.New())
	course := newDraftCourse(uuid.New())
	course.Status = entity.CourseStatusPendingReview

	expectCourseTransition(t, fx, ctx, course, true)

	fx.eventPublisher.EXPECT().
		PublishDomainEvent(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.EventType == constants.EventCourseApproved &&
				event.SubjectID == course.ID.String()
		})).
		Return(nil)

	approved, err := fx.service.ApproveCourse(ctx, actor, course.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CourseStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedByID)
	assert.Equal(t, actor.UserID, *approved.ApprovedByID)
}

func TestCourseService_ApproveCourse_FromDraft(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	actor := adminActor(uuid.New())
	course := newDraftCourse(actor.UserID)

	// Illegal transition: no Update, no review row, no event.
	expectCourseTransition(t, fx, ctx, course, false)

	approved, err := fx.service.ApproveCourse(ctx, actor, course.ID)

	require.Error(t, err)
	assert.Nil(t, approved)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	assert.Equal(t, entity.CourseStatusDraft, course.Status)
	assert.Nil(t, course.ApprovedByID)
}

func TestCourseService_RejectCourse_RequiresComment(t *testing.T) {
	fx := createTestCourseService(t)

	rejected, err := fx.service.RejectCourse(context.Background(), adminActor(uuid.New()), uuid.New(), &usecase.RejectCourseInput{})

	require.Error(t, err)
	assert.Nil(t, rejected)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCourseService_RejectCourse_Success(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	actor := adminActor(uuid.New())
	course := newDraftCourse(uuid.New())
	course.Status = entity.CourseStatusPendingReview

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCourseRepo := mockRepo.NewMockCourseRepository(t)

			mockFactory.EXPECT().CourseRepo().Return(mockCourseRepo)
			mockCourseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
			mockCourseRepo.EXPECT().Update(ctx, course).Return(nil)
			mockCourseRepo.EXPECT().
				CreateReview(ctx, mock.MatchedBy(func(review *entity.CourseReview) bool {
					return review.Action == entity.ReviewActionRejected &&
						review.Comment == "module two has no exercises"
				})).
				Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishDomainEvent(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.EventType == constants.EventCourseRejected
		})).
		Return(nil)

	rejected, err := fx.service.RejectCourse(ctx, actor, course.ID, &usecase.RejectCourseInput{
		Comment: "module two has no exercises",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CourseStatusRejected, rejected.Status)
}

func TestCourseService_CreateModule_CourseFrozen(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	course := newDraftCourse(uuid.New())
	course.Status = entity.CourseStatusApproved

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCourseRepo := mockRepo.NewMockCourseRepository(t)

			mockFactory.EXPECT().CourseRepo().Return(mockCourseRepo)
			mockCourseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)

			return fn(mockFactory)
		})

	module, err := fx.service.CreateModule(ctx, course.ID, &usecase.CreateModuleInput{
		Sequence: 1,
		Title:    "Intake vocabulary",
	})

	require.Error(t, err)
	assert.Nil(t, module)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestCourseService_CreateModule_SequenceConflict(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	course := newDraftCourse(uuid.New())

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCourseRepo := mockRepo.NewMockCourseRepository(t)

			mockFactory.EXPECT().CourseRepo().Return(mockCourseRepo)
			mockCourseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
			mockCourseRepo.EXPECT().
				CreateModule(ctx, mock.AnythingOfType("*entity.Module")).
				Return(repository.ErrDuplicateSequence)

			return fn(mockFactory)
		})

	module, err := fx.service.CreateModule(ctx, course.ID, &usecase.CreateModuleInput{
		Sequence: 1,
		Title:    "Intake vocabulary",
	})

	require.Error(t, err)
	assert.Nil(t, module)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestCourseService_CreateModule_InvalidSequence(t *testing.T) {
	fx := createTestCourseService(t)

	module, err := fx.service.CreateModule(context.Background(), uuid.New(), &usecase.CreateModuleInput{
		Sequence: 0,
		Title:    "Intake vocabulary",
	})

	require.Error(t, err)
	assert.Nil(t, module)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCourseService_CreateAssessment_PassingScoreOutOfRange(t *testing.T) {
	fx := createTestCourseService(t)

	assessment, err := fx.service.CreateAssessment(context.Background(), uuid.New(), &usecase.CreateAssessmentInput{
		Sequence:     1,
		Title:        "Final check",
		PassingScore: 101,
	})

	require.Error(t, err)
	assert.Nil(t, assessment)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCourseService_ListCourses_InvalidStatusFilter(t *testing.T) {
	fx := createTestCourseService(t)

	output, err := fx.service.ListCourses(context.Background(), &usecase.ListCoursesInput{
		Status: "archived",
		Page:   1,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"coursebridge/config"
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

type courseRequestServiceFixtures struct {
	service        usecase.CourseRequestUsecase
	txManager      *mockRepo.MockTransactionManager
	requestRepo    *mockRepo.MockCourseRequestRepository
	fileStore      *mockSvc.MockFileStore
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestCourseRequestService(t *testing.T, maxUploadSize int64) courseRequestServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	requestRepo := mockRepo.NewMockCourseRequestRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewCourseRequestService(CourseRequestServiceParams{
		TxManager:      txManager,
		RequestRepo:    requestRepo,
		FileStore:      fileStore,
		EventPublisher: eventPublisher,
		Config:         &config.Config{Storage: &config.StorageConfig{MaxUploadSize: maxUploadSize}},
		Logger:         newDiscardLogger(),
	})

	return courseRequestServiceFixtures{
		service:        svc,
		txManager:      txManager,
		requestRepo:    requestRepo,
		fileStore:      fileStore,
		eventPublisher: eventPublisher,
	}
}

func newDraftRequest(salesUserID uuid.UUID) *entity.CourseRequest {
	return &entity.CourseRequest{
		ID:            uuid.New(),
		SalesUserID:   salesUserID,
		CompanyName:   "Globex Logistics",
		ContactName:   "Jordan Li",
		ContactEmail:  "jordan.li@globex.example",
		CohortSize:    25,
		CurrentLevel:  entity.CEFRLevelA2,
		TargetLevel:   entity.CEFRLevelB1,
		TrainingGoals: "Warehouse safety briefings in English",
		DeliveryMode:  entity.DeliveryModeOnsite,
		Priority:      entity.RequestPriorityMedium,
		Status:        entity.CourseRequestStatusDraft,
	}
}

// expectRequestTransition wires the transaction mock for a workflow transition
// on the given request, expecting exactly updateCalls persisting updates.
func expectRequestTransition(t *testing.T, fx courseRequestServiceFixtures, ctx context.Context, request *entity.CourseRequest, expectUpdate bool) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRequestRepo := mockRepo.NewMockCourseRequestRepository(t)

			mockFactory.EXPECT().CourseRequestRepo().Return(mockRequestRepo)
			mockRequestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
			if expectUpdate {
				mockRequestRepo.EXPECT().Update(ctx, request).Return(nil)
			}

			return fn(mockFactory)
		})
}

func TestCourseRequestService_CreateRequest_Success(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	actor := salesActor(uuid.New())

	fx.requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CourseRequest")).
		Run(func(ctx context.Context, request *entity.CourseRequest) {
			request.ID = uuid.New()
		}).
		Return(nil)

	request, err := fx.service.CreateRequest(ctx, actor, &usecase.CreateCourseRequestInput{
		CompanyName:   "Globex Logistics",
		ContactName:   "Jordan Li",
		ContactEmail:  "jordan.li@globex.example",
		CohortSize:    1000,
		CurrentLevel:  "A2",
		TargetLevel:   "B1",
		TrainingGoals: "Warehouse safety briefings in English",
		DeliveryMode:  "onsite",
	})

	require.NoError(t, err)
	assert.Equal(t, actor.UserID, request.SalesUserID)
	assert.Equal(t, entity.CourseRequestStatusDraft, request.Status)
	// An omitted priority defaults to medium.
	assert.Equal(t, entity.RequestPriorityMedium, request.Priority)
}

func TestCourseRequestService_CreateRequest_CohortAtLimit(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()

	fx.requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CourseRequest")).
		Return(nil)

	// 1000 learners is the largest accepted cohort.
	request, err := fx.service.CreateRequest(ctx, salesActor(uuid.New()), &usecase.CreateCourseRequestInput{
		CompanyName:  "Globex Logistics",
		CohortSize:   1000,
		CurrentLevel: "A2",
		TargetLevel:  "B1",
		DeliveryMode: "onsite",
	})

	require.NoError(t, err)
	assert.Equal(t, 1000, request.CohortSize)
}

func TestCourseRequestService_CreateRequest_CohortTooLarge(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	request, err := fx.service.CreateRequest(context.Background(), salesActor(uuid.New()), &usecase.CreateCourseRequestInput{
		CompanyName:  "Globex Logistics",
		CohortSize:   1001,
		CurrentLevel: "A2",
		TargetLevel:  "B1",
		DeliveryMode: "onsite",
	})

	require.Error(t, err)
	assert.Nil(t, request)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCourseRequestService_CreateRequest_UnknownLevel(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	request, err := fx.service.CreateRequest(context.Background(), salesActor(uuid.New()), &usecase.CreateCourseRequestInput{
		CompanyName:  "Globex Logistics",
		CohortSize:   10,
		CurrentLevel: "Z9",
		TargetLevel:  "B1",
		DeliveryMode: "onsite",
	})

	require.Error(t, err)
	assert.Nil(t, request)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCourseRequestService_GetRequest_OtherSalesUserForbidden(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	request := newDraftRequest(uuid.New())

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	result, err := fx.service.GetRequest(ctx, salesActor(uuid.New()), request.ID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCourseRequestService_GetRequest_AdminSeesAnyRequest(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	request := newDraftRequest(uuid.New())

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	result, err := fx.service.GetRequest(ctx, adminActor(uuid.New()), request.ID)

	require.NoError(t, err)
	assert.Equal(t, request.ID, result.ID)
}

func TestCourseRequestService_SubmitRequest_Success(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	actor := salesActor(uuid.New())
	request := newDraftRequest(actor.UserID)

	expectRequestTransition(t, fx, ctx, request, true)

	fx.eventPublisher.EXPECT().
		PublishDomainEvent(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.EventType == constants.EventCourseRequestSubmitted &&
				event.SubjectID == request.ID.String()
		})).
		Return(nil)

	submitted, err := fx.service.SubmitRequest(ctx, actor, request.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CourseRequestStatusSubmitted, submitted.Status)
	require.NotNil(t, submitted.SubmittedAt)
}

func TestCourseRequestService_SubmitRequest_FromCompleted(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	actor := salesActor(uuid.New())
	request := newDraftRequest(actor.UserID)
	request.Status = entity.CourseRequestStatusCompleted

	// No Update and no event: the illegal transition aborts the transaction.
	expectRequestTransition(t, fx, ctx, request, false)

	submitted, err := fx.service.SubmitRequest(ctx, actor, request.ID)

	require.Error(t, err)
	assert.Nil(t, submitted)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	assert.Equal(t, entity.CourseRequestStatusCompleted, request.Status)
}

func TestCourseRequestService_CancelRequest_FromSubmitted(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	actor := salesActor(uuid.New())
	request := newDraftRequest(actor.UserID)
	request.Status = entity.CourseRequestStatusSubmitted

	expectRequestTransition(t, fx, ctx, request, true)

	cancelled, err := fx.service.CancelRequest(ctx, actor, request.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CourseRequestStatusCancelled, cancelled.Status)
}

func TestCourseRequestService_StartProcessing_CourseManagerOnAnyRequest(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	// The request belongs to a sales user; a course manager picks it up.
	request := newDraftRequest(uuid.New())
	request.Status = entity.CourseRequestStatusSubmitted

	expectRequestTransition(t, fx, ctx, request, true)

	started, err := fx.service.StartProcessing(ctx, courseManagerActor(uuid.New()), request.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CourseRequestStatusInProgress, started.Status)
}

func TestCourseRequestService_StartProcessing_OtherSalesUserForbidden(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	request := newDraftRequest(uuid.New())
	request.Status = entity.CourseRequestStatusSubmitted

	expectRequestTransition(t, fx, ctx, request, false)

	started, err := fx.service.StartProcessing(ctx, salesActor(uuid.New()), request.ID)

	require.Error(t, err)
	assert.Nil(t, started)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Equal(t, entity.CourseRequestStatusSubmitted, request.Status)
}

func TestCourseRequestService_CompleteRequest_CourseManagerLinksCourse(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	request := newDraftRequest(uuid.New())
	request.ID = uuid.New()
	request.Status = entity.CourseRequestStatusInProgress
	courseID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRequestRepo := mockRepo.NewMockCourseRequestRepository(t)
			mockCourseRepo := mockRepo.NewMockCourseRepository(t)

			mockFactory.EXPECT().CourseRequestRepo().Return(mockRequestRepo)
			mockFactory.EXPECT().CourseRepo().Return(mockCourseRepo)
			mockRequestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
			mockCourseRepo.EXPECT().FindByID(ctx, courseID).Return(&entity.Course{ID: courseID}, nil)
			mockRequestRepo.EXPECT().Update(ctx, request).Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishDomainEvent(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.EventType == constants.EventCourseRequestCompleted &&
				event.SubjectID == request.ID.String()
		})).
		Return(nil)

	completed, err := fx.service.CompleteRequest(ctx, courseManagerActor(uuid.New()), request.ID, &usecase.CompleteRequestInput{
		CourseID: courseID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CourseRequestStatusCompleted, completed.Status)
	require.NotNil(t, completed.CourseID)
	assert.Equal(t, courseID, *completed.CourseID)
}

func TestCourseRequestService_UpdateRequest_AfterSubmission(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	actor := salesActor(uuid.New())
	request := newDraftRequest(actor.UserID)
	request.Status = entity.CourseRequestStatusSubmitted

	expectRequestTransition(t, fx, ctx, request, false)

	newName := "Initech"
	updated, err := fx.service.UpdateRequest(ctx, actor, request.ID, &usecase.UpdateCourseRequestInput{
		CompanyName: &newName,
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	assert.Equal(t, "Globex Logistics", request.CompanyName)
}

func TestCourseRequestService_AttachDocument_Success(t *testing.T) {
	fx := createTestCourseRequestService(t, 1024)

	ctx := context.Background()
	actor := salesActor(uuid.New())
	request := newDraftRequest(actor.UserID)
	content := "standard operating procedure"

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	fx.fileStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Run(func(ctx context.Context, key, contentType string, reader io.Reader) {
			_, _ = io.Copy(io.Discard, reader)
		}).
		Return(nil)

	fx.requestRepo.EXPECT().
		CreateDocument(ctx, mock.AnythingOfType("*entity.SOPDocument")).
		Return(nil)

	document, err := fx.service.AttachDocument(ctx, actor, request.ID, &usecase.AttachDocumentInput{
		FileName:    "sop.pdf",
		ContentType: "application/pdf",
		SizeBytes:   int64(len(content)),
		Content:     strings.NewReader(content),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusPending, document.Status)
	assert.Equal(t, int64(len(content)), document.SizeBytes)
	assert.NotEmpty(t, document.Checksum)
	assert.Contains(t, document.StorageKey, request.ID.String())
}

func TestCourseRequestService_AttachDocument_TooLarge(t *testing.T) {
	fx := createTestCourseRequestService(t, 16)

	ctx := context.Background()
	actor := salesActor(uuid.New())
	request := newDraftRequest(actor.UserID)

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	document, err := fx.service.AttachDocument(ctx, actor, request.ID, &usecase.AttachDocumentInput{
		FileName:    "sop.pdf",
		ContentType: "application/pdf",
		SizeBytes:   1 << 20,
		Content:     strings.NewReader("way past the limit"),
	})

	require.Error(t, err)
	assert.Nil(t, document)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCourseRequestService_AttachDocument_ClosedRequest(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	actor := salesActor(uuid.New())
	request := newDraftRequest(actor.UserID)
	request.Status = entity.CourseRequestStatusCancelled

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	document, err := fx.service.AttachDocument(ctx, actor, request.ID, &usecase.AttachDocumentInput{
		FileName:    "sop.pdf",
		ContentType: "application/pdf",
		SizeBytes:   4,
		Content:     strings.NewReader("late"),
	})

	require.Error(t, err)
	assert.Nil(t, document)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestCourseRequestService_MarkDocumentProcessed_Success(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	requestID := uuid.New()
	document := &entity.SOPDocument{
		ID:              uuid.New(),
		CourseRequestID: requestID,
		FileName:        "sop.pdf",
		Status:          entity.DocumentStatusPending,
	}

	fx.requestRepo.EXPECT().FindDocumentByID(ctx, document.ID).Return(document, nil)
	fx.requestRepo.EXPECT().UpdateDocument(ctx, document).Return(nil)

	updated, err := fx.service.MarkDocumentProcessed(ctx, requestID, document.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusProcessed, updated.Status)
	require.NotNil(t, updated.ProcessedAt)
}

func TestCourseRequestService_MarkDocumentProcessed_WrongRequest(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	document := &entity.SOPDocument{
		ID:              uuid.New(),
		CourseRequestID: uuid.New(),
		Status:          entity.DocumentStatusPending,
	}

	fx.requestRepo.EXPECT().FindDocumentByID(ctx, document.ID).Return(document, nil)

	updated, err := fx.service.MarkDocumentProcessed(ctx, uuid.New(), document.ID)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
}

func TestCourseRequestService_MarkDocumentError_RecordsDetail(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	requestID := uuid.New()
	document := &entity.SOPDocument{
		ID:              uuid.New(),
		CourseRequestID: requestID,
		Status:          entity.DocumentStatusPending,
	}

	fx.requestRepo.EXPECT().FindDocumentByID(ctx, document.ID).Return(document, nil)
	fx.requestRepo.EXPECT().UpdateDocument(ctx, document).Return(nil)

	updated, err := fx.service.MarkDocumentError(ctx, requestID, document.ID, "unreadable scan")

	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusError, updated.Status)
	assert.Equal(t, "unreadable scan", updated.ErrorDetail)
}

func TestCourseRequestService_AddFeedback_RatingOutOfRange(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	actor := salesActor(uuid.New())
	request := newDraftRequest(actor.UserID)

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	feedback, err := fx.service.AddFeedback(ctx, actor, request.ID, &usecase.AddFeedbackInput{
		AuthorName: "Jordan Li",
		Rating:     6,
		Comment:    "off the scale",
	})

	require.Error(t, err)
	assert.Nil(t, feedback)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCourseRequestService_AddFeedback_Success(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	actor := salesActor(uuid.New())
	request := newDraftRequest(actor.UserID)

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.requestRepo.EXPECT().
		CreateFeedback(ctx, mock.AnythingOfType("*entity.ClientFeedback")).
		Return(nil)

	feedback, err := fx.service.AddFeedback(ctx, actor, request.ID, &usecase.AddFeedbackInput{
		AuthorName: "Jordan Li",
		Rating:     5,
		Comment:    "trainers were excellent",
	})

	require.NoError(t, err)
	assert.Equal(t, request.ID, feedback.CourseRequestID)
	assert.Equal(t, 5, feedback.Rating)
}

func TestCourseRequestService_ListRequests_ScopesNonAdminToOwnRows(t *testing.T) {
	fx := createTestCourseRequestService(t, 0)

	ctx := context.Background()
	actor := salesActor(uuid.New())

	fx.requestRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.CourseRequestListFilter) bool {
			return filter.SalesUserID != nil && *filter.SalesUserID == actor.UserID
		})).
		Return([]*entity.CourseRequest{}, int64(0), nil)

	output, err := fx.service.ListRequests(ctx, actor, &usecase.ListCourseRequestsInput{Page: 1, PerPage: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(0), output.Total)
}

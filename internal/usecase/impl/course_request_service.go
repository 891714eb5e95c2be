// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"coursebridge/config"
	deliverycontext "coursebridge/internal/delivery/context"
	"coursebridge/internal/domain/constants"
	"coursebridge/internal/domain/entity"
	domainerrors "coursebridge/internal/domain/errors"
	"coursebridge/internal/domain/repository"
	"coursebridge/internal/domain/service"
	"coursebridge/internal/usecase"
	"coursebridge/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxCohortSize caps how many learners a single course request may cover.
const maxCohortSize = 1000

// courseRequestService implements the CourseRequestUsecase interface.
type courseRequestService struct {
	txManager      repository.TransactionManager
	requestRepo    repository.CourseRequestRepository
	fileStore      service.FileStore
	eventPublisher service.EventPublisher
	maxUploadSize  int64
	logger         *slog.Logger
}

// CourseRequestServiceParams holds dependencies for CourseRequestService, injected by Fx.
type CourseRequestServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RequestRepo    repository.CourseRequestRepository
	FileStore      service.FileStore
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCourseRequestService is the constructor for courseRequestService.
func NewCourseRequestService(params CourseRequestServiceParams) usecase.CourseRequestUsecase {
	var maxUploadSize int64
	if params.Config != nil && params.Config.Storage != nil {
		maxUploadSize = params.Config.Storage.MaxUploadSize
	}

	return &courseRequestService{
		txManager:      params.TxManager,
		requestRepo:    params.RequestRepo,
		fileStore:      params.FileStore,
		eventPublisher: params.EventPublisher,
		maxUploadSize:  maxUploadSize,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *courseRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// authorizeRequestAccess enforces ownership scoping: sales users only ever
// touch their own requests, admins touch everything.
func (srv *courseRequestService) authorizeRequestAccess(actor usecase.Actor, request *entity.CourseRequest) error {
	if actor.IsAdmin() || request.SalesUserID == actor.UserID {
		return nil
	}

	return errors.Wrap(domainerrors.ErrForbidden, "course request belongs to another sales user")
}

// authorizeRequestProcessing admits course managers to the production
// transitions regardless of who owns the request; everyone else falls
// back to ownership scoping.
func (srv *courseRequestService) authorizeRequestProcessing(actor usecase.Actor, request *entity.CourseRequest) error {
	if actor.HasRole(entity.RoleCourseManager) {
		return nil
	}

	return srv.authorizeRequestAccess(actor, request)
}

// CreateRequest opens a new draft course request owned by the actor.
func (srv *courseRequestService) CreateRequest(ctx context.Context, actor usecase.Actor, input *usecase.CreateCourseRequestInput) (*entity.CourseRequest, error) {
	srv.log(ctx).Info("Creating course request", slog.Any("salesUserID", actor.UserID), slog.String("company", input.CompanyName))

	if err := validateCohortSize(input.CohortSize); err != nil {
		return nil, err
	}

	currentLevel, err := parseCEFRLevel(input.CurrentLevel)
	if err != nil {
		return nil, err
	}

	targetLevel, err := parseCEFRLevel(input.TargetLevel)
	if err != nil {
		return nil, err
	}

	deliveryMode, err := parseDeliveryMode(input.DeliveryMode)
	if err != nil {
		return nil, err
	}

	priority, err := parsePriority(input.Priority)
	if err != nil {
		return nil, err
	}

	request := &entity.CourseRequest{
		SalesUserID:   actor.UserID,
		CompanyName:   input.CompanyName,
		ContactName:   input.ContactName,
		ContactEmail:  input.ContactEmail,
		ContactPhone:  input.ContactPhone,
		Industry:      input.Industry,
		CohortSize:    input.CohortSize,
		CurrentLevel:  currentLevel,
		TargetLevel:   targetLevel,
		TrainingGoals: input.TrainingGoals,
		DeliveryMode:  deliveryMode,
		Priority:      priority,
		Status:        entity.CourseRequestStatusDraft,
	}

	// Single operation - use direct repository instance
	if err := srv.requestRepo.Create(ctx, request); err != nil {
		srv.log(ctx).Error("Failed to create course request", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create course request")
	}
	srv.log(ctx).Debug("Course request created", slog.Any("requestID", request.ID))

	return request, nil
}

// GetRequest returns a single request with documents and feedback preloaded.
func (srv *courseRequestService) GetRequest(ctx context.Context, actor usecase.Actor, requestID uuid.UUID) (*entity.CourseRequest, error) {
	srv.log(ctx).Debug("Getting course request", slog.Any("requestID", requestID))

	request, err := srv.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizeRequestAccess(actor, request); err != nil {
		return nil, err
	}

	return request, nil
}

// loadRequest fetches a request through the direct repository instance and
// maps the persistence sentinel onto the domain error.
func (srv *courseRequestService) loadRequest(ctx context.Context, requestID uuid.UUID) (*entity.CourseRequest, error) {
	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCourseRequestNotFound, "course request lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find course request")
	}

	return request, nil
}

// ListRequests returns one page of requests. Non-admin actors are scoped to
// their own rows regardless of the filter.
func (srv *courseRequestService) ListRequests(ctx context.Context, actor usecase.Actor, input *usecase.ListCourseRequestsInput) (*usecase.CourseRequestListOutput, error) {
	srv.log(ctx).Debug("Listing course requests", slog.String("status", input.Status))

	filter := repository.CourseRequestListFilter{
		Page:    input.Page,
		PerPage: input.PerPage,
	}

	if !actor.IsAdmin() {
		salesUserID := actor.UserID
		filter.SalesUserID = &salesUserID
	}

	if input.Status != "" {
		status := entity.CourseRequestStatus(input.Status)
		if !status.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown status filter %q", input.Status)
		}
		filter.Status = &status
	}

	requests, total, err := srv.requestRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list course requests", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list course requests")
	}

	return &usecase.CourseRequestListOutput{
		Requests: requests,
		Total:    total,
		Page:     filter.Page,
		PerPage:  filter.PerPage,
	}, nil
}

// UpdateRequest applies allow-listed field changes. Only drafts are mutable.
func (srv *courseRequestService) UpdateRequest(ctx context.Context, actor usecase.Actor, requestID uuid.UUID, input *usecase.UpdateCourseRequestInput) (*entity.CourseRequest, error) {
	srv.log(ctx).Info("Updating course request", slog.Any("requestID", requestID))

	var updatedRequest *entity.CourseRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.CourseRequestRepo()

		request, err := requestRepo.FindByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrCourseRequestNotFound) {
				return errors.Wrap(domainerrors.ErrCourseRequestNotFound, "course request lookup failed")
			}

			return errors.Wrap(err, "failed to find course request")
		}

		if err := srv.authorizeRequestAccess(actor, request); err != nil {
			return err
		}

		if !request.CanModify() {
			return errors.Wrap(domainerrors.ErrInvalidStatusTransition, "course request is read-only after submission")
		}

		if err := applyRequestUpdate(request, input); err != nil {
			return err
		}

		if err := requestRepo.Update(ctx, request); err != nil {
			return errors.Wrap(err, "failed to update course request")
		}

		updatedRequest = request

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute course request update transaction", slog.Any("error", err), slog.Any("requestID", requestID))

		return nil, errors.Wrap(err, "failed to execute course request update transaction")
	}

	return updatedRequest, nil
}

func applyRequestUpdate(request *entity.CourseRequest, input *usecase.UpdateCourseRequestInput) error {
	if input.CompanyName != nil {
		request.CompanyName = *input.CompanyName
	}
	if input.ContactName != nil {
		request.ContactName = *input.ContactName
	}
	if input.ContactEmail != nil {
		request.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		request.ContactPhone = *input.ContactPhone
	}
	if input.Industry != nil {
		request.Industry = *input.Industry
	}
	if input.TrainingGoals != nil {
		request.TrainingGoals = *input.TrainingGoals
	}

	if input.CohortSize != nil {
		if err := validateCohortSize(*input.CohortSize); err != nil {
			return err
		}
		request.CohortSize = *input.CohortSize
	}

	if input.CurrentLevel != nil {
		level, err := parseCEFRLevel(*input.CurrentLevel)
		if err != nil {
			return err
		}
		request.CurrentLevel = level
	}

	if input.TargetLevel != nil {
		level, err := parseCEFRLevel(*input.TargetLevel)
		if err != nil {
			return err
		}
		request.TargetLevel = level
	}

	if input.DeliveryMode != nil {
		mode, err := parseDeliveryMode(*input.DeliveryMode)
		if err != nil {
			return err
		}
		request.DeliveryMode = mode
	}

	if input.Priority != nil {
		priority, err := parsePriority(*input.Priority)
		if err != nil {
			return err
		}
		request.Priority = priority
	}

	return nil
}

// DeleteRequest removes a draft request together with its documents and
// feedback. Attached blobs are removed after the transaction commits.
func (srv *courseRequestService) DeleteRequest(ctx context.Context, actor usecase.Actor, requestID uuid.UUID) error {
	srv.log(ctx).Info("Deleting course request", slog.Any("requestID", requestID))

	var storageKeys []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.CourseRequestRepo()

		request, err := requestRepo.FindByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrCourseRequestNotFound) {
				return errors.Wrap(domainerrors.ErrCourseRequestNotFound, "course request lookup failed")
			}

			return errors.Wrap(err, "failed to find course request")
		}

		if err := srv.authorizeRequestAccess(actor, request); err != nil {
			return err
		}

		if !request.CanModify() {
			return errors.Wrap(domainerrors.ErrInvalidStatusTransition, "only draft course requests can be deleted")
		}

		for _, document := range request.Documents {
			storageKeys = append(storageKeys, document.StorageKey)
		}

		if err := requestRepo.Delete(ctx, requestID); err != nil {
			return errors.Wrap(err, "failed to delete course request")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute course request delete transaction", slog.Any("error", err), slog.Any("requestID", requestID))

		return errors.Wrap(err, "failed to execute course request delete transaction")
	}

	// Blob cleanup happens after the commit. A failed delete only leaves an
	// orphan object behind, never a dangling database row.
	for _, key := range storageKeys {
		if err := srv.fileStore.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("Failed to delete document blob", slog.String("storageKey", key), slog.Any("error", err))
		}
	}
	srv.log(ctx).Info("Course request deleted", slog.Any("requestID", requestID))

	return nil
}

// SubmitRequest moves a draft into submitted and publishes the intake event.
func (srv *courseRequestService) SubmitRequest(ctx context.Context, actor usecase.Actor, requestID uuid.UUID) (*entity.CourseRequest, error) {
	srv.log(ctx).Info("Submitting course request", slog.Any("requestID", requestID))

	request, err := srv.transitionRequest(ctx, actor, requestID, srv.authorizeRequestAccess, func(request *entity.CourseRequest) error {
		return request.Submit(time.Now())
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, constants.EventCourseRequestSubmitted, request.ID, actor.UserID, map[string]string{
		"company_name": request.CompanyName,
		"priority":     request.Priority.String(),
	})

	return request, nil
}

// StartProcessing moves a submitted request into in_progress.
func (srv *courseRequestService) StartProcessing(ctx context.Context, actor usecase.Actor, requestID uuid.UUID) (*entity.CourseRequest, error) {
	srv.log(ctx).Info("Starting course request processing", slog.Any("requestID", requestID))

	return srv.transitionRequest(ctx, actor, requestID, srv.authorizeRequestProcessing, func(request *entity.CourseRequest) error {
		return request.StartProcessing()
	})
}

// CompleteRequest finishes an in_progress request, linking the produced course.
func (srv *courseRequestService) CompleteRequest(ctx context.Context, actor usecase.Actor, requestID uuid.UUID, input *usecase.CompleteRequestInput) (*entity.CourseRequest, error) {
	srv.log(ctx).Info("Completing course request", slog.Any("requestID", requestID), slog.Any("courseID", input.CourseID))

	var completedRequest *entity.CourseRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.CourseRequestRepo()
		courseRepo := repoFactory.CourseRepo()

		request, err := requestRepo.FindByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrCourseRequestNotFound) {
				return errors.Wrap(domainerrors.ErrCourseRequestNotFound, "course request lookup failed")
			}

			return errors.Wrap(err, "failed to find course request")
		}

		if err := srv.authorizeRequestProcessing(actor, request); err != nil {
			return err
		}

		// The linked course must exist before the request can complete.
		if _, err := courseRepo.FindByID(ctx, input.CourseID); err != nil {
			if errors.Is(err, repository.ErrCourseNotFound) {
				return errors.Wrap(domainerrors.ErrValidationFailed, "linked course does not exist")
			}

			return errors.Wrap(err, "failed to find linked course")
		}

		if err := request.Complete(input.CourseID); err != nil {
			return err
		}

		if err := requestRepo.Update(ctx, request); err != nil {
			return errors.Wrap(err, "failed to update course request")
		}

		completedRequest = request

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute course request completion transaction", slog.Any("error", err), slog.Any("requestID", requestID))

		return nil, errors.Wrap(err, "failed to execute course request completion transaction")
	}

	srv.publishEvent(ctx, constants.EventCourseRequestCompleted, completedRequest.ID, actor.UserID, map[string]string{
		"course_id": input.CourseID.String(),
	})

	return completedRequest, nil
}

// CancelRequest aborts the request from any non-terminal state.
func (srv *courseRequestService) CancelRequest(ctx context.Context, actor usecase.Actor, requestID uuid.UUID) (*entity.CourseRequest, error) {
	srv.log(ctx).Info("Cancelling course request", slog.Any("requestID", requestID))

	return srv.transitionRequest(ctx, actor, requestID, srv.authorizeRequestAccess, func(request *entity.CourseRequest) error {
		return request.Cancel()
	})
}

// transitionRequest runs a workflow transition inside a transaction: load,
// authorize, apply the transition, persist. The entity method rejects illegal
// transitions and the row stays unchanged.
func (srv *courseRequestService) transitionRequest(ctx context.Context, actor usecase.Actor, requestID uuid.UUID, authorize func(usecase.Actor, *entity.CourseRequest) error, transition func(*entity.CourseRequest) error) (*entity.CourseRequest, error) {
	var transitionedRequest *entity.CourseRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.CourseRequestRepo()

		request, err := requestRepo.FindByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrCourseRequestNotFound) {
				return errors.Wrap(domainerrors.ErrCourseRequestNotFound, "course request lookup failed")
			}

			return errors.Wrap(err, "failed to find course request")
		}

		if err := authorize(actor, request); err != nil {
			return err
		}

		if err := transition(request); err != nil {
			return err
		}

		if err := requestRepo.Update(ctx, request); err != nil {
			return errors.Wrap(err, "failed to update course request")
		}

		transitionedRequest = request

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute course request transition", slog.Any("error", err), slog.Any("requestID", requestID))

		return nil, errors.Wrap(err, "failed to execute course request transition")
	}

	return transitionedRequest, nil
}

// AttachDocument streams an uploaded SOP document to the blob store and
// records its metadata row in pending state.
func (srv *courseRequestService) AttachDocument(ctx context.Context, actor usecase.Actor, requestID uuid.UUID, input *usecase.AttachDocumentInput) (*entity.SOPDocument, error) {
	srv.log(ctx).Info("Attaching document",
		slog.Any("requestID", requestID),
		slog.String("fileName", input.FileName),
		slog.String("size", util.FormatBytes(input.SizeBytes)),
	)

	request, err := srv.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizeRequestAccess(actor, request); err != nil {
		return nil, err
	}

	if request.Status.IsTerminal() {
		return nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition, "documents cannot be attached to a closed course request")
	}

	if srv.maxUploadSize > 0 && input.SizeBytes > srv.maxUploadSize {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed,
			"document exceeds the maximum upload size of %s", util.FormatBytes(srv.maxUploadSize))
	}

	documentID := uuid.New()
	storageKey := buildDocumentStorageKey(requestID, documentID, input.FileName)

	// Stream to the blob store while fingerprinting the content. The reader
	// is capped so a misreported Content-Length cannot blow past the limit.
	content := input.Content
	if srv.maxUploadSize > 0 {
		content = io.LimitReader(content, srv.maxUploadSize+1)
	}
	hashingReader := util.NewHashingReader(content)

	if err := srv.fileStore.Save(ctx, storageKey, input.ContentType, hashingReader); err != nil {
		srv.log(ctx).Error("Failed to store document blob", slog.Any("error", err), slog.String("storageKey", storageKey))

		return nil, errors.Wrap(domainerrors.ErrFileStoreFailed, "failed to store document")
	}

	if srv.maxUploadSize > 0 && hashingReader.BytesRead() > srv.maxUploadSize {
		srv.deleteBlobQuietly(ctx, storageKey)

		return nil, errors.Wrapf(domainerrors.ErrValidationFailed,
			"document exceeds the maximum upload size of %s", util.FormatBytes(srv.maxUploadSize))
	}

	document := &entity.SOPDocument{
		ID:              documentID,
		CourseRequestID: requestID,
		FileName:        input.FileName,
		ContentType:     input.ContentType,
		SizeBytes:       hashingReader.BytesRead(),
		Checksum:        hashingReader.Checksum(),
		StorageKey:      storageKey,
		Status:          entity.DocumentStatusPending,
	}

	if err := srv.requestRepo.CreateDocument(ctx, document); err != nil {
		srv.deleteBlobQuietly(ctx, storageKey)

		if errors.Is(err, repository.ErrCourseRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCourseRequestNotFound, "course request vanished during upload")
		}
		srv.log(ctx).Error("Failed to create document row", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create document")
	}
	srv.log(ctx).Debug("Document attached", slog.Any("documentID", document.ID), slog.String("checksum", document.Checksum))

	return document, nil
}

func buildDocumentStorageKey(requestID, documentID uuid.UUID, fileName string) string {
	return fmt.Sprintf("course-requests/%s/documents/%s/%s", requestID, documentID, fileName)
}

func (srv *courseRequestService) deleteBlobQuietly(ctx context.Context, storageKey string) {
	if err := srv.fileStore.Delete(ctx, storageKey); err != nil {
		srv.log(ctx).Warn("Failed to delete document blob", slog.String("storageKey", storageKey), slog.Any("error", err))
	}
}

// ListDocuments returns the documents of a request, newest first.
func (srv *courseRequestService) ListDocuments(ctx context.Context, actor usecase.Actor, requestID uuid.UUID) ([]*entity.SOPDocument, error) {
	srv.log(ctx).Debug("Listing documents", slog.Any("requestID", requestID))

	request, err := srv.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizeRequestAccess(actor, request); err != nil {
		return nil, err
	}

	documents, err := srv.requestRepo.ListDocumentsByRequestID(ctx, requestID)
	if err != nil {
		srv.log(ctx).Error("Failed to list documents", slog.Any("error", err), slog.Any("requestID", requestID))

		return nil, errors.Wrap(err, "failed to list documents")
	}

	return documents, nil
}

// OpenDocument streams a stored document for download. The caller must close
// the returned content reader.
func (srv *courseRequestService) OpenDocument(ctx context.Context, actor usecase.Actor, requestID, documentID uuid.UUID) (*usecase.DocumentDownloadOutput, error) {
	srv.log(ctx).Debug("Opening document", slog.Any("requestID", requestID), slog.Any("documentID", documentID))

	document, err := srv.loadOwnedDocument(ctx, actor, requestID, documentID)
	if err != nil {
		return nil, err
	}

	content, err := srv.fileStore.Open(ctx, document.StorageKey)
	if err != nil {
		srv.log(ctx).Error("Failed to open document blob", slog.Any("error", err), slog.String("storageKey", document.StorageKey))

		return nil, errors.Wrap(domainerrors.ErrFileStoreFailed, "failed to open document")
	}

	return &usecase.DocumentDownloadOutput{
		Document: document,
		Content:  content,
	}, nil
}

// loadOwnedDocument loads a document after checking that the actor may access
// the owning request and that the document actually belongs to it.
func (srv *courseRequestService) loadOwnedDocument(ctx context.Context, actor usecase.Actor, requestID, documentID uuid.UUID) (*entity.SOPDocument, error) {
	request, err := srv.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizeRequestAccess(actor, request); err != nil {
		return nil, err
	}

	document, err := srv.loadDocument(ctx, requestID, documentID)
	if err != nil {
		return nil, err
	}

	return document, nil
}

// loadDocument fetches a document and verifies it belongs to the request.
func (srv *courseRequestService) loadDocument(ctx context.Context, requestID, documentID uuid.UUID) (*entity.SOPDocument, error) {
	document, err := srv.requestRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrSOPDocumentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDocumentNotFound, "document lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find document")
	}

	if document.CourseRequestID != requestID {
		return nil, errors.Wrap(domainerrors.ErrDocumentNotFound, "document belongs to another course request")
	}

	return document, nil
}

// DeleteDocument removes the metadata row, then the stored blob.
func (srv *courseRequestService) DeleteDocument(ctx context.Context, actor usecase.Actor, requestID, documentID uuid.UUID) error {
	srv.log(ctx).Info("Deleting document", slog.Any("requestID", requestID), slog.Any("documentID", documentID))

	document, err := srv.loadOwnedDocument(ctx, actor, requestID, documentID)
	if err != nil {
		return err
	}

	if err := srv.requestRepo.DeleteDocument(ctx, documentID); err != nil {
		if errors.Is(err, repository.ErrSOPDocumentNotFound) {
			return errors.Wrap(domainerrors.ErrDocumentNotFound, "document already removed")
		}
		srv.log(ctx).Error("Failed to delete document row", slog.Any("error", err), slog.Any("documentID", documentID))

		return errors.Wrap(err, "failed to delete document")
	}

	srv.deleteBlobQuietly(ctx, document.StorageKey)

	return nil
}

// MarkDocumentProcessed records a successful processing run. Called by the
// document pipeline, not exposed over HTTP.
func (srv *courseRequestService) MarkDocumentProcessed(ctx context.Context, requestID, documentID uuid.UUID) (*entity.SOPDocument, error) {
	srv.log(ctx).Info("Marking document processed", slog.Any("documentID", documentID))

	return srv.updateDocumentStatus(ctx, requestID, documentID, func(document *entity.SOPDocument) error {
		return document.MarkProcessed(time.Now())
	})
}

// MarkDocumentError records a failed processing run with its cause.
func (srv *courseRequestService) MarkDocumentError(ctx context.Context, requestID, documentID uuid.UUID, detail string) (*entity.SOPDocument, error) {
	srv.log(ctx).Info("Marking document errored", slog.Any("documentID", documentID), slog.String("detail", detail))

	return srv.updateDocumentStatus(ctx, requestID, documentID, func(document *entity.SOPDocument) error {
		return document.MarkError(detail, time.Now())
	})
}

func (srv *courseRequestService) updateDocumentStatus(ctx context.Context, requestID, documentID uuid.UUID, apply func(*entity.SOPDocument) error) (*entity.SOPDocument, error) {
	document, err := srv.loadDocument(ctx, requestID, documentID)
	if err != nil {
		return nil, err
	}

	if err := apply(document); err != nil {
		return nil, err
	}

	if err := srv.requestRepo.UpdateDocument(ctx, document); err != nil {
		srv.log(ctx).Error("Failed to update document status", slog.Any("error", err), slog.Any("documentID", documentID))

		return nil, errors.Wrap(err, "failed to update document status")
	}

	return document, nil
}

// AddFeedback records a client feedback entry on the request.
func (srv *courseRequestService) AddFeedback(ctx context.Context, actor usecase.Actor, requestID uuid.UUID, input *usecase.AddFeedbackInput) (*entity.ClientFeedback, error) {
	srv.log(ctx).Info("Adding client feedback", slog.Any("requestID", requestID), slog.Int("rating", input.Rating))

	request, err := srv.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizeRequestAccess(actor, request); err != nil {
		return nil, err
	}

	feedback := &entity.ClientFeedback{
		CourseRequestID: requestID,
		AuthorName:      input.AuthorName,
		Rating:          input.Rating,
		Comment:         input.Comment,
	}

	if !feedback.RatingInRange() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed,
			"rating must be between %d and %d", entity.FeedbackRatingMin, entity.FeedbackRatingMax)
	}

	if err := srv.requestRepo.CreateFeedback(ctx, feedback); err != nil {
		if errors.Is(err, repository.ErrCourseRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCourseRequestNotFound, "course request vanished during feedback")
		}
		srv.log(ctx).Error("Failed to create feedback", slog.Any("error", err), slog.Any("requestID", requestID))

		return nil, errors.Wrap(err, "failed to create feedback")
	}

	return feedback, nil
}

// ListFeedback returns the feedback entries of a request, newest first.
func (srv *courseRequestService) ListFeedback(ctx context.Context, actor usecase.Actor, requestID uuid.UUID) ([]*entity.ClientFeedback, error) {
	srv.log(ctx).Debug("Listing client feedback", slog.Any("requestID", requestID))

	request, err := srv.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizeRequestAccess(actor, request); err != nil {
		return nil, err
	}

	feedback, err := srv.requestRepo.ListFeedbackByRequestID(ctx, requestID)
	if err != nil {
		srv.log(ctx).Error("Failed to list feedback", slog.Any("error", err), slog.Any("requestID", requestID))

		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return feedback, nil
}

// publishEvent publishes a workflow event. Events are best-effort and fire
// after the owning transaction has committed; failures are logged only.
func (srv *courseRequestService) publishEvent(ctx context.Context, eventType string, subjectID, actorID uuid.UUID, attributes map[string]string) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		SubjectID:  subjectID.String(),
		ActorID:    actorID.String(),
		OccurredAt: time.Now(),
		Attributes: attributes,
	}

	if err := srv.eventPublisher.PublishDomainEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish domain event", slog.String("eventType", eventType), slog.Any("error", err))
	}
}

// --- shared field validators ---

func validateCohortSize(size int) error {
	if size < 1 || size > maxCohortSize {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "cohort size must be between 1 and %d", maxCohortSize)
	}

	return nil
}

func parseCEFRLevel(raw string) (entity.CEFRLevel, error) {
	level := entity.CEFRLevel(raw)
	if !level.IsValid() {
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "unknown CEFR level %q", raw)
	}

	return level, nil
}

func parseDeliveryMode(raw string) (entity.DeliveryMode, error) {
	mode := entity.DeliveryMode(raw)
	if !mode.IsValid() {
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "unknown delivery mode %q", raw)
	}

	return mode, nil
}

// parsePriority defaults an empty priority to medium.
func parsePriority(raw string) (entity.RequestPriority, error) {
	if raw == "" {
		return entity.RequestPriorityMedium, nil
	}

	priority := entity.RequestPriority(raw)
	if !priority.IsValid() {
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "unknown priority %q", raw)
	}

	return priority, nil
}

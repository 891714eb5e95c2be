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

// courseRequestRepository implements the repository.CourseRequestRepository interface.
type courseRequestRepository struct {
	db *gorm.DB
}

// NewCourseRequestRepository is the constructor for courseRequestRepository.
func NewCourseRequestRepository(db *gorm.DB) repository.CourseRequestRepository {
	return &courseRequestRepository{
		db: db,
	}
}

// Create persists a new course request.
func (repo *courseRequestRepository) Create(ctx context.Context, request *entity.CourseRequest) error {
	requestM := fromCourseRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid sales user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required request information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create course request")
	}

	// Update the entity with generated values
	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByID retrieves a course request with its documents and feedback preloaded, newest first.
func (repo *courseRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CourseRequest, error) {
	var requestM model.CourseRequestModel

	if err := repo.db.WithContext(ctx).
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Feedback", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find course request by id")
	}

	return toCourseRequestDomain(&requestM), nil
}

// List retrieves course requests matching the filter and the total match count.
func (repo *courseRequestRepository) List(ctx context.Context, filter repository.CourseRequestListFilter) ([]*entity.CourseRequest, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CourseRequestModel{})

	if filter.SalesUserID != nil {
		query = query.Where("sales_user_id = ?", *filter.SalesUserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count course requests")
	}

	var requestModels []*model.CourseRequestModel
	if err := query.
		Order("created_at DESC").
		Offset(pageOffset(filter.Page, filter.PerPage)).
		Limit(filter.PerPage).
		Find(&requestModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list course requests")
	}

	requests := make([]*entity.CourseRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toCourseRequestDomain(requestM))
	}

	return requests, total, nil
}

// Update modifies the mutable columns of an existing course request.
func (repo *courseRequestRepository) Update(ctx context.Context, request *entity.CourseRequest) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CourseRequestModel{}).
		Where("id = ?", request.ID).
		Updates(map[string]any{
			"company_name":   request.CompanyName,
			"contact_name":   request.ContactName,
			"contact_email":  request.ContactEmail,
			"contact_phone":  request.ContactPhone,
			"industry":       request.Industry,
			"cohort_size":    request.CohortSize,
			"current_level":  request.CurrentLevel.String(),
			"target_level":   request.TargetLevel.String(),
			"training_goals": request.TrainingGoals,
			"delivery_mode":  request.DeliveryMode.String(),
			"priority":       request.Priority.String(),
			"status":         request.Status.String(),
			"submitted_at":   request.SubmittedAt,
			"course_id":      request.CourseID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update course request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCourseRequestNotFound
	}

	return nil
}

// Delete removes a course request. Documents and feedback cascade at the database level.
func (repo *courseRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CourseRequestModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete course request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCourseRequestNotFound
	}

	return nil
}

// CreateDocument persists SOP document metadata for a course request.
func (repo *courseRequestRepository) CreateDocument(ctx context.Context, document *entity.SOPDocument) error {
	documentM := fromSOPDocumentDomain(document)

	if err := repo.db.WithContext(ctx).Create(documentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("storage key already in use")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCourseRequestNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required document information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document")
	}

	document.ID = documentM.ID
	document.CreatedAt = documentM.CreatedAt
	document.UpdatedAt = documentM.UpdatedAt

	return nil
}

// FindDocumentByID retrieves a single SOP document by its unique ID.
func (repo *courseRequestRepository) FindDocumentByID(ctx context.Context, id uuid.UUID) (*entity.SOPDocument, error) {
	var documentM model.SOPDocumentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&documentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSOPDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document by id")
	}

	return toSOPDocumentDomain(&documentM), nil
}

// ListDocumentsByRequestID retrieves the documents of a course request, newest first.
func (repo *courseRequestRepository) ListDocumentsByRequestID(ctx context.Context, requestID uuid.UUID) ([]*entity.SOPDocument, error) {
	var documentModels []*model.SOPDocumentModel

	if err := repo.db.WithContext(ctx).
		Where("course_request_id = ?", requestID).
		Order("created_at DESC").
		Find(&documentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list documents by request")
	}

	documents := make([]*entity.SOPDocument, 0, len(documentModels))
	for _, documentM := range documentModels {
		documents = append(documents, toSOPDocumentDomain(documentM))
	}

	return documents, nil
}

// UpdateDocument modifies the processing state of an SOP document.
// The file metadata itself is immutable after upload.
func (repo *courseRequestRepository) UpdateDocument(ctx context.Context, document *entity.SOPDocument) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SOPDocumentModel{}).
		Where("id = ?", document.ID).
		Updates(map[string]any{
			"status":       document.Status.String(),
			"error_detail": document.ErrorDetail,
			"processed_at": document.ProcessedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update document")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSOPDocumentNotFound
	}

	return nil
}

// DeleteDocument removes an SOP document's metadata row.
func (repo *courseRequestRepository) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SOPDocumentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete document")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSOPDocumentNotFound
	}

	return nil
}

// CreateFeedback persists client feedback for a course request.
func (repo *courseRequestRepository) CreateFeedback(ctx context.Context, feedback *entity.ClientFeedback) error {
	feedbackM := fromClientFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCourseRequestNotFound
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid feedback information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt

	return nil
}

// ListFeedbackByRequestID retrieves the feedback of a course request, newest first.
func (repo *courseRequestRepository) ListFeedbackByRequestID(ctx context.Context, requestID uuid.UUID) ([]*entity.ClientFeedback, error) {
	var feedbackModels []*model.ClientFeedbackModel

	if err := repo.db.WithContext(ctx).
		Where("course_request_id = ?", requestID).
		Order("created_at DESC").
		Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback by request")
	}

	feedbackEntries := make([]*entity.ClientFeedback, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		feedbackEntries = append(feedbackEntries, toClientFeedbackDomain(feedbackM))
	}

	return feedbackEntries, nil
}

// --- Mapper Functions ---

// toCourseRequestDomain converts a GORM CourseRequestModel to a domain CourseRequest entity.
func toCourseRequestDomain(data *model.CourseRequestModel) *entity.CourseRequest {
	if data == nil {
		return nil
	}

	documents := make([]entity.SOPDocument, 0, len(data.Documents))
	for i := range data.Documents {
		documents = append(documents, *toSOPDocumentDomain(&data.Documents[i]))
	}

	feedback := make([]entity.ClientFeedback, 0, len(data.Feedback))
	for i := range data.Feedback {
		feedback = append(feedback, *toClientFeedbackDomain(&data.Feedback[i]))
	}

	return &entity.CourseRequest{
		ID:            data.ID,
		SalesUserID:   data.SalesUserID,
		CompanyName:   data.CompanyName,
		ContactName:   data.ContactName,
		ContactEmail:  data.ContactEmail,
		ContactPhone:  data.ContactPhone,
		Industry:      data.Industry,
		CohortSize:    data.CohortSize,
		CurrentLevel:  entity.CEFRLevel(data.CurrentLevel),
		TargetLevel:   entity.CEFRLevel(data.TargetLevel),
		TrainingGoals: data.TrainingGoals,
		DeliveryMode:  entity.DeliveryMode(data.DeliveryMode),
		Priority:      entity.RequestPriority(data.Priority),
		Status:        entity.CourseRequestStatus(data.Status),
		SubmittedAt:   data.SubmittedAt,
		CourseID:      data.CourseID,
		Documents:     documents,
		Feedback:      feedback,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCourseRequestDomain converts a domain CourseRequest entity to a GORM CourseRequestModel.
// Documents and feedback are managed through their own operations.
func fromCourseRequestDomain(data *entity.CourseRequest) *model.CourseRequestModel {
	if data == nil {
		return nil
	}

	return &model.CourseRequestModel{
		ID:            data.ID,
		SalesUserID:   data.SalesUserID,
		CompanyName:   data.CompanyName,
		ContactName:   data.ContactName,
		ContactEmail:  data.ContactEmail,
		ContactPhone:  data.ContactPhone,
		Industry:      data.Industry,
		CohortSize:    data.CohortSize,
		CurrentLevel:  data.CurrentLevel.String(),
		TargetLevel:   data.TargetLevel.String(),
		TrainingGoals: data.TrainingGoals,
		DeliveryMode:  data.DeliveryMode.String(),
		Priority:      data.Priority.String(),
		Status:        data.Status.String(),
		SubmittedAt:   data.SubmittedAt,
		CourseID:      data.CourseID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toSOPDocumentDomain converts a GORM SOPDocumentModel to a domain SOPDocument entity.
func toSOPDocumentDomain(data *model.SOPDocumentModel) *entity.SOPDocument {
	if data == nil {
		return nil
	}

	return &entity.SOPDocument{
		ID:              data.ID,
		CourseRequestID: data.CourseRequestID,
		FileName:        data.FileName,
		ContentType:     data.ContentType,
		SizeBytes:       data.SizeBytes,
		Checksum:        data.Checksum,
		StorageKey:      data.StorageKey,
		Status:          entity.DocumentStatus(data.Status),
		ErrorDetail:     data.ErrorDetail,
		ProcessedAt:     data.ProcessedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromSOPDocumentDomain converts a domain SOPDocument entity to a GORM SOPDocumentModel.
func fromSOPDocumentDomain(data *entity.SOPDocument) *model.SOPDocumentModel {
	if data == nil {
		return nil
	}

	return &model.SOPDocumentModel{
		ID:              data.ID,
		CourseRequestID: data.CourseRequestID,
		FileName:        data.FileName,
		ContentType:     data.ContentType,
		SizeBytes:       data.SizeBytes,
		Checksum:        data.Checksum,
		StorageKey:      data.StorageKey,
		Status:          data.Status.String(),
		ErrorDetail:     data.ErrorDetail,
		ProcessedAt:     data.ProcessedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toClientFeedbackDomain converts a GORM ClientFeedbackModel to a domain ClientFeedback entity.
func toClientFeedbackDomain(data *model.ClientFeedbackModel) *entity.ClientFeedback {
	if data == nil {
		return nil
	}

	return &entity.ClientFeedback{
		ID:              data.ID,
		CourseRequestID: data.CourseRequestID,
		AuthorName:      data.AuthorName,
		Rating:          data.Rating,
		Comment:         data.Comment,
		CreatedAt:       data.CreatedAt,
	}
}

// fromClientFeedbackDomain converts a domain ClientFeedback entity to a GORM ClientFeedbackModel.
func fromClientFeedbackDomain(data *entity.ClientFeedback) *model.ClientFeedbackModel {
	if data == nil {
		return nil
	}

	return &model.ClientFeedbackModel{
		ID:              data.ID,
		CourseRequestID: data.CourseRequestID,
		AuthorName:      data.AuthorName,
		Rating:          data.Rating,
		Comment:         data.Comment,
		CreatedAt:       data.CreatedAt,
	}
}

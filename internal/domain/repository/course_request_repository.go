// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"coursebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for course request persistence.
var (
	// ErrCourseRequestNotFound is returned when a course request is not found.
	ErrCourseRequestNotFound = errors.New("course request not found")
	// ErrSOPDocumentNotFound is returned when an attached document is not found.
	ErrSOPDocumentNotFound = errors.New("sop document not found")
)

// CourseRequestListFilter narrows and pages a course request listing.
type CourseRequestListFilter struct {
	SalesUserID *uuid.UUID                  // Only requests owned by this sales user.
	Status      *entity.CourseRequestStatus // Only requests in this status.
	Page        int                         // 1-based page number.
	PerPage     int                         // Page size.
}

// CourseRequestRepository defines persistence for the course request aggregate:
// the request row plus its owned SOP documents and client feedback.
type CourseRequestRepository interface {
	// Create persists a new course request.
	Create(ctx context.Context, request *entity.CourseRequest) error

	// FindByID retrieves a course request with documents and feedback preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CourseRequest, error)

	// List retrieves course requests matching the filter and the total match count.
	List(ctx context.Context, filter CourseRequestListFilter) ([]*entity.CourseRequest, int64, error)

	// Update modifies an existing course request.
	Update(ctx context.Context, request *entity.CourseRequest) error

	// Delete removes a course request and, by cascade, its documents and feedback.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateDocument persists a new SOP document row.
	CreateDocument(ctx context.Context, document *entity.SOPDocument) error

	// FindDocumentByID retrieves a single SOP document.
	FindDocumentByID(ctx context.Context, id uuid.UUID) (*entity.SOPDocument, error)

	// ListDocumentsByRequestID retrieves all documents of a request, newest first.
	ListDocumentsByRequestID(ctx context.Context, requestID uuid.UUID) ([]*entity.SOPDocument, error)

	// UpdateDocument modifies an existing SOP document row.
	UpdateDocument(ctx context.Context, document *entity.SOPDocument) error

	// DeleteDocument removes a SOP document row.
	DeleteDocument(ctx context.Context, id uuid.UUID) error

	// CreateFeedback persists a new client feedback entry.
	CreateFeedback(ctx context.Context, feedback *entity.ClientFeedback) error

	// ListFeedbackByRequestID retrieves all feedback of a request, newest first.
	ListFeedbackByRequestID(ctx context.Context, requestID uuid.UUID) ([]*entity.ClientFeedback, error)
}

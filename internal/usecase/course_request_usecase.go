// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"coursebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCourseRequestInput defines the data required to open a new course
// request. The request starts in draft and is owned by the creating actor.
type CreateCourseRequestInput struct {
	CompanyName   string
	ContactName   string
	ContactEmail  string
	ContactPhone  string
	Industry      string
	CohortSize    int
	CurrentLevel  string
	TargetLevel   string
	TrainingGoals string
	DeliveryMode  string
	Priority      string
}

// UpdateCourseRequestInput defines the fields a draft request may change.
// Nil fields are left untouched.
type UpdateCourseRequestInput struct {
	CompanyName   *string `json:"company_name,omitempty"`
	ContactName   *string `json:"contact_name,omitempty"`
	ContactEmail  *string `json:"contact_email,omitempty"`
	ContactPhone  *string `json:"contact_phone,omitempty"`
	Industry      *string `json:"industry,omitempty"`
	CohortSize    *int    `json:"cohort_size,omitempty"`
	CurrentLevel  *string `json:"current_level,omitempty"`
	TargetLevel   *string `json:"target_level,omitempty"`
	TrainingGoals *string `json:"training_goals,omitempty"`
	DeliveryMode  *string `json:"delivery_mode,omitempty"`
	Priority      *string `json:"priority,omitempty"`
}

// ListCourseRequestsInput narrows and pages a course request listing.
// Non-admin actors are always scoped to their own requests.
type ListCourseRequestsInput struct {
	Status  string
	Page    int
	PerPage int
}

// CompleteRequestInput links the course produced for the request.
type CompleteRequestInput struct {
	CourseID uuid.UUID
}

// AttachDocumentInput carries an uploaded SOP document. Content is streamed
// to the blob store; it is never buffered whole in the usecase layer.
type AttachDocumentInput struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Content     io.Reader
}

// AddFeedbackInput defines the data required to record client feedback.
type AddFeedbackInput struct {
	AuthorName string
	Rating     int
	Comment    string
}

// --- Output DTOs ---

// CourseRequestListOutput returns one page of requests plus the total match count.
type CourseRequestListOutput struct {
	Requests []*entity.CourseRequest
	Total    int64
	Page     int
	PerPage  int
}

// DocumentDownloadOutput carries a document's metadata together with a
// reader over its stored content. The caller must close Content.
type DocumentDownloadOutput struct {
	Document *entity.SOPDocument
	Content  io.ReadCloser
}

// CourseRequestUsecase defines the interface for the sales course request
// workflow: intake, lifecycle transitions, SOP document attachments and
// client feedback. Non-admin actors only ever see their own requests.
type CourseRequestUsecase interface {
	CreateRequest(ctx context.Context, actor Actor, input *CreateCourseRequestInput) (*entity.CourseRequest, error)
	GetRequest(ctx context.Context, actor Actor, requestID uuid.UUID) (*entity.CourseRequest, error)
	ListRequests(ctx context.Context, actor Actor, input *ListCourseRequestsInput) (*CourseRequestListOutput, error)
	UpdateRequest(ctx context.Context, actor Actor, requestID uuid.UUID, input *UpdateCourseRequestInput) (*entity.CourseRequest, error)
	DeleteRequest(ctx context.Context, actor Actor, requestID uuid.UUID) error

	SubmitRequest(ctx context.Context, actor Actor, requestID uuid.UUID) (*entity.CourseRequest, error)
	StartProcessing(ctx context.Context, actor Actor, requestID uuid.UUID) (*entity.CourseRequest, error)
	CompleteRequest(ctx context.Context, actor Actor, requestID uuid.UUID, input *CompleteRequestInput) (*entity.CourseRequest, error)
	CancelRequest(ctx context.Context, actor Actor, requestID uuid.UUID) (*entity.CourseRequest, error)

	AttachDocument(ctx context.Context, actor Actor, requestID uuid.UUID, input *AttachDocumentInput) (*entity.SOPDocument, error)
	ListDocuments(ctx context.Context, actor Actor, requestID uuid.UUID) ([]*entity.SOPDocument, error)
	OpenDocument(ctx context.Context, actor Actor, requestID, documentID uuid.UUID) (*DocumentDownloadOutput, error)
	DeleteDocument(ctx context.Context, actor Actor, requestID, documentID uuid.UUID) error
	MarkDocumentProcessed(ctx context.Context, requestID, documentID uuid.UUID) (*entity.SOPDocument, error)
	MarkDocumentError(ctx context.Context, requestID, documentID uuid.UUID, detail string) (*entity.SOPDocument, error)

	AddFeedback(ctx context.Context, actor Actor, requestID uuid.UUID, input *AddFeedbackInput) (*entity.ClientFeedback, error)
	ListFeedback(ctx context.Context, actor Actor, requestID uuid.UUID) ([]*entity.ClientFeedback, error)
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"

	domainerrors "coursebridge/internal/domain/errors"
)

// CourseRequestStatus represents where a course request sits in its workflow.
// Transitions move forward only (draft → submitted → in_progress → completed);
// cancellation is the single allowed escape from any non-terminal state.
type CourseRequestStatus string

const (
	CourseRequestStatusDraft      CourseRequestStatus = "draft"
	CourseRequestStatusSubmitted  CourseRequestStatus = "submitted"
	CourseRequestStatusInProgress CourseRequestStatus = "in_progress"
	CourseRequestStatusCompleted  CourseRequestStatus = "completed"
	CourseRequestStatusCancelled  CourseRequestStatus = "cancelled"
)

// String returns the string representation of the CourseRequestStatus.
func (s CourseRequestStatus) String() string {
	return string(s)
}

// IsValid checks if the CourseRequestStatus is a valid value.
func (s CourseRequestStatus) IsValid() bool {
	switch s {
	case CourseRequestStatusDraft, CourseRequestStatusSubmitted,
		CourseRequestStatusInProgress, CourseRequestStatusCompleted,
		CourseRequestStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s CourseRequestStatus) IsTerminal() bool {
	return s == CourseRequestStatusCompleted || s == CourseRequestStatusCancelled
}

// RequestPriority indicates how urgently a course request should be handled.
type RequestPriority string

const (
	RequestPriorityLow    RequestPriority = "low"
	RequestPriorityMedium RequestPriority = "medium"
	RequestPriorityHigh   RequestPriority = "high"
	RequestPriorityUrgent RequestPriority = "urgent"
)

// String returns the string representation of the RequestPriority.
func (p RequestPriority) String() string {
	return string(p)
}

// IsValid checks if the RequestPriority is a valid value.
func (p RequestPriority) IsValid() bool {
	switch p {
	case RequestPriorityLow, RequestPriorityMedium, RequestPriorityHigh, RequestPriorityUrgent:
		return true
	default:
		return false
	}
}

// DeliveryMode describes how the requested training will be delivered.
type DeliveryMode string

const (
	DeliveryModeOnline DeliveryMode = "online"
	DeliveryModeOnsite DeliveryMode = "onsite"
	DeliveryModeHybrid DeliveryMode = "hybrid"
)

// String returns the string representation of the DeliveryMode.
func (m DeliveryMode) String() string {
	return string(m)
}

// IsValid checks if the DeliveryMode is a valid value.
func (m DeliveryMode) IsValid() bool {
	switch m {
	case DeliveryModeOnline, DeliveryModeOnsite, DeliveryModeHybrid:
		return true
	default:
		return false
	}
}

// CourseRequest is a sales-owned intake record describing a client's training
// need. It moves through a forward-only workflow and may eventually be linked
// to the Course produced for it.
type CourseRequest struct {
	ID            uuid.UUID           // The unique identifier for the request.
	SalesUserID   uuid.UUID           // The sales user who owns this request.
	CompanyName   string              // Client company name.
	ContactName   string              // Client contact person.
	ContactEmail  string              // Client contact email.
	ContactPhone  string              // Client contact phone, optional.
	Industry      string              // Client industry, optional.
	CohortSize    int                 // Number of learners, 1..1000.
	CurrentLevel  CEFRLevel           // Learners' current proficiency.
	TargetLevel   CEFRLevel           // Desired proficiency after training.
	TrainingGoals string              // Free-text description of the training goals.
	DeliveryMode  DeliveryMode        // online, onsite or hybrid.
	Priority      RequestPriority     // Handling priority.
	Status        CourseRequestStatus // Workflow state.
	SubmittedAt   *time.Time          // Set exactly once, when the request is first submitted.
	CourseID      *uuid.UUID          // Back-reference to the generated Course, set on completion.
	Documents     []SOPDocument       // Attached SOP documents (owned, cascade delete).
	Feedback      []ClientFeedback    // Client feedback entries (owned, cascade delete).
	CreatedAt     time.Time           // Timestamp of when this request was created.
	UpdatedAt     time.Time           // Timestamp of the last modification to this request.
}

// CanModify reports whether field updates and deletion are still allowed.
// Only drafts are mutable; everything after submission is read-only except
// through workflow transitions.
func (cr *CourseRequest) CanModify() bool {
	return cr.Status == CourseRequestStatusDraft
}

// Submit moves a draft into the submitted state. SubmittedAt is recorded the
// first time only, so a request resurrected by an operator keeps its original
// submission timestamp.
func (cr *CourseRequest) Submit(now time.Time) error {
	if cr.Status != CourseRequestStatusDraft {
		return domainerrors.ErrInvalidStatusTransition.
			WithDetails("course request cannot be submitted from status " + cr.Status.String())
	}

	cr.Status = CourseRequestStatusSubmitted
	if cr.SubmittedAt == nil {
		cr.SubmittedAt = &now
	}

	return nil
}

// StartProcessing moves a submitted request into in_progress.
func (cr *CourseRequest) StartProcessing() error {
	if cr.Status != CourseRequestStatusSubmitted {
		return domainerrors.ErrInvalidStatusTransition.
			WithDetails("course request cannot start processing from status " + cr.Status.String())
	}

	cr.Status = CourseRequestStatusInProgress

	return nil
}

// Complete finishes an in_progress request and links the course produced for it.
func (cr *CourseRequest) Complete(courseID uuid.UUID) error {
	if cr.Status != CourseRequestStatusInProgress {
		return domainerrors.ErrInvalidStatusTransition.
			WithDetails("course request cannot be completed from status " + cr.Status.String())
	}

	cr.Status = CourseRequestStatusCompleted
	cr.CourseID = &courseID

	return nil
}

// Cancel aborts the request from any non-terminal state.
func (cr *CourseRequest) Cancel() error {
	if cr.Status.IsTerminal() {
		return domainerrors.ErrInvalidStatusTransition.
			WithDetails("course request cannot be cancelled from status " + cr.Status.String())
	}

	cr.Status = CourseRequestStatusCancelled

	return nil
}

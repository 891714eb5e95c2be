// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"

	domainerrors "coursebridge/internal/domain/errors"
)

// CourseStatus represents where a course sits in its review workflow.
type CourseStatus string

const (
	CourseStatusDraft         CourseStatus = "draft"
	CourseStatusPendingReview CourseStatus = "pending_review"
	CourseStatusApproved      CourseStatus = "approved"
	CourseStatusRejected      CourseStatus = "rejected"
)

// String returns the string representation of the CourseStatus.
func (s CourseStatus) String() string {
	return string(s)
}

// IsValid checks if the CourseStatus is a valid value.
func (s CourseStatus) IsValid() bool {
	switch s {
	case CourseStatusDraft, CourseStatusPendingReview, CourseStatusApproved, CourseStatusRejected:
		return true
	default:
		return false
	}
}

// Course is the root of the content hierarchy (Course → Module → Lesson →
// Exercise, plus Course → Assessment). Courses move through a review workflow
// and every transition appends a CourseReview audit row.
type Course struct {
	ID              uuid.UUID    // The unique identifier for the course.
	Title           string       // Course title.
	Description     string       // Course description, optional.
	Level           CEFRLevel    // Proficiency level the course targets.
	Status          CourseStatus // Review workflow state.
	CreatedByID     uuid.UUID    // The user who created the course.
	ApprovedByID    *uuid.UUID   // The user who approved it, nil until approved.
	CourseRequestID *uuid.UUID   // Back-reference to the originating request, optional.
	Modules         []Module     // Ordered content modules (owned, cascade delete).
	Assessments     []Assessment // Ordered assessments (owned, cascade delete).
	CreatedAt       time.Time    // Timestamp of when this course was created.
	UpdatedAt       time.Time    // Timestamp of the last modification to this course.
}

// CanModify reports whether content edits are allowed. Drafts and rejected
// courses are editable; anything under or past review is frozen.
func (c *Course) CanModify() bool {
	return c.Status == CourseStatusDraft || c.Status == CourseStatusRejected
}

// SubmitForReview moves a draft or rejected course into pending_review.
// Rejected courses may be resubmitted after rework.
func (c *Course) SubmitForReview() error {
	if c.Status != CourseStatusDraft && c.Status != CourseStatusRejected {
		return domainerrors.ErrInvalidStatusTransition.
			WithDetails("course cannot be submitted for review from status " + c.Status.String())
	}

	c.Status = CourseStatusPendingReview

	return nil
}

// Approve accepts a pending_review course and records who approved it.
func (c *Course) Approve(approverID uuid.UUID) error {
	if c.Status != CourseStatusPendingReview {
		return domainerrors.ErrInvalidStatusTransition.
			WithDetails("course cannot be approved from status " + c.Status.String())
	}

	c.Status = CourseStatusApproved
	c.ApprovedByID = &approverID

	return nil
}

// Reject sends a pending_review course back for rework.
func (c *Course) Reject() error {
	if c.Status != CourseStatusPendingReview {
		return domainerrors.ErrInvalidStatusTransition.
			WithDetails("course cannot be rejected from status " + c.Status.String())
	}

	c.Status = CourseStatusRejected

	return nil
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewAction names the workflow transition a CourseReview row records.
type ReviewAction string

const (
	ReviewActionSubmitted ReviewAction = "submitted"
	ReviewActionApproved  ReviewAction = "approved"
	ReviewActionRejected  ReviewAction = "rejected"
)

// String returns the string representation of the ReviewAction.
func (a ReviewAction) String() string {
	return string(a)
}

// IsValid checks if the ReviewAction is a valid value.
func (a ReviewAction) IsValid() bool {
	switch a {
	case ReviewActionSubmitted, ReviewActionApproved, ReviewActionRejected:
		return true
	default:
		return false
	}
}

// CourseReview is an audit row appended atomically with every course status
// transition, forming the review trail of a course.
type CourseReview struct {
	ID         uuid.UUID    // The unique identifier for the review entry.
	CourseID   uuid.UUID    // The course the transition applied to.
	ReviewerID uuid.UUID    // The user who performed the transition.
	Action     ReviewAction // Which transition happened.
	Comment    string       // Reviewer comment; required on rejection.
	CreatedAt  time.Time    // Timestamp of when the transition happened.
}

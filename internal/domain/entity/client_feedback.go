// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback rating bounds.
const (
	FeedbackRatingMin = 1
	FeedbackRatingMax = 5
)

// ClientFeedback is a client's rating and comment attached to a course request.
type ClientFeedback struct {
	ID              uuid.UUID // The unique identifier for the feedback entry.
	CourseRequestID uuid.UUID // The owning course request.
	AuthorName      string    // Name of the person giving feedback.
	Rating          int       // 1 (worst) to 5 (best).
	Comment         string    // Free-text comment, optional.
	CreatedAt       time.Time // Timestamp of when this feedback was recorded.
}

// RatingInRange reports whether the rating sits inside the accepted 1..5 scale.
func (f *ClientFeedback) RatingInRange() bool {
	return f.Rating >= FeedbackRatingMin && f.Rating <= FeedbackRatingMax
}

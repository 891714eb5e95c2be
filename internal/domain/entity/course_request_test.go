package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursebridge/internal/errors"

	domainerrors "coursebridge/internal/domain/errors"
)

func newDraftRequest() *CourseRequest {
	return &CourseRequest{
		ID:           uuid.New(),
		SalesUserID:  uuid.New(),
		CompanyName:  "Acme Corp",
		ContactName:  "Jane Doe",
		ContactEmail: "jane@acme.example",
		CohortSize:   25,
		CurrentLevel: CEFRLevelA2,
		TargetLevel:  CEFRLevelB1,
		DeliveryMode: DeliveryModeOnline,
		Priority:     RequestPriorityMedium,
		Status:       CourseRequestStatusDraft,
	}
}

func assertInvalidTransition(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestCourseRequest_Submit(t *testing.T) {
	t.Run("moves draft to submitted and stamps submission time", func(t *testing.T) {
		req := newDraftRequest()
		now := time.Now()

		err := req.Submit(now)

		require.NoError(t, err)
		assert.Equal(t, CourseRequestStatusSubmitted, req.Status)
		require.NotNil(t, req.SubmittedAt)
		assert.Equal(t, now, *req.SubmittedAt)
	})

	t.Run("keeps the original submission time", func(t *testing.T) {
		req := newDraftRequest()
		original := time.Now().Add(-time.Hour)
		req.SubmittedAt = &original

		err := req.Submit(time.Now())

		require.NoError(t, err)
		require.NotNil(t, req.SubmittedAt)
		assert.Equal(t, original, *req.SubmittedAt)
	})

	t.Run("rejects submission from any non-draft status", func(t *testing.T) {
		for _, status := range []CourseRequestStatus{
			CourseRequestStatusSubmitted,
			CourseRequestStatusInProgress,
			CourseRequestStatusCompleted,
			CourseRequestStatusCancelled,
		} {
			req := newDraftRequest()
			req.Status = status

			err := req.Submit(time.Now())

			assertInvalidTransition(t, err)
			assert.Equal(t, status, req.Status, "status must stay unchanged on rejection")
		}
	})
}

func TestCourseRequest_StartProcessing(t *testing.T) {
	t.Run("moves submitted to in_progress", func(t *testing.T) {
		req := newDraftRequest()
		req.Status = CourseRequestStatusSubmitted

		require.NoError(t, req.StartProcessing())
		assert.Equal(t, CourseRequestStatusInProgress, req.Status)
	})

	t.Run("rejects from draft", func(t *testing.T) {
		req := newDraftRequest()

		err := req.StartProcessing()

		assertInvalidTransition(t, err)
		assert.Equal(t, CourseRequestStatusDraft, req.Status)
	})
}

func TestCourseRequest_Complete(t *testing.T) {
	t.Run("moves in_progress to completed and links the course", func(t *testing.T) {
		req := newDraftRequest()
		req.Status = CourseRequestStatusInProgress
		courseID := uuid.New()

		require.NoError(t, req.Complete(courseID))
		assert.Equal(t, CourseRequestStatusCompleted, req.Status)
		require.NotNil(t, req.CourseID)
		assert.Equal(t, courseID, *req.CourseID)
	})

	t.Run("rejects from submitted", func(t *testing.T) {
		req := newDraftRequest()
		req.Status = CourseRequestStatusSubmitted

		err := req.Complete(uuid.New())

		assertInvalidTransition(t, err)
		assert.Equal(t, CourseRequestStatusSubmitted, req.Status)
		assert.Nil(t, req.CourseID)
	})
}

func TestCourseRequest_Cancel(t *testing.T) {
	t.Run("allowed from every non-terminal status", func(t *testing.T) {
		for _, status := range []CourseRequestStatus{
			CourseRequestStatusDraft,
			CourseRequestStatusSubmitted,
			CourseRequestStatusInProgress,
		} {
			req := newDraftRequest()
			req.Status = status

			require.NoError(t, req.Cancel())
			assert.Equal(t, CourseRequestStatusCancelled, req.Status)
		}
	})

	t.Run("rejected from terminal statuses", func(t *testing.T) {
		for _, status := range []CourseRequestStatus{
			CourseRequestStatusCompleted,
			CourseRequestStatusCancelled,
		} {
			req := newDraftRequest()
			req.Status = status

			err := req.Cancel()

			assertInvalidTransition(t, err)
			assert.Equal(t, status, req.Status)
		}
	})
}

func TestCourseRequest_CanModify(t *testing.T) {
	req := newDraftRequest()
	assert.True(t, req.CanModify())

	for _, status := range []CourseRequestStatus{
		CourseRequestStatusSubmitted,
		CourseRequestStatusInProgress,
		CourseRequestStatusCompleted,
		CourseRequestStatusCancelled,
	} {
		req.Status = status
		assert.False(t, req.CanModify(), "status %s must be immutable", status)
	}
}

func TestClientFeedback_RatingInRange(t *testing.T) {
	tests := []struct {
		rating int
		want   bool
	}{
		{rating: 0, want: false},
		{rating: 1, want: true},
		{rating: 3, want: true},
		{rating: 5, want: true},
		{rating: 6, want: false},
	}

	for _, tt := range tests {
		feedback := &ClientFeedback{Rating: tt.rating}
		assert.Equal(t, tt.want, feedback.RatingInRange(), "rating %d", tt.rating)
	}
}

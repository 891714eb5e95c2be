package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftCourse() *Course {
	return &Course{
		ID:          uuid.New(),
		Title:       "Business English B1",
		Level:       CEFRLevelB1,
		Status:      CourseStatusDraft,
		CreatedByID: uuid.New(),
	}
}

func TestCourse_SubmitForReview(t *testing.T) {
	t.Run("moves draft to pending_review", func(t *testing.T) {
		course := newDraftCourse()

		require.NoError(t, course.SubmitForReview())
		assert.Equal(t, CourseStatusPendingReview, course.Status)
	})

	t.Run("allows resubmission after rejection", func(t *testing.T) {
		course := newDraftCourse()
		course.Status = CourseStatusRejected

		require.NoError(t, course.SubmitForReview())
		assert.Equal(t, CourseStatusPendingReview, course.Status)
	})

	t.Run("rejects from pending_review and approved", func(t *testing.T) {
		for _, status := range []CourseStatus{CourseStatusPendingReview, CourseStatusApproved} {
			course := newDraftCourse()
			course.Status = status

			err := course.SubmitForReview()

			assertInvalidTransition(t, err)
			assert.Equal(t, status, course.Status)
		}
	})
}

func TestCourse_Approve(t *testing.T) {
	t.Run("succeeds only from pending_review and records the approver", func(t *testing.T) {
		course := newDraftCourse()
		course.Status = CourseStatusPendingReview
		approver := uuid.New()

		require.NoError(t, course.Approve(approver))
		assert.Equal(t, CourseStatusApproved, course.Status)
		require.NotNil(t, course.ApprovedByID)
		assert.Equal(t, approver, *course.ApprovedByID)
	})

	t.Run("fails from draft and leaves status unchanged", func(t *testing.T) {
		course := newDraftCourse()

		err := course.Approve(uuid.New())

		assertInvalidTransition(t, err)
		assert.Equal(t, CourseStatusDraft, course.Status)
		assert.Nil(t, course.ApprovedByID)
	})

	t.Run("fails from rejected", func(t *testing.T) {
		course := newDraftCourse()
		course.Status = CourseStatusRejected

		err := course.Approve(uuid.New())

		assertInvalidTransition(t, err)
		assert.Equal(t, CourseStatusRejected, course.Status)
	})
}

func TestCourse_Reject(t *testing.T) {
	t.Run("moves pending_review to rejected", func(t *testing.T) {
		course := newDraftCourse()
		course.Status = CourseStatusPendingReview

		require.NoError(t, course.Reject())
		assert.Equal(t, CourseStatusRejected, course.Status)
	})

	t.Run("fails from draft and approved", func(t *testing.T) {
		for _, status := range []CourseStatus{CourseStatusDraft, CourseStatusApproved} {
			course := newDraftCourse()
			course.Status = status

			err := course.Reject()

			assertInvalidTransition(t, err)
			assert.Equal(t, status, course.Status)
		}
	})
}

func TestCourse_CanModify(t *testing.T) {
	course := newDraftCourse()
	assert.True(t, course.CanModify())

	course.Status = CourseStatusRejected
	assert.True(t, course.CanModify())

	course.Status = CourseStatusPendingReview
	assert.False(t, course.CanModify())

	course.Status = CourseStatusApproved
	assert.False(t, course.CanModify())
}

package handler

import (
	"time"

	"coursebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// View types shape entities for JSON responses. Credential material
// (password hashes, persisted token hashes) and internal storage keys
// never pass through this mapping.

type userView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Status    string    `json:"status"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Status:    user.Status.String(),
		Roles:     user.RoleNames(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func newUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}

	return views
}

type sessionView struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newSessionViews(tokens []*entity.RefreshToken) []sessionView {
	views := make([]sessionView, 0, len(tokens))
	for _, token := range tokens {
		views = append(views, sessionView{
			ID:        token.ID,
			CreatedAt: token.CreatedAt,
			ExpiresAt: token.ExpiresAt,
		})
	}

	return views
}

type courseRequestView struct {
	ID            uuid.UUID      `json:"id"`
	SalesUserID   uuid.UUID      `json:"sales_user_id"`
	CompanyName   string         `json:"company_name"`
	ContactName   string         `json:"contact_name"`
	ContactEmail  string         `json:"contact_email"`
	ContactPhone  string         `json:"contact_phone,omitempty"`
	Industry      string         `json:"industry,omitempty"`
	CohortSize    int            `json:"cohort_size"`
	CurrentLevel  string         `json:"current_level"`
	TargetLevel   string         `json:"target_level"`
	TrainingGoals string         `json:"training_goals"`
	DeliveryMode  string         `json:"delivery_mode"`
	Priority      string         `json:"priority"`
	Status        string         `json:"status"`
	SubmittedAt   *time.Time     `json:"submitted_at,omitempty"`
	CourseID      *uuid.UUID     `json:"course_id,omitempty"`
	Documents     []documentView `json:"documents,omitempty"`
	Feedback      []feedbackView `json:"feedback,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func newCourseRequestView(request *entity.CourseRequest) courseRequestView {
	view := courseRequestView{
		ID:            request.ID,
		SalesUserID:   request.SalesUserID,
		CompanyName:   request.CompanyName,
		ContactName:   request.ContactName,
		ContactEmail:  request.ContactEmail,
		ContactPhone:  request.ContactPhone,
		Industry:      request.Industry,
		CohortSize:    request.CohortSize,
		CurrentLevel:  request.CurrentLevel.String(),
		TargetLevel:   request.TargetLevel.String(),
		TrainingGoals: request.TrainingGoals,
		DeliveryMode:  request.DeliveryMode.String(),
		Priority:      request.Priority.String(),
		Status:        request.Status.String(),
		SubmittedAt:   request.SubmittedAt,
		CourseID:      request.CourseID,
		CreatedAt:     request.CreatedAt,
		UpdatedAt:     request.UpdatedAt,
	}

	if len(request.Documents) > 0 {
		view.Documents = make([]documentView, 0, len(request.Documents))
		for i := range request.Documents {
			view.Documents = append(view.Documents, newDocumentView(&request.Documents[i]))
		}
	}
	if len(request.Feedback) > 0 {
		view.Feedback = make([]feedbackView, 0, len(request.Feedback))
		for i := range request.Feedback {
			view.Feedback = append(view.Feedback, newFeedbackView(&request.Feedback[i]))
		}
	}

	return view
}

func newCourseRequestViews(requests []*entity.CourseRequest) []courseRequestView {
	views := make([]courseRequestView, 0, len(requests))
	for _, request := range requests {
		views = append(views, newCourseRequestView(request))
	}

	return views
}

type documentView struct {
	ID              uuid.UUID  `json:"id"`
	CourseRequestID uuid.UUID  `json:"course_request_id"`
	FileName        string     `json:"file_name"`
	ContentType     string     `json:"content_type"`
	SizeBytes       int64      `json:"size_bytes"`
	Checksum        string     `json:"checksum"`
	Status          string     `json:"status"`
	ErrorDetail     string     `json:"error_detail,omitempty"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newDocumentView(document *entity.SOPDocument) documentView {
	return documentView{
		ID:              document.ID,
		CourseRequestID: document.CourseRequestID,
		FileName:        document.FileName,
		ContentType:     document.ContentType,
		SizeBytes:       document.SizeBytes,
		Checksum:        document.Checksum,
		Status:          document.Status.String(),
		ErrorDetail:     document.ErrorDetail,
		ProcessedAt:     document.ProcessedAt,
		CreatedAt:       document.CreatedAt,
		UpdatedAt:       document.UpdatedAt,
	}
}

func newDocumentViews(documents []*entity.SOPDocument) []documentView {
	views := make([]documentView, 0, len(documents))
	for _, document := range documents {
		views = append(views, newDocumentView(document))
	}

	return views
}

type feedbackView struct {
	ID              uuid.UUID `json:"id"`
	CourseRequestID uuid.UUID `json:"course_request_id"`
	AuthorName      string    `json:"author_name"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func newFeedbackView(feedback *entity.ClientFeedback) feedbackView {
	return feedbackView{
		ID:              feedback.ID,
		CourseRequestID: feedback.CourseRequestID,
		AuthorName:      feedback.AuthorName,
		Rating:          feedback.Rating,
		Comment:         feedback.Comment,
		CreatedAt:       feedback.CreatedAt,
	}
}

func newFeedbackViews(feedback []*entity.ClientFeedback) []feedbackView {
	views := make([]feedbackView, 0, len(feedback))
	for _, entry := range feedback {
		views = append(views, newFeedbackView(entry))
	}

	return views
}

type courseView struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	Level           string           `json:"level"`
	Status          string           `json:"status"`
	CreatedByID     uuid.UUID        `json:"created_by_id"`
	ApprovedByID    *uuid.UUID       `json:"approved_by_id,omitempty"`
	CourseRequestID *uuid.UUID       `json:"course_request_id,omitempty"`
	Modules         []moduleView     `json:"modules,omitempty"`
	Assessments     []assessmentView `json:"assessments,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func newCourseView(course *entity.Course) courseView {
	view := courseView{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		Level:           course.Level.String(),
		Status:          course.Status.String(),
		CreatedByID:     course.CreatedByID,
		ApprovedByID:    course.ApprovedByID,
		CourseRequestID: course.CourseRequestID,
		CreatedAt:       course.CreatedAt,
		UpdatedAt:       course.UpdatedAt,
	}

	if len(course.Modules) > 0 {
		view.Modules = make([]moduleView, 0, len(course.Modules))
		for i := range course.Modules {
			view.Modules = append(view.Modules, newModuleView(&course.Modules[i]))
		}
	}
	if len(course.Assessments) > 0 {
		view.Assessments = make([]assessmentView, 0, len(course.Assessments))
		for i := range course.Assessments {
			view.Assessments = append(view.Assessments, newAssessmentView(&course.Assessments[i]))
		}
	}

	return view
}

func newCourseViews(courses []*entity.Course) []courseView {
	views := make([]courseView, 0, len(courses))
	for _, course := range courses {
		views = append(views, newCourseView(course))
	}

	return views
}

type moduleView struct {
	ID          uuid.UUID    `json:"id"`
	CourseID    uuid.UUID    `json:"course_id"`
	Sequence    int          `json:"sequence"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Lessons     []lessonView `json:"lessons,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func newModuleView(module *entity.Module) moduleView {
	view := moduleView{
		ID:          module.ID,
		CourseID:    module.CourseID,
		Sequence:    module.Sequence,
		Title:       module.Title,
		Description: module.Description,
		CreatedAt:   module.CreatedAt,
		UpdatedAt:   module.UpdatedAt,
	}

	if len(module.Lessons) > 0 {
		view.Lessons = make([]lessonView, 0, len(module.Lessons))
		for i := range module.Lessons {
			view.Lessons = append(view.Lessons, newLessonView(&module.Lessons[i]))
		}
	}

	return view
}

func newModuleViews(modules []*entity.Module) []moduleView {
	views := make([]moduleView, 0, len(modules))
	for _, module := range modules {
		views = append(views, newModuleView(module))
	}

	return views
}

type lessonView struct {
	ID              uuid.UUID      `json:"id"`
	ModuleID        uuid.UUID      `json:"module_id"`
	Sequence        int            `json:"sequence"`
	Title           string         `json:"title"`
	Content         string         `json:"content,omitempty"`
	DurationMinutes int            `json:"duration_minutes"`
	Exercises       []exerciseView `json:"exercises,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func newLessonView(lesson *entity.Lesson) lessonView {
	view := lessonView{
		ID:              lesson.ID,
		ModuleID:        lesson.ModuleID,
		Sequence:        lesson.Sequence,
		Title:           lesson.Title,
		Content:         lesson.Content,
		DurationMinutes: lesson.DurationMinutes,
		CreatedAt:       lesson.CreatedAt,
		UpdatedAt:       lesson.UpdatedAt,
	}

	if len(lesson.Exercises) > 0 {
		view.Exercises = make([]exerciseView, 0, len(lesson.Exercises))
		for i := range lesson.Exercises {
			view.Exercises = append(view.Exercises, newExerciseView(&lesson.Exercises[i]))
		}
	}

	return view
}

type exerciseView struct {
	ID        uuid.UUID `json:"id"`
	LessonID  uuid.UUID `json:"lesson_id"`
	Sequence  int       `json:"sequence"`
	Prompt    string    `json:"prompt"`
	Type      string    `json:"type"`
	AnswerKey string    `json:"answer_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newExerciseView(exercise *entity.Exercise) exerciseView {
	return exerciseView{
		ID:        exercise.ID,
		LessonID:  exercise.LessonID,
		Sequence:  exercise.Sequence,
		Prompt:    exercise.Prompt,
		Type:      exercise.Type.String(),
		AnswerKey: exercise.AnswerKey,
		CreatedAt: exercise.CreatedAt,
		UpdatedAt: exercise.UpdatedAt,
	}
}

type assessmentView struct {
	ID           uuid.UUID `json:"id"`
	CourseID     uuid.UUID `json:"course_id"`
	Sequence     int       `json:"sequence"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	PassingScore int       `json:"passing_score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newAssessmentView(assessment *entity.Assessment) assessmentView {
	return assessmentView{
		ID:           assessment.ID,
		CourseID:     assessment.CourseID,
		Sequence:     assessment.Sequence,
		Title:        assessment.Title,
		Description:  assessment.Description,
		PassingScore: assessment.PassingScore,
		CreatedAt:    assessment.CreatedAt,
		UpdatedAt:    assessment.UpdatedAt,
	}
}

type reviewView struct {
	ID         uuid.UUID `json:"id"`
	CourseID   uuid.UUID `json:"course_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`
	Action     string    `json:"action"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func newReviewViews(reviews []*entity.CourseReview) []reviewView {
	views := make([]reviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, reviewView{
			ID:         review.ID,
			CourseID:   review.CourseID,
			ReviewerID: review.ReviewerID,
			Action:     review.Action.String(),
			Comment:    review.Comment,
			CreatedAt:  review.CreatedAt,
		})
	}

	return views
}

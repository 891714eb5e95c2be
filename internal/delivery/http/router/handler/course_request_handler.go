package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"coursebridge/internal/delivery/http/middleware"
	"coursebridge/internal/delivery/http/response"
	"coursebridge/internal/domain/entity"
	"coursebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// documentFormField is the multipart field carrying the uploaded file.
const documentFormField = "file"

// CourseRequestHandler holds dependencies for the sales course request handlers.
type CourseRequestHandler struct {
	uc     usecase.CourseRequestUsecase
	logger *slog.Logger
}

// NewCourseRequestHandler is the constructor for CourseRequestHandler, injected by Fx.
func NewCourseRequestHandler(uc usecase.CourseRequestUsecase, logger *slog.Logger) *CourseRequestHandler {
	return &CourseRequestHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCourseRequestRequest struct {
	CompanyName   string `json:"company_name" validate:"required"`
	ContactName   string `json:"contact_name" validate:"required"`
	ContactEmail  string `json:"contact_email" validate:"required,email"`
	ContactPhone  string `json:"contact_phone"`
	Industry      string `json:"industry"`
	CohortSize    int    `json:"cohort_size" validate:"required,min=1,max=1000"`
	CurrentLevel  string `json:"current_level" validate:"required"`
	TargetLevel   string `json:"target_level" validate:"required"`
	TrainingGoals string `json:"training_goals" validate:"required"`
	DeliveryMode  string `json:"delivery_mode" validate:"required"`
	Priority      string `json:"priority"`
}

type completeRequestRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

type addFeedbackRequest struct {
	AuthorName string `json:"author_name" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// CreateRequest opens a new draft course request owned by the caller.
func (h *CourseRequestHandler) CreateRequest(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createCourseRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course request input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.CreateRequest(c.Request().Context(), actor, &usecase.CreateCourseRequestInput{
		CompanyName:   req.CompanyName,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Industry:      req.Industry,
		CohortSize:    req.CohortSize,
		CurrentLevel:  req.CurrentLevel,
		TargetLevel:   req.TargetLevel,
		TrainingGoals: req.TrainingGoals,
		DeliveryMode:  req.DeliveryMode,
		Priority:      req.Priority,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCourseRequestView(request))
}

// GetRequest returns a single course request with documents and feedback.
func (h *CourseRequestHandler) GetRequest(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.GetRequest(c.Request().Context(), actor, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCourseRequestView(request))
}

// ListRequests returns one page of course requests. Sales users see their
// own requests; admins see everything.
func (h *CourseRequestHandler) ListRequests(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	page, perPage := queryPagination(c)

	output, err := h.uc.ListRequests(c.Request().Context(), actor, &usecase.ListCourseRequestsInput{
		Status:  c.QueryParam("status"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.PaginatedData{
		Items:   newCourseRequestViews(output.Requests),
		Total:   output.Total,
		Page:    output.Page,
		PerPage: output.PerPage,
	})
}

// UpdateRequest applies partial changes to a draft course request.
func (h *CourseRequestHandler) UpdateRequest(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateCourseRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course request input")
	}

	request, err := h.uc.UpdateRequest(c.Request().Context(), actor, requestID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCourseRequestView(request))
}

// DeleteRequest removes a draft course request and everything attached to it.
func (h *CourseRequestHandler) DeleteRequest(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteRequest(c.Request().Context(), actor, requestID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SubmitRequest moves a draft into the submitted state.
func (h *CourseRequestHandler) SubmitRequest(c echo.Context) error {
	return h.transition(c, h.uc.SubmitRequest)
}

// StartProcessing moves a submitted request into in_progress.
func (h *CourseRequestHandler) StartProcessing(c echo.Context) error {
	return h.transition(c, h.uc.StartProcessing)
}

// CancelRequest aborts a request from any non-terminal state.
func (h *CourseRequestHandler) CancelRequest(c echo.Context) error {
	return h.transition(c, h.uc.CancelRequest)
}

// transition runs a body-less workflow step and returns the updated request.
func (h *CourseRequestHandler) transition(
	c echo.Context,
	op func(ctx context.Context, actor usecase.Actor, requestID uuid.UUID) (*entity.CourseRequest, error),
) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	request, err := op(c.Request().Context(), actor, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCourseRequestView(request))
}

// CompleteRequest finishes an in_progress request, linking the produced course.
func (h *CourseRequestHandler) CompleteRequest(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req completeRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid completion input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.CompleteRequest(c.Request().Context(), actor, requestID, &usecase.CompleteRequestInput{
		CourseID: req.CourseID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCourseRequestView(request))
}

// AttachDocument stores an uploaded SOP document against the request. The
// file arrives as the multipart field named "file" and is streamed to the
// blob store without buffering it whole.
func (h *CourseRequestHandler) AttachDocument(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	fileHeader, err := c.FormFile(documentFormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'file' is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	document, err := h.uc.AttachDocument(c.Request().Context(), actor, requestID, &usecase.AttachDocumentInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		SizeBytes:   fileHeader.Size,
		Content:     src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newDocumentView(document))
}

// ListDocuments returns the documents attached to a request.
func (h *CourseRequestHandler) ListDocuments(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	documents, err := h.uc.ListDocuments(c.Request().Context(), actor, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDocumentViews(documents))
}

// DownloadDocument streams a stored document back to the caller.
func (h *CourseRequestHandler) DownloadDocument(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	documentID, err := pathUUID(c, "docId")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.OpenDocument(c.Request().Context(), actor, requestID, documentID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer output.Content.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, output.Document.FileName))

	return c.Stream(http.StatusOK, output.Document.ContentType, output.Content)
}

// DeleteDocument removes a document's blob and row.
func (h *CourseRequestHandler) DeleteDocument(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	documentID, err := pathUUID(c, "docId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteDocument(c.Request().Context(), actor, requestID, documentID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddFeedback records a client feedback entry against the request.
func (h *CourseRequestHandler) AddFeedback(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req addFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	feedback, err := h.uc.AddFeedback(c.Request().Context(), actor, requestID, &usecase.AddFeedbackInput{
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newFeedbackView(feedback))
}

// ListFeedback returns the feedback entries recorded against the request.
func (h *CourseRequestHandler) ListFeedback(c echo.Context) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	feedback, err := h.uc.ListFeedback(c.Request().Context(), actor, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFeedbackViews(feedback))
}

package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursebridge/config"
	"coursebridge/internal/domain/entity"
	domainerrors "coursebridge/internal/domain/errors"
	"coursebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRequestUsecase implements only the two result operations the push
// handler dispatches to; everything else panics through the embedded nil.
type stubRequestUsecase struct {
	usecase.CourseRequestUsecase

	markProcessed func(ctx context.Context, requestID, documentID uuid.UUID) (*entity.SOPDocument, error)
	markError     func(ctx context.Context, requestID, documentID uuid.UUID, detail string) (*entity.SOPDocument, error)
}

func (s *stubRequestUsecase) MarkDocumentProcessed(ctx context.Context, requestID, documentID uuid.UUID) (*entity.SOPDocument, error) {
	return s.markProcessed(ctx, requestID, documentID)
}

func (s *stubRequestUsecase) MarkDocumentError(ctx context.Context, requestID, documentID uuid.UUID, detail string) (*entity.SOPDocument, error) {
	return s.markError(ctx, requestID, documentID, detail)
}

func newTestPushHandler(uc usecase.CourseRequestUsecase) *PushHandler {
	return NewPushHandler(PushHandlerParams{
		Config:         &config.Config{},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		RequestUsecase: uc,
	})
}

// pushResult posts a document result event wrapped in a Pub/Sub push envelope
// and returns the response status code.
func pushResult(t *testing.T, h *PushHandler, event documentResultEvent) int {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = "1"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec.Code
}

func TestHandlePush_ProcessedResult(t *testing.T) {
	requestID := uuid.New()
	documentID := uuid.New()

	var gotRequestID, gotDocumentID uuid.UUID
	h := newTestPushHandler(&stubRequestUsecase{
		markProcessed: func(ctx context.Context, reqID, docID uuid.UUID) (*entity.SOPDocument, error) {
			gotRequestID, gotDocumentID = reqID, docID

			return &entity.SOPDocument{ID: docID, Status: entity.DocumentStatusProcessed}, nil
		},
	})

	code := pushResult(t, h, documentResultEvent{
		DocumentID:      documentID.String(),
		CourseRequestID: requestID.String(),
		Status:          resultStatusProcessed,
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, requestID, gotRequestID)
	assert.Equal(t, documentID, gotDocumentID)
}

func TestHandlePush_ErrorResultCarriesDetail(t *testing.T) {
	var gotDetail string
	h := newTestPushHandler(&stubRequestUsecase{
		markError: func(ctx context.Context, reqID, docID uuid.UUID, detail string) (*entity.SOPDocument, error) {
			gotDetail = detail

			return &entity.SOPDocument{ID: docID, Status: entity.DocumentStatusError}, nil
		},
	})

	code := pushResult(t, h, documentResultEvent{
		DocumentID:      uuid.NewString(),
		CourseRequestID: uuid.NewString(),
		Status:          resultStatusError,
		ErrorDetail:     "unreadable scan",
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "unreadable scan", gotDetail)
}

func TestHandlePush_TransientFailureAsksForRetry(t *testing.T) {
	h := newTestPushHandler(&stubRequestUsecase{
		markProcessed: func(ctx context.Context, reqID, docID uuid.UUID) (*entity.SOPDocument, error) {
			return nil, errors.New("database connection lost")
		},
	})

	code := pushResult(t, h, documentResultEvent{
		DocumentID:      uuid.NewString(),
		CourseRequestID: uuid.NewString(),
		Status:          resultStatusProcessed,
	})

	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestHandlePush_PermanentFailureAcksMessage(t *testing.T) {
	// A vanished document can never succeed on redelivery, so the message
	// is acknowledged instead of retried forever.
	h := newTestPushHandler(&stubRequestUsecase{
		markProcessed: func(ctx context.Context, reqID, docID uuid.UUID) (*entity.SOPDocument, error) {
			return nil, errors.Wrap(domainerrors.ErrDocumentNotFound, "document lookup failed")
		},
	})

	code := pushResult(t, h, documentResultEvent{
		DocumentID:      uuid.NewString(),
		CourseRequestID: uuid.NewString(),
		Status:          resultStatusProcessed,
	})

	assert.Equal(t, http.StatusOK, code)
}

func TestHandlePush_IllegalTransitionAcksMessage(t *testing.T) {
	h := newTestPushHandler(&stubRequestUsecase{
		markProcessed: func(ctx context.Context, reqID, docID uuid.UUID) (*entity.SOPDocument, error) {
			return nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition, "already processed")
		},
	})

	code := pushResult(t, h, documentResultEvent{
		DocumentID:      uuid.NewString(),
		CourseRequestID: uuid.NewString(),
		Status:          resultStatusProcessed,
	})

	assert.Equal(t, http.StatusOK, code)
}

func TestHandlePush_UnknownStatusAcksMessage(t *testing.T) {
	h := newTestPushHandler(&stubRequestUsecase{})

	code := pushResult(t, h, documentResultEvent{
		DocumentID:      uuid.NewString(),
		CourseRequestID: uuid.NewString(),
		Status:          "vanished",
	})

	assert.Equal(t, http.StatusOK, code)
}

func TestHandlePush_MalformedPayload(t *testing.T) {
	h := newTestPushHandler(&stubRequestUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"not base64!!"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

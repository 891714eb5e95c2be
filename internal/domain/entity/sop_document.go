// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"

	domainerrors "coursebridge/internal/domain/errors"
)

// DocumentStatus tracks the processing state of an uploaded SOP document.
type DocumentStatus string

const (
	DocumentStatusPending   DocumentStatus = "pending"
	DocumentStatusProcessed DocumentStatus = "processed"
	DocumentStatusError     DocumentStatus = "error"
)

// String returns the string representation of the DocumentStatus.
func (s DocumentStatus) String() string {
	return string(s)
}

// IsValid checks if the DocumentStatus is a valid value.
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusProcessed, DocumentStatusError:
		return true
	default:
		return false
	}
}

// SOPDocument is a client-supplied standard operating procedure file attached
// to a course request. The binary content lives in blob storage under
// StorageKey; the row tracks its metadata and processing state.
type SOPDocument struct {
	ID              uuid.UUID      // The unique identifier for the document.
	CourseRequestID uuid.UUID      // The owning course request.
	FileName        string         // Original file name as uploaded.
	ContentType     string         // MIME type reported at upload.
	SizeBytes       int64          // Content size in bytes.
	Checksum        string         // SHA-256 hex digest of the content.
	StorageKey      string         // Object key in the blob store.
	Status          DocumentStatus // pending until processed or errored.
	ErrorDetail     string         // Failure description when Status is error.
	ProcessedAt     *time.Time     // When processing finished, nil while pending.
	CreatedAt       time.Time      // Timestamp of when this document was uploaded.
	UpdatedAt       time.Time      // Timestamp of the last modification to this document.
}

// MarkProcessed records a successful processing run.
func (d *SOPDocument) MarkProcessed(now time.Time) error {
	if d.Status != DocumentStatusPending {
		return domainerrors.ErrInvalidStatusTransition.
			WithDetails("document cannot be marked processed from status " + d.Status.String())
	}

	d.Status = DocumentStatusProcessed
	d.ProcessedAt = &now
	d.ErrorDetail = ""

	return nil
}

// MarkError records a failed processing run with its cause.
func (d *SOPDocument) MarkError(detail string, now time.Time) error {
	if d.Status != DocumentStatusPending {
		return domainerrors.ErrInvalidStatusTransition.
			WithDetails("document cannot be marked errored from status " + d.Status.String())
	}

	d.Status = DocumentStatusError
	d.ErrorDetail = detail
	d.ProcessedAt = &now

	return nil
}

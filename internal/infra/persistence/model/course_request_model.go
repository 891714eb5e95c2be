package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseRequestModel mirrors the 'course_requests' table. It represents a
// client training request owned by a sales user.
type CourseRequestModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SalesUserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyName   string    `gorm:"type:varchar(255);not null"`
	ContactName   string    `gorm:"type:varchar(255);not null"`
	ContactEmail  string    `gorm:"type:varchar(255);not null"`
	ContactPhone  string    `gorm:"type:varchar(50)"`
	Industry      string    `gorm:"type:varchar(100)"`
	CohortSize    int       `gorm:"not null;default:1"`
	CurrentLevel  string    `gorm:"type:varchar(2);not null"`
	TargetLevel   string    `gorm:"type:varchar(2);not null"`
	TrainingGoals string    `gorm:"type:text"`
	DeliveryMode  string    `gorm:"type:varchar(20);not null"`
	Priority      string    `gorm:"type:varchar(20);not null;default:'medium'"`
	Status        string    `gorm:"type:varchar(20);not null;default:'draft';index"`
	SubmittedAt   *time.Time
	CourseID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Documents []SOPDocumentModel    `gorm:"foreignKey:CourseRequestID;constraint:OnDelete:CASCADE"`
	Feedback  []ClientFeedbackModel `gorm:"foreignKey:CourseRequestID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CourseRequestModel) TableName() string {
	return "course_requests"
}

// SOPDocumentModel mirrors the 'sop_documents' table. The blob itself lives in
// the file store under StorageKey. Only metadata is kept here.
type SOPDocumentModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CourseRequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName        string    `gorm:"type:varchar(255);not null"`
	ContentType     string    `gorm:"type:varchar(100);not null"`
	SizeBytes       int64     `gorm:"not null"`
	Checksum        string    `gorm:"type:varchar(64);not null"`
	StorageKey      string    `gorm:"type:varchar(512);unique;not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ErrorDetail     string    `gorm:"type:text"`
	ProcessedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SOPDocumentModel) TableName() string {
	return "sop_documents"
}

// ClientFeedbackModel mirrors the 'client_feedback' table.
type ClientFeedbackModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CourseRequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorName      string    `gorm:"type:varchar(255);not null"`
	Rating          int       `gorm:"not null"`
	Comment         string    `gorm:"type:text"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientFeedbackModel) TableName() string {
	return "client_feedback"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type CvParseStatus string

const (
	StatusQueued     CvParseStatus = "queued"
	StatusProcessing CvParseStatus = "processing"
	StatusCompleted  CvParseStatus = "completed"
	StatusFailed     CvParseStatus = "failed"
)

// CvParse tracks the asynchronous extraction of one uploaded CV document.
type CvParse struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID   uuid.UUID     `gorm:"type:uuid;not null" json:"document_id"`
	EmployeeID   uuid.UUID     `gorm:"type:uuid;not null" json:"employee_id"`
	Status       CvParseStatus `gorm:"not null;default:'queued'" json:"status"`
	Name         *string       `gorm:"type:text" json:"name,omitempty"`
	Email        *string       `gorm:"type:text" json:"email,omitempty"`
	Phone        *string       `gorm:"type:text" json:"phone,omitempty"`
	Education    *string       `gorm:"type:text" json:"education,omitempty"`
	Experience   *string       `gorm:"type:text" json:"experience,omitempty"`
	Skills       *string       `gorm:"type:text" json:"skills,omitempty"`
	Languages    *string       `gorm:"type:text" json:"languages,omitempty"`
	Interests    *string       `gorm:"type:text" json:"interests,omitempty"`
	ErrorMessage *string       `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (CvParse) TableName() string {
	return "cv_parses"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title           string    `gorm:"type:text;not null" json:"title"`
	Company         string    `gorm:"type:text" json:"company"`
	Description     string    `gorm:"type:text" json:"description"`
	RequiredSkills  string    `gorm:"type:text" json:"required_skills"`
	PreferredSkills string    `gorm:"type:text" json:"preferred_skills"`
	JobType         string    `gorm:"type:varchar(2)" json:"job_type"`
	CreatedAt       time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

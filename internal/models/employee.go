package models

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name              string    `gorm:"type:text" json:"name"`
	Email             string    `gorm:"type:text" json:"email"`
	Phone             string    `gorm:"type:text" json:"phone"`
	Skills            string    `gorm:"type:text" json:"skills"`
	Languages         string    `gorm:"type:text" json:"languages"`
	Interests         string    `gorm:"type:text" json:"interests"`
	Education         string    `gorm:"type:text" json:"education"`
	Experience        string    `gorm:"type:text" json:"experience"`
	PreferredContract string    `gorm:"type:varchar(2)" json:"preferred_contract"`
	CreatedAt         time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt         time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (e *Employee) TableName() string {
	return "employees"
}

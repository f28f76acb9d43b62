package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question is a free-form lead-capture message. Unlike Application, the phone
// number carries no uniqueness constraint.
type Question struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:123;not null" json:"name"`
	Location    string    `gorm:"size:255" json:"location"`
	PhoneNumber string    `gorm:"size:100;not null" json:"phone_number"`
	Text        string    `gorm:"type:text" json:"text"`
	Checked     bool      `gorm:"default:false" json:"checked"`
	Date        time.Time `gorm:"autoCreateTime;<-:create" json:"date"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.Date.IsZero() {
		q.Date = time.Now()
	}
	return nil
}

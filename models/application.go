package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application is a lead-capture request to list a product. Phone numbers are
// globally unique across applications; Date is set once at creation.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:123;not null" json:"name"`
	Location    string    `gorm:"size:255" json:"location"`
	PhoneNumber string    `gorm:"size:100;not null;uniqueIndex" json:"phone_number"`
	CompanyName string    `gorm:"size:123" json:"company_name"`
	Checked     bool      `gorm:"default:false" json:"checked"`
	Date        time.Time `gorm:"autoCreateTime;<-:create" json:"date"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
	return nil
}

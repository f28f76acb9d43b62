package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRating is a public review of a product. ReviewDate is set once at
// creation and never updated.
type ProductRating struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Name          string    `gorm:"size:123;not null" json:"name"`
	Email         string    `gorm:"not null" json:"email"`
	Star          int       `gorm:"default:0" json:"star"`
	ReviewComment string    `gorm:"type:text" json:"review_comment"`
	ReviewDate    time.Time `gorm:"autoCreateTime;<-:create" json:"review_date"`
}

func (r *ProductRating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.ReviewDate.IsZero() {
		r.ReviewDate = time.Now()
	}
	return nil
}

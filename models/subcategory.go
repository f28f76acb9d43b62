package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubCategory sits between a Category and its Products.
type SubCategory struct {
	ID           uuid.UUID                `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CategoryID   uuid.UUID                `gorm:"type:uuid;not null;index" json:"category_id"`
	Category     *Category                `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsActive     bool                     `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
	DeletedAt    gorm.DeletedAt           `gorm:"index" json:"-"`
	Translations []SubCategoryTranslation `gorm:"foreignKey:SubCategoryID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
	Products     []Product                `gorm:"foreignKey:SubCategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

type SubCategoryTranslation struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SubCategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subcategory_locale" json:"subcategory_id"`
	Locale        string    `gorm:"size:10;not null;uniqueIndex:idx_subcategory_locale" json:"locale"`
	Name          string    `gorm:"not null" json:"name"`
}

func (t SubCategoryTranslation) LocaleCode() string { return t.Locale }

func (s *SubCategory) Translation(locale, fallback string) (SubCategoryTranslation, bool) {
	return pickTranslation(s.Translations, locale, fallback)
}

func (s *SubCategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (t *SubCategoryTranslation) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

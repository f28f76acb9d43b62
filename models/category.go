package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID            uuid.UUID             `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Image         string                `json:"image"` // URL into external object storage
	IsActive      bool                  `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	DeletedAt     gorm.DeletedAt        `gorm:"index" json:"-"`
	Translations  []CategoryTranslation `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
	Subcategories []SubCategory         `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories,omitempty"`
}

// CategoryTranslation holds the locale-bound fields of a Category, one row per locale.
type CategoryTranslation struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_category_locale" json:"category_id"`
	Locale     string    `gorm:"size:10;not null;uniqueIndex:idx_category_locale" json:"locale"`
	Name       string    `gorm:"not null" json:"name"`
}

func (t CategoryTranslation) LocaleCode() string { return t.Locale }

// Translation resolves the locale-bound fields for the requested locale,
// falling back per the translation lookup policy.
func (c *Category) Translation(locale, fallback string) (CategoryTranslation, bool) {
	return pickTranslation(c.Translations, locale, fallback)
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (t *CategoryTranslation) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

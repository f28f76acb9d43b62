package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product belongs to a SubCategory and to a Company; additional company
// associations live in CompanyProduct. Default listing order is newest first.
type Product struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SubCategoryID uuid.UUID            `gorm:"type:uuid;not null;index" json:"subcategory_id"`
	SubCategory   *SubCategory         `gorm:"foreignKey:SubCategoryID" json:"subcategory,omitempty"`
	CompanyID     uuid.UUID            `gorm:"type:uuid;not null;index" json:"company_id"`
	Company       *Company             `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	IsFeatured    bool                 `gorm:"default:false" json:"is_featured"`
	Views         int                  `gorm:"default:0" json:"views"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	DeletedAt     gorm.DeletedAt       `gorm:"index" json:"-"`
	Translations  []ProductTranslation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
	Images        []ProductImage       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Ratings       []ProductRating      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"ratings,omitempty"`
}

type ProductTranslation struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_locale" json:"product_id"`
	Locale      string    `gorm:"size:10;not null;uniqueIndex:idx_product_locale" json:"locale"`
	Name        string    `gorm:"size:300;not null" json:"name"`
	Description string    `gorm:"size:1000" json:"description"`
	Compound    string    `gorm:"size:1000" json:"compound"`
	Tag         string    `gorm:"type:text" json:"tag"`
}

func (t ProductTranslation) LocaleCode() string { return t.Locale }

func (p *Product) Translation(locale, fallback string) (ProductTranslation, bool) {
	return pickTranslation(p.Translations, locale, fallback)
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (t *ProductTranslation) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

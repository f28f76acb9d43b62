package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is a catalog vendor. Its products are reachable both through the
// direct foreign key on Product and through CompanyProduct association rows.
type Company struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string               `gorm:"size:300;not null" json:"name"`
	CategoryID   uuid.UUID            `gorm:"type:uuid;not null;index" json:"category_id"`
	Category     *Category            `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Location     string               `json:"location"`
	Country      Country              `gorm:"size:100" json:"country"`
	Image        string               `json:"image"`
	PhoneNumber  string               `gorm:"size:100" json:"phone_number"` // E.164
	Facebook     string               `json:"facebook"`
	Instagram    string               `json:"instagram"`
	Telegram     string               `json:"telegram"`
	Youtube      string               `json:"youtube"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	DeletedAt    gorm.DeletedAt       `gorm:"index" json:"-"`
	Translations []CompanyTranslation `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
	Products     []Product            `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

type CompanyTranslation struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_company_locale" json:"company_id"`
	Locale      string    `gorm:"size:10;not null;uniqueIndex:idx_company_locale" json:"locale"`
	Description string    `gorm:"type:text" json:"description"`
}

func (t CompanyTranslation) LocaleCode() string { return t.Locale }

func (c *Company) Translation(locale, fallback string) (CompanyTranslation, bool) {
	return pickTranslation(c.Translations, locale, fallback)
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (t *CompanyTranslation) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

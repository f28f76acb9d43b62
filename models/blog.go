package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogCategory groups blog posts. Its slug is shared across locales; only the
// name is translated.
type BlogCategory struct {
	ID           uuid.UUID                 `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug         string                    `gorm:"size:255;not null;index" json:"slug"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
	DeletedAt    gorm.DeletedAt            `gorm:"index" json:"-"`
	Translations []BlogCategoryTranslation `gorm:"foreignKey:BlogCategoryID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
	Posts        []Post                    `gorm:"many2many:post_categories" json:"posts,omitempty"`
}

type BlogCategoryTranslation struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BlogCategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blog_category_locale" json:"blog_category_id"`
	Locale         string    `gorm:"size:10;not null;uniqueIndex:idx_blog_category_locale" json:"locale"`
	Name           string    `gorm:"not null" json:"name"`
}

func (t BlogCategoryTranslation) LocaleCode() string { return t.Locale }

func (c *BlogCategory) Translation(locale, fallback string) (BlogCategoryTranslation, bool) {
	return pickTranslation(c.Translations, locale, fallback)
}

// Post is a blog article. Views counts retrievals; default order is newest first.
type Post struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug         string            `gorm:"size:255;not null;index" json:"slug"`
	Image        string            `json:"image"`
	IsFeatured   bool              `gorm:"default:false" json:"is_featured"`
	Views        int               `gorm:"default:0" json:"views"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`
	Translations []PostTranslation `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
	Categories   []BlogCategory    `gorm:"many2many:post_categories" json:"categories,omitempty"`
}

type PostTranslation struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PostID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_locale" json:"post_id"`
	Locale      string    `gorm:"size:10;not null;uniqueIndex:idx_post_locale" json:"locale"`
	Title       string    `gorm:"size:300;not null" json:"title"`
	Description string    `gorm:"size:1000" json:"description"`
	Content     string    `gorm:"type:text" json:"content"`
}

func (t PostTranslation) LocaleCode() string { return t.Locale }

func (p *Post) Translation(locale, fallback string) (PostTranslation, bool) {
	return pickTranslation(p.Translations, locale, fallback)
}

func (c *BlogCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (t *BlogCategoryTranslation) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (t *PostTranslation) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

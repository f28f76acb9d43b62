package dtos

import (
	"time"

	"b2bpro-backend/models"

	"github.com/google/uuid"
)

// Translated entities serialize the same way throughout: the fields resolved
// for the requested locale inline, plus a translations map keyed by locale so
// clients that manage all locales (the admin UI) see every row.

type SubCategoryFields struct {
	Name string `json:"name"`
}

type SubCategoryResponse struct {
	ID           uuid.UUID                    `json:"id"`
	CategoryID   uuid.UUID                    `json:"category_id"`
	Name         string                       `json:"name"`
	IsActive     bool                         `json:"is_active"`
	CreatedAt    time.Time                    `json:"created_at"`
	UpdatedAt    time.Time                    `json:"updated_at"`
	Translations map[string]SubCategoryFields `json:"translations"`
}

func NewSubCategoryResponse(s models.SubCategory, locale, fallback string) SubCategoryResponse {
	resp := SubCategoryResponse{
		ID:           s.ID,
		CategoryID:   s.CategoryID,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		Translations: make(map[string]SubCategoryFields, len(s.Translations)),
	}
	for _, t := range s.Translations {
		resp.Translations[t.Locale] = SubCategoryFields{Name: t.Name}
	}
	if t, ok := s.Translation(locale, fallback); ok {
		resp.Name = t.Name
	}
	return resp
}

type CategoryFields struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID            uuid.UUID                 `json:"id"`
	Name          string                    `json:"name"`
	Image         string                    `json:"image"`
	IsActive      bool                      `json:"is_active"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
	Translations  map[string]CategoryFields `json:"translations"`
	Subcategories []SubCategoryResponse     `json:"subcategories"`
}

func NewCategoryResponse(c models.Category, locale, fallback string) CategoryResponse {
	resp := CategoryResponse{
		ID:            c.ID,
		Image:         c.Image,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Translations:  make(map[string]CategoryFields, len(c.Translations)),
		Subcategories: make([]SubCategoryResponse, 0, len(c.Subcategories)),
	}
	for _, t := range c.Translations {
		resp.Translations[t.Locale] = CategoryFields{Name: t.Name}
	}
	if t, ok := c.Translation(locale, fallback); ok {
		resp.Name = t.Name
	}
	for _, sub := range c.Subcategories {
		resp.Subcategories = append(resp.Subcategories, NewSubCategoryResponse(sub, locale, fallback))
	}
	return resp
}

package dtos

import (
	"time"

	"b2bpro-backend/models"

	"github.com/google/uuid"
)

type BlogCategoryFields struct {
	Name string `json:"name"`
}

type BlogCategoryResponse struct {
	ID           uuid.UUID                     `json:"id"`
	Slug         string                        `json:"slug"`
	Name         string                        `json:"name"`
	Translations map[string]BlogCategoryFields `json:"translations"`
}

func NewBlogCategoryResponse(c models.BlogCategory, locale, fallback string) BlogCategoryResponse {
	resp := BlogCategoryResponse{
		ID:           c.ID,
		Slug:         c.Slug,
		Translations: make(map[string]BlogCategoryFields, len(c.Translations)),
	}
	for _, t := range c.Translations {
		resp.Translations[t.Locale] = BlogCategoryFields{Name: t.Name}
	}
	if t, ok := c.Translation(locale, fallback); ok {
		resp.Name = t.Name
	}
	return resp
}

type PostFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type PostResponse struct {
	ID           uuid.UUID              `json:"id"`
	Slug         string                 `json:"slug"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Content      string                 `json:"content"`
	Image        string                 `json:"image"`
	IsFeatured   bool                   `json:"is_featured"`
	Views        int                    `json:"views"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	Translations map[string]PostFields  `json:"translations"`
	Categories   []BlogCategoryResponse `json:"categories"`
}

func NewPostResponse(p models.Post, locale, fallback string) PostResponse {
	resp := PostResponse{
		ID:           p.ID,
		Slug:         p.Slug,
		Image:        p.Image,
		IsFeatured:   p.IsFeatured,
		Views:        p.Views,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Translations: make(map[string]PostFields, len(p.Translations)),
		Categories:   make([]BlogCategoryResponse, 0, len(p.Categories)),
	}
	for _, t := range p.Translations {
		resp.Translations[t.Locale] = PostFields{
			Title:       t.Title,
			Description: t.Description,
			Content:     t.Content,
		}
	}
	if t, ok := p.Translation(locale, fallback); ok {
		resp.Title = t.Title
		resp.Description = t.Description
		resp.Content = t.Content
	}
	for _, cat := range p.Categories {
		resp.Categories = append(resp.Categories, NewBlogCategoryResponse(cat, locale, fallback))
	}
	return resp
}

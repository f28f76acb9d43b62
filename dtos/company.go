package dtos

import (
	"time"

	"b2bpro-backend/models"

	"github.com/google/uuid"
)

type CompanyFields struct {
	Description string `json:"description"`
}

type CompanyResponse struct {
	ID           uuid.UUID                `json:"id"`
	Name         string                   `json:"name"`
	CategoryID   uuid.UUID                `json:"category_id"`
	Description  string                   `json:"description"`
	Location     string                   `json:"location"`
	Country      models.Country           `json:"country"`
	CountryName  string                   `json:"country_name"`
	Image        string                   `json:"image"`
	PhoneNumber  string                   `json:"phone_number"`
	Facebook     string                   `json:"facebook"`
	Instagram    string                   `json:"instagram"`
	Telegram     string                   `json:"telegram"`
	Youtube      string                   `json:"youtube"`
	CreatedAt    time.Time                `json:"created_at"`
	Translations map[string]CompanyFields `json:"translations"`
	Category     *CategoryResponse        `json:"category,omitempty"`
	Products     []ProductResponse        `json:"products"`
}

// NewCompanyResponse embeds the company's product list: the union of products
// referencing the company directly and products linked through association
// rows, deduplicated by product id.
func NewCompanyResponse(c models.Company, associated []models.Product, locale, fallback string) CompanyResponse {
	resp := CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		CategoryID:   c.CategoryID,
		Location:     c.Location,
		Country:      c.Country,
		CountryName:  c.Country.Name(),
		Image:        c.Image,
		PhoneNumber:  c.PhoneNumber,
		Facebook:     c.Facebook,
		Instagram:    c.Instagram,
		Telegram:     c.Telegram,
		Youtube:      c.Youtube,
		CreatedAt:    c.CreatedAt,
		Translations: make(map[string]CompanyFields, len(c.Translations)),
		Products:     make([]ProductResponse, 0, len(c.Products)+len(associated)),
	}
	for _, t := range c.Translations {
		resp.Translations[t.Locale] = CompanyFields{Description: t.Description}
	}
	if t, ok := c.Translation(locale, fallback); ok {
		resp.Description = t.Description
	}
	if c.Category != nil {
		cat := NewCategoryResponse(*c.Category, locale, fallback)
		resp.Category = &cat
	}

	seen := make(map[uuid.UUID]bool)
	for _, p := range c.Products {
		if !seen[p.ID] {
			seen[p.ID] = true
			resp.Products = append(resp.Products, NewProductResponse(p, locale, fallback))
		}
	}
	for _, p := range associated {
		if !seen[p.ID] {
			seen[p.ID] = true
			resp.Products = append(resp.Products, NewProductResponse(p, locale, fallback))
		}
	}
	return resp
}

package dtos

import (
	"time"

	"b2bpro-backend/models"

	"github.com/google/uuid"
)

type ProductFields struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Compound    string `json:"compound"`
	Tag         string `json:"tag"`
}

type ProductResponse struct {
	ID            uuid.UUID                `json:"id"`
	SubCategoryID uuid.UUID                `json:"subcategory_id"`
	CompanyID     uuid.UUID                `json:"company_id"`
	Name          string                   `json:"name"`
	Description   string                   `json:"description"`
	Compound      string                   `json:"compound"`
	Tag           string                   `json:"tag"`
	IsFeatured    bool                     `json:"is_featured"`
	Views         int                      `json:"views"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
	Translations  map[string]ProductFields `json:"translations"`
	SubCategory   *SubCategoryResponse     `json:"subcategory,omitempty"`
	Images        []models.ProductImage    `json:"images"`
}

// ProductDetailResponse is the enriched retrieve representation: the base
// fields plus the full review list and the mean star value. AverageRating is
// null, not zero, when the product has no ratings.
type ProductDetailResponse struct {
	ProductResponse
	AverageRating  *float64               `json:"average_rating"`
	ProductReviews []models.ProductRating `json:"product_reviews"`
}

func NewProductResponse(p models.Product, locale, fallback string) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID,
		SubCategoryID: p.SubCategoryID,
		CompanyID:     p.CompanyID,
		IsFeatured:    p.IsFeatured,
		Views:         p.Views,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Translations:  make(map[string]ProductFields, len(p.Translations)),
		Images:        make([]models.ProductImage, 0, len(p.Images)),
	}
	for _, t := range p.Translations {
		resp.Translations[t.Locale] = ProductFields{
			Name:        t.Name,
			Description: t.Description,
			Compound:    t.Compound,
			Tag:         t.Tag,
		}
	}
	if t, ok := p.Translation(locale, fallback); ok {
		resp.Name = t.Name
		resp.Description = t.Description
		resp.Compound = t.Compound
		resp.Tag = t.Tag
	}
	if p.SubCategory != nil {
		sub := NewSubCategoryResponse(*p.SubCategory, locale, fallback)
		resp.SubCategory = &sub
	}
	resp.Images = append(resp.Images, p.Images...)
	return resp
}

func NewProductDetailResponse(p models.Product, locale, fallback string) ProductDetailResponse {
	resp := ProductDetailResponse{
		ProductResponse: NewProductResponse(p, locale, fallback),
		ProductReviews:  make([]models.ProductRating, 0, len(p.Ratings)),
	}
	resp.ProductReviews = append(resp.ProductReviews, p.Ratings...)
	resp.AverageRating = AverageRating(p.Ratings)
	return resp
}

// AverageRating is the arithmetic mean of the star values, or nil when there
// are no ratings.
func AverageRating(ratings []models.ProductRating) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Star
	}
	avg := float64(sum) / float64(len(ratings))
	return &avg
}

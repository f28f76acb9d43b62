package dtos

import (
	"testing"

	"b2bpro-backend/models"

	"github.com/google/uuid"
)

func TestAverageRating(t *testing.T) {
	ratings := []models.ProductRating{{Star: 3}, {Star: 5}, {Star: 4}}

	avg := AverageRating(ratings)
	if avg == nil {
		t.Fatal("expected a value for a rated product")
	}
	if *avg != 4.0 {
		t.Errorf("expected 4.0, got %v", *avg)
	}
}

func TestAverageRatingNilWhenUnrated(t *testing.T) {
	if avg := AverageRating(nil); avg != nil {
		t.Errorf("expected nil for no ratings, got %v", *avg)
	}
}

func TestNewProductResponsePicksLocale(t *testing.T) {
	p := models.Product{
		ID: uuid.New(),
		Translations: []models.ProductTranslation{
			{Locale: "en", Name: "Urea Fertilizer", Description: "Granulated urea"},
			{Locale: "ru", Name: "Карбамид", Description: "Гранулированный карбамид"},
		},
	}

	resp := NewProductResponse(p, "ru", "en")
	if resp.Name != "Карбамид" {
		t.Errorf("expected russian name, got %q", resp.Name)
	}
	if len(resp.Translations) != 2 {
		t.Errorf("expected both translations in the map, got %d", len(resp.Translations))
	}
	if resp.Translations["en"].Name != "Urea Fertilizer" {
		t.Errorf("unexpected en translation %+v", resp.Translations["en"])
	}
}

func TestNewProductDetailResponseIncludesReviews(t *testing.T) {
	p := models.Product{
		ID: uuid.New(),
		Translations: []models.ProductTranslation{
			{Locale: "en", Name: "Urea Fertilizer"},
		},
		Ratings: []models.ProductRating{{Star: 2}, {Star: 5}},
	}

	resp := NewProductDetailResponse(p, "en", "en")
	if len(resp.ProductReviews) != 2 {
		t.Errorf("expected 2 reviews, got %d", len(resp.ProductReviews))
	}
	if resp.AverageRating == nil || *resp.AverageRating != 3.5 {
		t.Errorf("expected average 3.5, got %v", resp.AverageRating)
	}
}

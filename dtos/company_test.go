package dtos

import (
	"testing"

	"b2bpro-backend/models"

	"github.com/google/uuid"
)

func TestNewCompanyResponseUnionsProducts(t *testing.T) {
	shared := models.Product{ID: uuid.New(), Translations: []models.ProductTranslation{{Locale: "en", Name: "Urea Fertilizer"}}}
	direct := models.Product{ID: uuid.New(), Translations: []models.ProductTranslation{{Locale: "en", Name: "Ammonium Nitrate"}}}
	assoc := models.Product{ID: uuid.New(), Translations: []models.ProductTranslation{{Locale: "en", Name: "Potash"}}}

	c := models.Company{
		ID:       uuid.New(),
		Name:     "AgroTrade LLC",
		Country:  "UZ",
		Products: []models.Product{direct, shared},
	}

	resp := NewCompanyResponse(c, []models.Product{assoc, shared}, "en", "en")
	if len(resp.Products) != 3 {
		t.Fatalf("expected 3 deduplicated products, got %d", len(resp.Products))
	}

	seen := make(map[uuid.UUID]int)
	for _, p := range resp.Products {
		seen[p.ID]++
	}
	if seen[shared.ID] != 1 {
		t.Errorf("shared product should appear once, appeared %d times", seen[shared.ID])
	}
}

func TestNewCompanyResponseCountryName(t *testing.T) {
	c := models.Company{ID: uuid.New(), Name: "AgroTrade LLC", Country: "UZ"}

	resp := NewCompanyResponse(c, nil, "en", "en")
	if resp.CountryName != "Uzbekistan" {
		t.Errorf("expected Uzbekistan, got %q", resp.CountryName)
	}
}

func TestNewCompanyResponseDescriptionFallback(t *testing.T) {
	c := models.Company{
		ID:   uuid.New(),
		Name: "AgroTrade LLC",
		Translations: []models.CompanyTranslation{
			{Locale: "en", Description: "Fertilizer wholesaler"},
		},
	}

	resp := NewCompanyResponse(c, nil, "fr", "en")
	if resp.Description != "Fertilizer wholesaler" {
		t.Errorf("expected en fallback description, got %q", resp.Description)
	}
}

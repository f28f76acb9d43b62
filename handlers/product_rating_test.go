package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"b2bpro-backend/models"

	"github.com/google/uuid"
)

func TestGetRatingsOrderedByStar(t *testing.T) {
	db := freshDB()
	_, sub, company := seedCatalog(db)
	prod := seedProduct(db, "Rated Product", sub.ID, company.ID)
	seedRating(db, prod.ID, 2)
	seedRating(db, prod.ID, 5)
	seedRating(db, prod.ID, 3)

	router := setupRatingRouter(db)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/product-ratings", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	ratings := parseResponseArray(w)
	if len(ratings) != 3 {
		t.Fatalf("expected 3 ratings, got %d", len(ratings))
	}
	stars := make([]int, 0, 3)
	for _, r := range ratings {
		stars = append(stars, int(r.(map[string]interface{})["star"].(float64)))
	}
	if stars[0] != 5 || stars[1] != 3 || stars[2] != 2 {
		t.Errorf("expected descending stars, got %v", stars)
	}
}

func TestGetRatingsFilteredByProduct(t *testing.T) {
	db := freshDB()
	_, sub, company := seedCatalog(db)
	prod := seedProduct(db, "Rated", sub.ID, company.ID)
	other := seedProduct(db, "Unrated", sub.ID, company.ID)
	seedRating(db, prod.ID, 4)
	seedRating(db, other.ID, 2)

	router := setupRatingRouter(db)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/product-ratings?product="+prod.ID.String(), nil))

	if got := len(parseResponseArray(w)); got != 1 {
		t.Errorf("expected 1 rating for product, got %d", got)
	}
}

func TestCreateRating(t *testing.T) {
	db := freshDB()
	_, sub, company := seedCatalog(db)
	prod := seedProduct(db, "Rated Product", sub.ID, company.ID)

	router := setupRatingRouter(db)
	body := map[string]interface{}{
		"product_id":     prod.ID,
		"name":           "Alisher",
		"email":          "alisher@test.com",
		"star":           5,
		"review_comment": "Excellent quality",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/product-ratings", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp["review_date"] == nil {
		t.Error("expected review_date to be set on create")
	}
}

func TestCreateRatingStarOutOfRange(t *testing.T) {
	db := freshDB()
	_, sub, company := seedCatalog(db)
	prod := seedProduct(db, "Rated Product", sub.ID, company.ID)

	router := setupRatingRouter(db)
	for _, star := range []int{0, 6} {
		body := map[string]interface{}{
			"product_id": prod.ID,
			"name":       "Alisher",
			"email":      "alisher@test.com",
			"star":       star,
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("POST", "/api/product-ratings", body))
		if w.Code != http.StatusBadRequest {
			t.Errorf("star %d: expected 400, got %d", star, w.Code)
		}
	}
}

func TestCreateRatingUnknownProduct(t *testing.T) {
	db := freshDB()

	router := setupRatingRouter(db)
	body := map[string]interface{}{
		"product_id": uuid.New(),
		"name":       "Alisher",
		"email":      "alisher@test.com",
		"star":       4,
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/product-ratings", body))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown product, got %d", w.Code)
	}
}

func TestUpdateRatingKeepsReviewDate(t *testing.T) {
	db := freshDB()
	_, sub, company := seedCatalog(db)
	prod := seedProduct(db, "Rated Product", sub.ID, company.ID)
	rating := seedRating(db, prod.ID, 2)

	var before models.ProductRating
	db.First(&before, "id = ?", rating.ID)

	router := setupRatingRouter(db)
	body := map[string]interface{}{
		"product_id": prod.ID,
		"name":       "Updated Reviewer",
		"email":      "reviewer@test.com",
		"star":       4,
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/product-ratings/"+rating.ID.String(), body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var after models.ProductRating
	db.First(&after, "id = ?", rating.ID)
	if after.Star != 4 {
		t.Errorf("expected star updated to 4, got %d", after.Star)
	}
	if !after.ReviewDate.Equal(before.ReviewDate) {
		t.Errorf("expected review date unchanged: before %v, after %v", before.ReviewDate, after.ReviewDate)
	}
}

func TestDeleteRating(t *testing.T) {
	db := freshDB()
	_, sub, company := seedCatalog(db)
	prod := seedProduct(db, "Rated Product", sub.ID, company.ID)
	rating := seedRating(db, prod.ID, 3)

	router := setupRatingRouter(db)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/api/product-ratings/"+rating.ID.String(), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if err := db.First(&models.ProductRating{}, "id = ?", rating.ID).Error; err == nil {
		t.Error("expected rating removed")
	}
}

func TestGetRatingsPaginatedAdmin(t *testing.T) {
	db := freshDB()
	_, sub, company := seedCatalog(db)
	prod := seedProduct(db, "Rated Product", sub.ID, company.ID)
	seedRating(db, prod.ID, 5)
	seedRating(db, prod.ID, 2)
	token := seedAdmin(db)

	router := setupRatingRouter(db)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/product-ratings?star=5", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if int(resp["total"].(float64)) != 1 {
		t.Errorf("expected 1 five-star rating, got %v", resp["total"])
	}
}

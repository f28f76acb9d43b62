package handlers

import (
	"sort"

	"b2bpro-backend/models"
)

// SortPopular reorders products by creation year (newest first), breaking
// ties by view count. The sort is stable so products equal on both keys keep
// the list's incoming order.
func SortPopular(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		yi, yj := products[i].CreatedAt.Year(), products[j].CreatedAt.Year()
		if yi != yj {
			return yi > yj
		}
		return products[i].Views > products[j].Views
	})
}

// paginateProducts slices one page out of an already filtered and ordered
// product list.
func paginateProducts(products []models.Product, page, limit int) []models.Product {
	start := (page - 1) * limit
	if start >= len(products) {
		return nil
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

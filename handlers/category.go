package handlers

import (
	"net/http"

	"b2bpro-backend/config"
	"b2bpro-backend/dtos"
	"b2bpro-backend/logger"
	"b2bpro-backend/models"
	"b2bpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	DB *gorm.DB
}

func (h *CategoryHandler) categoryQuery() *gorm.DB {
	return h.DB.Model(&models.Category{}).
		Preload("Translations").
		Preload("Subcategories.Translations")
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	locale := utils.RequestLocale(c)
	fallback := config.FallbackLocale()

	var categories []models.Category
	if err := h.categoryQuery().Find(&categories).Error; err != nil {
		logger.Get().Error("failed to fetch categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	responses := make([]dtos.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		responses = append(responses, dtos.NewCategoryResponse(cat, locale, fallback))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.Category
	if err := h.categoryQuery().Where("id = ?", id).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, dtos.NewCategoryResponse(category, utils.RequestLocale(c), config.FallbackLocale()))
}

// Image is a pointer so an update can distinguish "leave the image alone"
// (field absent) from "clear it" (explicit empty string).
type categoryRequest struct {
	Image        *string                        `json:"image" binding:"omitempty,url"`
	IsActive     *bool                          `json:"is_active"`
	Translations map[string]dtos.CategoryFields `json:"translations" binding:"required"`
}

func (r *categoryRequest) validateTranslations() string {
	if len(r.Translations) == 0 {
		return "at least one translation is required"
	}
	for locale, fields := range r.Translations {
		if fields.Name == "" {
			return "translation " + locale + ": name is required"
		}
	}
	return ""
}

// CreateCategory creates a category and its translation rows (admin only).
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if msg := req.validateTranslations(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	category := models.Category{
		ID:       uuid.New(),
		IsActive: true,
	}
	if req.Image != nil {
		category.Image = *req.Image
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	for locale, fields := range req.Translations {
		category.Translations = append(category.Translations, models.CategoryTranslation{
			Locale: locale,
			Name:   fields.Name,
		})
	}

	if err := h.DB.Create(&category).Error; err != nil {
		logger.Get().Error("failed to create category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	h.categoryQuery().Where("id = ?", category.ID).First(&category)
	c.JSON(http.StatusCreated, dtos.NewCategoryResponse(category, utils.RequestLocale(c), config.FallbackLocale()))
}

// UpdateCategory replaces a category's fields and translation rows (admin only).
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.Category
	if err := h.DB.Where("id = ?", id).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if msg := req.validateTranslations(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.Image != nil {
			category.Image = *req.Image
		}
		if req.IsActive != nil {
			category.IsActive = *req.IsActive
		}
		if err := tx.Save(&category).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.CategoryTranslation{}).Error; err != nil {
			return err
		}
		for locale, fields := range req.Translations {
			t := models.CategoryTranslation{
				CategoryID: category.ID,
				Locale:     locale,
				Name:       fields.Name,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Get().Error("failed to update category", zap.String("category_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	h.categoryQuery().Where("id = ?", category.ID).First(&category)
	c.JSON(http.StatusOK, dtos.NewCategoryResponse(category, utils.RequestLocale(c), config.FallbackLocale()))
}

// DeleteCategory removes a category and cascades through subcategories,
// companies, and their products (admin only).
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.Category
	if err := h.DB.First(&category, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var subIDs []uuid.UUID
		if err := tx.Model(&models.SubCategory{}).Where("category_id = ?", category.ID).
			Pluck("id", &subIDs).Error; err != nil {
			return err
		}
		if err := deleteSubCategoriesCascade(tx, subIDs); err != nil {
			return err
		}

		var companyIDs []uuid.UUID
		if err := tx.Model(&models.Company{}).Where("category_id = ?", category.ID).
			Pluck("id", &companyIDs).Error; err != nil {
			return err
		}
		if err := deleteCompaniesCascade(tx, companyIDs); err != nil {
			return err
		}

		if err := tx.Where("category_id = ?", category.ID).Delete(&models.CategoryTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		logger.Get().Error("failed to delete category", zap.String("category_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
